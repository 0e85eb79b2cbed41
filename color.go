package imagesift

import (
	"math"
	"sort"
)

// NameColor returns the palette name whose range midpoint is nearest to p
// by Euclidean distance. Ties resolve to the earliest palette entry.
// Returns "unknown" only for an empty palette.
func NameColor(p Pixel, pal Palette) string {
	best := "unknown"
	bestDist := math.Inf(1)
	for _, e := range pal {
		for _, cr := range e.Ranges {
			mr, mg, mb := cr.midpoint()
			dr := float64(p.R) - mr
			dg := float64(p.G) - mg
			db := float64(p.B) - mb
			dist := dr*dr + dg*dg + db*db
			if dist < bestDist {
				bestDist = dist
				best = e.Name
			}
		}
	}
	return best
}

// BaseColorName maps a pixel to one of the nine BaseColors. Resolution
// order: box-range lookup, near-grayscale bucketing, then channel-dominance
// heuristics. The final fallback is "gray", so the result is always a
// member of BaseColors.
func BaseColorName(p Pixel) string {
	for _, e := range basePalette {
		for _, cr := range e.Ranges {
			if cr.contains(p) {
				return e.Name
			}
		}
	}

	r, g, b := int(p.R), int(p.G), int(p.B)
	maxc := max(r, max(g, b))
	minc := min(r, min(g, b))
	brightness := (r + g + b) / 3

	// Near-equal channels: a grayscale shade, bucketed by brightness.
	if maxc-minc <= 30 {
		switch {
		case brightness < 60:
			return "black"
		case brightness > 200:
			return "white"
		default:
			return "gray"
		}
	}

	// Strong red+green with weak blue: the yellow family (olive, gold).
	if r > 100 && g > 100 && b < 80 && abs(r-g) < 60 {
		return "yellow"
	}

	// Red and blue both strong with green clearly below: purple family.
	if r > 100 && b > 100 && g < min(r, b)-30 {
		return "purple"
	}

	// Cyan and teal collapse to blue: blue strong, red weak.
	if b > 100 && r < 100 && (g > 150 || abs(g-b) < 60) {
		return "blue"
	}

	// Red the max channel and bright enough: the red family, covering
	// pink, maroon and orange. Muted warm tones with a substantial green
	// component (tan, khaki) land on brown instead.
	if r >= g && r >= b && r > 100 {
		if g > b && g > 120 && r-b < 120 {
			return "brown"
		}
		return "red"
	}

	if g >= r && g >= b && g > 80 {
		return "green"
	}
	if b >= r && b >= g && b > 80 {
		return "blue"
	}

	// Dark muted warm leftovers read as brown.
	if r > g && g > b && r > 60 {
		return "brown"
	}

	if brightness < 60 {
		return "black"
	}
	if brightness > 200 {
		return "white"
	}
	return "gray"
}

// quantize collapses each channel to the nearest lower multiple of step.
func quantize(p Pixel, step int) Pixel {
	return Pixel{
		R: uint8(int(p.R) / step * step),
		G: uint8(int(p.G) / step * step),
		B: uint8(int(p.B) / step * step),
	}
}

// DominantColors returns up to k distinct color names in descending
// quantized-bucket frequency. Pixels are quantized to merge near-duplicate
// shades, the top 3k buckets are named (several buckets may collapse to
// the same name, so extra candidates are needed to still reach k distinct
// names), and "unknown" is discarded.
func (cfg *Config) DominantColors(sample []Pixel, k int) []string {
	cfg = cfg.resolved()
	if k <= 0 {
		return nil
	}
	if len(sample) == 0 {
		cfg.degraded("dominant_colors", "empty pixel sample")
		return nil
	}

	counts := make(map[Pixel]int)
	for _, p := range sample {
		counts[quantize(p, cfg.QuantizeStep)]++
	}

	type bucket struct {
		p Pixel
		n int
	}
	buckets := make([]bucket, 0, len(counts))
	for p, n := range counts {
		buckets = append(buckets, bucket{p, n})
	}
	// Frequency order with a fixed channel tie-break so map iteration
	// order never leaks into the result.
	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].n != buckets[j].n {
			return buckets[i].n > buckets[j].n
		}
		a, b := buckets[i].p, buckets[j].p
		if a.R != b.R {
			return a.R < b.R
		}
		if a.G != b.G {
			return a.G < b.G
		}
		return a.B < b.B
	})

	limit := 3 * k
	if limit > len(buckets) {
		limit = len(buckets)
	}

	names := make([]string, 0, k)
	seen := make(map[string]bool, k)
	for _, bk := range buckets[:limit] {
		name := cfg.colorName(bk.p)
		if name == "unknown" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
		if len(names) >= k {
			break
		}
	}
	return names
}

// PrimaryColor returns the single most dominant color name, or "unknown"
// when the sample is empty or nothing could be named.
func (cfg *Config) PrimaryColor(sample []Pixel) string {
	colors := cfg.DominantColors(sample, 1)
	if len(colors) == 0 {
		return "unknown"
	}
	return colors[0]
}

// colorName applies the configured naming mode.
func (cfg *Config) colorName(p Pixel) string {
	if cfg.FineColorNames {
		return NameColor(p, cfg.Palette)
	}
	return BaseColorName(p)
}

// AverageColor returns the integer-truncated channel-wise mean of the
// sample. The zero Pixel is returned for an empty sample.
func AverageColor(sample []Pixel) Pixel {
	if len(sample) == 0 {
		return Pixel{}
	}
	var r, g, b int
	for _, p := range sample {
		r += int(p.R)
		g += int(p.G)
		b += int(p.B)
	}
	n := len(sample)
	return Pixel{R: uint8(r / n), G: uint8(g / n), B: uint8(b / n)}
}

// IsMonochrome reports whether the sample's average color is within the
// configured tolerance of a pure gray: the maximum pairwise channel
// difference of the average must not exceed MonochromeTolerance.
// An empty sample is never monochrome.
func (cfg *Config) IsMonochrome(sample []Pixel) bool {
	cfg = cfg.resolved()
	if len(sample) == 0 {
		return false
	}
	avg := AverageColor(sample)
	r, g, b := int(avg.R), int(avg.G), int(avg.B)
	spread := max(abs(r-g), max(abs(g-b), abs(r-b)))
	return spread <= cfg.MonochromeTolerance
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
