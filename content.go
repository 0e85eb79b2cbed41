package imagesift

import (
	"image"
	"math"
	"math/rand/v2"
	"unicode/utf8"

	"gonum.org/v1/gonum/stat"
)

// Content tags the detector can emit. Each detector is independent and a
// single image may carry any subset.
const (
	TagTextHeavy = "text-heavy"
	TagPeople    = "people"
	TagNature    = "nature"
	TagAnimals   = "animals"
)

// Fur texture bounds: below is smooth/uniform, above is noise.
const (
	furTextureMin = 15.0
	furTextureMax = 50.0

	animalColorMin = 0.3
	skinRatioMin   = 0.05
)

// DetectContent runs every content heuristic over the image and returns
// the matching tags in a fixed order. ocrText may be empty. rng drives
// pixel sub-sampling; pass a seeded source for reproducible output.
func (cfg *Config) DetectContent(img image.Image, ocrText string, rng *rand.Rand) []string {
	cfg = cfg.resolved()
	thumb := shrinkTo(img, thumbnailMax)
	sample := subsample(pixelList(thumb), cfg.MaxSamples, rng)
	if len(sample) == 0 {
		cfg.degraded("detect_content", "empty pixel sample")
	}

	var tags []string
	if cfg.isTextHeavy(thumb, ocrText) {
		tags = append(tags, TagTextHeavy)
	}
	if hasSkinTones(sample) {
		tags = append(tags, TagPeople)
	}
	if hasNatureColors(sample) {
		tags = append(tags, TagNature)
	}
	if cfg.hasAnimalTraits(img, sample) {
		tags = append(tags, TagAnimals)
	}
	return tags
}

// isTextHeavy combines three proxies for text content: OCR volume, a
// bimodal dark/light grayscale histogram, and a text-line row-variance
// pattern.
func (cfg *Config) isTextHeavy(thumb image.Image, ocrText string) bool {
	if utf8.RuneCountInString(ocrText) > 100 {
		return true
	}
	gray, w, h := grayGrid(thumb)
	if w == 0 || h == 0 {
		cfg.degraded("text_heavy", "empty grayscale grid")
		return false
	}
	return bimodalHistogram(gray) || textLinePattern(gray, w, h)
}

// bimodalHistogram reports whether grayscale values cluster at the dark
// and light ends with little in between, like black text on white paper.
func bimodalHistogram(gray []float64) bool {
	if len(gray) == 0 {
		return false
	}
	var dark, light, mid int
	for _, v := range gray {
		switch {
		case v < 80:
			dark++
		case v > 180:
			light++
		default:
			mid++
		}
	}
	total := float64(len(gray))
	return float64(dark)/total > 0.1 &&
		float64(light)/total > 0.4 &&
		float64(mid)/total < 0.4
}

// textLinePattern looks for alternating high/low variance rows, the
// signature of horizontal text lines. Fires when adjacent-row variance
// jumps above 200 across more than 30% of rows.
func textLinePattern(gray []float64, w, h int) bool {
	if h < 2 || w == 0 {
		return false
	}
	rowVar := make([]float64, h)
	for y := 0; y < h; y++ {
		rowVar[y] = stat.PopVariance(gray[y*w:(y+1)*w], nil)
	}
	jumps := 0
	for y := 1; y < h; y++ {
		if math.Abs(rowVar[y]-rowVar[y-1]) > 200 {
			jumps++
		}
	}
	return float64(jumps) > float64(h)*0.3
}

// hasSkinTones reports whether more than 5% of sampled pixels look
// skin-toned: R > G > B with bounded channel gaps at moderate brightness.
func hasSkinTones(sample []Pixel) bool {
	if len(sample) == 0 {
		return false
	}
	skin := 0
	for _, p := range sample {
		r, g, b := int(p.R), int(p.G), int(p.B)
		if !(r > g && g > b) {
			continue
		}
		if rg := r - g; rg <= 20 || rg >= 100 {
			continue
		}
		if rb := r - b; rb <= 30 || rb >= 150 {
			continue
		}
		brightness := float64(r+g+b) / 3
		if brightness <= 50 || brightness >= 230 {
			continue
		}
		skin++
	}
	return float64(skin)/float64(len(sample)) > skinRatioMin
}

// hasNatureColors reports natural scenes from the balance of plant greens,
// sky/water blues and earth browns over the sample.
func hasNatureColors(sample []Pixel) bool {
	if len(sample) == 0 {
		return false
	}
	var green, blue, brown int
	for _, p := range sample {
		r, g, b := int(p.R), int(p.G), int(p.B)
		if g > r && g > b && g > 80 {
			green++
		}
		if b > r && b > g && b > 100 {
			blue++
		}
		if r > 60 && r < 150 && g > 40 && g < 120 && b > 20 && b < 80 && r > g && g > b {
			brown++
		}
	}

	total := float64(len(sample))
	greenRatio := float64(green) / total
	blueRatio := float64(blue) / total
	brownRatio := float64(brown) / total

	if greenRatio > 0.25 {
		return true
	}
	if blueRatio > 0.20 && (greenRatio > 0.10 || brownRatio > 0.10) {
		return true
	}
	// Moderate green plus organic variance; natural scenes are never as
	// uniform as graphics.
	return greenRatio > 0.15 && channelVariance(sample) > 1000
}

// channelVariance is the mean per-channel population variance.
func channelVariance(sample []Pixel) float64 {
	n := len(sample)
	if n == 0 {
		return 0
	}
	rs := make([]float64, n)
	gs := make([]float64, n)
	bs := make([]float64, n)
	for i, p := range sample {
		rs[i] = float64(p.R)
		gs[i] = float64(p.G)
		bs[i] = float64(p.B)
	}
	return (stat.PopVariance(rs, nil) + stat.PopVariance(gs, nil) + stat.PopVariance(bs, nil)) / 3
}

// hasAnimalTraits requires BOTH a fur-like texture and a high ratio of
// animal coat colors. A single signal is insufficient: plain brown, black
// or white backgrounds would otherwise false-positive.
func (cfg *Config) hasAnimalTraits(img image.Image, sample []Pixel) bool {
	gray, w, h := grayGrid(resizeTo(img, textureSize, textureSize))
	texture, ok := furTexture(gray, w, h)
	if !ok {
		cfg.degraded("animals", "no texture windows")
		return false
	}
	if texture <= furTextureMin || texture >= furTextureMax {
		return false
	}
	return animalColorRatio(sample) > animalColorMin
}

// furTexture is the mean local standard deviation over sliding 10×10
// windows (half-width 5, stride 2) of a grayscale grid. Fur and feathers
// land in a medium band: not smooth, not chaotic.
func furTexture(gray []float64, w, h int) (float64, bool) {
	const (
		half   = 5
		stride = 2
	)
	var scores []float64
	win := make([]float64, 0, 4*half*half)
	for i := half; i < h-half; i += stride {
		for j := half; j < w-half; j += stride {
			win = win[:0]
			for y := i - half; y < i+half; y++ {
				for x := j - half; x < j+half; x++ {
					win = append(win, gray[y*w+x])
				}
			}
			scores = append(scores, stat.PopStdDev(win, nil))
		}
	}
	if len(scores) == 0 {
		return 0, false
	}
	return stat.Mean(scores, nil), true
}

// animalColorRatio is the fraction of sampled pixels in common coat color
// bands: brown/tan, near-black, near-white, and ginger/orange.
func animalColorRatio(sample []Pixel) float64 {
	if len(sample) == 0 {
		return 0
	}
	hits := 0
	for _, p := range sample {
		r, g, b := int(p.R), int(p.G), int(p.B)
		switch {
		case r > 80 && r < 180 && g > 60 && g < 140 && b > 30 && b < 100 && r > g && g > b:
			hits++ // brown/tan
		case max(r, max(g, b)) < 60:
			hits++ // black coat
		case min(r, min(g, b)) > 200:
			hits++ // white coat
		case r > 180 && g > 80 && g < 150 && b < 80:
			hits++ // ginger/orange
		}
	}
	return float64(hits) / float64(len(sample))
}
