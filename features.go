package imagesift

import (
	"gonum.org/v1/gonum/stat"
)

// edgeDelta is the mean cross-channel difference above which an adjacent
// sample pair counts as an edge.
const edgeDelta = 30.0

// features holds the whole-image scalars the type classifier decides on.
// Computed fresh per classification call, never persisted.
type features struct {
	brightness  float64 // mean of per-pixel channel means
	variance    float64 // mean per-channel population variance
	diversity   float64 // unique exact colors / sample size
	edgeDensity float64 // edge pairs / adjacent pairs
	aspect      float64 // width / height of the original image
}

// computeFeatures derives the feature vector from a row-major sample and
// the original aspect ratio.
func computeFeatures(sample []Pixel, aspect float64) features {
	f := features{aspect: aspect}
	n := len(sample)
	if n == 0 {
		return f
	}

	rs := make([]float64, n)
	gs := make([]float64, n)
	bs := make([]float64, n)
	unique := make(map[Pixel]struct{}, n)
	var brightness float64
	for i, p := range sample {
		rs[i] = float64(p.R)
		gs[i] = float64(p.G)
		bs[i] = float64(p.B)
		brightness += (rs[i] + gs[i] + bs[i]) / 3
		unique[p] = struct{}{}
	}

	f.brightness = brightness / float64(n)
	f.variance = (stat.PopVariance(rs, nil) + stat.PopVariance(gs, nil) + stat.PopVariance(bs, nil)) / 3
	f.diversity = float64(len(unique)) / float64(n)
	if n > 1 {
		f.edgeDensity = float64(countEdges(sample)) / float64(n-1)
	}
	return f
}

// countEdges counts adjacent sample pairs whose mean channel delta
// exceeds edgeDelta. A cheap proxy for visual sharpness and complexity.
func countEdges(sample []Pixel) int {
	edges := 0
	for i := 1; i < len(sample); i++ {
		a, b := sample[i-1], sample[i]
		delta := (absDiff(a.R, b.R) + absDiff(a.G, b.G) + absDiff(a.B, b.B)) / 3
		if delta > edgeDelta {
			edges++
		}
	}
	return edges
}

func absDiff(a, b uint8) float64 {
	if a > b {
		return float64(a - b)
	}
	return float64(b - a)
}
