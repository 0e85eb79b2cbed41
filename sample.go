package imagesift

import (
	"image"
	"math/rand/v2"

	"github.com/nfnt/resize"
)

// Downsample sizes used across the pipeline.
const (
	statsSize    = 50  // fixed square for whole-image type statistics
	textureSize  = 100 // fixed square for grayscale texture analysis
	thumbnailMax = 300 // bounding box for content-detection sampling
)

// newRNG builds the private random source for one analysis call. Seed 0
// picks a fresh seed, so sampling is non-deterministic but still safe
// across parallel calls; a fixed non-zero seed makes a call bit-reproducible.
func newRNG(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed))
}

// resizeTo scales img to exactly w×h.
func resizeTo(img image.Image, w, h int) image.Image {
	return resize.Resize(uint(w), uint(h), img, resize.Bilinear)
}

// shrinkTo downscales img so both dimensions fit in maxDim, preserving
// aspect ratio. Images already small enough pass through unchanged.
func shrinkTo(img image.Image, maxDim int) image.Image {
	b := img.Bounds()
	if b.Dx() <= maxDim && b.Dy() <= maxDim {
		return img
	}
	return resize.Thumbnail(uint(maxDim), uint(maxDim), img, resize.Lanczos3)
}

// pixelList flattens img into a row-major pixel sequence.
func pixelList(img image.Image) []Pixel {
	b := img.Bounds()
	out := make([]Pixel, 0, b.Dx()*b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, b16, _ := img.At(x, y).RGBA()
			out = append(out, Pixel{
				R: uint8(r >> 8),
				G: uint8(g >> 8),
				B: uint8(b16 >> 8),
			})
		}
	}
	return out
}

// grayGrid flattens img into a row-major grayscale grid, each value the
// mean of the three channels.
func grayGrid(img image.Image) (vals []float64, w, h int) {
	b := img.Bounds()
	w, h = b.Dx(), b.Dy()
	vals = make([]float64, 0, w*h)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			vals = append(vals, (float64(r>>8)+float64(g>>8)+float64(bl>>8))/3)
		}
	}
	return vals, w, h
}

// subsample picks at most maxN pixels uniformly at random without
// replacement. Samples at or under the cap are returned as-is, preserving
// row-major order.
func subsample(sample []Pixel, maxN int, rng *rand.Rand) []Pixel {
	if maxN <= 0 || len(sample) <= maxN {
		return sample
	}
	idx := rng.Perm(len(sample))[:maxN]
	out := make([]Pixel, maxN)
	for i, j := range idx {
		out[i] = sample[j]
	}
	return out
}
