package imagesift

import (
	"image"
	"math"
	"strings"
	"unicode/utf8"
)

// Thresholds for the ordered classification rules. The rule order is a
// documented contract: later rules assume earlier ones already excluded
// their cases.
const (
	documentBrightness = 220
	documentVariance   = 1500
	documentDiversity  = 0.3

	screenshotBrightness  = 180
	screenshotVariance    = 3000
	screenshotEdgeDensity = 0.15
	screenRatioSlack      = 0.1

	graphicVariance  = 2500
	graphicDiversity = 0.4

	photoVariance  = 3000
	photoDiversity = 0.4
)

// screenRatios are common display aspect ratios a screenshot should be
// close to.
var screenRatios = []float64{16.0 / 9, 16.0 / 10, 4.0 / 3, 3.0 / 2}

// ClassifyType assigns exactly one of the five image-type labels.
// Statistics come from a fixed 50×50 downsample; filename is a fallback
// hint only, never an identity key. Classification is total: every
// decoded image gets a label.
func (cfg *Config) ClassifyType(img image.Image, filename string) ImageType {
	cfg = cfg.resolved()
	b := img.Bounds()
	aspect := 1.0
	if b.Dy() > 0 {
		aspect = float64(b.Dx()) / float64(b.Dy())
	}
	sample := pixelList(resizeTo(img, statsSize, statsSize))
	if len(sample) == 0 {
		cfg.degraded("classify_type", "empty pixel sample")
		return classifyByFilename(filename)
	}
	return classifyFeatures(computeFeatures(sample, aspect), filename)
}

// classifyFeatures evaluates the ordered rule list, first match wins.
func classifyFeatures(f features, filename string) ImageType {
	// Documents: paper-white, flat, few colors, portrait or letter-ish.
	if f.brightness > documentBrightness &&
		f.variance < documentVariance &&
		f.diversity < documentDiversity &&
		(f.aspect < 0.8 || (f.aspect >= 1.3 && f.aspect <= 1.5)) {
		return TypeDocument
	}

	// Screenshots: bright flat regions with crisp UI edges at a common
	// display ratio.
	if f.brightness > screenshotBrightness &&
		f.variance < screenshotVariance &&
		f.edgeDensity > screenshotEdgeDensity &&
		nearScreenRatio(f.aspect) {
		return TypeScreenshot
	}

	// Graphics: flat colors, small vocabulary.
	if f.variance < graphicVariance && f.diversity < graphicDiversity {
		return TypeGraphic
	}

	// Photos: rich variance and color diversity.
	if f.variance > photoVariance && f.diversity > photoDiversity {
		return TypePhoto
	}

	return classifyByFilename(filename)
}

// nearScreenRatio reports whether aspect is within screenRatioSlack of a
// common display ratio.
func nearScreenRatio(aspect float64) bool {
	for _, r := range screenRatios {
		if math.Abs(aspect-r) <= screenRatioSlack {
			return true
		}
	}
	return false
}

// classifyByFilename matches the lowercased filename against the curated
// hint lists. Defaults to TypeOther.
func classifyByFilename(filename string) ImageType {
	lower := strings.ToLower(filename)
	for _, h := range filenameHints {
		if containsAny(lower, h.Hints) {
			return h.Type
		}
	}
	return TypeOther
}

// QualityScore rates an image in [0,100]: up to 50 points for resolution
// (10 per megapixel) and up to 50 for sharpness (edge ratio over a 50×50
// downsample, scaled by 500). Rounded to two decimals.
func (cfg *Config) QualityScore(img image.Image) float64 {
	b := img.Bounds()
	megapixels := float64(b.Dx()) * float64(b.Dy()) / 1e6
	resolution := math.Min(megapixels*10, 50)

	sample := pixelList(resizeTo(img, statsSize, statsSize))
	sharpness := 0.0
	if len(sample) > 0 {
		sharpness = math.Min(float64(countEdges(sample))/float64(len(sample))*500, 50)
	} else {
		cfg.degraded("quality_score", "empty pixel sample")
	}

	return math.Round((resolution+sharpness)*100) / 100
}

// IsLikelyMeme reports whether metadata and OCR text together look like a
// meme: non-trivial caption text, a near-square or low-resolution frame,
// and either a known meme phrase or a short caption.
func IsLikelyMeme(meta Metadata, ocrText string) bool {
	text := strings.TrimSpace(ocrText)
	if utf8.RuneCountInString(text) <= 5 {
		return false
	}

	nearSquare := meta.AspectRatio >= 0.8 && meta.AspectRatio <= 1.2
	lowRes := meta.Width < 800 && meta.Height < 800
	if !nearSquare && !lowRes {
		return false
	}

	if containsAny(strings.ToLower(text), memePhrases) {
		return true
	}
	return len(strings.Fields(text)) < 20
}
