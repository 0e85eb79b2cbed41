package imagesift

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Fatal analysis errors. Degraded sub-heuristics never surface here: they
// resolve to safe defaults and the call still returns a best-effort record.
var (
	// ErrNotFound means the input image path is missing or unreadable.
	ErrNotFound = errors.New("image not found")

	// ErrDecode means the bytes are not a decodable image.
	ErrDecode = errors.New("image decode failed")
)

// AnalyzeOpts carries the caller-supplied context for one analysis call.
type AnalyzeOpts struct {
	// OriginalFilename is the upload name; used only as a classification
	// fallback hint and a weak search signal. Analyze fills it from the
	// path when empty.
	OriginalFilename string

	// OCRText is pre-extracted recognized text, if any. The pipeline
	// consumes OCR text as a plain string; running an OCR engine is the
	// caller's concern.
	OCRText string

	// Seed drives pixel sub-sampling. Zero picks a fresh seed per call;
	// any fixed non-zero value makes the call bit-reproducible.
	Seed uint64
}

// Analyze reads and analyzes the image at path. A missing or unreadable
// path returns ErrNotFound; undecodable content returns ErrDecode.
func (cfg *Config) Analyze(path string, opts AnalyzeOpts) (*Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrNotFound, path, err)
	}
	if opts.OriginalFilename == "" {
		opts.OriginalFilename = filepath.Base(path)
	}
	return cfg.AnalyzeBytes(data, opts)
}

// AnalyzeBytes runs the full feature pipeline over raw image bytes and
// returns the immutable feature record. The image passes once through
// color extraction, type classification and content detection; keyword
// extraction consumes their output plus the supplied OCR text.
//
// Analysis is total over decodable images: per-heuristic failures degrade
// to safe defaults rather than failing the record.
func (cfg *Config) AnalyzeBytes(data []byte, opts AnalyzeOpts) (*Record, error) {
	cfg = cfg.resolved()

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	rng := newRNG(opts.Seed)
	meta := buildMetadata(img, format, data)

	// Dominant colors read a fixed 100×100 resample so shade frequencies
	// are comparable across image sizes.
	colorSample := subsample(pixelList(resizeTo(img, 100, 100)), cfg.MaxSamples, rng)
	colors := cfg.DominantColors(colorSample, cfg.DominantColorCount)

	imageType := cfg.ClassifyType(img, opts.OriginalFilename)
	contentTags := cfg.DetectContent(img, opts.OCRText, rng)

	ocr := normalizeOCR(opts.OCRText)
	keywords := ExtractKeywords(ocr, imageType, meta.Orientation)

	return &Record{
		OriginalFilename: opts.OriginalFilename,
		OCRText:          ocr,
		Colors:           colors,
		ImageType:        imageType,
		ContentTags:      contentTags,
		Keywords:         keywords,
		Metadata:         meta,
	}, nil
}

// normalizeOCR lowercases OCR text and collapses all whitespace runs to
// single spaces, matching how recognized text is stored and searched.
func normalizeOCR(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
