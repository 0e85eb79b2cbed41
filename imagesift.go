// Package imagesift derives searchable semantic tags from raster images
// without any trained model: a dominant-color palette, a heuristic
// image-type classification, coarse content hints, and OCR-derived
// keywords. A second stage ranks a stored image collection against a
// free-text query using an additive relevance score with synonym
// expansion.
//
// The pipeline is stateless: every call reads only its own input image
// and the static configuration tables, so arbitrarily many calls may run
// in parallel across independent images without coordination.
package imagesift

import (
	"log/slog"
	"time"
)

// Default tuning constants. Each has a matching Config field; the zero
// value of Config uses these.
const (
	// DefaultMaxSamples caps the number of pixels a detector inspects.
	// Larger images are uniformly sub-sampled down to this many pixels.
	DefaultMaxSamples = 5000

	// DefaultQuantizeStep collapses each channel to the nearest lower
	// multiple of this step before frequency counting, merging
	// near-duplicate shades.
	DefaultQuantizeStep = 30

	// DefaultMonochromeTolerance is the maximum pairwise channel
	// difference of the average color for an image to count as monochrome.
	DefaultMonochromeTolerance = 30

	// DefaultDominantColors is how many dominant color names Analyze
	// stores on a record.
	DefaultDominantColors = 3
)

// Config holds the static tables and tuning knobs shared by all analysis
// calls. It is read-only at runtime and safe to share by reference: every
// call works on a resolved copy, never the caller's struct. The zero
// value is usable; unset fields resolve to the defaults above.
type Config struct {
	// Palette is the fine-grained color-name palette used by distance
	// based naming. Default: DefaultPalette.
	Palette Palette

	// FineColorNames switches dominant-color naming from the fixed
	// 9-color base vocabulary to distance matching against Palette.
	// The base vocabulary is the default because it gives a small,
	// stable label set for search.
	FineColorNames bool

	// DominantColorCount is how many distinct color names Analyze keeps
	// per image. Default: DefaultDominantColors.
	DominantColorCount int

	// QuantizeStep for dominant-color bucketing. Default: DefaultQuantizeStep.
	QuantizeStep int

	// MaxSamples caps pixel sub-sampling. Default: DefaultMaxSamples.
	MaxSamples int

	// MonochromeTolerance for IsMonochrome. Default: DefaultMonochromeTolerance.
	MonochromeTolerance int

	// OnDegraded is an optional hook fired whenever a sub-heuristic could
	// not compute a feature and a safe default was used instead. Useful
	// for metrics; analysis itself never fails on a degraded heuristic.
	OnDegraded func(stage, detail string)
}

// resolved returns a copy of cfg with zero-value fields filled with
// defaults. The receiver is never written, so one Config can back any
// number of parallel calls.
func (cfg *Config) resolved() *Config {
	out := *cfg
	if out.Palette == nil {
		out.Palette = DefaultPalette
	}
	if out.DominantColorCount <= 0 {
		out.DominantColorCount = DefaultDominantColors
	}
	if out.QuantizeStep <= 0 {
		out.QuantizeStep = DefaultQuantizeStep
	}
	if out.MaxSamples <= 0 {
		out.MaxSamples = DefaultMaxSamples
	}
	if out.MonochromeTolerance <= 0 {
		out.MonochromeTolerance = DefaultMonochromeTolerance
	}
	return &out
}

// degraded records that a sub-heuristic fell back to a safe default.
// Degraded analysis still returns a best-effort record; only missing or
// undecodable input is fatal to a call.
func (cfg *Config) degraded(stage, detail string) {
	slog.Debug("imagesift: analysis degraded", "stage", stage, "detail", detail)
	if cfg.OnDegraded != nil {
		cfg.OnDegraded(stage, detail)
	}
}

// ImageType is the discrete image-type label produced by the classifier.
type ImageType string

// The five image-type labels. Classification is total: every decodable
// image maps to exactly one of these.
const (
	TypePhoto      ImageType = "photo"
	TypeScreenshot ImageType = "screenshot"
	TypeDocument   ImageType = "document"
	TypeGraphic    ImageType = "graphic"
	TypeOther      ImageType = "other"
)

// Orientation describes the strict width/height comparison of an image.
type Orientation string

const (
	OrientationPortrait  Orientation = "portrait"
	OrientationLandscape Orientation = "landscape"
	OrientationSquare    Orientation = "square"
)

// orientationOf returns the orientation for the given pixel dimensions.
func orientationOf(width, height int) Orientation {
	switch {
	case width > height:
		return OrientationLandscape
	case height > width:
		return OrientationPortrait
	default:
		return OrientationSquare
	}
}

// Record is the immutable per-image output of the analysis pipeline.
// It is produced once at ingest time; refreshing it means re-analyzing,
// not mutating. The ranking stage only reads it.
type Record struct {
	// ID identifies the record inside a Collection. Analyze leaves it
	// empty; the caller assigns it.
	ID string `json:"id,omitempty"`

	// OriginalFilename is the upload name, used only as a classification
	// fallback hint and a weak search signal, never as an identity key.
	OriginalFilename string `json:"original_filename"`

	// UploadedAt is the ingest timestamp. Analyze leaves it zero;
	// Collection.Add stamps it when unset.
	UploadedAt time.Time `json:"uploaded_at,omitzero"`

	// OCRText is caller-supplied recognized text, lowercased and
	// whitespace-normalized. The pipeline consumes OCR text; it never
	// runs an OCR engine itself.
	OCRText string `json:"ocr_text"`

	// Colors holds dominant color names in dominance order, every entry
	// a member of the configured color vocabulary.
	Colors []string `json:"colors"`

	// ImageType is exactly one of the five type labels.
	ImageType ImageType `json:"image_type"`

	// ContentTags is the set of coarse content hints, deduplicated,
	// emitted in a fixed order for determinism.
	ContentTags []string `json:"content_tags"`

	// Keywords is the deduplicated set of OCR-derived categories plus the
	// image type and orientation, in first-seen order.
	Keywords []string `json:"keywords"`

	// Metadata holds per-image dimensions, format and file facts.
	Metadata Metadata `json:"metadata"`
}
