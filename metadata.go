package imagesift

import (
	"bytes"
	"image"
	"image/color"
	"math"
	"time"

	"github.com/bep/imagemeta"
)

// CaptureInfo holds optional embedded capture metadata. Present on a
// record only when the source file actually carries EXIF data.
type CaptureInfo struct {
	CameraMake  string    `json:"camera_make,omitempty"`
	CameraModel string    `json:"camera_model,omitempty"`
	TakenAt     time.Time `json:"taken_at,omitzero"`
}

// Metadata holds per-image dimensions, format and file facts.
type Metadata struct {
	Width         int          `json:"width"`
	Height        int          `json:"height"`
	Format        string       `json:"format"`
	ColorMode     string       `json:"color_mode"`
	AspectRatio   float64      `json:"aspect_ratio"`
	Orientation   Orientation  `json:"orientation"`
	FileSizeBytes int64        `json:"file_size_bytes"`
	FileSizeMB    float64      `json:"file_size_mb"`
	Megapixels    float64      `json:"megapixels"`
	Capture       *CaptureInfo `json:"capture,omitempty"`
}

// buildMetadata derives the metadata record for a decoded image. data is
// the raw file content, used for size and embedded EXIF extraction.
func buildMetadata(img image.Image, format string, data []byte) Metadata {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	aspect := 1.0
	if h > 0 {
		aspect = float64(w) / float64(h)
	}

	size := int64(len(data))
	return Metadata{
		Width:         w,
		Height:        h,
		Format:        format,
		ColorMode:     colorModeName(img.ColorModel()),
		AspectRatio:   math.Round(aspect*100) / 100,
		Orientation:   orientationOf(w, h),
		FileSizeBytes: size,
		FileSizeMB:    math.Round(float64(size)/(1024*1024)*100) / 100,
		Megapixels:    math.Round(float64(w)*float64(h)/1e6*100) / 100,
		Capture:       extractCaptureInfo(data),
	}
}

// colorModeName names the decoded color model.
func colorModeName(m color.Model) string {
	switch m {
	case color.RGBAModel, color.RGBA64Model:
		return "rgba"
	case color.NRGBAModel, color.NRGBA64Model:
		return "nrgba"
	case color.GrayModel, color.Gray16Model:
		return "gray"
	case color.YCbCrModel:
		return "ycbcr"
	case color.CMYKModel:
		return "cmyk"
	default:
		return "other"
	}
}

// wantedCaptureTags maps (source, tag-name) → true for the EXIF tags we keep.
var wantedCaptureTags = map[imagemeta.Source]map[string]bool{
	imagemeta.EXIF: {
		"Make":             true,
		"Model":            true,
		"DateTimeOriginal": true,
	},
}

// extractCaptureInfo parses embedded EXIF capture metadata from raw image
// bytes. Returns nil when the data carries none or cannot be parsed.
// Graceful degradation: never returns an error.
func extractCaptureInfo(data []byte) *CaptureInfo {
	if len(data) == 0 {
		return nil
	}

	info := &CaptureInfo{}
	found := false

	_, err := imagemeta.Decode(imagemeta.Options{
		R:       bytes.NewReader(data),
		Sources: imagemeta.EXIF,
		ShouldHandleTag: func(ti imagemeta.TagInfo) bool {
			if tags, ok := wantedCaptureTags[ti.Source]; ok {
				return tags[ti.Tag]
			}
			return false
		},
		HandleTag: func(ti imagemeta.TagInfo) error {
			switch ti.Tag {
			case "Make":
				if s := captureValueString(ti.Value); s != "" {
					info.CameraMake = s
					found = true
				}
			case "Model":
				if s := captureValueString(ti.Value); s != "" {
					info.CameraModel = s
					found = true
				}
			case "DateTimeOriginal":
				if t := captureValueTime(ti.Value); !t.IsZero() {
					info.TakenAt = t
					found = true
				}
			}
			return nil
		},
	})

	if err != nil || !found {
		return nil
	}
	return info
}

// captureValueString extracts a string from a tag value.
func captureValueString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case []string:
		if len(val) > 0 {
			return val[0]
		}
	}
	return ""
}

// captureValueTime extracts a timestamp from a tag value. EXIF date tags
// may decode as time.Time or as the raw "2006:01:02 15:04:05" string.
func captureValueTime(v any) time.Time {
	switch val := v.(type) {
	case time.Time:
		return val
	case string:
		if t, err := time.Parse("2006:01:02 15:04:05", val); err == nil {
			return t
		}
	}
	return time.Time{}
}
