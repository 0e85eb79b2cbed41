package imagesift

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func writeTempPNG(t *testing.T, name string, img image.Image) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, encodePNG(t, img), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestAnalyzeRecordInvariants(t *testing.T) {
	t.Parallel()

	cfg := &Config{}
	path := writeTempPNG(t, "vacation.png", noiseImage(120, 90))

	rec, err := cfg.Analyze(path, AnalyzeOpts{OCRText: "  Beach   Day ", Seed: 1})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if rec.OriginalFilename != "vacation.png" {
		t.Errorf("OriginalFilename = %q, want path base", rec.OriginalFilename)
	}
	if rec.OCRText != "beach day" {
		t.Errorf("OCRText = %q, want normalized %q", rec.OCRText, "beach day")
	}

	valid := map[ImageType]bool{
		TypePhoto: true, TypeScreenshot: true, TypeDocument: true,
		TypeGraphic: true, TypeOther: true,
	}
	if !valid[rec.ImageType] {
		t.Errorf("ImageType = %q, not a known label", rec.ImageType)
	}

	base := make(map[string]bool, len(BaseColors))
	for _, name := range BaseColors {
		base[name] = true
	}
	if len(rec.Colors) == 0 || len(rec.Colors) > DefaultDominantColors {
		t.Errorf("Colors = %v, want 1..%d entries", rec.Colors, DefaultDominantColors)
	}
	for _, c := range rec.Colors {
		if !base[c] {
			t.Errorf("color %q not in the base vocabulary", c)
		}
	}

	wantKw := map[string]bool{string(rec.ImageType): false, string(rec.Metadata.Orientation): false}
	for _, kw := range rec.Keywords {
		if _, ok := wantKw[kw]; ok {
			wantKw[kw] = true
		}
	}
	for kw, seen := range wantKw {
		if !seen {
			t.Errorf("Keywords %v missing %q", rec.Keywords, kw)
		}
	}

	m := rec.Metadata
	if m.Width != 120 || m.Height != 90 {
		t.Errorf("dimensions = %dx%d, want 120x90", m.Width, m.Height)
	}
	if m.Format != "png" {
		t.Errorf("Format = %q, want png", m.Format)
	}
	if m.Orientation != OrientationLandscape {
		t.Errorf("Orientation = %q, want landscape", m.Orientation)
	}
	if m.AspectRatio != 1.33 {
		t.Errorf("AspectRatio = %v, want 1.33", m.AspectRatio)
	}
	if m.Megapixels != 0.01 {
		t.Errorf("Megapixels = %v, want 0.01", m.Megapixels)
	}
	if m.FileSizeBytes <= 0 {
		t.Errorf("FileSizeBytes = %d, want > 0", m.FileSizeBytes)
	}
	if m.Capture != nil {
		t.Errorf("Capture = %+v, want nil for a bare png", m.Capture)
	}
}

func TestAnalyzeMissingFile(t *testing.T) {
	t.Parallel()

	cfg := &Config{}
	_, err := cfg.Analyze(filepath.Join(t.TempDir(), "nope.png"), AnalyzeOpts{})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Analyze(missing) error = %v, want ErrNotFound", err)
	}
}

func TestAnalyzeUndecodableFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "broken.png")
	if err := os.WriteFile(path, []byte("not a png"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := &Config{}
	_, err := cfg.Analyze(path, AnalyzeOpts{})
	if !errors.Is(err, ErrDecode) {
		t.Errorf("Analyze(undecodable) error = %v, want ErrDecode", err)
	}
}

func TestAnalyzeBytesBadData(t *testing.T) {
	t.Parallel()

	cfg := &Config{}
	_, err := cfg.AnalyzeBytes([]byte("definitely not an image"), AnalyzeOpts{})
	if !errors.Is(err, ErrDecode) {
		t.Errorf("AnalyzeBytes(garbage) error = %v, want ErrDecode", err)
	}
}

func TestAnalyzeBytesSeededIsReproducible(t *testing.T) {
	t.Parallel()

	cfg := &Config{}
	data := encodePNG(t, noiseImage(200, 150))
	opts := AnalyzeOpts{OriginalFilename: "noise.png", Seed: 42}

	a, err := cfg.AnalyzeBytes(data, opts)
	if err != nil {
		t.Fatalf("AnalyzeBytes: %v", err)
	}
	b, err := cfg.AnalyzeBytes(data, opts)
	if err != nil {
		t.Fatalf("AnalyzeBytes: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Errorf("seeded analysis differs:\n%+v\n%+v", a, b)
	}
}

func TestAnalyzeKeepsExplicitFilename(t *testing.T) {
	t.Parallel()

	cfg := &Config{}
	path := writeTempPNG(t, "on-disk.png", uniformImage(10, 10, color.RGBA{200, 30, 30, 255}))

	rec, err := cfg.Analyze(path, AnalyzeOpts{OriginalFilename: "upload.png"})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if rec.OriginalFilename != "upload.png" {
		t.Errorf("OriginalFilename = %q, want the explicit upload name", rec.OriginalFilename)
	}
}

func TestNormalizeOCR(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{" UPI  Payment ", "upi payment"},
		{"line\none\n\ttwo", "line one two"},
		{"", ""},
		{"   ", ""},
	}
	for _, tc := range tests {
		if got := normalizeOCR(tc.in); got != tc.want {
			t.Errorf("normalizeOCR(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
