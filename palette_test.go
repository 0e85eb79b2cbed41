package imagesift

import "testing"

func TestBaseColorNameRepresentativeShades(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		p    Pixel
		want string
	}{
		// Red family.
		{"pink", Pixel{255, 192, 203}, "red"},
		{"maroon", Pixel{128, 0, 0}, "red"},
		{"crimson", Pixel{220, 20, 60}, "red"},
		{"orange", Pixel{255, 165, 0}, "red"},
		{"salmon", Pixel{250, 128, 114}, "red"},

		// Blue family, including cyan and teal.
		{"cyan", Pixel{0, 255, 255}, "blue"},
		{"teal", Pixel{0, 128, 128}, "blue"},
		{"turquoise", Pixel{64, 224, 208}, "blue"},
		{"navy", Pixel{0, 0, 128}, "blue"},
		{"sky blue", Pixel{135, 206, 235}, "blue"},
		{"indigo", Pixel{75, 0, 130}, "blue"},

		// Yellow family.
		{"gold", Pixel{255, 215, 0}, "yellow"},
		{"olive", Pixel{128, 128, 0}, "yellow"},

		// Green.
		{"forest green", Pixel{34, 139, 34}, "green"},
		{"lime", Pixel{50, 205, 50}, "green"},

		// Purple.
		{"violet", Pixel{150, 50, 150}, "purple"},
		{"orchid", Pixel{200, 160, 220}, "purple"},

		// Brown.
		{"saddle brown", Pixel{139, 69, 19}, "brown"},
		{"tan", Pixel{210, 180, 140}, "brown"},
		{"walnut", Pixel{80, 50, 20}, "brown"},

		// Grayscale buckets.
		{"black", Pixel{10, 10, 10}, "black"},
		{"charcoal", Pixel{54, 69, 79}, "gray"},
		{"silver", Pixel{192, 192, 192}, "gray"},
		{"white", Pixel{250, 250, 250}, "white"},
		{"beige", Pixel{245, 245, 220}, "white"},
		{"lavender", Pixel{230, 230, 250}, "white"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := BaseColorName(tc.p)
			if got != tc.want {
				t.Errorf("BaseColorName(%v) = %q, want %q", tc.p, got, tc.want)
			}
		})
	}
}

func TestBaseColorNameBoxFallthrough(t *testing.T) {
	t.Parallel()

	// Shades near the blue/green box edges must fall through to the
	// channel-dominance rules for their own family instead of being
	// swallowed by a neighboring box.
	tests := []struct {
		name string
		p    Pixel
		want string
	}{
		{"teal falls through green box to blue", Pixel{0, 128, 128}, "blue"},
		{"olive falls through green box to yellow", Pixel{128, 128, 0}, "yellow"},
		{"violet falls through blue box to purple", Pixel{150, 50, 150}, "purple"},
		{"leaf green outside the box still green", Pixel{120, 200, 120}, "green"},
		{"sky blue outside the box still blue", Pixel{135, 206, 235}, "blue"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := BaseColorName(tc.p); got != tc.want {
				t.Errorf("BaseColorName(%v) = %q, want %q", tc.p, got, tc.want)
			}
		})
	}
}

func TestBaseColorNameAlwaysInVocabulary(t *testing.T) {
	t.Parallel()

	vocab := make(map[string]bool, len(BaseColors))
	for _, c := range BaseColors {
		vocab[c] = true
	}

	// Sweep a coarse grid over the whole RGB cube.
	for r := 0; r <= 255; r += 17 {
		for g := 0; g <= 255; g += 17 {
			for b := 0; b <= 255; b += 17 {
				p := Pixel{uint8(r), uint8(g), uint8(b)}
				if got := BaseColorName(p); !vocab[got] {
					t.Fatalf("BaseColorName(%v) = %q, not a base color", p, got)
				}
			}
		}
	}
}

func TestNameColorRangeMidpoints(t *testing.T) {
	t.Parallel()

	// A triple at (or, for .5 midpoints, immediately next to) a range
	// midpoint must resolve to that range's name.
	for _, entry := range DefaultPalette {
		for _, cr := range entry.Ranges {
			mr, mg, mb := cr.midpoint()
			p := Pixel{uint8(mr), uint8(mg), uint8(mb)}
			if got := NameColor(p, DefaultPalette); got != entry.Name {
				t.Errorf("NameColor(%v) = %q, want %q", p, got, entry.Name)
			}
		}
	}
}

func TestNameColorEmptyPalette(t *testing.T) {
	t.Parallel()

	if got := NameColor(Pixel{10, 20, 30}, nil); got != "unknown" {
		t.Errorf("NameColor with empty palette = %q, want %q", got, "unknown")
	}
}

func TestColorRangeContains(t *testing.T) {
	t.Parallel()

	cr := ColorRange{Pixel{10, 20, 30}, Pixel{100, 120, 140}}
	tests := []struct {
		p    Pixel
		want bool
	}{
		{Pixel{10, 20, 30}, true},    // low corner inclusive
		{Pixel{100, 120, 140}, true}, // high corner inclusive
		{Pixel{50, 60, 70}, true},
		{Pixel{9, 60, 70}, false},
		{Pixel{50, 121, 70}, false},
		{Pixel{50, 60, 141}, false},
	}
	for _, tc := range tests {
		if got := cr.contains(tc.p); got != tc.want {
			t.Errorf("contains(%v) = %v, want %v", tc.p, got, tc.want)
		}
	}
}
