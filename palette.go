package imagesift

// Pixel is one RGB sample, each channel in [0,255].
type Pixel struct {
	R, G, B uint8
}

// ColorRange is an axis-aligned box in RGB space.
type ColorRange struct {
	Low, High Pixel
}

// contains reports whether p falls inside the box (inclusive).
func (cr ColorRange) contains(p Pixel) bool {
	return p.R >= cr.Low.R && p.R <= cr.High.R &&
		p.G >= cr.Low.G && p.G <= cr.High.G &&
		p.B >= cr.Low.B && p.B <= cr.High.B
}

// midpoint returns the center of the box per channel.
func (cr ColorRange) midpoint() (r, g, b float64) {
	r = (float64(cr.Low.R) + float64(cr.High.R)) / 2
	g = (float64(cr.Low.G) + float64(cr.High.G)) / 2
	b = (float64(cr.Low.B) + float64(cr.High.B)) / 2
	return r, g, b
}

// PaletteEntry names one or more RGB boxes.
type PaletteEntry struct {
	Name   string
	Ranges []ColorRange
}

// Palette is an ordered set of named color ranges. Iteration order is a
// documented contract: distance ties in NameColor resolve to the earliest
// entry. Palettes are queried, never mutated, at runtime.
type Palette []PaletteEntry

// DefaultPalette is the fine-grained descriptive color vocabulary.
// Superseded for search tagging by the base vocabulary (see BaseColorName)
// but still available through Config.FineColorNames.
var DefaultPalette = Palette{
	{Name: "red", Ranges: []ColorRange{{Pixel{150, 0, 0}, Pixel{255, 100, 100}}}},
	{Name: "orange", Ranges: []ColorRange{{Pixel{200, 100, 0}, Pixel{255, 180, 100}}}},
	{Name: "yellow", Ranges: []ColorRange{{Pixel{200, 200, 0}, Pixel{255, 255, 150}}}},
	{Name: "green", Ranges: []ColorRange{{Pixel{0, 100, 0}, Pixel{150, 255, 150}}}},
	{Name: "blue", Ranges: []ColorRange{{Pixel{0, 0, 150}, Pixel{150, 150, 255}}}},
	{Name: "purple", Ranges: []ColorRange{{Pixel{100, 0, 100}, Pixel{200, 100, 200}}}},
	{Name: "pink", Ranges: []ColorRange{{Pixel{200, 100, 150}, Pixel{255, 200, 220}}}},
	{Name: "brown", Ranges: []ColorRange{{Pixel{100, 50, 0}, Pixel{180, 120, 80}}}},
	{Name: "black", Ranges: []ColorRange{{Pixel{0, 0, 0}, Pixel{60, 60, 60}}}},
	{Name: "white", Ranges: []ColorRange{{Pixel{200, 200, 200}, Pixel{255, 255, 255}}}},
	{Name: "gray", Ranges: []ColorRange{{Pixel{80, 80, 80}, Pixel{180, 180, 180}}}},
	{Name: "cyan", Ranges: []ColorRange{{Pixel{0, 150, 150}, Pixel{150, 255, 255}}}},
	{Name: "teal", Ranges: []ColorRange{{Pixel{0, 100, 100}, Pixel{100, 180, 180}}}},
}

// BaseColors is the reduced 9-color output vocabulary used for stable
// search tagging. Every pixel maps to exactly one of these.
var BaseColors = []string{
	"red", "blue", "green", "yellow", "black", "white", "gray", "brown", "purple",
}

// basePalette holds the box-range lookup tried first by BaseColorName.
// Deliberately narrow: pixels outside every box fall through to the
// channel-dominance heuristics. The blue and green boxes stop at 100 on
// their off channels so teal, olive and violet shades reach the family
// rules instead of being swallowed here.
var basePalette = Palette{
	{Name: "red", Ranges: []ColorRange{{Pixel{150, 0, 0}, Pixel{255, 100, 100}}}},
	{Name: "blue", Ranges: []ColorRange{{Pixel{0, 0, 150}, Pixel{100, 150, 255}}}},
	{Name: "green", Ranges: []ColorRange{{Pixel{0, 100, 0}, Pixel{100, 255, 100}}}},
	{Name: "yellow", Ranges: []ColorRange{{Pixel{200, 200, 0}, Pixel{255, 255, 150}}}},
	{Name: "black", Ranges: []ColorRange{{Pixel{0, 0, 0}, Pixel{60, 60, 60}}}},
	{Name: "white", Ranges: []ColorRange{{Pixel{200, 200, 200}, Pixel{255, 255, 255}}}},
	{Name: "gray", Ranges: []ColorRange{{Pixel{80, 80, 80}, Pixel{180, 180, 180}}}},
	{Name: "brown", Ranges: []ColorRange{{Pixel{100, 50, 0}, Pixel{180, 120, 80}}}},
	{Name: "purple", Ranges: []ColorRange{{Pixel{100, 0, 100}, Pixel{200, 100, 200}}}},
}
