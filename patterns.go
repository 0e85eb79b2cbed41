package imagesift

import "strings"

// filenameHints maps an image type to filename substrings that suggest it.
// Consulted only as a fallback when the statistical rules are inconclusive.
// Checked in this order.
var filenameHints = []struct {
	Type  ImageType
	Hints []string
}{
	{TypeScreenshot, []string{"screenshot", "screen", "capture"}},
	{TypeDocument, []string{"doc", "scan", "pdf"}},
	{TypePhoto, []string{"img", "photo", "pic", "dsc", "jpg"}},
	{TypeGraphic, []string{"logo", "icon", "banner", "graphic", "sprite", "badge"}},
}

// memePhrases are caption fragments common in meme images.
var memePhrases = []string{
	"when you", "me when", "nobody:", "pov:", "be like",
	"that moment", "meme", "lol", "lmao", "bruh",
	"top text", "bottom text",
}

// containsAny reports whether the lowercased string contains any of the
// given lowercase patterns.
func containsAny(lower string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}
