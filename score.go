package imagesift

import (
	"sort"
	"strings"
)

// Additive score weights. Per-term contributions sum across all expanded
// terms with no cap.
const (
	weightOCRSubstring   = 10
	weightOCRWholeWord   = 5
	weightColorExact     = 7
	weightTypeSubstring  = 5
	weightKeywordExact   = 8
	weightKeywordPartial = 3
	weightFilename       = 4
)

// synonyms expands a literal query term into related terms. Expansion is
// one level deep: synonyms of synonyms are not chased.
var synonyms = map[string][]string{
	"upi":        {"payment", "transaction", "gpay", "phonepe", "paytm"},
	"payment":    {"upi", "transaction", "paid", "money"},
	"id":         {"identity", "card", "student", "college"},
	"card":       {"id", "identity"},
	"bill":       {"invoice", "receipt", "payment"},
	"receipt":    {"bill", "invoice"},
	"screenshot": {"screen", "capture"},
	"photo":      {"picture", "image", "pic"},
	"doc":        {"document", "paper"},
	"document":   {"doc", "paper", "file"},
}

// ExpandQuery lowercases the raw terms and unions in one level of
// synonyms. First-seen order, deduplicated, so output is deterministic.
func ExpandQuery(terms []string) []string {
	var out []string
	seen := make(map[string]bool, len(terms))
	add := func(t string) {
		if t == "" || seen[t] {
			return
		}
		seen[t] = true
		out = append(out, t)
	}
	for _, t := range terms {
		add(strings.ToLower(strings.TrimSpace(t)))
	}
	// Expand only the literal terms, not terms added by expansion.
	literals := len(out)
	for _, t := range out[:literals] {
		for _, syn := range synonyms[t] {
			add(syn)
		}
	}
	return out
}

// Score computes the additive relevance of a record against an expanded
// term set. It never fails: absent or malformed fields contribute zero.
func Score(rec *Record, terms []string) int {
	if rec == nil || len(terms) == 0 {
		return 0
	}

	ocr := strings.ToLower(rec.OCRText)
	words := make(map[string]bool)
	for _, w := range strings.Fields(ocr) {
		words[w] = true
	}
	colors := make(map[string]bool, len(rec.Colors))
	for _, c := range rec.Colors {
		colors[strings.ToLower(c)] = true
	}
	imageType := strings.ToLower(string(rec.ImageType))
	filename := strings.ToLower(rec.OriginalFilename)

	score := 0
	for _, term := range terms {
		term = strings.ToLower(term)
		if term == "" {
			continue
		}

		// OCR text: strongest signal, with a whole-word bonus.
		if ocr != "" && strings.Contains(ocr, term) {
			score += weightOCRSubstring
			if words[term] {
				score += weightOCRWholeWord
			}
		}

		if colors[term] {
			score += weightColorExact
		}

		if imageType != "" && strings.Contains(imageType, term) {
			score += weightTypeSubstring
		}

		for _, kw := range rec.Keywords {
			kw = strings.ToLower(kw)
			if kw == "" {
				continue
			}
			if kw == term {
				score += weightKeywordExact
			}
			// Partial match stacks with the exact bonus and across keywords.
			if strings.Contains(kw, term) || strings.Contains(term, kw) {
				score += weightKeywordPartial
			}
		}

		if filename != "" && strings.Contains(filename, term) {
			score += weightFilename
		}
	}
	return score
}

// ScoredRecord pairs a record with its relevance for one query.
type ScoredRecord struct {
	Record *Record `json:"record"`
	Score  int     `json:"relevance"`
}

// Rank scores every record against the expanded terms, drops zero scores,
// and orders the rest descending. The sort is stable: equal scores keep
// collection order.
func Rank(records []*Record, terms []string) []ScoredRecord {
	var out []ScoredRecord
	for _, rec := range records {
		if s := Score(rec, terms); s > 0 {
			out = append(out, ScoredRecord{Record: rec, Score: s})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}
