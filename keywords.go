package imagesift

import "strings"

// keywordPatterns maps a search category to the lowercase trigger
// substrings that mark it. A category is emitted when any trigger occurs
// anywhere in the lowercased OCR text. Slice order fixes the output order.
//
// The bare word "id" is deliberately absent from the id_card triggers: as
// a substring it matches "paid", "video" and half the dictionary. The
// rupee shorthand "rs" is absent from the payment triggers for the same
// reason ("hours", "users", "offers"); "rupee", "inr" and "₹" cover the
// currency.
var keywordPatterns = []struct {
	Category string
	Triggers []string
}{
	{"payment", []string{"upi", "payment", "transaction", "paid", "rupee", "₹", "inr", "gpay", "phonepe", "paytm", "debited", "credited"}},
	{"bill", []string{"invoice", "bill", "receipt", "order"}},
	{"id_card", []string{"identity", "id card", "college", "university", "student", "enrollment"}},
	{"ticket", []string{"ticket", "booking", "flight", "train", "bus", "pnr", "boarding pass"}},
	{"email", []string{"email", "inbox", "subject:", "from:", "to:", "compose"}},
	{"chat", []string{"chat", "message", "whatsapp", "telegram", "typing..."}},
	{"social_media", []string{"instagram", "facebook", "twitter", "linkedin", "followers", "likes", "retweet"}},
	{"calendar", []string{"calendar", "meeting", "schedule", "appointment", "reminder"}},
	{"map", []string{"directions", "route", "navigation", "km away", "nearby"}},
	{"weather", []string{"weather", "forecast", "temperature", "humidity", "°c", "°f"}},
	{"news", []string{"breaking news", "headline", "reported", "correspondent"}},
	{"shopping", []string{"cart", "checkout", "amazon", "flipkart", "delivery", "order placed", "wishlist"}},
	{"education", []string{"exam", "assignment", "lecture", "syllabus", "homework", "semester"}},
	{"medical", []string{"prescription", "doctor", "hospital", "pharmacy", "dosage", "diagnosis"}},
	{"financial", []string{"bank", "account balance", "statement", "loan", "emi", "interest rate"}},
	{"travel", []string{"itinerary", "hotel", "check-in", "passport", "visa", "departure"}},
	{"food", []string{"menu", "restaurant", "recipe", "zomato", "swiggy", "dine"}},
	{"code", []string{"func ", "def ", "import ", "class ", "exception", "stack trace", "compile"}},
}

// ExtractKeywords scans OCR text against the trigger tables and returns
// the matched categories plus the image type and orientation, first-seen
// order, deduplicated. Deterministic for identical inputs.
func ExtractKeywords(ocrText string, imageType ImageType, orientation Orientation) []string {
	lower := strings.ToLower(ocrText)

	var out []string
	seen := make(map[string]bool)
	add := func(kw string) {
		if kw == "" || seen[kw] {
			return
		}
		seen[kw] = true
		out = append(out, kw)
	}

	for _, kp := range keywordPatterns {
		if containsAny(lower, kp.Triggers) {
			add(kp.Category)
		}
	}
	add(string(imageType))
	add(string(orientation))
	return out
}
