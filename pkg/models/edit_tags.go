package models

// Edit taxonomy: the closed set of labels a reviewer may attach to an
// approval. Unknown tags are rejected at the API boundary.
var editTags = map[string]struct{}{
	"TONE_CASUAL":          {},
	"TONE_FLIRT_UP":        {},
	"TONE_CRINGE_DOWN":     {},
	"TONE_ENERGY_UP":       {},
	"TONE_LESS_AI":         {},
	"TONE_ROMANTIC_UP":     {},
	"STRUCT_SHORTEN":       {},
	"STRUCT_BUBBLE":        {},
	"CONTENT_EMOJI_ADD":    {},
	"CONTENT_EMOJI_CUT":    {},
	"CONTENT_QUESTION_ADD": {},
	"CONTENT_QUESTION_CUT": {},
	"CONTENT_REWRITE":      {},
	"CONTENT_SENTENCE_ADD": {},
	"ENGLISH_SLANG":        {},
	"TEXT_SPEAK":           {},
	"CTA_SOFT":             {},
	"CTA_MEDIUM":           {},
	"CTA_DIRECT":           {},
}

// ValidEditTag reports whether tag belongs to the taxonomy.
func ValidEditTag(tag string) bool {
	_, ok := editTags[tag]
	return ok
}

// InvalidEditTags returns the subset of tags not in the taxonomy,
// preserving input order.
func InvalidEditTags(tags []string) []string {
	var bad []string
	for _, t := range tags {
		if !ValidEditTag(t) {
			bad = append(bad, t)
		}
	}
	return bad
}
