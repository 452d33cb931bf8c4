package ranker

import (
	"regexp"
	"strings"

	domain "github.com/greenverse/greenscore/pkg/types"
)

// Marketplace listings repeat the same base product per color and size.
// Dedupe collapses those variants by normalized base name, keeping the
// first-seen (and therefore best-ranked, post-sort) record.

var (
	reParenthetical = regexp.MustCompile(`\([^)]*\)`)
	reWhitespace    = regexp.MustCompile(`\s+`)
)

// variantTokens are color and size words stripped during normalization.
var variantTokens = map[string]struct{}{
	"black": {}, "white": {}, "red": {}, "blue": {}, "green": {},
	"yellow": {}, "grey": {}, "gray": {}, "navy": {}, "beige": {},
	"pink": {}, "purple": {}, "orange": {}, "brown": {}, "olive": {},
	"maroon": {}, "teal": {},
	"xs": {}, "s": {}, "m": {}, "l": {}, "xl": {}, "xxl": {}, "xxxl": {},
	"small": {}, "medium": {}, "large": {},
}

// normalizeTitle reduces a listing title to its base product name: strips
// parenthetical content, drops color/size tokens, collapses whitespace,
// lowercases.
func normalizeTitle(title string) string {
	s := strings.ToLower(title)
	s = reParenthetical.ReplaceAllString(s, " ")

	words := strings.Fields(s)
	kept := words[:0]
	for _, w := range words {
		w = strings.Trim(w, ",.-/")
		if w == "" {
			continue
		}
		if _, variant := variantTokens[w]; variant {
			continue
		}
		kept = append(kept, w)
	}

	return reWhitespace.ReplaceAllString(strings.Join(kept, " "), " ")
}

// dedupe keeps the first record per normalized base name, preserving order.
func dedupe(records []domain.AlternativeRecord) []domain.AlternativeRecord {
	seen := make(map[string]struct{}, len(records))
	var out []domain.AlternativeRecord
	for _, r := range records {
		key := normalizeTitle(r.Title)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, r)
	}
	return out
}
