package safety

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// leetMap holds the common letter-substitution tricks users (and models)
// produce. Applied after casefolding, before diacritic stripping.
var leetMap = map[rune]rune{
	'0': 'o',
	'1': 'l',
	'3': 'e',
	'4': 'a',
	'5': 's',
	'7': 't',
	'@': 'a',
}

// NormalizeVariants returns every normalized form to match against. The
// '1' substitution is ambiguous (l0v3 vs k1ll), so texts containing it
// produce a second form with 1 folded to i instead of l.
func NormalizeVariants(text string) []string {
	primary := Normalize(text)
	if !strings.ContainsRune(text, '1') {
		return []string{primary}
	}
	alt := Normalize(strings.Map(func(r rune) rune {
		if r == '1' {
			return 'i'
		}
		return r
	}, text))
	if alt == primary {
		return []string{primary}
	}
	return []string{primary, alt}
}

// Normalize canonicalizes text for matching: casefold, map leet
// substitutions, strip diacritics, and collapse non-alphanumeric runs
// into single spaces.
func Normalize(text string) string {
	lowered := strings.ToLower(text)

	mapped := strings.Map(func(r rune) rune {
		if sub, ok := leetMap[r]; ok {
			return sub
		}
		return r
	}, lowered)

	// NFD decomposition, then drop combining marks.
	decomposed := norm.NFD.String(mapped)
	var b strings.Builder
	b.Grow(len(decomposed))
	lastSpace := true
	for _, r := range decomposed {
		switch {
		case unicode.Is(unicode.Mn, r):
			// combining mark, skip
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastSpace = false
		default:
			if !lastSpace {
				b.WriteRune(' ')
				lastSpace = true
			}
		}
	}
	return strings.TrimSpace(b.String())
}
