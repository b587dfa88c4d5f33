package domain

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeText turns a surface form into the key words are stored under.
// It trims, lowercases, composes to NFC so precomposed and decomposed
// spellings of "café" match, folds typographic apostrophes to ' and collapses
// runs of spaces. Diacritics and hyphens are kept.
func NormalizeText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	text = norm.NFC.String(strings.ToLower(text))

	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if r == ' ' {
			if prevSpace {
				continue
			}
			prevSpace = true
		} else {
			prevSpace = false
		}
		if IsApostrophe(r) {
			r = '\''
		}
		b.WriteRune(r)
	}
	return b.String()
}

// IsApostrophe reports whether r is an ASCII or typographic apostrophe.
func IsApostrophe(r rune) bool {
	return r == '\'' || r == '’' || r == '‘'
}
