// Package tokenizer splits sentence text into position-tagged word tokens.
package tokenizer

import (
	"strings"
	"unicode"

	"github.com/heartmarshall/deeplisten-backend/internal/domain"
)

// Token is one word found in a sentence.
// Start and End are rune offsets into the input, End exclusive. Tokens
// expanded from a contraction share the span of the whole contraction.
type Token struct {
	Raw        string
	Normalized string
	Start      int
	End        int
}

// singleLetterWords are the one-letter tokens kept despite the length filter.
var singleLetterWords = map[string]struct{}{
	"a": {},
	"i": {},
}

// Tokenize returns the word tokens of text in order of appearance.
//
// A token is a maximal run of letters, digits and apostrophes, plus any
// combining marks that follow them, with leading and trailing apostrophes
// trimmed. Runs that are empty after trimming, purely
// numeric, or a single letter (except "a" and "i") are dropped. Contractions in
// the fixed table expand to several tokens; a possessive "'s" outside the table
// is stripped from the normalized form.
func Tokenize(text string) []Token {
	runes := []rune(text)
	var tokens []Token

	for i := 0; i < len(runes); {
		if !isWordRune(runes[i]) {
			i++
			continue
		}

		start := i
		for i < len(runes) && (isWordRune(runes[i]) || isMark(runes[i])) {
			i++
		}
		end := i

		for start < end && domain.IsApostrophe(runes[start]) {
			start++
		}
		for end > start && domain.IsApostrophe(runes[end-1]) {
			end--
		}
		if start == end {
			continue
		}

		raw := string(runes[start:end])
		norm := domain.NormalizeText(raw)
		if isNumeric(norm) {
			continue
		}

		if parts, ok := contractions[norm]; ok {
			for _, p := range parts {
				tokens = append(tokens, Token{Raw: raw, Normalized: p, Start: start, End: end})
			}
			continue
		}

		norm = stripPossessive(norm)
		if !keepLength(norm) {
			continue
		}
		tokens = append(tokens, Token{Raw: raw, Normalized: norm, Start: start, End: end})
	}

	return tokens
}

// Distinct returns the normalized forms of tokens without duplicates,
// in order of first appearance.
func Distinct(tokens []Token) []string {
	seen := make(map[string]struct{}, len(tokens))
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if _, ok := seen[t.Normalized]; ok {
			continue
		}
		seen[t.Normalized] = struct{}{}
		out = append(out, t.Normalized)
	}
	return out
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || domain.IsApostrophe(r)
}

// isMark reports combining marks, which continue a run but never start one,
// so a decomposed "café" stays one token covering its accent.
func isMark(r rune) bool {
	return unicode.Is(unicode.M, r)
}

func isNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) && r != '\'' {
			return false
		}
	}
	return true
}

func keepLength(s string) bool {
	n := 0
	for range s {
		n++
		if n > 1 {
			return true
		}
	}
	_, ok := singleLetterWords[s]
	return ok
}

func stripPossessive(s string) string {
	if base, ok := strings.CutSuffix(s, "'s"); ok && base != "" {
		return base
	}
	return s
}
