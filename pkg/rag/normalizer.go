package rag

import (
	"regexp"
	"strings"
)

// Pre-compiled patterns. Normalization runs on every request and on every
// content sentence during scoring, so these must not be rebuilt per call.
var (
	currencyPattern   = regexp.MustCompile(`[$]`)
	digitRunPattern   = regexp.MustCompile(`[0-9]+`)
	nonWordPattern    = regexp.MustCompile(`[^a-z0-9_\s]`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// Normalize canonicalizes raw text for lexical matching:
// lowercase, currency symbol expanded to a literal word, digit runs isolated
// by spaces (so "4weeks" tokenizes as "4" + "weeks"), remaining punctuation
// replaced by spaces, whitespace collapsed.
//
// Normalize is pure and total: any input string (including empty) yields a
// valid result, and Normalize(Normalize(x)) == Normalize(x).
func Normalize(text string) string {
	text = strings.ToLower(text)
	text = currencyPattern.ReplaceAllString(text, " dollar ")
	text = digitRunPattern.ReplaceAllString(text, " $0 ")
	text = nonWordPattern.ReplaceAllString(text, " ")
	text = whitespacePattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// Tokenize normalizes text and splits it into non-empty tokens.
func Tokenize(text string) []string {
	normalized := Normalize(text)
	if normalized == "" {
		return nil
	}
	return strings.Split(normalized, " ")
}

// SplitSentences breaks content on sentence-ending punctuation. The scorer
// evaluates each sentence separately so long documents don't win on length.
func SplitSentences(text string) []string {
	var sentences []string
	start := 0
	for i, r := range text {
		if r == '.' || r == '!' || r == '?' {
			sentences = append(sentences, text[start:i+1])
			start = i + 1
		}
	}
	if start < len(text) {
		sentences = append(sentences, text[start:])
	}
	if len(sentences) == 0 {
		return []string{text}
	}
	return sentences
}
