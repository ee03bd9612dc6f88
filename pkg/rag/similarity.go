package rag

import "strings"

// Tiered bonus weights and thresholds for token matches. The relevance
// floor in the retriever is calibrated against these: one medium match is
// not enough to survive, one strong match or two mediums is.
const (
	strongMatchThreshold = 0.9
	mediumMatchThreshold = 0.75
	weakMatchThreshold   = 0.6

	strongMatchWeight = 6
	mediumMatchWeight = 3
	weakMatchWeight   = 1

	titleMatchBonus = 2

	containmentScore = 0.85
)

// Scorer computes the relevance of a knowledge item for a set of query
// tokens. It is a named strategy so the char-aligned default can later be
// swapped for a real fuzzy or embedding scorer without touching the
// retriever.
type Scorer func(item KnowledgeItem, queryTokens []string) float64

// Similarity rates how close two normalized tokens are, in [0,1].
// Equal tokens score 1, a strict containment scores a fixed 0.85, and
// anything else scores the fraction of position-aligned equal characters
// over the longer token's length. This is deliberately not edit distance:
// it is cheap, prefix-sensitive, and good enough for minor misspellings.
func Similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	if a == "" || b == "" {
		return 0
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return containmentScore
	}

	shorter := len(a)
	longer := len(b)
	if shorter > longer {
		shorter, longer = longer, shorter
	}

	matches := 0
	for i := 0; i < shorter; i++ {
		if a[i] == b[i] {
			matches++
		}
	}
	return float64(matches) / float64(longer)
}

// ScoreItem is the default Scorer. For each sentence of the item's content
// it accumulates tiered bonuses over every (query token, content token)
// pair and keeps the best-scoring sentence, so long documents can't win on
// sheer token count. A small extra bonus is added per query token that
// appears verbatim in the normalized title.
func ScoreItem(item KnowledgeItem, queryTokens []string) float64 {
	var bestSentenceScore float64

	for _, sentence := range SplitSentences(item.Content) {
		words := Tokenize(sentence)

		var score float64
		for _, q := range queryTokens {
			for _, w := range words {
				sim := Similarity(q, w)
				switch {
				case sim > strongMatchThreshold:
					score += strongMatchWeight
				case sim > mediumMatchThreshold:
					score += mediumMatchWeight
				case sim > weakMatchThreshold:
					score += weakMatchWeight
				}
			}
		}

		if score > bestSentenceScore {
			bestSentenceScore = score
		}
	}

	title := Normalize(item.Title)
	for _, q := range queryTokens {
		if strings.Contains(title, q) {
			bestSentenceScore += titleMatchBonus
		}
	}

	return bestSentenceScore
}
