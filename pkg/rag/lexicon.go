package rag

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// Lexicon carries the static wordlists that drive query filtering and
// expansion: a stopword set and a table of synonym ("meaning") groups keyed
// by their canonical term. It is read-only after construction and safe to
// share across concurrent requests.
type Lexicon struct {
	stopwords map[string]bool
	meanings  map[string][]string
}

// lexiconFile is the on-disk JSON shape for an externally maintained lexicon.
type lexiconFile struct {
	Stopwords []string            `json:"stopwords"`
	Meanings  map[string][]string `json:"meanings"`
}

var defaultStopwords = []string{
	"what", "is", "are", "the", "a", "an", "do", "you", "know", "about",
	"tell", "me", "can", "i", "how", "to", "of", "for", "in", "on", "at",
	"with", "and", "or", "if", "does", "it", "they", "their", "there",
}

var defaultMeanings = map[string][]string{
	"pay":          {"salary", "income", "earn", "earnings", "rate", "payout", "paid", "money"},
	"monthly":      {"month", "4", "weeks", "cycle"},
	"requirements": {"requirement", "needs", "needed", "qualification", "prerequisite"},
	"training":     {"orientation", "lesson", "course", "session"},
	"install":      {"setup", "installation", "installing"},
	"time":         {"hours", "schedule", "shift", "duration"},
}

// DefaultLexicon returns the built-in stopword and synonym tables.
func DefaultLexicon() *Lexicon {
	return NewLexicon(defaultStopwords, defaultMeanings)
}

// NewLexicon builds a lexicon from explicit wordlists. The meanings map is
// copied so callers can't mutate the lexicon after construction.
func NewLexicon(stopwords []string, meanings map[string][]string) *Lexicon {
	stopSet := make(map[string]bool, len(stopwords))
	for _, w := range stopwords {
		stopSet[w] = true
	}

	meaningCopy := make(map[string][]string, len(meanings))
	for key, group := range meanings {
		meaningCopy[key] = append([]string(nil), group...)
	}

	return &Lexicon{
		stopwords: stopSet,
		meanings:  meaningCopy,
	}
}

// LoadLexicon reads an external lexicon JSON file. Missing sections fall
// back to the built-in defaults, so a file may override only stopwords or
// only meanings.
func LoadLexicon(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lexicon file: %w", err)
	}

	var file lexiconFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse lexicon file: %w", err)
	}

	if len(file.Stopwords) == 0 {
		file.Stopwords = defaultStopwords
	}
	if len(file.Meanings) == 0 {
		file.Meanings = defaultMeanings
	}

	return NewLexicon(file.Stopwords, file.Meanings), nil
}

// IsStopword reports whether a token is a function word to be dropped.
func (l *Lexicon) IsStopword(token string) bool {
	return l.stopwords[token]
}

// Meaningful filters a token list down to tokens worth matching: not a
// stopword and at least 3 characters long.
func (l *Lexicon) Meaningful(tokens []string) []string {
	result := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if len(t) > 2 && !l.stopwords[t] {
			result = append(result, t)
		}
	}
	return result
}

// Expand returns the synonym-expanded superset of tokens. A token that
// matches a group's key or any of its members pulls in the whole group
// (key included). Expansion is one level deep only: synonyms of synonyms
// are never chased. The result is deduplicated and sorted so identical
// inputs always produce identical output.
func (l *Lexicon) Expand(tokens []string) []string {
	expanded := make(map[string]bool, len(tokens)*2)
	for _, t := range tokens {
		expanded[t] = true
	}

	for _, token := range tokens {
		for key, group := range l.meanings {
			if token != key && !contains(group, token) {
				continue
			}
			expanded[key] = true
			for _, member := range group {
				expanded[member] = true
			}
		}
	}

	result := make([]string, 0, len(expanded))
	for t := range expanded {
		result = append(result, t)
	}
	sort.Strings(result)
	return result
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
