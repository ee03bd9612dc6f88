package rag

import (
	"math"
	"testing"
)

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"equal tokens", "pay", "pay", 1},
		{"containment", "pay", "payout", 0.85},
		{"containment reversed", "payout", "pay", 0.85},
		{"no aligned characters", "abc", "xyz", 0},
		{"partial prefix alignment", "pay", "paid", 0.5},
		{"ratio over longer length", "kitten", "kitchen", 3.0 / 7.0},
		{"empty left", "", "pay", 0},
		{"empty right", "pay", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Similarity(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Similarity(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestSimilaritySymmetry(t *testing.T) {
	pairs := [][2]string{
		{"pay", "pay"},
		{"pay", "payout"},
		{"install", "installation"},
		{"kitten", "kitchen"},
		{"abc", "abcdef"},
	}

	for _, p := range pairs {
		ab := Similarity(p[0], p[1])
		ba := Similarity(p[1], p[0])
		if ab != ba {
			t.Errorf("Similarity(%q, %q) = %v but Similarity(%q, %q) = %v", p[0], p[1], ab, p[1], p[0], ba)
		}
	}
}

func TestScoreItemTiers(t *testing.T) {
	tests := []struct {
		name   string
		item   KnowledgeItem
		tokens []string
		want   float64
	}{
		{
			name:   "exact content match",
			item:   KnowledgeItem{Title: "Other", Content: "the payout arrives weekly."},
			tokens: []string{"payout"},
			want:   strongMatchWeight,
		},
		{
			name:   "containment is a medium match",
			item:   KnowledgeItem{Title: "Other", Content: "the payout arrives weekly."},
			tokens: []string{"pay"},
			want:   mediumMatchWeight,
		},
		{
			name:   "title bonus without content match",
			item:   KnowledgeItem{Title: "Hello World", Content: "nothing relevant."},
			tokens: []string{"hello"},
			want:   titleMatchBonus,
		},
		{
			name:   "no match at all",
			item:   KnowledgeItem{Title: "Other", Content: "completely unrelated."},
			tokens: []string{"zebra"},
			want:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScoreItem(tt.item, tt.tokens)
			if got != tt.want {
				t.Errorf("ScoreItem = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScoreItemTakesBestSentenceNotSum(t *testing.T) {
	// Two sentences each holding one exact match; a per-document sum would
	// be 12, the per-sentence best must be 6.
	item := KnowledgeItem{
		Title:   "Greetings",
		Content: "hello there. hello again.",
	}

	got := ScoreItem(item, []string{"hello"})
	if got != strongMatchWeight {
		t.Errorf("ScoreItem = %v, want %v (best sentence, not document sum)", got, strongMatchWeight)
	}
}

func TestScoreItemMonotonicInMatches(t *testing.T) {
	weak := KnowledgeItem{Title: "A", Content: "the payout arrives weekly."}
	strong := KnowledgeItem{Title: "A", Content: "the payout arrives weekly and the payout is reliable."}

	tokens := []string{"payout"}
	if ScoreItem(strong, tokens) <= ScoreItem(weak, tokens) {
		t.Error("more matches in one sentence must score strictly higher")
	}
}

func TestScoreItemTitleBonusStacks(t *testing.T) {
	item := KnowledgeItem{
		Title:   "Pay Rate",
		Content: "The monthly pay is 5000 pesos.",
	}

	// "pay" hits the content exactly (+6) and the title verbatim (+2).
	got := ScoreItem(item, []string{"pay"})
	want := float64(strongMatchWeight + titleMatchBonus)
	if got != want {
		t.Errorf("ScoreItem = %v, want %v", got, want)
	}
}
