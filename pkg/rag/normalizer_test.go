package rag

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "lowercase and punctuation",
			input: "Hello, World!",
			want:  "hello world",
		},
		{
			name:  "currency symbol expanded",
			input: "$5",
			want:  "dollar 5",
		},
		{
			name:  "digit run isolated from letters",
			input: "4weeks",
			want:  "4 weeks",
		},
		{
			name:  "whitespace collapsed",
			input: "  too   many \t spaces ",
			want:  "too many spaces",
		},
		{
			name:  "apostrophes become spaces",
			input: "what's up?",
			want:  "what s up",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "whitespace only",
			input: "   \n\t  ",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"Hello, World!",
		"$5000 per month",
		"4weeks of training?!",
		"",
		"already normalized text",
	}

	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "simple sentence",
			input: "The monthly pay is 5000 pesos.",
			want:  []string{"the", "monthly", "pay", "is", "5000", "pesos"},
		},
		{
			name:  "empty string yields no tokens",
			input: "",
			want:  nil,
		},
		{
			name:  "punctuation only yields no tokens",
			input: "?!.,;",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"two sentences", "First one. Second one.", 2},
		{"question and exclamation", "Really? Yes!", 2},
		{"no terminator", "just a fragment", 1},
		{"trailing fragment", "Done. and then", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitSentences(tt.input)
			if len(got) != tt.want {
				t.Errorf("SplitSentences(%q) = %d sentences %v, want %d", tt.input, len(got), got, tt.want)
			}
		})
	}
}
