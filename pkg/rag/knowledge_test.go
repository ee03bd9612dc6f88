package rag

import (
	"os"
	"path/filepath"
	"testing"
)

func writeCollection(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadKnowledgeBase(t *testing.T) {
	dir := t.TempDir()
	writeCollection(t, dir, "zeta.json", `[{"title":"Z1","content":"z one."}]`)
	writeCollection(t, dir, "alpha.json", `[
		{"title":"A1","content":"a one."},
		{"title":"A2","content":"a two."}
	]`)
	writeCollection(t, dir, "notes.txt", `ignored`)

	kb, err := LoadKnowledgeBase(dir)
	if err != nil {
		t.Fatal(err)
	}

	if got := kb.Len(); got != 3 {
		t.Fatalf("Len() = %d, want 3", got)
	}

	// Files load in sorted name order regardless of creation order.
	wantTopics := []string{"alpha", "zeta"}
	topics := kb.Topics()
	if len(topics) != len(wantTopics) {
		t.Fatalf("Topics() = %v, want %v", topics, wantTopics)
	}
	for i := range wantTopics {
		if topics[i] != wantTopics[i] {
			t.Errorf("Topics()[%d] = %q, want %q", i, topics[i], wantTopics[i])
		}
	}

	items := kb.Items()
	if items[0].Title != "A1" || items[0].Topic != "alpha" {
		t.Errorf("first item = %+v, want A1/alpha", items[0])
	}
	if items[2].Title != "Z1" || items[2].Topic != "zeta" {
		t.Errorf("last item = %+v, want Z1/zeta", items[2])
	}

	counts := kb.CountByTopic()
	if counts["alpha"] != 2 || counts["zeta"] != 1 {
		t.Errorf("CountByTopic() = %v", counts)
	}
}

func TestLoadKnowledgeBaseMissingDir(t *testing.T) {
	if _, err := LoadKnowledgeBase(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected an error for a missing directory")
	}
}

func TestLoadKnowledgeBaseEmptyDir(t *testing.T) {
	if _, err := LoadKnowledgeBase(t.TempDir()); err == nil {
		t.Error("expected an error when no collection files exist")
	}
}

func TestLoadKnowledgeBaseMalformedFile(t *testing.T) {
	dir := t.TempDir()
	writeCollection(t, dir, "bad.json", `{"not":"an array"}`)

	if _, err := LoadKnowledgeBase(dir); err == nil {
		t.Error("expected a parse error for a non-array collection")
	}
}

func TestNewKnowledgeBasePreservesOrder(t *testing.T) {
	kb := NewKnowledgeBase([]Collection{
		{Topic: "b", Records: []Record{{Title: "B1", Content: "b."}}},
		{Topic: "a", Records: []Record{{Title: "A1", Content: "a."}}},
	})

	// Explicit construction keeps caller order; only disk loading sorts.
	if kb.Topics()[0] != "b" {
		t.Errorf("Topics()[0] = %q, want b", kb.Topics()[0])
	}
	if kb.Items()[0].Topic != "b" {
		t.Errorf("Items()[0].Topic = %q, want b", kb.Items()[0].Topic)
	}
}
