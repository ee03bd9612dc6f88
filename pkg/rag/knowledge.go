package rag

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// KnowledgeItem is a single titled passage in the knowledge base, tagged
// with the topic (source collection) it came from. Items are immutable
// after load.
type KnowledgeItem struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Topic   string `json:"topic"`
}

// Record is one entry of a source collection before it is tagged with a
// topic. This is the shape of the on-disk collection files.
type Record struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// KnowledgeBase is the fixed, in-memory set of passages the retriever
// searches. It is built once at startup and read-only afterwards, so it is
// shared lock-free across all concurrent requests.
type KnowledgeBase struct {
	items  []KnowledgeItem
	topics []string
}

// NewKnowledgeBase concatenates the given collections into one knowledge
// base, tagging every record with its collection's topic name. Collection
// order is preserved; it fixes the stable tie-break order during ranking.
func NewKnowledgeBase(collections []Collection) *KnowledgeBase {
	kb := &KnowledgeBase{}
	for _, col := range collections {
		kb.topics = append(kb.topics, col.Topic)
		for _, rec := range col.Records {
			kb.items = append(kb.items, KnowledgeItem{
				Title:   rec.Title,
				Content: rec.Content,
				Topic:   col.Topic,
			})
		}
	}
	return kb
}

// Collection is a named group of records; the name becomes the topic of
// every item loaded from it.
type Collection struct {
	Topic   string
	Records []Record
}

// LoadKnowledgeBase reads every *.json file in dir as one collection whose
// topic is the file name without extension. Files are loaded in sorted
// name order so the knowledge base layout is deterministic across runs.
func LoadKnowledgeBase(dir string) (*KnowledgeBase, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read knowledge dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".json") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	if len(names) == 0 {
		return nil, fmt.Errorf("no collection files in %s", dir)
	}

	var collections []Collection
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("read collection %s: %w", name, err)
		}

		var records []Record
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("parse collection %s: %w", name, err)
		}

		collections = append(collections, Collection{
			Topic:   strings.TrimSuffix(name, ".json"),
			Records: records,
		})
	}

	return NewKnowledgeBase(collections), nil
}

// Items returns the full item list in load order.
func (kb *KnowledgeBase) Items() []KnowledgeItem {
	return kb.items
}

// Topics returns the collection names in load order.
func (kb *KnowledgeBase) Topics() []string {
	return kb.topics
}

// CountByTopic returns how many items each topic contributed.
func (kb *KnowledgeBase) CountByTopic() map[string]int {
	counts := make(map[string]int, len(kb.topics))
	for _, item := range kb.items {
		counts[item.Topic]++
	}
	return counts
}

// Len returns the total number of items.
func (kb *KnowledgeBase) Len() int {
	return len(kb.items)
}
