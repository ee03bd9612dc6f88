package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"kb-chatbot-be/internal/config"
	"kb-chatbot-be/pkg/rag"
)

// Runs the retrieval pipeline on a query from argv and dumps every scored
// candidate, so threshold and lexicon changes can be checked without
// standing up the server or an LLM.
//
// Usage: go run ./cmd/debug "how much is the pay" [topic]
func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: trace_retrieval <query> [forced-topic]")
	}
	query := os.Args[1]
	forcedTopic := ""
	if len(os.Args) > 2 {
		forcedTopic = os.Args[2]
	}

	cfg := config.Load()

	kb, err := rag.LoadKnowledgeBase(cfg.Retrieval.KnowledgeDir)
	if err != nil {
		log.Fatalf("load knowledge base: %v", err)
	}

	lexicon := rag.DefaultLexicon()
	if cfg.Retrieval.LexiconFile != "" {
		lexicon, err = rag.LoadLexicon(cfg.Retrieval.LexiconFile)
		if err != nil {
			log.Fatalf("load lexicon: %v", err)
		}
	}

	// 1. Show the token pipeline stage by stage
	tokens := rag.Tokenize(query)
	meaningful := lexicon.Meaningful(tokens)
	expanded := lexicon.Expand(meaningful)

	fmt.Printf("Query:      %q\n", query)
	fmt.Printf("Tokens:     %v\n", tokens)
	fmt.Printf("Meaningful: %v\n", meaningful)
	fmt.Printf("Expanded:   %v\n", expanded)
	if forcedTopic != "" {
		fmt.Printf("Forced topic: %s\n", forcedTopic)
	}
	fmt.Println(strings.Repeat("-", 60))

	// 2. Score every item, including the ones the floor would drop
	for _, item := range kb.Items() {
		score := rag.ScoreItem(item, expanded)
		marker := "      "
		if score > rag.DefaultConfig().ScoreFloor {
			marker = "[KEEP]"
		}
		fmt.Printf("%s %6.1f  [%s] %s\n", marker, score, item.Topic, item.Title)
	}
	fmt.Println(strings.Repeat("-", 60))

	// 3. Run the full pipeline
	retriever := rag.NewRetriever(kb, lexicon, nil, rag.DefaultConfig(), nil)
	result, ok := retriever.Retrieve(rag.Query{Text: query, ForcedTopic: forcedTopic})
	if !ok {
		fmt.Println("Result: NO_CONTEXT (model call would be skipped)")
		return
	}

	fmt.Printf("Detected topic: %s\n", result.DetectedTopic)
	fmt.Printf("Context block:\n%s\n", result.Context)
}
