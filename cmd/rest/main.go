package main

import (
	"context"
	"log"

	"kb-chatbot-be/internal/bootstrap"
	"kb-chatbot-be/internal/config"
	"kb-chatbot-be/internal/server"
	"kb-chatbot-be/internal/tracer"
	"kb-chatbot-be/pkg/rag"
)

func main() {
	// 0. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Load Knowledge Base (read-only for the process lifetime)
	kb, err := rag.LoadKnowledgeBase(cfg.Retrieval.KnowledgeDir)
	if err != nil {
		log.Panicf("Unable to load knowledge base: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(kb, cfg)
	defer container.Logger.Sync()

	// 4. Initialize Server
	srv := server.New(cfg, container)

	// 5. Run Server
	log.Fatal(srv.Run())
}
