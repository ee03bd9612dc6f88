package bootstrap

import (
	"log"
	"time"

	"kb-chatbot-be/internal/config"
	"kb-chatbot-be/internal/controller"
	"kb-chatbot-be/internal/pkg/logger"
	"kb-chatbot-be/internal/repository/memory"
	"kb-chatbot-be/internal/service"
	"kb-chatbot-be/pkg/llm/factory"
	"kb-chatbot-be/pkg/rag"
)

type Container struct {
	// Controllers
	ChatbotController controller.IChatbotController
	HealthController  controller.IHealthController

	// Exposed for debug tooling and graceful shutdown
	Logger logger.ILogger
}

func NewContainer(kb *rag.KnowledgeBase, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Lexicon: built-in tables, optionally replaced by an external file
	lexicon := rag.DefaultLexicon()
	if cfg.Retrieval.LexiconFile != "" {
		loaded, err := rag.LoadLexicon(cfg.Retrieval.LexiconFile)
		if err != nil {
			log.Fatalf("[FATAL] Failed to load lexicon file: %v", err)
		}
		lexicon = loaded
		log.Printf("[INFO] Using external lexicon: %s", cfg.Retrieval.LexiconFile)
	}

	// 3. Retriever over the read-only knowledge base
	retrievalConfig := rag.DefaultConfig()
	if cfg.Retrieval.TopK > 0 {
		retrievalConfig.TopK = cfg.Retrieval.TopK
	}
	retriever := rag.NewRetriever(kb, lexicon, nil, retrievalConfig, sysLogger)
	log.Printf("[INFO] Knowledge base loaded: %d items across %d topics", kb.Len(), len(kb.Topics()))

	// 4. Session topic memory with TTL eviction
	topicRepo := memory.NewTopicRepository(time.Duration(cfg.Retrieval.SessionTTLMinutes) * time.Minute)

	// 5. LLM Provider based on Config
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OpenRouterAPIKey,
		cfg.Ai.OpenRouterSite,
		cfg.Ai.OllamaBaseURL,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 6. Services
	chatbotService := service.NewChatbotService(retriever, kb, topicRepo, llmProvider, sysLogger)

	return &Container{
		ChatbotController: controller.NewChatbotController(chatbotService),
		HealthController:  controller.NewHealthController(),
		Logger:            sysLogger,
	}
}
