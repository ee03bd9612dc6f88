package factory

import (
	"fmt"

	"kb-chatbot-be/pkg/llm"
	"kb-chatbot-be/pkg/llm/ollama"
	"kb-chatbot-be/pkg/llm/openrouter"
)

func NewLLMProvider(providerType, modelName, apiKey, siteURL, ollamaBaseURL string) (llm.LLMProvider, error) {
	switch providerType {
	case "openrouter":
		if apiKey == "" {
			return nil, fmt.Errorf("openrouter provider requires an API key")
		}
		return openrouter.NewOpenRouterProvider(apiKey, modelName, siteURL), nil
	case "ollama":
		if ollamaBaseURL == "" {
			ollamaBaseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(ollamaBaseURL, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
