package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Retrieval RetrievalConfig
	Ai        AIConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

type RetrievalConfig struct {
	KnowledgeDir      string
	LexiconFile       string // optional override of the built-in lexicon
	TopK              int
	SessionTTLMinutes int // topic memory lifetime per session
}

type AIConfig struct {
	LLMProvider      string // "openrouter" or "ollama"
	LLMModel         string
	OpenRouterAPIKey string
	OpenRouterSite   string // sent as HTTP-Referer, OpenRouter attribution
	OllamaBaseURL    string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		Retrieval: RetrievalConfig{
			KnowledgeDir:      getEnv("KNOWLEDGE_DIR", "data/kb"),
			LexiconFile:       getEnv("LEXICON_FILE", ""),
			TopK:              getEnvAsInt("RETRIEVAL_TOP_K", 6),
			SessionTTLMinutes: getEnvAsInt("SESSION_TTL_MINUTES", 60),
		},
		Ai: AIConfig{
			LLMProvider:      getEnv("LLM_PROVIDER", "openrouter"),
			LLMModel:         getEnv("LLM_MODEL", "openai/gpt-4o-mini"),
			OpenRouterAPIKey: getEnv("OPENROUTER_API_KEY", ""),
			OpenRouterSite:   getEnv("OPENROUTER_SITE_URL", "http://localhost:3000"),
			OllamaBaseURL:    getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
