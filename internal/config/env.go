package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	defaultCacheTTLHours   = 168 // 7 days
	defaultHTTPRetries     = 3
	defaultOpenRouterModel = "anthropic/claude-3.5-haiku"
	defaultOpenRouterURL   = "https://openrouter.ai/api/v1"
	defaultEmbeddingModel  = "text-embedding-3-small"
	defaultParserBaseURL   = "http://localhost:8001"
	defaultUserAgent       = "codeforces-rag/1.0"
)

// loads parser service configuration from environment variables
func LoadParserConfig() (*ParserConfig, error) {
	loadDotenv()

	cfg := &ParserConfig{
		Port:            envOrDefault("PARSER_PORT", "8001"),
		RedisURL:        os.Getenv("REDIS_URL"),
		CacheTTLHours:   envIntOrDefault("CACHE_TTL_HOURS", defaultCacheTTLHours),
		OpenRouterKey:   os.Getenv("OPENROUTER_API_KEY"),
		OpenRouterModel: envOrDefault("OPENROUTER_MODEL", defaultOpenRouterModel),
		OpenRouterURL:   envOrDefault("OPENROUTER_BASE_URL", defaultOpenRouterURL),
		UserAgent:       envOrDefault("USER_AGENT", defaultUserAgent),
		HTTPRetries:     envIntOrDefault("HTTP_RETRIES", defaultHTTPRetries),
		Environment:     envOrDefault("ENVIRONMENT", "development"),
	}

	if cfg.CacheTTLHours <= 0 {
		return nil, fmt.Errorf("CACHE_TTL_HOURS must be positive, got %d", cfg.CacheTTLHours)
	}

	return cfg, nil
}

// loads RAG service configuration from environment variables
func LoadRAGConfig() (*RAGConfig, error) {
	loadDotenv()

	postgresURL := os.Getenv("POSTGRES_URL")
	if postgresURL == "" {
		return nil, fmt.Errorf("POSTGRES_URL environment variable is required")
	}

	openaiKey := os.Getenv("OPENAI_API_KEY")
	if openaiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable is required")
	}

	return &RAGConfig{
		Port:           envOrDefault("RAG_PORT", "8000"),
		PostgresURL:    postgresURL,
		QdrantURL:      os.Getenv("QDRANT_URL"),
		OpenAIKey:      openaiKey,
		ParserBaseURL:  envOrDefault("PARSER_BASE_URL", defaultParserBaseURL),
		EmbeddingModel: envOrDefault("EMBEDDING_MODEL", defaultEmbeddingModel),
		Environment:    envOrDefault("ENVIRONMENT", "development"),
	}, nil
}

func loadDotenv() {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

func envIntOrDefault(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}

	return fallback
}
