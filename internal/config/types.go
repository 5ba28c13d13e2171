package config

// holds configuration for the parser service
type ParserConfig struct {
	Port            string
	RedisURL        string
	CacheTTLHours   int
	OpenRouterKey   string // empty disables LLM-based editorial detection
	OpenRouterModel string
	OpenRouterURL   string
	UserAgent       string
	HTTPRetries     int
	Environment     string
}

// holds configuration for the RAG service
type RAGConfig struct {
	Port           string
	PostgresURL    string
	QdrantURL      string // empty selects the pgvector backend
	OpenAIKey      string
	ParserBaseURL  string
	EmbeddingModel string
	Environment    string
}

// holds parsed CLI flags for the benchmark binary
type BenchmarkFlags struct {
	Model string
	Type  string
	All   bool
}
