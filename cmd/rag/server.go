package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/deyna256/codeforces-rag/internal/config"
	"github.com/deyna256/codeforces-rag/internal/indexer"
	"github.com/deyna256/codeforces-rag/internal/llm"
	"github.com/deyna256/codeforces-rag/internal/logger"
	"github.com/deyna256/codeforces-rag/internal/parserclient"
	"github.com/deyna256/codeforces-rag/internal/retriever"
	"github.com/deyna256/codeforces-rag/internal/storage"
	"github.com/deyna256/codeforces-rag/internal/vectorstore"
)

type Server struct {
	router    *gin.Engine
	store     *storage.Client
	vectors   vectorstore.VectorStore
	indexer   *indexer.Indexer
	retriever *retriever.Retriever
	parser    *parserclient.Client
}

// creates the RAG server with all dependencies wired
func NewServer(cfg *config.RAGConfig) (*Server, error) {
	ctx := context.Background()

	store, err := storage.NewClient(ctx, cfg.PostgresURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	vectors, err := newVectorStore(ctx, cfg, store)
	if err != nil {
		store.Close()
		return nil, err
	}

	embedder := llm.NewOpenAIEmbedder(llm.OpenAIConfig{
		APIKey: cfg.OpenAIKey,
		Model:  cfg.EmbeddingModel,
	})

	parser := parserclient.New(cfg.ParserBaseURL)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := &Server{
		router:    gin.New(),
		store:     store,
		vectors:   vectors,
		indexer:   indexer.New(store, vectors, embedder),
		retriever: retriever.New(vectors, embedder),
		parser:    parser,
	}

	srv.router.Use(gin.Recovery())
	RegisterRoutes(srv.router, srv)

	return srv, nil
}

// selects the vector backend: Qdrant when QDRANT_URL is set, otherwise
// pgvector on the same Postgres pool
func newVectorStore(ctx context.Context, cfg *config.RAGConfig, store *storage.Client) (vectorstore.VectorStore, error) {
	var vectors vectorstore.VectorStore
	if cfg.QdrantURL != "" {
		vectors = vectorstore.NewQdrant(vectorstore.QdrantConfig{
			URL:    cfg.QdrantURL,
			APIKey: os.Getenv("QDRANT_API_KEY"),
		})
		logger.Info("using qdrant vector store", "url", cfg.QdrantURL)
	} else {
		vectors = vectorstore.NewPGVector(store.Pool())
		logger.Info("using pgvector vector store")
	}

	if err := vectors.Init(ctx, llm.EmbeddingDimension); err != nil {
		return nil, fmt.Errorf("failed to initialize vector store: %w", err)
	}

	return vectors, nil
}
