// Package vectorstore abstracts the vector search backend. Two
// implementations exist: a Qdrant REST client and a pgvector table on the
// main Postgres pool.
package vectorstore

import (
	"context"

	"github.com/deyna256/codeforces-rag/internal/chunker"
)

// SearchFilter narrows a vector search by payload fields.
type SearchFilter struct {
	RatingMin *int
	RatingMax *int
	Tags      []string
	ChunkType string
	Limit     int
}

// SearchResult is one scored chunk hit.
type SearchResult struct {
	ProblemID string   `json:"problem_id"`
	Name      string   `json:"name"`
	Rating    int      `json:"rating,omitempty"`
	Tags      []string `json:"tags"`
	Score     float64  `json:"score"`
	Snippet   string   `json:"snippet"`
}

// VectorStore stores chunk embeddings and answers filtered similarity
// queries.
type VectorStore interface {
	// Init prepares the backing collection or table for the given
	// vector dimension.
	Init(ctx context.Context, dimension int) error
	// Upsert writes chunks with their embeddings. len(chunks) must equal
	// len(vectors).
	Upsert(ctx context.Context, chunks []chunker.Chunk, vectors [][]float32) error
	// Search returns the closest chunks to vector under the filter.
	Search(ctx context.Context, vector []float32, filter SearchFilter) ([]SearchResult, error)
	// Count reports how many points the store holds.
	Count(ctx context.Context) (int64, error)
	// Ping verifies the backend is reachable.
	Ping(ctx context.Context) error
}

// payload snippets keep only the first snippetLimit characters of each
// chunk, counted in runes so Cyrillic editorials are not cut mid-character
const snippetLimit = 500

func snippet(text string) string {
	runes := []rune(text)
	if len(runes) > snippetLimit {
		return string(runes[:snippetLimit])
	}
	return text
}
