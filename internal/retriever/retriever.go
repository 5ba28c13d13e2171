// Package retriever answers semantic search queries over indexed chunks.
package retriever

import (
	"context"
	"fmt"

	"github.com/deyna256/codeforces-rag/internal/indexer"
	"github.com/deyna256/codeforces-rag/internal/vectorstore"
)

// Query is a semantic search request.
type Query struct {
	Text      string
	RatingMin *int
	RatingMax *int
	Tags      []string
	ChunkType string
	Limit     int
}

type Retriever struct {
	vectors  vectorstore.VectorStore
	embedder indexer.Embedder
}

func New(vectors vectorstore.VectorStore, embedder indexer.Embedder) *Retriever {
	return &Retriever{vectors: vectors, embedder: embedder}
}

// Search embeds the query text and runs a filtered vector search.
func (r *Retriever) Search(ctx context.Context, q Query) ([]vectorstore.SearchResult, error) {
	if q.Text == "" {
		return nil, fmt.Errorf("empty search query")
	}

	vectors, err := r.embedder.GenerateEmbeddings(ctx, []string{q.Text})
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	results, err := r.vectors.Search(ctx, vectors[0], vectorstore.SearchFilter{
		RatingMin: q.RatingMin,
		RatingMax: q.RatingMax,
		Tags:      q.Tags,
		ChunkType: q.ChunkType,
		Limit:     q.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("vector search failed: %w", err)
	}

	if results == nil {
		results = []vectorstore.SearchResult{}
	}

	return results, nil
}
