// Package indexer loads parsed contests into Postgres and the vector store.
package indexer

import (
	"context"
	"fmt"

	"github.com/deyna256/codeforces-rag/internal/chunker"
	"github.com/deyna256/codeforces-rag/internal/llm"
	"github.com/deyna256/codeforces-rag/internal/logger"
	"github.com/deyna256/codeforces-rag/internal/parserclient"
	"github.com/deyna256/codeforces-rag/internal/storage"
	"github.com/deyna256/codeforces-rag/internal/vectorstore"
)

// Embedder turns chunk texts into vectors.
type Embedder interface {
	GenerateEmbeddings(ctx context.Context, texts []string) ([][]float32, error)
}

var _ Embedder = (*llm.OpenAIEmbedder)(nil)

type Indexer struct {
	store    *storage.Client
	vectors  vectorstore.VectorStore
	embedder Embedder
}

func New(store *storage.Client, vectors vectorstore.VectorStore, embedder Embedder) *Indexer {
	return &Indexer{store: store, vectors: vectors, embedder: embedder}
}

// IndexContest upserts every problem of a parsed contest, chunks its text,
// embeds the chunks and writes them to the vector store. Returns the number
// of problems loaded.
func (ix *Indexer) IndexContest(ctx context.Context, resp *parserclient.ContestResponse) (int, error) {
	problems := make([]storage.Problem, 0, len(resp.Problems))
	var allChunks []chunker.Chunk

	for _, pp := range resp.Problems {
		p := storage.Problem{
			ProblemID:   pp.ContestID + pp.ID,
			ContestID:   pp.ContestID,
			Name:        pp.Title,
			Rating:      pp.Rating,
			Tags:        pp.Tags,
			Statement:   pp.Statement,
			Editorial:   pp.Explanation,
			TimeLimit:   pp.TimeLimit,
			MemoryLimit: pp.MemoryLimit,
			URL:         fmt.Sprintf("https://codeforces.com/contest/%s/problem/%s", pp.ContestID, pp.ID),
		}
		problems = append(problems, p)
		allChunks = append(allChunks, chunker.ChunkProblem(p)...)
	}

	if err := ix.store.UpsertProblems(ctx, problems); err != nil {
		return 0, fmt.Errorf("failed to store problems: %w", err)
	}

	if len(allChunks) > 0 {
		texts := make([]string, len(allChunks))
		for i, c := range allChunks {
			texts[i] = c.Text
		}

		vectors, err := ix.embedder.GenerateEmbeddings(ctx, texts)
		if err != nil {
			return 0, fmt.Errorf("failed to embed chunks: %w", err)
		}

		if err := ix.vectors.Upsert(ctx, allChunks, vectors); err != nil {
			return 0, fmt.Errorf("failed to store chunk vectors: %w", err)
		}
	}

	logger.Info("indexed contest",
		"contest_id", resp.ContestID, "problems", len(problems), "chunks", len(allChunks))

	return len(problems), nil
}
