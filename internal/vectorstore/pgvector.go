package vectorstore

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pgvector/pgvector-go"

	"github.com/deyna256/codeforces-rag/internal/chunker"
)

// PGVector stores chunk embeddings in a pgvector table on the main
// Postgres pool. Used when no Qdrant URL is configured.
type PGVector struct {
	pool *pgxpool.Pool
}

func NewPGVector(pool *pgxpool.Pool) *PGVector {
	return &PGVector{pool: pool}
}

func (p *PGVector) Init(ctx context.Context, dimension int) error {
	if dimension <= 0 {
		return fmt.Errorf("invalid vector dimension %d", dimension)
	}

	schema := fmt.Sprintf(`
		CREATE EXTENSION IF NOT EXISTS vector;
		CREATE TABLE IF NOT EXISTS chunk_embeddings (
			id         BIGSERIAL PRIMARY KEY,
			problem_id TEXT NOT NULL,
			name       TEXT NOT NULL,
			rating     INTEGER,
			tags       TEXT[] DEFAULT '{}',
			chunk_type TEXT NOT NULL,
			text       TEXT NOT NULL,
			embedding  vector(%d) NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_chunk_rating ON chunk_embeddings(rating);
		CREATE INDEX IF NOT EXISTS idx_chunk_tags ON chunk_embeddings USING GIN(tags);
		CREATE INDEX IF NOT EXISTS idx_chunk_type ON chunk_embeddings(chunk_type);
	`, dimension)

	if _, err := p.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to create chunk_embeddings schema: %w", err)
	}

	return nil
}

func (p *PGVector) Upsert(ctx context.Context, chunks []chunker.Chunk, vectors [][]float32) error {
	if len(chunks) != len(vectors) {
		return fmt.Errorf("chunks and vectors length mismatch: %d vs %d", len(chunks), len(vectors))
	}
	if len(chunks) == 0 {
		return nil
	}

	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	// re-indexing a problem replaces its previous chunks
	seen := make(map[string]struct{})
	batch := &pgx.Batch{}
	for _, c := range chunks {
		if _, ok := seen[c.ProblemID]; !ok {
			seen[c.ProblemID] = struct{}{}
			batch.Queue("DELETE FROM chunk_embeddings WHERE problem_id = $1", c.ProblemID)
		}
	}

	insert := `
		INSERT INTO chunk_embeddings (problem_id, name, rating, tags, chunk_type, text, embedding)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	for i, c := range chunks {
		batch.Queue(insert, c.ProblemID, c.Name, c.Rating, c.Tags, c.ChunkType, snippet(c.Text), pgvector.NewVector(vectors[i]))
	}

	results := tx.SendBatch(ctx, batch)
	for i := 0; i < batch.Len(); i++ {
		if _, err := results.Exec(); err != nil {
			results.Close() //nolint:errcheck
			return fmt.Errorf("failed to upsert chunk embeddings: %w", err)
		}
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf("failed to close batch results: %w", err)
	}

	return tx.Commit(ctx)
}

func (p *PGVector) Search(ctx context.Context, vector []float32, filter SearchFilter) ([]SearchResult, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 10
	}

	args := []any{pgvector.NewVector(vector)}
	var conditions []string

	if filter.RatingMin != nil {
		args = append(args, *filter.RatingMin)
		conditions = append(conditions, fmt.Sprintf("rating >= $%d", len(args)))
	}
	if filter.RatingMax != nil {
		args = append(args, *filter.RatingMax)
		conditions = append(conditions, fmt.Sprintf("rating <= $%d", len(args)))
	}
	if len(filter.Tags) > 0 {
		args = append(args, filter.Tags)
		conditions = append(conditions, fmt.Sprintf("tags && $%d", len(args)))
	}
	if filter.ChunkType != "" {
		args = append(args, filter.ChunkType)
		conditions = append(conditions, fmt.Sprintf("chunk_type = $%d", len(args)))
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	args = append(args, limit)
	query := fmt.Sprintf(`
		SELECT
			problem_id,
			name,
			COALESCE(rating, 0),
			tags,
			text,
			1 - (embedding <=> $1) AS score
		FROM chunk_embeddings%s
		ORDER BY embedding <=> $1
		LIMIT $%d
	`, where, len(args))

	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("vector search failed: %w", err)
	}
	defer rows.Close()

	var results []SearchResult
	for rows.Next() {
		var r SearchResult
		if err := rows.Scan(&r.ProblemID, &r.Name, &r.Rating, &r.Tags, &r.Snippet, &r.Score); err != nil {
			return nil, fmt.Errorf("failed to scan search result: %w", err)
		}
		if r.Tags == nil {
			r.Tags = []string{}
		}
		results = append(results, r)
	}

	return results, rows.Err()
}

func (p *PGVector) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := p.pool.QueryRow(ctx, "SELECT COUNT(*) FROM chunk_embeddings").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count chunks: %w", err)
	}
	return count, nil
}

func (p *PGVector) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}
