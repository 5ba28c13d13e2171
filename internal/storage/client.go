// Package storage is the Postgres layer for indexed problems.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned when a problem does not exist.
var ErrNotFound = errors.New("problem not found")

const schema = `
CREATE TABLE IF NOT EXISTS problems (
	problem_id   TEXT PRIMARY KEY,
	contest_id   TEXT NOT NULL,
	name         TEXT NOT NULL,
	rating       INTEGER,
	tags         TEXT[] DEFAULT '{}',
	statement    TEXT,
	editorial    TEXT,
	time_limit   TEXT,
	memory_limit TEXT,
	url          TEXT,
	created_at   TIMESTAMP DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_rating ON problems(rating);
CREATE INDEX IF NOT EXISTS idx_tags ON problems USING GIN(tags);
CREATE INDEX IF NOT EXISTS idx_contest ON problems(contest_id);
`

type Client struct {
	pool *pgxpool.Pool
}

func NewClient(ctx context.Context, connString string) (*Client, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	client := &Client{pool: pool}
	if err := client.ensureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return client, nil
}

func (c *Client) ensureSchema(ctx context.Context) error {
	if _, err := c.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

func (c *Client) Close() {
	c.pool.Close()
}

func (c *Client) Ping(ctx context.Context) error {
	return c.pool.Ping(ctx)
}

// Pool exposes the underlying pool for the pgvector store, which shares
// the same database.
func (c *Client) Pool() *pgxpool.Pool {
	return c.pool
}

func (c *Client) UpsertProblem(ctx context.Context, p Problem) error {
	query := `
		INSERT INTO problems (problem_id, contest_id, name, rating, tags,
		                      statement, editorial, time_limit, memory_limit, url)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		ON CONFLICT (problem_id) DO UPDATE SET
			name         = EXCLUDED.name,
			rating       = EXCLUDED.rating,
			tags         = EXCLUDED.tags,
			statement    = EXCLUDED.statement,
			editorial    = EXCLUDED.editorial,
			time_limit   = EXCLUDED.time_limit,
			memory_limit = EXCLUDED.memory_limit,
			url          = EXCLUDED.url
	`

	_, err := c.pool.Exec(ctx, query,
		p.ProblemID,
		p.ContestID,
		p.Name,
		nullableInt(p.Rating),
		p.Tags,
		nullableString(p.Statement),
		nullableString(p.Editorial),
		nullableString(p.TimeLimit),
		nullableString(p.MemoryLimit),
		nullableString(p.URL),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert problem %s: %w", p.ProblemID, err)
	}

	return nil
}

// UpsertProblems writes a batch of problems in one transaction.
func (c *Client) UpsertProblems(ctx context.Context, problems []Problem) error {
	if len(problems) == 0 {
		return nil
	}

	tx, err := c.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			// rollback after commit is expected; anything else is worth surfacing
			_ = err
		}
	}()

	batch := &pgx.Batch{}
	query := `
		INSERT INTO problems (problem_id, contest_id, name, rating, tags,
		                      statement, editorial, time_limit, memory_limit, url)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		ON CONFLICT (problem_id) DO UPDATE SET
			name         = EXCLUDED.name,
			rating       = EXCLUDED.rating,
			tags         = EXCLUDED.tags,
			statement    = EXCLUDED.statement,
			editorial    = EXCLUDED.editorial,
			time_limit   = EXCLUDED.time_limit,
			memory_limit = EXCLUDED.memory_limit,
			url          = EXCLUDED.url
	`

	for _, p := range problems {
		batch.Queue(query,
			p.ProblemID, p.ContestID, p.Name, nullableInt(p.Rating), p.Tags,
			nullableString(p.Statement), nullableString(p.Editorial),
			nullableString(p.TimeLimit), nullableString(p.MemoryLimit), nullableString(p.URL))
	}

	results := tx.SendBatch(ctx, batch)
	for range problems {
		if _, err := results.Exec(); err != nil {
			results.Close() //nolint:errcheck
			return fmt.Errorf("failed to upsert problem batch: %w", err)
		}
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf("failed to close batch results: %w", err)
	}

	return tx.Commit(ctx)
}

// ListProblems returns problems matching the filter, ordered by problem id.
func (c *Client) ListProblems(ctx context.Context, filter ListFilter) ([]ProblemListItem, error) {
	var conditions []string
	var args []any

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
	if filter.ContestID != "" {
		args = append(args, filter.ContestID)
		conditions = append(conditions, fmt.Sprintf("contest_id = $%d", len(args)))
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	args = append(args, limit)

	query := fmt.Sprintf(
		"SELECT problem_id, contest_id, name, COALESCE(rating, 0), tags, COALESCE(url, '') FROM problems%s ORDER BY problem_id LIMIT $%d",
		where, len(args))

	rows, err := c.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list problems: %w", err)
	}
	defer rows.Close()

	var items []ProblemListItem
	for rows.Next() {
		var item ProblemListItem
		if err := rows.Scan(&item.ProblemID, &item.ContestID, &item.Name, &item.Rating, &item.Tags, &item.URL); err != nil {
			return nil, fmt.Errorf("failed to scan problem row: %w", err)
		}
		if item.Tags == nil {
			item.Tags = []string{}
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

// GetProblemText returns one text field (statement or editorial) of a problem.
func (c *Client) GetProblemText(ctx context.Context, problemID, field string) (*ProblemText, error) {
	if field != "statement" && field != "editorial" {
		return nil, fmt.Errorf("invalid text field %q", field)
	}

	// field is validated above, safe to interpolate
	query := fmt.Sprintf(
		"SELECT problem_id, name, COALESCE(%s, '') FROM problems WHERE problem_id = $1", field)

	var text ProblemText
	err := c.pool.QueryRow(ctx, query, problemID).Scan(&text.ProblemID, &text.Name, &text.Text)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("problem %s: %w", problemID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get problem text: %w", err)
	}

	return &text, nil
}

// LoadedContests returns distinct contest ids present in the problems table.
func (c *Client) LoadedContests(ctx context.Context) ([]string, error) {
	rows, err := c.pool.Query(ctx, "SELECT DISTINCT contest_id FROM problems ORDER BY contest_id")
	if err != nil {
		return nil, fmt.Errorf("failed to list loaded contests: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan contest id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

// zero maps to NULL so missing ratings do not pollute range filters
func nullableInt(v int) *int {
	if v == 0 {
		return nil
	}
	return &v
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
