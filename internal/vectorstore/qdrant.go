package vectorstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/deyna256/codeforces-rag/internal/chunker"
)

const defaultCollection = "codeforces"

// Qdrant is a minimal REST client to Qdrant assuming cosine distance.
type Qdrant struct {
	url        string
	apiKey     string
	collection string
	client     *http.Client
}

type QdrantConfig struct {
	URL        string
	APIKey     string
	Collection string
	Timeout    time.Duration
}

func NewQdrant(cfg QdrantConfig) *Qdrant {
	if cfg.Collection == "" {
		cfg.Collection = defaultCollection
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 15 * time.Second
	}

	return &Qdrant{
		url:        strings.TrimRight(cfg.URL, "/"),
		apiKey:     cfg.APIKey,
		collection: cfg.Collection,
		client:     &http.Client{Timeout: cfg.Timeout},
	}
}

// Init creates the collection if missing and sets up payload indexes for the
// filterable fields.
func (q *Qdrant) Init(ctx context.Context, dimension int) error {
	if dimension <= 0 {
		return fmt.Errorf("invalid vector dimension %d", dimension)
	}

	body := map[string]any{
		"vectors": map[string]any{
			"size":     dimension,
			"distance": "Cosine",
		},
	}
	// Qdrant returns 200 when the collection already exists with the same schema
	if err := q.putJSON(ctx, fmt.Sprintf("%s/collections/%s", q.url, q.collection), body, nil); err != nil {
		return err
	}

	indexes := map[string]string{
		"rating":     "integer",
		"tags":       "keyword",
		"chunk_type": "keyword",
	}
	for field, schema := range indexes {
		indexBody := map[string]any{"field_name": field, "field_schema": schema}
		if err := q.putJSON(ctx, fmt.Sprintf("%s/collections/%s/index", q.url, q.collection), indexBody, nil); err != nil {
			// index creation is idempotent upstream; a conflict is not fatal
			continue
		}
	}

	return nil
}

func (q *Qdrant) Upsert(ctx context.Context, chunks []chunker.Chunk, vectors [][]float32) error {
	if len(chunks) != len(vectors) {
		return fmt.Errorf("chunks and vectors length mismatch: %d vs %d", len(chunks), len(vectors))
	}

	points := make([]map[string]any, len(chunks))
	for i, c := range chunks {
		points[i] = map[string]any{
			"id":     uuid.NewString(),
			"vector": vectors[i],
			"payload": map[string]any{
				"problem_id": c.ProblemID,
				"name":       c.Name,
				"rating":     c.Rating,
				"tags":       c.Tags,
				"chunk_type": c.ChunkType,
				"text":       snippet(c.Text),
			},
		}
	}

	body := map[string]any{"points": points}
	return q.putJSON(ctx, fmt.Sprintf("%s/collections/%s/points?wait=true", q.url, q.collection), body, nil)
}

func (q *Qdrant) Search(ctx context.Context, vector []float32, filter SearchFilter) ([]SearchResult, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 10
	}

	req := map[string]any{
		"vector":       vector,
		"limit":        limit,
		"with_payload": true,
	}

	if qf := buildQdrantFilter(filter); qf != nil {
		req["filter"] = qf
	}

	var resp struct {
		Result []struct {
			Score   float64 `json:"score"`
			Payload struct {
				ProblemID string   `json:"problem_id"`
				Name      string   `json:"name"`
				Rating    int      `json:"rating"`
				Tags      []string `json:"tags"`
				Text      string   `json:"text"`
			} `json:"payload"`
		} `json:"result"`
	}

	err := q.postJSON(ctx, fmt.Sprintf("%s/collections/%s/points/search", q.url, q.collection), req, &resp)
	if err != nil {
		return nil, err
	}

	results := make([]SearchResult, 0, len(resp.Result))
	for _, hit := range resp.Result {
		tags := hit.Payload.Tags
		if tags == nil {
			tags = []string{}
		}
		results = append(results, SearchResult{
			ProblemID: hit.Payload.ProblemID,
			Name:      hit.Payload.Name,
			Rating:    hit.Payload.Rating,
			Tags:      tags,
			Score:     hit.Score,
			Snippet:   hit.Payload.Text,
		})
	}

	return results, nil
}

func buildQdrantFilter(filter SearchFilter) map[string]any {
	var must []map[string]any

	if filter.RatingMin != nil || filter.RatingMax != nil {
		rangeCond := map[string]any{}
		if filter.RatingMin != nil {
			rangeCond["gte"] = *filter.RatingMin
		}
		if filter.RatingMax != nil {
			rangeCond["lte"] = *filter.RatingMax
		}
		must = append(must, map[string]any{"key": "rating", "range": rangeCond})
	}

	if len(filter.Tags) > 0 {
		must = append(must, map[string]any{"key": "tags", "match": map[string]any{"any": filter.Tags}})
	}

	if filter.ChunkType != "" {
		must = append(must, map[string]any{"key": "chunk_type", "match": map[string]any{"value": filter.ChunkType}})
	}

	if len(must) == 0 {
		return nil
	}

	return map[string]any{"must": must}
}

func (q *Qdrant) Count(ctx context.Context) (int64, error) {
	var resp struct {
		Result struct {
			Count int64 `json:"count"`
		} `json:"result"`
	}

	err := q.postJSON(ctx, fmt.Sprintf("%s/collections/%s/points/count", q.url, q.collection), map[string]any{}, &resp)
	if err != nil {
		return 0, err
	}

	return resp.Result.Count, nil
}

func (q *Qdrant) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, "GET", q.url+"/collections", nil)
	if err != nil {
		return err
	}
	q.setHeaders(req)

	resp, err := q.client.Do(req)
	if err != nil {
		return fmt.Errorf("qdrant unreachable: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode >= 300 {
		return fmt.Errorf("qdrant health check failed: %s", resp.Status)
	}

	return nil
}

func (q *Qdrant) putJSON(ctx context.Context, url string, body, out any) error {
	return q.doJSON(ctx, http.MethodPut, url, body, out)
}

func (q *Qdrant) postJSON(ctx context.Context, url string, body, out any) error {
	return q.doJSON(ctx, http.MethodPost, url, body, out)
}

func (q *Qdrant) doJSON(ctx context.Context, method, url string, body, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal qdrant request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to create qdrant request: %w", err)
	}
	q.setHeaders(req)

	resp, err := q.client.Do(req)
	if err != nil {
		return fmt.Errorf("qdrant request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 2048)) //nolint:errcheck
		return fmt.Errorf("qdrant %s %s failed: %s: %s", method, url, resp.Status, string(msg))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode qdrant response: %w", err)
		}
	}

	return nil
}

func (q *Qdrant) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	if q.apiKey != "" {
		req.Header.Set("api-key", q.apiKey)
	}
}
