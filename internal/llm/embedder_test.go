package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func embeddingServer(t *testing.T, requestCounter *int) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*requestCounter++

		if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
			t.Errorf("unexpected authorization header %q", auth)
		}

		var req struct {
			Input []string `json:"input"`
			Model string   `json:"model"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}

		// echo one vector per input, reversed order to exercise index handling
		resp := map[string]any{"model": req.Model}
		data := make([]map[string]any, 0, len(req.Input))
		for i := len(req.Input) - 1; i >= 0; i-- {
			data = append(data, map[string]any{
				"index":     i,
				"embedding": []float32{float32(i), float32(i) + 0.5},
			})
		}
		resp["data"] = data

		if err := json.NewEncoder(w).Encode(resp); err != nil {
			t.Errorf("failed to encode response: %v", err)
		}
	}))
}

func TestGenerateEmbeddings(t *testing.T) {
	var requests int
	server := embeddingServer(t, &requests)
	defer server.Close()

	embedder := NewOpenAIEmbedder(OpenAIConfig{APIKey: "test-key", BaseURL: server.URL})

	texts := []string{"statement one", "statement two", "statement three"}
	embeddings, err := embedder.GenerateEmbeddings(context.Background(), texts)
	if err != nil {
		t.Fatalf("GenerateEmbeddings failed: %v", err)
	}

	if len(embeddings) != 3 {
		t.Fatalf("expected 3 embeddings, got %d", len(embeddings))
	}

	// out of order response data must land at the right index
	for i, emb := range embeddings {
		if len(emb) != 2 || emb[0] != float32(i) {
			t.Errorf("embedding %d misplaced: %v", i, emb)
		}
	}

	if requests != 1 {
		t.Errorf("expected a single batch request, got %d", requests)
	}
}

func TestGenerateEmbeddingsBatching(t *testing.T) {
	var requests int
	server := embeddingServer(t, &requests)
	defer server.Close()

	embedder := NewOpenAIEmbedder(OpenAIConfig{APIKey: "test-key", BaseURL: server.URL})

	texts := make([]string, embeddingBatchSize+5)
	for i := range texts {
		texts[i] = fmt.Sprintf("text %d", i)
	}

	embeddings, err := embedder.GenerateEmbeddings(context.Background(), texts)
	if err != nil {
		t.Fatalf("GenerateEmbeddings failed: %v", err)
	}

	if len(embeddings) != len(texts) {
		t.Errorf("expected %d embeddings, got %d", len(texts), len(embeddings))
	}

	if requests != 2 {
		t.Errorf("expected 2 batch requests, got %d", requests)
	}
}

func TestGenerateEmbeddingsEmptyInput(t *testing.T) {
	embedder := NewOpenAIEmbedder(OpenAIConfig{APIKey: "test-key"})

	if _, err := embedder.GenerateEmbeddings(context.Background(), nil); err == nil {
		t.Fatal("expected error for empty input")
	}
}

func TestGenerateEmbeddingsAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"message": "invalid api key"}}`, http.StatusUnauthorized)
	}))
	defer server.Close()

	embedder := NewOpenAIEmbedder(OpenAIConfig{APIKey: "bad-key", BaseURL: server.URL})

	if _, err := embedder.GenerateEmbedding(context.Background(), "text"); err == nil {
		t.Fatal("expected error for 401 response")
	}
}
