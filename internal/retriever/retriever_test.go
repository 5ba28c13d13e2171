package retriever

import (
	"context"
	"fmt"
	"testing"

	"github.com/deyna256/codeforces-rag/internal/chunker"
	"github.com/deyna256/codeforces-rag/internal/vectorstore"
)

type fakeEmbedder struct {
	calls int
	fail  bool
}

func (f *fakeEmbedder) GenerateEmbeddings(ctx context.Context, texts []string) ([][]float32, error) {
	f.calls++

	if f.fail {
		return nil, fmt.Errorf("embedding backend down")
	}

	out := make([][]float32, len(texts))
	for i := range texts {
		out[i] = []float32{0.1, 0.2, 0.3}
	}
	return out, nil
}

type fakeVectorStore struct {
	lastFilter vectorstore.SearchFilter
	results    []vectorstore.SearchResult
	fail       bool
}

func (f *fakeVectorStore) Init(ctx context.Context, dimension int) error { return nil }

func (f *fakeVectorStore) Upsert(ctx context.Context, chunks []chunker.Chunk, vectors [][]float32) error {
	return nil
}

func (f *fakeVectorStore) Search(ctx context.Context, vector []float32, filter vectorstore.SearchFilter) ([]vectorstore.SearchResult, error) {
	f.lastFilter = filter

	if f.fail {
		return nil, fmt.Errorf("vector backend down")
	}
	return f.results, nil
}

func (f *fakeVectorStore) Count(ctx context.Context) (int64, error) { return 0, nil }
func (f *fakeVectorStore) Ping(ctx context.Context) error           { return nil }

func TestSearch(t *testing.T) {
	store := &fakeVectorStore{
		results: []vectorstore.SearchResult{
			{ProblemID: "2185A", Name: "Easy Sum", Score: 0.91},
		},
	}
	embedder := &fakeEmbedder{}

	r := New(store, embedder)

	minRating := 800
	results, err := r.Search(context.Background(), Query{
		Text:      "prefix sums on arrays",
		RatingMin: &minRating,
		Tags:      []string{"math"},
		ChunkType: "statement",
		Limit:     5,
	})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	if len(results) != 1 || results[0].ProblemID != "2185A" {
		t.Errorf("unexpected results: %+v", results)
	}

	if embedder.calls != 1 {
		t.Errorf("expected one embedding call, got %d", embedder.calls)
	}

	// filters pass through to the vector store
	if store.lastFilter.RatingMin == nil || *store.lastFilter.RatingMin != 800 {
		t.Errorf("rating filter not forwarded: %+v", store.lastFilter)
	}
	if store.lastFilter.ChunkType != "statement" || store.lastFilter.Limit != 5 {
		t.Errorf("filter not forwarded: %+v", store.lastFilter)
	}
}

func TestSearchEmptyQuery(t *testing.T) {
	r := New(&fakeVectorStore{}, &fakeEmbedder{})

	if _, err := r.Search(context.Background(), Query{}); err == nil {
		t.Fatal("expected error for empty query text")
	}
}

func TestSearchNilResultsBecomeEmptySlice(t *testing.T) {
	r := New(&fakeVectorStore{results: nil}, &fakeEmbedder{})

	results, err := r.Search(context.Background(), Query{Text: "anything"})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	if results == nil {
		t.Error("nil results should serialize as an empty JSON array, not null")
	}
}

func TestSearchEmbedderFailure(t *testing.T) {
	r := New(&fakeVectorStore{}, &fakeEmbedder{fail: true})

	if _, err := r.Search(context.Background(), Query{Text: "anything"}); err == nil {
		t.Fatal("expected error when embedding fails")
	}
}

func TestSearchVectorStoreFailure(t *testing.T) {
	r := New(&fakeVectorStore{fail: true}, &fakeEmbedder{})

	if _, err := r.Search(context.Background(), Query{Text: "anything"}); err == nil {
		t.Fatal("expected error when vector search fails")
	}
}
