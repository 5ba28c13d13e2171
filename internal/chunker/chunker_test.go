package chunker

import (
	"strings"
	"testing"

	"github.com/deyna256/codeforces-rag/internal/storage"
)

func TestSplitTextShortInput(t *testing.T) {
	parts := SplitText("short problem statement")

	if len(parts) != 1 || parts[0] != "short problem statement" {
		t.Fatalf("short input should be a single chunk, got %v", parts)
	}
}

func TestSplitTextWindowSizes(t *testing.T) {
	text := strings.Repeat("abcdefghij", 500) // 5000 bytes

	parts := SplitText(text)

	if len(parts) < 2 {
		t.Fatalf("expected multiple chunks for %d bytes, got %d", len(text), len(parts))
	}

	for i, part := range parts {
		if len(part) > MaxChunkLen {
			t.Errorf("chunk %d exceeds max length: %d", i, len(part))
		}
	}

	// each chunk after the first starts with the tail of its predecessor
	for i := 1; i < len(parts); i++ {
		prevTail := parts[i-1][len(parts[i-1])-Overlap:]
		if !strings.HasPrefix(parts[i], prevTail) {
			t.Errorf("chunk %d does not overlap with its predecessor", i)
		}
	}
}

// dropping the leading overlap of each later chunk must reconstruct the input
func TestSplitTextReconstruction(t *testing.T) {
	for _, size := range []int{MaxChunkLen + 1, 2500, 10000, 3 * MaxChunkLen} {
		text := strings.Repeat("x", size-1) + "$"

		parts := SplitText(text)

		var b strings.Builder
		for i, part := range parts {
			if i == 0 {
				b.WriteString(part)
				continue
			}
			b.WriteString(part[Overlap:])
		}

		if b.String() != text {
			t.Errorf("size %d: reconstruction mismatch (got %d bytes, want %d)", size, b.Len(), len(text))
		}
	}
}

func TestChunkProblem(t *testing.T) {
	problem := storage.Problem{
		ProblemID: "2185A",
		ContestID: "2185",
		Name:      "Easy Sum",
		Rating:    800,
		Tags:      []string{"math", "greedy"},
		Statement: strings.Repeat("statement text ", 200), // forces multiple chunks
		Editorial: "short editorial",
	}

	chunks := ChunkProblem(problem)

	var statements, editorials int
	for _, chunk := range chunks {
		if chunk.ProblemID != "2185A" || chunk.Name != "Easy Sum" || chunk.Rating != 800 {
			t.Errorf("chunk lost problem metadata: %+v", chunk)
		}

		switch chunk.ChunkType {
		case ChunkTypeStatement:
			statements++
		case ChunkTypeEditorial:
			editorials++
		default:
			t.Errorf("unexpected chunk type %q", chunk.ChunkType)
		}
	}

	if statements < 2 {
		t.Errorf("expected long statement to produce multiple chunks, got %d", statements)
	}

	if editorials != 1 {
		t.Errorf("expected one editorial chunk, got %d", editorials)
	}
}

func TestChunkProblemEmptyText(t *testing.T) {
	chunks := ChunkProblem(storage.Problem{ProblemID: "2185B", Name: "No Text"})

	if chunks != nil {
		t.Errorf("expected nil chunks for empty problem, got %d", len(chunks))
	}
}
