// Package chunker splits problem text into fixed-size overlapping windows
// for embedding.
package chunker

import (
	"github.com/deyna256/codeforces-rag/internal/storage"
)

const (
	// MaxChunkLen is the window size in bytes.
	MaxChunkLen = 1200
	// Overlap is how many trailing bytes of a chunk reappear at the start
	// of the next one.
	Overlap = 200
)

const (
	ChunkTypeStatement = "statement"
	ChunkTypeEditorial = "editorial"
)

// Chunk is one embeddable window of problem text with its search payload.
type Chunk struct {
	ProblemID string   `json:"problem_id"`
	Name      string   `json:"name"`
	Rating    int      `json:"rating,omitempty"`
	Tags      []string `json:"tags"`
	ChunkType string   `json:"chunk_type"`
	Text      string   `json:"text"`
}

// SplitText cuts text into windows of at most MaxChunkLen bytes where each
// window after the first starts with the last Overlap bytes of its
// predecessor. Every byte of the input appears in the output, so dropping the
// first Overlap bytes of each subsequent part reconstructs the original.
func SplitText(text string) []string {
	if len(text) <= MaxChunkLen {
		return []string{text}
	}

	var parts []string
	step := MaxChunkLen - Overlap

	for start := 0; ; start += step {
		end := start + MaxChunkLen
		if end >= len(text) {
			parts = append(parts, text[start:])
			break
		}
		parts = append(parts, text[start:end])
	}

	return parts
}

// ChunkProblem produces statement and editorial chunks for a problem,
// carrying its metadata into every chunk. Problems with no text yield nil.
func ChunkProblem(p storage.Problem) []Chunk {
	var chunks []Chunk

	chunks = appendChunks(chunks, p, ChunkTypeStatement, p.Statement)
	chunks = appendChunks(chunks, p, ChunkTypeEditorial, p.Editorial)

	return chunks
}

func appendChunks(chunks []Chunk, p storage.Problem, chunkType, text string) []Chunk {
	if text == "" {
		return chunks
	}

	for _, part := range SplitText(text) {
		chunks = append(chunks, Chunk{
			ProblemID: p.ProblemID,
			Name:      p.Name,
			Rating:    p.Rating,
			Tags:      p.Tags,
			ChunkType: chunkType,
			Text:      part,
		})
	}

	return chunks
}
