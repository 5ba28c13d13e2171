package search

// Request is a semantic search query with optional metadata filters.
type Request struct {
	Query     string   `json:"query" binding:"required"`
	RatingMin *int     `json:"rating_min"`
	RatingMax *int     `json:"rating_max"`
	Tags      []string `json:"tags"`
	ChunkType string   `json:"chunk_type"`
	Limit     int      `json:"limit"`
}
