package contests

// ParseRequest asks the parser service to resolve a contest URL.
type ParseRequest struct {
	URL string `json:"url" binding:"required"`
}

// LoadRequest asks the RAG service to index a contest.
type LoadRequest struct {
	ContestURL string `json:"contest_url" binding:"required"`
}

type LoadResponse struct {
	Contest        string `json:"contest"`
	ProblemsLoaded int    `json:"problems_loaded"`
}
