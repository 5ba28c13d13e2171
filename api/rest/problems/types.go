package problems

// ParseRequest asks the parser service to resolve a problem URL.
type ParseRequest struct {
	URL string `json:"url" binding:"required"`
}

// ParseResponse is the parser's problem payload. Statement carries the
// problem name from the Codeforces API; Description is the scraped text.
type ParseResponse struct {
	Statement   string   `json:"statement"`
	Tags        []string `json:"tags"`
	Rating      int      `json:"rating,omitempty"`
	ContestID   string   `json:"contest_id"`
	ID          string   `json:"id"`
	URL         string   `json:"url"`
	Description string   `json:"description,omitempty"`
	TimeLimit   string   `json:"time_limit,omitempty"`
	MemoryLimit string   `json:"memory_limit,omitempty"`
}

// ListQuery binds the filtered listing parameters.
type ListQuery struct {
	RatingMin *int     `form:"rating_min"`
	RatingMax *int     `form:"rating_max"`
	Tags      []string `form:"tags"`
	ContestID string   `form:"contest_id"`
	Limit     int      `form:"limit,default=50"`
}
