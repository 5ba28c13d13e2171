package storage

// Problem is the indexed form of a contest problem. ProblemID is the
// concatenated contest id and index, e.g. "1900A".
type Problem struct {
	ProblemID   string   `json:"problem_id"`
	ContestID   string   `json:"contest_id"`
	Name        string   `json:"name"`
	Rating      int      `json:"rating,omitempty"`
	Tags        []string `json:"tags"`
	Statement   string   `json:"statement,omitempty"`
	Editorial   string   `json:"editorial,omitempty"`
	TimeLimit   string   `json:"time_limit,omitempty"`
	MemoryLimit string   `json:"memory_limit,omitempty"`
	URL         string   `json:"url,omitempty"`
}

// ProblemListItem is the listing projection of Problem.
type ProblemListItem struct {
	ProblemID string   `json:"problem_id"`
	ContestID string   `json:"contest_id"`
	Name      string   `json:"name"`
	Rating    int      `json:"rating,omitempty"`
	Tags      []string `json:"tags"`
	URL       string   `json:"url,omitempty"`
}

// ProblemText is a single text field of a problem.
type ProblemText struct {
	ProblemID string `json:"problem_id"`
	Name      string `json:"name"`
	Text      string `json:"text"`
}

// ListFilter narrows problem listings.
type ListFilter struct {
	RatingMin *int
	RatingMax *int
	Tags      []string
	ContestID string
	Limit     int
}
