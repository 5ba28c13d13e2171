package codeforces

// ProblemID identifies a problem within a contest, e.g. 1900/A.
type ProblemID struct {
	ContestID string `json:"contest_id"`
	Index     string `json:"index"`
}

func (p ProblemID) String() string {
	return p.ContestID + "/" + p.Index
}

// ContestID identifies a regular (non-gym) contest.
type ContestID struct {
	ID string `json:"id"`
}

func (c ContestID) String() string {
	return c.ID
}

// APIProblem mirrors a problem object from the Codeforces API.
type APIProblem struct {
	ContestID int      `json:"contestId"`
	Index     string   `json:"index"`
	Name      string   `json:"name"`
	Rating    int      `json:"rating,omitempty"`
	Tags      []string `json:"tags"`
}

// APIContest mirrors a contest object from contest.list and contest.standings.
type APIContest struct {
	ID                  int    `json:"id"`
	Name                string `json:"name"`
	Type                string `json:"type"`
	Phase               string `json:"phase"`
	DurationSeconds     int64  `json:"durationSeconds"`
	StartTimeSeconds    int64  `json:"startTimeSeconds"`
	RelativeTimeSeconds int64  `json:"relativeTimeSeconds"`
}

// Standings is the result payload of contest.standings.
type Standings struct {
	Contest  APIContest   `json:"contest"`
	Problems []APIProblem `json:"problems"`
}

// ProblemPageData holds fields scraped from a problem HTML page.
type ProblemPageData struct {
	Description string `json:"description,omitempty"`
	TimeLimit   string `json:"time_limit,omitempty"`
	MemoryLimit string `json:"memory_limit,omitempty"`
}

// Link is an anchor collected from a contest page, used for editorial detection.
type Link struct {
	Href string
	Text string
}
