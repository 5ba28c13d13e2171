// Package editorial locates contest editorials and splits them into
// per-problem analyses.
package editorial

// ProblemKey addresses an analysis inside a (possibly multi-contest) editorial.
// An empty ContestID means the segmentation response did not name a contest
// and the analysis should be matched to the primary contest by index alone.
type ProblemKey struct {
	ContestID string
	ProblemID string
}

// ContestEditorial holds segmented analyses for one contest's editorial posts.
type ContestEditorial struct {
	ContestID string
	SourceURL []string
	Analyses  map[ProblemKey]string
}
