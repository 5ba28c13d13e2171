package benchmark

import (
	"encoding/json"
	"strings"

	"github.com/deyna256/codeforces-rag/internal/editorial"
)

// FinderValidation is the outcome of judging a finder response.
type FinderValidation struct {
	Passed  bool
	Found   []string
	Matched []string
}

// ValidateFinderResponse judges an editorial finder reply against the
// expected URL list. URLs compare case-insensitively without trailing
// slashes. A case passes when at least one expected URL was found, or when
// both sides agree there is no editorial.
func ValidateFinderResponse(response string, expected []string) FinderValidation {
	found, err := editorial.ParseFinderResponse(response)
	if err != nil {
		return FinderValidation{Passed: false}
	}

	expectedNorm := make(map[string]struct{}, len(expected))
	for _, url := range expected {
		expectedNorm[normalizeURL(url)] = struct{}{}
	}

	var matched []string
	foundNorm := make(map[string]struct{}, len(found))
	for _, url := range found {
		norm := normalizeURL(url)
		foundNorm[norm] = struct{}{}
		if _, ok := expectedNorm[norm]; ok {
			matched = append(matched, norm)
		}
	}

	passed := false
	switch {
	case len(expectedNorm) == 0 && len(foundNorm) == 0:
		passed = true
	case len(expectedNorm) == 0 || len(foundNorm) == 0:
		passed = false
	default:
		passed = len(matched) > 0
	}

	return FinderValidation{Passed: passed, Found: found, Matched: matched}
}

func normalizeURL(url string) string {
	return strings.ToLower(strings.TrimRight(url, "/"))
}

// SegmentationValidation is the outcome of judging a segmentation response.
type SegmentationValidation struct {
	Passed   bool
	Found    []string        // "contest/problem" keys the model reported
	Accuracy map[string]bool // per expected problem, found == should_exist
}

// flexID tolerates models returning ids as JSON numbers instead of strings.
type flexID string

func (f *flexID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = flexID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexID(n.String())
	return nil
}

type segmentationReply struct {
	Problems []struct {
		ContestID flexID `json:"contest_id"`
		ProblemID flexID `json:"problem_id"`
	} `json:"problems"`
}

// ValidateSegmentationResponse judges a segmentation reply against the
// expected problem set. A case passes only when every expected problem is
// classified correctly.
func ValidateSegmentationResponse(response string, expected []ExpectedProblem) SegmentationValidation {
	var reply segmentationReply
	if err := json.Unmarshal([]byte(response), &reply); err != nil {
		accuracy := make(map[string]bool, len(expected))
		for _, p := range expected {
			accuracy[p.ContestID+"/"+p.ProblemID] = !p.ShouldExist
		}
		return SegmentationValidation{Passed: false, Accuracy: accuracy}
	}

	foundSet := make(map[string]struct{})
	var found []string
	for _, p := range reply.Problems {
		cid := strings.TrimSpace(string(p.ContestID))
		pid := strings.ToUpper(strings.TrimSpace(string(p.ProblemID)))
		if cid == "" || pid == "" {
			continue
		}
		key := cid + "/" + pid
		foundSet[key] = struct{}{}
		found = append(found, key)
	}

	accuracy := make(map[string]bool, len(expected))
	passed := true
	for _, p := range expected {
		key := p.ContestID + "/" + p.ProblemID
		_, present := foundSet[key]
		correct := present == p.ShouldExist
		accuracy[key] = correct
		if !correct {
			passed = false
		}
	}

	return SegmentationValidation{Passed: passed, Found: found, Accuracy: accuracy}
}
