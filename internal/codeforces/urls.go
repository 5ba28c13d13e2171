package codeforces

import (
	"fmt"
	"net/url"
	"regexp"
)

var (
	// matches problemset/problem/1234/A on codeforces.com or .ru
	problemPattern = regexp.MustCompile(`codeforces\.(?:com|ru)/problemset/problem/(\d+)/([A-Z]\d*)`)
	// matches contest/1234; gym contests are not supported
	contestPattern = regexp.MustCompile(`codeforces\.(?:com|ru)/contest/(\d+)`)
)

// extracts a problem identifier from a Codeforces problem URL
func ParseProblemURL(rawURL string) (ProblemID, error) {
	if err := validateURL(rawURL); err != nil {
		return ProblemID{}, err
	}

	match := problemPattern.FindStringSubmatch(rawURL)
	if match == nil {
		return ProblemID{}, fmt.Errorf(
			"unrecognized Codeforces problem URL %q: expected https://codeforces.com/problemset/problem/<contest_id>/<index>",
			rawURL)
	}

	return ProblemID{ContestID: match[1], Index: match[2]}, nil
}

// extracts a contest identifier from a Codeforces contest URL
func ParseContestURL(rawURL string) (ContestID, error) {
	if err := validateURL(rawURL); err != nil {
		return ContestID{}, err
	}

	match := contestPattern.FindStringSubmatch(rawURL)
	if match == nil {
		return ContestID{}, fmt.Errorf(
			"unrecognized Codeforces contest URL %q: expected https://codeforces.com/contest/<contest_id> (gym contests not supported)",
			rawURL)
	}

	return ContestID{ID: match[1]}, nil
}

func validateURL(rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("failed to parse URL %q: %w", rawURL, err)
	}

	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("invalid URL format: %q", rawURL)
	}

	return nil
}

func ProblemURL(id ProblemID) string {
	return fmt.Sprintf("https://codeforces.com/problemset/problem/%s/%s", id.ContestID, id.Index)
}

func ContestURL(id ContestID) string {
	return fmt.Sprintf("https://codeforces.com/contest/%s", id.ID)
}

// the in-contest problem page; some problems render here but not on /problemset
func ContestProblemURL(contestID, index string) string {
	return fmt.Sprintf("https://codeforces.com/contest/%s/problem/%s", contestID, index)
}
