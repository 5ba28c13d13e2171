package codeforces

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/deyna256/codeforces-rag/internal/httpclient"
)

const defaultAPIBaseURL = "https://codeforces.com/api"

var (
	ErrContestNotFound = errors.New("contest not found")
	ErrProblemNotFound = errors.New("problem not found")
)

// envelope wraps every Codeforces API response
type apiEnvelope struct {
	Status  string          `json:"status"`
	Comment string          `json:"comment,omitempty"`
	Result  json.RawMessage `json:"result,omitempty"`
}

// APIClient fetches contest and problem metadata from the Codeforces API.
type APIClient struct {
	baseURL string
	http    *httpclient.Client
}

func NewAPIClient(http *httpclient.Client) *APIClient {
	return &APIClient{baseURL: defaultAPIBaseURL, http: http}
}

// NewAPIClientWithBaseURL is used by tests to point at a local server.
func NewAPIClientWithBaseURL(http *httpclient.Client, baseURL string) *APIClient {
	return &APIClient{baseURL: strings.TrimRight(baseURL, "/"), http: http}
}

// fetches contest metadata and its problem list via contest.standings
func (c *APIClient) FetchContestStandings(ctx context.Context, contestID string) (*Standings, error) {
	url := fmt.Sprintf("%s/contest.standings?contestId=%s&from=1&count=1", c.baseURL, contestID)

	raw, err := c.call(ctx, url)
	if err != nil {
		if isNotFoundComment(err) {
			return nil, fmt.Errorf("contest %s: %w", contestID, ErrContestNotFound)
		}
		return nil, err
	}

	var standings Standings
	if err := json.Unmarshal(raw, &standings); err != nil {
		return nil, fmt.Errorf("failed to decode standings: %w", err)
	}

	return &standings, nil
}

// fetches the full problemset, the only API source for tags and ratings
func (c *APIClient) FetchProblemsetProblems(ctx context.Context) ([]APIProblem, error) {
	url := c.baseURL + "/problemset.problems"

	raw, err := c.call(ctx, url)
	if err != nil {
		return nil, err
	}

	var result struct {
		Problems []APIProblem `json:"problems"`
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("failed to decode problemset: %w", err)
	}

	return result.Problems, nil
}

// fetches all regular contests via contest.list
func (c *APIClient) FetchContestList(ctx context.Context) ([]APIContest, error) {
	url := c.baseURL + "/contest.list?gym=false"

	raw, err := c.call(ctx, url)
	if err != nil {
		return nil, err
	}

	var contests []APIContest
	if err := json.Unmarshal(raw, &contests); err != nil {
		return nil, fmt.Errorf("failed to decode contest list: %w", err)
	}

	return contests, nil
}

// looks up a single problem in the problemset by contest id and index
func (c *APIClient) GetProblemDetails(ctx context.Context, id ProblemID) (*APIProblem, error) {
	problems, err := c.FetchProblemsetProblems(ctx)
	if err != nil {
		return nil, err
	}

	for i := range problems {
		if strconv.Itoa(problems[i].ContestID) == id.ContestID && problems[i].Index == id.Index {
			return &problems[i], nil
		}
	}

	return nil, fmt.Errorf("problem %s: %w", id, ErrProblemNotFound)
}

func (c *APIClient) call(ctx context.Context, url string) (json.RawMessage, error) {
	body, err := c.http.Get(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("Codeforces API request failed: %w", err)
	}

	var envelope apiEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("invalid response from Codeforces API: %w", err)
	}

	if envelope.Status != "OK" {
		return nil, &apiError{status: envelope.Status, comment: envelope.Comment}
	}

	return envelope.Result, nil
}

type apiError struct {
	status  string
	comment string
}

func (e *apiError) Error() string {
	if e.comment != "" {
		return fmt.Sprintf("Codeforces API error: %s (%s)", e.status, e.comment)
	}
	return fmt.Sprintf("Codeforces API error: %s", e.status)
}

func isNotFoundComment(err error) bool {
	var apiErr *apiError
	return errors.As(err, &apiErr) && strings.Contains(strings.ToLower(apiErr.comment), "not found")
}
