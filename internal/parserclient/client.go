// Package parserclient is the RAG service's HTTP client for the parser API.
package parserclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ContestProblem is one problem as returned by the parser's POST /contest.
type ContestProblem struct {
	ContestID   string   `json:"contest_id"`
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Statement   string   `json:"statement"`
	Rating      int      `json:"rating"`
	Tags        []string `json:"tags"`
	TimeLimit   string   `json:"time_limit"`
	MemoryLimit string   `json:"memory_limit"`
	Explanation string   `json:"explanation"`
}

// ContestResponse is the parser's contest payload.
type ContestResponse struct {
	ContestID  string           `json:"contest_id"`
	Title      string           `json:"title"`
	Problems   []ContestProblem `json:"problems"`
	Editorials []string         `json:"editorials"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		// contest parsing scrapes many pages and calls an LLM, so be patient
		httpClient: &http.Client{Timeout: 5 * time.Minute},
	}
}

// FetchContest asks the parser service to resolve a contest URL.
func (c *Client) FetchContest(ctx context.Context, contestURL string) (*ContestResponse, error) {
	payload, err := json.Marshal(map[string]string{"url": contestURL})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/contest", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("parser request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048)) //nolint:errcheck
		return nil, fmt.Errorf("parser returned status %d: %s", resp.StatusCode, string(body))
	}

	var contest ContestResponse
	if err := json.NewDecoder(resp.Body).Decode(&contest); err != nil {
		return nil, fmt.Errorf("failed to decode parser response: %w", err)
	}

	return &contest, nil
}
