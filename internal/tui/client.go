package tui

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/deyna256/codeforces-rag/internal/codeforces"
	"github.com/deyna256/codeforces-rag/internal/httpclient"
)

// loading a contest runs the whole parse+index pipeline server-side
const loadTimeout = 2 * time.Minute

const fetchTimeout = 30 * time.Second

// Client talks to the Codeforces API and the RAG service.
type Client struct {
	ragURL string
	api    *codeforces.APIClient
	http   *http.Client
}

func NewClient() *Client {
	ragURL := os.Getenv("RAG_URL")
	if ragURL == "" {
		ragURL = "http://localhost:8000"
	}

	return &Client{
		ragURL: ragURL,
		api:    codeforces.NewAPIClient(httpclient.New(httpclient.Config{})),
		http:   &http.Client{Timeout: loadTimeout},
	}
}

func (c *Client) RAGURL() string {
	return c.ragURL
}

// FetchContests returns finished contests, newest first.
func (c *Client) FetchContests(ctx context.Context) ([]Contest, error) {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	list, err := c.api.FetchContestList(ctx)
	if err != nil {
		return nil, err
	}

	var finished []codeforces.APIContest
	for _, contest := range list {
		if contest.Phase == "FINISHED" {
			finished = append(finished, contest)
		}
	}
	sort.Slice(finished, func(i, j int) bool {
		return finished[i].ID > finished[j].ID
	})

	contests := make([]Contest, 0, len(finished))
	for _, contest := range finished {
		contests = append(contests, Contest{
			ID:   strconv.Itoa(contest.ID),
			Name: contest.Name,
		})
	}

	return contests, nil
}

// FetchLoaded returns contest IDs already indexed by the RAG service.
func (c *Client) FetchLoaded(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.ragURL+"/contests/loaded", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rag service returned status %d", resp.StatusCode)
	}

	var loaded []string
	if err := json.NewDecoder(resp.Body).Decode(&loaded); err != nil {
		return nil, fmt.Errorf("failed to decode loaded contests: %w", err)
	}

	return loaded, nil
}

// LoadContest asks the RAG service to parse and index one contest.
func (c *Client) LoadContest(ctx context.Context, contestID string) error {
	ctx, cancel := context.WithTimeout(ctx, loadTimeout)
	defer cancel()

	body, err := json.Marshal(map[string]string{
		"contest_url": codeforces.ContestURL(codeforces.ContestID{ID: contestID}),
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.ragURL+"/contests/load", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512)) //nolint:errcheck
		return fmt.Errorf("load failed with status %d: %s", resp.StatusCode, respBody)
	}

	return nil
}
