package codeforces

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/deyna256/codeforces-rag/internal/httpclient"
)

func respond(t *testing.T, w http.ResponseWriter, body string) {
	t.Helper()

	if _, err := w.Write([]byte(body)); err != nil {
		t.Errorf("failed to write test response: %v", err)
	}
}

func newTestAPIClient(handler http.HandlerFunc) (*APIClient, *httptest.Server) {
	server := httptest.NewServer(handler)
	client := NewAPIClientWithBaseURL(httpclient.New(httpclient.Config{Retries: 1, RequestsPerSecond: 1000, Burst: 1000}), server.URL)
	return client, server
}

func TestFetchContestStandings(t *testing.T) {
	client, server := newTestAPIClient(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/contest.standings" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("contestId") != "2185" {
			t.Errorf("unexpected contestId %s", r.URL.Query().Get("contestId"))
		}

		respond(t, w, `{
			"status": "OK",
			"result": {
				"contest": {"id": 2185, "name": "Codeforces Round 1000", "phase": "FINISHED", "type": "CF"},
				"problems": [
					{"contestId": 2185, "index": "A", "name": "Easy Sum", "rating": 800, "tags": ["math"]},
					{"contestId": 2185, "index": "B", "name": "Harder Sum", "tags": ["greedy", "dp"]}
				]
			}
		}`)
	})
	defer server.Close()

	standings, err := client.FetchContestStandings(context.Background(), "2185")
	if err != nil {
		t.Fatalf("FetchContestStandings failed: %v", err)
	}

	if standings.Contest.Name != "Codeforces Round 1000" {
		t.Errorf("contest name: got %q", standings.Contest.Name)
	}

	if len(standings.Problems) != 2 {
		t.Fatalf("expected 2 problems, got %d", len(standings.Problems))
	}

	if standings.Problems[0].Rating != 800 {
		t.Errorf("problem A rating: got %d, want 800", standings.Problems[0].Rating)
	}

	if standings.Problems[1].Rating != 0 {
		t.Errorf("unrated problem should have zero rating, got %d", standings.Problems[1].Rating)
	}
}

func TestFetchContestStandingsNotFound(t *testing.T) {
	client, server := newTestAPIClient(func(w http.ResponseWriter, r *http.Request) {
		respond(t, w, `{"status": "FAILED", "comment": "contestId: Contest with id 999999 not found"}`)
	})
	defer server.Close()

	_, err := client.FetchContestStandings(context.Background(), "999999")

	if !errors.Is(err, ErrContestNotFound) {
		t.Errorf("expected ErrContestNotFound, got %v", err)
	}
}

func TestFetchContestStandingsAPIError(t *testing.T) {
	client, server := newTestAPIClient(func(w http.ResponseWriter, r *http.Request) {
		respond(t, w, `{"status": "FAILED", "comment": "contest.standings temporarily disabled"}`)
	})
	defer server.Close()

	_, err := client.FetchContestStandings(context.Background(), "2185")

	if err == nil {
		t.Fatal("expected error for FAILED status")
	}

	if errors.Is(err, ErrContestNotFound) {
		t.Errorf("non not-found failure should not map to ErrContestNotFound: %v", err)
	}
}

func TestGetProblemDetails(t *testing.T) {
	client, server := newTestAPIClient(func(w http.ResponseWriter, r *http.Request) {
		respond(t, w, `{
			"status": "OK",
			"result": {
				"problems": [
					{"contestId": 2185, "index": "A", "name": "Easy Sum", "rating": 800, "tags": ["math"]},
					{"contestId": 2185, "index": "B", "name": "Harder Sum", "rating": 1200, "tags": ["dp"]}
				]
			}
		}`)
	})
	defer server.Close()

	problem, err := client.GetProblemDetails(context.Background(), ProblemID{ContestID: "2185", Index: "B"})
	if err != nil {
		t.Fatalf("GetProblemDetails failed: %v", err)
	}

	if problem.Name != "Harder Sum" || problem.Rating != 1200 {
		t.Errorf("unexpected problem: %+v", problem)
	}

	_, err = client.GetProblemDetails(context.Background(), ProblemID{ContestID: "2185", Index: "Z"})
	if !errors.Is(err, ErrProblemNotFound) {
		t.Errorf("expected ErrProblemNotFound, got %v", err)
	}
}

func TestFetchContestList(t *testing.T) {
	client, server := newTestAPIClient(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("gym") != "false" {
			t.Errorf("expected gym=false, got %s", r.URL.Query().Get("gym"))
		}

		respond(t, w, `{
			"status": "OK",
			"result": [
				{"id": 2191, "name": "Round A", "phase": "FINISHED"},
				{"id": 2192, "name": "Round B", "phase": "BEFORE"}
			]
		}`)
	})
	defer server.Close()

	contests, err := client.FetchContestList(context.Background())
	if err != nil {
		t.Fatalf("FetchContestList failed: %v", err)
	}

	if len(contests) != 2 {
		t.Fatalf("expected 2 contests, got %d", len(contests))
	}

	if contests[0].ID != 2191 || contests[0].Phase != "FINISHED" {
		t.Errorf("unexpected first contest: %+v", contests[0])
	}
}

func TestCallRejectsInvalidJSON(t *testing.T) {
	client, server := newTestAPIClient(func(w http.ResponseWriter, r *http.Request) {
		respond(t, w, `<html>Cloudflare says no</html>`)
	})
	defer server.Close()

	if _, err := client.FetchContestList(context.Background()); err == nil {
		t.Fatal("expected error for non-JSON response")
	}
}
