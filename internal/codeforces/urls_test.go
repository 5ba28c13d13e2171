package codeforces

import (
	"testing"
)

func TestParseProblemURL(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		contestID string
		index     string
		wantErr   bool
	}{
		{
			name:      "standard problemset url",
			url:       "https://codeforces.com/problemset/problem/2185/A",
			contestID: "2185",
			index:     "A",
		},
		{
			name:      "ru mirror",
			url:       "https://codeforces.ru/problemset/problem/1774/B",
			contestID: "1774",
			index:     "B",
		},
		{
			name:      "multi character index",
			url:       "https://codeforces.com/problemset/problem/36/C1",
			contestID: "36",
			index:     "C1",
		},
		{
			name:      "trailing path",
			url:       "https://codeforces.com/problemset/problem/2185/A?locale=en",
			contestID: "2185",
			index:     "A",
		},
		{
			name:    "contest url is not a problem url",
			url:     "https://codeforces.com/contest/2185",
			wantErr: true,
		},
		{
			name:    "gym problem not supported",
			url:     "https://codeforces.com/gym/104000/problem/A",
			wantErr: true,
		},
		{
			name:    "missing scheme",
			url:     "codeforces.com/problemset/problem/2185/A",
			wantErr: true,
		},
		{
			name:    "lowercase index rejected",
			url:     "https://codeforces.com/problemset/problem/2185/a",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := ParseProblemURL(tt.url)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q, got %+v", tt.url, id)
				}
				return
			}

			if err != nil {
				t.Fatalf("ParseProblemURL(%q) failed: %v", tt.url, err)
			}

			if id.ContestID != tt.contestID || id.Index != tt.index {
				t.Errorf("got %s/%s, want %s/%s", id.ContestID, id.Index, tt.contestID, tt.index)
			}
		})
	}
}

func TestParseContestURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		id      string
		wantErr bool
	}{
		{name: "standard contest url", url: "https://codeforces.com/contest/2185", id: "2185"},
		{name: "ru mirror", url: "http://codeforces.ru/contest/1860", id: "1860"},
		{name: "contest problem page", url: "https://codeforces.com/contest/2185/problem/A", id: "2185"},
		{name: "problemset url rejected", url: "https://codeforces.com/problemset/problem/2185/A", wantErr: true},
		{name: "gym rejected", url: "https://codeforces.com/gym/104000", wantErr: true},
		{name: "not a url", url: "://bad", wantErr: true},
		{name: "relative path", url: "/contest/2185", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := ParseContestURL(tt.url)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q, got %+v", tt.url, id)
				}
				return
			}

			if err != nil {
				t.Fatalf("ParseContestURL(%q) failed: %v", tt.url, err)
			}

			if id.ID != tt.id {
				t.Errorf("got contest %s, want %s", id.ID, tt.id)
			}
		})
	}
}

func TestURLBuilders(t *testing.T) {
	problem := ProblemURL(ProblemID{ContestID: "2185", Index: "A"})
	if problem != "https://codeforces.com/problemset/problem/2185/A" {
		t.Errorf("unexpected problem url: %s", problem)
	}

	contest := ContestURL(ContestID{ID: "2185"})
	if contest != "https://codeforces.com/contest/2185" {
		t.Errorf("unexpected contest url: %s", contest)
	}

	inContest := ContestProblemURL("2185", "B")
	if inContest != "https://codeforces.com/contest/2185/problem/B" {
		t.Errorf("unexpected contest problem url: %s", inContest)
	}
}

// parse and build should round trip for any valid identifier
func TestParseProblemURLRoundTrip(t *testing.T) {
	ids := []ProblemID{
		{ContestID: "1", Index: "A"},
		{ContestID: "2185", Index: "F"},
		{ContestID: "36", Index: "D2"},
	}

	for _, want := range ids {
		got, err := ParseProblemURL(ProblemURL(want))
		if err != nil {
			t.Fatalf("round trip failed for %v: %v", want, err)
		}

		if got != want {
			t.Errorf("round trip got %v, want %v", got, want)
		}
	}
}
