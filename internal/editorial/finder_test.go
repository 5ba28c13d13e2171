package editorial

import (
	"context"
	"fmt"
	"testing"

	"github.com/deyna256/codeforces-rag/internal/codeforces"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidateLinks(t *testing.T) {
	links := []codeforces.Link{
		{Href: "/blog/entry/150288", Text: "Tutorial (en)"},
		{Href: "/blog/entry/150288", Text: "Tutorial (en)"}, // duplicate
		{Href: "/profile/tourist", Text: "tourist"},
		{Href: "/contest/2185/standings", Text: "Standings"},
		{Href: "javascript:void(0)", Text: "Toggle"},
		{Href: "/blog/entry/150290", Text: ""}, // no text
		{Href: "https://codeforces.com/blog/entry/150291", Text: "Announcement"},
	}

	candidates := CandidateLinks(links)

	require.Len(t, candidates, 2)
	assert.Equal(t, "https://codeforces.com/blog/entry/150288", candidates[0].Href)
	assert.Equal(t, "Tutorial (en)", candidates[0].Text)
	assert.Equal(t, "https://codeforces.com/blog/entry/150291", candidates[1].Href)
}

func TestCandidateLinksCap(t *testing.T) {
	var links []codeforces.Link
	for i := 0; i < 50; i++ {
		links = append(links, codeforces.Link{
			Href: fmt.Sprintf("/blog/entry/%d", 150000+i),
			Text: "Blog post",
		})
	}

	assert.Len(t, CandidateLinks(links), maxCandidateLinks)
}

func TestFindEditorialURLsKeywordFallback(t *testing.T) {
	finder := NewFinder(nil)

	links := []codeforces.Link{
		{Href: "/blog/entry/150288", Text: "Tutorial (en)"},
		{Href: "/blog/entry/150289", Text: "Разбор задач"},
		{Href: "/blog/entry/150290", Text: "Announcement"},
		{Href: "/blog/entry/150288", Text: "Tutorial"}, // same target, different text
	}

	urls := finder.FindEditorialURLs(context.Background(), "2185", links)

	require.Len(t, urls, 2)
	assert.Equal(t, "https://codeforces.com/blog/entry/150288", urls[0])
	assert.Equal(t, "https://codeforces.com/blog/entry/150289", urls[1])
}

func TestFindEditorialURLsNoMatches(t *testing.T) {
	finder := NewFinder(nil)

	urls := finder.FindEditorialURLs(context.Background(), "2177", []codeforces.Link{
		{Href: "/blog/entry/150290", Text: "Announcement"},
		{Href: "/contest/2177/standings", Text: "Standings"},
	})

	assert.Empty(t, urls)
}

func TestFinderUserPrompt(t *testing.T) {
	prompt := FinderUserPrompt("2185", []codeforces.Link{
		{Href: "https://codeforces.com/blog/entry/150288", Text: "Tutorial (en)"},
		{Href: "https://codeforces.com/blog/entry/150290", Text: "Announcement"},
	})

	assert.Contains(t, prompt, "Contest ID: 2185")
	assert.Contains(t, prompt, "1. [Tutorial (en)] - https://codeforces.com/blog/entry/150288")
	assert.Contains(t, prompt, "2. [Announcement] - https://codeforces.com/blog/entry/150290")
}

func TestParseFinderResponse(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
		wantErr bool
	}{
		{
			name:    "plain json",
			content: `{"urls": ["https://codeforces.com/blog/entry/150288"]}`,
			want:    []string{"https://codeforces.com/blog/entry/150288"},
		},
		{
			name:    "empty result",
			content: `{"urls": []}`,
			want:    []string{},
		},
		{
			name:    "fenced block",
			content: "Here you go:\n```json\n{\"urls\": [\"https://codeforces.com/blog/entry/1\"]}\n```",
			want:    []string{"https://codeforces.com/blog/entry/1"},
		},
		{
			name:    "json embedded in prose",
			content: `Sure! The editorial links are {"urls": ["https://codeforces.com/blog/entry/2"]} as requested.`,
			want:    []string{"https://codeforces.com/blog/entry/2"},
		},
		{
			name:    "no json at all",
			content: "I could not find any editorials.",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			urls, err := ParseFinderResponse(tt.content)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, urls)
		})
	}
}
