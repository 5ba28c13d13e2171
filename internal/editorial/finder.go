package editorial

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/deyna256/codeforces-rag/internal/codeforces"
	"github.com/deyna256/codeforces-rag/internal/llm"
	"github.com/deyna256/codeforces-rag/internal/logger"
)

// at most this many candidate links go into the LLM prompt
const maxCandidateLinks = 20

// link text keywords that mark editorials, used by the regex fallback
var editorialKeywords = []string{"tutorial", "editorial", "разбор", "analysis", "solution"}

// hrefs containing these never lead to an editorial
var skipHrefPatterns = []string{
	"/profile/",
	"/problemset/",
	"/contest/",
	"/gym/",
	"/standings/",
	"/submission/",
	"/register",
	"/settings",
	"javascript:",
	"#",
}

// Finder detects editorial URLs among contest page links, asking an LLM first
// and falling back to keyword matching.
type Finder struct {
	llm *llm.OpenRouterClient // nil disables LLM detection
}

func NewFinder(client *llm.OpenRouterClient) *Finder {
	return &Finder{llm: client}
}

// returns editorial URLs for the contest, or an empty slice when none are found
func (f *Finder) FindEditorialURLs(ctx context.Context, contestID string, links []codeforces.Link) []string {
	log := logger.With("contest_id", contestID)

	if f.llm != nil {
		urls, err := f.askLLM(ctx, contestID, CandidateLinks(links))
		if err != nil {
			log.Debug("LLM editorial detection failed", "error", err)
		} else if len(urls) > 0 {
			log.Info("LLM identified editorial URLs", "count", len(urls))
			return urls
		} else {
			log.Debug("LLM did not find editorials, using regex fallback")
		}
	}

	urls := findByKeywords(links)
	if len(urls) > 0 {
		log.Info("found editorial URLs via keyword fallback", "count", len(urls))
	}

	return urls
}

// filters page links down to plausible editorial candidates for the prompt
func CandidateLinks(links []codeforces.Link) []codeforces.Link {
	seen := make(map[string]struct{})
	candidates := make([]codeforces.Link, 0, maxCandidateLinks)

	for _, link := range links {
		if !isPotentialEditorialHref(link.Href) {
			continue
		}

		if _, ok := seen[link.Href]; ok {
			continue
		}
		seen[link.Href] = struct{}{}

		if link.Text == "" {
			continue
		}

		candidates = append(candidates, codeforces.Link{
			Href: codeforces.AbsoluteURL(link.Href),
			Text: link.Text,
		})

		if len(candidates) == maxCandidateLinks {
			break
		}
	}

	return candidates
}

func isPotentialEditorialHref(href string) bool {
	// blog entries are always worth considering
	if strings.Contains(href, "/blog/entry/") {
		return true
	}

	for _, pattern := range skipHrefPatterns {
		if strings.Contains(href, pattern) {
			return false
		}
	}

	return true
}

// keyword fallback used when the LLM is unavailable or finds nothing
func findByKeywords(links []codeforces.Link) []string {
	var urls []string
	seen := make(map[string]struct{})

	for _, link := range links {
		text := strings.ToLower(link.Text)

		matched := false
		for _, keyword := range editorialKeywords {
			if strings.Contains(text, keyword) {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}

		url := codeforces.AbsoluteURL(link.Href)
		if _, ok := seen[url]; ok {
			continue
		}
		seen[url] = struct{}{}
		urls = append(urls, url)
	}

	return urls
}

func (f *Finder) askLLM(ctx context.Context, contestID string, candidates []codeforces.Link) ([]string, error) {
	if len(candidates) == 0 {
		return nil, nil
	}

	resp, err := f.llm.Complete(ctx, llm.CompletionRequest{
		SystemPrompt: FinderSystemPrompt,
		Prompt:       FinderUserPrompt(contestID, candidates),
		Temperature:  0,
		MaxTokens:    100,
	})
	if err != nil {
		return nil, err
	}

	return ParseFinderResponse(resp.Content)
}

// FinderUserPrompt renders the numbered candidate link list for the model.
func FinderUserPrompt(contestID string, candidates []codeforces.Link) string {
	var linksText strings.Builder
	for i, link := range candidates {
		fmt.Fprintf(&linksText, "%d. [%s] - %s\n", i+1, link.Text, link.Href)
	}

	return fmt.Sprintf(
		"Contest ID: %s\n\nAvailable links:\n%s\nWhich links are editorials/tutorials? Return ALL editorial links if multiple exist. Respond with JSON only.",
		contestID, linksText.String())
}

// ParseFinderResponse extracts the editorial URL list from a model response.
func ParseFinderResponse(content string) ([]string, error) {
	var result struct {
		URLs []string `json:"urls"`
	}
	if err := json.Unmarshal([]byte(extractJSON(content)), &result); err != nil {
		return nil, fmt.Errorf("failed to parse finder response as JSON: %w", err)
	}

	return result.URLs, nil
}

const FinderSystemPrompt = `You are an expert at analyzing Codeforces contest pages.
Your task is to identify ALL links that lead to editorials/tutorials for the contest.

IMPORTANT: Some contests may have multiple editorial links (e.g., different divisions, multiple parts, alternative solutions). You must return ALL editorial links found.

Editorial/Solution links typically:
- Have text like "Tutorial", "Editorial", "Analysis", "Solutions", "Разбор задач", "Разбор" (Russian for "analysis", "solutions")
- Do NOT have text like "Announcement", "Registration", "Rules", "Timetable", or other meta-contest information
- Point to /blog/entry/ URLs
- Are posted by contest authors or coordinators
- Are typically posted AFTER the contest ends (not as announcements before)

Respond ONLY with a JSON object in this format:
{"urls": ["url1", "url2", ...]} if found, or {"urls": []} if no editorial links exist.

Do not include any explanation or additional text.`
