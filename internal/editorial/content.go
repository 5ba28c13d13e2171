package editorial

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/deyna256/codeforces-rag/internal/httpclient"
	"github.com/deyna256/codeforces-rag/internal/llm"
	"github.com/deyna256/codeforces-rag/internal/logger"
)

// segmentation prompts only ask for markers, so large editorials fit; this
// cap keeps the worst case inside the model context window
const maxEditorialChars = 300000

// minimum viable editorial body length after extraction
const minContentChars = 100

var (
	ErrNoEditorialURLs  = errors.New("no editorial URLs provided")
	ErrAllFetchesFailed = errors.New("all editorial URLs failed to load")
)

// ContentParser fetches editorial blog posts and segments them into
// per-problem analyses using an LLM.
type ContentParser struct {
	http *httpclient.Client
	llm  *llm.OpenRouterClient
}

func NewContentParser(http *httpclient.Client, client *llm.OpenRouterClient) *ContentParser {
	return &ContentParser{http: http, llm: client}
}

// ParseEditorialContent downloads every editorial URL, combines their text
// and returns per-problem analyses. expectedProblems gives the LLM contest
// context; it may be nil.
func (p *ContentParser) ParseEditorialContent(
	ctx context.Context,
	contestID string,
	editorialURLs []string,
	expectedProblems []ProblemKey,
) (*ContestEditorial, error) {
	if len(editorialURLs) == 0 {
		return nil, fmt.Errorf("contest %s: %w", contestID, ErrNoEditorialURLs)
	}

	var contents []string
	var fetched []string

	for _, url := range editorialURLs {
		content, err := p.FetchEditorialContent(ctx, url)
		if err != nil {
			logger.Warn("failed to fetch editorial content", "url", url, "error", err)
			continue
		}
		contents = append(contents, content)
		fetched = append(fetched, url)
	}

	if len(contents) == 0 {
		return nil, fmt.Errorf("contest %s: %w", contestID, ErrAllFetchesFailed)
	}

	combined := CombineContent(contents)

	analyses, err := p.segment(ctx, contestID, combined, expectedProblems)
	if err != nil {
		return nil, err
	}

	return &ContestEditorial{
		ContestID: contestID,
		SourceURL: fetched,
		Analyses:  analyses,
	}, nil
}

func (p *ContentParser) FetchEditorialContent(ctx context.Context, url string) (string, error) {
	body, err := p.http.Get(ctx, url)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", url, err)
	}

	doc, err := html.Parse(strings.NewReader(string(body)))
	if err != nil {
		return "", fmt.Errorf("failed to parse %s: %w", url, err)
	}

	content := ExtractBlogContent(doc)
	if len(strings.TrimSpace(content)) < minContentChars {
		return "", fmt.Errorf("no usable content at %s", url)
	}

	return content, nil
}

// CombineContent joins text from multiple editorial posts, labelling each
// source so segmentation can tell them apart.
func CombineContent(contents []string) string {
	if len(contents) == 1 {
		return contents[0]
	}

	parts := make([]string, 0, len(contents))
	for i, content := range contents {
		parts = append(parts, fmt.Sprintf("=== EDITORIAL SOURCE %d ===\n\n%s", i+1, content))
	}

	return strings.Join(parts, "\n\n")
}

func (p *ContentParser) segment(
	ctx context.Context,
	contestID, editorialText string,
	expectedProblems []ProblemKey,
) (map[ProblemKey]string, error) {
	if p.llm == nil {
		return nil, fmt.Errorf("contest %s: no LLM client available for segmentation", contestID)
	}

	if len(strings.TrimSpace(editorialText)) < 50 {
		return nil, fmt.Errorf("contest %s: content too short for segmentation", contestID)
	}

	if len(editorialText) > maxEditorialChars {
		logger.Warn("truncating editorial text for segmentation",
			"contest_id", contestID, "original_len", len(editorialText))
		editorialText = TruncateForSegmentation(editorialText)
	}

	resp, err := p.llm.Complete(ctx, llm.CompletionRequest{
		SystemPrompt: SegmentationSystemPrompt,
		Prompt:       SegmentationUserPrompt(contestID, expectedProblems, editorialText),
		Temperature:  0,
		MaxTokens:    4000,
	})
	if err != nil {
		return nil, fmt.Errorf("contest %s: segmentation request failed: %w", contestID, err)
	}

	analyses, err := ParseSegmentationResponse(resp.Content, editorialText)
	if err != nil {
		return nil, fmt.Errorf("contest %s: %w", contestID, err)
	}

	return analyses, nil
}

// TruncateForSegmentation caps editorial text at the model context budget.
func TruncateForSegmentation(text string) string {
	if len(text) <= maxEditorialChars {
		return text
	}

	return text[:maxEditorialChars] + "\n\n[CONTENT TRUNCATED DUE TO LENGTH]"
}

// SegmentationUserPrompt renders the segmentation request for an editorial.
func SegmentationUserPrompt(contestID string, expected []ProblemKey, editorialText string) string {
	return fmt.Sprintf(
		"Contest ID: %s\n\nExpected problems: %s\n\nFull editorial text:\n%s\n\n"+
			"IMPORTANT: Identify the START and END markers for each problem's solution.\n"+
			"Find unique text snippets that mark where each problem begins and ends.\n"+
			"Do NOT copy the full text - only return the boundary markers.\n\n"+
			"Return JSON with contest_id, problem_id, start_marker, and end_marker for each problem.",
		contestID, formatExpectedProblems(expected), editorialText)
}

func formatExpectedProblems(expected []ProblemKey) string {
	if len(expected) == 0 {
		return "Unknown (parse all problems found)"
	}

	parts := make([]string, 0, len(expected))
	for _, key := range expected {
		parts = append(parts, key.ContestID+"/"+key.ProblemID)
	}

	return strings.Join(parts, ", ")
}

const SegmentationSystemPrompt = `You are an expert at analyzing Codeforces contest editorials.
Your task is to identify where each problem's solution starts and ends in the editorial text.

CRITICAL INSTRUCTIONS:
1. Editorials often cover MULTIPLE contests (e.g., Div1 + Div2) in ONE blog post.
   You MUST identify the contest ID for each problem to avoid confusion.

2. DO NOT extract or copy the full text - only identify boundaries!
   For each problem, find:
   - A unique text marker that indicates where the problem's solution STARTS
   - A unique text marker that indicates where the problem's solution ENDS

3. Return ONLY metadata about problem locations, not the full text content.

Return this JSON format:
{
  "problems": [
    {
      "contest_id": "1900",
      "problem_id": "A",
      "start_marker": "Problem A",
      "end_marker": "Problem B"
    }
  ]
}

Guidelines:
- Look for contest IDs in: problem headers (e.g., "1900A"), section titles, blog text
- Use uppercase letters for problem_id (A, B, C, etc.)
- contest_id should be numeric string (e.g., "1900", "1901")
- start_marker and end_marker should be unique text snippets (10-50 characters) that appear in the editorial
- For the last problem, end_marker can be empty string "" if no clear ending
- If contest ID is ambiguous, infer from context or use the primary contest ID
- Return valid JSON only, no extra text`
