package benchmark

import (
	"context"
	"sync"
	"time"

	"github.com/deyna256/codeforces-rag/internal/codeforces"
	"github.com/deyna256/codeforces-rag/internal/editorial"
	"github.com/deyna256/codeforces-rag/internal/httpclient"
	"github.com/deyna256/codeforces-rag/internal/llm"
	"github.com/deyna256/codeforces-rag/internal/logger"
)

// PreparedCase is a fully rendered prompt plus its ground truth. The prompt
// does not depend on the model, so cases are prepared once and reused across
// the whole roster.
type PreparedCase struct {
	ContestID        string
	Description      string
	Prompt           string
	ExpectedURLs     []string          // finder ground truth
	ExpectedProblems []ExpectedProblem // segmentation ground truth
}

// Runner prepares benchmark cases from live Codeforces pages and executes
// them against OpenRouter models.
type Runner struct {
	apiKey string
	http   *httpclient.Client
}

func NewRunner(apiKey string) *Runner {
	return &Runner{
		apiKey: apiKey,
		http:   httpclient.New(httpclient.Config{}),
	}
}

// PrepareFinderCases fetches each contest page and renders the finder
// prompt. Contests whose pages yield no candidate links are skipped.
func (r *Runner) PrepareFinderCases(ctx context.Context) ([]PreparedCase, error) {
	scraper := codeforces.NewContestPageScraper(r.http)
	var cases []PreparedCase

	for _, tc := range FinderTestCases {
		links, err := scraper.FetchContestLinks(ctx, codeforces.ContestID{ID: tc.ContestID})
		if err != nil {
			logger.Warn("failed to fetch contest page, skipping case",
				"contest_id", tc.ContestID, "error", err)
			continue
		}

		candidates := editorial.CandidateLinks(links)
		if len(candidates) == 0 {
			logger.Debug("no candidate links for contest, skipping case", "contest_id", tc.ContestID)
			continue
		}

		cases = append(cases, PreparedCase{
			ContestID:    tc.ContestID,
			Description:  tc.Description,
			Prompt:       editorial.FinderUserPrompt(tc.ContestID, candidates),
			ExpectedURLs: tc.Expected,
		})
	}

	return cases, nil
}

// PrepareSegmentationCases fetches each editorial and renders the
// segmentation prompt. Contests without an editorial need no LLM call and
// are skipped.
func (r *Runner) PrepareSegmentationCases(ctx context.Context) ([]PreparedCase, error) {
	parser := editorial.NewContentParser(r.http, nil)
	var cases []PreparedCase

	for _, tc := range SegmentationTestCases {
		if len(tc.EditorialURL) == 0 {
			logger.Debug("no editorial URLs for contest, skipping case", "contest_id", tc.ContestID)
			continue
		}

		var contents []string
		for _, url := range tc.EditorialURL {
			content, err := parser.FetchEditorialContent(ctx, url)
			if err != nil {
				logger.Warn("failed to fetch editorial", "url", url, "error", err)
				continue
			}
			contents = append(contents, content)
		}
		if len(contents) == 0 {
			logger.Warn("no editorial content fetched, skipping case", "contest_id", tc.ContestID)
			continue
		}

		combined := editorial.TruncateForSegmentation(editorial.CombineContent(contents))

		expected := make([]editorial.ProblemKey, 0, len(tc.Expected))
		for _, p := range tc.Expected {
			expected = append(expected, editorial.ProblemKey{ContestID: p.ContestID, ProblemID: p.ProblemID})
		}

		cases = append(cases, PreparedCase{
			ContestID:        tc.ContestID,
			Description:      tc.Description,
			Prompt:           editorial.SegmentationUserPrompt(tc.ContestID, expected, combined),
			ExpectedProblems: tc.Expected,
		})
	}

	return cases, nil
}

// RunFinder executes prepared finder cases against one model.
func (r *Runner) RunFinder(ctx context.Context, model ModelConfig, cases []PreparedCase) Metrics {
	results := r.runCases(ctx, model, cases, llm.CompletionRequest{
		SystemPrompt: editorial.FinderSystemPrompt,
		Temperature:  0,
		MaxTokens:    model.MaxTokens,
	}, model.Timeout, func(content string, tc PreparedCase, result *TestResult) {
		result.Expected = tc.ExpectedURLs
		validation := ValidateFinderResponse(content, tc.ExpectedURLs)
		result.Found = validation.Found
		result.Correct = validation.Passed
	})

	return CalculateFinderMetrics(model, results)
}

// RunSegmentation executes prepared segmentation cases against one model.
func (r *Runner) RunSegmentation(ctx context.Context, model ModelConfig, cases []PreparedCase) Metrics {
	results := r.runCases(ctx, model, cases, llm.CompletionRequest{
		SystemPrompt: editorial.SegmentationSystemPrompt,
		Temperature:  0,
		MaxTokens:    model.MaxTokensSegmentation,
	}, model.TimeoutSegmentation, func(content string, tc PreparedCase, result *TestResult) {
		for _, p := range tc.ExpectedProblems {
			result.Expected = append(result.Expected, p.ContestID+"/"+p.ProblemID)
		}
		validation := ValidateSegmentationResponse(content, tc.ExpectedProblems)
		result.Found = validation.Found
		result.Accuracy = validation.Accuracy
		result.Correct = validation.Passed
	})

	return CalculateSegmentationMetrics(model, results)
}

// runCases fans prepared cases out over a bounded worker pool, preserving
// case order in the results.
func (r *Runner) runCases(
	ctx context.Context,
	model ModelConfig,
	cases []PreparedCase,
	base llm.CompletionRequest,
	timeout time.Duration,
	judge func(content string, tc PreparedCase, result *TestResult),
) []TestResult {
	client := llm.NewOpenRouterClient(llm.OpenRouterConfig{
		APIKey:  r.apiKey,
		Model:   model.Name,
		Timeout: timeout,
	})

	log := logger.With("model", model.DisplayName)
	log.Info("starting benchmark", "cases", len(cases))

	results := make([]TestResult, len(cases))
	sem := make(chan struct{}, MaxConcurrent)
	var wg sync.WaitGroup

	var completed int
	var mu sync.Mutex

	for i, tc := range cases {
		wg.Add(1)
		go func(i int, tc PreparedCase) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			result := TestResult{ContestID: tc.ContestID}

			req := base
			req.Prompt = tc.Prompt

			start := time.Now()
			resp, err := completeWithRetry(ctx, client, req)
			result.LatencyMs = float64(time.Since(start).Milliseconds())

			if err != nil {
				result.Error = err.Error()
			} else {
				result.PromptTokens = resp.Usage.PromptTokens
				result.CompletionTokens = resp.Usage.CompletionTokens
				judge(resp.Content, tc, &result)
			}

			results[i] = result

			mu.Lock()
			completed++
			log.Info("benchmark progress", "completed", completed, "total", len(cases))
			mu.Unlock()
		}(i, tc)
	}

	wg.Wait()
	return results
}

func completeWithRetry(ctx context.Context, client *llm.OpenRouterClient, req llm.CompletionRequest) (*llm.Completion, error) {
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		resp, err := client.Complete(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if ctx.Err() != nil {
			break
		}
	}

	return nil, lastErr
}
