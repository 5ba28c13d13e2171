// Package contest assembles full contest data: API metadata, scraped problem
// pages and segmented editorial analyses.
package contest

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/deyna256/codeforces-rag/internal/cache"
	"github.com/deyna256/codeforces-rag/internal/codeforces"
	"github.com/deyna256/codeforces-rag/internal/editorial"
	"github.com/deyna256/codeforces-rag/internal/logger"
)

// problem pages fetched concurrently per contest
const pageFetchWorkers = 4

// Problem is one contest problem with everything the parser could collect.
type Problem struct {
	ContestID   string   `json:"contest_id"`
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Statement   string   `json:"statement,omitempty"`
	Rating      int      `json:"rating,omitempty"`
	Tags        []string `json:"tags"`
	TimeLimit   string   `json:"time_limit,omitempty"`
	MemoryLimit string   `json:"memory_limit,omitempty"`
	Explanation string   `json:"explanation,omitempty"`
}

// Contest is the full parser response for one contest.
type Contest struct {
	ContestID  string    `json:"contest_id"`
	Title      string    `json:"title"`
	Problems   []Problem `json:"problems"`
	Editorials []string  `json:"editorials"`
}

type Service struct {
	api             *codeforces.APIClient
	pageParser      *codeforces.PageParser
	contestScraper  *codeforces.ContestPageScraper
	finder          *editorial.Finder
	editorialParser *editorial.ContentParser
	cache           *cache.Cache
}

func NewService(
	api *codeforces.APIClient,
	pageParser *codeforces.PageParser,
	contestScraper *codeforces.ContestPageScraper,
	finder *editorial.Finder,
	editorialParser *editorial.ContentParser,
	c *cache.Cache,
) *Service {
	return &Service{
		api:             api,
		pageParser:      pageParser,
		contestScraper:  contestScraper,
		finder:          finder,
		editorialParser: editorialParser,
		cache:           c,
	}
}

func (s *Service) GetContestByURL(ctx context.Context, url string) (*Contest, error) {
	id, err := codeforces.ParseContestURL(url)
	if err != nil {
		return nil, err
	}

	return s.GetContest(ctx, id.ID)
}

func (s *Service) GetContest(ctx context.Context, contestID string) (*Contest, error) {
	cacheKey := "contest:" + contestID
	log := logger.With("contest_id", contestID)

	var cached Contest
	if err := s.cache.GetJSON(ctx, cacheKey, &cached); err == nil {
		log.Debug("contest served from cache")
		return &cached, nil
	} else if !errors.Is(err, cache.ErrMiss) {
		log.Warn("cache lookup failed", "error", err)
	}

	standings, err := s.api.FetchContestStandings(ctx, contestID)
	if err != nil {
		return nil, err
	}

	title := standings.Contest.Name
	if title == "" {
		title = "Contest " + contestID
	}

	// problemset.problems is the fallback source for ratings and tags
	problemMap := s.fetchProblemMetadata(ctx)

	editorialURLs := s.findEditorials(ctx, contestID)

	problems := s.fetchProblems(ctx, contestID, standings.Problems, problemMap)

	if s.editorialParser != nil && len(editorialURLs) > 0 {
		s.attachExplanations(ctx, contestID, editorialURLs, problems)
	}

	result := &Contest{
		ContestID:  contestID,
		Title:      title,
		Problems:   problems,
		Editorials: editorialURLs,
	}

	if err := s.cache.SetJSON(ctx, cacheKey, result); err != nil {
		log.Warn("failed to cache contest", "error", err)
	}

	log.Info("fetched contest", "problems", len(problems), "editorials", len(editorialURLs))
	return result, nil
}

func (s *Service) fetchProblemMetadata(ctx context.Context) map[codeforces.ProblemID]codeforces.APIProblem {
	problems, err := s.api.FetchProblemsetProblems(ctx)
	if err != nil {
		logger.Warn("failed to fetch problemset metadata", "error", err)
		return nil
	}

	m := make(map[codeforces.ProblemID]codeforces.APIProblem, len(problems))
	for _, p := range problems {
		key := codeforces.ProblemID{ContestID: strconv.Itoa(p.ContestID), Index: p.Index}
		m[key] = p
	}
	return m
}

func (s *Service) findEditorials(ctx context.Context, contestID string) []string {
	links, err := s.contestScraper.FetchContestLinks(ctx, codeforces.ContestID{ID: contestID})
	if err != nil {
		logger.Warn("failed to scrape contest page", "contest_id", contestID, "error", err)
		return nil
	}

	return s.finder.FindEditorialURLs(ctx, contestID, links)
}

// fetchProblems scrapes every problem page concurrently, preserving the
// standings order. A failed page still yields a problem with API metadata.
func (s *Service) fetchProblems(
	ctx context.Context,
	contestID string,
	apiProblems []codeforces.APIProblem,
	problemMap map[codeforces.ProblemID]codeforces.APIProblem,
) []Problem {
	results := make([]Problem, len(apiProblems))

	var wg sync.WaitGroup
	sem := make(chan struct{}, pageFetchWorkers)

	for i, apiProblem := range apiProblems {
		wg.Add(1)
		go func(i int, apiProblem codeforces.APIProblem) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			results[i] = s.fetchProblem(ctx, contestID, apiProblem, problemMap)
		}(i, apiProblem)
	}
	wg.Wait()

	return results
}

func (s *Service) fetchProblem(
	ctx context.Context,
	contestID string,
	apiProblem codeforces.APIProblem,
	problemMap map[codeforces.ProblemID]codeforces.APIProblem,
) Problem {
	rating := apiProblem.Rating
	tags := apiProblem.Tags

	if rating == 0 || len(tags) == 0 {
		if meta, ok := problemMap[codeforces.ProblemID{ContestID: contestID, Index: apiProblem.Index}]; ok {
			if rating == 0 {
				rating = meta.Rating
			}
			if len(tags) == 0 {
				tags = meta.Tags
			}
		}
	}

	title := apiProblem.Name
	if title == "" {
		title = "Problem " + apiProblem.Index
	}

	result := Problem{
		ContestID: contestID,
		ID:        apiProblem.Index,
		Title:     title,
		Rating:    rating,
		Tags:      tags,
	}

	pageData, err := s.pageParser.ParseProblemInContest(ctx, contestID, apiProblem.Index)
	if err != nil {
		logger.Warn("failed to parse problem page",
			"problem", fmt.Sprintf("%s/%s", contestID, apiProblem.Index), "error", err)
		return result
	}

	result.Statement = pageData.Description
	result.TimeLimit = pageData.TimeLimit
	result.MemoryLimit = pageData.MemoryLimit
	return result
}

// attachExplanations segments the editorial and fills problem explanations.
// Analyses attributed to other contests in a shared blog post are skipped.
func (s *Service) attachExplanations(ctx context.Context, contestID string, editorialURLs []string, problems []Problem) {
	expected := make([]editorial.ProblemKey, 0, len(problems))
	for _, p := range problems {
		expected = append(expected, editorial.ProblemKey{ContestID: p.ContestID, ProblemID: strings.ToUpper(p.ID)})
	}

	parsed, err := s.editorialParser.ParseEditorialContent(ctx, contestID, editorialURLs, expected)
	if err != nil {
		logger.Warn("failed to parse editorial content", "contest_id", contestID, "error", err)
		return
	}

	explanations := make(map[string]string)
	skipped := 0
	for key, analysis := range parsed.Analyses {
		// an empty contest id comes from the legacy response format and is
		// assumed to belong to the requested contest
		if key.ContestID != "" && key.ContestID != contestID {
			skipped++
			continue
		}
		explanations[strings.ToUpper(key.ProblemID)] = analysis
	}

	matched := 0
	for i := range problems {
		if analysis, ok := explanations[strings.ToUpper(problems[i].ID)]; ok {
			problems[i].Explanation = analysis
			matched++
		}
	}

	logger.Info("matched editorial analyses",
		"contest_id", contestID, "matched", matched,
		"total", len(problems), "skipped_other_contests", skipped)
}
