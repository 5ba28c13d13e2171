// Package problem resolves single Codeforces problems from the API and the
// problem page.
package problem

import (
	"context"
	"errors"
	"fmt"

	"github.com/deyna256/codeforces-rag/internal/cache"
	"github.com/deyna256/codeforces-rag/internal/codeforces"
	"github.com/deyna256/codeforces-rag/internal/logger"
)

// Problem is the parser's view of a single problem. Statement carries the
// problem name from the API; Description holds the scraped statement text.
type Problem struct {
	Statement   string   `json:"statement"`
	Tags        []string `json:"tags"`
	Rating      int      `json:"rating,omitempty"`
	ContestID   string   `json:"contest_id"`
	ID          string   `json:"id"`
	Description string   `json:"description,omitempty"`
	TimeLimit   string   `json:"time_limit,omitempty"`
	MemoryLimit string   `json:"memory_limit,omitempty"`
}

type Service struct {
	api        *codeforces.APIClient
	pageParser *codeforces.PageParser
	cache      *cache.Cache
}

func NewService(api *codeforces.APIClient, pageParser *codeforces.PageParser, c *cache.Cache) *Service {
	return &Service{api: api, pageParser: pageParser, cache: c}
}

func (s *Service) GetProblemByURL(ctx context.Context, url string) (*Problem, error) {
	id, err := codeforces.ParseProblemURL(url)
	if err != nil {
		return nil, err
	}

	return s.GetProblem(ctx, id)
}

func (s *Service) GetProblem(ctx context.Context, id codeforces.ProblemID) (*Problem, error) {
	cacheKey := fmt.Sprintf("problem:%s:%s", id.ContestID, id.Index)

	var cached Problem
	if err := s.cache.GetJSON(ctx, cacheKey, &cached); err == nil {
		logger.Debug("problem served from cache", "problem", id.String())
		return &cached, nil
	} else if !errors.Is(err, cache.ErrMiss) {
		logger.Warn("cache lookup failed", "key", cacheKey, "error", err)
	}

	details, err := s.api.GetProblemDetails(ctx, id)
	if err != nil {
		return nil, err
	}

	result := &Problem{
		Statement: details.Name,
		Tags:      details.Tags,
		Rating:    details.Rating,
		ContestID: id.ContestID,
		ID:        details.Index,
	}

	// page data is optional: the API metadata alone is still a useful answer
	if pageData, err := s.pageParser.ParseProblemPage(ctx, id); err != nil {
		logger.Debug("failed to parse problem page", "problem", id.String(), "error", err)
	} else {
		result.Description = pageData.Description
		result.TimeLimit = pageData.TimeLimit
		result.MemoryLimit = pageData.MemoryLimit
	}

	if err := s.cache.SetJSON(ctx, cacheKey, result); err != nil {
		logger.Warn("failed to cache problem", "key", cacheKey, "error", err)
	}

	return result, nil
}
