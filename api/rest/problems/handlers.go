package problems

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deyna256/codeforces-rag/internal/codeforces"
	"github.com/deyna256/codeforces-rag/internal/errors"
	"github.com/deyna256/codeforces-rag/internal/problem"
	"github.com/deyna256/codeforces-rag/internal/storage"
)

// listings never return more than this many problems
const maxListLimit = 200

// ParseHandler resolves a problem URL and returns metadata plus scraped text.
func ParseHandler(svc *problem.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ParseRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		id, err := codeforces.ParseProblemURL(req.URL)
		if err != nil {
			errors.BadRequest(c, "invalid problem URL", err)
			return
		}

		result, err := svc.GetProblem(c.Request.Context(), id)
		if err != nil {
			if stderrors.Is(err, codeforces.ErrProblemNotFound) {
				errors.NotFound(c, "problem")
				return
			}
			errors.UpstreamError(c, "failed to fetch problem", err)
			return
		}

		c.JSON(http.StatusOK, ParseResponse{
			Statement:   result.Statement,
			Tags:        result.Tags,
			Rating:      result.Rating,
			ContestID:   result.ContestID,
			ID:          result.ID,
			URL:         req.URL,
			Description: result.Description,
			TimeLimit:   result.TimeLimit,
			MemoryLimit: result.MemoryLimit,
		})
	}
}

// ListHandler returns a filtered problem listing from Postgres.
func ListHandler(store *storage.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var query ListQuery
		if err := c.ShouldBindQuery(&query); err != nil {
			errors.ValidationError(c, err)
			return
		}

		if query.Limit > maxListLimit {
			query.Limit = maxListLimit
		}

		items, err := store.ListProblems(c.Request.Context(), storage.ListFilter{
			RatingMin: query.RatingMin,
			RatingMax: query.RatingMax,
			Tags:      query.Tags,
			ContestID: query.ContestID,
			Limit:     query.Limit,
		})
		if err != nil {
			errors.InternalError(c, "failed to list problems", err)
			return
		}

		c.JSON(http.StatusOK, items)
	}
}

// TextHandler returns the stored statement or editorial for one problem.
func TextHandler(store *storage.Client, field string) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := store.GetProblemText(c.Request.Context(), c.Param("id"), field)
		if err != nil {
			if stderrors.Is(err, storage.ErrNotFound) {
				errors.NotFound(c, "problem")
				return
			}
			errors.InternalError(c, "failed to load problem text", err)
			return
		}

		c.JSON(http.StatusOK, result)
	}
}
