package contests

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deyna256/codeforces-rag/internal/codeforces"
	"github.com/deyna256/codeforces-rag/internal/contest"
	"github.com/deyna256/codeforces-rag/internal/errors"
	"github.com/deyna256/codeforces-rag/internal/indexer"
	"github.com/deyna256/codeforces-rag/internal/logger"
	"github.com/deyna256/codeforces-rag/internal/parserclient"
	"github.com/deyna256/codeforces-rag/internal/storage"
)

// ParseHandler resolves a contest URL and returns the fully parsed contest.
func ParseHandler(svc *contest.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ParseRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		id, err := codeforces.ParseContestURL(req.URL)
		if err != nil {
			errors.BadRequest(c, "invalid contest URL", err)
			return
		}

		logger.Debug("contest requested", "url", req.URL)

		result, err := svc.GetContest(c.Request.Context(), id.ID)
		if err != nil {
			if stderrors.Is(err, codeforces.ErrContestNotFound) {
				errors.NotFound(c, "contest")
				return
			}
			errors.UpstreamError(c, "failed to fetch contest", err)
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

// LoadHandler fetches a contest from the parser service and indexes it.
func LoadHandler(parser *parserclient.Client, ix *indexer.Indexer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoadRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		resp, err := parser.FetchContest(c.Request.Context(), req.ContestURL)
		if err != nil {
			errors.UpstreamError(c, "failed to fetch contest from parser", err)
			return
		}

		count, err := ix.IndexContest(c.Request.Context(), resp)
		if err != nil {
			errors.InternalError(c, "failed to index contest", err)
			return
		}

		c.JSON(http.StatusOK, LoadResponse{
			Contest:        resp.Title,
			ProblemsLoaded: count,
		})
	}
}

// LoadedHandler lists contest IDs that already have indexed problems.
func LoadedHandler(store *storage.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ids, err := store.LoadedContests(c.Request.Context())
		if err != nil {
			errors.InternalError(c, "failed to list loaded contests", err)
			return
		}

		c.JSON(http.StatusOK, ids)
	}
}
