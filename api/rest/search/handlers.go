package search

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deyna256/codeforces-rag/internal/errors"
	"github.com/deyna256/codeforces-rag/internal/retriever"
)

const defaultLimit = 10

// Handler embeds the query and runs a filtered vector search.
func Handler(ret *retriever.Retriever) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req Request
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		if req.Limit <= 0 {
			req.Limit = defaultLimit
		}

		results, err := ret.Search(c.Request.Context(), retriever.Query{
			Text:      req.Query,
			RatingMin: req.RatingMin,
			RatingMax: req.RatingMax,
			Tags:      req.Tags,
			ChunkType: req.ChunkType,
			Limit:     req.Limit,
		})
		if err != nil {
			errors.InternalError(c, "search failed", err)
			return
		}

		c.JSON(http.StatusOK, results)
	}
}
