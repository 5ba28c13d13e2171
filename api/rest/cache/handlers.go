// Package cache exposes the parser's cache flush endpoint.
package cache

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deyna256/codeforces-rag/internal/cache"
	"github.com/deyna256/codeforces-rag/internal/errors"
	"github.com/deyna256/codeforces-rag/internal/logger"
)

type Response struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ClearHandler flushes the Redis response cache. When the cache is not
// available the endpoint answers with a warning instead of an error.
func ClearHandler(c *cache.Cache) gin.HandlerFunc {
	return func(gc *gin.Context) {
		if !c.Available() {
			logger.Warn("cache clear requested but cache is not available")
			gc.JSON(http.StatusOK, Response{
				Status:  "warning",
				Message: "cache is not enabled or not available",
			})
			return
		}

		if err := c.Flush(gc.Request.Context()); err != nil {
			errors.InternalError(gc, "failed to clear cache", err)
			return
		}

		logger.Info("cache cleared via API")
		gc.JSON(http.StatusOK, Response{
			Status:  "success",
			Message: "cache cleared successfully",
		})
	}
}
