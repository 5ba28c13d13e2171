package health

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deyna256/codeforces-rag/internal/storage"
	"github.com/deyna256/codeforces-rag/internal/vectorstore"
)

// Handler reports liveness for a service with no backing stores.
func Handler(service string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, Response{
			Status:  "ok",
			Service: service,
		})
	}
}

// StatusHandler reports store health for the RAG service. The endpoint
// degrades rather than fails when a store is down so the TUI can still tell
// the service is alive.
func StatusHandler(store *storage.Client, vectors vectorstore.VectorStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		pgOK := store.Ping(ctx) == nil

		vectorOK := false
		var points int64
		if err := vectors.Ping(ctx); err == nil {
			vectorOK = true
			if n, err := vectors.Count(ctx); err == nil {
				points = n
			}
		}

		status := "ok"
		if !pgOK || !vectorOK {
			status = "degraded"
		}

		c.JSON(http.StatusOK, StatusResponse{
			Status:       status,
			Postgres:     pgOK,
			VectorStore:  vectorOK,
			VectorPoints: points,
		})
	}
}
