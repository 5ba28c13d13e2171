package problems

import (
	"github.com/gin-gonic/gin"

	"github.com/deyna256/codeforces-rag/internal/problem"
	"github.com/deyna256/codeforces-rag/internal/storage"
)

// RegisterParserRoutes mounts the problem parsing endpoint.
func RegisterParserRoutes(router *gin.RouterGroup, svc *problem.Service) {
	router.POST("/problems", ParseHandler(svc))
}

// RegisterRAGRoutes mounts problem listing and text endpoints.
func RegisterRAGRoutes(router *gin.RouterGroup, store *storage.Client) {
	group := router.Group("/problems")
	{
		group.GET("", ListHandler(store))
		group.GET("/:id/statement", TextHandler(store, "statement"))
		group.GET("/:id/editorial", TextHandler(store, "editorial"))
	}
}
