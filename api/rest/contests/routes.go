package contests

import (
	"github.com/gin-gonic/gin"

	"github.com/deyna256/codeforces-rag/internal/contest"
	"github.com/deyna256/codeforces-rag/internal/indexer"
	"github.com/deyna256/codeforces-rag/internal/parserclient"
	"github.com/deyna256/codeforces-rag/internal/storage"
)

// RegisterParserRoutes mounts the contest parsing endpoint.
func RegisterParserRoutes(router *gin.RouterGroup, svc *contest.Service) {
	router.POST("/contest", ParseHandler(svc))
}

// RegisterRAGRoutes mounts contest loading and listing endpoints.
func RegisterRAGRoutes(router *gin.RouterGroup, parser *parserclient.Client, ix *indexer.Indexer, store *storage.Client) {
	group := router.Group("/contests")
	{
		group.POST("/load", LoadHandler(parser, ix))
		group.GET("/loaded", LoadedHandler(store))
	}
}
