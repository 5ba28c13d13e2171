package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/deyna256/codeforces-rag/api/rest/contests"
	"github.com/deyna256/codeforces-rag/api/rest/health"
	"github.com/deyna256/codeforces-rag/api/rest/problems"
	"github.com/deyna256/codeforces-rag/api/rest/search"
)

// sets up middleware and all RAG endpoints
func RegisterRoutes(router *gin.Engine, server *Server) {
	router.Use(corsMiddleware())
	router.GET("/health", health.StatusHandler(server.store, server.vectors))

	root := router.Group("")
	{
		contests.RegisterRAGRoutes(root, server.parser, server.indexer, server.store)
		problems.RegisterRAGRoutes(root, server.store)
		search.RegisterRoutes(root, server.retriever)
	}
}

func corsMiddleware() gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	cfg.AllowAllOrigins = true
	return cors.New(cfg)
}
