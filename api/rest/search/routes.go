package search

import (
	"github.com/gin-gonic/gin"

	"github.com/deyna256/codeforces-rag/internal/retriever"
)

func RegisterRoutes(router *gin.RouterGroup, ret *retriever.Retriever) {
	router.POST("/search", Handler(ret))
}
