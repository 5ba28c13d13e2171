package cache

import (
	"github.com/gin-gonic/gin"

	"github.com/deyna256/codeforces-rag/internal/cache"
)

func RegisterRoutes(router *gin.RouterGroup, c *cache.Cache) {
	router.DELETE("/cache", ClearHandler(c))
}
