package main

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"

	cacheapi "github.com/deyna256/codeforces-rag/api/rest/cache"
	"github.com/deyna256/codeforces-rag/api/rest/contests"
	"github.com/deyna256/codeforces-rag/api/rest/health"
	"github.com/deyna256/codeforces-rag/api/rest/problems"
	"github.com/deyna256/codeforces-rag/internal/errors"
	"github.com/deyna256/codeforces-rag/internal/logger"
)

// sets up middleware and all parser endpoints
func RegisterRoutes(router *gin.Engine, server *Server) {
	router.Use(corsMiddleware())
	router.Use(rateLimitMiddleware(server))
	router.GET("/health", health.Handler("parser"))

	root := router.Group("")
	{
		contests.RegisterParserRoutes(root, server.contestSvc)
		problems.RegisterParserRoutes(root, server.problemSvc)
		cacheapi.RegisterRoutes(root, server.cache)
	}
}

func corsMiddleware() gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	cfg.AllowAllOrigins = true
	return cors.New(cfg)
}

// limits each client to 10 requests per minute, counted in Redis so the
// limit holds across restarts; falls back to an in-memory store when Redis
// is unavailable
func rateLimitMiddleware(server *Server) gin.HandlerFunc {
	rate := limiter.Rate{Period: time.Minute, Limit: 10}

	var store limiter.Store
	if client := server.cache.Client(); client != nil {
		s, err := sredis.NewStoreWithOptions(client, limiter.StoreOptions{
			Prefix: "parser:ratelimit",
		})
		if err != nil {
			logger.Warn("failed to create redis rate limit store, using memory", "error", err)
		} else {
			store = s
		}
	}
	if store == nil {
		store = memory.NewStore()
	}

	return mgin.NewMiddleware(limiter.New(store, rate),
		mgin.WithLimitReachedHandler(func(c *gin.Context) {
			errors.TooManyRequests(c, "rate limit exceeded, try again later")
			c.Abort()
		}),
	)
}
