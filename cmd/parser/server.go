package main

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/deyna256/codeforces-rag/internal/cache"
	"github.com/deyna256/codeforces-rag/internal/codeforces"
	"github.com/deyna256/codeforces-rag/internal/config"
	"github.com/deyna256/codeforces-rag/internal/contest"
	"github.com/deyna256/codeforces-rag/internal/editorial"
	"github.com/deyna256/codeforces-rag/internal/httpclient"
	"github.com/deyna256/codeforces-rag/internal/llm"
	"github.com/deyna256/codeforces-rag/internal/logger"
	"github.com/deyna256/codeforces-rag/internal/problem"
)

type Server struct {
	router     *gin.Engine
	cache      *cache.Cache
	contestSvc *contest.Service
	problemSvc *problem.Service
}

// creates the parser server with all dependencies wired
func NewServer(cfg *config.ParserConfig) (*Server, error) {
	client := httpclient.New(httpclient.Config{
		UserAgent: cfg.UserAgent,
		Retries:   cfg.HTTPRetries,
	})

	api := codeforces.NewAPIClient(client)
	pageParser := codeforces.NewPageParser(client)
	contestScraper := codeforces.NewContestPageScraper(client)

	// without an API key editorial detection falls back to keyword matching
	// and editorial segmentation is disabled
	var llmClient *llm.OpenRouterClient
	if cfg.OpenRouterKey != "" {
		llmClient = llm.NewOpenRouterClient(llm.OpenRouterConfig{
			APIKey:  cfg.OpenRouterKey,
			Model:   cfg.OpenRouterModel,
			BaseURL: cfg.OpenRouterURL,
		})
	} else {
		logger.Warn("OPENROUTER_API_KEY not set, LLM features disabled")
	}

	finder := editorial.NewFinder(llmClient)
	contentParser := editorial.NewContentParser(client, llmClient)

	// redis being down is not fatal, responses just go uncached
	responseCache, err := cache.NewFromURL(cfg.RedisURL, time.Duration(cfg.CacheTTLHours)*time.Hour)
	if err != nil {
		logger.Warn("redis not available, response caching disabled", "error", err)
		responseCache = cache.New(nil, 0)
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := &Server{
		router:     gin.New(),
		cache:      responseCache,
		contestSvc: contest.NewService(api, pageParser, contestScraper, finder, contentParser, responseCache),
		problemSvc: problem.NewService(api, pageParser, responseCache),
	}

	srv.router.Use(gin.Recovery())
	RegisterRoutes(srv.router, srv)

	return srv, nil
}
