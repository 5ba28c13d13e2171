package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/deyna256/codeforces-rag/internal/benchmark"
	"github.com/deyna256/codeforces-rag/internal/config"
	"github.com/deyna256/codeforces-rag/internal/logger"
)

const resultsDir = "benchmarks/results"

func main() {
	godotenv.Load() //nolint:errcheck // .env is optional

	flags, err := config.ParseBenchmarkFlags()
	if err != nil {
		logger.FatalErr(err, "invalid flags")
	}

	apiKey := os.Getenv("OPENROUTER_API_KEY")
	if apiKey == "" {
		logger.Fatal("OPENROUTER_API_KEY environment variable not set")
	}

	models := benchmark.Models
	if flags.Model != "" && !flags.All {
		models = benchmark.FilterModels(models, flags.Model)
		if len(models) == 0 {
			logger.Fatal("no models found matching filter", "filter", flags.Model)
		}
	}

	ctx := context.Background()

	pricing := benchmark.NewPricingManager(filepath.Join(resultsDir, "openrouter_pricing_cache.json"))
	if err := pricing.LoadOrFetch(ctx, false); err != nil {
		logger.Warn("failed to load model pricing, costs will be omitted", "error", err)
	}

	runner := benchmark.NewRunner(apiKey)

	if flags.Type == "finder" || flags.Type == "all" {
		runBenchmark(ctx, "editorial_finder", models, pricing, func(model benchmark.ModelConfig, cases []benchmark.PreparedCase) benchmark.Metrics {
			return runner.RunFinder(ctx, model, cases)
		}, runner.PrepareFinderCases)
	}

	if flags.Type == "segmentation" || flags.Type == "all" {
		runBenchmark(ctx, "editorial_segmentation", models, pricing, func(model benchmark.ModelConfig, cases []benchmark.PreparedCase) benchmark.Metrics {
			return runner.RunSegmentation(ctx, model, cases)
		}, runner.PrepareSegmentationCases)
	}

	logger.Info("benchmark complete")
}

func runBenchmark(
	ctx context.Context,
	benchType string,
	models []benchmark.ModelConfig,
	pricing *benchmark.PricingManager,
	run func(benchmark.ModelConfig, []benchmark.PreparedCase) benchmark.Metrics,
	prepare func(context.Context) ([]benchmark.PreparedCase, error),
) {
	logger.Info("running benchmark", "type", benchType, "models", len(models))

	cases, err := prepare(ctx)
	if err != nil {
		logger.Error("failed to prepare test cases", "type", benchType, "error", err)
		return
	}
	if len(cases) == 0 {
		logger.Warn("no test cases prepared, skipping", "type", benchType)
		return
	}
	logger.Info("prepared test cases", "type", benchType, "count", len(cases))

	var all []benchmark.Metrics
	for _, model := range models {
		metrics := run(model, cases)
		metrics.ApplyPricing(pricing.ForModel(model.Name))
		all = append(all, metrics)

		logger.Info("model finished",
			"model", model.DisplayName,
			"accuracy", metrics.Accuracy,
			"avg_latency_ms", metrics.AvgLatencyMs,
			"total_tokens", metrics.TotalTokens(),
		)
	}

	path, err := benchmark.WriteJSONReport(filepath.Join(resultsDir, benchType), benchType, all)
	if err != nil {
		logger.Error("failed to write report", "error", err)
	} else {
		logger.Info("saved report", "path", path)
	}

	benchmark.PrintComparisonTable(os.Stdout, all)
}
