package benchmark

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// rankedMetrics orders models by accuracy descending, then by cost per
// correct prediction ascending.
func rankedMetrics(all []Metrics) []Metrics {
	ranked := make([]Metrics, len(all))
	copy(ranked, all)

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Accuracy != ranked[j].Accuracy {
			return ranked[i].Accuracy > ranked[j].Accuracy
		}
		return costForRanking(ranked[i]) < costForRanking(ranked[j])
	})

	return ranked
}

func costForRanking(m Metrics) float64 {
	if m.CostPerCorrect > 0 {
		return m.CostPerCorrect
	}
	return 1e9
}

// PrintComparisonTable writes the model comparison table.
func PrintComparisonTable(w io.Writer, all []Metrics) {
	if len(all) == 0 {
		return
	}

	ranked := rankedMetrics(all)
	line := strings.Repeat("=", 150)

	fmt.Fprintln(w)
	fmt.Fprintln(w, line)
	fmt.Fprintln(w, "BENCHMARK COMPARISON (Sorted: Accuracy -> Price)")
	fmt.Fprintln(w, line)
	fmt.Fprintf(w, "%-6s %-30s %10s %13s %12s %14s %12s %10s\n",
		"Rank", "Model", "Accuracy", "Avg Latency", "Avg Tokens", "Total Tokens", "Est. Cost", "F1 Score")
	fmt.Fprintln(w, strings.Repeat("-", 150))

	for rank, m := range ranked {
		cost := "N/A"
		if m.EstimatedCost > 0 {
			cost = fmt.Sprintf("$%.4f", m.EstimatedCost)
		}

		fmt.Fprintf(w, "%-6d %-30s %9.1f%% %11.0fms %12.0f %14d %12s %9.1f%%\n",
			rank+1, m.DisplayName, m.Accuracy, m.AvgLatencyMs,
			m.AvgTokensPerTest, m.TotalTokens(), cost, m.F1())
	}

	fmt.Fprintln(w, line)
	fmt.Fprintln(w)
}

type reportSummary struct {
	TotalTests      int     `json:"total_tests"`
	SuccessfulTests int     `json:"successful_tests"`
	FailedTests     int     `json:"failed_tests"`
	Accuracy        float64 `json:"accuracy"`
}

type reportPerformance struct {
	AvgLatencyMs    float64 `json:"avg_latency_ms"`
	MedianLatencyMs float64 `json:"median_latency_ms"`
}

type reportClassification struct {
	TruePositives  int     `json:"true_positives"`
	FalsePositives int     `json:"false_positives"`
	FalseNegatives int     `json:"false_negatives"`
	TrueNegatives  int     `json:"true_negatives"`
	Precision      float64 `json:"precision"`
	Recall         float64 `json:"recall"`
	F1Score        float64 `json:"f1_score"`
}

type reportTokenUsage struct {
	TotalPromptTokens     int     `json:"total_prompt_tokens"`
	TotalCompletionTokens int     `json:"total_completion_tokens"`
	TotalTokens           int     `json:"total_tokens"`
	AvgTokensPerTest      float64 `json:"avg_tokens_per_test"`
	EstimatedCostUSD      float64 `json:"estimated_cost_usd"`
	CostPerCorrectUSD     float64 `json:"cost_per_correct_prediction_usd"`
}

type modelReport struct {
	ModelName      string               `json:"model_name"`
	DisplayName    string               `json:"display_name"`
	Timestamp      string               `json:"timestamp"`
	Summary        reportSummary        `json:"summary"`
	Performance    reportPerformance    `json:"performance"`
	Classification reportClassification `json:"classification"`
	Pricing        *ModelPricing        `json:"pricing"`
	TokenUsage     reportTokenUsage     `json:"token_usage"`
	TestResults    []TestResult         `json:"test_results"`
}

type comparisonReport struct {
	BenchmarkInfo struct {
		Type      string `json:"type"`
		Timestamp string `json:"timestamp"`
		Models    int    `json:"models"`
	} `json:"benchmark_info"`
	Results []modelReport `json:"results"`
}

// WriteJSONReport writes the full comparison report for one benchmark type
// and returns the file path.
func WriteJSONReport(dir, benchType string, all []Metrics) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create results dir: %w", err)
	}

	var report comparisonReport
	report.BenchmarkInfo.Type = benchType
	report.BenchmarkInfo.Timestamp = time.Now().Format("20060102_150405")
	report.BenchmarkInfo.Models = len(all)

	for _, m := range rankedMetrics(all) {
		report.Results = append(report.Results, modelReport{
			ModelName:   m.ModelName,
			DisplayName: m.DisplayName,
			Timestamp:   m.Timestamp,
			Summary: reportSummary{
				TotalTests:      m.TotalTests,
				SuccessfulTests: m.SuccessfulTests,
				FailedTests:     m.FailedTests,
				Accuracy:        round2(m.Accuracy),
			},
			Performance: reportPerformance{
				AvgLatencyMs:    round2(m.AvgLatencyMs),
				MedianLatencyMs: round2(m.MedianLatencyMs),
			},
			Classification: reportClassification{
				TruePositives:  m.TruePositives,
				FalsePositives: m.FalsePositives,
				FalseNegatives: m.FalseNegatives,
				TrueNegatives:  m.TrueNegatives,
				Precision:      round2(m.Precision()),
				Recall:         round2(m.Recall()),
				F1Score:        round2(m.F1()),
			},
			Pricing: m.Pricing,
			TokenUsage: reportTokenUsage{
				TotalPromptTokens:     m.TotalPromptTokens,
				TotalCompletionTokens: m.TotalCompletionTokens,
				TotalTokens:           m.TotalTokens(),
				AvgTokensPerTest:      round2(m.AvgTokensPerTest),
				EstimatedCostUSD:      m.EstimatedCost,
				CostPerCorrectUSD:     m.CostPerCorrect,
			},
			TestResults: m.Results,
		})
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode report: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("benchmark_report_%s.json", report.BenchmarkInfo.Timestamp))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}

	return path, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
