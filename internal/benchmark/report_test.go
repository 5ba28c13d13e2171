package benchmark

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankedMetrics(t *testing.T) {
	all := []Metrics{
		{DisplayName: "cheap but wrong", Accuracy: 50, CostPerCorrect: 0.001},
		{DisplayName: "accurate and cheap", Accuracy: 90, CostPerCorrect: 0.002},
		{DisplayName: "accurate but pricey", Accuracy: 90, CostPerCorrect: 0.010},
		{DisplayName: "accurate no pricing", Accuracy: 90},
	}

	ranked := rankedMetrics(all)

	assert.Equal(t, "accurate and cheap", ranked[0].DisplayName)
	assert.Equal(t, "accurate but pricey", ranked[1].DisplayName)
	// models without pricing data rank after priced ones at equal accuracy
	assert.Equal(t, "accurate no pricing", ranked[2].DisplayName)
	assert.Equal(t, "cheap but wrong", ranked[3].DisplayName)
}

func TestPrintComparisonTable(t *testing.T) {
	var buf bytes.Buffer

	PrintComparisonTable(&buf, []Metrics{
		{DisplayName: "Model A", Accuracy: 95.5, AvgLatencyMs: 1234, EstimatedCost: 0.0123},
		{DisplayName: "Model B", Accuracy: 80},
	})

	out := buf.String()

	assert.Contains(t, out, "BENCHMARK COMPARISON")
	assert.Contains(t, out, "Model A")
	assert.Contains(t, out, "95.5%")
	assert.Contains(t, out, "$0.0123")
	// a model without pricing shows N/A instead of a zero cost
	assert.Contains(t, out, "N/A")

	// best model ranks first
	assert.Less(t, strings.Index(out, "Model A"), strings.Index(out, "Model B"))
}

func TestPrintComparisonTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	PrintComparisonTable(&buf, nil)
	assert.Empty(t, buf.String())
}

func TestWriteJSONReport(t *testing.T) {
	dir := t.TempDir()

	path, err := WriteJSONReport(dir, "editorial_finder", []Metrics{
		{
			ModelName:   "test/model",
			DisplayName: "Test Model",
			TotalTests:  22,
			Accuracy:    81.81818,
			Results: []TestResult{
				{ContestID: "2185", Expected: []string{"u"}, Found: []string{"u"}, Correct: true},
			},
		},
	})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var report struct {
		BenchmarkInfo struct {
			Type   string `json:"type"`
			Models int    `json:"models"`
		} `json:"benchmark_info"`
		Results []struct {
			ModelName string `json:"model_name"`
			Summary   struct {
				Accuracy float64 `json:"accuracy"`
			} `json:"summary"`
			TestResults []TestResult `json:"test_results"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(data, &report))

	assert.Equal(t, "editorial_finder", report.BenchmarkInfo.Type)
	assert.Equal(t, 1, report.BenchmarkInfo.Models)
	require.Len(t, report.Results, 1)
	assert.Equal(t, "test/model", report.Results[0].ModelName)
	assert.InDelta(t, 81.82, report.Results[0].Summary.Accuracy, 0.001)
	require.Len(t, report.Results[0].TestResults, 1)
	assert.Equal(t, "2185", report.Results[0].TestResults[0].ContestID)
}
