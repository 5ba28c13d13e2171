package benchmark

import (
	"sort"
	"time"
)

// TestResult holds the outcome of one test case against one model. Finder
// results fill Expected/Found; segmentation results also fill Accuracy.
type TestResult struct {
	ContestID        string          `json:"contest_id"`
	Expected         []string        `json:"expected"`
	Found            []string        `json:"found"`
	Accuracy         map[string]bool `json:"problem_accuracy,omitempty"`
	Correct          bool            `json:"correct"`
	LatencyMs        float64         `json:"latency_ms"`
	PromptTokens     int             `json:"prompt_tokens"`
	CompletionTokens int             `json:"completion_tokens"`
	Error            string          `json:"error,omitempty"`
}

// Metrics aggregates one model's run over a test suite.
type Metrics struct {
	ModelName             string
	DisplayName           string
	Timestamp             string
	TotalTests            int
	SuccessfulTests       int
	FailedTests           int
	Accuracy              float64 // percent, over successful tests only
	AvgLatencyMs          float64
	MedianLatencyMs       float64
	TruePositives         int
	FalsePositives        int
	FalseNegatives        int
	TrueNegatives         int
	TotalPromptTokens     int
	TotalCompletionTokens int
	AvgTokensPerTest      float64
	Pricing               *ModelPricing
	EstimatedCost         float64 // USD
	CostPerCorrect        float64 // USD per correct prediction
	Results               []TestResult
}

func (m *Metrics) TotalTokens() int {
	return m.TotalPromptTokens + m.TotalCompletionTokens
}

// Precision returns TP / (TP + FP) as a percentage.
func (m *Metrics) Precision() float64 {
	denom := m.TruePositives + m.FalsePositives
	if denom == 0 {
		return 0
	}
	return float64(m.TruePositives) / float64(denom) * 100
}

// Recall returns TP / (TP + FN) as a percentage.
func (m *Metrics) Recall() float64 {
	denom := m.TruePositives + m.FalseNegatives
	if denom == 0 {
		return 0
	}
	return float64(m.TruePositives) / float64(denom) * 100
}

// F1 returns the harmonic mean of precision and recall as a percentage.
func (m *Metrics) F1() float64 {
	p, r := m.Precision(), m.Recall()
	if p+r == 0 {
		return 0
	}
	return 2 * p * r / (p + r)
}

// ApplyPricing fills cost estimates from per-token OpenRouter prices.
func (m *Metrics) ApplyPricing(pricing *ModelPricing) {
	if pricing == nil {
		return
	}

	m.Pricing = pricing
	m.EstimatedCost = float64(m.TotalPromptTokens)*pricing.PromptPrice +
		float64(m.TotalCompletionTokens)*pricing.CompletionPrice

	correct := 0
	for _, r := range m.Results {
		if r.Correct && r.Error == "" {
			correct++
		}
	}
	if correct > 0 {
		m.CostPerCorrect = m.EstimatedCost / float64(correct)
	}
}

// CalculateFinderMetrics aggregates finder results. Classification treats a
// contest with an editorial as the positive class.
func CalculateFinderMetrics(model ModelConfig, results []TestResult) Metrics {
	m := baseMetrics(model, results)

	for _, r := range results {
		if r.Error != "" {
			continue
		}

		expectedSome := len(r.Expected) > 0
		foundSome := len(r.Found) > 0

		switch {
		case expectedSome && foundSome && r.Correct:
			m.TruePositives++
		case !expectedSome && foundSome && !r.Correct:
			m.FalsePositives++
		case expectedSome && !foundSome:
			m.FalseNegatives++
		case !expectedSome && !foundSome && r.Correct:
			m.TrueNegatives++
		}
	}

	return m
}

// CalculateSegmentationMetrics aggregates segmentation results per problem
// rather than per contest.
func CalculateSegmentationMetrics(model ModelConfig, results []TestResult) Metrics {
	m := baseMetrics(model, results)

	for _, r := range results {
		if r.Error != "" {
			continue
		}

		foundSet := make(map[string]struct{}, len(r.Found))
		for _, key := range r.Found {
			foundSet[key] = struct{}{}
		}
		expectedSet := make(map[string]struct{}, len(r.Expected))
		for _, key := range r.Expected {
			expectedSet[key] = struct{}{}
		}

		for key, correct := range r.Accuracy {
			_, expected := expectedSet[key]
			_, found := foundSet[key]

			switch {
			case expected && found && correct:
				m.TruePositives++
			case !expected && found:
				m.FalsePositives++
			case expected && !found:
				m.FalseNegatives++
			case !expected && !found:
				m.TrueNegatives++
			}
		}
	}

	return m
}

func baseMetrics(model ModelConfig, results []TestResult) Metrics {
	m := Metrics{
		ModelName:   model.Name,
		DisplayName: model.DisplayName,
		Timestamp:   time.Now().Format("20060102_150405"),
		TotalTests:  len(results),
		Results:     results,
	}

	var latencies []float64
	correct := 0
	for _, r := range results {
		m.TotalPromptTokens += r.PromptTokens
		m.TotalCompletionTokens += r.CompletionTokens

		if r.Error != "" {
			m.FailedTests++
			continue
		}
		m.SuccessfulTests++
		latencies = append(latencies, r.LatencyMs)
		if r.Correct {
			correct++
		}
	}

	if m.SuccessfulTests > 0 {
		m.Accuracy = float64(correct) / float64(m.SuccessfulTests) * 100
	}
	if len(latencies) > 0 {
		sum := 0.0
		for _, l := range latencies {
			sum += l
		}
		m.AvgLatencyMs = sum / float64(len(latencies))

		sort.Float64s(latencies)
		m.MedianLatencyMs = latencies[len(latencies)/2]
	}
	if m.TotalTests > 0 {
		m.AvgTokensPerTest = float64(m.TotalTokens()) / float64(m.TotalTests)
	}

	return m
}
