package editorial

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/deyna256/codeforces-rag/internal/logger"
)

// marker-based segmentation item returned by the LLM
type segmentItem struct {
	ContestID   string `json:"contest_id"`
	ProblemID   string `json:"problem_id"`
	StartMarker string `json:"start_marker"`
	EndMarker   string `json:"end_marker"`
	Analysis    string `json:"analysis"` // legacy format carried the text inline
}

type segmentResponse struct {
	Problems []segmentItem `json:"problems"`
}

// ParseSegmentationResponse turns an LLM segmentation reply into analyses
// keyed by (contest, problem). editorialText is the source the markers index
// into. Falls back to the legacy {"A": "analysis"} object format.
func ParseSegmentationResponse(response, editorialText string) (map[ProblemKey]string, error) {
	content := sanitizeJSON(extractJSON(response))

	var parsed segmentResponse
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		if repaired, ok := repairJSON(content); ok {
			if err := json.Unmarshal([]byte(repaired), &parsed); err == nil {
				logger.Warn("parsed segmentation response after JSON repair")
				content = repaired
			}
		}
	}

	// a present problems key is authoritative even when the list is empty
	if parsed.Problems != nil {
		return parseMarkerFormat(parsed.Problems, editorialText), nil
	}

	// legacy format: a flat object of problem letter to analysis text
	var legacy map[string]json.RawMessage
	if err := json.Unmarshal([]byte(content), &legacy); err != nil {
		return nil, fmt.Errorf("failed to parse segmentation response: %w", err)
	}

	result := parseLegacyFormat(legacy)
	if len(result) == 0 {
		return nil, fmt.Errorf("segmentation response contained no problems")
	}

	logger.Warn("segmentation response used legacy format without contest IDs", "problems", len(result))
	return result, nil
}

func parseMarkerFormat(items []segmentItem, editorialText string) map[ProblemKey]string {
	result := make(map[ProblemKey]string)

	for _, item := range items {
		contestID := strings.TrimSpace(item.ContestID)
		problemID := NormalizeProblemID(item.ProblemID)
		if contestID == "" || problemID == "" {
			continue
		}

		var analysis string
		if item.StartMarker != "" && editorialText != "" {
			analysis = extractBetweenMarkers(editorialText, strings.TrimSpace(item.StartMarker), strings.TrimSpace(item.EndMarker))
		} else {
			analysis = strings.TrimSpace(item.Analysis)
		}

		if analysis != "" {
			result[ProblemKey{ContestID: contestID, ProblemID: problemID}] = analysis
		}
	}

	return result
}

func parseLegacyFormat(legacy map[string]json.RawMessage) map[ProblemKey]string {
	result := make(map[ProblemKey]string)

	for key, raw := range legacy {
		var text string
		if err := json.Unmarshal(raw, &text); err != nil {
			continue
		}

		text = strings.TrimSpace(text)
		problemID := NormalizeProblemID(key)
		if problemID == "" || text == "" {
			continue
		}

		// empty contest id signals fallback matching against the primary contest
		result[ProblemKey{ProblemID: problemID}] = text
	}

	return result
}

// extractBetweenMarkers returns the text after startMarker up to endMarker.
// An empty or missing end marker extends the slice to the end of the text.
func extractBetweenMarkers(text, startMarker, endMarker string) string {
	start := strings.Index(text, startMarker)
	if start == -1 {
		logger.Warn("segmentation start marker not found", "marker", truncateForLog(startMarker))
		return ""
	}
	start += len(startMarker)

	if endMarker == "" {
		return strings.TrimSpace(text[start:])
	}

	end := strings.Index(text[start:], endMarker)
	if end == -1 {
		return strings.TrimSpace(text[start:])
	}

	return strings.TrimSpace(text[start : start+end])
}

// NormalizeProblemID maps raw problem identifiers to the canonical contest
// index form: A, B, C1, D2. Accepts forms like "Problem A", "1900A", "c1".
func NormalizeProblemID(raw string) string {
	id := strings.ToUpper(strings.TrimSpace(raw))
	if id == "" {
		return ""
	}

	// single letter
	if len(id) == 1 && isLetter(id[0]) {
		return id
	}

	// "PROBLEM A" / "ЗАДАЧА A": take the last token
	if strings.HasPrefix(id, "PROBLEM ") || strings.HasPrefix(id, "ЗАДАЧА ") {
		parts := strings.Fields(id)
		last := parts[len(parts)-1]
		if len(last) <= 2 && len(last) > 0 && isLetter(last[0]) {
			return last
		}
	}

	// letter plus digit suffix: C1, D2
	if len(id) == 2 && isLetter(id[0]) && isDigit(id[1]) {
		return id
	}

	// contest-prefixed forms: 1900A, 1900C1 - take the trailing letter run
	if isLetter(id[len(id)-1]) || (len(id) >= 2 && isLetter(id[len(id)-2]) && isDigit(id[len(id)-1])) {
		for i := 0; i < len(id); i++ {
			if isLetter(id[i]) {
				tail := id[i:]
				if len(tail) <= 2 {
					return tail
				}
				break
			}
		}
	}

	// fallback: leading letter with optional digit
	if isLetter(id[0]) {
		if len(id) > 1 && isDigit(id[1]) {
			return id[:2]
		}
		return id[:1]
	}

	return ""
}

func isLetter(c byte) bool { return c >= 'A' && c <= 'Z' }
func isDigit(c byte) bool  { return c >= '0' && c <= '9' }

func truncateForLog(s string) string {
	if len(s) > 50 {
		return s[:50] + "..."
	}
	return s
}
