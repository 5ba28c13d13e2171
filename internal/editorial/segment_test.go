package editorial

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeProblemID(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"A", "A"},
		{"a", "A"},
		{" B ", "B"},
		{"C1", "C1"},
		{"c2", "C2"},
		{"Problem A", "A"},
		{"problem d", "D"},
		{"1900A", "A"},
		{"1900C1", "C1"},
		{"A.", "A"},
		{"", ""},
		{"123", ""},
	}

	for _, tt := range tests {
		if got := NormalizeProblemID(tt.raw); got != tt.want {
			t.Errorf("NormalizeProblemID(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestExtractBetweenMarkers(t *testing.T) {
	text := "Intro text. Problem A solution goes here. Problem B other solution. The end."

	got := extractBetweenMarkers(text, "Problem A", "Problem B")
	assert.Equal(t, "solution goes here.", got)

	// missing end marker extends to the end of the text
	got = extractBetweenMarkers(text, "Problem B", "")
	assert.Equal(t, "other solution. The end.", got)

	// end marker not present behaves the same
	got = extractBetweenMarkers(text, "Problem B", "Problem Z")
	assert.Equal(t, "other solution. The end.", got)

	// missing start marker yields nothing
	assert.Empty(t, extractBetweenMarkers(text, "Problem Q", ""))
}

func TestParseSegmentationResponseMarkerFormat(t *testing.T) {
	editorial := "Header. 2185A: sort the array and sum. 2185B: use a greedy sweep. Footer."

	response := `{
		"problems": [
			{"contest_id": "2185", "problem_id": "A", "start_marker": "2185A:", "end_marker": "2185B:"},
			{"contest_id": "2185", "problem_id": "b", "start_marker": "2185B:", "end_marker": "Footer."}
		]
	}`

	analyses, err := ParseSegmentationResponse(response, editorial)
	require.NoError(t, err)
	require.Len(t, analyses, 2)

	assert.Equal(t, "sort the array and sum.", analyses[ProblemKey{ContestID: "2185", ProblemID: "A"}])
	assert.Equal(t, "use a greedy sweep.", analyses[ProblemKey{ContestID: "2185", ProblemID: "B"}])
}

func TestParseSegmentationResponseLegacyFormat(t *testing.T) {
	response := `{"A": "sort the array", "B": "greedy sweep", "": "ignored"}`

	analyses, err := ParseSegmentationResponse(response, "")
	require.NoError(t, err)
	require.Len(t, analyses, 2)

	// legacy entries carry no contest id and match the primary contest later
	assert.Equal(t, "sort the array", analyses[ProblemKey{ProblemID: "A"}])
	assert.Equal(t, "greedy sweep", analyses[ProblemKey{ProblemID: "B"}])
}

func TestParseSegmentationResponseTruncated(t *testing.T) {
	editorial := "Start. Problem A uses dp over subsets. Done."

	// truncated mid-string, as a model running out of tokens produces
	response := `{"problems": [{"contest_id": "2185", "problem_id": "A", "start_marker": "Problem A", "end_marker": "Done.`

	analyses, err := ParseSegmentationResponse(response, editorial)
	require.NoError(t, err)

	assert.Equal(t, "uses dp over subsets.", analyses[ProblemKey{ContestID: "2185", ProblemID: "A"}])
}

func TestParseSegmentationResponseEmptyProblems(t *testing.T) {
	result, err := ParseSegmentationResponse(`{"problems": []}`, "some editorial text")
	assert.NoError(t, err)
	assert.Empty(t, result)
}

func TestParseSegmentationResponseGarbage(t *testing.T) {
	_, err := ParseSegmentationResponse("no json here at all", "text")
	assert.Error(t, err)
}

func TestParseSegmentationResponseSkipsIncompleteItems(t *testing.T) {
	response := `{
		"problems": [
			{"contest_id": "", "problem_id": "A", "analysis": "missing contest"},
			{"contest_id": "2185", "problem_id": "", "analysis": "missing problem"},
			{"contest_id": "2185", "problem_id": "B", "analysis": "inline analysis text"}
		]
	}`

	analyses, err := ParseSegmentationResponse(response, "")
	require.NoError(t, err)
	require.Len(t, analyses, 1)

	assert.Equal(t, "inline analysis text", analyses[ProblemKey{ContestID: "2185", ProblemID: "B"}])
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     string
	}{
		{
			name:     "fenced block wins",
			response: "text {\"a\": 1} before\n```json\n{\"b\": 2}\n```",
			want:     `{"b": 2}`,
		},
		{
			name:     "braces in prose",
			response: `The answer is {"a": 1} hope that helps`,
			want:     `{"a": 1}`,
		},
		{
			name:     "nested objects",
			response: `{"a": {"b": "}"}}`,
			want:     `{"a": {"b": "}"}}`,
		},
		{
			name:     "no json returns input",
			response: "nothing here",
			want:     "nothing here",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractJSON(tt.response))
		})
	}
}

func TestSanitizeJSON(t *testing.T) {
	// bare latex backslashes get escaped
	raw := `{"analysis": "use \sum_{i=1}^{n} a_i here"}`
	assert.JSONEq(t, `{"analysis": "use \\sum_{i=1}^{n} a_i here"}`, sanitizeJSON(raw))

	// valid json passes through untouched
	valid := `{"analysis": "plain text"}`
	assert.Equal(t, valid, sanitizeJSON(valid))

	// literal newlines inside strings get escaped
	raw = "{\"analysis\": \"line one\nline two\"}"
	assert.JSONEq(t, `{"analysis": "line one\nline two"}`, sanitizeJSON(raw))
}

func TestRepairJSON(t *testing.T) {
	repaired, ok := repairJSON(`{"problems": [{"problem_id": "A", "start_marker": "Problem`)
	require.True(t, ok)
	assert.JSONEq(t, `{"problems": [{"problem_id": "A", "start_marker": "Problem"}]}`, repaired)

	repaired, ok = repairJSON(`{"problems": [{"problem_id": "A"},`)
	require.True(t, ok)
	assert.JSONEq(t, `{"problems": [{"problem_id": "A"}]}`, repaired)

	_, ok = repairJSON("][")
	assert.False(t, ok)
}
