package editorial

import (
	"strings"
	"testing"

	"golang.org/x/net/html"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombineContent(t *testing.T) {
	single := CombineContent([]string{"only editorial"})
	assert.Equal(t, "only editorial", single)

	combined := CombineContent([]string{"first post", "second post"})
	assert.Contains(t, combined, "=== EDITORIAL SOURCE 1 ===\n\nfirst post")
	assert.Contains(t, combined, "=== EDITORIAL SOURCE 2 ===\n\nsecond post")
}

func TestTruncateForSegmentation(t *testing.T) {
	short := "a short editorial"
	assert.Equal(t, short, TruncateForSegmentation(short))

	long := strings.Repeat("x", maxEditorialChars+1000)
	truncated := TruncateForSegmentation(long)

	assert.True(t, strings.HasSuffix(truncated, "[CONTENT TRUNCATED DUE TO LENGTH]"))
	assert.Less(t, len(truncated), len(long))
}

func TestSegmentationUserPrompt(t *testing.T) {
	expected := []ProblemKey{
		{ContestID: "2185", ProblemID: "A"},
		{ContestID: "2185", ProblemID: "B"},
	}

	prompt := SegmentationUserPrompt("2185", expected, "editorial body")

	assert.Contains(t, prompt, "Contest ID: 2185")
	assert.Contains(t, prompt, "Expected problems: 2185/A, 2185/B")
	assert.Contains(t, prompt, "editorial body")
	assert.Contains(t, prompt, "start_marker")

	// without expected problems the model is told to parse everything
	prompt = SegmentationUserPrompt("2185", nil, "editorial body")
	assert.Contains(t, prompt, "Unknown (parse all problems found)")
}

func TestExtractBlogContent(t *testing.T) {
	page := `
<html><body>
<div class="menu"><a href="/">Home</a></div>
<div class="ttypography">
  <h1>Codeforces Round 1000 Editorial</h1>
  <p>` + strings.Repeat("Thanks for participating. ", 12) + `</p>
  <h2>Problem A</h2>
  <p>Sort the array and take the prefix sum.</p>
  <pre>for (int i = 0; i &lt; n; i++) ans += a[i];</pre>
  <div class="comments"><p>First!</p></div>
</div>
<script>var tracking = true;</script>
</body></html>`

	doc, err := html.Parse(strings.NewReader(page))
	require.NoError(t, err)

	content := ExtractBlogContent(doc)

	assert.Contains(t, content, "# Codeforces Round 1000 Editorial")
	assert.Contains(t, content, "## Problem A")
	assert.Contains(t, content, "Sort the array and take the prefix sum.")
	assert.Contains(t, content, "```\nfor (int i = 0; i < n; i++) ans += a[i];\n```")

	assert.NotContains(t, content, "First!")
	assert.NotContains(t, content, "tracking")
	assert.NotContains(t, content, "Home")
}

func TestExtractBlogContentFallsBackToBody(t *testing.T) {
	page := `<html><body><p>` + strings.Repeat("short note. ", 30) + `</p></body></html>`

	doc, err := html.Parse(strings.NewReader(page))
	require.NoError(t, err)

	content := ExtractBlogContent(doc)
	assert.Contains(t, content, "short note.")
}
