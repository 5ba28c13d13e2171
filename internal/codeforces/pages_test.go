package codeforces

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
)

const problemPageHTML = `
<html><body>
<div class="problem-statement">
  <div class="header">
    <div class="title">A. Watermelon</div>
    <div class="time-limit"><div class="property-title">time limit per test</div>1 second</div>
    <div class="memory-limit"><div class="property-title">memory limit per test</div>256 megabytes</div>
  </div>
  <div>
    <p>One hot summer day Pete and his friend Billy decided to buy a watermelon.</p>
  </div>
  <div class="input-specification">
    <div class="section-title">Input</div>
    <p>The first line contains integer w.</p>
  </div>
  <div class="output-specification">
    <div class="section-title">Output</div>
    <p>Print YES or NO.</p>
  </div>
  <div class="sample-tests">
    <div class="section-title">Examples</div>
    <div class="input"><pre>8</pre></div>
    <div class="output"><pre>YES</pre></div>
  </div>
</div>
<script>window.foo = 1;</script>
</body></html>`

func mustParse(t *testing.T, raw string) *html.Node {
	t.Helper()

	doc, err := html.Parse(strings.NewReader(raw))
	if err != nil {
		t.Fatalf("failed to parse test html: %v", err)
	}

	return doc
}

func TestExtractProblemData(t *testing.T) {
	data := ExtractProblemData(mustParse(t, problemPageHTML))

	if data.TimeLimit != "1 second" {
		t.Errorf("time limit: got %q, want %q", data.TimeLimit, "1 second")
	}

	if data.MemoryLimit != "256 megabytes" {
		t.Errorf("memory limit: got %q, want %q", data.MemoryLimit, "256 megabytes")
	}

	for _, want := range []string{
		"Pete and his friend Billy",
		"The first line contains integer w.",
		"Print YES or NO.",
		"YES",
	} {
		if !strings.Contains(data.Description, want) {
			t.Errorf("description missing %q:\n%s", want, data.Description)
		}
	}

	if strings.Contains(data.Description, "window.foo") {
		t.Error("description should not contain script content")
	}
}

func TestExtractProblemDataMissingStatement(t *testing.T) {
	data := ExtractProblemData(mustParse(t, "<html><body><p>nothing here</p></body></html>"))

	if data.Description != "" || data.TimeLimit != "" || data.MemoryLimit != "" {
		t.Errorf("expected empty data for page without statement, got %+v", data)
	}
}

func TestCollectLinks(t *testing.T) {
	doc := mustParse(t, `
<html><body>
  <a href="/blog/entry/150288">Tutorial (en)</a>
  <a href="https://codeforces.com/contest/2185/problem/A">A. Problem</a>
  <a>no href</a>
  <a href="/profile/tourist"><span>tourist</span> rating</a>
</body></html>`)

	links := CollectLinks(doc)

	if len(links) != 3 {
		t.Fatalf("expected 3 links, got %d: %+v", len(links), links)
	}

	if links[0].Href != "/blog/entry/150288" || links[0].Text != "Tutorial (en)" {
		t.Errorf("unexpected first link: %+v", links[0])
	}

	// nested element text is flattened into a single line
	if links[2].Text != "tourist rating" {
		t.Errorf("nested link text: got %q, want %q", links[2].Text, "tourist rating")
	}
}

func TestAbsoluteURL(t *testing.T) {
	tests := []struct {
		href string
		want string
	}{
		{"/blog/entry/150288", "https://codeforces.com/blog/entry/150288"},
		{"https://codeforces.com/blog/entry/150288", "https://codeforces.com/blog/entry/150288"},
		{"http://example.com/x", "http://example.com/x"},
	}

	for _, tt := range tests {
		if got := AbsoluteURL(tt.href); got != tt.want {
			t.Errorf("AbsoluteURL(%q) = %q, want %q", tt.href, got, tt.want)
		}
	}
}
