package codeforces

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/deyna256/codeforces-rag/internal/httpclient"
)

// sections of the problem statement collected into the description, in order;
// the empty string stands for the leading untitled legend div
var statementSections = []string{"", "input-specification", "output-specification", "sample-tests", "note"}

// PageParser scrapes problem statement pages.
type PageParser struct {
	http *httpclient.Client
}

func NewPageParser(http *httpclient.Client) *PageParser {
	return &PageParser{http: http}
}

// fetches and parses the problemset page for a problem
func (p *PageParser) ParseProblemPage(ctx context.Context, id ProblemID) (*ProblemPageData, error) {
	return p.fetchAndParse(ctx, ProblemURL(id))
}

// fetches and parses the in-contest page for a problem
func (p *PageParser) ParseProblemInContest(ctx context.Context, contestID, index string) (*ProblemPageData, error) {
	return p.fetchAndParse(ctx, ContestProblemURL(contestID, index))
}

func (p *PageParser) fetchAndParse(ctx context.Context, url string) (*ProblemPageData, error) {
	body, err := p.http.Get(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch problem page %s: %w", url, err)
	}

	doc, err := html.Parse(strings.NewReader(string(body)))
	if err != nil {
		return nil, fmt.Errorf("failed to parse problem page %s: %w", url, err)
	}

	return ExtractProblemData(doc), nil
}

// pulls statement text and limits out of a parsed problem page
func ExtractProblemData(doc *html.Node) *ProblemPageData {
	statement := findByClass(doc, "div", "problem-statement")
	if statement == nil {
		return &ProblemPageData{}
	}

	return &ProblemPageData{
		Description: extractDescription(statement),
		TimeLimit:   extractLimit(statement, "time-limit", "time limit per test"),
		MemoryLimit: extractLimit(statement, "memory-limit", "memory limit per test"),
	}
}

func extractLimit(statement *html.Node, class, label string) string {
	header := findByClass(statement, "div", "header")
	if header == nil {
		return ""
	}

	node := findByClass(header, "div", class)
	if node == nil {
		return ""
	}

	text := strings.Join(strings.Fields(nodeText(node)), " ")
	lower := strings.ToLower(text)
	if idx := strings.Index(lower, label); idx >= 0 {
		text = strings.TrimSpace(text[idx+len(label):])
	}

	return text
}

func extractDescription(statement *html.Node) string {
	var parts []string

	for _, class := range statementSections {
		var section *html.Node
		if class == "" {
			section = firstUnclassedChildDiv(statement)
		} else {
			section = findByClass(statement, "div", class)
		}

		if section == nil {
			continue
		}

		if text := nodeText(section); text != "" {
			parts = append(parts, text)
		}
	}

	if len(parts) == 0 {
		return nodeText(statement)
	}

	return strings.Join(parts, "\n\n")
}

// the problem legend has no class attribute, unlike every other statement section
func firstUnclassedChildDiv(statement *html.Node) *html.Node {
	for child := statement.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == html.ElementNode && child.Data == "div" && attrValue(child, "class") == "" {
			return child
		}
	}
	return nil
}
