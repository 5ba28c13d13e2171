package codeforces

import (
	"strings"

	"golang.org/x/net/html"
)

// finds the first element with the given tag and class anywhere under n
func findByClass(n *html.Node, tag, class string) *html.Node {
	if n == nil {
		return nil
	}

	if n.Type == html.ElementNode && n.Data == tag && hasClass(n, class) {
		return n
	}

	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if found := findByClass(child, tag, class); found != nil {
			return found
		}
	}

	return nil
}

func hasClass(n *html.Node, class string) bool {
	for _, attr := range n.Attr {
		if attr.Key != "class" {
			continue
		}
		for _, c := range strings.Fields(attr.Val) {
			if c == class {
				return true
			}
		}
	}
	return false
}

func attrValue(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

// collects the text content of n with block elements separated by newlines
func nodeText(n *html.Node) string {
	var b strings.Builder
	writeText(&b, n)
	return collapseBlankLines(b.String())
}

func writeText(b *strings.Builder, n *html.Node) {
	if n == nil {
		return
	}

	switch n.Type {
	case html.TextNode:
		text := strings.TrimSpace(n.Data)
		if text != "" {
			b.WriteString(text)
			b.WriteString("\n")
		}
	case html.ElementNode:
		if n.Data == "script" || n.Data == "style" {
			return
		}
	}

	for child := n.FirstChild; child != nil; child = child.NextSibling {
		writeText(b, child)
	}
}

func collapseBlankLines(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}
