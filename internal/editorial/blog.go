package editorial

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// blog content containers, tried in order
var contentClasses = []string{"ttypography", "entry-content", "blog-entry-content", "problem-statement"}

// page chrome stripped before text extraction
var unwantedClasses = map[string]struct{}{
	"comments":       {},
	"comment":        {},
	"comment-table":  {},
	"userbox":        {},
	"avatar":         {},
	"menu":           {},
	"menu-box":       {},
	"sidebar":        {},
	"footer":         {},
	"header":         {},
	"voted-count":    {},
	"vote-controls":  {},
	"community-menu": {},
	"lang-chooser":   {},
	"signature":      {},
	"share-buttons":  {},
	"advertisement":  {},
	"ad":             {},
}

var unwantedTags = map[string]struct{}{
	"script":   {},
	"style":    {},
	"noscript": {},
	"form":     {},
	"input":    {},
	"button":   {},
	"iframe":   {},
}

// text-noise patterns removed after extraction
var cleanupPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?im)Material\s+You\s+Should\s+Know.*$`),
	regexp.MustCompile(`(?im)Problem\s+tags\s*:.*$`),
	regexp.MustCompile(`(?im)Download\s+as\s+.*$`),
	regexp.MustCompile(`(?im)Submit\s+a\s+ticket.*$`),
	regexp.MustCompile(`(?im)Related\s+topics.*$`),
}

var (
	multiBlankRe   = regexp.MustCompile(`\n\s*\n\s*\n+`)
	multiSpaceRe   = regexp.MustCompile(`[ \t]+`)
	leadingSpaceRe = regexp.MustCompile(`\n[ \t]+`)
)

// ExtractBlogContent pulls the editorial text out of a parsed blog page,
// preserving headings, paragraphs and code blocks in a markdown-like form.
func ExtractBlogContent(doc *html.Node) string {
	for _, class := range contentClasses {
		if node := findNodeByClass(doc, class); node != nil {
			text := extractStructuredText(node)
			if len(strings.TrimSpace(text)) > 200 {
				return text
			}
		}
	}

	// fallback: whole body
	if body := findNodeByTag(doc, "body"); body != nil {
		return extractStructuredText(body)
	}

	return ""
}

func extractStructuredText(root *html.Node) string {
	var lines []string

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if _, skip := unwantedTags[n.Data]; skip {
				return
			}
			if nodeHasUnwantedClass(n) {
				return
			}

			switch n.Data {
			case "h1", "h2", "h3", "h4", "h5", "h6":
				level := int(n.Data[1] - '0')
				if heading := flatText(n); heading != "" {
					lines = append(lines, "\n"+strings.Repeat("#", level)+" "+heading+"\n")
				}
				return
			case "pre":
				if code := flatText(n); code != "" {
					lines = append(lines, "\n```\n"+code+"\n```\n")
				}
				return
			case "p":
				if para := flatText(n); para != "" {
					lines = append(lines, "\n"+para+"\n")
				}
				return
			}
		}

		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" && (len(lines) == 0 || lines[len(lines)-1] != text) {
				lines = append(lines, text)
			}
			return
		}

		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(root)

	return cleanExtractedText(strings.Join(lines, "\n"))
}

func cleanExtractedText(text string) string {
	text = multiBlankRe.ReplaceAllString(text, "\n\n")

	for _, pattern := range cleanupPatterns {
		text = pattern.ReplaceAllString(text, "")
	}

	text = multiSpaceRe.ReplaceAllString(text, " ")
	text = leadingSpaceRe.ReplaceAllString(text, "\n")

	return strings.TrimSpace(text)
}

// flatText returns the whitespace-normalized text of a node subtree.
func flatText(n *html.Node) string {
	var b strings.Builder

	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			b.WriteString(node.Data)
			b.WriteString(" ")
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)

	return strings.Join(strings.Fields(b.String()), " ")
}

func findNodeByClass(n *html.Node, class string) *html.Node {
	if n == nil {
		return nil
	}

	if n.Type == html.ElementNode && nodeHasClass(n, class) {
		return n
	}

	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if found := findNodeByClass(child, class); found != nil {
			return found
		}
	}

	return nil
}

func findNodeByTag(n *html.Node, tag string) *html.Node {
	if n == nil {
		return nil
	}

	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}

	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if found := findNodeByTag(child, tag); found != nil {
			return found
		}
	}

	return nil
}

func nodeHasClass(n *html.Node, class string) bool {
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

func nodeHasUnwantedClass(n *html.Node) bool {
	for _, attr := range n.Attr {
		if attr.Key != "class" {
			continue
		}
		for _, c := range strings.Fields(attr.Val) {
			if _, ok := unwantedClasses[c]; ok {
				return true
			}
		}
	}
	return false
}
