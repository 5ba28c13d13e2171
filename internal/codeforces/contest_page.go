package codeforces

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/deyna256/codeforces-rag/internal/httpclient"
)

// ContestPageScraper fetches contest pages and collects their anchor links,
// the raw material for editorial URL detection.
type ContestPageScraper struct {
	http *httpclient.Client
}

func NewContestPageScraper(http *httpclient.Client) *ContestPageScraper {
	return &ContestPageScraper{http: http}
}

func (s *ContestPageScraper) FetchContestLinks(ctx context.Context, id ContestID) ([]Link, error) {
	url := ContestURL(id)

	body, err := s.http.Get(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch contest page %s: %w", url, err)
	}

	doc, err := html.Parse(strings.NewReader(string(body)))
	if err != nil {
		return nil, fmt.Errorf("failed to parse contest page %s: %w", url, err)
	}

	return CollectLinks(doc), nil
}

// walks the document and returns every anchor with an href
func CollectLinks(doc *html.Node) []Link {
	var links []Link

	var traverse func(*html.Node)
	traverse = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			if href := attrValue(n, "href"); href != "" {
				links = append(links, Link{
					Href: href,
					Text: strings.Join(strings.Fields(nodeText(n)), " "),
				})
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			traverse(child)
		}
	}
	traverse(doc)

	return links
}

// resolves a possibly relative codeforces link to an absolute URL
func AbsoluteURL(href string) string {
	if strings.HasPrefix(href, "/") {
		return "https://codeforces.com" + href
	}
	return href
}
