package render

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
)

// markdownLink matches inline markdown links: [text](url).
var markdownLink = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)

// LinkCollector rewrites markdown links for PDF output, where hyperlinks are
// not clickable: each link becomes its text plus a numbered superscript, and
// the URLs are collected for a closing link list. Safe for concurrent use by
// parallel section renders.
type LinkCollector struct {
	mu    sync.Mutex
	links []string
}

// Sanitize replaces every markdown link in text with "text<sup>N</sup>",
// numbering links in order of first appearance across all calls.
func (c *LinkCollector) Sanitize(text string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return markdownLink.ReplaceAllStringFunc(text, func(match string) string {
		parts := markdownLink.FindStringSubmatch(match)
		c.links = append(c.links, parts[2])
		return fmt.Sprintf("%s<sup>%d</sup>", parts[1], len(c.links))
	})
}

// Links returns the collected URLs in numbering order.
func (c *LinkCollector) Links() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	links := make([]string, len(c.links))
	copy(links, c.links)
	return links
}

// LinkList renders the collected URLs as a numbered markdown list, or an
// empty string when no links were collected.
func (c *LinkCollector) LinkList() string {
	links := c.Links()
	if len(links) == 0 {
		return ""
	}
	lines := make([]string, len(links))
	for i, link := range links {
		lines[i] = fmt.Sprintf("%d. %s", i+1, link)
	}
	return strings.Join(lines, "\n")
}
