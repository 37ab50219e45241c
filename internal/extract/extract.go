// Package extract holds the heuristic extractors that turn a storefront's
// home page into brand facets: hero products, policy links, social and
// important links, contact details, about text and FAQs. Every extractor
// reads the same parsed document and never mutates it; extractors that
// follow links issue their own secondary fetches through Fetcher.
package extract

import (
	"context"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Fetcher fetches the body text of a secondary page (policy, about, FAQ).
// Failures are skippable: the extractor degrades instead of aborting.
type Fetcher interface {
	Get(ctx context.Context, url string) (string, error)
}

// visibleText returns the selection's text content with script, style and
// noscript subtrees skipped and all whitespace runs collapsed to single
// spaces.
func visibleText(sel *goquery.Selection) string {
	var parts []string
	for _, n := range sel.Nodes {
		collectText(n, &parts)
	}
	return strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
}

func collectText(n *html.Node, parts *[]string) {
	if n.Type == html.TextNode {
		*parts = append(*parts, n.Data)
		return
	}
	if n.Type == html.ElementNode {
		switch n.Data {
		case "script", "style", "noscript":
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, parts)
	}
}

// truncate cuts s to at most max runes.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}

// containsAny reports whether s contains any of the given substrings.
func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
