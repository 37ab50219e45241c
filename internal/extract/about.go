package extract

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/lukman83/brandscope/internal/urlutil"
)

// About describes the brand from, in order of preference: the meta
// description, the Open Graph description, or the first 600 runes of
// visible text on the first page linked via an "about" href. Anchors whose
// pages fail to fetch are skipped in favor of the next candidate. Empty
// when all three fall through.
func About(ctx context.Context, fetcher Fetcher, baseURL string, home *goquery.Document) string {
	if c, ok := home.Find(`meta[name="description"]`).Attr("content"); ok {
		if desc := strings.TrimSpace(c); desc != "" {
			return desc
		}
	}
	if c, ok := home.Find(`meta[property="og:description"]`).Attr("content"); ok {
		if desc := strings.TrimSpace(c); desc != "" {
			return desc
		}
	}

	var about string
	home.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		href, _ := a.Attr("href")
		if !strings.Contains(strings.ToLower(href), "about") {
			return true
		}
		page, err := fetcher.Get(ctx, urlutil.Absolutize(baseURL, href))
		if err != nil {
			return true
		}
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
		if err != nil {
			return true
		}
		about = truncate(visibleText(doc.Selection), excerptLimit)
		return false
	})
	return about
}
