package extract

import (
	"context"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"

	"github.com/lukman83/brandscope/internal/models"
	"github.com/lukman83/brandscope/internal/urlutil"
)

// excerptLimit caps the plain-text excerpt taken from a policy or about
// page, in runes.
const excerptLimit = 600

// FindPolicyLink scans home-page anchors in document order and returns the
// first whose lowercased href contains any of the keywords, with a text
// excerpt of the linked page. A failed excerpt fetch still returns the link,
// just without the excerpt. Returns nil when no anchor matches.
func FindPolicyLink(ctx context.Context, fetcher Fetcher, baseURL string, home *goquery.Document, keywords []string) *models.PolicyLink {
	var link *models.PolicyLink
	home.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		href, _ := a.Attr("href")
		if !containsAny(strings.ToLower(href), keywords) {
			return true
		}
		full := urlutil.Absolutize(baseURL, href)
		title := visibleText(a)
		if title == "" {
			title = titleCase(keywords[0])
		}
		link = &models.PolicyLink{Title: title, URL: full}
		if page, err := fetcher.Get(ctx, full); err == nil {
			if doc, perr := goquery.NewDocumentFromReader(strings.NewReader(page)); perr == nil {
				link.TextExcerpt = truncate(visibleText(doc.Selection), excerptLimit)
			}
		}
		return false
	})
	return link
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
