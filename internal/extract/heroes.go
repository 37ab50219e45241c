package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/lukman83/brandscope/internal/models"
	"github.com/lukman83/brandscope/internal/urlutil"
)

// maxHeroAnchors bounds how many product anchors are sampled from the home
// page, in document order.
const maxHeroAnchors = 30

// HeroProducts samples products showcased on the home page: the first 30
// anchors pointing at a /products/ path, deduplicated by resolved URL. The
// handle is derived from the URL path; the anchor text becomes the title,
// falling back to the handle when the anchor has no text.
func HeroProducts(baseURL string, home *goquery.Document) []models.Product {
	seen := make(map[string]struct{})
	var heroes []models.Product
	home.Find("a[href*='/products/']").EachWithBreak(func(i int, a *goquery.Selection) bool {
		if i >= maxHeroAnchors {
			return false
		}
		href, _ := a.Attr("href")
		full := urlutil.Absolutize(baseURL, href)
		if !strings.Contains(full, "/products/") {
			return true
		}
		if _, dup := seen[full]; dup {
			return true
		}
		seen[full] = struct{}{}

		handle := full[strings.LastIndex(full, "/products/")+len("/products/"):]
		handle = strings.Trim(handle, "/")
		if q := strings.IndexByte(handle, '?'); q >= 0 {
			handle = handle[:q]
		}

		title := visibleText(a)
		if title == "" {
			title = handle
		}
		heroes = append(heroes, models.Product{Title: title, Handle: handle, URL: full})
		return true
	})
	return heroes
}
