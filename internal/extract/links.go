package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/lukman83/brandscope/internal/urlutil"
)

// socialDomains classify an anchor as a social handle.
var socialDomains = []string{
	"facebook.com", "instagram.com", "tiktok.com", "twitter.com",
	"x.com", "youtube.com", "pinterest.com", "linkedin.com",
}

// importantKeywords classify an anchor as an important storefront link.
var importantKeywords = []string{
	"contact", "blog", "order", "track", "tracking", "help",
	"support", "faq", "shipping", "warranty", "care",
}

// SocialAndImportantLinks classifies every home-page anchor in one pass. A
// resolved href is social when it contains a known social domain, and
// important when it contains a known keyword; a link may be both or
// neither. Socials keep first-seen order with duplicates dropped;
// importants are deduplicated and sorted.
func SocialAndImportantLinks(baseURL string, home *goquery.Document) (socials, important []string) {
	seenSocial := make(map[string]struct{})
	importantSet := make(map[string]struct{})
	home.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		full := urlutil.Absolutize(baseURL, href)
		low := strings.ToLower(full)
		if containsAny(low, socialDomains) {
			if _, dup := seenSocial[full]; !dup {
				seenSocial[full] = struct{}{}
				socials = append(socials, full)
			}
		}
		if containsAny(low, importantKeywords) {
			importantSet[full] = struct{}{}
		}
	})
	return socials, sortedKeys(importantSet)
}
