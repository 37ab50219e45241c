package extract

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/lukman83/brandscope/internal/models"
)

// minPhoneLen discards regex phone matches too short to be real numbers.
const minPhoneLen = 7

var (
	emailRe = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	phoneRe = regexp.MustCompile(`(?:\+\d{1,3}[-.\s]?)?(?:\(?\d{2,4}\)?[-.\s]?)?\d{3,5}[-.\s]?\d{4,6}`)
)

// Contacts collects emails from mailto: anchors and phones from tel:
// anchors, then regex-scans the page's visible text for more of each.
// Results come back as sorted, deduplicated lists. Addresses is always
// empty.
func Contacts(home *goquery.Document) models.ContactDetails {
	emails := make(map[string]struct{})
	phones := make(map[string]struct{})

	home.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		if rest, ok := strings.CutPrefix(href, "mailto:"); ok {
			if addr := strings.TrimSpace(rest); addr != "" {
				emails[addr] = struct{}{}
			}
		}
		if rest, ok := strings.CutPrefix(href, "tel:"); ok {
			if num := strings.TrimSpace(rest); num != "" {
				phones[num] = struct{}{}
			}
		}
	})

	text := visibleText(home.Selection)
	for _, m := range emailRe.FindAllString(text, -1) {
		emails[m] = struct{}{}
	}
	for _, m := range phoneRe.FindAllString(text, -1) {
		if len(m) >= minPhoneLen {
			phones[m] = struct{}{}
		}
	}

	return models.ContactDetails{
		Emails:    sortedKeys(emails),
		Phones:    sortedKeys(phones),
		Addresses: []string{},
	}
}
