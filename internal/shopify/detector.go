package shopify

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Detector gives a boolean is-platform-like verdict for a storefront.
type Detector struct {
	client Doer
}

func NewDetector(client Doer) *Detector {
	return &Detector{client: client}
}

// IsStorefront reports whether the site looks Shopify-built. The feed probe
// is the reliable signal when it answers; many stores block it, so an
// inconclusive probe falls back to scanning the home markup for the platform
// token in script sources and meta contents.
func (d *Detector) IsStorefront(ctx context.Context, baseURL string, home *goquery.Document) bool {
	if d.probeFeed(ctx, baseURL) {
		return true
	}
	return scanMarkup(home)
}

// probeFeed requests the one-item product feed. Anything short of a 200 JSON
// object with a "products" key — including transport errors and malformed
// payloads — is inconclusive, not an error.
func (d *Detector) probeFeed(ctx context.Context, baseURL string) bool {
	resp, err := d.client.Do(ctx, baseURL+"/products.json?limit=1")
	if err != nil || resp.StatusCode != http.StatusOK {
		return false
	}
	if !strings.HasPrefix(resp.ContentType, "application/json") {
		return false
	}
	var payload map[string]json.RawMessage
	if json.Unmarshal(resp.Body, &payload) != nil {
		return false
	}
	_, ok := payload["products"]
	return ok
}

func scanMarkup(home *goquery.Document) bool {
	if home == nil {
		return false
	}
	var scripts, metas strings.Builder
	home.Find("script[src]").Each(func(_ int, s *goquery.Selection) {
		src, _ := s.Attr("src")
		scripts.WriteString(src)
		scripts.WriteByte(' ')
	})
	home.Find("meta[content]").Each(func(_ int, s *goquery.Selection) {
		content, _ := s.Attr("content")
		metas.WriteString(content)
		metas.WriteByte(' ')
	})
	return strings.Contains(strings.ToLower(scripts.String()), "shopify") ||
		strings.Contains(strings.ToLower(metas.String()), "shopify")
}
