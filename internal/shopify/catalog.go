package shopify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/lukman83/brandscope/internal/models"
)

const (
	// DefaultPageSize is the feed page size requested per catalog page.
	DefaultPageSize = 250
	// DefaultMaxPages caps feed pagination.
	DefaultMaxPages = 10
)

// Harvester pages through a storefront's products.json feed and returns a
// deduplicated, normalized product list.
type Harvester struct {
	client   Doer
	pageSize int
	maxPages int
}

func NewHarvester(client Doer, pageSize, maxPages int) *Harvester {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}
	return &Harvester{client: client, pageSize: pageSize, maxPages: maxPages}
}

type feedPage struct {
	Products []feedProduct `json:"products"`
}

type feedProduct struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Handle      string  `json:"handle"`
	BodyHTML    string  `json:"body_html"`
	Vendor      string  `json:"vendor"`
	ProductType string  `json:"product_type"`
	Tags        tagList `json:"tags"`
}

// tagList accepts the feed's tags field as either a comma-separated string
// or an array of strings; both shapes occur in the wild.
type tagList string

func (t *tagList) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = tagList(s)
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*t = tagList(strings.Join(list, ", "))
		return nil
	}
	// Unrecognized shape degrades to empty rather than failing the page.
	*t = ""
	return nil
}

// Catalog pages through the feed. Pagination stops early on a non-200
// status, an empty batch, or any fetch/parse failure; pages gathered before
// the stop are kept. Entries are deduplicated by feed id, then handle, then
// title, first occurrence winning.
func (h *Harvester) Catalog(ctx context.Context, baseURL string) []models.Product {
	var all []models.Product
	for page := 1; page <= h.maxPages; page++ {
		feedURL := fmt.Sprintf("%s/products.json?limit=%d&page=%d", baseURL, h.pageSize, page)
		resp, err := h.client.Do(ctx, feedURL)
		if err != nil || resp.StatusCode != http.StatusOK {
			break
		}
		var payload feedPage
		if err := json.Unmarshal(resp.Body, &payload); err != nil {
			break
		}
		if len(payload.Products) == 0 {
			break
		}
		for _, fp := range payload.Products {
			p := models.Product{
				ID:          fp.ID,
				Title:       fp.Title,
				Handle:      fp.Handle,
				BodyHTML:    fp.BodyHTML,
				Vendor:      fp.Vendor,
				ProductType: fp.ProductType,
				Tags:        string(fp.Tags),
			}
			if fp.Handle != "" {
				p.URL = baseURL + "/products/" + fp.Handle
			}
			all = append(all, p)
		}
	}
	return Dedupe(all)
}

// Dedupe removes products sharing an identity key, preserving first-seen
// order. Products with no identity at all are dropped.
func Dedupe(products []models.Product) []models.Product {
	seen := make(map[string]struct{}, len(products))
	var unique []models.Product
	for _, p := range products {
		key := p.Key()
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, p)
	}
	return unique
}
