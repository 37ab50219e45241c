package models

import "strconv"

// Product is a single storefront product, either harvested from the
// products.json feed or sampled from home-page anchors.
type Product struct {
	ID          int64  `json:"id,omitempty"`
	Title       string `json:"title,omitempty"`
	Handle      string `json:"handle,omitempty"`
	BodyHTML    string `json:"body_html,omitempty"`
	Vendor      string `json:"vendor,omitempty"`
	ProductType string `json:"product_type,omitempty"`
	Tags        string `json:"tags,omitempty"`
	URL         string `json:"url,omitempty"`
}

// Key returns the identity used for catalog deduplication: feed id when
// present, else handle, else title. Empty means the product carries no
// usable identity and is dropped during dedup.
func (p Product) Key() string {
	switch {
	case p.ID != 0:
		return "id:" + strconv.FormatInt(p.ID, 10)
	case p.Handle != "":
		return "handle:" + p.Handle
	case p.Title != "":
		return "title:" + p.Title
	}
	return ""
}

// FAQ is one question/answer pair, from JSON-LD structured data or the
// heading-scan fallback.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// PolicyLink points at a policy page (privacy, returns) with a short
// plain-text excerpt of its content. TextExcerpt may be empty when the
// target page could not be fetched.
type PolicyLink struct {
	Title       string `json:"title,omitempty"`
	URL         string `json:"url,omitempty"`
	TextExcerpt string `json:"text_excerpt,omitempty"`
}

// ContactDetails holds deduplicated, sorted contact channels scraped from
// the home page. Addresses stays empty; no extractor populates it yet.
type ContactDetails struct {
	Emails    []string `json:"emails"`
	Phones    []string `json:"phones"`
	Addresses []string `json:"addresses"`
}

// BrandProfile is the full record assembled for one storefront fetch.
// WebsiteURL is always the normalized form and identifies the record.
type BrandProfile struct {
	WebsiteURL         string         `json:"website_url"`
	IsShopifyLike      bool           `json:"is_shopify_like"`
	ProductCatalog     []Product      `json:"product_catalog"`
	HeroProducts       []Product      `json:"hero_products"`
	PrivacyPolicy      *PolicyLink    `json:"privacy_policy,omitempty"`
	ReturnRefundPolicy *PolicyLink    `json:"return_refund_policy,omitempty"`
	FAQs               []FAQ          `json:"faqs"`
	SocialHandles      []string       `json:"social_handles"`
	ContactDetails     ContactDetails `json:"contact_details"`
	AboutBrand         string         `json:"about_brand,omitempty"`
	ImportantLinks     []string       `json:"important_links"`
	FetchedAt          string         `json:"fetched_at,omitempty"`
	Errors             []string       `json:"errors"`
}
