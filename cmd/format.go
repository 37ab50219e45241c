package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/lukman83/brandscope/internal/models"
)

// printSummary prints a profile as a human-friendly report card.
func printSummary(p *models.BrandProfile) {
	fmt.Fprintf(os.Stdout, "%s\n", p.WebsiteURL)
	fmt.Fprintf(os.Stdout, "  Shopify-like: %v\n", p.IsShopifyLike)
	if p.AboutBrand != "" {
		fmt.Fprintf(os.Stdout, "  About: %s\n", truncate(p.AboutBrand, 120))
	}

	fmt.Fprintf(os.Stdout, "  Catalog: %d products", len(p.ProductCatalog))
	if len(p.HeroProducts) > 0 {
		fmt.Fprintf(os.Stdout, "  |  Heroes: %d", len(p.HeroProducts))
	}
	fmt.Fprintln(os.Stdout)

	for i, prod := range p.ProductCatalog {
		if i == 5 {
			fmt.Fprintf(os.Stdout, "    ... and %d more\n", len(p.ProductCatalog)-i)
			break
		}
		line := "    - " + prod.Title
		if prod.Vendor != "" {
			line += " (" + prod.Vendor + ")"
		}
		fmt.Fprintln(os.Stdout, line)
	}

	if p.PrivacyPolicy != nil {
		fmt.Fprintf(os.Stdout, "  Privacy policy: %s\n", p.PrivacyPolicy.URL)
	}
	if p.ReturnRefundPolicy != nil {
		fmt.Fprintf(os.Stdout, "  Return/refund policy: %s\n", p.ReturnRefundPolicy.URL)
	}
	if len(p.FAQs) > 0 {
		fmt.Fprintf(os.Stdout, "  FAQs: %d\n", len(p.FAQs))
	}
	if len(p.SocialHandles) > 0 {
		fmt.Fprintf(os.Stdout, "  Socials: %s\n", strings.Join(p.SocialHandles, ", "))
	}
	if len(p.ContactDetails.Emails) > 0 {
		fmt.Fprintf(os.Stdout, "  Emails: %s\n", strings.Join(p.ContactDetails.Emails, ", "))
	}
	if len(p.ContactDetails.Phones) > 0 {
		fmt.Fprintf(os.Stdout, "  Phones: %s\n", strings.Join(p.ContactDetails.Phones, ", "))
	}
	if len(p.ImportantLinks) > 0 {
		fmt.Fprintf(os.Stdout, "  Important links:\n")
		for _, l := range p.ImportantLinks {
			fmt.Fprintf(os.Stdout, "    - %s\n", l)
		}
	}
	if p.FetchedAt != "" {
		fmt.Fprintf(os.Stdout, "  Fetched at: %s\n", p.FetchedAt)
	}
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
