// Package insights orchestrates the brand extraction pipeline: normalize
// the site URL, fetch the home page, detect the platform, harvest the
// catalog and run the heuristic extractors against one home-page snapshot.
package insights

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/lukman83/brandscope/internal/extract"
	"github.com/lukman83/brandscope/internal/httputil"
	"github.com/lukman83/brandscope/internal/models"
	"github.com/lukman83/brandscope/internal/shopify"
	"github.com/lukman83/brandscope/internal/urlutil"
)

// fetchedAtLayout is the timestamp format stamped on every profile.
const fetchedAtLayout = "2006-01-02 15:04:05"

// Client is the transport slice the pipeline needs. *httputil.Client
// satisfies it; tests substitute fakes.
type Client interface {
	Get(ctx context.Context, url string) (string, error)
	Do(ctx context.Context, url string) (*httputil.Response, error)
}

// Config tunes the pipeline. Zero values fall back to package defaults.
type Config struct {
	CatalogPageSize int
	CatalogMaxPages int
}

// Service runs the full pipeline for one storefront per call. Concurrent
// calls for the same normalized URL are coalesced into a single fetch.
type Service struct {
	client    Client
	detector  *shopify.Detector
	harvester *shopify.Harvester
	logger    *zap.Logger
	group     singleflight.Group
}

func NewService(client Client, logger *zap.Logger, cfg Config) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		client:    client,
		detector:  shopify.NewDetector(client),
		harvester: shopify.NewHarvester(client, cfg.CatalogPageSize, cfg.CatalogMaxPages),
		logger:    logger,
	}
}

// Fetch assembles a complete BrandProfile for the given site reference.
// An unreachable home page is the only fatal condition: it returns a
// profile holding just the normalized URL and one error entry. Every other
// failure degrades its facet to empty and the pipeline carries on.
func (s *Service) Fetch(ctx context.Context, websiteURL string) *models.BrandProfile {
	base := urlutil.Normalize(websiteURL)
	v, _, _ := s.group.Do(base, func() (any, error) {
		return s.fetch(ctx, base), nil
	})
	return v.(*models.BrandProfile)
}

func (s *Service) fetch(ctx context.Context, base string) *models.BrandProfile {
	start := time.Now()
	profile := &models.BrandProfile{WebsiteURL: base}

	reportProgress(ctx, "Fetching home page...")
	homeHTML, err := s.client.Get(ctx, base)
	if err != nil {
		s.logger.Warn("home page unreachable", zap.String("url", base), zap.Error(err))
		profile.Errors = []string{fmt.Sprintf("Home fetch failed: %v", err)}
		finalize(profile)
		return profile
	}

	home, err := goquery.NewDocumentFromReader(strings.NewReader(homeHTML))
	if err != nil {
		s.logger.Warn("home page unparseable", zap.String("url", base), zap.Error(err))
		profile.Errors = []string{fmt.Sprintf("Home parse failed: %v", err)}
		finalize(profile)
		return profile
	}

	reportProgress(ctx, "Detecting platform...")
	profile.IsShopifyLike = s.detector.IsStorefront(ctx, base, home)

	if profile.IsShopifyLike {
		reportProgress(ctx, "Harvesting product catalog...")
		profile.ProductCatalog = s.harvester.Catalog(ctx, base)
	}

	reportProgress(ctx, "Extracting brand facets...")
	profile.HeroProducts = extract.HeroProducts(base, home)
	profile.PrivacyPolicy = extract.FindPolicyLink(ctx, s.client, base, home, []string{"privacy"})
	profile.ReturnRefundPolicy = extract.FindPolicyLink(ctx, s.client, base, home, []string{"return", "refund"})
	profile.SocialHandles, profile.ImportantLinks = extract.SocialAndImportantLinks(base, home)
	profile.ContactDetails = extract.Contacts(home)
	profile.AboutBrand = extract.About(ctx, s.client, base, home)
	profile.FAQs = extract.FAQs(ctx, s.client, base, home)

	profile.FetchedAt = time.Now().Format(fetchedAtLayout)
	finalize(profile)
	s.logger.Info("brand fetch complete",
		zap.String("url", base),
		zap.Bool("shopify_like", profile.IsShopifyLike),
		zap.Int("catalog", len(profile.ProductCatalog)),
		zap.Int("heroes", len(profile.HeroProducts)),
		zap.Int("faqs", len(profile.FAQs)),
		zap.Duration("took", time.Since(start)),
	)
	return profile
}

// finalize replaces nil collections with empty ones so the serialized
// record always carries its full shape. Error-path profiles stay
// timestamp-free; only a completed pipeline stamps FetchedAt.
func finalize(p *models.BrandProfile) {
	if p.ProductCatalog == nil {
		p.ProductCatalog = []models.Product{}
	}
	if p.HeroProducts == nil {
		p.HeroProducts = []models.Product{}
	}
	if p.FAQs == nil {
		p.FAQs = []models.FAQ{}
	}
	if p.SocialHandles == nil {
		p.SocialHandles = []string{}
	}
	if p.ImportantLinks == nil {
		p.ImportantLinks = []string{}
	}
	if p.ContactDetails.Emails == nil {
		p.ContactDetails.Emails = []string{}
	}
	if p.ContactDetails.Phones == nil {
		p.ContactDetails.Phones = []string{}
	}
	if p.ContactDetails.Addresses == nil {
		p.ContactDetails.Addresses = []string{}
	}
	if p.Errors == nil {
		p.Errors = []string{}
	}
}
