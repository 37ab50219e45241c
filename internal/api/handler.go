// Package api exposes the insights pipeline over HTTP.
package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lukman83/brandscope/internal/models"
)

// Insights runs the extraction pipeline for one site.
type Insights interface {
	Fetch(ctx context.Context, websiteURL string) *models.BrandProfile
}

// Persister stores a fetched profile. May be nil when the service runs
// without a database.
type Persister interface {
	SaveBrand(ctx context.Context, p *models.BrandProfile) error
}

// Handler holds dependencies for the HTTP handlers.
type Handler struct {
	service Insights
	store   Persister
	logger  *zap.Logger
}

func NewHandler(service Insights, store Persister, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{service: service, store: store, logger: logger}
}

// Health reports service liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Root greets API explorers.
func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Welcome to the Brandscope insights API."})
}

// FetchInsights runs the pipeline for ?website_url=... and maps the outcome:
// an unreachable site or one with neither a platform signal nor a catalog is
// a client error; anything else returns the full record. Persistence is
// best-effort and never fails the response.
func (h *Handler) FetchInsights(c *gin.Context) {
	websiteURL := c.Query("website_url")
	if websiteURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "website_url query parameter is required"})
		return
	}

	profile := h.service.Fetch(c.Request.Context(), websiteURL)

	if len(profile.Errors) > 0 && !profile.IsShopifyLike && len(profile.ProductCatalog) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Website not found or unreachable"})
		return
	}
	if !profile.IsShopifyLike && len(profile.ProductCatalog) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Website is not detected as a Shopify store"})
		return
	}

	if h.store != nil {
		if err := h.store.SaveBrand(c.Request.Context(), profile); err != nil {
			h.logger.Warn("persist brand failed",
				zap.String("url", profile.WebsiteURL), zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, profile)
}
