package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/lukman83/brandscope/internal/models"
)

// Insights runs the extraction pipeline for one site.
type Insights interface {
	Fetch(ctx context.Context, websiteURL string) *models.BrandProfile
}

func registerTools(s *server.MCPServer, svc Insights) {
	fetchTool := mcp.NewTool("fetch_brand_insights",
		mcp.WithDescription("Fetch structured brand insights for a storefront website: platform detection, product catalog, policies, contacts, social links and FAQs"),
		mcp.WithString("website_url",
			mcp.Required(),
			mcp.Description("Storefront URL, e.g. https://examplestore.com"),
		),
	)
	s.AddTool(fetchTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleFetchInsights(ctx, svc, request)
	})
}

func handleFetchInsights(ctx context.Context, svc Insights, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	websiteURL := request.GetString("website_url", "")
	if websiteURL == "" {
		return mcp.NewToolResultError("website_url is required"), nil
	}

	profile := svc.Fetch(ctx, websiteURL)
	if len(profile.Errors) > 0 && !profile.IsShopifyLike && len(profile.ProductCatalog) == 0 {
		return mcp.NewToolResultError(fmt.Sprintf("fetch failed: %s", profile.Errors[0])), nil
	}

	data, _ := json.MarshalIndent(profile, "", "  ")
	return mcp.NewToolResultText(string(data)), nil
}
