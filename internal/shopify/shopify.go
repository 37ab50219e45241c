// Package shopify decides whether a site runs on a Shopify-like platform
// and harvests its public product feed.
package shopify

import (
	"context"

	"github.com/lukman83/brandscope/internal/httputil"
)

// Doer is the slice of the HTTP client the probes need: a GET that reports
// status and content type without treating non-2xx as an error.
type Doer interface {
	Do(ctx context.Context, url string) (*httputil.Response, error)
}
