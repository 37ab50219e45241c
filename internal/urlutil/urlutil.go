// Package urlutil canonicalizes user-supplied site references and resolves
// relative hrefs against a base URL.
package urlutil

import (
	"net/url"
	"strings"
)

// Normalize canonicalizes a raw site reference into a fetchable base URL:
// whitespace trimmed, https:// prepended when no scheme is present, trailing
// slashes stripped. Empty input passes through unchanged; this is not the
// layer that rejects it.
func Normalize(raw string) string {
	if raw == "" {
		return raw
	}
	raw = strings.TrimSpace(raw)
	if u, err := url.Parse(raw); err != nil || u.Scheme == "" {
		raw = "https://" + raw
	}
	return strings.TrimRight(raw, "/")
}

// Absolutize resolves a possibly-relative href against base. The base is
// treated as a directory by appending a slash before joining. On any parse
// failure the href is returned unchanged.
func Absolutize(base, href string) string {
	b, err := url.Parse(base + "/")
	if err != nil {
		return href
	}
	h, err := url.Parse(href)
	if err != nil {
		return href
	}
	return b.ResolveReference(h).String()
}
