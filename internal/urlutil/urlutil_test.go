package urlutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare domain gets https", "example.com", "https://example.com"},
		{"trailing slash stripped", "https://example.com/", "https://example.com"},
		{"multiple trailing slashes stripped", "https://example.com///", "https://example.com"},
		{"scheme preserved", "http://example.com", "http://example.com"},
		{"whitespace trimmed", "  example.com  ", "https://example.com"},
		{"path kept", "example.com/shop", "https://example.com/shop"},
		{"empty passes through", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	once := Normalize("example.com/")
	assert.Equal(t, once, Normalize(once))
}

func TestAbsolutize(t *testing.T) {
	tests := []struct {
		name string
		base string
		href string
		want string
	}{
		{"relative path", "https://example.com", "/pages/about", "https://example.com/pages/about"},
		{"already absolute", "https://example.com", "https://other.com/x", "https://other.com/x"},
		{"relative without slash", "https://example.com", "pages/faq", "https://example.com/pages/faq"},
		{"query preserved", "https://example.com", "/products/a?variant=1", "https://example.com/products/a?variant=1"},
		{"unparseable href returned unchanged", "https://example.com", "http://%zz", "http://%zz"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Absolutize(tt.base, tt.href))
		})
	}
}
