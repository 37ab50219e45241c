package extract

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

const testBase = "https://shop.example.com"

// fakeFetcher serves canned secondary pages by URL; anything else fails.
type fakeFetcher struct {
	pages map[string]string
	calls []string
}

func (f *fakeFetcher) Get(_ context.Context, url string) (string, error) {
	f.calls = append(f.calls, url)
	if body, ok := f.pages[url]; ok {
		return body, nil
	}
	return "", errors.New("connection refused")
}

func parseDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestVisibleTextSkipsScripts(t *testing.T) {
	doc := parseDoc(t, `<html><body><p>hello</p><script>var x = 1;</script><style>p{}</style><p>world</p></body></html>`)
	require.Equal(t, "hello world", visibleText(doc.Selection))
}

func TestTruncateRunes(t *testing.T) {
	require.Equal(t, "héllo", truncate("héllo", 10))
	require.Equal(t, "hél", truncate("héllo", 3))
}
