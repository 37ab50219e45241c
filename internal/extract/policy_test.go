package extract

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindPolicyLink(t *testing.T) {
	home := parseDoc(t, `
		<html><body>
			<a href="/pages/shipping">Shipping</a>
			<a href="/policies/Privacy-Policy">Privacy Policy</a>
			<a href="/policies/privacy-policy-2">Another</a>
		</body></html>`)
	fetcher := &fakeFetcher{pages: map[string]string{
		testBase + "/policies/Privacy-Policy": `<html><body><h1>Privacy</h1><p>We collect nothing.</p></body></html>`,
	}}

	link := FindPolicyLink(context.Background(), fetcher, testBase, home, []string{"privacy"})
	require.NotNil(t, link)
	assert.Equal(t, "Privacy Policy", link.Title)
	assert.Equal(t, testBase+"/policies/Privacy-Policy", link.URL)
	assert.Equal(t, "Privacy We collect nothing.", link.TextExcerpt)
	// First matching anchor wins; the second is never fetched.
	assert.Equal(t, []string{testBase + "/policies/Privacy-Policy"}, fetcher.calls)
}

func TestFindPolicyLinkExcerptCap(t *testing.T) {
	home := parseDoc(t, `<html><body><a href="/return-policy">Returns</a></body></html>`)
	long := strings.Repeat("word ", 300)
	fetcher := &fakeFetcher{pages: map[string]string{
		testBase + "/return-policy": "<html><body><p>" + long + "</p></body></html>",
	}}

	link := FindPolicyLink(context.Background(), fetcher, testBase, home, []string{"return", "refund"})
	require.NotNil(t, link)
	assert.LessOrEqual(t, len([]rune(link.TextExcerpt)), 600)
}

func TestFindPolicyLinkFetchFailureKeepsLink(t *testing.T) {
	home := parseDoc(t, `<html><body><a href="/refund-policy"></a></body></html>`)
	fetcher := &fakeFetcher{}

	link := FindPolicyLink(context.Background(), fetcher, testBase, home, []string{"return", "refund"})
	require.NotNil(t, link)
	assert.Equal(t, "Return", link.Title) // empty anchor text falls back to the keyword
	assert.Equal(t, testBase+"/refund-policy", link.URL)
	assert.Empty(t, link.TextExcerpt)
}

func TestFindPolicyLinkAbsent(t *testing.T) {
	home := parseDoc(t, `<html><body><a href="/pages/contact">Contact</a></body></html>`)
	link := FindPolicyLink(context.Background(), &fakeFetcher{}, testBase, home, []string{"privacy"})
	assert.Nil(t, link)
}
