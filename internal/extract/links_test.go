package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSocialAndImportantLinks(t *testing.T) {
	home := parseDoc(t, `
		<html><body>
			<a href="https://instagram.com/brand">IG</a>
			<a href="https://www.facebook.com/brand">FB</a>
			<a href="https://instagram.com/brand">IG again</a>
			<a href="/pages/contact-us">Contact</a>
			<a href="/blogs/news">Blog</a>
			<a href="/pages/track-order">Track</a>
			<a href="/collections/all">Shop</a>
		</body></html>`)

	socials, important := SocialAndImportantLinks(testBase, home)

	// Socials keep first-seen order, duplicates removed.
	assert.Equal(t, []string{"https://instagram.com/brand", "https://www.facebook.com/brand"}, socials)

	// Importants are sorted.
	assert.Equal(t, []string{
		testBase + "/blogs/news",
		testBase + "/pages/contact-us",
		testBase + "/pages/track-order",
	}, important)
}

func TestLinkMayBeBothSocialAndImportant(t *testing.T) {
	home := parseDoc(t, `<html><body><a href="https://facebook.com/brand/support">Support</a></body></html>`)
	socials, important := SocialAndImportantLinks(testBase, home)
	assert.Equal(t, []string{"https://facebook.com/brand/support"}, socials)
	assert.Equal(t, []string{"https://facebook.com/brand/support"}, important)
}

func TestLinksEmptyPage(t *testing.T) {
	home := parseDoc(t, `<html><body><p>no anchors at all</p></body></html>`)
	socials, important := SocialAndImportantLinks(testBase, home)
	assert.Empty(t, socials)
	assert.Empty(t, important)
}
