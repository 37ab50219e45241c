package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContacts(t *testing.T) {
	home := parseDoc(t, `
		<html><body>
			<a href="mailto:hello@brand.com">Email us</a>
			<a href="mailto: support@brand.com ">Support</a>
			<a href="tel:+1-555-123-4567">Call</a>
			<p>Reach us at sales@brand.com or +44 20 7946 0958.</p>
		</body></html>`)

	got := Contacts(home)

	assert.Equal(t, []string{"hello@brand.com", "sales@brand.com", "support@brand.com"}, got.Emails)
	assert.Contains(t, got.Phones, "+1-555-123-4567")
	assert.NotEmpty(t, got.Phones)
	assert.Equal(t, []string{}, got.Addresses)
}

func TestContactsShortPhoneNoiseDiscarded(t *testing.T) {
	home := parseDoc(t, `<html><body><p>Order #12345 ships in 2026.</p></body></html>`)
	got := Contacts(home)
	for _, p := range got.Phones {
		assert.GreaterOrEqual(t, len(p), 7)
	}
}

func TestContactsDeduplicated(t *testing.T) {
	home := parseDoc(t, `
		<html><body>
			<a href="mailto:hi@brand.com">a</a>
			<p>hi@brand.com</p>
		</body></html>`)
	got := Contacts(home)
	assert.Equal(t, []string{"hi@brand.com"}, got.Emails)
}

func TestContactsEmptyPage(t *testing.T) {
	got := Contacts(parseDoc(t, `<html><body></body></html>`))
	assert.Equal(t, []string{}, got.Emails)
	assert.Equal(t, []string{}, got.Phones)
	assert.Equal(t, []string{}, got.Addresses)
}
