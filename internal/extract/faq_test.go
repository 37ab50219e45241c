package extract

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFAQsStructuredData(t *testing.T) {
	home := parseDoc(t, `
		<html><head>
		<script type="application/ld+json">
		{
			"@type": "FAQPage",
			"mainEntity": [
				{"@type":"Question","name":"Do you ship worldwide?","acceptedAnswer":{"text":"<p>Yes, to <b>every</b> country.</p>"}},
				{"@type":"Question","question":"What is your return window?","acceptedAnswer":{"text":"30 days."}},
				{"@type":"Question","name":"No answer here"}
			]
		}
		</script>
		</head><body></body></html>`)

	faqs := FAQs(context.Background(), &fakeFetcher{}, testBase, home)
	require.Len(t, faqs, 2)
	assert.Equal(t, "Do you ship worldwide?", faqs[0].Question)
	assert.Equal(t, "Yes, to every country.", faqs[0].Answer)
	assert.Equal(t, "What is your return window?", faqs[1].Question)
	assert.Equal(t, "30 days.", faqs[1].Answer)
}

func TestFAQsStructuredDataList(t *testing.T) {
	home := parseDoc(t, `
		<html><head>
		<script type="application/ld+json">
		[
			{"@type":"Organization","name":"Brand"},
			{"@type":"faqpage","mainEntityOfPage":[{"name":"Q1?","acceptedAnswer":{"text":"A1"}}]}
		]
		</script>
		</head><body></body></html>`)

	faqs := FAQs(context.Background(), &fakeFetcher{}, testBase, home)
	require.Len(t, faqs, 1)
	assert.Equal(t, "Q1?", faqs[0].Question)
	assert.Equal(t, "A1", faqs[0].Answer)
}

func TestFAQsMalformedBlockSkipped(t *testing.T) {
	home := parseDoc(t, `
		<html><head>
		<script type="application/ld+json">{not json at all</script>
		<script type="application/ld+json">{"@type":"FAQPage","mainEntity":[{"name":"Q?","acceptedAnswer":{"text":"A"}}]}</script>
		</head><body></body></html>`)

	faqs := FAQs(context.Background(), &fakeFetcher{}, testBase, home)
	require.Len(t, faqs, 1)
}

func TestFAQsFallbackHeadingScan(t *testing.T) {
	home := parseDoc(t, `<html><body><a href="/pages/faq">FAQ</a></body></html>`)
	fetcher := &fakeFetcher{pages: map[string]string{
		testBase + "/pages/faq": `
			<html><body>
				<h2>Do you offer gift wrapping?</h2>
				<p>Yes.</p>
				<p>Add it at checkout.</p>
				<h2>Tiny</h2>
				<p>skipped, heading too short</p>
				<h3>Where do you ship from?</h3>
				<p>Our warehouse in Austin.</p>
				<h2>Question without answer</h2>
			</body></html>`,
	}}

	faqs := FAQs(context.Background(), fetcher, testBase, home)
	require.Len(t, faqs, 2)
	assert.Equal(t, "Do you offer gift wrapping?", faqs[0].Question)
	assert.Equal(t, "Yes. Add it at checkout.", faqs[0].Answer)
	assert.Equal(t, "Where do you ship from?", faqs[1].Question)
	assert.Equal(t, "Our warehouse in Austin.", faqs[1].Answer)
}

func TestFAQsFallbackStopsAtNextHeading(t *testing.T) {
	home := parseDoc(t, `<html><body><a href="/help">Help</a></body></html>`)
	fetcher := &fakeFetcher{pages: map[string]string{
		testBase + "/help": `
			<html><body>
				<h2>First question here?</h2>
				<p>First answer.</p>
				<h2>Second question here?</h2>
				<p>Second answer.</p>
			</body></html>`,
	}}

	faqs := FAQs(context.Background(), fetcher, testBase, home)
	require.Len(t, faqs, 2)
	assert.Equal(t, "First answer.", faqs[0].Answer)
	assert.Equal(t, "Second answer.", faqs[1].Answer)
}

func TestFAQsFallbackTriesNextLinkOnFailure(t *testing.T) {
	home := parseDoc(t, `
		<html><body>
			<a href="/faq-old">dead FAQ</a>
			<a href="/pages/support">Support</a>
		</body></html>`)
	fetcher := &fakeFetcher{pages: map[string]string{
		testBase + "/pages/support": `<html><body><h2>Is support free?</h2><p>Always.</p></body></html>`,
	}}

	faqs := FAQs(context.Background(), fetcher, testBase, home)
	require.Len(t, faqs, 1)
	assert.Equal(t, "Is support free?", faqs[0].Question)
}

func TestFAQsCap(t *testing.T) {
	var entries []string
	for i := 0; i < 60; i++ {
		entries = append(entries, fmt.Sprintf(`{"name":"Question %d?","acceptedAnswer":{"text":"Answer %d"}}`, i, i))
	}
	home := parseDoc(t, `
		<html><head><script type="application/ld+json">
		{"@type":"FAQPage","mainEntity":[`+strings.Join(entries, ",")+`]}
		</script></head><body></body></html>`)

	faqs := FAQs(context.Background(), &fakeFetcher{}, testBase, home)
	assert.Len(t, faqs, 50)
}

func TestFAQsFallbackAnswerCap(t *testing.T) {
	home := parseDoc(t, `<html><body><a href="/faq">FAQ</a></body></html>`)
	long := strings.Repeat("answer ", 300)
	fetcher := &fakeFetcher{pages: map[string]string{
		testBase + "/faq": `<html><body><h2>A very long answer?</h2><p>` + long + `</p></body></html>`,
	}}

	faqs := FAQs(context.Background(), fetcher, testBase, home)
	require.Len(t, faqs, 1)
	assert.LessOrEqual(t, len([]rune(faqs[0].Answer)), 800)
}
