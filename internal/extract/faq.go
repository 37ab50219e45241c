package extract

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/lukman83/brandscope/internal/models"
	"github.com/lukman83/brandscope/internal/urlutil"
)

const (
	// maxFAQs caps the FAQ list regardless of which path produced it.
	maxFAQs = 50
	// fallbackAnswerLimit caps a heading-scan answer, in runes.
	fallbackAnswerLimit = 800
	// minHeadingLen skips headings too short to be questions.
	minHeadingLen = 5
	// maxAnswerSiblings bounds the sibling walk below a heading.
	maxAnswerSiblings = 5
)

// faqLinkKeywords pick the anchors the fallback path follows.
var faqLinkKeywords = []string{"faq", "help", "support"}

// ldObject is the slice of a schema.org JSON-LD payload the FAQ extractor
// cares about. Blocks that do not fit this shape are skipped.
type ldObject struct {
	Type             string       `json:"@type"`
	MainEntity       []ldQuestion `json:"mainEntity"`
	MainEntityOfPage []ldQuestion `json:"mainEntityOfPage"`
}

type ldQuestion struct {
	Name           string    `json:"name"`
	Question       string    `json:"question"`
	AcceptedAnswer *ldAnswer `json:"acceptedAnswer"`
}

type ldAnswer struct {
	Text string `json:"text"`
}

// FAQs extracts question/answer pairs. The primary path reads FAQPage
// JSON-LD blocks embedded in the home page; when that yields nothing, the
// fallback follows the first faq/help/support anchor whose page gives up
// any headings-with-answers. The result is capped at 50 entries.
func FAQs(ctx context.Context, fetcher Fetcher, baseURL string, home *goquery.Document) []models.FAQ {
	faqs := structuredDataFAQs(home)

	if len(faqs) == 0 {
		home.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
			href, _ := a.Attr("href")
			if !containsAny(strings.ToLower(href), faqLinkKeywords) {
				return true
			}
			page, err := fetcher.Get(ctx, urlutil.Absolutize(baseURL, href))
			if err != nil {
				return true
			}
			faqs = append(faqs, headingFAQs(page)...)
			return len(faqs) == 0
		})
	}

	if len(faqs) > maxFAQs {
		faqs = faqs[:maxFAQs]
	}
	return faqs
}

// structuredDataFAQs scans <script type="application/ld+json"> blocks for
// FAQPage objects. Unparseable blocks are skipped; a block may hold one
// object or a list of them.
func structuredDataFAQs(home *goquery.Document) []models.FAQ {
	var faqs []models.FAQ
	home.Find(`script[type="application/ld+json"]`).Each(func(_ int, s *goquery.Selection) {
		for _, obj := range parseLDObjects(s.Text()) {
			if !strings.EqualFold(obj.Type, "FAQPage") {
				continue
			}
			items := obj.MainEntity
			if len(items) == 0 {
				items = obj.MainEntityOfPage
			}
			for _, q := range items {
				question := q.Name
				if question == "" {
					question = q.Question
				}
				var answer string
				if q.AcceptedAnswer != nil {
					answer = stripMarkup(q.AcceptedAnswer.Text)
				}
				question = strings.TrimSpace(question)
				if question != "" && answer != "" {
					faqs = append(faqs, models.FAQ{Question: question, Answer: answer})
				}
			}
		}
	})
	return faqs
}

// parseLDObjects decodes a JSON-LD payload as a single object or a list of
// objects. Malformed payloads yield nothing.
func parseLDObjects(data string) []ldObject {
	data = strings.TrimSpace(data)

	var obj ldObject
	if err := json.Unmarshal([]byte(data), &obj); err == nil {
		return []ldObject{obj}
	}

	var list []ldObject
	if err := json.Unmarshal([]byte(data), &list); err == nil {
		return list
	}
	return nil
}

// stripMarkup drops any embedded HTML from a structured-data answer,
// leaving collapsed plain text.
func stripMarkup(s string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return strings.TrimSpace(s)
	}
	return visibleText(doc.Selection)
}

// headingFAQs scans a fetched page for h1-h4 headings and treats each as a
// question, answered by the text of up to 5 immediately-following sibling
// elements, stopping early at the next heading. Headings with no answer
// text are skipped.
func headingFAQs(page string) []models.FAQ {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return nil
	}

	var faqs []models.FAQ
	doc.Find("h1,h2,h3,h4").Each(func(_ int, h *goquery.Selection) {
		question := visibleText(h)
		if len([]rune(question)) < minHeadingLen {
			return
		}

		var chunks []string
		sib := h.Next()
		for steps := 0; steps < maxAnswerSiblings && sib.Length() > 0; steps++ {
			if isHeading(goquery.NodeName(sib)) {
				break
			}
			if t := visibleText(sib); t != "" {
				chunks = append(chunks, t)
			}
			sib = sib.Next()
		}

		answer := strings.TrimSpace(strings.Join(chunks, " "))
		if answer != "" {
			faqs = append(faqs, models.FAQ{
				Question: question,
				Answer:   truncate(answer, fallbackAnswerLimit),
			})
		}
	})
	return faqs
}

func isHeading(name string) bool {
	switch name {
	case "h1", "h2", "h3", "h4":
		return true
	}
	return false
}
