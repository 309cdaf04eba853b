// Package extractor turns raw markup into the flat signal records the
// scorers consume. All checks are presence/absence heuristics; keyword
// matching is case-insensitive.
package extractor

import (
	"bytes"
	"net/url"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/dtnitsch/shopaudit/models"
	readability "github.com/go-shiori/go-readability"
	"github.com/pemistahl/lingua-go"
)

// descriptiveKeywords are the terms counted for the description
// quality signal. The score brackets in the content scorer are tuned
// against total match counts over this list.
var descriptiveKeywords = []string{
	"material", "fabric", "dimension", "size", "weight", "warranty",
	"guarantee", "feature", "benefit", "quality", "premium", "durable",
	"handmade", "organic", "waterproof", "lightweight", "adjustable",
	"comfortable", "washable", "includes", "designed", "certified",
}

var (
	langOnce     sync.Once
	langDetector lingua.LanguageDetector
)

// languageOf returns the ISO-639-1 code of the dominant language in
// text, or "" when detection is inconclusive. The detector is built
// lazily; constructing it is expensive.
func languageOf(text string) string {
	langOnce.Do(func() {
		langDetector = lingua.NewLanguageDetectorBuilder().
			FromLanguages(
				lingua.English, lingua.German, lingua.French,
				lingua.Spanish, lingua.Italian, lingua.Portuguese,
			).
			Build()
	})
	if strings.TrimSpace(text) == "" {
		return ""
	}
	lang, ok := langDetector.DetectLanguageOf(text)
	if !ok {
		return ""
	}
	return strings.ToLower(lang.IsoCode639_1().String())
}

// Website extracts WebsiteSignals from raw merchant-site markup.
func Website(rawHTML []byte, sourceURL string) (models.WebsiteSignals, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(rawHTML))
	if err != nil {
		return models.WebsiteSignals{}, err
	}

	lowerHTML := strings.ToLower(string(rawHTML))

	signals := models.WebsiteSignals{
		Title:           strings.TrimSpace(doc.Find("title").First().Text()),
		Description:     metaDescription(doc),
		H1Count:         doc.Find("h1").Length(),
		Images:          doc.Find("img").Length(),
		ProductImages:   countProductImages(doc),
		HasSSL:          strings.HasPrefix(sourceURL, "https://"),
		HasAbout:        containsAny(lowerHTML, "about us", "about-us", "/about", "our story"),
		HasFAQ:          containsAny(lowerHTML, "faq", "frequently asked"),
		HasContactInfo:  containsAny(lowerHTML, "contact us", "contact-us", "/contact", "mailto:", "tel:"),
		HasReturnPolicy: containsAny(lowerHTML, "return policy", "returns", "refund"),
		HasLiveChat:     containsAny(lowerHTML, "live chat", "livechat", "chat with us", "intercom", "tawk.to"),
		HasSchema:       containsAny(lowerHTML, "application/ld+json", "schema.org", "itemtype="),
		Paragraphs:      doc.Find("p").Length(),
		PageSize:        len(rawHTML),
		Domain:          domainOf(sourceURL),
	}

	text := mainText(rawHTML, sourceURL, doc)
	signals.DescriptionQuality = countKeywordMatches(text)
	signals.Language = languageOf(signals.Title + " " + signals.Description)

	return signals, nil
}

// mainText prefers the readability-distilled article text so that
// navigation and footer boilerplate do not inflate the keyword count.
// When distillation fails the full body text is used instead.
func mainText(rawHTML []byte, sourceURL string, doc *goquery.Document) string {
	if parsedURL, err := url.Parse(sourceURL); err == nil {
		parser := readability.NewParser()
		article, err := parser.Parse(bytes.NewReader(rawHTML), parsedURL)
		if err == nil && strings.TrimSpace(article.TextContent) != "" {
			return article.TextContent
		}
	}
	return doc.Find("body").Text()
}

func metaDescription(doc *goquery.Document) string {
	content, _ := doc.Find(`meta[name="description"]`).First().Attr("content")
	return strings.TrimSpace(content)
}

// countProductImages counts img elements whose src, alt or class hints
// at product photography.
func countProductImages(doc *goquery.Document) int {
	count := 0
	doc.Find("img").Each(func(_ int, s *goquery.Selection) {
		src, _ := s.Attr("src")
		alt, _ := s.Attr("alt")
		class, _ := s.Attr("class")
		hint := strings.ToLower(src + " " + alt + " " + class)
		if strings.Contains(hint, "product") {
			count++
		}
	})
	return count
}

func countKeywordMatches(text string) int {
	lower := strings.ToLower(text)
	total := 0
	for _, kw := range descriptiveKeywords {
		total += strings.Count(lower, kw)
	}
	return total
}

func containsAny(haystack string, needles ...string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}

func domainOf(sourceURL string) string {
	parsed, err := url.Parse(sourceURL)
	if err != nil || parsed.Host == "" {
		return sourceURL
	}
	return parsed.Host
}
