package extractor

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/dtnitsch/shopaudit/models"
)

// NotFoundListing is the degraded record used when a listing page
// could not be fetched or parsed. It never fails an audit.
func NotFoundListing(productID, sourceURL string) models.ListingSignals {
	return models.ListingSignals{
		ProductID: productID,
		Found:     false,
		Price:     models.PriceUnavailable,
		SourceURL: sourceURL,
	}
}

// Listing extracts ListingSignals from a marketplace product page.
// A page without a recognizable product title is treated as not found.
func Listing(rawHTML []byte, productID, sourceURL string) models.ListingSignals {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(rawHTML))
	if err != nil {
		return NotFoundListing(productID, sourceURL)
	}

	title := strings.TrimSpace(doc.Find("#productTitle").First().Text())
	if title == "" {
		return NotFoundListing(productID, sourceURL)
	}

	return models.ListingSignals{
		ProductID:   productID,
		Found:       true,
		Title:       title,
		Rating:      extractRating(doc),
		ReviewCount: extractReviewCount(doc),
		Price:       extractPrice(doc),
		SourceURL:   sourceURL,
	}
}

// extractRating parses the "4.6 out of 5 stars" widget text.
func extractRating(doc *goquery.Document) float64 {
	text := doc.Find("span.a-icon-alt").First().Text()
	if text == "" {
		text = doc.Find("#acrPopover").First().AttrOr("title", "")
	}
	idx := strings.Index(strings.ToLower(text), " out of")
	if idx < 0 {
		return 0
	}
	rating, err := strconv.ParseFloat(strings.TrimSpace(text[:idx]), 64)
	if err != nil || rating < 0 || rating > 5 {
		return 0
	}
	return rating
}

// extractReviewCount pulls the digits out of "1,234 ratings".
func extractReviewCount(doc *goquery.Document) int {
	text := doc.Find("#acrCustomerReviewText").First().Text()
	var digits strings.Builder
	for _, r := range text {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0
	}
	n, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0
	}
	return n
}

// extractPrice reads the buy-box price, stripping currency symbol and
// thousands separators so the scorer can parse it as a decimal.
func extractPrice(doc *goquery.Document) string {
	text := strings.TrimSpace(doc.Find("span.a-price span.a-offscreen").First().Text())
	if text == "" {
		text = strings.TrimSpace(doc.Find("#priceblock_ourprice").First().Text())
	}
	if text == "" {
		return models.PriceUnavailable
	}
	cleaned := strings.NewReplacer("$", "", "£", "", "€", "", ",", "").Replace(text)
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return models.PriceUnavailable
	}
	return cleaned
}
