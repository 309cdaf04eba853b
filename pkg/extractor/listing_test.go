package extractor

import (
	"testing"

	"github.com/dtnitsch/shopaudit/models"
)

const listingHTML = `<!DOCTYPE html>
<html>
<body>
<span id="productTitle"> Walnut Desk Organizer with Phone Stand </span>
<span class="a-icon-alt">4.6 out of 5 stars</span>
<span id="acrCustomerReviewText">1,234 ratings</span>
<span class="a-price"><span class="a-offscreen">$39.99</span></span>
</body>
</html>`

func TestListing_ExtractsSignals(t *testing.T) {
	got := Listing([]byte(listingHTML), "B0EXAMPLE1", "https://www.amazon.com/dp/B0EXAMPLE1")

	if !got.Found {
		t.Fatal("Found = false, want true")
	}
	if got.ProductID != "B0EXAMPLE1" {
		t.Errorf("ProductID = %q", got.ProductID)
	}
	if got.Title != "Walnut Desk Organizer with Phone Stand" {
		t.Errorf("Title = %q", got.Title)
	}
	if got.Rating != 4.6 {
		t.Errorf("Rating = %v, want 4.6", got.Rating)
	}
	if got.ReviewCount != 1234 {
		t.Errorf("ReviewCount = %d, want 1234", got.ReviewCount)
	}
	if got.Price != "39.99" {
		t.Errorf("Price = %q, want 39.99", got.Price)
	}
}

func TestListing_NoTitleMeansNotFound(t *testing.T) {
	got := Listing([]byte("<html><body><p>Page not found</p></body></html>"),
		"B0MISSING0", "https://www.amazon.com/dp/B0MISSING0")

	if got.Found {
		t.Error("Found = true, want false for a page without a product title")
	}
	if got.Price != models.PriceUnavailable {
		t.Errorf("Price = %q, want the unavailable sentinel", got.Price)
	}
	if got.ProductID != "B0MISSING0" {
		t.Errorf("ProductID = %q", got.ProductID)
	}
}

func TestListing_MissingWidgetsDegradeToZeroValues(t *testing.T) {
	html := `<html><body><span id="productTitle">Bare Listing</span></body></html>`
	got := Listing([]byte(html), "B0BARE0001", "https://www.amazon.com/dp/B0BARE0001")

	if !got.Found {
		t.Fatal("Found = false, want true")
	}
	if got.Rating != 0 {
		t.Errorf("Rating = %v, want 0", got.Rating)
	}
	if got.ReviewCount != 0 {
		t.Errorf("ReviewCount = %d, want 0", got.ReviewCount)
	}
	if got.Price != models.PriceUnavailable {
		t.Errorf("Price = %q, want the unavailable sentinel", got.Price)
	}
}

func TestListing_EuropeanPriceSymbolStripped(t *testing.T) {
	html := `<html><body>
<span id="productTitle">Organizer</span>
<span class="a-price"><span class="a-offscreen">€1,299.00</span></span>
</body></html>`
	got := Listing([]byte(html), "B0EURO0001", "https://www.amazon.de/dp/B0EURO0001")
	if got.Price != "1299.00" {
		t.Errorf("Price = %q, want 1299.00", got.Price)
	}
}
