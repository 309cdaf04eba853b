package scoring

import (
	"testing"

	"github.com/dtnitsch/shopaudit/models"
)

func TestPricingScorer_UnknownPrice(t *testing.T) {
	cases := map[string]models.Signals{
		"no listing":        {},
		"not found":         listingSignals(func(l *models.ListingSignals) { l.Found = false }),
		"sentinel price":    listingSignals(func(l *models.ListingSignals) { l.Price = models.PriceUnavailable }),
		"unparseable price": listingSignals(func(l *models.ListingSignals) { l.Price = "call for pricing" }),
	}

	for name, s := range cases {
		t.Run(name, func(t *testing.T) {
			got := PricingScorer{}.Score(s)
			if got.Score != 50 {
				t.Errorf("Score = %d, want 50", got.Score)
			}
			if len(got.Details) != 1 {
				t.Fatalf("got %d details, want exactly 1", len(got.Details))
			}
			if got.Details[0].ImpactText != "Unknown" {
				t.Errorf("ImpactText = %q, want %q", got.Details[0].ImpactText, "Unknown")
			}
		})
	}
}

func TestPricingScorer_Brackets(t *testing.T) {
	tests := []struct {
		price string
		want  int
	}{
		{"0.01", 75},   // budget: 60 + 15
		{"49.99", 75},  // budget upper edge
		{"50.00", 80},  // mid-range: 60 + 20
		{"199.99", 80}, // mid-range upper edge
		{"200.00", 70}, // premium: 60 + 10
		{"999.00", 70},
		{"0", 70},  // non-positive lands in the premium branch
		{"-5", 70}, // same branch
	}

	for _, tt := range tests {
		got := PricingScorer{}.Score(listingSignals(func(l *models.ListingSignals) {
			l.Price = tt.price
		}))
		if got.Score != tt.want {
			t.Errorf("price %s: Score = %d, want %d", tt.price, got.Score, tt.want)
		}
	}
}

func TestPricingScorer_AlwaysFlagsMissingBenchmark(t *testing.T) {
	got := PricingScorer{}.Score(listingSignals(nil))
	if len(got.Details) != 2 {
		t.Fatalf("got %d details, want 2 (bracket + benchmark gap)", len(got.Details))
	}
	if got.Details[0].IsPositive != true {
		t.Error("bracket detail should be positive")
	}
	if got.Details[1].IsPositive != false {
		t.Error("benchmark detail should be negative")
	}
}
