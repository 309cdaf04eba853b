package scoring

import (
	"fmt"

	"github.com/dtnitsch/shopaudit/models"
	"github.com/shopspring/decimal"
)

var (
	priceBudgetCeil = decimal.NewFromInt(50)
	priceMidCeil    = decimal.NewFromInt(200)
)

// PricingScorer places the listing price into a rough positioning
// bracket. Without real competitor data every bracket is a positive
// finding; the missing-benchmark gap is reported as a fixed negative.
type PricingScorer struct{}

func (PricingScorer) Score(s models.Signals) models.CategoryScore {
	l := s.Listing
	unknown := l == nil || !l.Found || l.Price == models.PriceUnavailable

	var price decimal.Decimal
	if !unknown {
		var err error
		price, err = decimal.NewFromString(l.Price)
		if err != nil {
			// An unparseable price carries no more information than the
			// sentinel.
			unknown = true
		}
	}

	if unknown {
		return models.CategoryScore{
			Category: models.CategoryPricing,
			Score:    50,
			MaxScore: maxScore,
			Details: []models.Detail{negative(
				"Price unavailable; listing not found or price hidden",
				"Unknown")},
			ImpactSummary:  "10-20% conversion impact",
			ListingSignals: l,
		}
	}

	score := 60
	var details []models.Detail

	switch {
	case price.IsPositive() && price.LessThan(priceBudgetCeil):
		score += 15
		details = append(details, positive(
			fmt.Sprintf("Budget-friendly price point ($%s)", price.StringFixed(2)),
			"Impulse-purchase territory widens the audience"))
	case price.GreaterThanOrEqual(priceBudgetCeil) && price.LessThan(priceMidCeil):
		score += 20
		details = append(details, positive(
			fmt.Sprintf("Mid-range price point ($%s) sits in the conversion sweet spot", price.StringFixed(2)),
			"Mid-range pricing balances margin and volume"))
	default:
		score += 10
		details = append(details, positive(
			fmt.Sprintf("Premium price point ($%s)", price.StringFixed(2)),
			"Premium pricing supports a quality narrative"))
	}

	details = append(details, negative(
		"No competitor price data available for benchmarking",
		"15% margin opportunity often found through competitive repricing"))

	return models.CategoryScore{
		Category:       models.CategoryPricing,
		Score:          capScore(score),
		MaxScore:       maxScore,
		Details:        details,
		ImpactSummary:  "10-20% conversion impact",
		ListingSignals: l,
	}
}
