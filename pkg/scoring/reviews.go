package scoring

import (
	"fmt"

	"github.com/dtnitsch/shopaudit/models"
)

// ReviewScorer rates social proof on the marketplace listing: star
// rating and review volume. Without a listing it short-circuits to a
// zero score.
type ReviewScorer struct{}

func (ReviewScorer) Score(s models.Signals) models.CategoryScore {
	l := s.Listing
	if l == nil || !l.Found {
		return models.CategoryScore{
			Category: models.CategoryReviews,
			Score:    0,
			MaxScore: maxScore,
			Details: []models.Detail{negative(
				"Amazon listing not found or not provided",
				"N/A")},
			ImpactSummary:  "20-35% conversion impact",
			ListingSignals: l,
		}
	}

	score := 50
	var details []models.Detail

	switch {
	case l.Rating >= 4.5:
		score += 25
		details = append(details, positive(
			fmt.Sprintf("Excellent rating (%.1f stars)", l.Rating),
			"Top-tier ratings dominate the buy box"))
	case l.Rating >= 4.0:
		score += 15
		details = append(details, positive(
			fmt.Sprintf("Good rating (%.1f stars)", l.Rating),
			"Strong ratings sustain organic rank"))
	case l.Rating >= 3.5:
		score += 5
		details = append(details, negative(
			fmt.Sprintf("Below-average rating (%.1f stars)", l.Rating),
			"20% of shoppers filter out products under 4 stars"))
	default:
		details = append(details, negative(
			fmt.Sprintf("Poor rating (%.1f stars)", l.Rating),
			"50% conversion drop is typical below 3.5 stars"))
	}

	switch {
	case l.ReviewCount >= 200:
		score += 25
		details = append(details, positive(
			fmt.Sprintf("Deep review base (%d reviews)", l.ReviewCount),
			"Large review counts signal an established product"))
	case l.ReviewCount >= 50:
		score += 15
		details = append(details, positive(
			fmt.Sprintf("Healthy review base (%d reviews)", l.ReviewCount),
			"Review volume supports shopper trust"))
	case l.ReviewCount >= 10:
		score += 5
		details = append(details, negative(
			fmt.Sprintf("Modest review base (%d reviews)", l.ReviewCount),
			"15% conversion lift available from growing past 50 reviews"))
	default:
		details = append(details, negative(
			fmt.Sprintf("Very few reviews (%d)", l.ReviewCount),
			"35% of buyers skip products with almost no reviews"))
	}

	// Low velocity flag; can co-occur with the bracket above.
	if l.ReviewCount > 0 && l.ReviewCount < 20 {
		details = append(details, negative(
			"Low review velocity; consider a post-purchase review program",
			"10% monthly review growth keeps rank momentum"))
	}

	return models.CategoryScore{
		Category:       models.CategoryReviews,
		Score:          capScore(score),
		MaxScore:       maxScore,
		Details:        details,
		ImpactSummary:  "20-35% conversion impact",
		ListingSignals: l,
	}
}
