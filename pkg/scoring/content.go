package scoring

import (
	"fmt"

	"github.com/dtnitsch/shopaudit/models"
)

// ProductDataScorer rates the richness of the product presentation on
// the merchant site: imagery, description depth, structured data and
// heading hygiene.
type ProductDataScorer struct{}

func (ProductDataScorer) Score(s models.Signals) models.CategoryScore {
	w := s.Website
	score := 0
	var details []models.Detail

	// Image count
	switch {
	case w.Images >= 6:
		score += 20
		details = append(details, positive(
			fmt.Sprintf("Strong image coverage (%d images found)", w.Images),
			"Rich galleries keep shoppers on the page"))
	case w.Images >= 3:
		score += 10
		details = append(details, negative(
			fmt.Sprintf("Only %d images found; aim for 6 or more", w.Images),
			"20% higher conversion reported for listings with 6+ images"))
	default:
		details = append(details, negative(
			fmt.Sprintf("Too few images (%d found)", w.Images),
			"30% of shoppers abandon pages they cannot visually evaluate"))
	}

	// Product-specific imagery
	if w.ProductImages >= 3 {
		score += 15
		details = append(details, positive(
			fmt.Sprintf("Dedicated product imagery present (%d product images)", w.ProductImages),
			"Product close-ups build purchase confidence"))
	} else {
		score -= 5
		details = append(details, negative(
			"Few or no product-specific images detected",
			"25% of buyers cite missing product shots as a reason not to purchase"))
	}

	// Description quality (descriptive keyword match count)
	switch {
	case w.DescriptionQuality > 50:
		score += 20
		details = append(details, positive(
			"Detailed, benefit-rich product descriptions",
			"Thorough copy answers questions before they reach support"))
	case w.DescriptionQuality > 20:
		score += 10
		details = append(details, negative(
			"Descriptions cover the basics but lack depth",
			"15% conversion lift possible from richer feature and benefit copy"))
	default:
		score -= 10
		details = append(details, negative(
			"Thin product descriptions",
			"40% of returns trace back to products that did not match expectations"))
	}

	// Structured data
	if w.HasSchema {
		score += 15
		details = append(details, positive(
			"Schema.org product markup present",
			"Structured data unlocks rich results in search"))
	} else {
		details = append(details, negative(
			"No schema.org product markup found",
			"30% more search visibility available through rich snippets"))
	}

	// Heading hygiene. A page with no H1 at all gets neither credit nor
	// penalty here.
	if w.H1Count == 1 {
		score += 10
		details = append(details, positive(
			"Clean heading structure (single H1)",
			"A single H1 keeps the page topic unambiguous"))
	} else if w.H1Count > 1 {
		score -= 5
		details = append(details, negative(
			fmt.Sprintf("Multiple H1 headings found (%d)", w.H1Count),
			"10% SEO penalty risk from competing page topics"))
	}

	return models.CategoryScore{
		Category:      models.CategoryProductData,
		Score:         capScore(score),
		MaxScore:      maxScore,
		Details:       details,
		ImpactSummary: "15-30% conversion impact",
	}
}
