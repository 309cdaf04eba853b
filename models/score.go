package models

// Category names one of the six fixed scoring dimensions. The audit
// always evaluates all six, in the order listed below.
type Category string

const (
	CategoryProductData Category = "Product Data & Content Quality"
	CategoryReviews     Category = "Review Authority & Trust"
	CategoryPricing     Category = "Pricing & Competitive Positioning"
	CategoryTrust       Category = "Trust, Credibility & Support"
	CategoryKeywords    Category = "Keyword Optimization & SEO"
	CategoryTechnical   Category = "Technical Performance & Site Health"
)

// Detail is one explanatory finding backing a category's score.
// ImpactText may lead with a numeric percentage; the aggregator parses
// it to rank recommendations.
type Detail struct {
	IsPositive bool   `json:"isPositive"`
	Text       string `json:"text"`
	ImpactText string `json:"impactText"`
}

// CategoryScore is the result of one scorer run. Details keep the
// evaluation order of the scorer; later stages slice by position, so
// insertion order is significant.
type CategoryScore struct {
	Category       Category        `json:"category"`
	Score          int             `json:"score"`
	MaxScore       int             `json:"maxScore"`
	Details        []Detail        `json:"details"`
	ImpactSummary  string          `json:"impactSummary"`
	ListingSignals *ListingSignals `json:"listingSignals,omitempty"`
}

// Recommendation is a prioritized action item derived from a negative
// detail. Priority is always "HIGH" in the current rule set.
type Recommendation struct {
	Issue    string `json:"issue"`
	Impact   string `json:"impact"`
	Priority string `json:"priority"`
}
