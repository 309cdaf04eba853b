// Package scoring implements the rule-based audit engine: six
// independent category scorers plus the aggregation that turns their
// findings into an overall score and a prioritized recommendation
// list.
package scoring

import "github.com/dtnitsch/shopaudit/models"

// Scorer evaluates one category from the extracted signals. Scorers
// are pure: the same signals always produce the same CategoryScore.
type Scorer interface {
	Score(s models.Signals) models.CategoryScore
}

// Scorers returns the six category scorers in their fixed evaluation
// order. The order is part of the report contract; do not reorder.
func Scorers() []Scorer {
	return []Scorer{
		ProductDataScorer{},
		ReviewScorer{},
		PricingScorer{},
		TrustScorer{},
		KeywordScorer{},
		TechnicalScorer{},
	}
}

const maxScore = 100

// capScore applies the ceiling clamp shared by five of the six
// categories. There is deliberately no floor: stacked penalties may
// drive a category negative, matching long-standing report behavior.
func capScore(score int) int {
	if score > maxScore {
		return maxScore
	}
	return score
}

// clampScore floors at 0 and caps at 100. Only the technical category
// uses the floor.
func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	return capScore(score)
}

func positive(text, impact string) models.Detail {
	return models.Detail{IsPositive: true, Text: text, ImpactText: impact}
}

func negative(text, impact string) models.Detail {
	return models.Detail{IsPositive: false, Text: text, ImpactText: impact}
}
