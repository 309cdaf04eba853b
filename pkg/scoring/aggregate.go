package scoring

import (
	"math"
	"sort"

	"github.com/dtnitsch/shopaudit/models"
)

const (
	maxCollectedIssues = 10
	maxRecommendations = 5
)

// ScoreAll runs the six scorers in their fixed order.
func ScoreAll(s models.Signals) []models.CategoryScore {
	scorers := Scorers()
	results := make([]models.CategoryScore, 0, len(scorers))
	for _, sc := range scorers {
		results = append(results, sc.Score(s))
	}
	return results
}

// OverallScore is the unweighted mean of the category scores, rounded
// half up.
func OverallScore(categories []models.CategoryScore) int {
	if len(categories) == 0 {
		return 0
	}
	sum := 0
	for _, c := range categories {
		sum += c.Score
	}
	return int(math.Round(float64(sum) / float64(len(categories))))
}

// TopRecommendations collects negative details across all categories
// (category order, then insertion order), keeps the first 10, and
// returns the five with the largest parsed impact magnitude. The sort
// is stable, so details without a parseable number keep their relative
// order behind numbered ones.
func TopRecommendations(categories []models.CategoryScore) []models.Recommendation {
	var recs []models.Recommendation
	for _, c := range categories {
		for _, d := range c.Details {
			if d.IsPositive {
				continue
			}
			recs = append(recs, models.Recommendation{
				Issue:    d.Text,
				Impact:   d.ImpactText,
				Priority: "HIGH",
			})
			if len(recs) == maxCollectedIssues {
				break
			}
		}
		if len(recs) == maxCollectedIssues {
			break
		}
	}

	sort.SliceStable(recs, func(i, j int) bool {
		mi, _ := ImpactMagnitude(recs[i].Impact)
		mj, _ := ImpactMagnitude(recs[j].Impact)
		return mi > mj
	})

	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs
}
