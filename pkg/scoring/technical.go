package scoring

import (
	"fmt"

	"github.com/dtnitsch/shopaudit/models"
)

const kb = 1024

// speedProxy derives a rough speed score from the raw page size. A
// page of exactly 300KB falls into the 75 bucket, not the 85 one.
func speedProxy(pageSize int) int {
	switch {
	case pageSize < 300*kb:
		return 85
	case pageSize < 500*kb:
		return 75
	case pageSize < 800*kb:
		return 65
	default:
		return 55
	}
}

// TechnicalScorer rates site health from the size-based speed proxy
// and SSL. This is the only category with a floor: heavy penalty
// stacking clamps to 0 instead of going negative.
type TechnicalScorer struct{}

func (TechnicalScorer) Score(s models.Signals) models.CategoryScore {
	w := s.Website
	score := 0
	var details []models.Detail

	speed := speedProxy(w.PageSize)
	switch {
	case speed >= 80:
		score += 25
		details = append(details, positive(
			fmt.Sprintf("Fast page profile (speed proxy %d)", speed),
			"Light pages keep mobile bounce low"))
	case speed >= 60:
		score += 15
		details = append(details, positive(
			fmt.Sprintf("Acceptable page weight (speed proxy %d)", speed),
			"Page weight is within tolerable range"))
	default:
		score -= 10
		details = append(details, negative(
			fmt.Sprintf("Heavy page (speed proxy %d)", speed),
			"53% of mobile visits abandon pages that take over 3 seconds"))
	}

	if w.Images > 15 {
		details = append(details, negative(
			fmt.Sprintf("High image count (%d) may slow the page", w.Images),
			"20% load-time reduction possible via lazy loading and compression"))
	}

	if w.HasSSL {
		score += 15
		details = append(details, positive(
			"HTTPS enabled",
			"Secure transport avoids browser warnings"))
	} else {
		score -= 10
		details = append(details, negative(
			"Site served without HTTPS",
			"100% of modern browsers flag plain HTTP as not secure"))
	}

	details = append(details, negative(
		"Core Web Vitals require live field testing for a definitive read",
		"Lab-only signals cannot replace real-user metrics"))

	return models.CategoryScore{
		Category:      models.CategoryTechnical,
		Score:         clampScore(score),
		MaxScore:      maxScore,
		Details:       details,
		ImpactSummary: "10-20% visibility impact",
	}
}
