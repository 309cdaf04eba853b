package scoring

import "github.com/dtnitsch/shopaudit/models"

// KeywordScorer rates on-page SEO basics: title and meta description
// length, heading focus, structured data. It only rewards an exactly
// single H1; zero or multiple H1s are the content scorer's concern.
type KeywordScorer struct{}

func (KeywordScorer) Score(s models.Signals) models.CategoryScore {
	w := s.Website
	score := 50
	var details []models.Detail

	if len(w.Title) > 30 {
		score += 15
		details = append(details, positive(
			"Title tag has substantial length",
			"Descriptive titles earn more qualified clicks"))
	} else {
		details = append(details, negative(
			"Title tag is short or missing",
			"35% CTR improvement possible from keyword-rich titles"))
	}

	if len(w.Description) > 100 {
		score += 15
		details = append(details, positive(
			"Meta description has substantial length",
			"Full-length descriptions own more SERP real estate"))
	} else {
		details = append(details, negative(
			"Meta description is short or missing",
			"30% of snippet clicks hinge on the meta description"))
	}

	if w.H1Count == 1 {
		score += 15
		details = append(details, positive(
			"Single focused H1 heading",
			"One clear topic per page helps ranking"))
	}

	if w.HasSchema {
		score += 10
		details = append(details, positive(
			"Structured data markup present",
			"Eligible for rich results"))
	} else {
		details = append(details, negative(
			"No structured data markup",
			"25% visibility gap versus competitors with rich snippets"))
	}

	details = append(details, negative(
		"Run a keyword gap analysis against the Amazon listing terms",
		"40% of high-intent search terms are typically uncovered this way"))

	return models.CategoryScore{
		Category:      models.CategoryKeywords,
		Score:         capScore(score),
		MaxScore:      maxScore,
		Details:       details,
		ImpactSummary: "25-40% visibility impact",
	}
}
