package scoring

import "github.com/dtnitsch/shopaudit/models"

// TrustScorer checks the credibility surface of the merchant site.
// Every flag contributes independently; live chat is bonus-only and
// emits no finding when absent.
type TrustScorer struct{}

func (TrustScorer) Score(s models.Signals) models.CategoryScore {
	w := s.Website
	score := 0
	var details []models.Detail

	if w.HasSSL {
		score += 20
		details = append(details, positive(
			"SSL certificate active",
			"Encrypted checkout is table stakes for trust"))
	} else {
		details = append(details, negative(
			"No SSL detected",
			"85% of shoppers abandon sites flagged as not secure"))
	}

	if w.HasAbout {
		score += 20
		details = append(details, positive(
			"About page present",
			"Brand story pages humanize the store"))
	} else {
		details = append(details, negative(
			"No About page found",
			"25% of first-time buyers check who they are buying from"))
	}

	if w.HasFAQ {
		score += 15
		details = append(details, positive(
			"FAQ section present",
			"Self-serve answers reduce pre-sale friction"))
	} else {
		details = append(details, negative(
			"No FAQ section found",
			"20% of support volume is answerable by a FAQ"))
	}

	if w.HasContactInfo {
		score += 20
		details = append(details, positive(
			"Contact information visible",
			"Reachable merchants convert hesitant buyers"))
	} else {
		details = append(details, negative(
			"No contact information found",
			"30% of shoppers distrust stores with no contact route"))
	}

	if w.HasReturnPolicy {
		score += 15
		details = append(details, positive(
			"Return policy published",
			"Clear returns remove the riskiest objection"))
	} else {
		details = append(details, negative(
			"No return policy found",
			"40% of shoppers check the return policy before paying"))
	}

	if w.HasLiveChat {
		score += 10
		details = append(details, positive(
			"Live chat available",
			"Real-time answers rescue on-the-fence sessions"))
	}

	return models.CategoryScore{
		Category:      models.CategoryTrust,
		Score:         capScore(score),
		MaxScore:      maxScore,
		Details:       details,
		ImpactSummary: "15-25% conversion impact",
	}
}
