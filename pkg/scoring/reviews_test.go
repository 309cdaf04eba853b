package scoring

import (
	"testing"

	"github.com/dtnitsch/shopaudit/models"
)

func listingSignals(mut func(*models.ListingSignals)) models.Signals {
	l := models.ListingSignals{
		ProductID:   "B0EXAMPLE1",
		Found:       true,
		Title:       "Walnut Desk Organizer",
		Rating:      4.6,
		ReviewCount: 320,
		Price:       "39.99",
		SourceURL:   "https://www.amazon.com/dp/B0EXAMPLE1",
	}
	if mut != nil {
		mut(&l)
	}
	return models.Signals{Listing: &l}
}

func TestReviewScorer_NotFound(t *testing.T) {
	for _, s := range []models.Signals{
		{},
		listingSignals(func(l *models.ListingSignals) { l.Found = false }),
	} {
		got := ReviewScorer{}.Score(s)
		if got.Score != 0 {
			t.Errorf("Score = %d, want 0", got.Score)
		}
		if len(got.Details) != 1 {
			t.Fatalf("got %d details, want exactly 1", len(got.Details))
		}
		if got.Details[0].IsPositive {
			t.Error("not-found detail should be negative")
		}
		if got.Details[0].ImpactText != "N/A" {
			t.Errorf("ImpactText = %q, want %q", got.Details[0].ImpactText, "N/A")
		}
	}
}

func TestReviewScorer_RatingBrackets(t *testing.T) {
	tests := []struct {
		rating   float64
		delta    int
		positive bool
	}{
		{4.5, 25, true},
		{4.0, 15, true},
		{3.5, 5, false},
		{3.4, 0, false},
		{0, 0, false},
	}

	for _, tt := range tests {
		got := ReviewScorer{}.Score(listingSignals(func(l *models.ListingSignals) {
			l.Rating = tt.rating
			l.ReviewCount = 0 // isolate the rating rule (+0, no velocity detail)
		}))
		want := 50 + tt.delta
		if got.Score != want {
			t.Errorf("rating %.1f: Score = %d, want %d", tt.rating, got.Score, want)
		}
		if got.Details[0].IsPositive != tt.positive {
			t.Errorf("rating %.1f: detail positive = %v, want %v", tt.rating, got.Details[0].IsPositive, tt.positive)
		}
	}
}

func TestReviewScorer_ReviewCountBrackets(t *testing.T) {
	tests := []struct {
		count int
		delta int
	}{
		{200, 25},
		{50, 15},
		{10, 5},
		{9, 0},
		{0, 0},
	}

	for _, tt := range tests {
		got := ReviewScorer{}.Score(listingSignals(func(l *models.ListingSignals) {
			l.Rating = 0 // +0 from the rating rule
			l.ReviewCount = tt.count
		}))
		want := 50 + tt.delta
		if got.Score != want {
			t.Errorf("count %d: Score = %d, want %d", tt.count, got.Score, want)
		}
	}
}

func TestReviewScorer_LowVelocityCoOccurs(t *testing.T) {
	// 15 reviews sits in the 10+ bracket AND triggers the velocity flag.
	got := ReviewScorer{}.Score(listingSignals(func(l *models.ListingSignals) {
		l.ReviewCount = 15
	}))
	if len(got.Details) != 3 {
		t.Fatalf("got %d details, want 3 (rating, count bracket, velocity)", len(got.Details))
	}
	last := got.Details[2]
	if last.IsPositive {
		t.Error("velocity detail should be negative")
	}

	// 25 reviews: bracket only, no velocity flag.
	got = ReviewScorer{}.Score(listingSignals(func(l *models.ListingSignals) {
		l.ReviewCount = 25
	}))
	if len(got.Details) != 2 {
		t.Errorf("got %d details, want 2", len(got.Details))
	}
}

func TestReviewScorer_CapsAt100(t *testing.T) {
	got := ReviewScorer{}.Score(listingSignals(func(l *models.ListingSignals) {
		l.Rating = 4.9
		l.ReviewCount = 5000
	}))
	if got.Score != 100 {
		t.Errorf("Score = %d, want 100", got.Score)
	}
}

func TestReviewScorer_AttachesListingCopy(t *testing.T) {
	s := listingSignals(nil)
	got := ReviewScorer{}.Score(s)
	if got.ListingSignals == nil {
		t.Fatal("ListingSignals not attached")
	}
	if got.ListingSignals.ProductID != "B0EXAMPLE1" {
		t.Errorf("ProductID = %q", got.ListingSignals.ProductID)
	}
}
