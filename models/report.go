package models

import "time"

// AuditRequest is the input to a single audit run.
type AuditRequest struct {
	WebsiteURL string `json:"websiteUrl"`
	AmazonASIN string `json:"amazonASIN,omitempty"`
}

// CategoryDetails re-tags a CategoryScore with its own category name.
// The shape is redundant but kept for compatibility with existing
// report consumers.
type CategoryDetails struct {
	Category Category      `json:"category"`
	Details  CategoryScore `json:"details"`
}

// AuditReport is the final shape exposed at the boundary.
type AuditReport struct {
	OverallScore       int               `json:"overallScore"`
	Domain             string            `json:"domain"`
	WebsiteURL         string            `json:"websiteUrl"`
	AmazonASIN         *string           `json:"amazonASIN"`
	Timestamp          time.Time         `json:"timestamp"`
	Categories         []CategoryScore   `json:"categories"`
	TopRecommendations []Recommendation  `json:"topRecommendations"`
	AllDetails         []CategoryDetails `json:"allDetails"`
}
