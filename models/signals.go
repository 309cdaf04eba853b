// Package models defines the data contracts shared by the extractor,
// the scorers and the report boundary.
package models

// WebsiteSignals is the flat record of facts extracted from a merchant
// website. It is produced once per audit and never mutated afterwards.
type WebsiteSignals struct {
	Title              string `json:"title"`
	Description        string `json:"description"`
	H1Count            int    `json:"h1Count"`
	Images             int    `json:"images"`
	ProductImages      int    `json:"productImages"`
	HasSSL             bool   `json:"hasSSL"`
	HasAbout           bool   `json:"hasAbout"`
	HasFAQ             bool   `json:"hasFAQ"`
	HasContactInfo     bool   `json:"hasContactInfo"`
	HasReturnPolicy    bool   `json:"hasReturnPolicy"`
	HasLiveChat        bool   `json:"hasLiveChat"`
	HasSchema          bool   `json:"hasSchema"`
	Paragraphs         int    `json:"paragraphs"`
	DescriptionQuality int    `json:"descriptionQuality"` // descriptive keyword match count
	PageSize           int    `json:"pageSize"`           // byte length of the raw markup
	Domain             string `json:"domain"`
	Language           string `json:"language,omitempty"` // ISO-639-1 if detectable
}

// PriceUnavailable is the sentinel used when no price could be read
// from a listing page.
const PriceUnavailable = "unavailable"

// ListingSignals is the flat record of facts extracted from a
// marketplace listing page. Found is false when the listing could not
// be fetched or the page carried no recognizable product data; scorers
// that depend on listing data short-circuit on it.
type ListingSignals struct {
	ProductID   string  `json:"productId"`
	Found       bool    `json:"found"`
	Title       string  `json:"title"`
	Rating      float64 `json:"rating"` // 0-5, 0 when unknown
	ReviewCount int     `json:"reviewCount"`
	Price       string  `json:"price"` // decimal text or PriceUnavailable
	SourceURL   string  `json:"sourceUrl"`
}

// Signals bundles the two signal records for a single audit. Listing is
// nil when no product ID was requested.
type Signals struct {
	Website WebsiteSignals
	Listing *ListingSignals
}
