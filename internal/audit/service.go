// Package audit orchestrates a single audit run: fetch, extract,
// score, assemble.
package audit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dtnitsch/shopaudit/models"
	"github.com/dtnitsch/shopaudit/pkg/extractor"
	"github.com/dtnitsch/shopaudit/pkg/scoring"
)

// ErrMissingWebsiteURL is returned when a request carries no website
// URL. The HTTP layer maps it to a 400.
var ErrMissingWebsiteURL = errors.New("Website URL required")

// PageFetcher retrieves raw markup for a URL.
type PageFetcher interface {
	FetchBytes(ctx context.Context, url string) ([]byte, error)
}

// PageCache is an optional markup cache consulted before the network.
type PageCache interface {
	Get(url string) ([]byte, bool)
	Set(url string, body []byte) error
}

type Service struct {
	fetcher PageFetcher
	cache   PageCache // may be nil
	logger  *slog.Logger
	cfg     models.Config
}

func New(fetcher PageFetcher, cache PageCache, logger *slog.Logger, cfg models.Config) *Service {
	return &Service{
		fetcher: fetcher,
		cache:   cache,
		logger:  logger,
		cfg:     cfg,
	}
}

// NormalizeURL prepends https:// to scheme-less URLs.
func NormalizeURL(rawURL string) string {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return trimmed
	}
	if !strings.HasPrefix(trimmed, "http://") && !strings.HasPrefix(trimmed, "https://") {
		return "https://" + trimmed
	}
	return trimmed
}

// Run performs one audit. Only the website fetch is fatal; a failed
// listing fetch degrades to a not-found record.
func (s *Service) Run(ctx context.Context, req models.AuditRequest) (*models.AuditReport, error) {
	if strings.TrimSpace(req.WebsiteURL) == "" {
		return nil, ErrMissingWebsiteURL
	}

	websiteURL := NormalizeURL(req.WebsiteURL)
	asin := strings.TrimSpace(req.AmazonASIN)

	var siteHTML []byte
	var listing *models.ListingSignals

	// The two fetches are independent; run them concurrently.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		body, err := s.fetchPage(gctx, websiteURL)
		if err != nil {
			return fmt.Errorf("website fetch failed: %w", err)
		}
		siteHTML = body
		return nil
	})
	if asin != "" {
		g.Go(func() error {
			listingURL := fmt.Sprintf("https://%s/dp/%s", s.cfg.AmazonDomain, asin)
			body, err := s.fetchPage(gctx, listingURL)
			if err != nil {
				s.logger.Warn("listing fetch failed, degrading to not found",
					"asin", asin, "error", err)
				notFound := extractor.NotFoundListing(asin, listingURL)
				listing = &notFound
				return nil
			}
			signals := extractor.Listing(body, asin, listingURL)
			listing = &signals
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	website, err := extractor.Website(siteHTML, websiteURL)
	if err != nil {
		return nil, fmt.Errorf("failed to extract website signals: %w", err)
	}

	signals := models.Signals{Website: website, Listing: listing}
	categories := scoring.ScoreAll(signals)

	report := &models.AuditReport{
		OverallScore:       scoring.OverallScore(categories),
		Domain:             website.Domain,
		WebsiteURL:         websiteURL,
		Timestamp:          time.Now().UTC(),
		Categories:         categories,
		TopRecommendations: scoring.TopRecommendations(categories),
		AllDetails:         tagCategories(categories),
	}
	if asin != "" {
		report.AmazonASIN = &asin
	}

	s.logger.Info("audit complete",
		"domain", website.Domain,
		"overall_score", report.OverallScore,
		"listing_requested", asin != "")

	return report, nil
}

func (s *Service) fetchPage(ctx context.Context, url string) ([]byte, error) {
	if s.cache != nil {
		if body, ok := s.cache.Get(url); ok {
			s.logger.Info("cache hit", "url", url)
			return body, nil
		}
	}

	body, err := s.fetcher.FetchBytes(ctx, url)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(url, body); err != nil {
			s.logger.Warn("failed to cache page", "url", url, "error", err)
		}
	}
	return body, nil
}

// tagCategories reproduces the redundant allDetails shape: every
// category result re-tagged with its own category name.
func tagCategories(categories []models.CategoryScore) []models.CategoryDetails {
	tagged := make([]models.CategoryDetails, len(categories))
	for i, c := range categories {
		tagged[i] = models.CategoryDetails{Category: c.Category, Details: c}
	}
	return tagged
}
