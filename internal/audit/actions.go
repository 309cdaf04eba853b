package audit

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/shopaudit/models"
	"github.com/dtnitsch/shopaudit/pkg/cache"
	"github.com/dtnitsch/shopaudit/pkg/fetcher"
)

// NewService wires a Service from config; the cache is attached only
// when a cache path is configured.
func NewService(cfg models.Config, logger *slog.Logger) (*Service, func(), error) {
	f := fetcher.NewFetcher(cfg.FetchTimeout(), cfg.UserAgent)

	var pageCache PageCache
	cleanup := func() {}
	if cfg.CachePath != "" {
		c, err := cache.Open(cfg.CachePath, cfg.CacheTTL())
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open fetch cache: %w", err)
		}
		pageCache = c
		cleanup = func() { _ = c.Close() }
	}

	return New(f, pageCache, logger, cfg), cleanup, nil
}

func newLogger(quiet bool) *slog.Logger {
	level := slog.LevelInfo
	if quiet {
		level = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// AuditAction runs a one-shot audit (--url) or a batch (--urls) and
// prints the JSON result to stdout.
func AuditAction(c *cli.Context) error {
	logger := newLogger(c.Bool("quiet"))

	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return err
	}
	if c.Int("workers") > 0 {
		cfg.WorkerCount = c.Int("workers")
	}

	svc, cleanup, err := NewService(cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	if c.IsSet("urls") {
		if c.IsSet("url") {
			return fmt.Errorf("use either --url or --urls, not both")
		}
		urls := strings.Split(c.String("urls"), ",")
		for i := range urls {
			urls[i] = strings.TrimSpace(urls[i])
		}
		results := svc.RunBatch(c.Context, urls, cfg.WorkerCount)
		return printJSON(results)
	}

	url := c.String("url")
	if url == "" {
		return fmt.Errorf("--url is required (or --urls for a batch)")
	}

	report, err := svc.Run(c.Context, models.AuditRequest{
		WebsiteURL: url,
		AmazonASIN: c.String("asin"),
	})
	if err != nil {
		return err
	}
	return printJSON(report)
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
