package audit

import (
	"context"
	"sync"

	"github.com/dtnitsch/shopaudit/models"
)

// Job is one unit of batch work.
type Job struct {
	WebsiteURL string
}

// Result holds the outcome of one batch audit.
type Result struct {
	WebsiteURL string              `json:"websiteUrl"`
	Report     *models.AuditReport `json:"report,omitempty"`
	Error      string              `json:"error,omitempty"`
	Status     string              `json:"status"`
}

// RunBatch audits several websites concurrently with a fixed worker
// pool. Results come back in input order; a failed audit fills the
// Error field instead of aborting the run.
func (s *Service) RunBatch(ctx context.Context, urls []string, workers int) []Result {
	if workers <= 0 {
		workers = 4
	}
	if workers > len(urls) {
		workers = len(urls)
	}

	jobs := make(chan int, len(urls))
	results := make([]Result, len(urls))

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for i := range jobs {
				url := urls[i]
				s.logger.Info("worker started audit", "worker_id", id, "url", url)
				report, err := s.Run(ctx, models.AuditRequest{WebsiteURL: url})
				if err != nil {
					s.logger.Error("audit failed", "worker_id", id, "url", url, "error", err)
					results[i] = Result{WebsiteURL: url, Error: err.Error(), Status: "failed"}
					continue
				}
				results[i] = Result{WebsiteURL: url, Report: report, Status: "success"}
			}
		}(w + 1)
	}

	for i := range urls {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results
}
