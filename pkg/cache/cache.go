// Package cache stores fetched markup in a local SQLite database so
// repeated audits of the same URL within the max-age window skip the
// network round trip.
package cache

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS pages (
	url        TEXT PRIMARY KEY,
	body       BLOB NOT NULL,
	fetched_at INTEGER NOT NULL
);
`

type Cache struct {
	db     *sql.DB
	maxAge time.Duration
}

// Open opens or creates the cache database at path. A maxAge of zero
// disables reads: Get always misses, Set still records.
func Open(path string, maxAge time.Duration) (*Cache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize cache schema: %w", err)
	}
	return &Cache{db: db, maxAge: maxAge}, nil
}

func (c *Cache) Close() error {
	return c.db.Close()
}

// Get returns the cached body for url and true on a fresh hit.
func (c *Cache) Get(url string) ([]byte, bool) {
	if c.maxAge <= 0 {
		return nil, false
	}

	var body []byte
	var fetchedAt int64
	err := c.db.QueryRow(
		"SELECT body, fetched_at FROM pages WHERE url = ?", url,
	).Scan(&body, &fetchedAt)
	if err != nil {
		return nil, false
	}

	if time.Since(time.Unix(fetchedAt, 0)) > c.maxAge {
		return nil, false
	}
	return body, true
}

// Set stores the body for url, replacing any previous entry.
func (c *Cache) Set(url string, body []byte) error {
	_, err := c.db.Exec(
		"INSERT INTO pages (url, body, fetched_at) VALUES (?, ?, ?) "+
			"ON CONFLICT(url) DO UPDATE SET body = excluded.body, fetched_at = excluded.fetched_at",
		url, body, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to write cache entry: %w", err)
	}
	return nil
}
