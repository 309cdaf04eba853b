package cache

import (
	"path/filepath"
	"testing"
	"time"
)

func openTestCache(t *testing.T, maxAge time.Duration) *Cache {
	t.Helper()
	c, err := Open(filepath.Join(t.TempDir(), "cache.db"), maxAge)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestCache_RoundTrip(t *testing.T) {
	c := openTestCache(t, time.Hour)

	if _, ok := c.Get("https://example.com"); ok {
		t.Fatal("Get() hit on an empty cache")
	}

	body := []byte("<html>cached</html>")
	if err := c.Set("https://example.com", body); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, ok := c.Get("https://example.com")
	if !ok {
		t.Fatal("Get() miss after Set()")
	}
	if string(got) != string(body) {
		t.Errorf("Get() = %q, want %q", got, body)
	}
}

func TestCache_SetReplaces(t *testing.T) {
	c := openTestCache(t, time.Hour)

	if err := c.Set("https://example.com", []byte("v1")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := c.Set("https://example.com", []byte("v2")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, ok := c.Get("https://example.com")
	if !ok || string(got) != "v2" {
		t.Errorf("Get() = (%q, %v), want (v2, true)", got, ok)
	}
}

func TestCache_ZeroMaxAgeDisablesReads(t *testing.T) {
	c := openTestCache(t, 0)

	if err := c.Set("https://example.com", []byte("body")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if _, ok := c.Get("https://example.com"); ok {
		t.Error("Get() hit with max age 0, want always-miss")
	}
}

func TestCache_ExpiredEntryMisses(t *testing.T) {
	c := openTestCache(t, 1*time.Second)

	if err := c.Set("https://example.com", []byte("body")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	// Backdate the entry past the max age.
	past := time.Now().Add(-2 * time.Second).Unix()
	if _, err := c.db.Exec("UPDATE pages SET fetched_at = ?", past); err != nil {
		t.Fatalf("failed to backdate entry: %v", err)
	}

	if _, ok := c.Get("https://example.com"); ok {
		t.Error("Get() hit on an expired entry")
	}
}
