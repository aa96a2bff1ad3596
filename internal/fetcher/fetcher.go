// Package fetcher handles feed downloading and parsing with retries.
package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/sethvargo/go-retry"

	"github.com/sandovabarbora/articles-checker/internal/model"
)

// Default retry policy: three attempts total, a constant delay in between.
const (
	DefaultAttempts   = 3
	DefaultRetryDelay = 5 * time.Second
)

// HTTPClient is the interface for performing HTTP requests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Fetcher downloads and parses feeds.
type Fetcher struct {
	client   HTTPClient
	timeout  time.Duration
	attempts int
	delay    time.Duration
}

// New creates a Fetcher with the given HTTP client and the default retry
// policy.
func New(client HTTPClient) *Fetcher {
	return &Fetcher{
		client:   client,
		timeout:  30 * time.Second,
		attempts: DefaultAttempts,
		delay:    DefaultRetryDelay,
	}
}

// SetRetryPolicy overrides the default attempt count and inter-attempt
// delay (useful for testing).
func (f *Fetcher) SetRetryPolicy(attempts int, delay time.Duration) {
	if attempts < 1 {
		attempts = 1
	}
	f.attempts = attempts
	f.delay = delay
}

// Fetch downloads and parses the feed at url, retrying any failure with a
// constant delay until the attempt budget is exhausted. On exhaustion it
// returns nil entries and the last error; the caller decides how to proceed.
// Entry fields are whitespace-trimmed but not validated.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]model.Entry, error) {
	backoff := retry.WithMaxRetries(uint64(f.attempts-1), retry.NewConstant(f.delay))

	var feed *gofeed.Feed
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		parsed, err := f.fetchOnce(ctx, url)
		if err != nil {
			return retry.RetryableError(err)
		}
		feed = parsed
		return nil
	})
	if err != nil {
		return nil, err
	}

	entries := make([]model.Entry, 0, len(feed.Items))
	for _, item := range feed.Items {
		entries = append(entries, model.Entry{
			Title: strings.TrimSpace(item.Title),
			Link:  strings.TrimSpace(item.Link),
		})
	}
	return entries, nil
}

func (f *Fetcher) fetchOnce(ctx context.Context, url string) (*gofeed.Feed, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", "JournalMonitor/1.0")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http get: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 5*1024*1024))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	parser := gofeed.NewParser()
	feed, err := parser.ParseString(string(body))
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}
	return feed, nil
}
