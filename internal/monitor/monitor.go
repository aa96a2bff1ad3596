// Package monitor runs one feed-checking pass: load seen state, diff each
// configured feed against it, persist the updated state, send the digest.
package monitor

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"slices"

	"github.com/sandovabarbora/articles-checker/internal/feeds"
	"github.com/sandovabarbora/articles-checker/internal/fetcher"
	"github.com/sandovabarbora/articles-checker/internal/filter"
	"github.com/sandovabarbora/articles-checker/internal/model"
	"github.com/sandovabarbora/articles-checker/internal/storage"
)

// Notifier is the interface for delivering the new-article digest.
type Notifier interface {
	Notify(ctx context.Context, articles []model.Article) error
}

// Monitor checks the journal registry for new articles and reports them.
type Monitor struct {
	registry feeds.Registry
	store    storage.Store
	fetcher  *fetcher.Fetcher
	notifier Notifier
	filters  []model.Filter
	log      *slog.Logger
}

// New creates a Monitor with the default HTTP client.
func New(registry feeds.Registry, store storage.Store, notifier Notifier, filters []model.Filter, log *slog.Logger) *Monitor {
	return NewWithFetcher(registry, store, fetcher.New(http.DefaultClient), notifier, filters, log)
}

// NewWithFetcher creates a Monitor with a custom fetcher (useful for testing).
func NewWithFetcher(registry feeds.Registry, store storage.Store, f *fetcher.Fetcher, notifier Notifier, filters []model.Filter, log *slog.Logger) *Monitor {
	return &Monitor{
		registry: registry,
		store:    store,
		fetcher:  f,
		notifier: notifier,
		filters:  filters,
		log:      log,
	}
}

// Run executes one full pass. Every failure localized to one feed, one
// entry, or one state read/write is logged and absorbed; only a digest
// delivery failure is returned. The updated seen state is persisted before
// the digest is sent, so a failed send never causes the same article to be
// reported again.
func (m *Monitor) Run(ctx context.Context) error {
	seen, err := m.store.Load()
	if err != nil {
		m.log.Error("load seen articles, starting from empty state", "error", err)
	}

	articles := m.collect(ctx, seen)

	if err := m.store.Save(seen); err != nil {
		m.log.Error("save seen articles, update lost for this run", "error", err)
	}

	if len(articles) == 0 {
		m.log.Info("no new articles")
		return nil
	}

	if err := m.notifier.Notify(ctx, articles); err != nil {
		m.log.Error("send digest", "error", err)
		return fmt.Errorf("notify: %w", err)
	}
	return nil
}

// collect fetches every registry feed in order and returns the new articles,
// appending their titles to seen as it goes. Within one run a title is
// reported at most once per journal even if the feed repeats it.
func (m *Monitor) collect(ctx context.Context, seen map[string][]string) []model.Article {
	var articles []model.Article

	for _, journal := range m.registry {
		if ctx.Err() != nil {
			return articles
		}

		m.log.Info("checking feed", "journal", journal.Name)

		if _, ok := seen[journal.Name]; !ok {
			seen[journal.Name] = []string{}
		}

		entries, err := m.fetcher.Fetch(ctx, journal.URL)
		if err != nil {
			m.log.Error("fetch feed failed after retries", "journal", journal.Name, "url", journal.URL, "error", err)
			continue
		}
		if len(entries) == 0 {
			m.log.Warn("no entries found", "journal", journal.Name)
			continue
		}

		for _, entry := range entries {
			if entry.Title == "" || entry.Link == "" {
				m.log.Error("malformed entry skipped", "journal", journal.Name, "title", entry.Title, "link", entry.Link)
				continue
			}
			if !filter.Match(entry.Title, m.filters) {
				continue
			}
			if slices.Contains(seen[journal.Name], entry.Title) {
				continue
			}

			articles = append(articles, model.Article{
				Journal: journal.Name,
				Title:   entry.Title,
				Link:    entry.Link,
			})
			seen[journal.Name] = append(seen[journal.Name], entry.Title)
			m.log.Info("new article found", "journal", journal.Name, "title", entry.Title)
		}
	}

	return articles
}
