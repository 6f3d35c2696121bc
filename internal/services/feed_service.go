package services

import (
	"context"
	"errors"
	"sync"

	"souq/internal/catalog"
	"souq/internal/domain"
)

// ErrFeedBusy is returned when a load-more trigger arrives while a fetch for
// the same feed is already in flight. Callers show the current state and wait.
var ErrFeedBusy = errors.New("feed fetch already in flight")

// PageFetcher is the out-of-process collaborator that supplies catalog pages.
type PageFetcher interface {
	FetchPage(ctx context.Context, page int, category string, limit int) ([]domain.Product, domain.Pagination, error)
}

// FeedService drives one FeedState per shopper session. It owns the caller
// duties the pure accumulator leaves open: exactly one fetch in flight per
// feed, and discarding fetches that resolve after a filter reset.
type FeedService struct {
	fetcher  PageFetcher
	pageSize int

	mu    sync.Mutex
	feeds map[string]*feed
}

type feed struct {
	mu       sync.Mutex
	state    catalog.FeedState
	category string // "all" = no restriction, interleaving on
	epoch    int    // bumped on every filter reset
	inFlight bool
}

func NewFeedService(fetcher PageFetcher, pageSize int) *FeedService {
	if pageSize < 1 {
		pageSize = 20
	}
	return &FeedService{fetcher: fetcher, pageSize: pageSize, feeds: map[string]*feed{}}
}

func (s *FeedService) feedFor(sessionID string) *feed {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.feeds[sessionID]
	if !ok {
		f = &feed{category: "all"}
		s.feeds[sessionID] = f
	}
	return f
}

// Snapshot returns the feed as it currently stands.
func (s *FeedService) Snapshot(sessionID string) catalog.FeedState {
	f := s.feedFor(sessionID)
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Category returns the active category filter.
func (s *FeedService) Category(sessionID string) string {
	f := s.feedFor(sessionID)
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.category
}

// SetCategory resets the feed for a new filter. Any fetch still in flight is
// invalidated: its result will be discarded instead of appended to the fresh
// feed.
func (s *FeedService) SetCategory(sessionID, category string) {
	if category == "" {
		category = "all"
	}
	f := s.feedFor(sessionID)
	f.mu.Lock()
	defer f.mu.Unlock()
	f.category = category
	f.state = catalog.FeedState{}
	f.epoch++
}

// LoadNext fetches and appends the next page. A second trigger while a fetch
// is pending gets ErrFeedBusy rather than a duplicate page. When the feed is
// already complete the current state comes back unchanged.
func (s *FeedService) LoadNext(ctx context.Context, sessionID string) (catalog.FeedState, error) {
	f := s.feedFor(sessionID)

	f.mu.Lock()
	if f.inFlight {
		state := f.state
		f.mu.Unlock()
		return state, ErrFeedBusy
	}
	if f.state.PageNumber > 0 && !f.state.HasMore {
		state := f.state
		f.mu.Unlock()
		return state, nil
	}
	page := f.state.PageNumber + 1
	category := f.category
	epoch := f.epoch
	f.inFlight = true
	f.mu.Unlock()

	items, meta, err := s.fetcher.FetchPage(ctx, page, category, s.pageSize)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.inFlight = false
	if err != nil {
		return f.state, err
	}
	if f.epoch != epoch {
		// Filter changed while the fetch was out; the page is stale.
		return f.state, nil
	}
	f.state = catalog.AppendPage(f.state, items, meta, category == "all")
	return f.state, nil
}
