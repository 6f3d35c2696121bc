package catalog

import "souq/internal/domain"

// FeedState is the accumulated, ordered product feed a shopper scrolls
// through across successive "load more" triggers. It is a value: AppendPage
// returns a new state and never mutates its input.
type FeedState struct {
	Items      []domain.Product `json:"items"`
	PageNumber int              `json:"page"`
	TotalPages int              `json:"pages"`
	TotalItems int              `json:"total"`
	HasMore    bool             `json:"hasMore"`
}

// AppendPage interleaves a fetched page, rotates it against the current feed
// tail, and appends it. A page number of 1 (or lower) replaces the feed
// outright — that is the filters-changed reload, where rotating against the
// stale tail would be wrong. interleave should be false when a single
// category filter is active upstream, since there is nothing to interleave.
//
// Appending the same page number twice duplicates items; callers own the
// in-flight tracking that prevents that.
func AppendPage(state FeedState, page []domain.Product, meta domain.Pagination, interleave bool) FeedState {
	items := state.Items
	var tail *domain.Product
	if meta.Page <= 1 {
		items = nil
	} else if len(items) > 0 {
		tail = &items[len(items)-1]
	}

	if interleave {
		page = InterleaveByCategory(page)
	}
	page = RotateToAvoidRepeat(tail, page)

	next := make([]domain.Product, 0, len(items)+len(page))
	next = append(next, items...)
	next = append(next, page...)

	return FeedState{
		Items:      next,
		PageNumber: meta.Page,
		TotalPages: meta.Pages,
		TotalItems: meta.Total,
		HasMore:    meta.Page < meta.Pages,
	}
}
