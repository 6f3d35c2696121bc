package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"souq/internal/catalog"
	"souq/internal/domain"
	"souq/internal/services"
)

type fetcherFunc func(ctx context.Context, page int, category string, limit int) ([]domain.Product, domain.Pagination, error)

func (f fetcherFunc) FetchPage(ctx context.Context, page int, category string, limit int) ([]domain.Product, domain.Pagination, error) {
	return f(ctx, page, category, limit)
}

func staticPages(pages map[int][]domain.Product, total int) fetcherFunc {
	return func(_ context.Context, page int, _ string, _ int) ([]domain.Product, domain.Pagination, error) {
		return pages[page], domain.Pagination{Page: page, Pages: len(pages), Total: total}, nil
	}
}

func TestFeedService_AccumulatesPages(t *testing.T) {
	svc := services.NewFeedService(staticPages(map[int][]domain.Product{
		1: {{ID: "a", Category: "A"}, {ID: "b", Category: "B"}},
		2: {{ID: "c", Category: "A"}},
	}, 3), 10)

	state, err := svc.LoadNext(context.Background(), "s1")
	require.NoError(t, err)
	require.Len(t, state.Items, 2)
	require.True(t, state.HasMore)

	state, err = svc.LoadNext(context.Background(), "s1")
	require.NoError(t, err)
	require.Len(t, state.Items, 3)
	require.False(t, state.HasMore)

	// The feed is complete; another trigger is a no-op.
	state, err = svc.LoadNext(context.Background(), "s1")
	require.NoError(t, err)
	require.Len(t, state.Items, 3)
}

func TestFeedService_FeedsAreSessionScoped(t *testing.T) {
	svc := services.NewFeedService(staticPages(map[int][]domain.Product{
		1: {{ID: "a", Category: "A"}},
	}, 1), 10)

	_, err := svc.LoadNext(context.Background(), "s1")
	require.NoError(t, err)
	require.Empty(t, svc.Snapshot("s2").Items)
}

func TestFeedService_SecondTriggerWhileInFlight(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	fetcher := fetcherFunc(func(_ context.Context, page int, _ string, _ int) ([]domain.Product, domain.Pagination, error) {
		close(started)
		<-release
		return []domain.Product{{ID: "a", Category: "A"}}, domain.Pagination{Page: page, Pages: 2, Total: 2}, nil
	})
	svc := services.NewFeedService(fetcher, 10)

	done := make(chan catalog.FeedState, 1)
	go func() {
		state, err := svc.LoadNext(context.Background(), "s1")
		require.NoError(t, err)
		done <- state
	}()

	<-started
	_, err := svc.LoadNext(context.Background(), "s1")
	require.ErrorIs(t, err, services.ErrFeedBusy)

	close(release)
	select {
	case state := <-done:
		require.Len(t, state.Items, 1)
	case <-time.After(2 * time.Second):
		t.Fatal("first load never finished")
	}
}

func TestFeedService_FilterResetDiscardsLateResult(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	fetcher := fetcherFunc(func(_ context.Context, page int, category string, _ int) ([]domain.Product, domain.Pagination, error) {
		if category == "all" {
			close(started)
			<-release
		}
		return []domain.Product{{ID: category + "-1", Category: category}}, domain.Pagination{Page: page, Pages: 3, Total: 3}, nil
	})
	svc := services.NewFeedService(fetcher, 10)

	done := make(chan catalog.FeedState, 1)
	go func() {
		state, err := svc.LoadNext(context.Background(), "s1")
		require.NoError(t, err)
		done <- state
	}()

	<-started
	svc.SetCategory("s1", "Perfumes")
	close(release)

	select {
	case state := <-done:
		// The pre-reset page resolved after the filter change and must not
		// land in the fresh feed.
		require.Empty(t, state.Items)
	case <-time.After(2 * time.Second):
		t.Fatal("stale load never finished")
	}

	state, err := svc.LoadNext(context.Background(), "s1")
	require.NoError(t, err)
	require.Len(t, state.Items, 1)
	require.Equal(t, "Perfumes-1", state.Items[0].ID)
}

func TestFeedService_SetCategoryResetsState(t *testing.T) {
	svc := services.NewFeedService(staticPages(map[int][]domain.Product{
		1: {{ID: "a", Category: "A"}},
	}, 1), 10)

	_, err := svc.LoadNext(context.Background(), "s1")
	require.NoError(t, err)

	svc.SetCategory("s1", "Watches")
	require.Empty(t, svc.Snapshot("s1").Items)
	require.Equal(t, "Watches", svc.Category("s1"))
}
