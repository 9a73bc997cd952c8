//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hospital-ops/internal/pkg/clock"
	"hospital-ops/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var generatedAt = time.Date(2024, 3, 20, 9, 0, 0, 0, time.UTC)

type fakeTicketStore struct {
	queries.TicketReadStore
	open  []*queries.TicketView
	calls int
}

func (s *fakeTicketStore) ListOpen(_ context.Context, department *string) ([]*queries.TicketView, error) {
	s.calls++
	var out []*queries.TicketView
	for _, t := range s.open {
		if department == nil || t.Department == *department {
			out = append(out, t)
		}
	}
	return out, nil
}

type fakeTheatreStore struct {
	queries.TheatreReadStore
	theatres []*queries.TheatreView
	calls    int
}

func (s *fakeTheatreStore) List(context.Context) ([]*queries.TheatreView, error) {
	s.calls++
	return s.theatres, nil
}

// brokenCache fails every call the way a down Redis or an open breaker does.
type brokenCache struct {
	err  error
	sets int
}

func (c *brokenCache) Get(context.Context, string, any) (bool, error) { return false, c.err }

func (c *brokenCache) Set(context.Context, string, any) error {
	c.sets++
	return c.err
}

// memoryCache stores values by key without any encoding.
type memoryCache struct {
	items map[string]any
}

func (c *memoryCache) Get(_ context.Context, key string, dst any) (bool, error) {
	v, ok := c.items[key]
	if !ok {
		return false, nil
	}
	switch d := dst.(type) {
	case *queries.QueueFeedView:
		*d = *v.(*queries.QueueFeedView)
	case *queries.TheatreFeedView:
		*d = *v.(*queries.TheatreFeedView)
	}
	return true, nil
}

func (c *memoryCache) Set(_ context.Context, key string, value any) error {
	c.items[key] = value
	return nil
}

func ticketRows() []*queries.TicketView {
	return []*queries.TicketView{
		{ID: uuid.New(), Number: "240320-001", Department: "OPD", Priority: "normal", Status: "waiting"},
		{ID: uuid.New(), Number: "240320-002", Department: "ER", Priority: "emergency", Status: "waiting"},
	}
}

func TestDisplayFeedQueries_QueueFeed(t *testing.T) {
	ctx := context.Background()

	cacheFailures := []struct {
		name string
		err  error
	}{
		{name: "redis unreachable", err: errors.New("dial tcp 127.0.0.1:6379: connect: connection refused")},
		{name: "breaker open", err: gobreaker.ErrOpenState},
	}
	for _, tc := range cacheFailures {
		t.Run("falls back to the store when "+tc.name, func(t *testing.T) {
			store := &fakeTicketStore{open: ticketRows()}
			cache := &brokenCache{err: tc.err}
			q := queries.NewDisplayFeedQueries(store, &fakeTheatreStore{}, cache, clock.NewMockClock(generatedAt))

			feed, err := q.QueueFeed(ctx, " OPD ")
			require.NoError(t, err)
			assert.Equal(t, "OPD", feed.Department)
			assert.Equal(t, generatedAt, feed.GeneratedAt)
			require.Len(t, feed.Tickets, 1)
			assert.Equal(t, "240320-001", feed.Tickets[0].Number)

			assert.Equal(t, 1, store.calls)
			assert.Equal(t, 1, cache.sets)
		})
	}

	t.Run("cache hit skips the store", func(t *testing.T) {
		store := &fakeTicketStore{open: ticketRows()}
		cache := &memoryCache{items: map[string]any{}}
		q := queries.NewDisplayFeedQueries(store, &fakeTheatreStore{}, cache, clock.NewMockClock(generatedAt))

		first, err := q.QueueFeed(ctx, "")
		require.NoError(t, err)
		second, err := q.QueueFeed(ctx, "")
		require.NoError(t, err)

		assert.Equal(t, 1, store.calls)
		assert.Equal(t, first, second)
		assert.Len(t, second.Tickets, 2)
	})

	t.Run("works without a cache", func(t *testing.T) {
		store := &fakeTicketStore{open: ticketRows()}
		q := queries.NewDisplayFeedQueries(store, &fakeTheatreStore{}, nil, clock.NewMockClock(generatedAt))

		feed, err := q.QueueFeed(ctx, "")
		require.NoError(t, err)
		assert.Len(t, feed.Tickets, 2)
	})
}

func TestDisplayFeedQueries_TheatreFeed(t *testing.T) {
	ctx := context.Background()
	end := generatedAt.Add(time.Hour)
	store := &fakeTheatreStore{theatres: []*queries.TheatreView{{
		ID:     uuid.New(),
		Name:   "OT-1",
		Status: "occupied",
		Schedule: []queries.ScheduleEntryView{
			{ID: uuid.New(), StartTime: generatedAt.Add(-2 * time.Hour), EndTime: &end, Status: "completed"},
			{ID: uuid.New(), StartTime: generatedAt, EndTime: &end, Status: "in-progress"},
			{ID: uuid.New(), StartTime: end, Status: "cancelled"},
			{ID: uuid.New(), StartTime: end, Status: "scheduled"},
		},
	}}}
	cache := &brokenCache{err: gobreaker.ErrOpenState}
	q := queries.NewDisplayFeedQueries(&fakeTicketStore{}, store, cache, clock.NewMockClock(generatedAt))

	feed, err := q.TheatreFeed(ctx)
	require.NoError(t, err)
	require.Len(t, feed.Theatres, 1)

	var statuses []string
	for _, e := range feed.Theatres[0].Schedule {
		statuses = append(statuses, e.Status)
	}
	assert.Equal(t, []string{"in-progress", "scheduled"}, statuses)
	assert.Len(t, store.theatres[0].Schedule, 4)
	assert.Equal(t, 1, store.calls)
}
