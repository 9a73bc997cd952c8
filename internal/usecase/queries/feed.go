package queries

import (
	"context"
	"log/slog"
	"strings"

	"hospital-ops/internal/domain/theatre"
	"hospital-ops/internal/pkg/clock"
)

const (
	queueFeedKeyPrefix = "display:feed:queue:"
	theatreFeedKey     = "display:feed:theatres"
)

// FeedCache stores rendered board feeds for a short time. A miss reports false with a nil error.
type FeedCache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, value any) error
}

type DisplayFeedQueries interface {
	QueueFeed(ctx context.Context, department string) (*QueueFeedView, error)
	TheatreFeed(ctx context.Context) (*TheatreFeedView, error)
}

type displayFeedQueriesImpl struct {
	tickets  TicketReadStore
	theatres TheatreReadStore
	cache    FeedCache
	clock    clock.Clock
}

func NewDisplayFeedQueries(tickets TicketReadStore, theatres TheatreReadStore, cache FeedCache, clk clock.Clock) DisplayFeedQueries {
	return &displayFeedQueriesImpl{
		tickets:  tickets,
		theatres: theatres,
		cache:    cache,
		clock:    clk,
	}
}

func (q *displayFeedQueriesImpl) QueueFeed(ctx context.Context, department string) (*QueueFeedView, error) {
	department = strings.TrimSpace(department)
	key := queueFeedKeyPrefix + department

	var cached QueueFeedView
	if q.fromCache(ctx, key, &cached) {
		return &cached, nil
	}

	var filter *string
	if department != "" {
		filter = &department
	}
	rows, err := q.tickets.ListOpen(ctx, filter)
	if err != nil {
		return nil, err
	}

	feed := &QueueFeedView{
		Department:  department,
		GeneratedAt: q.clock.Now(),
		Tickets:     make([]TicketView, 0, len(rows)),
	}
	for _, r := range rows {
		feed.Tickets = append(feed.Tickets, *r)
	}

	q.toCache(ctx, key, feed)
	return feed, nil
}

func (q *displayFeedQueriesImpl) TheatreFeed(ctx context.Context) (*TheatreFeedView, error) {
	var cached TheatreFeedView
	if q.fromCache(ctx, theatreFeedKey, &cached) {
		return &cached, nil
	}

	rows, err := q.theatres.List(ctx)
	if err != nil {
		return nil, err
	}

	feed := &TheatreFeedView{
		GeneratedAt: q.clock.Now(),
		Theatres:    make([]TheatreView, 0, len(rows)),
	}
	for _, r := range rows {
		t := *r
		t.Schedule = activeEntries(r.Schedule)
		feed.Theatres = append(feed.Theatres, t)
	}

	q.toCache(ctx, theatreFeedKey, feed)
	return feed, nil
}

// A broken cache only costs a database read.
func (q *displayFeedQueriesImpl) fromCache(ctx context.Context, key string, dst any) bool {
	if q.cache == nil {
		return false
	}
	hit, err := q.cache.Get(ctx, key, dst)
	if err != nil {
		slog.Warn("display feed cache read failed", "key", key, "error", err.Error())
		return false
	}
	return hit
}

func (q *displayFeedQueriesImpl) toCache(ctx context.Context, key string, value any) {
	if q.cache == nil {
		return
	}
	if err := q.cache.Set(ctx, key, value); err != nil {
		slog.Warn("display feed cache write failed", "key", key, "error", err.Error())
	}
}

func activeEntries(entries []ScheduleEntryView) []ScheduleEntryView {
	active := make([]ScheduleEntryView, 0, len(entries))
	for _, e := range entries {
		if theatre.EntryStatus(e.Status).IsTerminal() {
			continue
		}
		active = append(active, e)
	}
	return active
}
