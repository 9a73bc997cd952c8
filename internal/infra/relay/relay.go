package relay

import (
	"context"
	"log/slog"
	"time"

	"hospital-ops/internal/infra/repository"
	"hospital-ops/internal/pkg/breaker"
	"hospital-ops/internal/pkg/clock"
	"hospital-ops/internal/pkg/config"
	"hospital-ops/internal/pkg/errs"
	"hospital-ops/internal/pkg/metrics"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sony/gobreaker"
)

const (
	maxBackoff    = 5 * time.Minute
	baseBackoff   = 2 * time.Second
	batchDeadline = 30 * time.Second
	maxErrorText  = 500
)

type Publisher interface {
	Publish(ctx context.Context, topic, messageID string, payload []byte) error
}

// Queue is the slice of the outbox table one batch works on.
type Queue interface {
	ClaimDue(ctx context.Context, now time.Time, limit int32) ([]repository.OutboxEvent, error)
	MarkSent(ctx context.Context, id uuid.UUID, at time.Time) error
	MarkRetry(ctx context.Context, id uuid.UUID, lastErr string, runAt time.Time, failed bool, at time.Time) error
}

// BatchRunner runs fn inside one transaction and commits when it returns nil.
type BatchRunner func(ctx context.Context, fn func(ctx context.Context, q Queue) error) error

func NewPgBatchRunner(pool *pgxpool.Pool) BatchRunner {
	return func(ctx context.Context, fn func(ctx context.Context, q Queue) error) error {
		return pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
			return fn(ctx, repository.NewOutboxRepository(tx))
		})
	}
}

// Relay drains due outbox rows to the broker. Delivery is at least once.
type Relay struct {
	run       BatchRunner
	publisher Publisher
	clock     clock.Clock
	cfg       config.RelayConfig
	dbCB      *gobreaker.CircuitBreaker
}

func New(run BatchRunner, publisher Publisher, clk clock.Clock, cfg config.RelayConfig) *Relay {
	return &Relay{
		run:       run,
		publisher: publisher,
		clock:     clk,
		cfg:       cfg,
		dbCB:      breaker.New("Relay-PostgreSQL", 10*time.Second),
	}
}

// Start polls until ctx is cancelled.
func (r *Relay) Start(ctx context.Context) error {
	ticker := time.NewTicker(r.cfg.PollInterval)
	defer ticker.Stop()

	slog.Info("outbox relay started",
		"poll_interval", r.cfg.PollInterval.String(),
		"batch_size", r.cfg.BatchSize)

	for {
		if _, err := r.ProcessBatch(ctx); err != nil && !errs.Is(err, gobreaker.ErrOpenState) {
			slog.Error("outbox batch failed", "error", err.Error())
		}

		select {
		case <-ctx.Done():
			slog.Info("outbox relay stopping")
			return nil
		case <-ticker.C:
		}
	}
}

// ProcessBatch publishes one batch and returns how many events reached the broker.
func (r *Relay) ProcessBatch(ctx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, batchDeadline)
	defer cancel()

	published := 0
	_, err := r.dbCB.Execute(func() (interface{}, error) {
		published = 0
		return nil, r.run(ctx, func(ctx context.Context, q Queue) error {
			now := r.clock.Now()
			events, err := q.ClaimDue(ctx, now, r.cfg.BatchSize)
			if err != nil {
				return err
			}

			for _, e := range events {
				pubErr := r.publisher.Publish(ctx, e.Topic, e.ID.String(), e.Payload)
				if pubErr == nil {
					metrics.OutboxPublished.WithLabelValues("sent").Inc()
					published++
					if err := q.MarkSent(ctx, e.ID, now); err != nil {
						return err
					}
					continue
				}

				attempts := e.Attempts + 1
				failed := attempts >= r.cfg.MaxAttempts
				if failed {
					metrics.OutboxPublished.WithLabelValues("failed").Inc()
					slog.Error("outbox event parked after max attempts",
						"event_id", e.ID.String(),
						"kind", e.Kind,
						"attempts", attempts,
						"error", pubErr.Error())
				} else {
					metrics.OutboxPublished.WithLabelValues("retry").Inc()
					slog.Warn("outbox publish failed, will retry",
						"event_id", e.ID.String(),
						"kind", e.Kind,
						"attempts", attempts,
						"error", pubErr.Error())
				}

				runAt := now.Add(Backoff(attempts))
				if err := q.MarkRetry(ctx, e.ID, truncate(pubErr.Error(), maxErrorText), runAt, failed, now); err != nil {
					return err
				}
			}
			return nil
		})
	})
	return published, err
}

// Backoff doubles from two seconds and caps at five minutes.
func Backoff(attempts int32) time.Duration {
	if attempts < 1 {
		attempts = 1
	}
	d := baseBackoff
	for i := int32(1); i < attempts; i++ {
		d *= 2
		if d >= maxBackoff {
			return maxBackoff
		}
	}
	return d
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
