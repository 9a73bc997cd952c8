package repository

import (
	"context"
	"time"

	"hospital-ops/internal/infra"
	"hospital-ops/internal/infra/db"
	"hospital-ops/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	OutboxStatusQueued = "queued"
	OutboxStatusSent   = "sent"
	OutboxStatusFailed = "failed"
)

const insertOutboxEventSQL = `INSERT INTO outbox_events (id, kind, topic, payload, status, run_at, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $6, $6)`

// Rows stay locked until the surrounding transaction ends, so concurrent relays skip them.
const claimDueOutboxEventsSQL = `SELECT id, kind, topic, payload, attempts
FROM outbox_events
WHERE status = 'queued' AND run_at <= $1
ORDER BY run_at, created_at
LIMIT $2
FOR UPDATE SKIP LOCKED`

const markOutboxEventSentSQL = `UPDATE outbox_events
SET status = 'sent', attempts = attempts + 1, last_error = NULL, updated_at = $2
WHERE id = $1`

const markOutboxEventRetrySQL = `UPDATE outbox_events
SET status = $2, attempts = attempts + 1, last_error = $3, run_at = $4, updated_at = $5
WHERE id = $1`

type OutboxEvent struct {
	ID       uuid.UUID
	Kind     string
	Topic    string
	Payload  []byte
	Attempts int32
}

type OutboxRepository struct {
	db db.DBTX
}

func NewOutboxRepository(db db.DBTX) *OutboxRepository {
	return &OutboxRepository{db: db}
}

func (r *OutboxRepository) Enqueue(ctx context.Context, msg shared.OutboxMessage) error {
	id := msg.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	_, err := r.db.Exec(ctx, insertOutboxEventSQL, id, msg.Kind, msg.Topic, msg.Payload, OutboxStatusQueued, msg.RunAt)
	if err != nil {
		return infra.WrapRepoErr("failed to enqueue outbox event", err)
	}
	return nil
}

func (r *OutboxRepository) ClaimDue(ctx context.Context, now time.Time, limit int32) ([]OutboxEvent, error) {
	rows, err := r.db.Query(ctx, claimDueOutboxEventsSQL, now, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim outbox events", err)
	}
	defer rows.Close()

	var events []OutboxEvent
	for rows.Next() {
		var e OutboxEvent
		if err := rows.Scan(&e.ID, &e.Kind, &e.Topic, &e.Payload, &e.Attempts); err != nil {
			return nil, infra.WrapRepoErr("failed to scan outbox event", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate outbox events", err)
	}
	return events, nil
}

func (r *OutboxRepository) MarkSent(ctx context.Context, id uuid.UUID, at time.Time) error {
	if _, err := r.db.Exec(ctx, markOutboxEventSentSQL, id, at); err != nil {
		return infra.WrapRepoErr("failed to mark outbox event sent", err)
	}
	return nil
}

// MarkRetry records a failed attempt. A failed event is parked and never claimed again.
func (r *OutboxRepository) MarkRetry(ctx context.Context, id uuid.UUID, lastErr string, runAt time.Time, failed bool, at time.Time) error {
	status := OutboxStatusQueued
	if failed {
		status = OutboxStatusFailed
	}
	if _, err := r.db.Exec(ctx, markOutboxEventRetrySQL, id, status, lastErr, runAt, at); err != nil {
		return infra.WrapRepoErr("failed to reschedule outbox event", err)
	}
	return nil
}
