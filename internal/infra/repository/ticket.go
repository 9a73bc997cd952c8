package repository

import (
	"context"
	"time"

	"hospital-ops/internal/domain/ticket"
	"hospital-ops/internal/infra"
	"hospital-ops/internal/infra/db"
	"hospital-ops/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	// The upsert takes a row lock on the day's counter, so concurrent issuers are
	// serialized until the surrounding transaction ends.
	nextTicketSequenceSQL = `INSERT INTO ticket_sequences (day, last_value)
VALUES ($1, 1)
ON CONFLICT (day) DO UPDATE SET last_value = ticket_sequences.last_value + 1
RETURNING last_value`

	insertTicketSQL = `INSERT INTO queue_tickets
  (id, number, patient_name, department, priority, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	findTicketSQL = `SELECT id, number, patient_name, department, priority, status, created_at, updated_at
FROM queue_tickets
WHERE id = $1`

	updateTicketStatusSQL = `UPDATE queue_tickets SET status = $2, updated_at = $3 WHERE id = $1`

	deleteTicketSQL = `DELETE FROM queue_tickets WHERE id = $1`
)

type TicketRepository struct {
	db db.DBTX
}

func NewTicketRepository(db db.DBTX) *TicketRepository {
	return &TicketRepository{db: db}
}

func (r *TicketRepository) NextSequence(ctx context.Context, day time.Time) (int64, error) {
	var seq int64
	if err := r.db.QueryRow(ctx, nextTicketSequenceSQL, pgconv.DateToPgtype(day)).Scan(&seq); err != nil {
		return 0, infra.WrapRepoErr("failed to allocate ticket sequence", err)
	}
	return seq, nil
}

func (r *TicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	_, err := r.db.Exec(ctx, insertTicketSQL,
		t.ID(), t.Number().String(), t.PatientName(), t.Department(),
		string(t.Priority()), string(t.Status()), t.CreatedAt(), t.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create ticket", err)
	}
	return nil
}

func (r *TicketRepository) FindByID(ctx context.Context, id uuid.UUID) (*ticket.Ticket, error) {
	var (
		tid                             uuid.UUID
		number, patientName, department string
		priority, status                string
		createdAt, updatedAt            pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, findTicketSQL, id).Scan(
		&tid, &number, &patientName, &department, &priority, &status, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find ticket", err)
	}

	n, err := ticket.ParseNumber(number)
	if err != nil {
		return nil, infra.WrapRepoErr("stored ticket number is malformed", err)
	}

	return ticket.ReconstructTicket(
		tid, n, patientName, department,
		ticket.Priority(priority), ticket.Status(status),
		pgconv.TimeFromPgtype(createdAt), pgconv.TimeFromPgtype(updatedAt),
	), nil
}

func (r *TicketRepository) UpdateStatus(ctx context.Context, t *ticket.Ticket) error {
	tag, err := r.db.Exec(ctx, updateTicketStatusSQL, t.ID(), string(t.Status()), t.UpdatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to update ticket status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("ticket not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *TicketRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, deleteTicketSQL, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete ticket", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("ticket not found", nil, infra.KindNotFound)
	}
	return nil
}
