package readstore

import (
	"context"

	"hospital-ops/internal/infra"
	"hospital-ops/internal/infra/db"
	"hospital-ops/internal/pkg/pgconv"
	"hospital-ops/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	ticketColumns = `id, number, patient_name, department, priority, status, created_at, updated_at`

	ticketServingOrder = `ORDER BY CASE priority WHEN 'emergency' THEN 2 WHEN 'urgent' THEN 1 ELSE 0 END DESC,
         created_at ASC, id ASC`

	listTicketsSQL = `SELECT ` + ticketColumns + `
FROM queue_tickets
WHERE ($1::text IS NULL OR status = $1)
  AND ($2::text IS NULL OR department = $2)
` + ticketServingOrder

	listOpenTicketsSQL = `SELECT ` + ticketColumns + `
FROM queue_tickets
WHERE status IN ('waiting', 'in-progress')
  AND ($1::text IS NULL OR department = $1)
` + ticketServingOrder

	findTicketByIDSQL = `SELECT ` + ticketColumns + ` FROM queue_tickets WHERE id = $1`
)

type TicketReadStore struct {
	db db.DBTX
}

func NewTicketReadStore(db db.DBTX) *TicketReadStore {
	return &TicketReadStore{db: db}
}

func (r *TicketReadStore) List(ctx context.Context, status, department *string) ([]*queries.TicketView, error) {
	rows, err := r.db.Query(ctx, listTicketsSQL, pgconv.StringPtrToPgtype(status), pgconv.StringPtrToPgtype(department))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list tickets", err)
	}
	return collectViews(rows, scanTicketView, "failed to list tickets")
}

func (r *TicketReadStore) ListOpen(ctx context.Context, department *string) ([]*queries.TicketView, error) {
	rows, err := r.db.Query(ctx, listOpenTicketsSQL, pgconv.StringPtrToPgtype(department))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list open tickets", err)
	}
	return collectViews(rows, scanTicketView, "failed to list open tickets")
}

func (r *TicketReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.TicketView, error) {
	v, err := scanTicketView(r.db.QueryRow(ctx, findTicketByIDSQL, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find ticket", err)
	}
	return v, nil
}

func scanTicketView(row pgx.Row) (*queries.TicketView, error) {
	var (
		v                    queries.TicketView
		createdAt, updatedAt pgtype.Timestamptz
	)
	err := row.Scan(&v.ID, &v.Number, &v.PatientName, &v.Department, &v.Priority, &v.Status, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	v.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	v.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &v, nil
}
