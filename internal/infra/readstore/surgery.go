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
	surgeryColumns = `id, patient_name, procedure, surgeon, priority, estimated_duration, status,
       start_time, end_time, notes, created_at, updated_at`

	listSurgeriesSQL = `SELECT ` + surgeryColumns + `
FROM surgeries
WHERE ($1::text IS NULL OR status = $1)
ORDER BY created_at DESC, id DESC`

	findSurgeryByIDSQL = `SELECT ` + surgeryColumns + ` FROM surgeries WHERE id = $1`
)

type SurgeryReadStore struct {
	db db.DBTX
}

func NewSurgeryReadStore(db db.DBTX) *SurgeryReadStore {
	return &SurgeryReadStore{db: db}
}

func (r *SurgeryReadStore) List(ctx context.Context, status *string) ([]*queries.SurgeryView, error) {
	rows, err := r.db.Query(ctx, listSurgeriesSQL, pgconv.StringPtrToPgtype(status))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list surgeries", err)
	}
	return collectViews(rows, scanSurgeryView, "failed to list surgeries")
}

func (r *SurgeryReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.SurgeryView, error) {
	v, err := scanSurgeryView(r.db.QueryRow(ctx, findSurgeryByIDSQL, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find surgery", err)
	}
	return v, nil
}

func scanSurgeryView(row pgx.Row) (*queries.SurgeryView, error) {
	var (
		v                    queries.SurgeryView
		duration             int32
		start, end           pgtype.Timestamptz
		createdAt, updatedAt pgtype.Timestamptz
	)
	err := row.Scan(&v.ID, &v.PatientName, &v.Procedure, &v.Surgeon, &v.Priority, &duration, &v.Status,
		&start, &end, &v.Notes, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	v.EstimatedDuration = int(duration)
	v.StartTime = pgconv.TimePtrFromPgtype(start)
	v.EndTime = pgconv.TimePtrFromPgtype(end)
	v.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	v.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &v, nil
}
