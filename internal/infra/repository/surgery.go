package repository

import (
	"context"

	"hospital-ops/internal/domain/surgery"
	"hospital-ops/internal/infra"
	"hospital-ops/internal/infra/db"
	"hospital-ops/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	insertSurgerySQL = `INSERT INTO surgeries
  (id, patient_name, procedure, surgeon, priority, estimated_duration, status, start_time, end_time, notes, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	findSurgerySQL = `SELECT id, patient_name, procedure, surgeon, priority, estimated_duration, status,
       start_time, end_time, notes, created_at, updated_at
FROM surgeries
WHERE id = $1`

	updateSurgerySQL = `UPDATE surgeries
SET patient_name = $2, procedure = $3, surgeon = $4, priority = $5, estimated_duration = $6,
    status = $7, start_time = $8, end_time = $9, notes = $10, updated_at = $11
WHERE id = $1`

	deleteSurgerySQL = `DELETE FROM surgeries WHERE id = $1`
)

type SurgeryRepository struct {
	db db.DBTX
}

func NewSurgeryRepository(db db.DBTX) *SurgeryRepository {
	return &SurgeryRepository{db: db}
}

func (r *SurgeryRepository) Create(ctx context.Context, s *surgery.Surgery) error {
	_, err := r.db.Exec(ctx, insertSurgerySQL,
		s.ID(), s.PatientName(), s.Procedure(), s.Surgeon(), string(s.Priority()), s.EstimatedDuration(),
		string(s.Status()), pgconv.TimePtrToPgtype(s.StartTime()), pgconv.TimePtrToPgtype(s.EndTime()),
		s.Notes(), s.CreatedAt(), s.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create surgery", err)
	}
	return nil
}

func (r *SurgeryRepository) FindByID(ctx context.Context, id uuid.UUID) (*surgery.Surgery, error) {
	var (
		sid                             uuid.UUID
		patientName, procedure, surgeon string
		priority, status, notes         string
		duration                        int32
		startTime, endTime              pgtype.Timestamptz
		createdAt, updatedAt            pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, findSurgerySQL, id).Scan(
		&sid, &patientName, &procedure, &surgeon, &priority, &duration, &status,
		&startTime, &endTime, &notes, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find surgery", err)
	}

	return surgery.ReconstructSurgery(
		sid, patientName, procedure, surgeon,
		surgery.Priority(priority), int(duration), surgery.Status(status),
		pgconv.TimePtrFromPgtype(startTime), pgconv.TimePtrFromPgtype(endTime),
		notes, pgconv.TimeFromPgtype(createdAt), pgconv.TimeFromPgtype(updatedAt),
	), nil
}

func (r *SurgeryRepository) Update(ctx context.Context, s *surgery.Surgery) error {
	tag, err := r.db.Exec(ctx, updateSurgerySQL,
		s.ID(), s.PatientName(), s.Procedure(), s.Surgeon(), string(s.Priority()), s.EstimatedDuration(),
		string(s.Status()), pgconv.TimePtrToPgtype(s.StartTime()), pgconv.TimePtrToPgtype(s.EndTime()),
		s.Notes(), s.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update surgery", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("surgery not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *SurgeryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, deleteSurgerySQL, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete surgery", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("surgery not found", nil, infra.KindNotFound)
	}
	return nil
}
