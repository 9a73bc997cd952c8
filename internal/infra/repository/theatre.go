package repository

import (
	"context"

	"hospital-ops/internal/domain/theatre"
	"hospital-ops/internal/infra"
	"hospital-ops/internal/infra/db"
	"hospital-ops/internal/infra/repository/converter"
	"hospital-ops/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	insertTheatreSQL = `INSERT INTO operation_theatres
  (id, name, status, current_surgery_id, schedule, equipment, version, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	findTheatreSQL = `SELECT id, name, status, current_surgery_id, schedule, equipment, version, created_at, updated_at
FROM operation_theatres
WHERE id = $1`

	updateTheatreSQL = `UPDATE operation_theatres
SET status = $2, current_surgery_id = $3, schedule = $4, equipment = $5,
    version = version + 1, updated_at = $6
WHERE id = $1 AND version = $7`
)

type TheatreRepository struct {
	db db.DBTX
}

func NewTheatreRepository(db db.DBTX) *TheatreRepository {
	return &TheatreRepository{db: db}
}

func (r *TheatreRepository) Create(ctx context.Context, t *theatre.Theatre) error {
	schedule, err := converter.ScheduleToJSON(t.Schedule())
	if err != nil {
		return infra.WrapRepoErr("failed to encode theatre schedule", err)
	}
	equipment, err := converter.EquipmentToJSON(t.Equipment())
	if err != nil {
		return infra.WrapRepoErr("failed to encode theatre equipment", err)
	}

	_, err = r.db.Exec(ctx, insertTheatreSQL,
		t.ID(), t.Name(), string(t.Status()), pgconv.UUIDPtrToPgtype(t.CurrentSurgeryID()),
		schedule, equipment, t.Version(), t.CreatedAt(), t.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create theatre", err)
	}
	return nil
}

func (r *TheatreRepository) FindByID(ctx context.Context, id uuid.UUID) (*theatre.Theatre, error) {
	t, err := scanTheatre(r.db.QueryRow(ctx, findTheatreSQL, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find theatre", err)
	}
	return t, nil
}

func (r *TheatreRepository) Update(ctx context.Context, t *theatre.Theatre) error {
	schedule, err := converter.ScheduleToJSON(t.Schedule())
	if err != nil {
		return infra.WrapRepoErr("failed to encode theatre schedule", err)
	}
	equipment, err := converter.EquipmentToJSON(t.Equipment())
	if err != nil {
		return infra.WrapRepoErr("failed to encode theatre equipment", err)
	}

	tag, err := r.db.Exec(ctx, updateTheatreSQL,
		t.ID(), string(t.Status()), pgconv.UUIDPtrToPgtype(t.CurrentSurgeryID()),
		schedule, equipment, t.UpdatedAt(), t.Version(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update theatre", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.StaleVersion("theatre was modified concurrently")
	}
	return nil
}

func scanTheatre(row pgx.Row) (*theatre.Theatre, error) {
	var (
		id                 uuid.UUID
		name, status       string
		currentSurgery     pgtype.UUID
		schedule, equipRaw []byte
		version            int32
		createdAt          pgtype.Timestamptz
		updatedAt          pgtype.Timestamptz
	)
	if err := row.Scan(&id, &name, &status, &currentSurgery, &schedule, &equipRaw, &version, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	entries, err := converter.ScheduleFromJSON(schedule)
	if err != nil {
		return nil, err
	}
	equipment, err := converter.EquipmentFromJSON(equipRaw)
	if err != nil {
		return nil, err
	}

	return theatre.ReconstructTheatre(
		id, name, theatre.Status(status), pgconv.UUIDPtrFromPgtype(currentSurgery),
		entries, equipment, version,
		pgconv.TimeFromPgtype(createdAt), pgconv.TimeFromPgtype(updatedAt),
	), nil
}
