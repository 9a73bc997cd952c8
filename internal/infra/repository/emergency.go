package repository

import (
	"context"

	"hospital-ops/internal/domain/emergency"
	"hospital-ops/internal/infra"
	"hospital-ops/internal/infra/db"
	"hospital-ops/internal/infra/repository/converter"
	"hospital-ops/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	insertEmergencySQL = `INSERT INTO emergency_cases
  (id, patient_id, type, severity, description, assigned_doctor_id, status, location,
   vital_signs, treatments, notes, version, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	findEmergencySQL = `SELECT id, patient_id, type, severity, description, assigned_doctor_id, status, location,
       vital_signs, treatments, notes, version, created_at, updated_at
FROM emergency_cases
WHERE id = $1`

	updateEmergencySQL = `UPDATE emergency_cases
SET type = $2, severity = $3, description = $4, assigned_doctor_id = $5, status = $6, location = $7,
    vital_signs = $8, treatments = $9, notes = $10, version = version + 1, updated_at = $11
WHERE id = $1 AND version = $12`
)

type EmergencyRepository struct {
	db db.DBTX
}

func NewEmergencyRepository(db db.DBTX) *EmergencyRepository {
	return &EmergencyRepository{db: db}
}

func (r *EmergencyRepository) Create(ctx context.Context, c *emergency.Case) error {
	vitals, treatments, err := encodeCaseDocs(c)
	if err != nil {
		return infra.WrapRepoErr("failed to encode emergency case", err)
	}

	_, err = r.db.Exec(ctx, insertEmergencySQL,
		c.ID(), c.PatientID(), string(c.Type()), string(c.Severity()), c.Description(),
		pgconv.UUIDPtrToPgtype(c.AssignedDoctorID()), string(c.Status()), c.Location(),
		vitals, treatments, c.Notes(), c.Version(), c.CreatedAt(), c.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create emergency case", err)
	}
	return nil
}

func (r *EmergencyRepository) FindByID(ctx context.Context, id uuid.UUID) (*emergency.Case, error) {
	var (
		cid, patientID                  uuid.UUID
		caseType, severity, description string
		doctor                          pgtype.UUID
		status, location, notes         string
		vitalsRaw, treatmentsRaw        []byte
		version                         int32
		createdAt, updatedAt            pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, findEmergencySQL, id).Scan(
		&cid, &patientID, &caseType, &severity, &description, &doctor, &status, &location,
		&vitalsRaw, &treatmentsRaw, &notes, &version, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find emergency case", err)
	}

	vitals, err := converter.VitalsFromJSON(vitalsRaw)
	if err != nil {
		return nil, infra.WrapRepoErr("stored vital signs are malformed", err)
	}
	treatments, err := converter.TreatmentsFromJSON(treatmentsRaw)
	if err != nil {
		return nil, infra.WrapRepoErr("stored treatments are malformed", err)
	}

	return emergency.ReconstructCase(
		cid, patientID, emergency.Type(caseType), emergency.Severity(severity), description,
		pgconv.UUIDPtrFromPgtype(doctor), emergency.Status(status), location,
		vitals, treatments, notes, version,
		pgconv.TimeFromPgtype(createdAt), pgconv.TimeFromPgtype(updatedAt),
	), nil
}

func (r *EmergencyRepository) Update(ctx context.Context, c *emergency.Case) error {
	vitals, treatments, err := encodeCaseDocs(c)
	if err != nil {
		return infra.WrapRepoErr("failed to encode emergency case", err)
	}

	tag, err := r.db.Exec(ctx, updateEmergencySQL,
		c.ID(), string(c.Type()), string(c.Severity()), c.Description(),
		pgconv.UUIDPtrToPgtype(c.AssignedDoctorID()), string(c.Status()), c.Location(),
		vitals, treatments, c.Notes(), c.UpdatedAt(), c.Version(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update emergency case", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.StaleVersion("emergency case was modified concurrently")
	}
	return nil
}

func encodeCaseDocs(c *emergency.Case) ([]byte, []byte, error) {
	vitals, err := converter.VitalsToJSON(c.Vitals())
	if err != nil {
		return nil, nil, err
	}
	treatments, err := converter.TreatmentsToJSON(c.Treatments())
	if err != nil {
		return nil, nil, err
	}
	return vitals, treatments, nil
}
