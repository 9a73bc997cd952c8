package repository

import (
	"context"

	"hospital-ops/internal/domain/patient"
	"hospital-ops/internal/infra"
	"hospital-ops/internal/infra/db"
	"hospital-ops/internal/infra/repository/converter"
	"hospital-ops/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	insertPatientSQL = `INSERT INTO patients
  (id, name, age, gender, contact, address, blood_group, medical_history, version, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	findPatientSQL = `SELECT id, name, age, gender, contact, address, blood_group, medical_history,
       version, created_at, updated_at
FROM patients
WHERE id = $1`

	updatePatientSQL = `UPDATE patients
SET name = $2, age = $3, gender = $4, contact = $5, address = $6, blood_group = $7,
    medical_history = $8, version = version + 1, updated_at = $9
WHERE id = $1 AND version = $10`

	deletePatientSQL = `DELETE FROM patients WHERE id = $1`
)

type PatientRepository struct {
	db db.DBTX
}

func NewPatientRepository(db db.DBTX) *PatientRepository {
	return &PatientRepository{db: db}
}

func (r *PatientRepository) Create(ctx context.Context, p *patient.Patient) error {
	history, err := converter.HistoryToJSON(p.MedicalHistory())
	if err != nil {
		return infra.WrapRepoErr("failed to encode medical history", err)
	}

	_, err = r.db.Exec(ctx, insertPatientSQL,
		p.ID(), p.Name(), p.Age(), string(p.Gender()), p.Contact(), p.Address(),
		string(p.BloodGroup()), history, p.Version(), p.CreatedAt(), p.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create patient", err)
	}
	return nil
}

func (r *PatientRepository) FindByID(ctx context.Context, id uuid.UUID) (*patient.Patient, error) {
	var (
		pid                            uuid.UUID
		name, gender, contact, address string
		bloodGroup                     string
		age, version                   int32
		historyRaw                     []byte
		createdAt, updatedAt           pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, findPatientSQL, id).Scan(
		&pid, &name, &age, &gender, &contact, &address, &bloodGroup, &historyRaw,
		&version, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find patient", err)
	}

	history, err := converter.HistoryFromJSON(historyRaw)
	if err != nil {
		return nil, infra.WrapRepoErr("stored medical history is malformed", err)
	}

	return patient.ReconstructPatient(
		pid,
		patient.Params{
			Name:       name,
			Age:        int(age),
			Gender:     patient.Gender(gender),
			Contact:    contact,
			Address:    address,
			BloodGroup: patient.BloodGroup(bloodGroup),
		},
		history, version,
		pgconv.TimeFromPgtype(createdAt), pgconv.TimeFromPgtype(updatedAt),
	), nil
}

func (r *PatientRepository) Update(ctx context.Context, p *patient.Patient) error {
	history, err := converter.HistoryToJSON(p.MedicalHistory())
	if err != nil {
		return infra.WrapRepoErr("failed to encode medical history", err)
	}

	tag, err := r.db.Exec(ctx, updatePatientSQL,
		p.ID(), p.Name(), p.Age(), string(p.Gender()), p.Contact(), p.Address(),
		string(p.BloodGroup()), history, p.UpdatedAt(), p.Version(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update patient", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.StaleVersion("patient was modified concurrently")
	}
	return nil
}

func (r *PatientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, deletePatientSQL, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete patient", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("patient not found", nil, infra.KindNotFound)
	}
	return nil
}
