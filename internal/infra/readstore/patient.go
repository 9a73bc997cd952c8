package readstore

import (
	"context"
	"encoding/json"
	"time"

	"hospital-ops/internal/infra"
	"hospital-ops/internal/infra/db"
	"hospital-ops/internal/pkg/pgconv"
	"hospital-ops/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	patientColumns = `id, name, age, gender, contact, address, blood_group, medical_history, version, created_at, updated_at`

	findPatientByIDSQL = `SELECT ` + patientColumns + ` FROM patients WHERE id = $1`

	listPatientsFirstPageSQL = `SELECT ` + patientColumns + `
FROM patients
ORDER BY created_at DESC, id DESC
LIMIT $1`

	listPatientsKeysetSQL = `SELECT ` + patientColumns + `
FROM patients
WHERE (created_at, id) < ($1::timestamptz, $2::uuid)
ORDER BY created_at DESC, id DESC
LIMIT $3`
)

type PatientReadStore struct {
	db db.DBTX
}

func NewPatientReadStore(db db.DBTX) *PatientReadStore {
	return &PatientReadStore{db: db}
}

func (r *PatientReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.PatientView, error) {
	v, err := scanPatientView(r.db.QueryRow(ctx, findPatientByIDSQL, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find patient", err)
	}
	return v, nil
}

func (r *PatientReadStore) ListFirstPage(ctx context.Context, limit int32) ([]*queries.PatientView, error) {
	rows, err := r.db.Query(ctx, listPatientsFirstPageSQL, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list patients", err)
	}
	return collectViews(rows, scanPatientView, "failed to list patients")
}

func (r *PatientReadStore) ListKeyset(ctx context.Context, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.PatientView, error) {
	rows, err := r.db.Query(ctx, listPatientsKeysetSQL, pgconv.TimeToPgtype(lastCreatedAt), lastID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list patients", err)
	}
	return collectViews(rows, scanPatientView, "failed to list patients")
}

func scanPatientView(row pgx.Row) (*queries.PatientView, error) {
	var (
		v                    queries.PatientView
		age                  int32
		historyRaw           []byte
		createdAt, updatedAt pgtype.Timestamptz
	)
	err := row.Scan(&v.ID, &v.Name, &age, &v.Gender, &v.Contact, &v.Address, &v.BloodGroup,
		&historyRaw, &v.Version, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	v.Age = int(age)
	v.MedicalHistory = []queries.MedicalRecordView{}
	if len(historyRaw) > 0 {
		if err := json.Unmarshal(historyRaw, &v.MedicalHistory); err != nil {
			return nil, err
		}
	}
	v.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	v.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &v, nil
}
