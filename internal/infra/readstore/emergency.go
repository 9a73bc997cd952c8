package readstore

import (
	"context"
	"encoding/json"

	"hospital-ops/internal/infra"
	"hospital-ops/internal/infra/db"
	"hospital-ops/internal/pkg/pgconv"
	"hospital-ops/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	emergencySelect = `SELECT e.id, p.id, p.name, p.age, p.contact,
       e.type, e.severity, e.description,
       u.id, u.name, u.email,
       e.status, e.location, e.vital_signs, e.treatments, e.notes, e.version, e.created_at, e.updated_at
FROM emergency_cases e
JOIN patients p ON p.id = e.patient_id
LEFT JOIN users u ON u.id = e.assigned_doctor_id`

	listEmergenciesSQL = emergencySelect + `
WHERE ($1::text IS NULL OR e.status = $1)
ORDER BY CASE e.severity WHEN 'critical' THEN 3 WHEN 'severe' THEN 2 WHEN 'moderate' THEN 1 ELSE 0 END DESC,
         e.created_at DESC`

	findEmergencyByIDSQL = emergencySelect + `
WHERE e.id = $1`
)

type EmergencyReadStore struct {
	db db.DBTX
}

func NewEmergencyReadStore(db db.DBTX) *EmergencyReadStore {
	return &EmergencyReadStore{db: db}
}

func (r *EmergencyReadStore) List(ctx context.Context, status *string) ([]*queries.EmergencyView, error) {
	rows, err := r.db.Query(ctx, listEmergenciesSQL, pgconv.StringPtrToPgtype(status))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list emergency cases", err)
	}
	return collectViews(rows, scanEmergencyView, "failed to list emergency cases")
}

func (r *EmergencyReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.EmergencyView, error) {
	v, err := scanEmergencyView(r.db.QueryRow(ctx, findEmergencyByIDSQL, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find emergency case", err)
	}
	return v, nil
}

func scanEmergencyView(row pgx.Row) (*queries.EmergencyView, error) {
	var (
		v                        queries.EmergencyView
		patientAge               int32
		doctorID                 pgtype.UUID
		doctorName, doctorEmail  pgtype.Text
		vitalsRaw, treatmentsRaw []byte
		createdAt, updatedAt     pgtype.Timestamptz
	)
	err := row.Scan(
		&v.ID, &v.Patient.ID, &v.Patient.Name, &patientAge, &v.Patient.Contact,
		&v.Type, &v.Severity, &v.Description,
		&doctorID, &doctorName, &doctorEmail,
		&v.Status, &v.Location, &vitalsRaw, &treatmentsRaw, &v.Notes, &v.Version, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	v.Patient.Age = int(patientAge)
	if id := pgconv.UUIDPtrFromPgtype(doctorID); id != nil {
		v.AssignedDoctor = &queries.DoctorSummaryView{
			ID:    *id,
			Name:  pgconv.StringFromPgtype(doctorName),
			Email: pgconv.StringFromPgtype(doctorEmail),
		}
	}
	if len(vitalsRaw) > 0 {
		if err := json.Unmarshal(vitalsRaw, &v.VitalSigns); err != nil {
			return nil, err
		}
	}
	v.Treatments = []queries.TreatmentView{}
	if len(treatmentsRaw) > 0 {
		if err := json.Unmarshal(treatmentsRaw, &v.Treatments); err != nil {
			return nil, err
		}
	}
	v.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	v.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &v, nil
}
