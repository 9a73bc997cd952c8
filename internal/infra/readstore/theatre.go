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
	theatreColumns = `id, name, status, current_surgery_id, schedule, equipment, version, created_at, updated_at`

	listTheatresSQL = `SELECT ` + theatreColumns + ` FROM operation_theatres ORDER BY name`

	findTheatreByIDSQL = `SELECT ` + theatreColumns + ` FROM operation_theatres WHERE id = $1`

	surgerySummariesSQL = `SELECT id, patient_name, procedure, surgeon, priority, status
FROM surgeries
WHERE id = ANY($1::uuid[])`
)

type TheatreReadStore struct {
	db db.DBTX
}

func NewTheatreReadStore(db db.DBTX) *TheatreReadStore {
	return &TheatreReadStore{db: db}
}

func (r *TheatreReadStore) List(ctx context.Context) ([]*queries.TheatreView, error) {
	rows, err := r.db.Query(ctx, listTheatresSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list theatres", err)
	}

	views, err := collectViews(rows, scanTheatreView, "failed to list theatres")
	if err != nil {
		return nil, err
	}

	if err := r.attachSurgeries(ctx, views); err != nil {
		return nil, err
	}
	return views, nil
}

func (r *TheatreReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.TheatreView, error) {
	v, err := scanTheatreView(r.db.QueryRow(ctx, findTheatreByIDSQL, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find theatre", err)
	}
	if err := r.attachSurgeries(ctx, []*queries.TheatreView{v}); err != nil {
		return nil, err
	}
	return v, nil
}

// attachSurgeries resolves current surgeries and schedule entries with one query.
func (r *TheatreReadStore) attachSurgeries(ctx context.Context, views []*queries.TheatreView) error {
	seen := make(map[uuid.UUID]struct{})
	var ids []string
	add := func(id uuid.UUID) {
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		ids = append(ids, id.String())
	}
	for _, v := range views {
		if v.CurrentSurgery != nil {
			add(v.CurrentSurgery.ID)
		}
		for _, e := range v.Schedule {
			add(e.SurgeryID)
		}
	}
	if len(ids) == 0 {
		return nil
	}

	summaries, err := r.surgerySummaries(ctx, ids)
	if err != nil {
		return err
	}

	for _, v := range views {
		if v.CurrentSurgery != nil {
			if s, ok := summaries[v.CurrentSurgery.ID]; ok {
				v.CurrentSurgery = s
			}
		}
		for i := range v.Schedule {
			v.Schedule[i].Surgery = summaries[v.Schedule[i].SurgeryID]
		}
	}
	return nil
}

func (r *TheatreReadStore) surgerySummaries(ctx context.Context, ids []string) (map[uuid.UUID]*queries.SurgerySummaryView, error) {
	rows, err := r.db.Query(ctx, surgerySummariesSQL, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load surgery summaries", err)
	}
	defer rows.Close()

	out := make(map[uuid.UUID]*queries.SurgerySummaryView, len(ids))
	for rows.Next() {
		var s queries.SurgerySummaryView
		if err := rows.Scan(&s.ID, &s.PatientName, &s.Procedure, &s.Surgeon, &s.Priority, &s.Status); err != nil {
			return nil, infra.WrapRepoErr("failed to scan surgery summary", err)
		}
		out[s.ID] = &s
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to load surgery summaries", err)
	}
	return out, nil
}

func scanTheatreView(row pgx.Row) (*queries.TheatreView, error) {
	var (
		v                  queries.TheatreView
		currentSurgery     pgtype.UUID
		schedule, equipRaw []byte
		createdAt          pgtype.Timestamptz
		updatedAt          pgtype.Timestamptz
	)
	if err := row.Scan(&v.ID, &v.Name, &v.Status, &currentSurgery, &schedule, &equipRaw, &v.Version, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	v.Schedule = []queries.ScheduleEntryView{}
	if len(schedule) > 0 {
		if err := json.Unmarshal(schedule, &v.Schedule); err != nil {
			return nil, err
		}
	}
	v.Equipment = []queries.EquipmentView{}
	if len(equipRaw) > 0 {
		if err := json.Unmarshal(equipRaw, &v.Equipment); err != nil {
			return nil, err
		}
	}
	if id := pgconv.UUIDPtrFromPgtype(currentSurgery); id != nil {
		v.CurrentSurgery = &queries.SurgerySummaryView{ID: *id}
	}
	v.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	v.LastUpdated = pgconv.TimeFromPgtype(updatedAt)
	return &v, nil
}
