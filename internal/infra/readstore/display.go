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
	displayColumns = `id, name, department, location, type, content, settings, version, created_at, updated_at`

	listDisplaysSQL = `SELECT ` + displayColumns + `
FROM display_boards
WHERE ($1::text IS NULL OR department = $1)
ORDER BY name`

	findDisplayByIDSQL = `SELECT ` + displayColumns + ` FROM display_boards WHERE id = $1`
)

type DisplayReadStore struct {
	db db.DBTX
}

func NewDisplayReadStore(db db.DBTX) *DisplayReadStore {
	return &DisplayReadStore{db: db}
}

func (r *DisplayReadStore) List(ctx context.Context, department *string) ([]*queries.DisplayView, error) {
	rows, err := r.db.Query(ctx, listDisplaysSQL, pgconv.StringPtrToPgtype(department))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list display boards", err)
	}
	return collectViews(rows, scanDisplayView, "failed to list display boards")
}

func (r *DisplayReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.DisplayView, error) {
	v, err := scanDisplayView(r.db.QueryRow(ctx, findDisplayByIDSQL, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find display board", err)
	}
	return v, nil
}

func scanDisplayView(row pgx.Row) (*queries.DisplayView, error) {
	var (
		v                       queries.DisplayView
		contentRaw, settingsRaw []byte
		createdAt, updatedAt    pgtype.Timestamptz
	)
	err := row.Scan(&v.ID, &v.Name, &v.Department, &v.Location, &v.Type, &contentRaw, &settingsRaw,
		&v.Version, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	v.Content = []queries.ContentItemView{}
	if len(contentRaw) > 0 {
		if err := json.Unmarshal(contentRaw, &v.Content); err != nil {
			return nil, err
		}
	}
	if len(settingsRaw) > 0 {
		if err := json.Unmarshal(settingsRaw, &v.Settings); err != nil {
			return nil, err
		}
	}
	v.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	v.LastUpdated = pgconv.TimeFromPgtype(updatedAt)
	return &v, nil
}
