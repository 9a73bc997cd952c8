package repository

import (
	"context"

	"hospital-ops/internal/domain/display"
	"hospital-ops/internal/infra"
	"hospital-ops/internal/infra/db"
	"hospital-ops/internal/infra/repository/converter"
	"hospital-ops/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	insertDisplaySQL = `INSERT INTO display_boards
  (id, name, department, location, type, content, settings, version, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	findDisplaySQL = `SELECT id, name, department, location, type, content, settings, version, created_at, updated_at
FROM display_boards
WHERE id = $1`

	updateDisplaySQL = `UPDATE display_boards
SET content = $2, settings = $3, version = version + 1, updated_at = $4
WHERE id = $1 AND version = $5`
)

type DisplayRepository struct {
	db db.DBTX
}

func NewDisplayRepository(db db.DBTX) *DisplayRepository {
	return &DisplayRepository{db: db}
}

func (r *DisplayRepository) Create(ctx context.Context, b *display.Board) error {
	content, settings, err := encodeBoardDocs(b)
	if err != nil {
		return infra.WrapRepoErr("failed to encode display board", err)
	}

	_, err = r.db.Exec(ctx, insertDisplaySQL,
		b.ID(), b.Name(), b.Department(), b.Location(), string(b.Type()),
		content, settings, b.Version(), b.CreatedAt(), b.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create display board", err)
	}
	return nil
}

func (r *DisplayRepository) FindByID(ctx context.Context, id uuid.UUID) (*display.Board, error) {
	var (
		bid                                   uuid.UUID
		name, department, location, boardType string
		contentRaw, settingsRaw               []byte
		version                               int32
		createdAt, updatedAt                  pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, findDisplaySQL, id).Scan(
		&bid, &name, &department, &location, &boardType, &contentRaw, &settingsRaw,
		&version, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find display board", err)
	}

	content, err := converter.ContentFromJSON(contentRaw)
	if err != nil {
		return nil, infra.WrapRepoErr("stored display content is malformed", err)
	}
	settings, err := converter.SettingsFromJSON(settingsRaw)
	if err != nil {
		return nil, infra.WrapRepoErr("stored display settings are malformed", err)
	}

	return display.ReconstructBoard(
		bid, name, department, location, display.BoardType(boardType),
		content, settings, version,
		pgconv.TimeFromPgtype(createdAt), pgconv.TimeFromPgtype(updatedAt),
	), nil
}

func (r *DisplayRepository) Update(ctx context.Context, b *display.Board) error {
	content, settings, err := encodeBoardDocs(b)
	if err != nil {
		return infra.WrapRepoErr("failed to encode display board", err)
	}

	tag, err := r.db.Exec(ctx, updateDisplaySQL, b.ID(), content, settings, b.UpdatedAt(), b.Version())
	if err != nil {
		return infra.WrapRepoErr("failed to update display board", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.StaleVersion("display board was modified concurrently")
	}
	return nil
}

func encodeBoardDocs(b *display.Board) ([]byte, []byte, error) {
	content, err := converter.ContentToJSON(b.Content())
	if err != nil {
		return nil, nil, err
	}
	settings, err := converter.SettingsToJSON(b.Settings())
	if err != nil {
		return nil, nil, err
	}
	return content, settings, nil
}
