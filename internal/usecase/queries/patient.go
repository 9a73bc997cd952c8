package queries

import (
	"context"
	"time"

	"hospital-ops/internal/infra"
	"hospital-ops/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrPatientNotFound = errs.NotFound("patient not found")
	ErrInvalidCursor   = errs.Validation("invalid cursor")
)

type PatientReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PatientView, error)
	ListFirstPage(ctx context.Context, limit int32) ([]*PatientView, error)
	ListKeyset(ctx context.Context, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*PatientView, error)
}

type PatientQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*PatientView, error)
	List(ctx context.Context, cursor *Cursor, limit int) ([]*PatientView, *Cursor, error)
}

type patientQueriesImpl struct {
	readStore PatientReadStore
}

func NewPatientQueries(readStore PatientReadStore) PatientQueries {
	return &patientQueriesImpl{readStore: readStore}
}

func (q *patientQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*PatientView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPatientNotFound
		}
		return nil, err
	}
	return view, nil
}

// List pages newest first. The extra row fetched beyond limit decides whether a next cursor exists.
func (q *patientQueriesImpl) List(ctx context.Context, cursor *Cursor, limit int) ([]*PatientView, *Cursor, error) {
	limit = ValidateLimit(limit)
	var rows []*PatientView
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.readStore.ListFirstPage(ctx, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.readStore.ListKeyset(ctx, lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}
	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}
