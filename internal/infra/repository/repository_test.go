//go:build unit

package repository_test

import (
	"context"
	"testing"
	"time"

	"hospital-ops/internal/domain/theatre"
	"hospital-ops/internal/infra"
	"hospital-ops/internal/infra/repository"
	"hospital-ops/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDBTX struct {
	mock.Mock
}

func (m *MockDBTX) Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgconn.CommandTag), mockArgs.Error(1)
}

func (m *MockDBTX) Query(ctx context.Context, query string, args ...any) (pgx.Rows, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Rows), mockArgs.Error(1)
}

func (m *MockDBTX) QueryRow(ctx context.Context, query string, args ...any) pgx.Row {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Row)
}

// int64Row scans a single bigint column.
type int64Row struct {
	value int64
	err   error
}

func (r int64Row) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*dest[0].(*int64) = r.value
	return nil
}

func TestTicketRepository_NextSequence(t *testing.T) {
	day := time.Date(2024, 3, 20, 23, 59, 0, 0, time.UTC)

	tests := []struct {
		name       string
		row        pgx.Row
		want       int64
		expectKind infra.RepositoryErrorKind
	}{
		{name: "first ticket of the day", row: int64Row{value: 1}, want: 1},
		{name: "counter continues", row: int64Row{value: 42}, want: 42},
		{name: "database error", row: int64Row{err: assert.AnError}, expectKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := new(MockDBTX)
			db.On("QueryRow", mock.Anything, mock.Anything, []any{pgconv.DateToPgtype(day)}).Return(tt.row)

			got, err := repository.NewTicketRepository(db).NextSequence(context.Background(), day)

			if tt.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.expectKind), "got %v", err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			db.AssertExpectations(t)
		})
	}
}

func TestTicketRepository_Delete(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name       string
		tag        pgconn.CommandTag
		execErr    error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "deleted", tag: pgconn.NewCommandTag("DELETE 1")},
		{name: "missing row", tag: pgconn.NewCommandTag("DELETE 0"), expectKind: infra.KindNotFound},
		{name: "database error", tag: pgconn.CommandTag{}, execErr: assert.AnError, expectKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := new(MockDBTX)
			db.On("Exec", mock.Anything, mock.Anything, []any{id}).Return(tt.tag, tt.execErr)

			err := repository.NewTicketRepository(db).Delete(context.Background(), id)

			if tt.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.expectKind), "got %v", err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestTheatreRepository_Update(t *testing.T) {
	now := time.Date(2024, 3, 20, 9, 0, 0, 0, time.UTC)
	th, err := theatre.NewTheatre("OT-1", nil, now)
	require.NoError(t, err)

	tests := []struct {
		name       string
		tag        pgconn.CommandTag
		execErr    error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "version matched", tag: pgconn.NewCommandTag("UPDATE 1")},
		{name: "version moved on", tag: pgconn.NewCommandTag("UPDATE 0"), expectKind: infra.KindStaleVersion},
		{name: "database error", tag: pgconn.CommandTag{}, execErr: assert.AnError, expectKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := new(MockDBTX)
			db.On("Exec", mock.Anything, mock.Anything, mock.MatchedBy(func(args []any) bool {
				// id first, expected version last
				return len(args) == 7 && args[0] == th.ID() && args[6] == th.Version()
			})).Return(tt.tag, tt.execErr)

			err := repository.NewTheatreRepository(db).Update(context.Background(), th)

			if tt.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.expectKind), "got %v", err)
			} else {
				require.NoError(t, err)
			}
			db.AssertExpectations(t)
		})
	}
}
