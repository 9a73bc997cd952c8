package readstore

import (
	"context"

	"hospital-ops/internal/infra"
	"hospital-ops/internal/infra/db"
	"hospital-ops/internal/pkg/pgconv"
	"hospital-ops/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	findUserByIDSQL = `SELECT id, name, email, role, department, last_login, is_active
FROM users
WHERE id = $1`

	findUserByEmailSQL = `SELECT id, name, email, role, department, last_login, is_active, password_hash
FROM users
WHERE email = $1`
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(db db.DBTX) *UserReadStore {
	return &UserReadStore{db: db}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	var (
		v         queries.AuthorizedUserView
		lastLogin pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, findUserByIDSQL, id).Scan(
		&v.ID, &v.Name, &v.Email, &v.Role, &v.Department, &lastLogin, &v.IsActive,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	v.LastLogin = pgconv.TimePtrFromPgtype(lastLogin)
	return &v, nil
}

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	var (
		v            queries.AuthorizedUserView
		lastLogin    pgtype.Timestamptz
		passwordHash string
	)
	err := r.db.QueryRow(ctx, findUserByEmailSQL, email).Scan(
		&v.ID, &v.Name, &v.Email, &v.Role, &v.Department, &lastLogin, &v.IsActive, &passwordHash,
	)
	if err != nil {
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	v.LastLogin = pgconv.TimePtrFromPgtype(lastLogin)
	return &v, passwordHash, nil
}
