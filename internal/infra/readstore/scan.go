package readstore

import (
	"hospital-ops/internal/infra"

	"github.com/jackc/pgx/v5"
)

// collectViews drains rows through scan and closes them.
func collectViews[T any](rows pgx.Rows, scan func(pgx.Row) (*T, error), msg string) ([]*T, error) {
	defer rows.Close()

	views := make([]*T, 0)
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(msg, err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(msg, err)
	}
	return views, nil
}
