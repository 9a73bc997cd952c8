package readstore

import (
	"context"
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
	drugColumns = `id, name, category, quantity, unit, expiry_date, minimum_stock,
       supplier_name, supplier_contact, supplier_email, location, batch_number,
       price::text, last_restocked, status, version, created_at, updated_at`

	listDrugsSQL = `SELECT ` + drugColumns + ` FROM drugs ORDER BY name`

	findDrugByIDSQL = `SELECT ` + drugColumns + ` FROM drugs WHERE id = $1`

	listLowStockDrugsSQL = `SELECT ` + drugColumns + `
FROM drugs
WHERE quantity <= minimum_stock
ORDER BY quantity ASC, name`

	listExpiringDrugsSQL = `SELECT ` + drugColumns + `
FROM drugs
WHERE expiry_date >= $1::date AND expiry_date <= $2::date
ORDER BY expiry_date ASC, name`

	drugValuationSQL = `SELECT COALESCE(SUM(quantity * price), 0)::text, COUNT(*), COALESCE(SUM(quantity), 0)
FROM drugs`
)

type DrugReadStore struct {
	db db.DBTX
}

func NewDrugReadStore(db db.DBTX) *DrugReadStore {
	return &DrugReadStore{db: db}
}

func (r *DrugReadStore) List(ctx context.Context) ([]*queries.DrugView, error) {
	rows, err := r.db.Query(ctx, listDrugsSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list drugs", err)
	}
	return collectViews(rows, scanDrugView, "failed to list drugs")
}

func (r *DrugReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.DrugView, error) {
	v, err := scanDrugView(r.db.QueryRow(ctx, findDrugByIDSQL, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find drug", err)
	}
	return v, nil
}

func (r *DrugReadStore) ListLowStock(ctx context.Context) ([]*queries.DrugView, error) {
	rows, err := r.db.Query(ctx, listLowStockDrugsSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list low stock drugs", err)
	}
	return collectViews(rows, scanDrugView, "failed to list low stock drugs")
}

func (r *DrugReadStore) ListExpiring(ctx context.Context, from, to time.Time) ([]*queries.DrugView, error) {
	rows, err := r.db.Query(ctx, listExpiringDrugsSQL, pgconv.DateToPgtype(from), pgconv.DateToPgtype(to))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list expiring drugs", err)
	}
	return collectViews(rows, scanDrugView, "failed to list expiring drugs")
}

func (r *DrugReadStore) Valuation(ctx context.Context) (*queries.DrugValuationView, error) {
	var (
		totalText string
		count     int64
		quantity  int64
	)
	if err := r.db.QueryRow(ctx, drugValuationSQL).Scan(&totalText, &count, &quantity); err != nil {
		return nil, infra.WrapRepoErr("failed to compute drug valuation", err)
	}
	total, err := pgconv.DecimalFromText(totalText)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to parse drug valuation", err)
	}
	return &queries.DrugValuationView{
		TotalValue:    total,
		DrugCount:     int(count),
		TotalQuantity: quantity,
	}, nil
}

func scanDrugView(row pgx.Row) (*queries.DrugView, error) {
	var (
		v                      queries.DrugView
		quantity, minimumStock int32
		expiry                 pgtype.Date
		priceText              string
		lastRestocked          pgtype.Timestamptz
		createdAt, updatedAt   pgtype.Timestamptz
	)
	err := row.Scan(&v.ID, &v.Name, &v.Category, &quantity, &v.Unit, &expiry, &minimumStock,
		&v.Supplier.Name, &v.Supplier.Contact, &v.Supplier.Email, &v.Location, &v.BatchNumber,
		&priceText, &lastRestocked, &v.Status, &v.Version, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	price, err := pgconv.DecimalFromText(priceText)
	if err != nil {
		return nil, err
	}
	v.Quantity = int(quantity)
	v.MinimumStock = int(minimumStock)
	v.ExpiryDate = expiry.Time
	v.Price = price
	v.LastRestocked = pgconv.TimeFromPgtype(lastRestocked)
	v.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	v.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &v, nil
}
