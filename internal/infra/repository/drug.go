package repository

import (
	"context"

	"hospital-ops/internal/domain/drug"
	"hospital-ops/internal/infra"
	"hospital-ops/internal/infra/db"
	"hospital-ops/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	insertDrugSQL = `INSERT INTO drugs
  (id, name, category, quantity, unit, expiry_date, minimum_stock,
   supplier_name, supplier_contact, supplier_email, location, batch_number,
   price, last_restocked, status, version, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13::numeric, $14, $15, $16, $17, $18)`

	findDrugSQL = `SELECT id, name, category, quantity, unit, expiry_date, minimum_stock,
       supplier_name, supplier_contact, supplier_email, location, batch_number,
       price::text, last_restocked, version, created_at, updated_at
FROM drugs
WHERE id = $1`

	updateDrugSQL = `UPDATE drugs
SET quantity = $2, minimum_stock = $3, price = $4::numeric, last_restocked = $5, status = $6,
    version = version + 1, updated_at = $7
WHERE id = $1 AND version = $8`
)

type DrugRepository struct {
	db db.DBTX
}

func NewDrugRepository(db db.DBTX) *DrugRepository {
	return &DrugRepository{db: db}
}

func (r *DrugRepository) Create(ctx context.Context, d *drug.Drug) error {
	s := d.Supplier()
	_, err := r.db.Exec(ctx, insertDrugSQL,
		d.ID(), d.Name(), d.Category(), d.Quantity(), d.Unit(), pgconv.DateToPgtype(d.ExpiryDate()),
		d.MinimumStock(), s.Name, s.Contact, s.Email, d.Location(), d.BatchNumber(),
		d.Price().String(), d.LastRestocked(), string(d.Status()), d.Version(), d.CreatedAt(), d.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create drug", err)
	}
	return nil
}

func (r *DrugRepository) FindByID(ctx context.Context, id uuid.UUID) (*drug.Drug, error) {
	var (
		did                              uuid.UUID
		name, category, unit             string
		quantity, minimumStock, version  int32
		expiry                           pgtype.Date
		supplier                         drug.Supplier
		location, batchNumber, priceText string
		lastRestocked                    pgtype.Timestamptz
		createdAt, updatedAt             pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, findDrugSQL, id).Scan(
		&did, &name, &category, &quantity, &unit, &expiry, &minimumStock,
		&supplier.Name, &supplier.Contact, &supplier.Email, &location, &batchNumber,
		&priceText, &lastRestocked, &version, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find drug", err)
	}

	price, err := pgconv.DecimalFromText(priceText)
	if err != nil {
		return nil, infra.WrapRepoErr("stored drug price is malformed", err)
	}

	return drug.ReconstructDrug(
		did, name, category, int(quantity), unit, expiry.Time, int(minimumStock),
		supplier, location, batchNumber, price, pgconv.TimeFromPgtype(lastRestocked),
		version, pgconv.TimeFromPgtype(createdAt), pgconv.TimeFromPgtype(updatedAt),
	), nil
}

func (r *DrugRepository) Update(ctx context.Context, d *drug.Drug) error {
	tag, err := r.db.Exec(ctx, updateDrugSQL,
		d.ID(), d.Quantity(), d.MinimumStock(), d.Price().String(), d.LastRestocked(),
		string(d.Status()), d.UpdatedAt(), d.Version(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update drug", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.StaleVersion("drug was modified concurrently")
	}
	return nil
}
