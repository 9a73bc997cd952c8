package drug

import (
	"math"
	"strings"
	"time"

	"hospital-ops/internal/pkg/errs"
	"hospital-ops/internal/pkg/patch"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	DefaultMinimumStock = 10
	// MaxQuantity is the largest stock count the quantity column can hold.
	MaxQuantity = math.MaxInt32
)

var (
	ErrInvalidName          = errs.Validation("drug name is required")
	ErrInvalidCategory      = errs.Validation("drug category is required")
	ErrInvalidUnit          = errs.Validation("drug unit is required")
	ErrInvalidLocation      = errs.Validation("drug location is required")
	ErrInvalidBatchNumber   = errs.Validation("batch number is required")
	ErrInvalidExpiryDate    = errs.Validation("expiry date is required")
	ErrNegativeQuantity     = errs.Validation("quantity cannot be negative")
	ErrNegativeMinimumStock = errs.Validation("minimum stock cannot be negative")
	ErrNegativePrice        = errs.Validation("price cannot be negative")
	ErrInvalidAmount        = errs.Validation("quantity change must be positive")
	ErrQuantityTooLarge     = errs.Validation("quantity exceeds the maximum stock count")
	ErrInvalidOperation     = errs.Validation("operation must be add or subtract")
	ErrInsufficientQuantity = errs.Rule("insufficient quantity")
)

type Supplier struct {
	Name    string
	Contact string
	Email   string
}

// Drug is a stock line in the pharmacy.
type Drug struct {
	id            uuid.UUID
	name          string
	category      string
	quantity      int
	unit          string
	expiryDate    time.Time
	minimumStock  int
	supplier      Supplier
	location      string
	batchNumber   string
	price         decimal.Decimal
	lastRestocked time.Time
	status        Status
	version       int32
	createdAt     time.Time
	updatedAt     time.Time
}

type Params struct {
	Name         string
	Category     string
	Quantity     int
	Unit         string
	ExpiryDate   time.Time
	MinimumStock *int
	Supplier     Supplier
	Location     string
	BatchNumber  string
	Price        decimal.Decimal
}

func NewDrug(p Params, now time.Time) (*Drug, error) {
	minimum := patch.Coalesce(p.MinimumStock, DefaultMinimumStock)
	d := &Drug{
		id:            uuid.New(),
		name:          strings.TrimSpace(p.Name),
		category:      strings.TrimSpace(p.Category),
		quantity:      p.Quantity,
		unit:          strings.TrimSpace(p.Unit),
		expiryDate:    p.ExpiryDate,
		minimumStock:  minimum,
		supplier:      p.Supplier,
		location:      strings.TrimSpace(p.Location),
		batchNumber:   strings.TrimSpace(p.BatchNumber),
		price:         p.Price,
		lastRestocked: now,
		version:       1,
		createdAt:     now,
		updatedAt:     now,
	}
	if err := d.validate(); err != nil {
		return nil, err
	}
	d.status = DeriveStatus(d.quantity, d.minimumStock)
	return d, nil
}

// ReconstructDrug recomputes the status instead of trusting the stored one.
func ReconstructDrug(
	id uuid.UUID,
	name, category string,
	quantity int,
	unit string,
	expiryDate time.Time,
	minimumStock int,
	supplier Supplier,
	location, batchNumber string,
	price decimal.Decimal,
	lastRestocked time.Time,
	version int32,
	createdAt, updatedAt time.Time,
) *Drug {
	return &Drug{
		id:            id,
		name:          name,
		category:      category,
		quantity:      quantity,
		unit:          unit,
		expiryDate:    expiryDate,
		minimumStock:  minimumStock,
		supplier:      supplier,
		location:      location,
		batchNumber:   batchNumber,
		price:         price,
		lastRestocked: lastRestocked,
		status:        DeriveStatus(quantity, minimumStock),
		version:       version,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (d *Drug) ID() uuid.UUID            { return d.id }
func (d *Drug) Name() string             { return d.name }
func (d *Drug) Category() string         { return d.category }
func (d *Drug) Quantity() int            { return d.quantity }
func (d *Drug) Unit() string             { return d.unit }
func (d *Drug) ExpiryDate() time.Time    { return d.expiryDate }
func (d *Drug) MinimumStock() int        { return d.minimumStock }
func (d *Drug) Supplier() Supplier       { return d.supplier }
func (d *Drug) Location() string         { return d.location }
func (d *Drug) BatchNumber() string      { return d.batchNumber }
func (d *Drug) Price() decimal.Decimal   { return d.price }
func (d *Drug) LastRestocked() time.Time { return d.lastRestocked }
func (d *Drug) Status() Status           { return d.status }
func (d *Drug) Version() int32           { return d.version }
func (d *Drug) CreatedAt() time.Time     { return d.createdAt }
func (d *Drug) UpdatedAt() time.Time     { return d.updatedAt }

// AdjustQuantity adds or removes stock. Removing more than is on hand fails and leaves
// the drug unchanged.
func (d *Drug) AdjustQuantity(op Operation, amount int, now time.Time) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	switch op {
	case OperationAdd:
		if amount > MaxQuantity-d.quantity {
			return ErrQuantityTooLarge
		}
		d.quantity += amount
		d.lastRestocked = now
	case OperationSubtract:
		if amount > d.quantity {
			return ErrInsufficientQuantity
		}
		d.quantity -= amount
	default:
		return ErrInvalidOperation
	}
	d.status = DeriveStatus(d.quantity, d.minimumStock)
	d.updatedAt = now
	return nil
}

// ExpiresWithin reports drugs that are still usable but expire inside the window.
func (d *Drug) ExpiresWithin(now time.Time, window time.Duration) bool {
	return !d.expiryDate.Before(now) && !d.expiryDate.After(now.Add(window))
}

func (d *Drug) StockValue() decimal.Decimal {
	return d.price.Mul(decimal.NewFromInt(int64(d.quantity)))
}

func (d *Drug) validate() error {
	switch {
	case d.name == "":
		return ErrInvalidName
	case d.category == "":
		return ErrInvalidCategory
	case d.unit == "":
		return ErrInvalidUnit
	case d.location == "":
		return ErrInvalidLocation
	case d.batchNumber == "":
		return ErrInvalidBatchNumber
	case d.expiryDate.IsZero():
		return ErrInvalidExpiryDate
	case d.quantity < 0:
		return ErrNegativeQuantity
	case d.quantity > MaxQuantity:
		return ErrQuantityTooLarge
	case d.minimumStock < 0:
		return ErrNegativeMinimumStock
	case d.minimumStock > MaxQuantity:
		return ErrQuantityTooLarge
	case d.price.IsNegative():
		return ErrNegativePrice
	}
	return nil
}
