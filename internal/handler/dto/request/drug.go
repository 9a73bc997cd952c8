package request

import (
	"time"

	"hospital-ops/internal/usecase/commands"

	"github.com/shopspring/decimal"
)

type SupplierRequest struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Email   string `json:"email" binding:"omitempty,email"`
}

type CreateDrugRequest struct {
	Name         string          `json:"name" binding:"required,notblank"`
	Category     string          `json:"category" binding:"required,notblank"`
	Quantity     int             `json:"quantity" binding:"gte=0,lte=2147483647"`
	Unit         string          `json:"unit" binding:"required,notblank"`
	ExpiryDate   time.Time       `json:"expiryDate" binding:"required"`
	MinimumStock *int            `json:"minimumStock" binding:"omitempty,gte=0,lte=2147483647"`
	Supplier     SupplierRequest `json:"supplier"`
	Location     string          `json:"location" binding:"required,notblank"`
	BatchNumber  string          `json:"batchNumber" binding:"required,notblank"`
	Price        decimal.Decimal `json:"price"`
}

func (r *CreateDrugRequest) ToInput() commands.CreateDrugInput {
	return commands.CreateDrugInput{
		Name:         r.Name,
		Category:     r.Category,
		Quantity:     r.Quantity,
		Unit:         r.Unit,
		ExpiryDate:   r.ExpiryDate,
		MinimumStock: r.MinimumStock,
		Supplier: commands.SupplierInput{
			Name:    r.Supplier.Name,
			Contact: r.Supplier.Contact,
			Email:   r.Supplier.Email,
		},
		Location:    r.Location,
		BatchNumber: r.BatchNumber,
		Price:       r.Price,
	}
}

type AdjustQuantityRequest struct {
	Quantity  int    `json:"quantity" binding:"required,gt=0,lte=2147483647"`
	Operation string `json:"operation" binding:"required,oneof=add subtract"`
}

func (r *AdjustQuantityRequest) ToInput() commands.AdjustQuantityInput {
	return commands.AdjustQuantityInput{Quantity: r.Quantity, Operation: r.Operation}
}
