package response

import (
	"time"

	"hospital-ops/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SupplierResponse struct {
	Name    string `json:"name,omitempty"`
	Contact string `json:"contact,omitempty"`
	Email   string `json:"email,omitempty"`
}

type DrugResponse struct {
	ID            uuid.UUID        `json:"id"`
	Name          string           `json:"name"`
	Category      string           `json:"category"`
	Quantity      int              `json:"quantity"`
	Unit          string           `json:"unit"`
	ExpiryDate    time.Time        `json:"expiryDate"`
	MinimumStock  int              `json:"minimumStock"`
	Supplier      SupplierResponse `json:"supplier"`
	Location      string           `json:"location"`
	BatchNumber   string           `json:"batchNumber"`
	Price         decimal.Decimal  `json:"price"`
	LastRestocked time.Time        `json:"lastRestocked"`
	Status        string           `json:"status"`
	Version       int32            `json:"version"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"`
}

type DrugValuationResponse struct {
	TotalValue    decimal.Decimal `json:"totalValue"`
	DrugCount     int             `json:"drugCount"`
	TotalQuantity int64           `json:"totalQuantity"`
}

// Price is assigned directly; decimal keeps its state in unexported fields.
func FromDrugView(v *queries.DrugView) *DrugResponse {
	resp := mapView[DrugResponse](v)
	resp.Price = v.Price
	return resp
}

func FromDrugViews(vs []*queries.DrugView) []*DrugResponse {
	out := make([]*DrugResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, FromDrugView(v))
	}
	return out
}

func FromDrugValuationView(v *queries.DrugValuationView) *DrugValuationResponse {
	return &DrugValuationResponse{
		TotalValue:    v.TotalValue,
		DrugCount:     v.DrugCount,
		TotalQuantity: v.TotalQuantity,
	}
}
