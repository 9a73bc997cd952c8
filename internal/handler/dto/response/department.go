package response

import (
	"time"

	"hospital-ops/internal/usecase/queries"

	"github.com/google/uuid"
)

type DepartmentResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Head        string    `json:"head"`
	Location    string    `json:"location"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func FromDepartmentView(v *queries.DepartmentView) *DepartmentResponse {
	return mapView[DepartmentResponse](v)
}

func FromDepartmentViews(vs []*queries.DepartmentView) []*DepartmentResponse {
	return mapViews[DepartmentResponse](vs)
}
