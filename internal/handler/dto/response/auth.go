package response

import (
	"time"

	"hospital-ops/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Role       string     `json:"role"`
	Department string     `json:"department,omitempty"`
	LastLogin  *time.Time `json:"lastLogin,omitempty"`
	IsActive   bool       `json:"isActive"`
}

type LoginResponse struct {
	AccessToken string        `json:"accessToken"`
	ExpiresIn   int64         `json:"expiresIn"`
	User        *UserResponse `json:"user"`
}

type RegisterResponse struct {
	ID uuid.UUID `json:"id"`
}

func FromUserView(v *queries.AuthorizedUserView) *UserResponse {
	return mapView[UserResponse](v)
}
