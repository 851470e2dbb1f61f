package dto

import (
	"time"

	"github.com/spec-kit/shop-service/internal/domain"
)

// RegisterRequest payload for new accounts.
type RegisterRequest struct {
	Name     string `json:"name" form:"name" validate:"required,max=50"`
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required,min=6"`
}

// LoginRequest payload for login. Presence is checked by the auth service.
type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Success   bool            `json:"success"`
	Token     string          `json:"token"`
	ExpiresAt *time.Time      `json:"expires_at,omitempty"`
	User      domain.Identity `json:"user"`
}

// UserResponse wraps a single account.
type UserResponse struct {
	Success bool         `json:"success"`
	User    *domain.User `json:"user"`
}

// FavoritesResponse lists favorite product ids.
type FavoritesResponse struct {
	Success   bool     `json:"success"`
	Favorites []string `json:"favorites"`
}
