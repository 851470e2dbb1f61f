package dto

import "github.com/spec-kit/shop-service/internal/domain"

// CategoryCreateRequest payload for new categories.
type CategoryCreateRequest struct {
	Name        string `json:"name" validate:"required,max=50"`
	Description string `json:"description" validate:"max=200"`
	Status      string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// CategoryUpdateRequest payload for category updates. Empty fields keep stored values.
type CategoryUpdateRequest struct {
	Name        string `json:"name" validate:"omitempty,max=50"`
	Description string `json:"description" validate:"max=200"`
	Status      string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// CategoryListResponse lists categories.
type CategoryListResponse struct {
	Success    bool              `json:"success"`
	Count      int               `json:"count"`
	Categories []domain.Category `json:"categories"`
}

// CategoryResponse wraps a single category, with an optional message.
type CategoryResponse struct {
	Success  bool             `json:"success"`
	Message  string           `json:"message,omitempty"`
	Category *domain.Category `json:"category"`
}
