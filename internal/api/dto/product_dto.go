package dto

import "github.com/spec-kit/shop-service/internal/domain"

// ProductCreateRequest payload for new products, sent as JSON or multipart form.
type ProductCreateRequest struct {
	Name          *string  `json:"name" form:"name" validate:"required,min=1,max=100"`
	Description   *string  `json:"description" form:"description" validate:"required,min=1,max=2000"`
	Price         *float64 `json:"price" form:"price" validate:"required,min=0"`
	OriginalPrice *float64 `json:"originalPrice" form:"originalPrice" validate:"omitempty,min=0"`
	DiscountPrice *float64 `json:"discountPrice" form:"discountPrice" validate:"omitempty,min=0"`
	Category      *string  `json:"category" form:"category" validate:"required,min=1"`
	Images        []string `json:"images" form:"-"`
	Stock         *int     `json:"stock" form:"stock" validate:"omitempty,min=0"`
	Colors        []string `json:"colors" form:"colors"`
	Sizes         []string `json:"sizes" form:"sizes"`
	Brand         *string  `json:"brand" form:"brand" validate:"omitempty,max=100"`
	Rating        *float64 `json:"rating" form:"rating" validate:"omitempty,min=0,max=5"`
	NumReviews    *int     `json:"numReviews" form:"numReviews" validate:"omitempty,min=0"`
	IsFeatured    *bool    `json:"isFeatured" form:"isFeatured"`
	Status        *string  `json:"status" form:"status" validate:"omitempty,oneof=active inactive"`
}

// ProductUpdateRequest payload for partial product updates.
type ProductUpdateRequest struct {
	Name          *string  `json:"name" validate:"omitempty,min=1,max=100"`
	Description   *string  `json:"description" validate:"omitempty,min=1,max=2000"`
	Price         *float64 `json:"price" validate:"omitempty,min=0"`
	OriginalPrice *float64 `json:"originalPrice" validate:"omitempty,min=0"`
	DiscountPrice *float64 `json:"discountPrice" validate:"omitempty,min=0"`
	Category      *string  `json:"category" validate:"omitempty,min=1"`
	Images        []string `json:"images"`
	Stock         *int     `json:"stock" validate:"omitempty,min=0"`
	Colors        []string `json:"colors"`
	Sizes         []string `json:"sizes"`
	Brand         *string  `json:"brand" validate:"omitempty,max=100"`
	Rating        *float64 `json:"rating" validate:"omitempty,min=0,max=5"`
	NumReviews    *int     `json:"numReviews" validate:"omitempty,min=0"`
	IsFeatured    *bool    `json:"isFeatured"`
	Status        *string  `json:"status" validate:"omitempty,oneof=active inactive"`
}

// ProductListResponse lists products.
type ProductListResponse struct {
	Success  bool             `json:"success"`
	Count    int              `json:"count"`
	Products []domain.Product `json:"products"`
}

// ProductResponse wraps a single product.
type ProductResponse struct {
	Success bool            `json:"success"`
	Product *domain.Product `json:"product"`
}
