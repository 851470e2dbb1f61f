package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/spec-kit/shop-service/internal/domain"
	"github.com/spec-kit/shop-service/internal/events"
	"github.com/spec-kit/shop-service/internal/repository"
	apperrors "github.com/spec-kit/shop-service/pkg/util"
)

// ProductPatch carries product fields; nil values are left untouched.
type ProductPatch struct {
	Name          *string
	Description   *string
	Price         *float64
	OriginalPrice *float64
	DiscountPrice *float64
	Category      *string
	Images        []string
	Stock         *int
	Colors        []string
	Sizes         []string
	Brand         *string
	Rating        *float64
	NumReviews    *int
	IsFeatured    *bool
	Status        *string
}

func (p ProductPatch) apply(dst *domain.Product) {
	if p.Name != nil {
		dst.Name = *p.Name
	}
	if p.Description != nil {
		dst.Description = *p.Description
	}
	if p.Price != nil {
		dst.Price = *p.Price
	}
	if p.OriginalPrice != nil {
		v := *p.OriginalPrice
		dst.OriginalPrice = &v
	}
	if p.DiscountPrice != nil {
		v := *p.DiscountPrice
		dst.DiscountPrice = &v
	}
	if p.Category != nil {
		dst.Category = *p.Category
	}
	if p.Images != nil {
		dst.Images = p.Images
	}
	if p.Stock != nil {
		dst.Stock = *p.Stock
	}
	if p.Colors != nil {
		dst.Colors = p.Colors
	}
	if p.Sizes != nil {
		dst.Sizes = p.Sizes
	}
	if p.Brand != nil {
		dst.Brand = *p.Brand
	}
	if p.Rating != nil {
		dst.Rating = *p.Rating
	}
	if p.NumReviews != nil {
		dst.NumReviews = *p.NumReviews
	}
	if p.IsFeatured != nil {
		dst.IsFeatured = *p.IsFeatured
	}
	if p.Status != nil {
		dst.Status = *p.Status
	}
}

// ProductService manages the catalog and announces changes to it.
type ProductService struct {
	products   repository.ProductRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewProductService constructs the service. A nil dispatcher disables events.
func NewProductService(products repository.ProductRepository, dispatcher events.Dispatcher, logger *zap.Logger) *ProductService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProductService{products: products, dispatcher: dispatcher, logger: logger}
}

// List returns products matching the filter.
func (s *ProductService) List(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	products, err := s.products.List(ctx, filter)
	if err != nil {
		return nil, apperrors.NewStoreUnavailable(err)
	}
	return products, nil
}

// Get returns a single product.
func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, productError(err)
	}
	return product, nil
}

// Create stores a new product.
func (s *ProductService) Create(ctx context.Context, actorID string, patch ProductPatch) (*domain.Product, error) {
	product := &domain.Product{}
	patch.apply(product)
	if err := s.products.Create(ctx, product); err != nil {
		return nil, productError(err)
	}
	s.publish(ctx, events.NewProductEvent(events.EventProductCreated, product.ID, actorID, product.Category))
	return product, nil
}

// Update merges the patch into an existing product.
func (s *ProductService) Update(ctx context.Context, actorID, id string, patch ProductPatch) (*domain.Product, error) {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, productError(err)
	}
	previousCategory := product.Category
	patch.apply(product)
	if err := s.products.Update(ctx, product); err != nil {
		return nil, productError(err)
	}
	s.publish(ctx, events.NewProductEvent(events.EventProductUpdated, product.ID, actorID, previousCategory, product.Category))
	return product, nil
}

// Delete removes a product.
func (s *ProductService) Delete(ctx context.Context, actorID, id string) error {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		return productError(err)
	}
	if err := s.products.Delete(ctx, id); err != nil {
		return productError(err)
	}
	s.publish(ctx, events.NewProductEvent(events.EventProductDeleted, id, actorID, product.Category))
	return nil
}

func (s *ProductService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("publish product event", zap.String("event_type", string(event.Type)), zap.Error(err))
	}
}

func productError(err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return apperrors.NewNotFound("Product")
	}
	return apperrors.NewStoreUnavailable(err)
}
