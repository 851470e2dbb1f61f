package service

import (
	"context"
	"errors"
	"strings"

	"github.com/spec-kit/shop-service/internal/domain"
	"github.com/spec-kit/shop-service/internal/repository"
	apperrors "github.com/spec-kit/shop-service/pkg/util"
)

const msgCategoryExists = "Category already exists"

// CategoryInput carries category fields. Empty values mean "not provided".
type CategoryInput struct {
	Name        string
	Description string
	Status      domain.CategoryStatus
}

// CategoryService manages product categories.
type CategoryService struct {
	categories repository.CategoryRepository
}

// NewCategoryService constructs the service.
func NewCategoryService(categories repository.CategoryRepository) *CategoryService {
	return &CategoryService{categories: categories}
}

// List returns categories, newest first.
func (s *CategoryService) List(ctx context.Context, filter domain.CategoryFilter) ([]domain.Category, error) {
	categories, err := s.categories.List(ctx, filter)
	if err != nil {
		return nil, apperrors.NewStoreUnavailable(err)
	}
	return categories, nil
}

// Get returns a single category.
func (s *CategoryService) Get(ctx context.Context, id string) (*domain.Category, error) {
	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return nil, categoryError(err)
	}
	return category, nil
}

// Create stores a category with a unique name. Status defaults to active and
// the display colour follows the number of existing categories.
func (s *CategoryService) Create(ctx context.Context, in CategoryInput) (*domain.Category, error) {
	name := strings.TrimSpace(in.Name)
	if err := s.ensureNameFree(ctx, name, ""); err != nil {
		return nil, err
	}

	count, err := s.categories.Count(ctx)
	if err != nil {
		return nil, apperrors.NewStoreUnavailable(err)
	}
	status := in.Status
	if status == "" {
		status = domain.CategoryStatusActive
	}
	category := &domain.Category{
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		Status:      status,
		Color:       domain.CategoryColor(count),
	}
	if err := s.categories.Create(ctx, category); err != nil {
		return nil, categoryError(err)
	}
	return category, nil
}

// Update overwrites the non-empty fields of an existing category.
func (s *CategoryService) Update(ctx context.Context, id string, in CategoryInput) (*domain.Category, error) {
	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return nil, categoryError(err)
	}
	if name := strings.TrimSpace(in.Name); name != "" {
		if !strings.EqualFold(name, category.Name) {
			if err := s.ensureNameFree(ctx, name, id); err != nil {
				return nil, err
			}
		}
		category.Name = name
	}
	if in.Description != "" {
		category.Description = strings.TrimSpace(in.Description)
	}
	if in.Status != "" {
		category.Status = in.Status
	}
	if err := s.categories.Update(ctx, category); err != nil {
		return nil, categoryError(err)
	}
	return category, nil
}

// Delete removes a category and returns what was removed.
func (s *CategoryService) Delete(ctx context.Context, id string) (*domain.Category, error) {
	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return nil, categoryError(err)
	}
	if err := s.categories.Delete(ctx, id); err != nil {
		return nil, categoryError(err)
	}
	return category, nil
}

func (s *CategoryService) ensureNameFree(ctx context.Context, name, selfID string) error {
	existing, err := s.categories.GetByName(ctx, name)
	switch {
	case err == nil && existing.ID != selfID:
		return apperrors.NewConflict(msgCategoryExists)
	case err == nil, errors.Is(err, domain.ErrNotFound):
		return nil
	default:
		return apperrors.NewStoreUnavailable(err)
	}
}

func categoryError(err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return apperrors.NewNotFound("Category")
	case errors.Is(err, repository.ErrDuplicate):
		return apperrors.NewConflict(msgCategoryExists)
	default:
		return apperrors.NewStoreUnavailable(err)
	}
}
