package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/shop-service/internal/api/dto"
	"github.com/spec-kit/shop-service/internal/domain"
	"github.com/spec-kit/shop-service/internal/service"
)

// CategoriesHandler exposes product categories.
type CategoriesHandler struct {
	categories *service.CategoryService
}

// NewCategoriesHandler constructs handler.
func NewCategoriesHandler(categories *service.CategoryService) *CategoriesHandler {
	return &CategoriesHandler{categories: categories}
}

// List handles GET /api/categories.
func (h *CategoriesHandler) List(c *fiber.Ctx) error {
	categories, err := h.categories.List(c.UserContext(), domain.CategoryFilter{
		Status: c.Query("status"),
		Search: c.Query("search"),
	})
	if err != nil {
		return err
	}
	return c.JSON(dto.CategoryListResponse{Success: true, Count: len(categories), Categories: categories})
}

// Get handles GET /api/categories/:id.
func (h *CategoriesHandler) Get(c *fiber.Ctx) error {
	category, err := h.categories.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.CategoryResponse{Success: true, Category: category})
}

// Create handles POST /api/categories.
func (h *CategoriesHandler) Create(c *fiber.Ctx) error {
	var req dto.CategoryCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return errInvalidPayload
	}
	if err := dto.Validate(&req); err != nil {
		return err
	}
	category, err := h.categories.Create(c.UserContext(), service.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
		Status:      domain.CategoryStatus(req.Status),
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.CategoryResponse{Success: true, Category: category})
}

// Update handles PUT /api/categories/:id.
func (h *CategoriesHandler) Update(c *fiber.Ctx) error {
	var req dto.CategoryUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return errInvalidPayload
	}
	if err := dto.Validate(&req); err != nil {
		return err
	}
	category, err := h.categories.Update(c.UserContext(), c.Params("id"), service.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
		Status:      domain.CategoryStatus(req.Status),
	})
	if err != nil {
		return err
	}
	return c.JSON(dto.CategoryResponse{Success: true, Category: category})
}

// Delete handles DELETE /api/categories/:id.
func (h *CategoriesHandler) Delete(c *fiber.Ctx) error {
	category, err := h.categories.Delete(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.CategoryResponse{Success: true, Message: "Category deleted successfully", Category: category})
}
