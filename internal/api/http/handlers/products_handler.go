package handlers

import (
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/shop-service/internal/api/dto"
	"github.com/spec-kit/shop-service/internal/domain"
	"github.com/spec-kit/shop-service/internal/service"
	apperrors "github.com/spec-kit/shop-service/pkg/util"
)

// ImageSaver stores uploaded product images and returns their public paths.
type ImageSaver interface {
	Save(files []*multipart.FileHeader) ([]string, error)
}

// ProductsHandler exposes the catalog.
type ProductsHandler struct {
	products *service.ProductService
	images   ImageSaver
}

// NewProductsHandler constructs handler.
func NewProductsHandler(products *service.ProductService, images ImageSaver) *ProductsHandler {
	return &ProductsHandler{products: products, images: images}
}

// List handles GET /api/products.
func (h *ProductsHandler) List(c *fiber.Ctx) error {
	filter := domain.ProductFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		Sort:     domain.ParseProductSort(c.Query("sort")),
	}
	var err error
	if filter.MinPrice, err = queryFloat(c, "minPrice"); err != nil {
		return err
	}
	if filter.MaxPrice, err = queryFloat(c, "maxPrice"); err != nil {
		return err
	}

	products, err := h.products.List(c.UserContext(), filter)
	if err != nil {
		return err
	}
	return c.JSON(dto.ProductListResponse{Success: true, Count: len(products), Products: products})
}

// Get handles GET /api/products/:id.
func (h *ProductsHandler) Get(c *fiber.Ctx) error {
	product, err := h.products.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.ProductResponse{Success: true, Product: product})
}

// Create handles POST /api/products with a JSON or multipart body.
func (h *ProductsHandler) Create(c *fiber.Ctx) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}

	var req dto.ProductCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return errInvalidPayload
	}
	if err := dto.Validate(&req); err != nil {
		return err
	}
	if isMultipart(c) {
		form, err := c.MultipartForm()
		if err != nil {
			return errInvalidPayload
		}
		if files := form.File["images"]; len(files) > 0 {
			if h.images == nil {
				return apperrors.NewValidationError("image uploads are not available", nil)
			}
			paths, err := h.images.Save(files)
			if err != nil {
				return err
			}
			req.Images = paths
		}
	}

	product, err := h.products.Create(c.UserContext(), identity.ID, service.ProductPatch{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		DiscountPrice: req.DiscountPrice,
		Category:      req.Category,
		Images:        req.Images,
		Stock:         req.Stock,
		Colors:        req.Colors,
		Sizes:         req.Sizes,
		Brand:         req.Brand,
		Rating:        req.Rating,
		NumReviews:    req.NumReviews,
		IsFeatured:    req.IsFeatured,
		Status:        req.Status,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.ProductResponse{Success: true, Product: product})
}

// Update handles PUT /api/products/:id.
func (h *ProductsHandler) Update(c *fiber.Ctx) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}

	var req dto.ProductUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return errInvalidPayload
	}
	if err := dto.Validate(&req); err != nil {
		return err
	}

	product, err := h.products.Update(c.UserContext(), identity.ID, c.Params("id"), service.ProductPatch{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		DiscountPrice: req.DiscountPrice,
		Category:      req.Category,
		Images:        req.Images,
		Stock:         req.Stock,
		Colors:        req.Colors,
		Sizes:         req.Sizes,
		Brand:         req.Brand,
		Rating:        req.Rating,
		NumReviews:    req.NumReviews,
		IsFeatured:    req.IsFeatured,
		Status:        req.Status,
	})
	if err != nil {
		return err
	}
	return c.JSON(dto.ProductResponse{Success: true, Product: product})
}

// Delete handles DELETE /api/products/:id.
func (h *ProductsHandler) Delete(c *fiber.Ctx) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}
	if err := h.products.Delete(c.UserContext(), identity.ID, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "message": "Product deleted"})
}

func queryFloat(c *fiber.Ctx, key string) (*float64, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, apperrors.NewValidationError(key+" must be a number", map[string]any{"field": key})
	}
	return &v, nil
}

func isMultipart(c *fiber.Ctx) bool {
	return strings.HasPrefix(string(c.Request().Header.ContentType()), fiber.MIMEMultipartForm)
}
