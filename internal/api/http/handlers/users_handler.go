package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/shop-service/internal/api/dto"
	"github.com/spec-kit/shop-service/internal/domain"
	"github.com/spec-kit/shop-service/internal/service"
)

// UsersHandler exposes the caller's profile, addresses and favorites.
type UsersHandler struct {
	users *service.UserService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(users *service.UserService) *UsersHandler {
	return &UsersHandler{users: users}
}

// Profile handles GET /api/users/profile.
func (h *UsersHandler) Profile(c *fiber.Ctx) error {
	return h.respondUser(c, func(id string) (*domain.User, error) {
		return h.users.Profile(c.UserContext(), id)
	})
}

// UpdateProfile handles PUT /api/users/profile.
func (h *UsersHandler) UpdateProfile(c *fiber.Ctx) error {
	var req dto.ProfileUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return errInvalidPayload
	}
	if err := dto.Validate(&req); err != nil {
		return err
	}
	return h.respondUser(c, func(id string) (*domain.User, error) {
		return h.users.UpdateProfile(c.UserContext(), id, service.ProfileUpdate{Name: req.Name, Email: req.Email, Phone: req.Phone})
	})
}

// AddAddress handles POST /api/users/address.
func (h *UsersHandler) AddAddress(c *fiber.Ctx) error {
	patch, err := parseAddress(c)
	if err != nil {
		return err
	}
	return h.respondUser(c, func(id string) (*domain.User, error) {
		return h.users.AddAddress(c.UserContext(), id, patch)
	})
}

// UpdateAddress handles PUT /api/users/address/:addressId.
func (h *UsersHandler) UpdateAddress(c *fiber.Ctx) error {
	patch, err := parseAddress(c)
	if err != nil {
		return err
	}
	return h.respondUser(c, func(id string) (*domain.User, error) {
		return h.users.UpdateAddress(c.UserContext(), id, c.Params("addressId"), patch)
	})
}

// DeleteAddress handles DELETE /api/users/address/:addressId.
func (h *UsersHandler) DeleteAddress(c *fiber.Ctx) error {
	return h.respondUser(c, func(id string) (*domain.User, error) {
		return h.users.DeleteAddress(c.UserContext(), id, c.Params("addressId"))
	})
}

// AddFavorite handles POST /api/users/favorites/:productId.
func (h *UsersHandler) AddFavorite(c *fiber.Ctx) error {
	return h.respondFavorites(c, func(id string) ([]string, error) {
		return h.users.AddFavorite(c.UserContext(), id, c.Params("productId"))
	})
}

// RemoveFavorite handles DELETE /api/users/favorites/:productId.
func (h *UsersHandler) RemoveFavorite(c *fiber.Ctx) error {
	return h.respondFavorites(c, func(id string) ([]string, error) {
		return h.users.RemoveFavorite(c.UserContext(), id, c.Params("productId"))
	})
}

func (h *UsersHandler) respondUser(c *fiber.Ctx, op func(userID string) (*domain.User, error)) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}
	user, err := op(identity.ID)
	if err != nil {
		return err
	}
	return c.JSON(dto.UserResponse{Success: true, User: user})
}

func (h *UsersHandler) respondFavorites(c *fiber.Ctx, op func(userID string) ([]string, error)) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}
	favorites, err := op(identity.ID)
	if err != nil {
		return err
	}
	return c.JSON(dto.FavoritesResponse{Success: true, Favorites: favorites})
}

func parseAddress(c *fiber.Ctx) (service.AddressPatch, error) {
	var req dto.AddressRequest
	if err := c.BodyParser(&req); err != nil {
		return service.AddressPatch{}, errInvalidPayload
	}
	if err := dto.Validate(&req); err != nil {
		return service.AddressPatch{}, err
	}
	return service.AddressPatch{
		Title:      req.Title,
		FullName:   req.FullName,
		Phone:      req.Phone,
		Street:     req.Street,
		City:       req.City,
		District:   req.District,
		PostalCode: req.PostalCode,
		Country:    req.Country,
		IsDefault:  req.IsDefault,
	}, nil
}
