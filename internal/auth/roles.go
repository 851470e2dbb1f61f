package auth

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/shop-service/internal/domain"
	apperrors "github.com/spec-kit/shop-service/pkg/util"
)

// RequireRole ensures the authenticated identity has one of the allowed roles.
// It fails closed with 401 when no identity was bound.
func RequireRole(allowed ...domain.Role) fiber.Handler {
	allowedSet := make(map[domain.Role]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		identity, ok := IdentityFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized(MsgNotAuthorized)
		}
		if _, exists := allowedSet[identity.Role]; !exists {
			return apperrors.NewForbidden(fmt.Sprintf("User role %s is not authorized to access this route", identity.Role))
		}
		return c.Next()
	}
}

// Protect chains the auth middleware with a role check for the given roles.
func Protect(m *AuthMiddleware, allowed ...domain.Role) []fiber.Handler {
	handlers := []fiber.Handler{m.Handle}
	if len(allowed) > 0 {
		handlers = append(handlers, RequireRole(allowed...))
	}
	return handlers
}
