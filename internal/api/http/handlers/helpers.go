package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/shop-service/internal/auth"
	"github.com/spec-kit/shop-service/internal/domain"
	apperrors "github.com/spec-kit/shop-service/pkg/util"
)

var errInvalidPayload = apperrors.NewValidationError("invalid payload", nil)

// caller returns the identity bound by the auth middleware, failing closed.
func caller(c *fiber.Ctx) (domain.Identity, error) {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return domain.Identity{}, apperrors.NewUnauthorized(auth.MsgNotAuthorized)
	}
	return identity, nil
}
