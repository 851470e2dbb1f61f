package auth

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/shop-service/internal/domain"
)

const identityKey = "auth_identity"

type ctxKey struct{}

// WithIdentity stores the identity in a context.
func WithIdentity(ctx context.Context, id domain.Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// IdentityFrom reads the identity from a context.
func IdentityFrom(ctx context.Context) (domain.Identity, bool) {
	id, ok := ctx.Value(ctxKey{}).(domain.Identity)
	return id, ok
}

// IdentityFromContext retrieves the authenticated caller bound by the auth middleware.
func IdentityFromContext(c *fiber.Ctx) (domain.Identity, bool) {
	val := c.Locals(identityKey)
	if val == nil {
		return domain.Identity{}, false
	}
	id, ok := val.(domain.Identity)
	return id, ok
}

func bindIdentity(c *fiber.Ctx, id domain.Identity) {
	c.Locals(identityKey, id)
	c.SetUserContext(WithIdentity(c.UserContext(), id))
}
