package auth

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/shop-service/internal/domain"
	apperrors "github.com/spec-kit/shop-service/pkg/util"
)

// Rejection messages. Verification failures are deliberately not told apart.
const (
	MsgNotAuthorized = "Not authorized to access this route"
	MsgUserNotFound  = "User not found"
)

// CredentialStore loads accounts by id. Missing accounts are reported as domain.ErrNotFound.
type CredentialStore interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
}

// RejectionRecorder counts auth rejections by reason.
type RejectionRecorder interface {
	RecordAuthRejection(reason string)
}

// AuthMiddleware validates bearer tokens and loads identities.
type AuthMiddleware struct {
	tokens  *TokenManager
	demo    *DemoDirectory
	users   CredentialStore
	logger  *zap.Logger
	metrics RejectionRecorder
}

// NewAuthMiddleware constructs middleware. A nil demo directory disables demo tokens.
func NewAuthMiddleware(tokens *TokenManager, demo *DemoDirectory, users CredentialStore, logger *zap.Logger, metrics RejectionRecorder) *AuthMiddleware {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthMiddleware{tokens: tokens, demo: demo, users: users, logger: logger, metrics: metrics}
}

// Handle enforces authentication for protected routes.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	identity, err := m.Resolve(c.UserContext(), c.Get(fiber.HeaderAuthorization))
	if err != nil {
		return err
	}
	bindIdentity(c, identity)
	return c.Next()
}

// Resolve turns an Authorization header value into an identity.
func (m *AuthMiddleware) Resolve(ctx context.Context, header string) (domain.Identity, error) {
	raw, err := ParseBearer(header)
	if err != nil {
		m.reject("missing_token")
		return domain.Identity{}, apperrors.NewUnauthorized(MsgNotAuthorized)
	}

	token := ParseToken(raw)
	if token.Kind == TokenKindDemo {
		if identity, ok := m.demo.Lookup(token.DemoKey); ok {
			return identity, nil
		}
		// Unknown demo keys fall through; they never verify as signed tokens.
	}

	subjectID, err := m.tokens.Verify(token.Raw)
	if err != nil {
		m.logger.Debug("token rejected", zap.Error(err))
		m.reject("invalid_token")
		return domain.Identity{}, apperrors.NewUnauthorized(MsgNotAuthorized)
	}

	user, err := m.users.FindByID(ctx, subjectID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			m.reject("user_not_found")
			return domain.Identity{}, apperrors.NewUnauthorized(MsgUserNotFound)
		}
		return domain.Identity{}, apperrors.NewStoreUnavailable(err)
	}
	return domain.IdentityFromUser(user), nil
}

func (m *AuthMiddleware) reject(reason string) {
	if m.metrics != nil {
		m.metrics.RecordAuthRejection(reason)
	}
}
