package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/shop-service/internal/auth"
	"github.com/spec-kit/shop-service/internal/domain"
	"github.com/spec-kit/shop-service/internal/repository"
	apperrors "github.com/spec-kit/shop-service/pkg/util"
)

const (
	msgMissingCredentials = "Please provide email and password"
	msgInvalidCredentials = "Invalid credentials"
	msgUserExists         = "User already exists"
)

// AuthResult is the outcome of a successful register or login.
// ExpiresAt is zero for demo tokens, which do not expire.
type AuthResult struct {
	Token     string
	ExpiresAt time.Time
	User      domain.Identity
}

// AuthService coordinates registration and login flows.
type AuthService struct {
	users      repository.UserRepository
	tokens     *auth.TokenManager
	demo       *auth.DemoDirectory
	bcryptCost int
	logger     *zap.Logger
}

// AuthDependencies encapsulates requirements for the auth service.
type AuthDependencies struct {
	UserRepo   repository.UserRepository
	Tokens     *auth.TokenManager
	Demo       *auth.DemoDirectory
	BcryptCost int
	Logger     *zap.Logger
}

// NewAuthService builds the service. A nil Demo directory disables demo logins.
func NewAuthService(deps AuthDependencies) *AuthService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{
		users:      deps.UserRepo,
		tokens:     deps.Tokens,
		demo:       deps.Demo,
		bcryptCost: deps.BcryptCost,
		logger:     logger,
	}
}

// Register creates a new customer account and signs a token for it.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*AuthResult, error) {
	email = strings.TrimSpace(email)
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, apperrors.NewConflict(msgUserExists)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, apperrors.NewStoreUnavailable(err)
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	user := &domain.User{
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleUser,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperrors.NewConflict(msgUserExists)
		}
		return nil, apperrors.NewStoreUnavailable(err)
	}

	return s.issue(user)
}

// Login authenticates by email and password. Demo accounts are matched first.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, apperrors.NewValidationError(msgMissingCredentials, nil)
	}

	if account, ok := s.demo.Authenticate(email, password); ok {
		return &AuthResult{Token: account.Token(), User: account.Identity}, nil
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperrors.NewUnauthorized(msgInvalidCredentials)
		}
		return nil, apperrors.NewStoreUnavailable(err)
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		if !errors.Is(err, auth.ErrPasswordMismatch) {
			s.logger.Warn("stored password hash unusable", zap.String("user_id", user.ID), zap.Error(err))
		}
		return nil, apperrors.NewUnauthorized(msgInvalidCredentials)
	}

	return s.issue(user)
}

// Me returns the account behind the identity. Demo identities are answered without the store.
func (s *AuthService) Me(ctx context.Context, identity domain.Identity) (*domain.User, error) {
	if identity.Demo {
		return &domain.User{
			ID:        identity.ID,
			Name:      identity.Name,
			Email:     identity.Email,
			Role:      identity.Role,
			Addresses: []domain.Address{},
			Favorites: []string{},
		}, nil
	}
	return loadUser(ctx, s.users, identity.ID)
}

func (s *AuthService) issue(user *domain.User) (*AuthResult, error) {
	token, exp, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return &AuthResult{Token: token, ExpiresAt: exp, User: domain.IdentityFromUser(user)}, nil
}

// loadUser fetches an account, mapping absence to the public "User not found" error.
func loadUser(ctx context.Context, users repository.UserRepository, id string) (*domain.User, error) {
	user, err := users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperrors.NewNotFound("User")
		}
		return nil, apperrors.NewStoreUnavailable(err)
	}
	return user, nil
}
