package seed

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/spec-kit/shop-service/internal/auth"
	"github.com/spec-kit/shop-service/internal/repository"
)

// Seeder replaces store contents with the mock catalog and the demo accounts.
type Seeder struct {
	users      repository.UserRepository
	products   repository.ProductRepository
	categories repository.CategoryRepository
	bcryptCost int
	logger     *zap.Logger
}

// New builds a seeder over the given repositories.
func New(users repository.UserRepository, products repository.ProductRepository, categories repository.CategoryRepository, bcryptCost int, logger *zap.Logger) *Seeder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Seeder{users: users, products: products, categories: categories, bcryptCost: bcryptCost, logger: logger}
}

// Categories clears and reinserts the mock categories. Ids are left to the store.
func (s *Seeder) Categories(ctx context.Context) (int, error) {
	if err := s.categories.DeleteAll(ctx); err != nil {
		return 0, fmt.Errorf("clear categories: %w", err)
	}
	s.logger.Info("cleared existing categories")

	seeded := repository.MockCategories()
	for i := range seeded {
		seeded[i].ID = ""
		if err := s.categories.Create(ctx, &seeded[i]); err != nil {
			return i, fmt.Errorf("insert category %q: %w", seeded[i].Name, err)
		}
	}
	s.logger.Info("categories seeded", zap.Int("count", len(seeded)))
	return len(seeded), nil
}

// Products clears and reinserts the mock products. Ids are left to the store.
func (s *Seeder) Products(ctx context.Context) (int, error) {
	if err := s.products.DeleteAll(ctx); err != nil {
		return 0, fmt.Errorf("clear products: %w", err)
	}
	s.logger.Info("cleared existing products")

	seeded := repository.MockProducts()
	for i := range seeded {
		seeded[i].ID = ""
		if err := s.products.Create(ctx, &seeded[i]); err != nil {
			return i, fmt.Errorf("insert product %q: %w", seeded[i].Name, err)
		}
	}
	s.logger.Info("products seeded", zap.Int("count", len(seeded)))
	return len(seeded), nil
}

// Users clears accounts and inserts the demo accounts under their fixed ids,
// so demo identities resolve to stored profiles.
func (s *Seeder) Users(ctx context.Context) (int, error) {
	if err := s.users.DeleteAll(ctx); err != nil {
		return 0, fmt.Errorf("clear users: %w", err)
	}
	s.logger.Info("cleared existing users")

	accounts := auth.DefaultDemoAccounts()
	for i, acc := range accounts {
		user, err := acc.NewUser(s.bcryptCost)
		if err != nil {
			return i, fmt.Errorf("hash password for %s: %w", acc.Identity.Email, err)
		}
		if err := s.users.Create(ctx, user); err != nil {
			return i, fmt.Errorf("insert user %s: %w", acc.Identity.Email, err)
		}
	}
	s.logger.Info("users seeded", zap.Int("count", len(accounts)))
	return len(accounts), nil
}

// All seeds categories, products and users in that order.
func (s *Seeder) All(ctx context.Context) error {
	for _, step := range []func(context.Context) (int, error){s.Categories, s.Products, s.Users} {
		if _, err := step(ctx); err != nil {
			return err
		}
	}
	return nil
}
