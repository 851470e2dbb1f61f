package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/shop-service/internal/domain"
)

func TestMemoryUserRepository_EmailIsCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryUserRepository()

	user := &domain.User{Name: "Ada", Email: "Ada@Example.com", PasswordHash: "x"}
	require.NoError(t, repo.Create(ctx, user))
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, domain.RoleUser, user.Role)

	found, err := repo.FindByEmail(ctx, "ada@example.COM")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	err = repo.Create(ctx, &domain.User{Name: "Other", Email: "ADA@example.com"})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestMemoryUserRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryUserRepository(domain.User{ID: "demo1", Email: "a@b.c", Favorites: []string{"1"}})

	u, err := repo.FindByID(ctx, "demo1")
	require.NoError(t, err)
	u.Favorites[0] = "changed"

	again, err := repo.FindByID(ctx, "demo1")
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, again.Favorites)
	assert.Equal(t, []domain.Address{}, again.Addresses)
}

func TestMemoryUserRepository_MissingUser(t *testing.T) {
	repo := NewMemoryUserRepository()

	_, err := repo.FindByID(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, repo.Update(context.Background(), &domain.User{ID: "nope"}), domain.ErrNotFound)
}

func TestMemoryProductRepository_ListFilters(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryProductRepository(MockProducts()...)
	lo, hi := 100.0, 300.0

	tests := []struct {
		name   string
		filter domain.ProductFilter
		want   []string
	}{
		{name: "newest first by default", filter: domain.ProductFilter{}, want: []string{"6", "5", "4", "3", "2", "1"}},
		{name: "category", filter: domain.ProductFilter{Category: "Sports"}, want: []string{"6", "4"}},
		{name: "price window ascending", filter: domain.ProductFilter{MinPrice: &lo, MaxPrice: &hi, Sort: domain.SortPriceAsc}, want: []string{"3", "5", "2", "4"}},
		{name: "price descending", filter: domain.ProductFilter{Sort: domain.SortPriceDesc}, want: []string{"1", "4", "2", "5", "3", "6"}},
		{name: "search matches description", filter: domain.ProductFilter{Search: "NOISE"}, want: []string{"5"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products, err := repo.List(ctx, tt.filter)
			require.NoError(t, err)
			ids := make([]string, 0, len(products))
			for _, p := range products {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestMemoryProductRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryProductRepository()

	p := &domain.Product{Name: "Mat", Price: 10, Category: "Yoga"}
	require.NoError(t, repo.Create(ctx, p))
	assert.Equal(t, "active", p.Status)
	assert.False(t, p.CreatedAt.IsZero())

	p.Price = 12
	require.NoError(t, repo.Update(ctx, p))
	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 12.0, got.Price)

	count, err := repo.CountByCategory(ctx, "yoga")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	require.NoError(t, repo.Delete(ctx, p.ID))
	assert.ErrorIs(t, repo.Delete(ctx, p.ID), domain.ErrNotFound)
}

func TestMemoryCategoryRepository_Behaviour(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryCategoryRepository(MockCategories()...)

	all, err := repo.List(ctx, domain.CategoryFilter{Status: "all"})
	require.NoError(t, err)
	assert.Len(t, all, 6)
	assert.Equal(t, "6", all[0].ID)

	active, err := repo.List(ctx, domain.CategoryFilter{Status: "active"})
	require.NoError(t, err)
	assert.Len(t, active, 5)

	searched, err := repo.List(ctx, domain.CategoryFilter{Search: "yoga"})
	require.NoError(t, err)
	require.Len(t, searched, 1)
	assert.Equal(t, "2", searched[0].ID)

	dup := &domain.Category{Name: "yoga ürünleri"}
	assert.ErrorIs(t, repo.Create(ctx, dup), ErrDuplicate)

	fresh := &domain.Category{Name: "Outdoor", Status: domain.CategoryStatusActive}
	require.NoError(t, repo.Create(ctx, fresh))
	assert.Equal(t, "7", fresh.ID)

	require.NoError(t, repo.SetProductCount(ctx, "OUTDOOR", 3))
	got, err := repo.GetByName(ctx, "outdoor")
	require.NoError(t, err)
	assert.Equal(t, 3, got.ProductCount)

	require.NoError(t, repo.Delete(ctx, fresh.ID))
	_, err = repo.GetByID(ctx, fresh.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
