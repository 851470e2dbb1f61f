package repository

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/shop-service/internal/domain"
)

// The memory repositories back the service when no database is configured.
// They copy on every read and write so callers never share state with the store.

type memoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]domain.User
	now   func() time.Time
}

// NewMemoryUserRepository returns an in-memory UserRepository seeded with users.
func NewMemoryUserRepository(seed ...domain.User) UserRepository {
	r := &memoryUserRepository{users: make(map[string]domain.User, len(seed)), now: time.Now}
	for _, u := range seed {
		u := u
		_ = r.Create(context.Background(), &u)
	}
	return r
}

func (r *memoryUserRepository) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if strings.EqualFold(existing.Email, user.Email) {
			return ErrDuplicate
		}
	}
	normalizeUser(user)
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	now := r.now().UTC()
	user.CreatedAt, user.UpdatedAt = now, now
	r.users[user.ID] = cloneUser(*user)
	return nil
}

func (r *memoryUserRepository) Update(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return domain.ErrNotFound
	}
	for id, existing := range r.users {
		if id != user.ID && strings.EqualFold(existing.Email, user.Email) {
			return ErrDuplicate
		}
	}
	normalizeUser(user)
	user.UpdatedAt = r.now().UTC()
	r.users[user.ID] = cloneUser(*user)
	return nil
}

func (r *memoryUserRepository) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := cloneUser(u)
	return &out, nil
}

func (r *memoryUserRepository) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			out := cloneUser(u)
			return &out, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memoryUserRepository) DeleteAll(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users = make(map[string]domain.User)
	return nil
}

func cloneUser(u domain.User) domain.User {
	u.Addresses = append([]domain.Address{}, u.Addresses...)
	u.Favorites = append([]string{}, u.Favorites...)
	return u
}

type memoryProductRepository struct {
	mu       sync.RWMutex
	products map[string]domain.Product
	now      func() time.Time
}

// NewMemoryProductRepository returns an in-memory ProductRepository seeded with products.
func NewMemoryProductRepository(seed ...domain.Product) ProductRepository {
	r := &memoryProductRepository{products: make(map[string]domain.Product, len(seed)), now: time.Now}
	for _, p := range seed {
		normalizeProduct(&p)
		if p.ID == "" {
			p.ID = uuid.NewString()
		}
		r.products[p.ID] = cloneProduct(p)
	}
	return r
}

func (r *memoryProductRepository) Create(_ context.Context, product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	normalizeProduct(product)
	if product.ID == "" {
		product.ID = uuid.NewString()
	}
	if product.CreatedAt.IsZero() {
		product.CreatedAt = r.now().UTC()
	}
	r.products[product.ID] = cloneProduct(*product)
	return nil
}

func (r *memoryProductRepository) Update(_ context.Context, product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.products[product.ID]
	if !ok {
		return domain.ErrNotFound
	}
	normalizeProduct(product)
	product.CreatedAt = existing.CreatedAt
	r.products[product.ID] = cloneProduct(*product)
	return nil
}

func (r *memoryProductRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.products, id)
	return nil
}

func (r *memoryProductRepository) GetByID(_ context.Context, id string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := cloneProduct(p)
	return &out, nil
}

func (r *memoryProductRepository) List(_ context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	out := []domain.Product{}
	for _, p := range r.products {
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if filter.MinPrice != nil && p.Price < *filter.MinPrice {
			continue
		}
		if filter.MaxPrice != nil && p.Price > *filter.MaxPrice {
			continue
		}
		if search != "" && !containsFold(p.Name, search) && !containsFold(p.Description, search) {
			continue
		}
		out = append(out, cloneProduct(p))
	}

	sort.SliceStable(out, func(i, j int) bool {
		switch filter.Sort {
		case domain.SortPriceAsc:
			if out[i].Price != out[j].Price {
				return out[i].Price < out[j].Price
			}
		case domain.SortPriceDesc:
			if out[i].Price != out[j].Price {
				return out[i].Price > out[j].Price
			}
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *memoryProductRepository) CountByCategory(_ context.Context, category string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	count := 0
	for _, p := range r.products {
		if strings.EqualFold(p.Category, category) {
			count++
		}
	}
	return count, nil
}

func (r *memoryProductRepository) DeleteAll(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = make(map[string]domain.Product)
	return nil
}

func cloneProduct(p domain.Product) domain.Product {
	p.Images = append([]string{}, p.Images...)
	p.Colors = append([]string{}, p.Colors...)
	p.Sizes = append([]string{}, p.Sizes...)
	if p.OriginalPrice != nil {
		v := *p.OriginalPrice
		p.OriginalPrice = &v
	}
	if p.DiscountPrice != nil {
		v := *p.DiscountPrice
		p.DiscountPrice = &v
	}
	return p
}

type memoryCategoryRepository struct {
	mu         sync.RWMutex
	categories map[string]domain.Category
	nextID     int
	now        func() time.Time
}

// NewMemoryCategoryRepository returns an in-memory CategoryRepository seeded with categories.
// Generated ids continue after the highest numeric seed id.
func NewMemoryCategoryRepository(seed ...domain.Category) CategoryRepository {
	r := &memoryCategoryRepository{categories: make(map[string]domain.Category, len(seed)), now: time.Now}
	for _, c := range seed {
		r.categories[c.ID] = c
		if n := numericID(c.ID); n > r.nextID {
			r.nextID = n
		}
	}
	return r
}

func (r *memoryCategoryRepository) Create(_ context.Context, category *domain.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.categories {
		if strings.EqualFold(existing.Name, category.Name) {
			return ErrDuplicate
		}
	}
	if category.ID == "" {
		r.nextID++
		category.ID = strconv.Itoa(r.nextID)
	}
	if category.CreatedAt.IsZero() {
		category.CreatedAt = r.now().UTC()
	}
	r.categories[category.ID] = *category
	return nil
}

func (r *memoryCategoryRepository) Update(_ context.Context, category *domain.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.categories[category.ID]; !ok {
		return domain.ErrNotFound
	}
	for id, existing := range r.categories {
		if id != category.ID && strings.EqualFold(existing.Name, category.Name) {
			return ErrDuplicate
		}
	}
	r.categories[category.ID] = *category
	return nil
}

func (r *memoryCategoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.categories[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.categories, id)
	return nil
}

func (r *memoryCategoryRepository) GetByID(_ context.Context, id string) (*domain.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.categories[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &c, nil
}

func (r *memoryCategoryRepository) GetByName(_ context.Context, name string) (*domain.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.categories {
		if strings.EqualFold(c.Name, name) {
			out := c
			return &out, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memoryCategoryRepository) List(_ context.Context, filter domain.CategoryFilter) ([]domain.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	out := []domain.Category{}
	for _, c := range r.categories {
		if filter.Status != "" && filter.Status != "all" && string(c.Status) != filter.Status {
			continue
		}
		if search != "" && !containsFold(c.Name, search) && !containsFold(c.Description, search) {
			continue
		}
		out = append(out, c)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r *memoryCategoryRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.categories), nil
}

func (r *memoryCategoryRepository) SetProductCount(_ context.Context, name string, count int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, c := range r.categories {
		if strings.EqualFold(c.Name, name) {
			c.ProductCount = count
			r.categories[id] = c
		}
	}
	return nil
}

func (r *memoryCategoryRepository) DeleteAll(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.categories = make(map[string]domain.Category)
	r.nextID = 0
	return nil
}

// containsFold reports whether lowerNeedle occurs in s, ignoring case.
func containsFold(s, lowerNeedle string) bool {
	return strings.Contains(strings.ToLower(s), lowerNeedle)
}

func numericID(id string) int {
	n, err := strconv.Atoi(id)
	if err != nil {
		return 0
	}
	return n
}
