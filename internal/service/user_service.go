package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/spec-kit/shop-service/internal/domain"
	"github.com/spec-kit/shop-service/internal/repository"
	apperrors "github.com/spec-kit/shop-service/pkg/util"
)

// ProfileUpdate carries profile fields; empty values keep the stored ones.
type ProfileUpdate struct {
	Name  string
	Email string
	Phone string
}

// AddressPatch carries address fields; nil values are left untouched.
type AddressPatch struct {
	Title      *string
	FullName   *string
	Phone      *string
	Street     *string
	City       *string
	District   *string
	PostalCode *string
	Country    *string
	IsDefault  *bool
}

func (p AddressPatch) apply(a *domain.Address) {
	set := func(dst *string, v *string) {
		if v != nil {
			*dst = *v
		}
	}
	set(&a.Title, p.Title)
	set(&a.FullName, p.FullName)
	set(&a.Phone, p.Phone)
	set(&a.Street, p.Street)
	set(&a.City, p.City)
	set(&a.District, p.District)
	set(&a.PostalCode, p.PostalCode)
	set(&a.Country, p.Country)
	if p.IsDefault != nil {
		a.IsDefault = *p.IsDefault
	}
}

// UserService manages the caller's own profile, addresses and favorites.
type UserService struct {
	users repository.UserRepository
}

// NewUserService constructs the service.
func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

// Profile returns the stored account.
func (s *UserService) Profile(ctx context.Context, userID string) (*domain.User, error) {
	return loadUser(ctx, s.users, userID)
}

// UpdateProfile overwrites non-empty fields.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, in ProfileUpdate) (*domain.User, error) {
	user, err := loadUser(ctx, s.users, userID)
	if err != nil {
		return nil, err
	}
	if in.Name != "" {
		user.Name = in.Name
	}
	if in.Email != "" {
		user.Email = in.Email
	}
	if in.Phone != "" {
		user.Phone = in.Phone
	}
	if err := s.save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// AddAddress appends an address. A new default address clears the previous default.
func (s *UserService) AddAddress(ctx context.Context, userID string, patch AddressPatch) (*domain.User, error) {
	user, err := loadUser(ctx, s.users, userID)
	if err != nil {
		return nil, err
	}
	addr := domain.Address{ID: uuid.NewString()}
	patch.apply(&addr)
	user.Addresses = append(user.Addresses, addr)
	if addr.IsDefault {
		makeDefault(user, addr.ID)
	}
	if err := s.save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateAddress merges the patch into an existing address.
func (s *UserService) UpdateAddress(ctx context.Context, userID, addressID string, patch AddressPatch) (*domain.User, error) {
	user, err := loadUser(ctx, s.users, userID)
	if err != nil {
		return nil, err
	}
	idx := user.FindAddress(addressID)
	if idx < 0 {
		return nil, apperrors.NewNotFound("Address")
	}
	patch.apply(&user.Addresses[idx])
	if user.Addresses[idx].IsDefault {
		makeDefault(user, addressID)
	}
	if err := s.save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteAddress removes an address. Unknown ids are ignored.
func (s *UserService) DeleteAddress(ctx context.Context, userID, addressID string) (*domain.User, error) {
	user, err := loadUser(ctx, s.users, userID)
	if err != nil {
		return nil, err
	}
	kept := user.Addresses[:0]
	for _, a := range user.Addresses {
		if a.ID != addressID {
			kept = append(kept, a)
		}
	}
	user.Addresses = kept
	if err := s.save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// AddFavorite records a favorite product. Adding twice is a no-op.
func (s *UserService) AddFavorite(ctx context.Context, userID, productID string) ([]string, error) {
	user, err := loadUser(ctx, s.users, userID)
	if err != nil {
		return nil, err
	}
	if user.HasFavorite(productID) {
		return user.Favorites, nil
	}
	user.Favorites = append(user.Favorites, productID)
	if err := s.save(ctx, user); err != nil {
		return nil, err
	}
	return user.Favorites, nil
}

// RemoveFavorite drops a favorite product.
func (s *UserService) RemoveFavorite(ctx context.Context, userID, productID string) ([]string, error) {
	user, err := loadUser(ctx, s.users, userID)
	if err != nil {
		return nil, err
	}
	kept := make([]string, 0, len(user.Favorites))
	for _, id := range user.Favorites {
		if id != productID {
			kept = append(kept, id)
		}
	}
	user.Favorites = kept
	if err := s.save(ctx, user); err != nil {
		return nil, err
	}
	return user.Favorites, nil
}

func (s *UserService) save(ctx context.Context, user *domain.User) error {
	if err := s.users.Update(ctx, user); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			return apperrors.NewConflict("Email already in use")
		case errors.Is(err, domain.ErrNotFound):
			return apperrors.NewNotFound("User")
		default:
			return apperrors.NewStoreUnavailable(err)
		}
	}
	return nil
}

func makeDefault(user *domain.User, addressID string) {
	for i := range user.Addresses {
		user.Addresses[i].IsDefault = user.Addresses[i].ID == addressID
	}
}
