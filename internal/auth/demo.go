package auth

import (
	"crypto/subtle"
	"strings"

	"github.com/spec-kit/shop-service/internal/domain"
)

// DemoTokenPrefix marks unsigned demo tokens: the prefix followed by a directory key.
const DemoTokenPrefix = "demo_token_"

// DemoAccount is a fixed identity reachable without a credential store.
type DemoAccount struct {
	Key      string
	Identity domain.Identity
	Password string
}

// Token returns the demo token that resolves to this account.
func (a DemoAccount) Token() string {
	return DemoTokenPrefix + a.Key
}

// DefaultDemoAccounts returns the three accounts existing demo clients rely on.
// Ids, emails and roles must not change.
func DefaultDemoAccounts() []DemoAccount {
	return []DemoAccount{
		{Key: "1", Password: "admin123", Identity: domain.Identity{ID: "demo1", Email: "admin@liftpick.com", Name: "Admin User", Role: domain.RoleAdmin}},
		{Key: "2", Password: "user123", Identity: domain.Identity{ID: "demo2", Email: "user@liftpick.com", Name: "Test User", Role: domain.RoleUser}},
		{Key: "3", Password: "test123", Identity: domain.Identity{ID: "demo3", Email: "test@test.com", Name: "Demo User", Role: domain.RoleUser}},
	}
}

// DemoDirectory resolves demo keys and demo credentials. A nil directory knows nothing.
type DemoDirectory struct {
	accounts []DemoAccount
	byKey    map[string]DemoAccount
}

// NewDemoDirectory indexes the given accounts by key.
func NewDemoDirectory(accounts []DemoAccount) *DemoDirectory {
	d := &DemoDirectory{byKey: make(map[string]DemoAccount, len(accounts))}
	for _, a := range accounts {
		a.Identity.Demo = true
		d.accounts = append(d.accounts, a)
		d.byKey[a.Key] = a
	}
	return d
}

// Lookup returns the identity for a demo key.
func (d *DemoDirectory) Lookup(key string) (domain.Identity, bool) {
	if d == nil {
		return domain.Identity{}, false
	}
	a, ok := d.byKey[key]
	if !ok {
		return domain.Identity{}, false
	}
	return a.Identity, true
}

// Authenticate matches an email/password pair against the demo accounts.
func (d *DemoDirectory) Authenticate(email, password string) (DemoAccount, bool) {
	if d == nil {
		return DemoAccount{}, false
	}
	for _, a := range d.accounts {
		if !strings.EqualFold(a.Identity.Email, email) {
			continue
		}
		if subtle.ConstantTimeCompare([]byte(a.Password), []byte(password)) == 1 {
			return a, true
		}
	}
	return DemoAccount{}, false
}

// Accounts returns the accounts in registration order.
func (d *DemoDirectory) Accounts() []DemoAccount {
	if d == nil {
		return nil
	}
	return append([]DemoAccount(nil), d.accounts...)
}

// NewUser builds a stored account for the demo identity with a bcrypt-hashed password.
func (a DemoAccount) NewUser(bcryptCost int) (*domain.User, error) {
	hash, err := HashPassword(a.Password, bcryptCost)
	if err != nil {
		return nil, err
	}
	return &domain.User{
		ID:           a.Identity.ID,
		Name:         a.Identity.Name,
		Email:        a.Identity.Email,
		PasswordHash: hash,
		Role:         a.Identity.Role,
		Addresses:    []domain.Address{},
		Favorites:    []string{},
	}, nil
}
