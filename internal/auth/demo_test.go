package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/shop-service/internal/domain"
)

func TestDefaultDemoAccountsAreFixed(t *testing.T) {
	dir := NewDemoDirectory(DefaultDemoAccounts())

	want := map[string]domain.Identity{
		"1": {ID: "demo1", Email: "admin@liftpick.com", Name: "Admin User", Role: domain.RoleAdmin, Demo: true},
		"2": {ID: "demo2", Email: "user@liftpick.com", Name: "Test User", Role: domain.RoleUser, Demo: true},
		"3": {ID: "demo3", Email: "test@test.com", Name: "Demo User", Role: domain.RoleUser, Demo: true},
	}
	for key, identity := range want {
		got, ok := dir.Lookup(key)
		require.True(t, ok, key)
		assert.Equal(t, identity, got)
	}

	_, ok := dir.Lookup("4")
	assert.False(t, ok)
	_, ok = dir.Lookup("")
	assert.False(t, ok)
}

func TestDemoAuthenticate(t *testing.T) {
	dir := NewDemoDirectory(DefaultDemoAccounts())

	acc, ok := dir.Authenticate("admin@liftpick.com", "admin123")
	require.True(t, ok)
	assert.Equal(t, "demo_token_1", acc.Token())

	_, ok = dir.Authenticate("admin@liftpick.com", "user123")
	assert.False(t, ok)
	_, ok = dir.Authenticate("nobody@liftpick.com", "admin123")
	assert.False(t, ok)
}

func TestNilDemoDirectory(t *testing.T) {
	var dir *DemoDirectory
	_, ok := dir.Lookup("1")
	assert.False(t, ok)
	_, ok = dir.Authenticate("admin@liftpick.com", "admin123")
	assert.False(t, ok)
	assert.Empty(t, dir.Accounts())
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter2", 4)
	require.NoError(t, err)
	assert.NoError(t, ComparePassword(hash, "hunter2"))
	assert.ErrorIs(t, ComparePassword(hash, "hunter3"), ErrPasswordMismatch)
}

func TestDemoAccountNewUser(t *testing.T) {
	acc := DefaultDemoAccounts()[1]

	user, err := acc.NewUser(4)
	require.NoError(t, err)
	assert.Equal(t, "demo2", user.ID)
	assert.Equal(t, "user@liftpick.com", user.Email)
	assert.NoError(t, ComparePassword(user.PasswordHash, "user123"))
}
