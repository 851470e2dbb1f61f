package auth

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time { return c.t }

func newClock() *fakeClock {
	return &fakeClock{t: time.Unix(1700000000, 0).UTC()}
}

func TestIssueAndVerify(t *testing.T) {
	clock := newClock()
	tm := NewTokenManager("secret", 0, WithClock(clock.Now))

	token, exp, err := tm.Issue("user-1")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, clock.t.Add(30*24*time.Hour), exp)

	subject, err := tm.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", subject)
}

func TestVerifyExpiryBoundary(t *testing.T) {
	clock := newClock()
	tm := NewTokenManager("secret", time.Hour, WithClock(clock.Now))

	token, exp, err := tm.Issue("user-1")
	require.NoError(t, err)

	clock.t = exp.Add(-time.Second)
	subject, err := tm.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", subject)

	clock.t = exp
	_, err = tm.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	clock.t = exp.Add(time.Second)
	_, err = tm.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsForeignSecret(t *testing.T) {
	clock := newClock()
	issuer := NewTokenManager("secret-a", time.Hour, WithClock(clock.Now))
	verifier := NewTokenManager("secret-b", time.Hour, WithClock(clock.Now))

	token, _, err := issuer.Issue("user-1")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsMalformedAndUnsigned(t *testing.T) {
	clock := newClock()
	tm := NewTokenManager("secret", time.Hour, WithClock(clock.Now))

	for _, raw := range []string{"", "not-a-jwt", "a.b.c", DemoTokenPrefix + "1"} {
		_, err := tm.Verify(raw)
		assert.ErrorIs(t, err, ErrInvalidToken, raw)
	}

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "user-1",
		ExpiresAt: jwt.NewNumericDate(clock.t.Add(time.Hour)),
	})
	raw, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = tm.Verify(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRequiresSubjectAndExpiry(t *testing.T) {
	clock := newClock()
	tm := NewTokenManager("secret", time.Hour, WithClock(clock.Now))

	noSubject := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(clock.t.Add(time.Hour)),
	})
	raw, err := noSubject.SignedString([]byte("secret"))
	require.NoError(t, err)
	_, err = tm.Verify(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)

	noExpiry := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "user-1"})
	raw, err = noExpiry.SignedString([]byte("secret"))
	require.NoError(t, err)
	_, err = tm.Verify(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestIssueRequiresSubject(t *testing.T) {
	tm := NewTokenManager("secret", time.Hour)
	_, _, err := tm.Issue("")
	assert.Error(t, err)
}
