package auth

import (
	"errors"
	"strings"
)

// ErrMissingBearer is returned when the Authorization header carries no bearer token.
var ErrMissingBearer = errors.New("missing bearer token")

const bearerScheme = "Bearer "

// TokenKind separates the two token families.
type TokenKind int

const (
	TokenKindSigned TokenKind = iota
	TokenKindDemo
)

// AuthToken is a bearer token classified once, at parse time.
type AuthToken struct {
	Kind TokenKind
	// Raw is the signed JWT for TokenKindSigned and the full demo string for TokenKindDemo.
	Raw string
	// DemoKey is the directory key for TokenKindDemo.
	DemoKey string
}

// ParseBearer extracts the token from an Authorization header value.
func ParseBearer(header string) (string, error) {
	if !strings.HasPrefix(header, bearerScheme) {
		return "", ErrMissingBearer
	}
	token := strings.TrimSpace(header[len(bearerScheme):])
	if token == "" {
		return "", ErrMissingBearer
	}
	return token, nil
}

// ParseToken classifies a raw bearer token.
func ParseToken(raw string) AuthToken {
	if key, ok := strings.CutPrefix(raw, DemoTokenPrefix); ok {
		return AuthToken{Kind: TokenKindDemo, Raw: raw, DemoKey: key}
	}
	return AuthToken{Kind: TokenKindSigned, Raw: raw}
}
