package dto

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/spec-kit/shop-service/pkg/util"
)

func TestValidate_UsesJSONFieldNames(t *testing.T) {
	err := Validate(&RegisterRequest{Email: "not-an-email", Password: "123"})
	require.Error(t, err)

	var de *apperrors.DomainError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, http.StatusBadRequest, de.HTTPStatus)
	assert.Equal(t, "VALIDATION_FAILED", de.Code)
	assert.Equal(t, "name is required", de.Message)

	fields := de.Details["fields"].(map[string]any)
	assert.Equal(t, "email must be a valid email", fields["email"])
	assert.Equal(t, "password must be at least 6 characters", fields["password"])
}

func TestValidate_CategoryLimits(t *testing.T) {
	assert.NoError(t, Validate(&CategoryCreateRequest{Name: "Outdoor"}))

	err := Validate(&CategoryCreateRequest{Name: strings.Repeat("x", 51)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name cannot be more than 50 characters")

	err = Validate(&CategoryUpdateRequest{Status: "archived"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status must be one of [active inactive]")
}

func TestValidate_ProductRanges(t *testing.T) {
	name, desc, cat := "Mat", "Grippy", "Yoga"
	price, rating := -1.0, 6.0

	err := Validate(&ProductCreateRequest{Name: &name, Description: &desc, Category: &cat, Price: &price})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "price must be at least 0")

	price = 10
	err = Validate(&ProductUpdateRequest{Rating: &rating})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rating must be at most 5")

	assert.NoError(t, Validate(&ProductCreateRequest{Name: &name, Description: &desc, Category: &cat, Price: &price}))
}
