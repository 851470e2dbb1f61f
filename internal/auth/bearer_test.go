package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBearer(t *testing.T) {
	cases := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "valid", header: "Bearer abc.def", want: "abc.def"},
		{name: "empty", header: "", wantErr: true},
		{name: "scheme only", header: "Bearer ", wantErr: true},
		{name: "no space", header: "Bearerabc", wantErr: true},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz", wantErr: true},
		{name: "lowercase scheme", header: "bearer abc", wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseBearer(tc.header)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrMissingBearer)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseTokenClassifiesOnce(t *testing.T) {
	demo := ParseToken("demo_token_2")
	assert.Equal(t, TokenKindDemo, demo.Kind)
	assert.Equal(t, "2", demo.DemoKey)

	signed := ParseToken("eyJhbGciOiJIUzI1NiJ9.e30.sig")
	assert.Equal(t, TokenKindSigned, signed.Kind)
	assert.Empty(t, signed.DemoKey)
}
