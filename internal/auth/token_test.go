package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return token
}

func TestTokenExpiry_ReadsExpClaim(t *testing.T) {
	exp := time.Now().Add(30 * time.Minute).Truncate(time.Second)
	token := makeToken(t, jwt.MapClaims{"sub": "42", "exp": exp.Unix()})

	got, ok := TokenExpiry(token)
	require.True(t, ok)
	assert.Equal(t, exp.Unix(), got.Unix())
}

func TestTokenExpiry_NoExpClaim(t *testing.T) {
	token := makeToken(t, jwt.MapClaims{"sub": "42"})

	_, ok := TokenExpiry(token)
	assert.False(t, ok)
}

func TestTokenExpiry_NotAJWT(t *testing.T) {
	for _, token := range []string{"", "abc", "opaque-token-value"} {
		_, ok := TokenExpiry(token)
		assert.False(t, ok, "token %q must not parse", token)
	}
}
