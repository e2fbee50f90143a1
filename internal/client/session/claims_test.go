package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signed(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("any-key"))
	require.NoError(t, err)
	return tok
}

func TestParseClaims_JWT(t *testing.T) {
	exp := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	tok := signed(t, jwt.MapClaims{"sub": "user-1", "email": "a@b.com", "exp": exp.Unix()})

	c, ok := ParseClaims(tok)
	require.True(t, ok)
	assert.Equal(t, "user-1", c.Subject)
	assert.Equal(t, "a@b.com", c.Email)
	assert.True(t, exp.Equal(c.ExpiresAt))

	assert.False(t, c.Expired(exp.Add(-time.Minute)))
	assert.True(t, c.Expired(exp.Add(time.Minute)))
}

func TestParseClaims_Opaque(t *testing.T) {
	_, ok := ParseClaims("T")
	assert.False(t, ok)
}

func TestParseClaims_NoExpiry(t *testing.T) {
	c, ok := ParseClaims(signed(t, jwt.MapClaims{"sub": "u"}))
	require.True(t, ok)
	assert.True(t, c.ExpiresAt.IsZero())
	assert.False(t, c.Expired(time.Now()))
}
