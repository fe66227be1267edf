package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("any-secret"))
	require.NoError(t, err)

	return token
}

func TestJWTService_DecodeUser(t *testing.T) {
	issuedAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	token := signedToken(t, jwt.MapClaims{
		"id":    float64(7),
		"email": "surfer@example.com",
		"iat":   issuedAt.Unix(),
	})

	user, err := NewJWTService().DecodeUser(token)

	require.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)
	assert.Equal(t, "surfer@example.com", user.Email)
	assert.Equal(t, issuedAt, user.CreatedAt)
}

func TestJWTService_DecodeUser_SubjectAsString(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"sub": "12"})

	user, err := NewJWTService().DecodeUser(token)

	require.NoError(t, err)
	assert.Equal(t, int64(12), user.ID)
}

func TestJWTService_DecodeUser_OpaqueToken(t *testing.T) {
	_, err := NewJWTService().DecodeUser("tok")
	assert.Error(t, err)
}

func TestJWTService_DecodeUser_NoUserClaims(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"scope": "read"})

	_, err := NewJWTService().DecodeUser(token)
	assert.Error(t, err)
}

func TestJWTService_ExpiresAt(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := signedToken(t, jwt.MapClaims{"sub": "1", "exp": exp.Unix()})

	svc := NewJWTService()

	got, ok := svc.ExpiresAt(token)
	require.True(t, ok)
	assert.True(t, exp.Equal(got))

	_, ok = svc.ExpiresAt("tok")
	assert.False(t, ok)
}
