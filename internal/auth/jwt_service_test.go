package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
)

func TestJWTService_AccessTokenRoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret", "HS256")

	token, err := svc.GenerateAccessToken(42)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "42", claims.Subject)
	assert.False(t, claims.IsRefresh())
	assert.Empty(t, claims.ID)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
	assert.True(t, claims.ExpiresAt.After(claims.IssuedAt.Time))
}

func TestJWTService_RefreshTokenCarriesMarker(t *testing.T) {
	svc := NewJWTService("test-secret", "HS256")

	token, err := svc.GenerateRefreshToken(42)
	assert.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "42", claims.Subject)
	assert.True(t, claims.IsRefresh())
	assert.NotEmpty(t, claims.ID)
	assert.True(t, claims.ExpiresAt.After(time.Now().Add(AccessTokenExpiry)))
}

func TestJWTService_ExpiredTokenRejected(t *testing.T) {
	svc := NewJWTService("test-secret", "HS256")

	expired := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "42",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, expired).SignedString([]byte("test-secret"))
	assert.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_WrongSecretRejected(t *testing.T) {
	issuer := NewJWTService("test-secret", "HS256")
	verifier := NewJWTService("other-secret", "HS256")

	token, err := issuer.GenerateAccessToken(42)
	assert.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_GarbageTokenRejected(t *testing.T) {
	svc := NewJWTService("test-secret", "HS256")

	_, err := svc.ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestJWTService_UnknownAlgorithmFallsBack(t *testing.T) {
	svc := NewJWTService("test-secret", "HS999")

	token, err := svc.GenerateAccessToken(7)
	assert.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "7", claims.Subject)
}
