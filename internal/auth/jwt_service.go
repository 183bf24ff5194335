package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

const (
	// AccessTokenExpiry is the duration for which access tokens are valid.
	AccessTokenExpiry = 30 * time.Minute
	// RefreshTokenExpiry is the duration for which refresh tokens are valid.
	RefreshTokenExpiry = 7 * 24 * time.Hour

	// TokenTypeBearer labels every issued token pair.
	TokenTypeBearer = "bearer"
	// tokenKindRefresh marks refresh tokens; access tokens omit the claim.
	tokenKindRefresh = "refresh"
)

// Claims is the signed payload of both access and refresh tokens.
// Subject carries the user ID as a string so numeric IDs survive encoding.
type Claims struct {
	Type string `json:"type,omitempty"`
	jwt.RegisteredClaims
}

// IsRefresh reports whether the claims belong to a refresh token.
func (c *Claims) IsRefresh() bool {
	return c.Type == tokenKindRefresh
}

// TokenPair is handed back to a successful login.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

// JWTService encodes and decodes signed, expiring claim sets.
// Secret and algorithm are injected, never read from globals.
type JWTService struct {
	secret []byte
	method jwt.SigningMethod
}

// NewJWTService creates a token codec for the given secret and algorithm
// name (e.g. "HS256"). Unknown algorithm names fall back to HS256.
func NewJWTService(secret, algorithm string) *JWTService {
	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		method = jwt.SigningMethodHS256
	}
	return &JWTService{
		secret: []byte(secret),
		method: method,
	}
}

// GenerateAccessToken issues a short-lived access token for the user.
func (s *JWTService) GenerateAccessToken(userID uint) (string, error) {
	now := time.Now().UTC()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(AccessTokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(s.method, claims)
	return token.SignedString(s.secret)
}

// GenerateRefreshToken issues a long-lived refresh token for the user.
// The JTI individuates tokens; there is no server-side revocation store.
func (s *JWTService) GenerateRefreshToken(userID uint) (string, error) {
	now := time.Now().UTC()
	claims := &Claims{
		Type: tokenKindRefresh,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   strconv.FormatUint(uint64(userID), 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(RefreshTokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(s.method, claims)
	return token.SignedString(s.secret)
}

// ValidateToken verifies signature, structure and expiry, returning the
// decoded claims. It does not distinguish access from refresh tokens;
// callers inspect the type marker.
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != s.method.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
