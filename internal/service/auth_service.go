package service

import (
	"context"
	"fmt"
	"strconv"

	"gorm.io/gorm"

	"varejo/internal/auth"
	"varejo/internal/errors"
	"varejo/internal/model"
	"varejo/internal/repository"
)

// AuthService handles registration, login and token renewal.
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*model.User, error)
	Login(ctx context.Context, email, password string) (*auth.TokenPair, *model.User, error)
	RefreshToken(ctx context.Context, refreshToken string) (accessToken string, err error)
}

type authService struct {
	users  repository.UserRepository
	tokens *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, tokens *auth.JWTService) AuthService {
	return &authService{
		users:  users,
		tokens: tokens,
	}
}

// Register creates a new user with a hashed password. The plaintext is
// never stored, logged or echoed back.
func (s *authService) Register(ctx context.Context, username, email, password string) (*model.User, error) {
	existing, err := s.users.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, errors.ErrEmailTaken
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: hashed,
		IsActive:     true,
	}

	if err := s.users.Create(ctx, user); err != nil {
		// A concurrent registration can win the email between the check
		// above and this write; the unique index reports it here.
		if err == gorm.ErrDuplicatedKey {
			return nil, errors.ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Login verifies the credentials and issues an access/refresh token pair.
// Unknown email and wrong password produce the same error so callers
// cannot enumerate accounts.
func (s *authService) Login(ctx context.Context, email, password string) (*auth.TokenPair, *model.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, nil, errors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return nil, nil, errors.ErrInvalidCredentials
	}

	accessToken, err := s.tokens.GenerateAccessToken(user.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("generate access token: %w", err)
	}

	refreshToken, err := s.tokens.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("generate refresh token: %w", err)
	}

	pair := &auth.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    auth.TokenTypeBearer,
	}
	return pair, user, nil
}

// RefreshToken validates a refresh token and mints a new access token.
// The refresh token itself is not rotated and stays valid until its own
// expiry. Every failure collapses to the same error so callers cannot
// tell a bad signature from a removed account.
func (s *authService) RefreshToken(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.tokens.ValidateToken(refreshToken)
	if err != nil {
		return "", errors.ErrInvalidRefreshToken
	}

	if !claims.IsRefresh() {
		return "", errors.ErrInvalidRefreshToken
	}

	if claims.Subject == "" {
		return "", errors.ErrInvalidRefreshToken
	}

	id, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return "", errors.ErrInvalidRefreshToken
	}

	user, err := s.users.FindByID(ctx, uint(id))
	if err != nil {
		return "", errors.ErrInvalidRefreshToken
	}

	accessToken, err := s.tokens.GenerateAccessToken(user.ID)
	if err != nil {
		return "", fmt.Errorf("generate access token: %w", err)
	}

	return accessToken, nil
}
