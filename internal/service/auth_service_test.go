package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"varejo/internal/auth"
	"varejo/internal/errors"
	"varejo/internal/model"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func newTestTokens() *auth.JWTService {
	return auth.NewJWTService("test-secret", "HS256")
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name        string
		username    string
		email       string
		password    string
		setupMock   func(*MockUserRepository)
		expectedErr error
	}{
		{
			name:     "successful registration",
			username: "maria",
			email:    "maria@example.com",
			password: "senha12345",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "maria@example.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedErr: nil,
		},
		{
			name:     "email already registered",
			username: "maria",
			email:    "maria@example.com",
			password: "senha12345",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "maria@example.com").
					Return(&model.User{ID: 1, Email: "maria@example.com"}, nil)
			},
			expectedErr: errors.ErrEmailTaken,
		},
		{
			name:     "concurrent registration loses the unique index race",
			username: "maria",
			email:    "maria@example.com",
			password: "senha12345",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "maria@example.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(gorm.ErrDuplicatedKey)
			},
			expectedErr: errors.ErrEmailTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			tt.setupMock(repo)

			svc := NewAuthService(repo, newTestTokens())
			user, err := svc.Register(context.Background(), tt.username, tt.email, tt.password)

			if tt.expectedErr != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedErr, err)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.username, user.Username)
				assert.Equal(t, tt.email, user.Email)
				assert.True(t, user.IsActive)
				assert.False(t, user.IsAdmin)
				// Stored digest must never be the plaintext.
				assert.NotEqual(t, tt.password, user.PasswordHash)
				assert.True(t, auth.CheckPassword(tt.password, user.PasswordHash))
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	hashed, err := auth.HashPassword("senha12345")
	assert.NoError(t, err)

	account := &model.User{
		ID:           7,
		Username:     "maria",
		Email:        "maria@example.com",
		PasswordHash: hashed,
		IsActive:     true,
	}

	tests := []struct {
		name        string
		email       string
		password    string
		setupMock   func(*MockUserRepository)
		expectedErr error
	}{
		{
			name:     "successful login",
			email:    "maria@example.com",
			password: "senha12345",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "maria@example.com").Return(account, nil)
			},
			expectedErr: nil,
		},
		{
			name:     "unknown email",
			email:    "nobody@example.com",
			password: "senha12345",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedErr: errors.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    "maria@example.com",
			password: "senha-errada",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "maria@example.com").Return(account, nil)
			},
			expectedErr: errors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			tt.setupMock(repo)

			svc := NewAuthService(repo, newTestTokens())
			pair, user, err := svc.Login(context.Background(), tt.email, tt.password)

			if tt.expectedErr != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedErr, err)
				assert.Nil(t, pair)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, account.ID, user.ID)
				assert.Equal(t, auth.TokenTypeBearer, pair.TokenType)
				assert.NotEmpty(t, pair.AccessToken)
				assert.NotEmpty(t, pair.RefreshToken)
				assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	tokens := newTestTokens()

	validRefresh, err := tokens.GenerateRefreshToken(7)
	assert.NoError(t, err)
	accessOnly, err := tokens.GenerateAccessToken(7)
	assert.NoError(t, err)

	tests := []struct {
		name        string
		token       string
		setupMock   func(*MockUserRepository)
		expectedErr error
	}{
		{
			name:  "valid refresh token",
			token: validRefresh,
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, uint(7)).Return(&model.User{ID: 7}, nil)
			},
			expectedErr: nil,
		},
		{
			name:        "access token is not accepted for renewal",
			token:       accessOnly,
			setupMock:   func(m *MockUserRepository) {},
			expectedErr: errors.ErrInvalidRefreshToken,
		},
		{
			name:        "garbled token",
			token:       "not-a-token",
			setupMock:   func(m *MockUserRepository) {},
			expectedErr: errors.ErrInvalidRefreshToken,
		},
		{
			name:  "subject no longer exists",
			token: validRefresh,
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, uint(7)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedErr: errors.ErrInvalidRefreshToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			tt.setupMock(repo)

			svc := NewAuthService(repo, tokens)
			accessToken, err := svc.RefreshToken(context.Background(), tt.token)

			if tt.expectedErr != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedErr, err)
				assert.Empty(t, accessToken)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, accessToken)

				claims, err := tokens.ValidateToken(accessToken)
				assert.NoError(t, err)
				assert.Equal(t, "7", claims.Subject)
				assert.False(t, claims.IsRefresh())
			}
			repo.AssertExpectations(t)
		})
	}
}
