package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

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

func newGuardedContext(t *testing.T, authorization string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func okHandler(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func TestJWTMiddleware(t *testing.T) {
	tokens := NewJWTService("test-secret", "HS256")

	tests := []struct {
		name           string
		authorization  func() string
		setupMock      func(*MockUserRepository)
		expectedStatus int
	}{
		{
			name:           "missing header",
			authorization:  func() string { return "" },
			setupMock:      func(m *MockUserRepository) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "garbled token",
			authorization:  func() string { return "Bearer not-a-token" },
			setupMock:      func(m *MockUserRepository) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "valid token for unknown user",
			authorization: func() string {
				token, _ := tokens.GenerateAccessToken(99)
				return "Bearer " + token
			},
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "valid token",
			authorization: func() string {
				token, _ := tokens.GenerateAccessToken(7)
				return "Bearer " + token
			},
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, uint(7)).Return(&model.User{ID: 7, Username: "maria"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			tt.setupMock(repo)

			c, rec := newGuardedContext(t, tt.authorization())
			handler := JWT(tokens)(LoadUser(repo)(okHandler))
			err := handler(c)

			if tt.expectedStatus == http.StatusOK {
				assert.NoError(t, err)
				assert.Equal(t, http.StatusOK, rec.Code)
			} else {
				assert.Error(t, err)
				httpErr, ok := err.(*echo.HTTPError)
				assert.True(t, ok)
				assert.Equal(t, tt.expectedStatus, httpErr.Code)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestLoadUser_AttachesCurrentUser(t *testing.T) {
	tokens := NewJWTService("test-secret", "HS256")
	token, err := tokens.GenerateAccessToken(7)
	assert.NoError(t, err)

	repo := new(MockUserRepository)
	repo.On("FindByID", mock.Anything, uint(7)).Return(&model.User{ID: 7, Username: "maria"}, nil)

	c, _ := newGuardedContext(t, "Bearer "+token)
	handler := JWT(tokens)(LoadUser(repo)(func(c echo.Context) error {
		user, ok := CurrentUser(c)
		assert.True(t, ok)
		assert.Equal(t, uint(7), user.ID)
		assert.Equal(t, "maria", user.Username)
		return c.NoContent(http.StatusOK)
	}))

	assert.NoError(t, handler(c))
	repo.AssertExpectations(t)
}

func TestRequireAdmin(t *testing.T) {
	tests := []struct {
		name           string
		user           *model.User
		expectedStatus int
	}{
		{
			name:           "admin passes",
			user:           &model.User{ID: 1, IsAdmin: true},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "non-admin rejected",
			user:           &model.User{ID: 2, IsAdmin: false},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "no user on context",
			user:           nil,
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newGuardedContext(t, "")
			if tt.user != nil {
				c.Set(UserContextKey, tt.user)
			}

			err := RequireAdmin(okHandler)(c)

			if tt.expectedStatus == http.StatusOK {
				assert.NoError(t, err)
				assert.Equal(t, http.StatusOK, rec.Code)
			} else {
				assert.Error(t, err)
				httpErr, ok := err.(*echo.HTTPError)
				assert.True(t, ok)
				assert.Equal(t, tt.expectedStatus, httpErr.Code)
			}
		})
	}
}
