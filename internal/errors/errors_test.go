package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapErrorToHTTP(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
	}{
		{"email taken", ErrEmailTaken, http.StatusConflict, "EMAIL_TAKEN"},
		{"invalid credentials", ErrInvalidCredentials, http.StatusUnauthorized, "INVALID_CREDENTIALS"},
		{"invalid refresh token", ErrInvalidRefreshToken, http.StatusUnauthorized, "INVALID_REFRESH_TOKEN"},
		{"not authenticated", ErrNotAuthenticated, http.StatusUnauthorized, "UNAUTHENTICATED"},
		{"admin only", ErrAdminOnly, http.StatusForbidden, "ADMIN_ONLY"},
		{"user not found", ErrUserNotFound, http.StatusNotFound, "USER_NOT_FOUND"},
		{"client not found", ErrClientNotFound, http.StatusNotFound, "CLIENT_NOT_FOUND"},
		{"product not found", ErrProductNotFound, http.StatusNotFound, "PRODUCT_NOT_FOUND"},
		{"product taken", ErrProductTaken, http.StatusConflict, "PRODUCT_TAKEN"},
		{"order not found", ErrOrderNotFound, http.StatusNotFound, "ORDER_NOT_FOUND"},
		{"order item taken", ErrOrderItemTaken, http.StatusConflict, "ORDER_ITEM_TAKEN"},
		{"unknown error", stderrors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := MapErrorToHTTP(tt.err)
			assert.Equal(t, tt.expectedStatus, httpErr.StatusCode)
			assert.Equal(t, tt.expectedCode, httpErr.Code)
		})
	}
}

func TestMapErrorToHTTP_UnknownErrorHidesDetails(t *testing.T) {
	httpErr := MapErrorToHTTP(stderrors.New("dial tcp 10.0.0.1:3306: i/o timeout"))
	assert.Equal(t, "internal server error", httpErr.Message)
	assert.NotContains(t, httpErr.ToErrorResponse().Error, "3306")
}

func TestClientNotFoundError(t *testing.T) {
	err := &ClientNotFoundError{ID: 42}
	assert.Equal(t, "Cliente referente ao ID: 42 não encontrado.", err.Error())

	httpErr := MapErrorToHTTP(err)
	assert.Equal(t, http.StatusNotFound, httpErr.StatusCode)
	assert.Equal(t, "CLIENT_NOT_FOUND", httpErr.Code)
}

func TestFieldConflictError(t *testing.T) {
	err := &FieldConflictError{Field: "cpf_cnpj", Value: "12345678901"}
	assert.Equal(t, "O cpf_cnpj: 12345678901 já foi cadastrado.", err.Error())

	httpErr := MapErrorToHTTP(err)
	assert.Equal(t, http.StatusConflict, httpErr.StatusCode)
	assert.Equal(t, "FIELD_TAKEN", httpErr.Code)
	assert.Equal(t, err.Error(), httpErr.Message)
}
