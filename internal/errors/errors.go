package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// User-facing messages follow the product's language (pt-BR).
var (
	// ErrEmailTaken is returned when registering an email that already exists.
	ErrEmailTaken = errors.New("E-mail já cadastrado.")
	// ErrInvalidCredentials is returned for unknown email or wrong password alike.
	ErrInvalidCredentials = errors.New("Credenciais inválidas.")
	// ErrInvalidRefreshToken covers every refresh failure: bad signature,
	// expiry, wrong token kind or a subject that no longer resolves.
	ErrInvalidRefreshToken = errors.New("Token de refresh inválido ou expirado.")
	// ErrNotAuthenticated is returned when no valid bearer token is presented.
	ErrNotAuthenticated = errors.New("Não autenticado.")
	// ErrAdminOnly is returned when a valid non-admin user hits an admin route.
	ErrAdminOnly = errors.New("Ação restrita a administradores.")
	// ErrUserNotFound is returned when a user record is not found.
	ErrUserNotFound = errors.New("Usuário não encontrado.")
	// ErrClientNotFound is returned when a client record is not found.
	ErrClientNotFound = errors.New("Cliente não encontrado.")
	// ErrProductNotFound is returned when a product record is not found.
	ErrProductNotFound = errors.New("Produto não encontrado")
	// ErrProductTaken is returned when a product barcode is already registered.
	ErrProductTaken = errors.New("Produto já foi cadastrado!.")
	// ErrOrderNotFound is returned when an order record is not found.
	ErrOrderNotFound = errors.New("Pedido não encontrado!.")
	// ErrOrderItemNotFound is returned when an order item record is not found.
	ErrOrderItemNotFound = errors.New("Item do pedido não encontrado.")
	// ErrOrderItemTaken is returned when an order already holds the product.
	ErrOrderItemTaken = errors.New("Já existe um item para este pedido e produto.")
)

// ClientNotFoundError reports a client lookup miss, carrying the ID that
// was asked for.
type ClientNotFoundError struct {
	ID uint
}

func (e *ClientNotFoundError) Error() string {
	return fmt.Sprintf("Cliente referente ao ID: %d não encontrado.", e.ID)
}

// FieldConflictError reports a unique-column collision on create or update.
type FieldConflictError struct {
	Field string
	Value string
}

func (e *FieldConflictError) Error() string {
	return fmt.Sprintf("O %s: %s já foi cadastrado.", e.Field, e.Value)
}

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	var conflict *FieldConflictError
	if errors.As(err, &conflict) {
		return NewHTTPError(http.StatusConflict, conflict.Error(), "FIELD_TAKEN")
	}

	var clientMiss *ClientNotFoundError
	if errors.As(err, &clientMiss) {
		return NewHTTPError(http.StatusNotFound, clientMiss.Error(), "CLIENT_NOT_FOUND")
	}

	switch err {
	case ErrEmailTaken:
		return NewHTTPError(http.StatusConflict, err.Error(), "EMAIL_TAKEN")
	case ErrInvalidCredentials:
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case ErrInvalidRefreshToken:
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_REFRESH_TOKEN")
	case ErrNotAuthenticated:
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "UNAUTHENTICATED")
	case ErrAdminOnly:
		return NewHTTPError(http.StatusForbidden, err.Error(), "ADMIN_ONLY")
	case ErrUserNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case ErrClientNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "CLIENT_NOT_FOUND")
	case ErrProductNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "PRODUCT_NOT_FOUND")
	case ErrProductTaken:
		return NewHTTPError(http.StatusConflict, err.Error(), "PRODUCT_TAKEN")
	case ErrOrderNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "ORDER_NOT_FOUND")
	case ErrOrderItemNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "ORDER_ITEM_NOT_FOUND")
	case ErrOrderItemTaken:
		return NewHTTPError(http.StatusConflict, err.Error(), "ORDER_ITEM_TAKEN")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
