package auth

import (
	"net/http"
	"strconv"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"varejo/internal/errors"
	"varejo/internal/model"
	"varejo/internal/repository"
)

const (
	// ClaimsContextKey is where the decoded token claims live on the echo context.
	ClaimsContextKey = "token_claims"
	// UserContextKey is where the resolved user record lives on the echo context.
	UserContextKey = "current_user"
)

// JWT returns the echo-jwt middleware wired to the token codec. Any decode
// failure (missing header, garbled token, bad signature, expiry) is a 401.
func JWT(tokens *JWTService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey: ClaimsContextKey,
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return tokens.ValidateToken(token)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			httpErr := errors.MapErrorToHTTP(errors.ErrNotAuthenticated)
			return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
		},
	})
}

// LoadUser resolves the token subject into a full user record and attaches
// it to the request context. Runs after JWT; a subject that is missing,
// non-numeric or unknown to the directory is a 401.
func LoadUser(users repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get(ClaimsContextKey).(*Claims)
			if !ok || claims.Subject == "" {
				return unauthenticated()
			}

			id, err := strconv.ParseUint(claims.Subject, 10, 64)
			if err != nil {
				return unauthenticated()
			}

			user, err := users.FindByID(c.Request().Context(), uint(id))
			if err != nil {
				return unauthenticated()
			}

			c.Set(UserContextKey, user)
			return next(c)
		}
	}
}

// RequireAdmin refines LoadUser: the already-resolved user must carry the
// admin flag. It never re-resolves identity.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := CurrentUser(c)
		if !ok {
			return unauthenticated()
		}
		if !user.IsAdmin {
			httpErr := errors.MapErrorToHTTP(errors.ErrAdminOnly)
			return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
		}
		return next(c)
	}
}

// CurrentUser returns the user attached to the request by LoadUser.
func CurrentUser(c echo.Context) (*model.User, bool) {
	user, ok := c.Get(UserContextKey).(*model.User)
	return user, ok
}

func unauthenticated() error {
	httpErr := errors.MapErrorToHTTP(errors.ErrNotAuthenticated)
	return echo.NewHTTPError(http.StatusUnauthorized, httpErr.ToErrorResponse())
}
