package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"varejo/internal/auth"
	"varejo/internal/handler"
	"varejo/internal/repository"
)

// Register wires routes and middleware. Every route outside /auth/login,
// /auth/register and /auth/refresh-token requires a valid bearer token;
// deletes and the user directory additionally require the admin flag.
func Register(
	e *echo.Echo,
	tokens *auth.JWTService,
	users repository.UserRepository,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	clientHandler *handler.ClientHandler,
	productHandler *handler.ProductHandler,
	orderHandler *handler.OrderHandler,
	orderItemHandler *handler.OrderItemHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Public routes
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/refresh-token", authHandler.Refresh)

	// Secured routes: decode the bearer token, then resolve the subject
	// into a user record.
	secured := e.Group("", auth.JWT(tokens), auth.LoadUser(users))

	// User directory (admin only)
	usersGroup := secured.Group("/auth/users", auth.RequireAdmin)
	usersGroup.GET("", userHandler.ListUsers)
	usersGroup.GET("/:id", userHandler.GetUser)
	usersGroup.PATCH("/:id", userHandler.UpdateUser)
	usersGroup.DELETE("/:id", userHandler.DeleteUser)

	// Client routes
	secured.GET("/clients", clientHandler.ListClients)
	secured.GET("/clients/:id", clientHandler.GetClient)
	secured.POST("/clients", clientHandler.CreateClient)
	secured.PATCH("/clients/:id", clientHandler.UpdateClient)
	secured.DELETE("/clients/:id", clientHandler.DeleteClient, auth.RequireAdmin)

	// Product routes
	secured.GET("/products", productHandler.ListProducts)
	secured.GET("/products/:id", productHandler.GetProduct)
	secured.POST("/products", productHandler.CreateProduct)
	secured.PUT("/products/:id", productHandler.UpdateProduct)
	secured.DELETE("/products/:id", productHandler.DeleteProduct, auth.RequireAdmin)

	// Order routes
	secured.GET("/orders", orderHandler.ListOrders)
	secured.GET("/orders/:id", orderHandler.GetOrder)
	secured.POST("/orders", orderHandler.CreateOrder)
	secured.PUT("/orders/:id", orderHandler.UpdateOrder)
	secured.DELETE("/orders/:id", orderHandler.DeleteOrder, auth.RequireAdmin)

	// Order item routes
	secured.GET("/order-products", orderItemHandler.ListItems)
	secured.GET("/order-products/:id", orderItemHandler.GetItem)
	secured.POST("/order-products", orderItemHandler.CreateItem)
	secured.PATCH("/order-products/:id", orderItemHandler.UpdateItem)
	secured.DELETE("/order-products/:id", orderItemHandler.DeleteItem, auth.RequireAdmin)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
