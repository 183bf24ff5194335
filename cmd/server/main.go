package main

import (
	"log"
	"net/http"
	"os"

	_ "varejo/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"varejo/internal/auth"
	"varejo/internal/cache"
	"varejo/internal/config"
	"varejo/internal/db"
	"varejo/internal/handler"
	"varejo/internal/model"
	"varejo/internal/repository"
	"varejo/internal/router"
	"varejo/internal/service"
)

// @title Varejo API
// @version 1.0
// @description Order management API with clients, products, orders and JWT authentication.
// @host localhost:8000
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.OrderItem{},
			&model.Order{},
			&model.Product{},
			&model.Client{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Client{},
		&model.Product{},
		&model.Order{},
		&model.OrderItem{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	clientRepo := repository.NewClientRepository(gormDB)
	productRepo := repository.NewProductRepository(gormDB)
	orderRepo := repository.NewOrderRepository(gormDB)
	orderItemRepo := repository.NewOrderItemRepository(gormDB)

	// Initialize the token codec
	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.JWTAlgorithm)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService)
	userService := service.NewUserService(userRepo, cacheClient)
	clientService := service.NewClientService(clientRepo)
	productService := service.NewProductService(productRepo, cacheClient)
	orderService := service.NewOrderService(orderRepo, userRepo, clientRepo)
	orderItemService := service.NewOrderItemService(orderItemRepo, orderRepo, productRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	clientHandler := handler.NewClientHandler(clientService)
	productHandler := handler.NewProductHandler(productService)
	orderHandler := handler.NewOrderHandler(orderService)
	orderItemHandler := handler.NewOrderItemHandler(orderItemService)

	// Register routes
	router.Register(
		e,
		jwtService,
		userRepo,
		authHandler,
		userHandler,
		clientHandler,
		productHandler,
		orderHandler,
		orderItemHandler,
	)

	if cfg.SwaggerHost != "" {
		log.Printf("Swagger documentation available at: %s/swagger/index.html", cfg.SwaggerHost)
	} else {
		log.Printf("Swagger documentation available at: http://localhost:%s/swagger/index.html", cfg.ServerPort)
	}

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
