package main

import (
	"context"
	"log"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"varejo/internal/auth"
	"varejo/internal/config"
	"varejo/internal/db"
	"varejo/internal/model"
	"varejo/internal/repository"
)

// seedProduct describes one catalog entry ensured by the seeder.
type seedProduct struct {
	Name    string
	Price   string
	Barcode string
	Section string
	Stock   int
}

var demoProducts = []seedProduct{
	{Name: "Arroz Branco 5kg", Price: "24.90", Barcode: "7891000100103", Section: "Mercearia", Stock: 120},
	{Name: "Feijão Carioca 1kg", Price: "8.49", Barcode: "7891000100110", Section: "Mercearia", Stock: 200},
	{Name: "Café Torrado 500g", Price: "16.90", Barcode: "7891000100127", Section: "Mercearia", Stock: 80},
	{Name: "Leite Integral 1L", Price: "5.29", Barcode: "7891000100134", Section: "Laticínios", Stock: 300},
	{Name: "Detergente Neutro 500ml", Price: "2.79", Barcode: "7891000100141", Section: "Limpeza", Stock: 150},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Product{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	productRepo := repository.NewProductRepository(gormDB)

	if err := ensureAdmin(ctx, userRepo, cfg.AdminUsername, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	created, updated, err := seedProducts(ctx, productRepo, demoProducts)
	if err != nil {
		log.Fatalf("Failed to seed products: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - New products created: %d", created)
	log.Printf("  - Existing products updated: %d", updated)
}

// ensureAdmin creates the admin user if the configured email is unknown,
// or promotes the existing record. The password is only set on creation.
func ensureAdmin(ctx context.Context, repo repository.UserRepository, username, email, password string) error {
	existing, err := repo.FindByEmail(ctx, email)
	if err != nil && err != gorm.ErrRecordNotFound {
		return err
	}

	if existing != nil {
		if existing.IsAdmin && existing.IsActive {
			log.Printf("Admin user %s already present", email)
			return nil
		}
		existing.IsAdmin = true
		existing.IsActive = true
		if err := repo.Update(ctx, existing); err != nil {
			return err
		}
		log.Printf("Promoted existing user %s to admin", email)
		return nil
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	admin := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: hashed,
		IsActive:     true,
		IsAdmin:      true,
	}
	if err := repo.Create(ctx, admin); err != nil {
		return err
	}
	log.Printf("Created admin user %s", email)
	return nil
}

// seedProducts creates or refreshes the demo catalog, keyed on barcode.
func seedProducts(ctx context.Context, repo repository.ProductRepository, seeds []seedProduct) (created int, updated int, err error) {
	for _, seed := range seeds {
		price, err := decimal.NewFromString(seed.Price)
		if err != nil {
			log.Printf("Skipping product %s with invalid price: %s", seed.Barcode, seed.Price)
			continue
		}

		existing, err := repo.FindByBarcode(ctx, seed.Barcode)
		if err != nil && err != gorm.ErrRecordNotFound {
			return created, updated, err
		}

		if existing != nil {
			existing.Name = seed.Name
			existing.Price = price
			existing.Section = seed.Section
			existing.Stock = seed.Stock
			if err := repo.Update(ctx, existing); err != nil {
				return created, updated, err
			}
			updated++
		} else {
			product := &model.Product{
				Name:    seed.Name,
				Price:   price,
				Barcode: seed.Barcode,
				Section: seed.Section,
				Stock:   seed.Stock,
			}
			if err := repo.Create(ctx, product); err != nil {
				return created, updated, err
			}
			created++
		}
	}
	return created, updated, nil
}
