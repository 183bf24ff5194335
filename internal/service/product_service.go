package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"varejo/internal/cache"
	"varejo/internal/errors"
	"varejo/internal/model"
	"varejo/internal/repository"
)

const productCacheTTL = 5 * time.Minute

// ProductUpdateInput carries optional product mutations; nil fields are untouched.
type ProductUpdateInput struct {
	Name           *string
	Description    *string
	Price          *decimal.Decimal
	Section        *string
	Stock          *int
	ExpirationDate *time.Time
	ImageURL       *string
}

// ProductService exposes catalog operations.
type ProductService interface {
	CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error)
	GetProduct(ctx context.Context, id uint) (*model.Product, error)
	ListProducts(ctx context.Context, filter repository.ProductFilter) ([]model.Product, error)
	UpdateProduct(ctx context.Context, id uint, input ProductUpdateInput) (*model.Product, error)
	DeleteProduct(ctx context.Context, id uint) error
}

type productService struct {
	repo  repository.ProductRepository
	cache *cache.Client
}

// NewProductService creates a new product service.
func NewProductService(repo repository.ProductRepository, cache *cache.Client) ProductService {
	return &productService{repo: repo, cache: cache}
}

func (s *productService) cacheKey(id uint) string {
	return fmt.Sprintf("product:%d", id)
}

// CreateProduct rejects duplicate barcodes before persisting.
func (s *productService) CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	if product.Barcode != "" {
		existing, err := s.repo.FindByBarcode(ctx, product.Barcode)
		if err != nil && err != gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("check barcode: %w", err)
		}
		if existing != nil {
			return nil, errors.ErrProductTaken
		}
	}

	if err := s.repo.Create(ctx, product); err != nil {
		if err == gorm.ErrDuplicatedKey {
			return nil, errors.ErrProductTaken
		}
		return nil, fmt.Errorf("create product: %w", err)
	}
	return product, nil
}

// GetProduct retrieves a product by ID with caching.
func (s *productService) GetProduct(ctx context.Context, id uint) (*model.Product, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Product
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrProductNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(product); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, productCacheTTL)
	}
	return product, nil
}

func (s *productService) ListProducts(ctx context.Context, filter repository.ProductFilter) ([]model.Product, error) {
	return s.repo.List(ctx, filter)
}

// UpdateProduct applies the non-nil input fields and persists the record.
// The barcode is immutable once assigned.
func (s *productService) UpdateProduct(ctx context.Context, id uint, input ProductUpdateInput) (*model.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrProductNotFound
		}
		return nil, err
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Section != nil {
		product.Section = *input.Section
	}
	if input.Stock != nil {
		product.Stock = *input.Stock
	}
	if input.ExpirationDate != nil {
		product.ExpirationDate = input.ExpirationDate
	}
	if input.ImageURL != nil {
		product.ImageURL = *input.ImageURL
	}

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return product, nil
}

func (s *productService) DeleteProduct(ctx context.Context, id uint) error {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrProductNotFound
		}
		return err
	}

	if err := s.repo.Delete(ctx, product); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}
