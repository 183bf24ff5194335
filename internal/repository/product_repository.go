package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"varejo/internal/model"
)

// ProductFilter narrows product listings. Nil/zero fields are ignored.
type ProductFilter struct {
	Section   string
	PriceMin  *decimal.Decimal
	PriceMax  *decimal.Decimal
	Available *bool
	Limit     int
	Offset    int
}

// ProductRepository defines product persistence operations.
type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	Update(ctx context.Context, product *model.Product) error
	FindByID(ctx context.Context, id uint) (*model.Product, error)
	FindByBarcode(ctx context.Context, barcode string) (*model.Product, error)
	List(ctx context.Context, filter ProductFilter) ([]model.Product, error)
	Delete(ctx context.Context, product *model.Product) error
}

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository builds a GORM-backed repository.
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepository) Update(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

func (r *productRepository) FindByID(ctx context.Context, id uint) (*model.Product, error) {
	var product model.Product
	if err := r.db.WithContext(ctx).First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) FindByBarcode(ctx context.Context, barcode string) (*model.Product, error) {
	var product model.Product
	if err := r.db.WithContext(ctx).Where("barcode = ?", barcode).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) List(ctx context.Context, filter ProductFilter) ([]model.Product, error) {
	query := r.db.WithContext(ctx).Model(&model.Product{})

	if filter.Section != "" {
		query = query.Where("section LIKE ?", "%"+filter.Section+"%")
	}
	if filter.PriceMin != nil {
		query = query.Where("price >= ?", filter.PriceMin)
	}
	if filter.PriceMax != nil {
		query = query.Where("price <= ?", filter.PriceMax)
	}
	if filter.Available != nil {
		if *filter.Available {
			query = query.Where("stock > 0")
		} else {
			query = query.Where("stock <= 0")
		}
	}

	var products []model.Product
	if err := query.Offset(filter.Offset).Limit(filter.Limit).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) Delete(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Delete(product).Error
}
