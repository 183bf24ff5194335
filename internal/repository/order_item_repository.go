package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"varejo/internal/model"
)

// OrderItemFilter narrows order item listings. Nil/zero fields are ignored.
type OrderItemFilter struct {
	OrderID   uint
	ProductID uint
	Quantity  int
	PriceMin  *decimal.Decimal
	PriceMax  *decimal.Decimal
	DateStart *time.Time
	DateEnd   *time.Time
}

// OrderItemRepository defines order item persistence operations.
type OrderItemRepository interface {
	Create(ctx context.Context, item *model.OrderItem) error
	Update(ctx context.Context, item *model.OrderItem) error
	FindByID(ctx context.Context, id uint) (*model.OrderItem, error)
	FindByOrderAndProduct(ctx context.Context, orderID, productID uint) (*model.OrderItem, error)
	List(ctx context.Context, filter OrderItemFilter) ([]model.OrderItem, error)
	Delete(ctx context.Context, item *model.OrderItem) error
}

type orderItemRepository struct {
	db *gorm.DB
}

// NewOrderItemRepository builds a GORM-backed repository.
func NewOrderItemRepository(db *gorm.DB) OrderItemRepository {
	return &orderItemRepository{db: db}
}

func (r *orderItemRepository) Create(ctx context.Context, item *model.OrderItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *orderItemRepository) Update(ctx context.Context, item *model.OrderItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *orderItemRepository) FindByID(ctx context.Context, id uint) (*model.OrderItem, error) {
	var item model.OrderItem
	if err := r.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *orderItemRepository) FindByOrderAndProduct(ctx context.Context, orderID, productID uint) (*model.OrderItem, error) {
	var item model.OrderItem
	err := r.db.WithContext(ctx).
		Where("order_id = ? AND product_id = ?", orderID, productID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *orderItemRepository) List(ctx context.Context, filter OrderItemFilter) ([]model.OrderItem, error) {
	query := r.db.WithContext(ctx).Model(&model.OrderItem{})

	if filter.OrderID != 0 {
		query = query.Where("order_id = ?", filter.OrderID)
	}
	if filter.ProductID != 0 {
		query = query.Where("product_id = ?", filter.ProductID)
	}
	if filter.Quantity != 0 {
		query = query.Where("quantity = ?", filter.Quantity)
	}
	if filter.PriceMin != nil {
		query = query.Where("price_at_moment >= ?", filter.PriceMin)
	}
	if filter.PriceMax != nil {
		query = query.Where("price_at_moment <= ?", filter.PriceMax)
	}
	if filter.DateStart != nil {
		query = query.Where("created_at >= ?", filter.DateStart)
	}
	if filter.DateEnd != nil {
		query = query.Where("created_at <= ?", filter.DateEnd)
	}

	var items []model.OrderItem
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *orderItemRepository) Delete(ctx context.Context, item *model.OrderItem) error {
	return r.db.WithContext(ctx).Delete(item).Error
}
