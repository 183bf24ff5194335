package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"varejo/internal/model"
)

// OrderFilter narrows order listings. Nil/zero fields are ignored.
// ProductID and Section filter through the order items join.
type OrderFilter struct {
	DateStart *time.Time
	DateEnd   *time.Time
	ProductID uint
	ClientID  uint
	Section   string
	Status    string
}

// OrderRepository defines order persistence operations.
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	Update(ctx context.Context, order *model.Order) error
	FindByID(ctx context.Context, id uint) (*model.Order, error)
	List(ctx context.Context, filter OrderFilter) ([]model.Order, error)
	Delete(ctx context.Context, order *model.Order) error
}

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository builds a GORM-backed repository.
func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(ctx context.Context, order *model.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *orderRepository) Update(ctx context.Context, order *model.Order) error {
	return r.db.WithContext(ctx).Save(order).Error
}

func (r *orderRepository) FindByID(ctx context.Context, id uint) (*model.Order, error) {
	var order model.Order
	if err := r.db.WithContext(ctx).Preload("Items").First(&order, id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) List(ctx context.Context, filter OrderFilter) ([]model.Order, error) {
	query := r.db.WithContext(ctx).Model(&model.Order{})

	if filter.ProductID != 0 || filter.Section != "" {
		query = query.
			Joins("JOIN order_items ON order_items.order_id = orders.id").
			Joins("JOIN products ON products.id = order_items.product_id").
			Distinct("orders.*")
	}

	if filter.ClientID != 0 {
		query = query.Where("orders.client_id = ?", filter.ClientID)
	}
	if filter.DateStart != nil {
		query = query.Where("orders.created_at >= ?", filter.DateStart)
	}
	if filter.DateEnd != nil {
		query = query.Where("orders.created_at <= ?", filter.DateEnd)
	}
	if filter.Status != "" {
		query = query.Where("orders.status = ?", filter.Status)
	}
	if filter.ProductID != 0 {
		query = query.Where("order_items.product_id = ?", filter.ProductID)
	}
	if filter.Section != "" {
		query = query.Where("products.section = ?", filter.Section)
	}

	var orders []model.Order
	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) Delete(ctx context.Context, order *model.Order) error {
	return r.db.WithContext(ctx).Delete(order).Error
}
