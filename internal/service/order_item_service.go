package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"varejo/internal/errors"
	"varejo/internal/model"
	"varejo/internal/repository"
)

// OrderItemUpdateInput carries optional item mutations; nil fields are untouched.
type OrderItemUpdateInput struct {
	Quantity      *int
	PriceAtMoment *decimal.Decimal
}

// OrderItemService exposes order line-item operations.
type OrderItemService interface {
	CreateItem(ctx context.Context, item *model.OrderItem) (*model.OrderItem, error)
	GetItem(ctx context.Context, id uint) (*model.OrderItem, error)
	ListItems(ctx context.Context, filter repository.OrderItemFilter) ([]model.OrderItem, error)
	UpdateItem(ctx context.Context, id uint, input OrderItemUpdateInput) (*model.OrderItem, error)
	DeleteItem(ctx context.Context, id uint) error
}

type orderItemService struct {
	items    repository.OrderItemRepository
	orders   repository.OrderRepository
	products repository.ProductRepository
}

// NewOrderItemService creates a new order item service.
func NewOrderItemService(items repository.OrderItemRepository, orders repository.OrderRepository, products repository.ProductRepository) OrderItemService {
	return &orderItemService{
		items:    items,
		orders:   orders,
		products: products,
	}
}

// CreateItem enforces the (order, product) pair uniqueness and validates
// both parents before persisting.
func (s *orderItemService) CreateItem(ctx context.Context, item *model.OrderItem) (*model.OrderItem, error) {
	existing, err := s.items.FindByOrderAndProduct(ctx, item.OrderID, item.ProductID)
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check order item: %w", err)
	}
	if existing != nil {
		return nil, errors.ErrOrderItemTaken
	}

	if _, err := s.orders.FindByID(ctx, item.OrderID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrOrderNotFound
		}
		return nil, fmt.Errorf("check order: %w", err)
	}

	if _, err := s.products.FindByID(ctx, item.ProductID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrProductNotFound
		}
		return nil, fmt.Errorf("check product: %w", err)
	}

	if err := s.items.Create(ctx, item); err != nil {
		if err == gorm.ErrDuplicatedKey {
			return nil, errors.ErrOrderItemTaken
		}
		return nil, fmt.Errorf("create order item: %w", err)
	}
	return item, nil
}

func (s *orderItemService) GetItem(ctx context.Context, id uint) (*model.OrderItem, error) {
	item, err := s.items.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrOrderItemNotFound
		}
		return nil, err
	}
	return item, nil
}

func (s *orderItemService) ListItems(ctx context.Context, filter repository.OrderItemFilter) ([]model.OrderItem, error) {
	return s.items.List(ctx, filter)
}

// UpdateItem applies the non-nil input fields after re-validating that the
// item's parents still exist.
func (s *orderItemService) UpdateItem(ctx context.Context, id uint, input OrderItemUpdateInput) (*model.OrderItem, error) {
	item, err := s.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := s.orders.FindByID(ctx, item.OrderID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrOrderNotFound
		}
		return nil, fmt.Errorf("check order: %w", err)
	}
	if _, err := s.products.FindByID(ctx, item.ProductID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrProductNotFound
		}
		return nil, fmt.Errorf("check product: %w", err)
	}

	if input.Quantity != nil {
		item.Quantity = *input.Quantity
	}
	if input.PriceAtMoment != nil {
		item.PriceAtMoment = *input.PriceAtMoment
	}

	if err := s.items.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("update order item: %w", err)
	}
	return item, nil
}

func (s *orderItemService) DeleteItem(ctx context.Context, id uint) error {
	item, err := s.GetItem(ctx, id)
	if err != nil {
		return err
	}
	if err := s.items.Delete(ctx, item); err != nil {
		return fmt.Errorf("delete order item: %w", err)
	}
	return nil
}
