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

// OrderUpdateInput carries optional order mutations; nil fields are untouched.
type OrderUpdateInput struct {
	ClientID    *uint
	UserID      *uint
	Status      *string
	TotalAmount *decimal.Decimal
}

// OrderService exposes order operations.
type OrderService interface {
	CreateOrder(ctx context.Context, order *model.Order) (*model.Order, error)
	GetOrder(ctx context.Context, id uint) (*model.Order, error)
	ListOrders(ctx context.Context, filter repository.OrderFilter) ([]model.Order, error)
	UpdateOrder(ctx context.Context, id uint, input OrderUpdateInput) (*model.Order, error)
	DeleteOrder(ctx context.Context, id uint) error
}

type orderService struct {
	orders  repository.OrderRepository
	users   repository.UserRepository
	clients repository.ClientRepository
}

// NewOrderService creates a new order service.
func NewOrderService(orders repository.OrderRepository, users repository.UserRepository, clients repository.ClientRepository) OrderService {
	return &orderService{
		orders:  orders,
		users:   users,
		clients: clients,
	}
}

// CreateOrder validates that the referenced client and user exist before
// persisting the order.
func (s *orderService) CreateOrder(ctx context.Context, order *model.Order) (*model.Order, error) {
	if _, err := s.clients.FindByID(ctx, order.ClientID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrClientNotFound
		}
		return nil, fmt.Errorf("check client: %w", err)
	}

	if _, err := s.users.FindByID(ctx, order.UserID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, fmt.Errorf("check user: %w", err)
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	return order, nil
}

func (s *orderService) GetOrder(ctx context.Context, id uint) (*model.Order, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

func (s *orderService) ListOrders(ctx context.Context, filter repository.OrderFilter) ([]model.Order, error) {
	return s.orders.List(ctx, filter)
}

// UpdateOrder applies the non-nil input fields, re-validating any changed
// client or user reference.
func (s *orderService) UpdateOrder(ctx context.Context, id uint, input OrderUpdateInput) (*model.Order, error) {
	order, err := s.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.ClientID != nil {
		if _, err := s.clients.FindByID(ctx, *input.ClientID); err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil, errors.ErrClientNotFound
			}
			return nil, fmt.Errorf("check client: %w", err)
		}
		order.ClientID = *input.ClientID
	}
	if input.UserID != nil {
		if _, err := s.users.FindByID(ctx, *input.UserID); err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil, errors.ErrUserNotFound
			}
			return nil, fmt.Errorf("check user: %w", err)
		}
		order.UserID = *input.UserID
	}
	if input.Status != nil {
		order.Status = *input.Status
	}
	if input.TotalAmount != nil {
		order.TotalAmount = *input.TotalAmount
	}

	if err := s.orders.Update(ctx, order); err != nil {
		return nil, fmt.Errorf("update order: %w", err)
	}
	return order, nil
}

func (s *orderService) DeleteOrder(ctx context.Context, id uint) error {
	order, err := s.GetOrder(ctx, id)
	if err != nil {
		return err
	}
	if err := s.orders.Delete(ctx, order); err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}
