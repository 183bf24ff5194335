package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"varejo/internal/errors"
	"varejo/internal/model"
	"varejo/internal/repository"
)

// MockOrderItemRepository is a mock implementation of repository.OrderItemRepository.
type MockOrderItemRepository struct {
	mock.Mock
}

func (m *MockOrderItemRepository) Create(ctx context.Context, item *model.OrderItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockOrderItemRepository) Update(ctx context.Context, item *model.OrderItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockOrderItemRepository) FindByID(ctx context.Context, id uint) (*model.OrderItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OrderItem), args.Error(1)
}

func (m *MockOrderItemRepository) FindByOrderAndProduct(ctx context.Context, orderID, productID uint) (*model.OrderItem, error) {
	args := m.Called(ctx, orderID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OrderItem), args.Error(1)
}

func (m *MockOrderItemRepository) List(ctx context.Context, filter repository.OrderItemFilter) ([]model.OrderItem, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.OrderItem), args.Error(1)
}

func (m *MockOrderItemRepository) Delete(ctx context.Context, item *model.OrderItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func TestOrderItemService_CreateItem(t *testing.T) {
	input := func() *model.OrderItem {
		return &model.OrderItem{
			OrderID:       1,
			ProductID:     2,
			Quantity:      3,
			PriceAtMoment: decimal.RequireFromString("5.29"),
		}
	}

	tests := []struct {
		name        string
		item        *model.OrderItem
		setupMock   func(*MockOrderItemRepository, *MockOrderRepository, *MockProductRepository)
		expectedErr error
	}{
		{
			name: "successful creation",
			item: input(),
			setupMock: func(items *MockOrderItemRepository, orders *MockOrderRepository, products *MockProductRepository) {
				items.On("FindByOrderAndProduct", mock.Anything, uint(1), uint(2)).Return(nil, gorm.ErrRecordNotFound)
				orders.On("FindByID", mock.Anything, uint(1)).Return(&model.Order{ID: 1}, nil)
				products.On("FindByID", mock.Anything, uint(2)).Return(&model.Product{ID: 2}, nil)
				items.On("Create", mock.Anything, mock.AnythingOfType("*model.OrderItem")).Return(nil)
			},
			expectedErr: nil,
		},
		{
			name: "order already holds the product",
			item: input(),
			setupMock: func(items *MockOrderItemRepository, orders *MockOrderRepository, products *MockProductRepository) {
				items.On("FindByOrderAndProduct", mock.Anything, uint(1), uint(2)).
					Return(&model.OrderItem{ID: 10, OrderID: 1, ProductID: 2}, nil)
			},
			expectedErr: errors.ErrOrderItemTaken,
		},
		{
			name: "unknown order",
			item: input(),
			setupMock: func(items *MockOrderItemRepository, orders *MockOrderRepository, products *MockProductRepository) {
				items.On("FindByOrderAndProduct", mock.Anything, uint(1), uint(2)).Return(nil, gorm.ErrRecordNotFound)
				orders.On("FindByID", mock.Anything, uint(1)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedErr: errors.ErrOrderNotFound,
		},
		{
			name: "unknown product",
			item: input(),
			setupMock: func(items *MockOrderItemRepository, orders *MockOrderRepository, products *MockProductRepository) {
				items.On("FindByOrderAndProduct", mock.Anything, uint(1), uint(2)).Return(nil, gorm.ErrRecordNotFound)
				orders.On("FindByID", mock.Anything, uint(1)).Return(&model.Order{ID: 1}, nil)
				products.On("FindByID", mock.Anything, uint(2)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedErr: errors.ErrProductNotFound,
		},
		{
			name: "pair race lost on the unique index",
			item: input(),
			setupMock: func(items *MockOrderItemRepository, orders *MockOrderRepository, products *MockProductRepository) {
				items.On("FindByOrderAndProduct", mock.Anything, uint(1), uint(2)).Return(nil, gorm.ErrRecordNotFound)
				orders.On("FindByID", mock.Anything, uint(1)).Return(&model.Order{ID: 1}, nil)
				products.On("FindByID", mock.Anything, uint(2)).Return(&model.Product{ID: 2}, nil)
				items.On("Create", mock.Anything, mock.AnythingOfType("*model.OrderItem")).Return(gorm.ErrDuplicatedKey)
			},
			expectedErr: errors.ErrOrderItemTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := new(MockOrderItemRepository)
			orders := new(MockOrderRepository)
			products := new(MockProductRepository)
			tt.setupMock(items, orders, products)

			svc := NewOrderItemService(items, orders, products)
			created, err := svc.CreateItem(context.Background(), tt.item)

			if tt.expectedErr != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedErr, err)
				assert.Nil(t, created)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.item, created)
			}
			items.AssertExpectations(t)
			orders.AssertExpectations(t)
			products.AssertExpectations(t)
		})
	}
}

func TestOrderItemService_GetItem_NotFound(t *testing.T) {
	items := new(MockOrderItemRepository)
	items.On("FindByID", mock.Anything, uint(404)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewOrderItemService(items, new(MockOrderRepository), new(MockProductRepository))
	item, err := svc.GetItem(context.Background(), 404)

	assert.Error(t, err)
	assert.Equal(t, errors.ErrOrderItemNotFound, err)
	assert.Nil(t, item)
	items.AssertExpectations(t)
}
