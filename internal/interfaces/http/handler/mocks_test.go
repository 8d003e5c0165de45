package handler

import (
	"context"

	"github.com/orderbook/backend/internal/domain/orderbook"
	"github.com/stretchr/testify/mock"
)

// mockOrderRepository is a mock implementation of orderbook.OrderRepository
type mockOrderRepository struct {
	mock.Mock
}

func (m *mockOrderRepository) Append(ctx context.Context, order *orderbook.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *mockOrderRepository) FindAll(ctx context.Context) ([]orderbook.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]orderbook.Order), args.Error(1)
}

func (m *mockOrderRepository) FindRecent(ctx context.Context, limit int) ([]orderbook.Order, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]orderbook.Order), args.Error(1)
}

func (m *mockOrderRepository) FindByNumber(ctx context.Context, number int64) (*orderbook.Order, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*orderbook.Order), args.Error(1)
}

func (m *mockOrderRepository) FindByProduct(ctx context.Context, product string) ([]orderbook.Order, error) {
	args := m.Called(ctx, product)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]orderbook.Order), args.Error(1)
}

func (m *mockOrderRepository) FindByCompany(ctx context.Context, company string) ([]orderbook.Order, error) {
	args := m.Called(ctx, company)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]orderbook.Order), args.Error(1)
}

func (m *mockOrderRepository) ExistsByNumber(ctx context.Context, number int64) (bool, error) {
	args := m.Called(ctx, number)
	return args.Bool(0), args.Error(1)
}

// mockDispatchRepository is a mock implementation of orderbook.DispatchRepository
type mockDispatchRepository struct {
	mock.Mock
}

func (m *mockDispatchRepository) Append(ctx context.Context, dispatch *orderbook.Dispatch) error {
	args := m.Called(ctx, dispatch)
	return args.Error(0)
}

func (m *mockDispatchRepository) FindAll(ctx context.Context) ([]orderbook.Dispatch, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]orderbook.Dispatch), args.Error(1)
}

func (m *mockDispatchRepository) FindByOrderNumber(ctx context.Context, orderNumber int64) ([]orderbook.Dispatch, error) {
	args := m.Called(ctx, orderNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]orderbook.Dispatch), args.Error(1)
}

// mockReferenceListRepository is a mock implementation of orderbook.ReferenceListRepository
type mockReferenceListRepository struct {
	mock.Mock
}

func (m *mockReferenceListRepository) Names(ctx context.Context, list orderbook.ReferenceList) ([]string, error) {
	args := m.Called(ctx, list)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
