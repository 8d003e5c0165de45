package orderbook

import (
	"context"

	"github.com/orderbook/backend/internal/domain/orderbook"
	"github.com/stretchr/testify/mock"
)

// MockOrderRepository is a mock implementation of OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Append(ctx context.Context, order *orderbook.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) FindAll(ctx context.Context) ([]orderbook.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]orderbook.Order), args.Error(1)
}

func (m *MockOrderRepository) FindRecent(ctx context.Context, limit int) ([]orderbook.Order, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]orderbook.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByNumber(ctx context.Context, number int64) (*orderbook.Order, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*orderbook.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByProduct(ctx context.Context, product string) ([]orderbook.Order, error) {
	args := m.Called(ctx, product)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]orderbook.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByCompany(ctx context.Context, company string) ([]orderbook.Order, error) {
	args := m.Called(ctx, company)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]orderbook.Order), args.Error(1)
}

func (m *MockOrderRepository) ExistsByNumber(ctx context.Context, number int64) (bool, error) {
	args := m.Called(ctx, number)
	return args.Bool(0), args.Error(1)
}

// MockDispatchRepository is a mock implementation of DispatchRepository
type MockDispatchRepository struct {
	mock.Mock
}

func (m *MockDispatchRepository) Append(ctx context.Context, dispatch *orderbook.Dispatch) error {
	args := m.Called(ctx, dispatch)
	return args.Error(0)
}

func (m *MockDispatchRepository) FindAll(ctx context.Context) ([]orderbook.Dispatch, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]orderbook.Dispatch), args.Error(1)
}

func (m *MockDispatchRepository) FindByOrderNumber(ctx context.Context, orderNumber int64) ([]orderbook.Dispatch, error) {
	args := m.Called(ctx, orderNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]orderbook.Dispatch), args.Error(1)
}

// MockReferenceListRepository is a mock implementation of ReferenceListRepository
type MockReferenceListRepository struct {
	mock.Mock
}

func (m *MockReferenceListRepository) Names(ctx context.Context, list orderbook.ReferenceList) ([]string, error) {
	args := m.Called(ctx, list)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
