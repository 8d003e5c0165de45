package orderbook

import (
	"context"
	"time"

	"github.com/orderbook/backend/internal/domain/orderbook"
	"github.com/orderbook/backend/internal/domain/shared"
)

// DispatchService handles dispatch recording and balance reporting
type DispatchService struct {
	orders     orderbook.OrderRepository
	dispatches orderbook.DispatchRepository
}

// NewDispatchService creates a new DispatchService
func NewDispatchService(orders orderbook.OrderRepository, dispatches orderbook.DispatchRepository) *DispatchService {
	return &DispatchService{
		orders:     orders,
		dispatches: dispatches,
	}
}

// RecordDispatch validates the submission, checks that the referenced
// order exists, and appends one dispatch row. The order reference is
// advisory: the store holds no foreign key, the check happens here.
// Over-dispatch is allowed; the balance view reports it.
func (s *DispatchService) RecordDispatch(ctx context.Context, req RecordDispatchRequest) (*DispatchResponse, error) {
	var date time.Time
	if req.Date != nil {
		date = *req.Date
	}

	dispatch, err := orderbook.NewDispatch(date, req.Company, req.Product, req.Quantity, req.OrderNumber)
	if err != nil {
		return nil, err
	}

	exists, err := s.orders.ExistsByNumber(ctx, dispatch.OrderNumber)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, shared.ErrUnknownOrder
	}

	if err := s.dispatches.Append(ctx, dispatch); err != nil {
		return nil, err
	}

	resp := ToDispatchResponse(dispatch)
	return &resp, nil
}

// DispatchBalance reports ordered minus cumulative dispatched quantity
// for one order. The result may be negative when over-dispatched.
func (s *DispatchService) DispatchBalance(ctx context.Context, orderNumber int64) (*BalanceResponse, error) {
	order, err := s.orders.FindByNumber(ctx, orderNumber)
	if err != nil {
		return nil, err
	}

	dispatches, err := s.dispatches.FindByOrderNumber(ctx, orderNumber)
	if err != nil {
		return nil, err
	}

	resp := ToBalanceResponse(orderbook.NewBalance(order, dispatches))
	return &resp, nil
}
