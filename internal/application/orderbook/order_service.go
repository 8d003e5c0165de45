package orderbook

import (
	"context"
	"time"

	"github.com/orderbook/backend/internal/domain/orderbook"
	"github.com/orderbook/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// DefaultRecentOrdersLimit caps ListRecentOrders when no limit is given.
const DefaultRecentOrdersLimit = 50

// OrderService handles order recording and the derived order views
type OrderService struct {
	orders      orderbook.OrderRepository
	dispatches  orderbook.DispatchRepository
	references  orderbook.ReferenceListRepository
	gstRate     decimal.Decimal
	recentLimit int
}

// NewOrderService creates a new OrderService. gstRate is the fixed
// per-deployment GST rate applied to every recorded order.
func NewOrderService(
	orders orderbook.OrderRepository,
	dispatches orderbook.DispatchRepository,
	references orderbook.ReferenceListRepository,
	gstRate decimal.Decimal,
	recentLimit int,
) *OrderService {
	if recentLimit <= 0 {
		recentLimit = DefaultRecentOrdersLimit
	}
	return &OrderService{
		orders:      orders,
		dispatches:  dispatches,
		references:  references,
		gstRate:     gstRate,
		recentLimit: recentLimit,
	}
}

// RecordOrder validates the submission, checks the names against the
// reference lists, and appends exactly one order row. Validation
// happens before the append; a failed submission leaves the store
// untouched. The store assigns the order number atomically with the
// insert.
func (s *OrderService) RecordOrder(ctx context.Context, req RecordOrderRequest) (*OrderResponse, error) {
	var date time.Time
	if req.Date != nil {
		date = *req.Date
	}

	order, err := orderbook.NewOrder(date, req.Company, req.Product, req.Brand, req.Quantity, req.Price, s.gstRate)
	if err != nil {
		return nil, err
	}

	if err := s.validateAgainstList(ctx, orderbook.ReferenceListProducts, order.Product, "product"); err != nil {
		return nil, err
	}
	if err := s.validateAgainstList(ctx, orderbook.ReferenceListCompanies, order.Company, "company"); err != nil {
		return nil, err
	}
	if err := s.validateAgainstList(ctx, orderbook.ReferenceListBrands, order.Brand, "brand"); err != nil {
		return nil, err
	}

	if err := s.orders.Append(ctx, order); err != nil {
		return nil, err
	}

	resp := ToOrderResponse(order)
	return &resp, nil
}

// validateAgainstList rejects names absent from a non-empty reference
// list. An empty list means the list is unmanaged and any name passes.
func (s *OrderService) validateAgainstList(ctx context.Context, list orderbook.ReferenceList, name, field string) error {
	names, err := s.references.Names(ctx, list)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		return nil
	}
	if !orderbook.NewNameSet(names...).Contains(name) {
		return shared.NewDomainError("VALIDATION_FAILED", "Unknown "+field+": "+name)
	}
	return nil
}

// ListRecentOrders returns the most recently appended orders, newest
// first. A non-positive limit falls back to the configured default.
func (s *OrderService) ListRecentOrders(ctx context.Context, limit int) ([]OrderResponse, error) {
	if limit <= 0 {
		limit = s.recentLimit
	}

	orders, err := s.orders.FindRecent(ctx, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]OrderResponse, len(orders))
	for i := range orders {
		responses[i] = ToOrderResponse(&orders[i])
	}
	return responses, nil
}

// GetByNumber retrieves a single order by its order number.
func (s *OrderService) GetByNumber(ctx context.Context, number int64) (*OrderResponse, error) {
	order, err := s.orders.FindByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	resp := ToOrderResponse(order)
	return &resp, nil
}

// OrdersByProduct returns all orders for a product in insertion order,
// each with its dispatch progress. pendingOnly drops fully dispatched
// orders, matching the dispatch-planning views. An unknown product
// yields an empty slice, not an error.
func (s *OrderService) OrdersByProduct(ctx context.Context, product string, pendingOnly bool) ([]OrderLineResponse, error) {
	orders, err := s.orders.FindByProduct(ctx, product)
	if err != nil {
		return nil, err
	}
	return s.withDispatchProgress(ctx, orders, pendingOnly)
}

// OrdersByParty returns all orders for a company in insertion order,
// each with its dispatch progress.
func (s *OrderService) OrdersByParty(ctx context.Context, company string, pendingOnly bool) ([]OrderLineResponse, error) {
	orders, err := s.orders.FindByCompany(ctx, company)
	if err != nil {
		return nil, err
	}
	return s.withDispatchProgress(ctx, orders, pendingOnly)
}

// withDispatchProgress joins orders with their dispatch rows from a
// single dispatch-log snapshot.
func (s *OrderService) withDispatchProgress(ctx context.Context, orders []orderbook.Order, pendingOnly bool) ([]OrderLineResponse, error) {
	if len(orders) == 0 {
		return []OrderLineResponse{}, nil
	}

	dispatches, err := s.dispatches.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	dispatchedByOrder := make(map[int64]int64, len(orders))
	for _, d := range dispatches {
		dispatchedByOrder[d.OrderNumber] += d.Quantity
	}

	lines := make([]OrderLineResponse, 0, len(orders))
	for i := range orders {
		o := &orders[i]
		dispatched := dispatchedByOrder[o.Number]
		remaining := o.Quantity - dispatched
		if pendingOnly && remaining <= 0 {
			continue
		}
		lines = append(lines, OrderLineResponse{
			OrderResponse: ToOrderResponse(o),
			Dispatched:    dispatched,
			Remaining:     remaining,
		})
	}
	return lines, nil
}
