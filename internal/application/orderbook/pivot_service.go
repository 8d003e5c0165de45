package orderbook

import (
	"context"

	"github.com/orderbook/backend/internal/domain/orderbook"
)

// PivotService builds the products-by-parties pivot view. Each call
// reads a fresh full snapshot of the order log and hands it to the
// pure pivot engine; nothing is cached between calls.
type PivotService struct {
	orders orderbook.OrderRepository
}

// NewPivotService creates a new PivotService
func NewPivotService(orders orderbook.OrderRepository) *PivotService {
	return &PivotService{orders: orders}
}

// BuildPivot loads the order snapshot and aggregates it under the
// requested filters. An unknown metric falls back to quantity.
func (s *PivotService) BuildPivot(ctx context.Context, req PivotRequest) (*PivotResponse, error) {
	orders, err := s.orders.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	metric := orderbook.PivotMetric(req.Metric)
	if !metric.IsValid() {
		metric = orderbook.PivotMetricQuantity
	}

	table := orderbook.BuildPivot(
		orders,
		orderbook.NewNameSet(req.Products...),
		orderbook.NewNameSet(req.Parties...),
		metric,
	)

	resp := ToPivotResponse(table)
	return &resp, nil
}
