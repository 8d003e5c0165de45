package orderbook

import (
	"context"

	"github.com/orderbook/backend/internal/domain/orderbook"
)

// ReferenceListService reads the externally owned name lists
type ReferenceListService struct {
	references orderbook.ReferenceListRepository
}

// NewReferenceListService creates a new ReferenceListService
func NewReferenceListService(references orderbook.ReferenceListRepository) *ReferenceListService {
	return &ReferenceListService{references: references}
}

// Lists returns the product, company and brand name lists used to
// populate selection inputs.
func (s *ReferenceListService) Lists(ctx context.Context) (*ReferenceListsResponse, error) {
	products, err := s.references.Names(ctx, orderbook.ReferenceListProducts)
	if err != nil {
		return nil, err
	}
	companies, err := s.references.Names(ctx, orderbook.ReferenceListCompanies)
	if err != nil {
		return nil, err
	}
	brands, err := s.references.Names(ctx, orderbook.ReferenceListBrands)
	if err != nil {
		return nil, err
	}

	return &ReferenceListsResponse{
		Products:  products,
		Companies: companies,
		Brands:    brands,
	}, nil
}
