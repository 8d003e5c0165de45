package orderbook

import (
	"strings"
	"time"

	"github.com/orderbook/backend/internal/domain/shared"
)

// Dispatch is a single row in the append-only dispatch log. The order
// number is an advisory reference: the store does not enforce it
// relationally, the application checks it at submission time.
type Dispatch struct {
	Date        time.Time
	Company     string
	Product     string
	Quantity    int64
	OrderNumber int64
}

// NewDispatch validates the submitted fields and builds a dispatch row.
func NewDispatch(date time.Time, company, product string, quantity, orderNumber int64) (*Dispatch, error) {
	company = strings.TrimSpace(company)
	product = strings.TrimSpace(product)

	if company == "" {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Company name cannot be empty")
	}
	if product == "" {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Product name cannot be empty")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Quantity must be positive")
	}
	if orderNumber <= 0 {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Order number must be positive")
	}
	if date.IsZero() {
		date = time.Now()
	}

	return &Dispatch{
		Date:        date,
		Company:     company,
		Product:     product,
		Quantity:    quantity,
		OrderNumber: orderNumber,
	}, nil
}

// DispatchedQuantity sums the dispatched quantity across rows. The sum
// does not depend on row order.
func DispatchedQuantity(dispatches []Dispatch) int64 {
	var total int64
	for _, d := range dispatches {
		total += d.Quantity
	}
	return total
}

// Balance is the ordered-vs-dispatched quantity balance for one order.
// A negative balance means the order was over-dispatched; the domain
// reports it and leaves the policy to the caller.
type Balance struct {
	OrderNumber int64
	Ordered     int64
	Dispatched  int64
	Remaining   int64
}

// NewBalance computes the dispatch balance for an order from its
// dispatch rows.
func NewBalance(order *Order, dispatches []Dispatch) Balance {
	dispatched := DispatchedQuantity(dispatches)
	return Balance{
		OrderNumber: order.Number,
		Ordered:     order.Quantity,
		Dispatched:  dispatched,
		Remaining:   order.Quantity - dispatched,
	}
}
