package orderbook

import (
	"strings"
	"time"

	"github.com/orderbook/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// TotalScale is the decimal precision used for tax-inclusive totals.
const TotalScale = 2

// Order is a single row in the append-only order log. Orders are
// immutable once recorded; the order number is assigned by the store
// at append time and is never reused.
type Order struct {
	Number   int64
	Date     time.Time
	Company  string
	Product  string
	Brand    string
	Quantity int64
	Price    decimal.Decimal
	Total    decimal.Decimal
}

// NewOrder validates the submitted fields and builds an order with its
// GST-inclusive total. The order number stays zero until the store
// assigns one on append.
func NewOrder(date time.Time, company, product, brand string, quantity int64, price, gstRate decimal.Decimal) (*Order, error) {
	company = strings.TrimSpace(company)
	product = strings.TrimSpace(product)
	brand = strings.TrimSpace(brand)

	if company == "" {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Company name cannot be empty")
	}
	if product == "" {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Product name cannot be empty")
	}
	if brand == "" {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Brand name cannot be empty")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Quantity must be positive")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Price cannot be negative")
	}
	if gstRate.IsNegative() {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "GST rate cannot be negative")
	}
	if date.IsZero() {
		date = time.Now()
	}

	return &Order{
		Date:     date,
		Company:  company,
		Product:  product,
		Brand:    brand,
		Quantity: quantity,
		Price:    price,
		Total:    GSTInclusiveTotal(quantity, price, gstRate),
	}, nil
}

// GSTInclusiveTotal computes quantity x price x (1 + gstRate) rounded
// half-up to TotalScale decimal places.
func GSTInclusiveTotal(quantity int64, price, gstRate decimal.Decimal) decimal.Decimal {
	return price.
		Mul(decimal.NewFromInt(quantity)).
		Mul(decimal.NewFromInt(1).Add(gstRate)).
		Round(TotalScale)
}

// MatchesProduct reports whether the order's product equals name,
// ignoring case and surrounding whitespace.
func (o *Order) MatchesProduct(name string) bool {
	return strings.EqualFold(o.Product, strings.TrimSpace(name))
}

// MatchesCompany reports whether the order's company equals name,
// ignoring case and surrounding whitespace.
func (o *Order) MatchesCompany(name string) bool {
	return strings.EqualFold(o.Company, strings.TrimSpace(name))
}
