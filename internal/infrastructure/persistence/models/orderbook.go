package models

import (
	"time"

	"github.com/orderbook/backend/internal/domain/orderbook"
	"github.com/shopspring/decimal"
)

// OrderModel is the persistence model for an order row.
// The order number is the business identity: assigned once, never reused.
type OrderModel struct {
	Number    int64           `gorm:"primaryKey;autoIncrement:false"`
	Date      time.Time       `gorm:"not null;index"`
	Company   string          `gorm:"type:varchar(200);not null;index"`
	Product   string          `gorm:"type:varchar(200);not null;index"`
	Brand     string          `gorm:"type:varchar(200);not null"`
	Quantity  int64           `gorm:"not null"`
	Price     decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Total     decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	CreatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (OrderModel) TableName() string {
	return "orders"
}

// ToDomain converts the persistence model to a domain Order
func (m *OrderModel) ToDomain() *orderbook.Order {
	return &orderbook.Order{
		Number:   m.Number,
		Date:     m.Date,
		Company:  m.Company,
		Product:  m.Product,
		Brand:    m.Brand,
		Quantity: m.Quantity,
		Price:    m.Price,
		Total:    m.Total,
	}
}

// OrderModelFromDomain builds a persistence model from a domain Order
func OrderModelFromDomain(o *orderbook.Order) *OrderModel {
	return &OrderModel{
		Number:   o.Number,
		Date:     o.Date,
		Company:  o.Company,
		Product:  o.Product,
		Brand:    o.Brand,
		Quantity: o.Quantity,
		Price:    o.Price,
		Total:    o.Total,
	}
}

// DispatchModel is the persistence model for a dispatch row.
// Dispatches carry an advisory order reference, not a foreign key.
type DispatchModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	Date        time.Time `gorm:"not null;index"`
	Company     string    `gorm:"type:varchar(200);not null"`
	Product     string    `gorm:"type:varchar(200);not null"`
	Quantity    int64     `gorm:"not null"`
	OrderNumber int64     `gorm:"not null;index"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (DispatchModel) TableName() string {
	return "dispatches"
}

// ToDomain converts the persistence model to a domain Dispatch
func (m *DispatchModel) ToDomain() *orderbook.Dispatch {
	return &orderbook.Dispatch{
		Date:        m.Date,
		Company:     m.Company,
		Product:     m.Product,
		Quantity:    m.Quantity,
		OrderNumber: m.OrderNumber,
	}
}

// DispatchModelFromDomain builds a persistence model from a domain Dispatch
func DispatchModelFromDomain(d *orderbook.Dispatch) *DispatchModel {
	return &DispatchModel{
		Date:        d.Date,
		Company:     d.Company,
		Product:     d.Product,
		Quantity:    d.Quantity,
		OrderNumber: d.OrderNumber,
	}
}

// ReferenceNameModel is one entry of a named reference list
// (products, companies, brands).
type ReferenceNameModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	List      string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_reference_list_name,priority:1"`
	Name      string    `gorm:"type:varchar(200);not null;uniqueIndex:idx_reference_list_name,priority:2"`
	SortOrder int       `gorm:"not null;default:0"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (ReferenceNameModel) TableName() string {
	return "reference_names"
}
