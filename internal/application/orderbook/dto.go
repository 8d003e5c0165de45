package orderbook

import (
	"time"

	"github.com/orderbook/backend/internal/domain/orderbook"
	"github.com/shopspring/decimal"
)

// ==================== Order DTOs ====================

// RecordOrderRequest represents a request to record a new order
type RecordOrderRequest struct {
	Company  string          `json:"company"`
	Product  string          `json:"product"`
	Brand    string          `json:"brand"`
	Quantity int64           `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Date     *time.Time      `json:"date"`
}

// OrderResponse represents an order in application responses
type OrderResponse struct {
	Number   int64     `json:"order_number"`
	Date     time.Time `json:"date"`
	Company  string    `json:"company"`
	Product  string    `json:"product"`
	Brand    string    `json:"brand"`
	Quantity int64     `json:"quantity"`
	Price    string    `json:"price"`
	Total    string    `json:"total"`
}

// OrderLineResponse represents an order together with its dispatch
// progress, used by the per-product and per-party views
type OrderLineResponse struct {
	OrderResponse
	Dispatched int64 `json:"dispatched"`
	Remaining  int64 `json:"remaining"`
}

// ToOrderResponse converts a domain order to a response DTO
func ToOrderResponse(o *orderbook.Order) OrderResponse {
	return OrderResponse{
		Number:   o.Number,
		Date:     o.Date,
		Company:  o.Company,
		Product:  o.Product,
		Brand:    o.Brand,
		Quantity: o.Quantity,
		Price:    o.Price.StringFixed(orderbook.TotalScale),
		Total:    o.Total.StringFixed(orderbook.TotalScale),
	}
}

// ==================== Dispatch DTOs ====================

// RecordDispatchRequest represents a request to record a dispatch
type RecordDispatchRequest struct {
	Company     string     `json:"company"`
	Product     string     `json:"product"`
	Quantity    int64      `json:"quantity"`
	OrderNumber int64      `json:"order_number"`
	Date        *time.Time `json:"date"`
}

// DispatchResponse represents a dispatch row in application responses
type DispatchResponse struct {
	Date        time.Time `json:"date"`
	Company     string    `json:"company"`
	Product     string    `json:"product"`
	Quantity    int64     `json:"quantity"`
	OrderNumber int64     `json:"order_number"`
}

// ToDispatchResponse converts a domain dispatch to a response DTO
func ToDispatchResponse(d *orderbook.Dispatch) DispatchResponse {
	return DispatchResponse{
		Date:        d.Date,
		Company:     d.Company,
		Product:     d.Product,
		Quantity:    d.Quantity,
		OrderNumber: d.OrderNumber,
	}
}

// BalanceResponse represents the dispatch balance for one order
type BalanceResponse struct {
	OrderNumber int64 `json:"order_number"`
	Ordered     int64 `json:"ordered"`
	Dispatched  int64 `json:"dispatched"`
	Remaining   int64 `json:"remaining"`
}

// ToBalanceResponse converts a domain balance to a response DTO
func ToBalanceResponse(b orderbook.Balance) BalanceResponse {
	return BalanceResponse{
		OrderNumber: b.OrderNumber,
		Ordered:     b.Ordered,
		Dispatched:  b.Dispatched,
		Remaining:   b.Remaining,
	}
}

// ==================== Pivot DTOs ====================

// PivotRequest represents pivot filter options
type PivotRequest struct {
	Products []string
	Parties  []string
	Metric   string
}

// PivotResponse represents the pivot table in application responses
type PivotResponse struct {
	Metric       string     `json:"metric"`
	Products     []string   `json:"products"`
	Parties      []string   `json:"parties"`
	Cells        [][]string `json:"cells"`
	RowTotals    []string   `json:"row_totals"`
	ColumnTotals []string   `json:"column_totals"`
	GrandTotal   string     `json:"grand_total"`
}

// ToPivotResponse converts a domain pivot table to a response DTO
func ToPivotResponse(t *orderbook.PivotTable) PivotResponse {
	resp := PivotResponse{
		Metric:       string(t.Metric),
		Products:     t.Products,
		Parties:      t.Parties,
		Cells:        make([][]string, len(t.Cells)),
		RowTotals:    make([]string, len(t.RowTotals)),
		ColumnTotals: make([]string, len(t.ColumnTotals)),
		GrandTotal:   formatPivotValue(t.GrandTotal, t.Metric),
	}
	for i, row := range t.Cells {
		resp.Cells[i] = make([]string, len(row))
		for j, cell := range row {
			resp.Cells[i][j] = formatPivotValue(cell, t.Metric)
		}
		resp.RowTotals[i] = formatPivotValue(t.RowTotals[i], t.Metric)
	}
	for j, total := range t.ColumnTotals {
		resp.ColumnTotals[j] = formatPivotValue(total, t.Metric)
	}
	return resp
}

func formatPivotValue(v decimal.Decimal, metric orderbook.PivotMetric) string {
	if metric == orderbook.PivotMetricValue {
		return v.StringFixed(orderbook.TotalScale)
	}
	return v.String()
}

// ==================== Reference list DTOs ====================

// ReferenceListsResponse holds the three name lists used to populate
// selection inputs
type ReferenceListsResponse struct {
	Products  []string `json:"products"`
	Companies []string `json:"companies"`
	Brands    []string `json:"brands"`
}
