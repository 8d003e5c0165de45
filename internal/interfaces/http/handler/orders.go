package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	orderbookapp "github.com/orderbook/backend/internal/application/orderbook"
	"github.com/shopspring/decimal"
)

// OrderHandler handles order-related API endpoints
type OrderHandler struct {
	BaseHandler
	orderService *orderbookapp.OrderService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orderService *orderbookapp.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// RecordOrderRequest represents a request to record a new order.
// Date is optional and defaults to the time of recording.
type RecordOrderRequest struct {
	Company  string          `json:"company" binding:"required,min=1,max=200"`
	Product  string          `json:"product" binding:"required,min=1,max=200"`
	Brand    string          `json:"brand" binding:"required,min=1,max=200"`
	Quantity int64           `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Date     *time.Time      `json:"date"`
}

// Create records a new order
func (h *OrderHandler) Create(c *gin.Context) {
	var req RecordOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	order, err := h.orderService.RecordOrder(c.Request.Context(), orderbookapp.RecordOrderRequest{
		Company:  req.Company,
		Product:  req.Product,
		Brand:    req.Brand,
		Quantity: req.Quantity,
		Price:    req.Price,
		Date:     req.Date,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, order)
}

// ListRecent returns the most recently recorded orders, newest first
func (h *OrderHandler) ListRecent(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			h.BadRequest(c, "Invalid limit")
			return
		}
		limit = parsed
	}

	orders, err := h.orderService.ListRecentOrders(c.Request.Context(), limit)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, orders)
}

// GetByNumber returns a single order by its order number
func (h *OrderHandler) GetByNumber(c *gin.Context) {
	number, err := strconv.ParseInt(c.Param("number"), 10, 64)
	if err != nil || number <= 0 {
		h.BadRequest(c, "Invalid order number")
		return
	}

	order, err := h.orderService.GetByNumber(c.Request.Context(), number)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, order)
}

// ByProduct returns all orders for one product with dispatch progress.
// pending_only=true drops fully dispatched orders.
func (h *OrderHandler) ByProduct(c *gin.Context) {
	name := c.Param("name")
	if name == "" {
		h.BadRequest(c, "Product name is required")
		return
	}

	lines, err := h.orderService.OrdersByProduct(c.Request.Context(), name, pendingOnly(c))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, lines)
}

// ByParty returns all orders for one company with dispatch progress
func (h *OrderHandler) ByParty(c *gin.Context) {
	name := c.Param("name")
	if name == "" {
		h.BadRequest(c, "Party name is required")
		return
	}

	lines, err := h.orderService.OrdersByParty(c.Request.Context(), name, pendingOnly(c))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, lines)
}

func pendingOnly(c *gin.Context) bool {
	return c.Query("pending_only") == "true"
}

// RegisterRoutes registers all order routes
func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/orderbook/orders")
	{
		orders.POST("", h.Create)
		orders.GET("", h.ListRecent)
		orders.GET("/number/:number", h.GetByNumber)
		orders.GET("/by-product/:name", h.ByProduct)
		orders.GET("/by-party/:name", h.ByParty)
	}
}
