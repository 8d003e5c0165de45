package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	orderbookapp "github.com/orderbook/backend/internal/application/orderbook"
)

// DispatchHandler handles dispatch-related API endpoints
type DispatchHandler struct {
	BaseHandler
	dispatchService *orderbookapp.DispatchService
}

// NewDispatchHandler creates a new DispatchHandler
func NewDispatchHandler(dispatchService *orderbookapp.DispatchService) *DispatchHandler {
	return &DispatchHandler{dispatchService: dispatchService}
}

// RecordDispatchRequest represents a request to record a dispatch
// against an existing order
type RecordDispatchRequest struct {
	Company     string     `json:"company" binding:"required,min=1,max=200"`
	Product     string     `json:"product" binding:"required,min=1,max=200"`
	Quantity    int64      `json:"quantity"`
	OrderNumber int64      `json:"order_number"`
	Date        *time.Time `json:"date"`
}

// Create records a new dispatch
func (h *DispatchHandler) Create(c *gin.Context) {
	var req RecordDispatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	dispatch, err := h.dispatchService.RecordDispatch(c.Request.Context(), orderbookapp.RecordDispatchRequest{
		Company:     req.Company,
		Product:     req.Product,
		Quantity:    req.Quantity,
		OrderNumber: req.OrderNumber,
		Date:        req.Date,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, dispatch)
}

// Balance reports ordered, dispatched, and remaining quantity for one
// order. Remaining goes negative when over-dispatched.
func (h *DispatchHandler) Balance(c *gin.Context) {
	number, err := strconv.ParseInt(c.Param("number"), 10, 64)
	if err != nil || number <= 0 {
		h.BadRequest(c, "Invalid order number")
		return
	}

	balance, err := h.dispatchService.DispatchBalance(c.Request.Context(), number)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, balance)
}

// RegisterRoutes registers all dispatch routes
func (h *DispatchHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/orderbook/dispatches", h.Create)
	rg.GET("/orderbook/orders/number/:number/balance", h.Balance)
}
