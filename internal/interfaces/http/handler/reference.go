package handler

import (
	"github.com/gin-gonic/gin"
	orderbookapp "github.com/orderbook/backend/internal/application/orderbook"
)

// ReferenceHandler serves the reference name lists
type ReferenceHandler struct {
	BaseHandler
	referenceService *orderbookapp.ReferenceListService
}

// NewReferenceHandler creates a new ReferenceHandler
func NewReferenceHandler(referenceService *orderbookapp.ReferenceListService) *ReferenceHandler {
	return &ReferenceHandler{referenceService: referenceService}
}

// Lists returns the product, company, and brand name lists used to
// populate selection inputs
func (h *ReferenceHandler) Lists(c *gin.Context) {
	lists, err := h.referenceService.Lists(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, lists)
}

// RegisterRoutes registers the reference list route
func (h *ReferenceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/orderbook/reference-lists", h.Lists)
}
