package handler

import (
	"strings"

	"github.com/gin-gonic/gin"
	orderbookapp "github.com/orderbook/backend/internal/application/orderbook"
)

// PivotHandler serves the products-by-parties pivot view
type PivotHandler struct {
	BaseHandler
	pivotService *orderbookapp.PivotService
}

// NewPivotHandler creates a new PivotHandler
func NewPivotHandler(pivotService *orderbookapp.PivotService) *PivotHandler {
	return &PivotHandler{pivotService: pivotService}
}

// Get builds the pivot table over the full order log.
// products and parties are comma-separated name filters; metric is
// "quantity" (default) or "value".
func (h *PivotHandler) Get(c *gin.Context) {
	req := orderbookapp.PivotRequest{
		Products: splitNames(c.Query("products")),
		Parties:  splitNames(c.Query("parties")),
		Metric:   c.DefaultQuery("metric", "quantity"),
	}

	pivot, err := h.pivotService.BuildPivot(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, pivot)
}

// splitNames splits a comma-separated filter value, dropping blanks
func splitNames(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			names = append(names, trimmed)
		}
	}
	return names
}

// RegisterRoutes registers the pivot route
func (h *PivotHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/orderbook/pivot", h.Get)
}
