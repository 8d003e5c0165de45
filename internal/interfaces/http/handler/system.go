package handler

import (
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/orderbook/backend/internal/interfaces/http/dto"
)

// Pinger reports whether the backing store is reachable
type Pinger interface {
	Ping() error
}

// SystemHandler handles health and system endpoints
type SystemHandler struct {
	BaseHandler
	store     Pinger
	startTime time.Time
}

// NewSystemHandler creates a new SystemHandler. store may be nil when
// there is no backing store to probe (readiness then equals liveness).
func NewSystemHandler(store Pinger) *SystemHandler {
	return &SystemHandler{
		store:     store,
		startTime: time.Now(),
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string `json:"status"`
	GoVersion string `json:"go_version"`
	Uptime    string `json:"uptime"`
}

// Health is the liveness probe: the process is up and serving
func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(HealthResponse{
		Status:    "ok",
		GoVersion: runtime.Version(),
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
	}))
}

// Ready is the readiness probe: the row store must answer a ping
func (h *SystemHandler) Ready(c *gin.Context) {
	if h.store != nil {
		if err := h.store.Ping(); err != nil {
			h.Error(c, http.StatusServiceUnavailable, dto.ErrCodeStoreUnavailable, "Row store is not reachable")
			return
		}
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"status": "ready"}))
}

// RegisterSystemRoutes registers health endpoints on the engine root,
// outside the versioned API group
func (h *SystemHandler) RegisterSystemRoutes(engine *gin.Engine) {
	engine.GET("/health", h.Health)
	engine.GET("/ready", h.Ready)
}
