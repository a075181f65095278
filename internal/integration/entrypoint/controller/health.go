package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthChecker reports whether a dependency is reachable.
type HealthChecker func() bool

// HealthController handles health check endpoints.
type HealthController struct {
	dbHealthChecker    HealthChecker
	cacheHealthChecker HealthChecker
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Cache     string `json:"cache"`
	Timestamp string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance.
func NewHealthController(dbHealthChecker, cacheHealthChecker HealthChecker) *HealthController {
	return &HealthController{
		dbHealthChecker:    dbHealthChecker,
		cacheHealthChecker: cacheHealthChecker,
	}
}

// Check handles GET /health requests.
// The API is degraded, not down, when the preference cache is unreachable.
func (h *HealthController) Check(c *gin.Context) {
	dbStatus := connectionStatus(h.dbHealthChecker)
	cacheStatus := connectionStatus(h.cacheHealthChecker)

	status := "ok"
	code := http.StatusOK
	switch {
	case dbStatus != "connected":
		status = "unavailable"
		code = http.StatusServiceUnavailable
	case cacheStatus != "connected":
		status = "degraded"
	}

	c.JSON(code, HealthResponse{
		Status:    status,
		Database:  dbStatus,
		Cache:     cacheStatus,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func connectionStatus(check HealthChecker) string {
	if check != nil && check() {
		return "connected"
	}
	return "disconnected"
}
