package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/uenr-dev/uenr-student-api/internal/service"
	"github.com/uenr-dev/uenr-student-api/pkg/response"
)

// DashboardHandler exposes the dashboard summary endpoint.
type DashboardHandler struct {
	dashboard *service.DashboardService
}

// NewDashboardHandler constructs DashboardHandler.
func NewDashboardHandler(dashboard *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// Stats godoc
// @Summary Dashboard summary
// @Tags Dashboard
// @Produce json
// @Success 200 {object} models.DashboardStats
// @Router /dashboard [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, cached, err := h.dashboard.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	if cached {
		c.Header("X-Cache", "HIT")
	} else {
		c.Header("X-Cache", "MISS")
	}
	response.JSON(c, 200, stats)
}
