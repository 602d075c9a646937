// internal/api/handlers/dashboard_handler.go
package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"opsdash/internal/domain"
	"opsdash/internal/service"
)

type DashboardHandler struct {
	service *service.DashboardService
}

func NewDashboardHandler(service *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// GetStockRisk returns the safety-stock risk assessment. An optional
// limit query truncates the risk list to the display top-N; the full
// aggregates are unaffected.
func (h *DashboardHandler) GetStockRisk(c *gin.Context) {
	assessment, err := h.service.GetStockRisk(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to assess stock risk", "details": err.Error()})
		return
	}

	if limit := parseLimit(c); limit > 0 && len(assessment.RiskItems) > limit {
		assessment.RiskItems = assessment.RiskItems[:limit]
	}

	c.JSON(http.StatusOK, assessment)
}

func (h *DashboardHandler) GetConcentration(c *gin.Context) {
	concentration, err := h.service.GetValueConcentration(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to classify value concentration", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, concentration)
}

func (h *DashboardHandler) GetInactivity(c *gin.Context) {
	stats, err := h.service.GetInactivity(c.Request.Context(), time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to detect inactivity", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *DashboardHandler) GetAlerts(c *gin.Context) {
	alerts, err := h.service.GetAlerts(c.Request.Context(), time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate alerts", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"alerts": alerts,
		"total":  len(alerts),
	})
}

func (h *DashboardHandler) GetTrend(c *gin.Context) {
	timeframe := domain.ParseTimeframe(c.Query("timeframe"))
	series, stats, err := h.service.GetTrend(c.Request.Context(), timeframe, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build trend series", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"series": series,
		"stats":  stats,
	})
}

func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	timeframe := domain.ParseTimeframe(c.Query("timeframe"))
	snapshot, err := h.service.GetDashboard(c.Request.Context(), timeframe, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build dashboard", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

func parseLimit(c *gin.Context) int {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "0"))
	if err != nil || limit < 0 {
		return 0
	}
	return limit
}
