package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"

	"opsdash/internal/analytics"
	"opsdash/internal/domain"
	"opsdash/internal/service"
	"opsdash/internal/snapshot"
)

func newTestRouter(t *testing.T, dataDir string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := service.NewDashboardService(
		snapshot.NewFileSource(dataDir),
		analytics.NewAnalyzer(analytics.DefaultThresholds()),
		nil,
	)
	return NewRouter(svc, nil)
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t, t.TempDir())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestDashboardEndpoint_EmptyDataStillRenders(t *testing.T) {
	router := newTestRouter(t, t.TempDir())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics/dashboard?timeframe=week", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var payload domain.DashboardSnapshot
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(payload.Trend.Points) != 7 {
		t.Errorf("expected a complete week series, got %d points", len(payload.Trend.Points))
	}
	if payload.StockRisk.RiskItems == nil {
		t.Errorf("risk items must serialize as an empty array, not null")
	}
}

func TestRiskEndpoint_LimitTruncatesList(t *testing.T) {
	dir := t.TempDir()
	payload := `[
		{"warehouse_code":"WH1","part_code":"A","on_hand_qty":1,"safety_stock_qty":10},
		{"warehouse_code":"WH1","part_code":"B","on_hand_qty":2,"safety_stock_qty":10},
		{"warehouse_code":"WH1","part_code":"C","on_hand_qty":3,"safety_stock_qty":10}
	]`
	if err := os.WriteFile(filepath.Join(dir, "inventory.json"), []byte(payload), 0644); err != nil {
		t.Fatalf("failed to write inventory file: %v", err)
	}

	router := newTestRouter(t, dir)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics/inventory/risk?limit=2", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var assessment domain.StockRiskAssessment
	if err := json.Unmarshal(w.Body.Bytes(), &assessment); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(assessment.RiskItems) != 2 {
		t.Errorf("expected risk list truncated to 2, got %d", len(assessment.RiskItems))
	}
	// Aggregates are unaffected by truncation.
	if assessment.TotalCritical != 3 {
		t.Errorf("expected 3 critical items in totals, got %d", assessment.TotalCritical)
	}
}
