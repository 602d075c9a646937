// internal/service/dashboard_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"opsdash/internal/analytics"
	"opsdash/internal/cache"
	"opsdash/internal/domain"
	"opsdash/internal/snapshot"
)

// DashboardService runs the analytics kernel over freshly fetched
// snapshots and assembles the dashboard payloads. The kernel itself is
// pure; this layer owns fetching, caching and the default clock at the
// API boundary.
type DashboardService struct {
	source   snapshot.Source
	analyzer *analytics.Analyzer
	cache    cache.DashboardCache
}

func NewDashboardService(source snapshot.Source, analyzer *analytics.Analyzer, cacheImpl cache.DashboardCache) *DashboardService {
	if cacheImpl == nil {
		cacheImpl = cache.NewNoopDashboardCache()
	}
	return &DashboardService{source: source, analyzer: analyzer, cache: cacheImpl}
}

// GetDashboard returns the full dashboard snapshot for a timeframe,
// serving from cache when a fresh payload exists. Cache failures degrade
// to recomputation, never to an error.
func (s *DashboardService) GetDashboard(ctx context.Context, timeframe domain.Timeframe, now time.Time) (*domain.DashboardSnapshot, error) {
	if cached, ok, err := s.cache.Get(ctx, timeframe); err == nil && ok {
		return cached, nil
	} else if err != nil {
		log.Warn().Err(err).Msg("dashboard: cache get failed")
	}

	snap, err := snapshot.FetchAll(ctx, s.source)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch snapshot: %w", err)
	}

	result := s.assemble(snap, timeframe, now)

	if err := s.cache.Set(ctx, timeframe, result); err != nil {
		log.Warn().Err(err).Msg("dashboard: cache set failed")
	}

	return result, nil
}

// GetStockRisk returns the safety-stock tiering over the current
// inventory snapshot.
func (s *DashboardService) GetStockRisk(ctx context.Context) (domain.StockRiskAssessment, error) {
	items, err := s.source.FetchInventory(ctx)
	if err != nil {
		return domain.StockRiskAssessment{}, fmt.Errorf("failed to fetch inventory: %w", err)
	}
	return s.analyzer.AssessStockRisk(items), nil
}

// GetValueConcentration returns the ABC classification over the current
// inventory snapshot.
func (s *DashboardService) GetValueConcentration(ctx context.Context) (domain.ValueConcentration, error) {
	items, err := s.source.FetchInventory(ctx)
	if err != nil {
		return domain.ValueConcentration{}, fmt.Errorf("failed to fetch inventory: %w", err)
	}
	return s.analyzer.ClassifyValueConcentration(valuedItems(items)), nil
}

// GetInactivity returns the inactivity scan over the current inventory
// snapshot.
func (s *DashboardService) GetInactivity(ctx context.Context, now time.Time) (domain.InactivityStats, error) {
	items, err := s.source.FetchInventory(ctx)
	if err != nil {
		return domain.InactivityStats{}, fmt.Errorf("failed to fetch inventory: %w", err)
	}
	return s.analyzer.DetectInactivity(items, now), nil
}

// GetAlerts returns the SLA risk alerts derived from outbound shipments
// and the pending-order backlog.
func (s *DashboardService) GetAlerts(ctx context.Context, now time.Time) ([]domain.SLARiskAlert, error) {
	var (
		outbound []domain.ShipmentEvent
		pending  []domain.OrderEvent
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		events, err := s.source.FetchOutbound(gctx)
		outbound = events
		return err
	})
	g.Go(func() error {
		events, err := s.source.FetchPendingOrders(gctx)
		pending = events
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to fetch alert inputs: %w", err)
	}

	return s.analyzer.GenerateSLAAlerts(outbound, len(pending), now), nil
}

// GetTrend builds the time-bucketed trend series plus its derived stats.
func (s *DashboardService) GetTrend(ctx context.Context, timeframe domain.Timeframe, now time.Time) (domain.TimeframeSeries, domain.TrendStats, error) {
	snap, err := snapshot.FetchAll(ctx, s.source)
	if err != nil {
		return domain.TimeframeSeries{}, domain.TrendStats{}, fmt.Errorf("failed to fetch snapshot: %w", err)
	}

	series := s.analyzer.BuildTimeframeSeries(timeframe, snap.PendingOrders, snap.ProcessedOrders, snap.Outbound, now)
	return series, analytics.SummarizeTrend(series), nil
}

func (s *DashboardService) assemble(snap *snapshot.Snapshot, timeframe domain.Timeframe, now time.Time) *domain.DashboardSnapshot {
	series := s.analyzer.BuildTimeframeSeries(timeframe, snap.PendingOrders, snap.ProcessedOrders, snap.Outbound, now)

	return &domain.DashboardSnapshot{
		StockRisk:     s.analyzer.AssessStockRisk(snap.Inventory),
		Concentration: s.analyzer.ClassifyValueConcentration(valuedItems(snap.Inventory)),
		Inactivity:    s.analyzer.DetectInactivity(snap.Inventory, now),
		Alerts:        s.analyzer.GenerateSLAAlerts(snap.Outbound, len(snap.PendingOrders), now),
		Trend:         series,
		TrendStats:    analytics.SummarizeTrend(series),
		GeneratedAt:   now,
	}
}

func valuedItems(items []domain.InventoryItem) []domain.ValuedItem {
	valued := make([]domain.ValuedItem, 0, len(items))
	for _, item := range items {
		valued = append(valued, domain.ValuedItem{
			UnitPrice: item.UnitPrice,
			Quantity:  item.OnHandQty,
		})
	}
	return valued
}
