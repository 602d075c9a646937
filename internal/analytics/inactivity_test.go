package analytics

import (
	"testing"
	"time"

	"opsdash/internal/domain"
)

func TestDetectInactivity_WindowBoundary(t *testing.T) {
	analyzer := NewAnalyzer(DefaultThresholds())
	now := time.Date(2026, 8, 27, 12, 0, 0, 0, time.Local)

	stamp := func(daysAgo int) string {
		return now.Add(-time.Duration(daysAgo) * 24 * time.Hour).Format(time.RFC3339)
	}

	tests := []struct {
		name     string
		daysAgo  int
		inactive bool
	}{
		{"91 days ago is inactive", 91, true},
		{"exactly 90 days ago is inactive", 90, true},
		{"89 days ago is active", 89, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := analyzer.DetectInactivity([]domain.InventoryItem{
				{PartCode: "P-1", LastUpdatedAt: stamp(tt.daysAgo)},
			}, now)

			want := 0
			if tt.inactive {
				want = 1
			}
			if stats.InactiveCount != want {
				t.Errorf("expected inactive count %d, got %d", want, stats.InactiveCount)
			}
		})
	}
}

func TestDetectInactivity_UnparseableTimestampExcluded(t *testing.T) {
	analyzer := NewAnalyzer(DefaultThresholds())
	now := time.Date(2026, 8, 27, 12, 0, 0, 0, time.Local)

	items := []domain.InventoryItem{
		{PartCode: "A", LastUpdatedAt: "not a date"},
		{PartCode: "B", LastUpdatedAt: ""},
		{PartCode: "C", LastUpdatedAt: now.Add(-120 * 24 * time.Hour).Format(time.RFC3339)},
	}

	stats := analyzer.DetectInactivity(items, now)
	if stats.Total != 3 {
		t.Fatalf("expected total 3, got %d", stats.Total)
	}
	if stats.InactiveCount != 1 {
		t.Errorf("unparseable timestamps must not count as inactive, got %d", stats.InactiveCount)
	}

	want := 100.0 / 3.0
	if diff := stats.InactivePercentage - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("expected unrounded percentage %v, got %v", want, stats.InactivePercentage)
	}
}

func TestDetectInactivity_Empty(t *testing.T) {
	analyzer := NewAnalyzer(DefaultThresholds())

	stats := analyzer.DetectInactivity(nil, time.Now())
	if stats.Total != 0 || stats.InactiveCount != 0 || stats.InactivePercentage != 0 {
		t.Errorf("empty input must yield zeros, got %+v", stats)
	}
}

func TestDetectInactivity_DateOnlyTimestamps(t *testing.T) {
	analyzer := NewAnalyzer(DefaultThresholds())
	now := time.Date(2026, 8, 27, 0, 0, 0, 0, time.Local)

	stats := analyzer.DetectInactivity([]domain.InventoryItem{
		{PartCode: "A", LastUpdatedAt: "2026-01-01"},
		{PartCode: "B", LastUpdatedAt: "2026-08-26"},
	}, now)

	if stats.InactiveCount != 1 {
		t.Errorf("date-only timestamps must parse, got inactive count %d", stats.InactiveCount)
	}
}
