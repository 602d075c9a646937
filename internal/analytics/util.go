// internal/analytics/util.go
package analytics

import (
	"math"
	"strings"
	"time"
)

// fallbackPartName is shown when a record carries neither a part code
// nor a part name.
const fallbackPartName = "미지정 부품"

// safeNumber coerces non-finite values to 0 so malformed upstream data
// never propagates NaN/Inf into a metric.
func safeNumber(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// nonNegative sanitizes a quantity or price: non-finite and negative
// values both collapse to 0.
func nonNegative(v float64) float64 {
	return math.Max(0, safeNumber(v))
}

// sharePercent returns round(100 * part / total) clamped to [0, 100].
// A zero (or negative) denominator yields 0, never NaN.
func sharePercent(part, total float64) int {
	if total <= 0 {
		return 0
	}

	pct := int(math.Round(100 * part / total))
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// ratioPercent returns round(100 * current / safety) clamped at 0.
// Unlike sharePercent there is no upper clamp: warning-tier items
// legitimately sit above 100%.
func ratioPercent(current, safety float64) int {
	if safety <= 0 {
		return 0
	}

	pct := int(math.Round(100 * current / safety))
	if pct < 0 {
		return 0
	}
	return pct
}

var timestampFormats = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseTimestamp tries the timestamp formats the upstream services emit.
// The boolean reports success; callers decide the fallback policy.
func parseTimestamp(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}

	for _, format := range timestampFormats {
		if t, err := time.ParseInLocation(format, value, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// startOfDay truncates a timestamp to local midnight.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// resolvePartCode resolves the display code: code, then name, then "-".
func resolvePartCode(code, name string) string {
	if v := strings.TrimSpace(code); v != "" {
		return v
	}
	if v := strings.TrimSpace(name); v != "" {
		return v
	}
	return "-"
}

// resolvePartName resolves the display name: name, then code, then the
// unassigned-part placeholder. Never returns an empty string.
func resolvePartName(code, name string) string {
	if v := strings.TrimSpace(name); v != "" {
		return v
	}
	if v := strings.TrimSpace(code); v != "" {
		return v
	}
	return fallbackPartName
}
