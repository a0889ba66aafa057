// Package report renders rankings and distance curves as tables or JSON.
package report

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/udisondev/ttkbench/internal/model"
)

// TimeUnit selects how FormatTime renders seconds.
type TimeUnit string

const (
	UnitMillis  TimeUnit = "ms"
	UnitSeconds TimeUnit = "s"
	UnitMinutes TimeUnit = "min"
)

// ParseTimeUnit accepts "ms", "s" or "min"; empty means ms.
func ParseTimeUnit(s string) (TimeUnit, error) {
	switch TimeUnit(s) {
	case "", UnitMillis:
		return UnitMillis, nil
	case UnitSeconds, UnitMinutes:
		return TimeUnit(s), nil
	default:
		return "", fmt.Errorf("unknown time unit %q", s)
	}
}

// FormatTime renders seconds as whole milliseconds, or with three decimals
// for seconds and minutes. Unknown units fall back to milliseconds.
func FormatTime(seconds float64, unit TimeUnit) string {
	switch unit {
	case UnitSeconds:
		return strconv.FormatFloat(seconds, 'f', 3, 64) + "s"
	case UnitMinutes:
		return strconv.FormatFloat(seconds/60, 'f', 3, 64) + "min"
	default:
		return strconv.FormatFloat(math.Round(seconds*1000), 'f', 0, 64) + "ms"
	}
}

// FormatRanges joins rounded breakpoints, printing the sentinel as ∞.
func FormatRanges(ranges [4]model.Range) string {
	parts := make([]string, len(ranges))
	for i, r := range ranges {
		if r.IsInfinite() {
			parts[i] = "∞"
			continue
		}
		parts[i] = strconv.FormatFloat(math.Round(float64(r)), 'f', -1, 64)
	}
	return strings.Join(parts, ", ")
}

// FormatMultipliers renders head/chest/stomach/limbs rounded to 2 decimals.
func FormatMultipliers(m model.PartMultipliers) string {
	round := func(v float64) string {
		return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
	}
	return round(m.Head) + "/" + round(m.Chest) + "/" + round(m.Stomach) + "/" + round(m.Limbs)
}

// FormatRankChange renders a RankTracker delta: ↑n moved up, ↓n moved down.
func FormatRankChange(delta int) string {
	switch {
	case delta > 0:
		return "↑" + strconv.Itoa(delta)
	case delta < 0:
		return "↓" + strconv.Itoa(-delta)
	default:
		return "0"
	}
}

// FormatDelayChange renders a millisecond delta with an explicit sign.
func FormatDelayChange(ms int) string {
	if ms > 0 {
		return "+" + strconv.Itoa(ms)
	}
	return strconv.Itoa(ms)
}

// FormatPercentage renders value/total as a percentage; 0% when total is 0.
func FormatPercentage(value, total float64, decimals int) string {
	if total == 0 {
		return "0%"
	}
	return strconv.FormatFloat(value/total*100, 'f', decimals, 64) + "%"
}
