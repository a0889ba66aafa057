package report

import (
	"fmt"
	"io"
	"math"

	"github.com/rodaine/table"

	"github.com/udisondev/ttkbench/internal/sim"
)

// TableOptions controls WriteTable.
type TableOptions struct {
	Unit TimeUnit
	// Changes, when set, adds rank and time-to-kill change columns
	// (see RankTracker).
	Changes []Change
	// Breakdown adds the time-to-kill components.
	Breakdown bool
}

// WriteTable prints one row per ranked weapon.
func WriteTable(w io.Writer, r sim.Ranking, opts TableOptions) {
	if len(r.Stats) == 0 {
		fmt.Fprintln(w, "No weapons ranked.")
		return
	}

	best := r.Stats[0].AverageTimeToKill
	for _, s := range r.Stats[1:] {
		best = min(best, s.AverageTimeToKill)
	}

	cols := []any{"#", "Weapon", "Ammo", "TTK", "vs best", "Shots", "Misses", "Burst", "Ranges", "Velocity", "ROF", "Mult"}
	if opts.Breakdown {
		cols = append(cols, "Fire", "Empty", "Flight", "Trigger")
	}
	if opts.Changes != nil {
		cols = append(cols, "Δ", "ΔTTK(ms)")
	}

	t := table.New(cols...).WithWriter(w)
	for i, s := range r.Stats {
		row := []any{
			i + 1,
			s.WeaponName,
			string(s.Ammo),
			FormatTime(s.AverageTimeToKill, opts.Unit),
			FormatPercentage(s.AverageTimeToKill, best, 0),
			fmt.Sprintf("%.2f", s.AverageShots),
			fmt.Sprintf("%.2f", s.AverageMisses),
			FormatTime(s.AverageBurstInterval, opts.Unit),
			FormatRanges(s.Weapon.Ranges),
			math.Round(s.Weapon.Velocity),
			math.Round(s.Weapon.ROF),
			FormatMultipliers(s.Weapon.Multipliers),
		}
		if opts.Breakdown {
			b := s.Breakdown
			row = append(row,
				FormatTime(b.NoMissFire, opts.Unit),
				FormatTime(b.Empty, opts.Unit),
				FormatTime(b.Flight, opts.Unit),
				FormatTime(b.TriggerDelay, opts.Unit))
		}
		if opts.Changes != nil {
			var c Change
			if i < len(opts.Changes) {
				c = opts.Changes[i]
			}
			row = append(row, FormatRankChange(c.Rank), FormatDelayChange(c.DelayMs))
		}
		t.AddRow(row...)
	}
	t.Print()
}

// CurveColumns are the distances WriteCurveTable samples by default.
var CurveColumns = []float64{0, 10, 20, 30, 40, 50, 75, 100}

// WriteCurveTable prints each curve's score and its time-to-kill at the
// given distances (CurveColumns when nil). Distances missing from a curve
// print as "-".
func WriteCurveTable(w io.Writer, set sim.CurveSet, distances []float64, unit TimeUnit) {
	if len(set.Curves) == 0 {
		fmt.Fprintln(w, "No weapons ranked.")
		return
	}
	if distances == nil {
		distances = CurveColumns
	}

	cols := []any{"#", "Weapon", "Ammo", fmt.Sprintf("Score(≤%gm)", set.Options.Cutoff)}
	for _, d := range distances {
		cols = append(cols, fmt.Sprintf("%gm", d))
	}

	t := table.New(cols...).WithWriter(w)
	for i, c := range set.Curves {
		byDistance := make(map[float64]float64, len(c.Points))
		for _, p := range c.Points {
			byDistance[p.Distance] = p.TimeToKill
		}
		row := []any{i + 1, c.WeaponName, string(c.Ammo), FormatTime(c.Score, unit)}
		for _, d := range distances {
			if v, ok := byDistance[d]; ok {
				row = append(row, FormatTime(v, unit))
			} else {
				row = append(row, "-")
			}
		}
		t.AddRow(row...)
	}
	t.Print()
}
