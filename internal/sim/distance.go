package sim

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"math"
	"slices"

	"github.com/udisondev/ttkbench/internal/model"
)

// Curve defaults.
const (
	DefaultMaxDistance = 100.0
	DefaultCutoff      = 35.0
	DefaultStep        = 1.0
)

// CurveOptions shapes a distance curve.
type CurveOptions struct {
	MaxDistance float64 `json:"maxDistance"`
	Cutoff      float64 `json:"cutoff"`
	Step        float64 `json:"step"`
}

// DefaultCurveOptions returns 0..100 m in 1 m steps, scored up to 35 m.
func DefaultCurveOptions() CurveOptions {
	return CurveOptions{MaxDistance: DefaultMaxDistance, Cutoff: DefaultCutoff, Step: DefaultStep}
}

// CurvePoint is the time-to-kill at one distance.
type CurvePoint struct {
	Distance   float64 `json:"distance"`
	TimeToKill float64 `json:"ttk"`
}

// Curve is one weapon's time-to-kill over distance. Score is the mean
// time-to-kill of the points within the cutoff.
type Curve struct {
	WeaponName string        `json:"weaponName"`
	Ammo       model.AmmoTag `json:"ammoTier"`
	Points     []CurvePoint  `json:"points"`
	Score      float64       `json:"score"`
}

// CurveSet is the output of Engine.Curves.
type CurveSet struct {
	Options  CurveOptions `json:"options"`
	Curves   []Curve      `json:"curves"`
	Excluded []Exclusion  `json:"excluded,omitempty"`
}

func (o CurveOptions) normalized() CurveOptions {
	d := DefaultCurveOptions()
	if o.MaxDistance <= 0 {
		o.MaxDistance = d.MaxDistance
	}
	if o.Step <= 0 {
		o.Step = d.Step
	}
	if o.Cutoff <= 0 {
		o.Cutoff = d.Cutoff
	}
	return o
}

// KeyDistances returns 0 plus every finite breakpoint of w up to max,
// ascending and without duplicates. Damage decay only changes at these.
func KeyDistances(w *model.ArmedWeapon, maxDistance float64) []float64 {
	keys := []float64{0}
	for _, r := range w.Ranges {
		if r.IsInfinite() {
			continue
		}
		if d := float64(r); d > 0 && d <= maxDistance {
			keys = append(keys, d)
		}
	}
	slices.Sort(keys)
	return slices.Compact(keys)
}

// Curves simulates every eligible weapon at its key distances and fills the
// steps between them with the extra flight time: TTK(d) = TTK(k) + (d-k)/v
// for the largest key k <= d. Curves are sorted ascending by score.
func (e *Engine) Curves(ctx context.Context, armed []model.ArmedWeapon, sels []model.Selection, req model.Request, opts CurveOptions) (CurveSet, error) {
	opts = opts.normalized()
	jobs, excluded := e.plan(armed, sels, &req)

	curves := make([]Curve, len(jobs))
	err := e.run(ctx, len(jobs), func(ctx context.Context, i int) error {
		c, err := e.curve(ctx, jobs[i], req, opts)
		if err != nil {
			return err
		}
		curves[i] = c
		return nil
	})
	if err != nil {
		return CurveSet{}, fmt.Errorf("computing distance curves: %w", err)
	}

	slices.SortStableFunc(curves, func(a, b Curve) int {
		return cmp.Compare(a.Score, b.Score)
	})
	slog.Info("distance curves complete", "weapons", len(curves), "excluded", len(excluded), "max_distance", opts.MaxDistance)
	return CurveSet{Options: opts, Curves: curves, Excluded: excluded}, nil
}

func (e *Engine) curve(ctx context.Context, j job, req model.Request, opts CurveOptions) (Curve, error) {
	keys := KeyDistances(j.weapon, opts.MaxDistance)
	base := make([]float64, len(keys))
	for i, k := range keys {
		r := req
		r.Distance = k
		s, err := e.aggregate(ctx, j, &r)
		if err != nil {
			return Curve{}, err
		}
		base[i] = s.AverageTimeToKill
	}

	steps := int(math.Floor(opts.MaxDistance/opts.Step + 1e-9))
	c := Curve{
		WeaponName: j.weapon.Name,
		Ammo:       j.tier.Tag,
		Points:     make([]CurvePoint, 0, steps+1),
	}
	var sum float64
	var scored int
	k := 0
	for n := 0; n <= steps; n++ {
		d := float64(n) * opts.Step
		for k+1 < len(keys) && keys[k+1] <= d {
			k++
		}
		ttk := base[k] + FlightTime(d-keys[k], j.weapon)
		c.Points = append(c.Points, CurvePoint{Distance: d, TimeToKill: ttk})
		if d <= opts.Cutoff {
			sum += ttk
			scored++
		}
	}
	if scored > 0 {
		c.Score = sum / float64(scored)
	}
	return c, nil
}
