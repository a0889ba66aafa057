package sim

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/ttkbench/internal/combat"
	"github.com/udisondev/ttkbench/internal/model"
	"github.com/udisondev/ttkbench/internal/rng"
)

// AmmoTable resolves ammo tiers. *catalog.Catalog implements it.
type AmmoTable interface {
	Ammo(tag model.AmmoTag) (model.AmmoTier, bool)
}

// Options tunes a batch. Seed is used as given, including 0.
type Options struct {
	Trials     int
	Seed       uint32
	Workers    int
	CheckEvery int
	// Memo, when set, serves repeated aggregations from cache.
	Memo *Memo
}

// DefaultOptions returns the defaults: 20000 trials, seed 12345, one worker.
func DefaultOptions() Options {
	return Options{
		Trials:     DefaultTrials,
		Seed:       rng.DefaultSeed,
		Workers:    1,
		CheckEvery: DefaultCheckEvery,
	}
}

// Exclusion reasons.
const (
	ReasonAmmoNotAllowed = "ammo not allowed"
	ReasonUnknownAmmo    = "unknown ammo tier"
)

// Exclusion records a weapon left out of a batch.
type Exclusion struct {
	WeaponName string        `json:"weaponName"`
	Ammo       model.AmmoTag `json:"ammoTier"`
	Reason     string        `json:"reason"`
}

// Ranking is the output of RankWeapons.
type Ranking struct {
	Stats    []model.AggregateStat `json:"stats"`
	Excluded []Exclusion           `json:"excluded,omitempty"`
}

// Engine runs batches over a roster of armed weapons.
//
// Weapon i of a batch always draws from its own stream derived from
// (Seed, i), so results do not depend on Workers or scheduling.
type Engine struct {
	ammo AmmoTable
	opts Options
}

// NewEngine creates an Engine. Zero option fields take their defaults.
func NewEngine(ammo AmmoTable, opts Options) *Engine {
	d := DefaultOptions()
	if opts.Trials <= 0 {
		opts.Trials = d.Trials
	}
	if opts.Workers <= 0 {
		opts.Workers = d.Workers
	}
	if opts.CheckEvery <= 0 {
		opts.CheckEvery = d.CheckEvery
	}
	return &Engine{ammo: ammo, opts: opts}
}

// Options returns the effective options.
func (e *Engine) Options() Options {
	return e.opts
}

// ResolveAmmo picks the tier a weapon fires: the selection's override, else
// the global tier when the weapon allows it. ok is false when neither applies.
func ResolveAmmo(w *model.ArmedWeapon, sel model.Selection, global model.AmmoTag) (model.AmmoTag, bool) {
	if sel.Ammo != "" {
		return sel.Ammo, true
	}
	if w.AllowsAmmo(global) {
		return global, true
	}
	return "", false
}

// job is one weapon ready to simulate.
type job struct {
	index  int
	weapon *model.ArmedWeapon
	tier   model.AmmoTier
	strat  combat.Strategy
}

// plan resolves ammo and strategy for every weapon; the rest are excluded.
func (e *Engine) plan(armed []model.ArmedWeapon, sels []model.Selection, req *model.Request) ([]job, []Exclusion) {
	jobs := make([]job, 0, len(armed))
	var excluded []Exclusion
	for i := range armed {
		w := &armed[i]
		var sel model.Selection
		if i < len(sels) {
			sel = sels[i]
		}
		if sel.HitRate != nil {
			wc := *w
			hr := *sel.HitRate
			wc.HitRate = &hr
			w = &wc
		}
		tag, ok := ResolveAmmo(w, sel, req.Ammo)
		if !ok {
			excluded = append(excluded, Exclusion{WeaponName: w.Name, Ammo: req.Ammo, Reason: ReasonAmmoNotAllowed})
			slog.Debug("weapon excluded", "weapon", w.Name, "ammo", req.Ammo, "reason", ReasonAmmoNotAllowed)
			continue
		}
		tier, ok := e.ammo.Ammo(tag)
		if !ok {
			excluded = append(excluded, Exclusion{WeaponName: w.Name, Ammo: tag, Reason: ReasonUnknownAmmo})
			slog.Debug("weapon excluded", "weapon", w.Name, "ammo", tag, "reason", ReasonUnknownAmmo)
			continue
		}
		jobs = append(jobs, job{index: i, weapon: w, tier: tier, strat: combat.ForAmmo(tag)})
	}
	return jobs, excluded
}

// aggregate runs one job at req, consulting the memo when configured.
func (e *Engine) aggregate(ctx context.Context, j job, req *model.Request) (model.AggregateStat, error) {
	src := rng.New(e.opts.Seed).Derive(j.index)

	var key string
	if e.opts.Memo != nil {
		k, err := MemoKey(j.weapon, req, j.tier.Tag, e.opts.Trials, src.Seed())
		if err != nil {
			return model.AggregateStat{}, err
		}
		if s, ok := e.opts.Memo.Get(k); ok {
			return s, nil
		}
		key = k
	}

	s, err := CalculateAverageStats(ctx, src, j.weapon, req, &j.tier, j.strat, e.opts.Trials, e.opts.CheckEvery)
	if err != nil {
		return model.AggregateStat{}, err
	}
	if key != "" {
		e.opts.Memo.Put(key, s)
	}
	return s, nil
}

// run calls fn for every job index, in parallel when Workers > 1.
func (e *Engine) run(ctx context.Context, n int, fn func(ctx context.Context, i int) error) error {
	if e.opts.Workers <= 1 || n <= 1 {
		for i := range n {
			if err := fn(ctx, i); err != nil {
				return err
			}
		}
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.opts.Workers)
	for i := range n {
		g.Go(func() error {
			return fn(gctx, i)
		})
	}
	return g.Wait()
}

// Rank simulates every eligible weapon and sorts ascending by average
// time-to-kill. sels[i] belongs to armed[i]; missing selections mean no
// override. Weapons whose ammo cannot be resolved are listed in Excluded.
func (e *Engine) Rank(ctx context.Context, armed []model.ArmedWeapon, sels []model.Selection, req model.Request) (Ranking, error) {
	start := time.Now()
	jobs, excluded := e.plan(armed, sels, &req)

	stats := make([]model.AggregateStat, len(jobs))
	err := e.run(ctx, len(jobs), func(ctx context.Context, i int) error {
		s, err := e.aggregate(ctx, jobs[i], &req)
		if err != nil {
			return err
		}
		stats[i] = s
		return nil
	})
	if err != nil {
		return Ranking{}, fmt.Errorf("ranking weapons: %w", err)
	}

	slices.SortStableFunc(stats, func(a, b model.AggregateStat) int {
		return cmp.Compare(a.AverageTimeToKill, b.AverageTimeToKill)
	})

	slog.Info("ranking complete",
		"weapons", len(stats),
		"excluded", len(excluded),
		"trials", e.opts.Trials,
		"workers", e.opts.Workers,
		"duration", time.Since(start))
	return Ranking{Stats: stats, Excluded: excluded}, nil
}

// RankWeapons is a one-shot Engine.Rank.
func RankWeapons(ctx context.Context, ammo AmmoTable, armed []model.ArmedWeapon, sels []model.Selection, req model.Request, opts Options) (Ranking, error) {
	return NewEngine(ammo, opts).Rank(ctx, armed, sels, req)
}
