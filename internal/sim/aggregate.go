package sim

import (
	"context"
	"fmt"

	"github.com/udisondev/ttkbench/internal/combat"
	"github.com/udisondev/ttkbench/internal/model"
)

const (
	// DefaultTrials is the trial count per weapon.
	DefaultTrials = 20000
	// DefaultCheckEvery is how many trials run between cancellation checks.
	DefaultCheckEvery = 1024
)

// CalculateAverageStats runs trials independent trials and averages them.
// ctx is checked every checkEvery trials; trials and checkEvery fall back to
// their defaults when not positive.
func CalculateAverageStats(ctx context.Context, src combat.Float64Source, w *model.ArmedWeapon, req *model.Request, tier *model.AmmoTier, strat combat.Strategy, trials, checkEvery int) (model.AggregateStat, error) {
	if trials <= 0 {
		trials = DefaultTrials
	}
	if checkEvery <= 0 {
		checkEvery = DefaultCheckEvery
	}

	var sumTime, sumShots, sumMisses, sumBurst float64
	for i := range trials {
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return model.AggregateStat{}, fmt.Errorf("simulating %s: %w", w.Name, err)
			}
		}
		r := SimulateOneTrial(src, w, req, tier, strat)
		sumTime += r.TimeSeconds
		sumShots += float64(r.Shots)
		sumMisses += float64(r.Misses())
		sumBurst += r.BurstIntervalSeconds
	}

	n := float64(trials)
	stat := model.AggregateStat{
		WeaponName:           w.Name,
		Ammo:                 tier.Tag,
		Trials:               trials,
		AverageTrialTime:     sumTime / n,
		AverageShots:         sumShots / n,
		AverageMisses:        sumMisses / n,
		AverageBurstInterval: sumBurst / n,
		Weapon:               *w,
	}
	stat.Breakdown = breakdown(w, req, &stat)
	stat.AverageTimeToKill = stat.AverageTrialTime + stat.Breakdown.TriggerDelay
	return stat, nil
}

func breakdown(w *model.ArmedWeapon, req *model.Request, s *model.AggregateStat) model.Breakdown {
	interval := ShotInterval(w)
	b := model.Breakdown{
		NoMissFire: interval * max(0, s.AverageHits()-1),
		Empty:      interval * s.AverageMisses,
		Flight:     FlightTime(req.Distance, w),
		Burst:      s.AverageBurstInterval,
	}
	if req.TriggerDelay {
		b.TriggerDelay = w.TriggerDelaySeconds()
	}
	return b
}
