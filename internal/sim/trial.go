// Package sim runs the Monte Carlo time-to-kill engine: single trials,
// per-weapon aggregation, roster ranking and distance curves.
package sim

import (
	"github.com/udisondev/ttkbench/internal/combat"
	"github.com/udisondev/ttkbench/internal/model"
)

// SimulateOneTrial fires at a fresh target until its health reaches zero.
//
// Each shot draws once from src; a draw above the effective hit rate is a
// miss. Burst weapons add one inter-burst gap whenever a shot opens a new
// burst group, and fire at their internal rof inside a group.
//
// The loop terminates only if the hit rate is positive and every hit deals
// positive damage. Callers validate the request first.
func SimulateOneTrial(src combat.Float64Source, w *model.ArmedWeapon, req *model.Request, tier *model.AmmoTier, strat combat.Strategy) model.TrialResult {
	in := combat.HitInput{
		Weapon:         w,
		Request:        req,
		Ammo:           tier,
		Decay:          combat.Decay(req.Distance, w),
		HitProbability: req.HitProbability,
	}
	health := req.TargetHealth()
	armor := req.InitialArmor()
	hitRate := w.EffectiveHitRate(req.HitRate)
	burst := w.IsBurst()

	var shots, hits, transitions int
	for health > 0 {
		shots++
		if burst && opensBurst(shots, w.Burst.Count) {
			transitions++
		}
		if src.Float64() > hitRate {
			continue
		}
		hits++
		out := strat.ComputeHit(src, &in, armor)
		health -= out.Damage
		armor = out.Armor
	}

	var burstTime float64
	if burst {
		burstTime = float64(transitions) * w.Burst.GapSeconds
	}
	firing := ShotInterval(w) * float64(shots-1-transitions)
	return model.TrialResult{
		TimeSeconds:          FlightTime(req.Distance, w) + firing + burstTime,
		Shots:                shots,
		Hits:                 hits,
		BurstIntervalSeconds: burstTime,
	}
}

// opensBurst reports whether the shot-th shot starts a burst group other
// than the first.
func opensBurst(shot, count int) bool {
	return shot > count && (shot-1)%count == 0
}

// ShotInterval is the time between two shots: 60/internal rof inside a burst,
// 60/rof otherwise.
func ShotInterval(w *model.ArmedWeapon) float64 {
	if w.IsBurst() {
		return 60 / w.Burst.InternalROF
	}
	return 60 / w.ROF
}

// FlightTime is the bullet travel time to distance.
func FlightTime(distance float64, w *model.ArmedWeapon) float64 {
	return distance / w.Velocity
}
