package sim

import (
	"github.com/udisondev/ttkbench/internal/model"
)

// seqSource replays draws, repeating the last one when exhausted.
type seqSource struct {
	draws []float64
	i     int
}

func (s *seqSource) Float64() float64 {
	if s.i >= len(s.draws) {
		return s.draws[len(s.draws)-1]
	}
	v := s.draws[s.i]
	s.i++
	return v
}

type ammoTable map[model.AmmoTag]model.AmmoTier

func (t ammoTable) Ammo(tag model.AmmoTag) (model.AmmoTier, bool) {
	tier, ok := t[tag]
	return tier, ok
}

func flatTier(tag model.AmmoTag, base, mult, pen float64) model.AmmoTier {
	t := model.AmmoTier{Tag: tag, Base: base}
	for i := range t.Armor {
		t.Armor[i] = model.ArmorCoefficient{ArmorMultiplier: mult, Pen: pen}
	}
	return t
}

func testAmmo() ammoTable {
	return ammoTable{
		"4":      flatTier("4", 1, 1, 0.6),
		"5":      flatTier("5", 1.1, 1.2, 0.7),
		"RIP":    flatTier("RIP", 1.2, 1, 1),
		"Double": flatTier("Double", 1, 1, 0.5),
	}
}

// rifle: 600 rpm (0.1 s interval), 500 m/s, 40 flesh, limbs 0.5.
func rifle(name string) model.ArmedWeapon {
	return model.ArmedWeapon{
		Name:        name,
		Category:    model.CategoryRifle,
		Ranges:      [4]model.Range{20, 40, model.Infinite, model.Infinite},
		Decays:      [5]float64{1, 0.8, 0.6, 0.6, 0.6},
		Velocity:    500,
		Flesh:       40,
		Armor:       40,
		ROF:         600,
		Multipliers: model.PartMultipliers{Head: 2, Chest: 1, Stomach: 0.9, Limbs: 0.5},
		AllowedAmmo: []model.AmmoTag{"4", "RIP"},
	}
}

func request() model.Request {
	return model.Request{
		Ammo:           "4",
		ArmorLevel:     4,
		ArmorValue:     80,
		HelmetLevel:    4,
		HelmetValue:    35,
		Distance:       30,
		HitProbability: model.HitProbability{Head: 0.18, Chest: 0.30, Stomach: 0.22, Limbs: 0.30},
		HitRate:        0.85,
		Flags:          model.Flags{TriggerDelay: true, VelocityBonus: true},
	}
}

func rankedStat(name string) model.AggregateStat {
	return model.AggregateStat{WeaponName: name, Trials: 1}
}
