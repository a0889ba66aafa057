package combat

import "github.com/udisondev/ttkbench/internal/model"

// fixedSource replays vals in order and then repeats the last one.
type fixedSource struct {
	vals []float64
	i    int
}

func (s *fixedSource) Float64() float64 {
	v := s.vals[min(s.i, len(s.vals)-1)]
	s.i++
	return v
}

// countingSource wraps a source and counts draws.
type countingSource struct {
	src   Float64Source
	draws int
}

func (s *countingSource) Float64() float64 {
	s.draws++
	return s.src.Float64()
}

func testWeapon() *model.ArmedWeapon {
	return &model.ArmedWeapon{
		Name:        "TestRifle",
		Ranges:      [4]model.Range{10, 20, 30, model.Infinite},
		Decays:      [5]float64{1.0, 0.8, 0.6, 0.4, 0.2},
		Velocity:    500,
		Flesh:       36,
		Armor:       36,
		ROF:         600,
		Multipliers: model.PartMultipliers{Head: 2, Chest: 1, Stomach: 0.9, Limbs: 0.4},
		AllowedAmmo: []model.AmmoTag{"4", "RIP", "Double"},
	}
}

func testTier(base float64, armorMult, pen float64) *model.AmmoTier {
	t := &model.AmmoTier{Tag: "T", Base: base}
	for i := range t.Armor {
		t.Armor[i] = model.ArmorCoefficient{ArmorMultiplier: armorMult, Pen: pen}
	}
	return t
}

func onlyPart(part model.BodyPart) model.HitProbability {
	var p model.HitProbability
	switch part {
	case model.PartHead:
		p.Head = 1
	case model.PartChest:
		p.Chest = 1
	case model.PartStomach:
		p.Stomach = 1
	default:
		p.Limbs = 1
	}
	return p
}
