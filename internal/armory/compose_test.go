package armory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/ttkbench/internal/model"
)

func ptr(v float64) *float64 { return &v }

var testMuzzles = []model.Muzzle{
	{Name: "None"},
	{Name: "Deadsilence", RangeBonus: 0.24},
	{Name: "Advanced", RangeBonus: 0.18},
}

func scaledEntry() model.WeaponEntry {
	return model.WeaponEntry{
		Name:        "SR-3M",
		Category:    model.CategorySMG,
		Ranges:      [4]model.Range{15, 31, model.Infinite, model.Infinite},
		Decays:      [5]float64{1, 0.75, 0.65, 0.65, 0.65},
		Velocity:    330,
		Flesh:       36,
		Armor:       48,
		ROF:         747,
		Multipliers: model.PartMultipliers{Head: 1.9, Chest: 1, Stomach: 0.9, Limbs: 0.4},
		AllowedAmmo: []model.AmmoTag{"3", "4", "5"},
		Barrels: []model.Barrel{
			{Name: "Tactical", RangeMultiplier: 1.18},
			{Name: "Marksman", RangeMultiplier: 1.36, ROFMultiplier: 0.87, DamageBonus: 2, ArmorDamageBonus: 3},
		},
	}
}

func flatEntry() model.WeaponEntry {
	return model.WeaponEntry{
		Name:           "M16A4",
		Ranges:         [4]model.Range{45, 75, model.Infinite, model.Infinite},
		Decays:         [5]float64{1, 0.85, 0.7, 0.7, 0.7},
		Velocity:       600,
		Flesh:          33,
		Armor:          36,
		ROF:            620,
		TriggerDelayMs: 40,
		Multipliers:    model.PartMultipliers{Head: 1.9, Chest: 1, Stomach: 0.9, Limbs: 0.4},
		AllowedAmmo:    []model.AmmoTag{"4"},
		Barrels: []model.Barrel{
			{Name: "Gas Block", RangeAdd: 5, VelocityAdd: 30, TriggerDelayDeltaMs: -20, PartBonus: model.PartMultipliers{Head: 0.1, Limbs: 0.05}},
			{Name: "Cutdown", RangeMultiplier: 1.0, TriggerDelayDeltaMs: -100},
		},
		Muzzles: []model.Muzzle{{Name: "None"}, {Name: "Compensator", RangeBonus: 0.1}},
		Burst:   &model.BurstFire{Count: 3, InternalROF: 900, GapSeconds: 0.2},
	}
}

func TestCompose_NoAttachments(t *testing.T) {
	e := scaledEntry()
	armed := Compose(e, testMuzzles, model.Selection{}, model.Flags{})

	assert.Equal(t, e.Ranges, armed.Ranges)
	assert.Equal(t, 330.0, armed.Velocity)
	assert.Equal(t, 747.0, armed.ROF)
	assert.Equal(t, e.Multipliers, armed.Multipliers)
	assert.Empty(t, armed.Barrel)
	assert.Empty(t, armed.Muzzle)
	assert.Nil(t, armed.HitRate)
}

func TestCompose_BarrelAndMuzzleMultiply(t *testing.T) {
	e := scaledEntry()
	armed := Compose(e, testMuzzles, model.Selection{BarrelIndex: 1, MuzzleIndex: 1}, model.Flags{})

	// combined multiplier 1.18 + 0.24
	assert.InDelta(t, 15*1.42, float64(armed.Ranges[0]), 1e-9)
	assert.InDelta(t, 31*1.42, float64(armed.Ranges[1]), 1e-9)
	assert.True(t, armed.Ranges[2].IsInfinite())
	assert.True(t, armed.Ranges[3].IsInfinite())
	assert.InDelta(t, 330*1.42, armed.Velocity, 1e-9)
	assert.Equal(t, "Tactical", armed.Barrel)
	assert.Equal(t, "Deadsilence", armed.Muzzle)
}

func TestCompose_BarrelStatBonuses(t *testing.T) {
	armed := Compose(scaledEntry(), testMuzzles, model.Selection{BarrelIndex: 2}, model.Flags{})

	assert.InDelta(t, 747*0.87, armed.ROF, 1e-9)
	assert.Equal(t, 38.0, armed.Flesh)
	assert.Equal(t, 51.0, armed.Armor)
}

func TestCompose_Precision(t *testing.T) {
	tests := []struct {
		name      string
		precision float64
		enabled   bool
		want      float64
	}{
		{"disabled ignores precision", 0.09, false, 330},
		{"positive", 0.09, true, 330 * 1.09},
		{"negative", -0.05, true, 330 * 0.95},
		{"clamped high", 0.5, true, 330 * 1.09},
		{"clamped low", -0.5, true, 330 * 0.91},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			armed := Compose(scaledEntry(), testMuzzles, model.Selection{Precision: tt.precision}, model.Flags{VelocityBonus: tt.enabled})
			assert.InDelta(t, tt.want, armed.Velocity, 1e-9)
		})
	}
}

func TestCompose_PrecisionAppliesWithoutBarrel(t *testing.T) {
	armed := Compose(scaledEntry(), testMuzzles, model.Selection{MuzzleIndex: 2, Precision: 0.05}, model.Flags{VelocityBonus: true})
	assert.InDelta(t, 330*1.18*1.05, armed.Velocity, 1e-9)
}

func TestCompose_FlatRangeBarrel(t *testing.T) {
	e := flatEntry()
	armed := Compose(e, e.Muzzles, model.Selection{BarrelIndex: 1, MuzzleIndex: 1}, model.Flags{})

	// multiplier = 1.0 (flat barrel) + 0.1 muzzle, +5 after scaling, rounded
	assert.Equal(t, model.Range(55), armed.Ranges[0])
	assert.Equal(t, model.Range(88), armed.Ranges[1])
	assert.True(t, armed.Ranges[2].IsInfinite())
	assert.Equal(t, 690.0, armed.Velocity)
	assert.Equal(t, 20.0, armed.TriggerDelayMs)
	assert.InDelta(t, 2.0, armed.Multipliers.Head, 1e-12)
	assert.InDelta(t, 0.45, armed.Multipliers.Limbs, 1e-12)
	assert.Equal(t, 1.0, armed.Multipliers.Chest)
}

func TestCompose_FlatVelocityAfterPrecision(t *testing.T) {
	e := flatEntry()
	armed := Compose(e, e.Muzzles, model.Selection{BarrelIndex: 1, Precision: 0.09}, model.Flags{VelocityBonus: true})

	// 600 * 1.09 = 654, +30
	assert.Equal(t, 684.0, armed.Velocity)
}

func TestCompose_TriggerDelayFloor(t *testing.T) {
	e := flatEntry()
	armed := Compose(e, e.Muzzles, model.Selection{BarrelIndex: 2}, model.Flags{})
	assert.Equal(t, 0.0, armed.TriggerDelayMs)
}

func TestCompose_BurstROFScaled(t *testing.T) {
	e := flatEntry()
	e.Barrels[1].ROFMultiplier = 0.5
	armed := Compose(e, e.Muzzles, model.Selection{BarrelIndex: 2}, model.Flags{})

	require.NotNil(t, armed.Burst)
	assert.Equal(t, 450.0, armed.Burst.InternalROF)
	assert.Equal(t, 310.0, armed.ROF)
	assert.Equal(t, 900.0, e.Burst.InternalROF, "catalog burst untouched")
}

func TestCompose_HitRate(t *testing.T) {
	e := scaledEntry()
	e.HitRate = ptr(0.7)

	armed := Compose(e, testMuzzles, model.Selection{}, model.Flags{})
	require.NotNil(t, armed.HitRate)
	assert.Equal(t, 0.7, *armed.HitRate)

	armed = Compose(e, testMuzzles, model.Selection{HitRate: ptr(0.95)}, model.Flags{})
	require.NotNil(t, armed.HitRate)
	assert.Equal(t, 0.95, *armed.HitRate)
	assert.Equal(t, 0.7, *e.HitRate)
}

func TestCompose_DoesNotMutateEntry(t *testing.T) {
	e := flatEntry()
	before := e.Clone()

	_ = Compose(e, e.Muzzles, model.Selection{BarrelIndex: 1, MuzzleIndex: 1, Precision: 0.09}, model.Flags{VelocityBonus: true})

	assert.Equal(t, before, e)
}

func TestCompose_OutOfRangeIndices(t *testing.T) {
	e := scaledEntry()
	armed := Compose(e, testMuzzles, model.Selection{BarrelIndex: 9, MuzzleIndex: 9}, model.Flags{})
	assert.Equal(t, e.Ranges, armed.Ranges)
	assert.Empty(t, armed.Barrel)
	assert.Empty(t, armed.Muzzle)
}

func TestNormalizeSelection(t *testing.T) {
	sel := NormalizeSelection(model.Selection{BarrelIndex: -1, MuzzleIndex: -1, HitRate: ptr(0.5)})
	assert.Equal(t, 0, sel.BarrelIndex)
	assert.Equal(t, 0, sel.MuzzleIndex)
	assert.Equal(t, 0.5, *sel.HitRate)
}
