package combat

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/ttkbench/internal/model"
	"github.com/udisondev/ttkbench/internal/rng"
)

func newInput(w *model.ArmedWeapon, tier *model.AmmoTier, prob model.HitProbability, decay float64) *HitInput {
	return &HitInput{
		Weapon:         w,
		Request:        &model.Request{ArmorLevel: 4, HelmetLevel: 3, HitProbability: prob},
		Ammo:           tier,
		Decay:          decay,
		HitProbability: prob,
	}
}

func TestKindFor(t *testing.T) {
	tests := []struct {
		tag  model.AmmoTag
		want Kind
	}{
		{"RIP", KindFragmenting},
		{"RIP45", KindFragmenting},
		{"rip", KindFragmenting},
		{"SuperRip9", KindFragmenting},
		{"Double", KindFixedDamage},
		{"double", KindStandard},
		{"DoubleTap", KindStandard},
		{"4", KindStandard},
		{"AP", KindStandard},
		{"", KindStandard},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, KindFor(tt.tag), "tag %q", tt.tag)
		assert.Equal(t, tt.want, ForAmmo(tt.tag).Kind(), "tag %q", tt.tag)
	}
}

func TestStandard_LimbsBypassArmor(t *testing.T) {
	w := testWeapon()
	in := newInput(w, testTier(1.0, 1, 0), onlyPart(model.PartLimbs), 1)
	armor := model.ArmorState{Armor: 80, Helmet: 35}

	out := Standard{}.ComputeHit(&fixedSource{vals: []float64{0.5}}, in, armor)

	assert.InDelta(t, 36*0.4, out.Damage, 1e-12)
	assert.Equal(t, armor, out.Armor)
}

func TestStandard_ChestUsesBodyArmor(t *testing.T) {
	w := testWeapon()
	in := newInput(w, testTier(1.0, 0.5, 0.5), onlyPart(model.PartChest), 1)
	armor := model.ArmorState{Armor: 80, Helmet: 35}

	out := Standard{}.ComputeHit(&fixedSource{vals: []float64{0.5}}, in, armor)

	// pure 36, pen 18, armor damage 36*0.5 = 18
	assert.Equal(t, 18.0, out.Damage)
	assert.Equal(t, model.ArmorState{Armor: 62, Helmet: 35}, out.Armor)
	assert.Equal(t, model.ArmorState{Armor: 80, Helmet: 35}, armor, "input state untouched")
}

func TestStandard_HeadUsesHelmetLevel(t *testing.T) {
	w := testWeapon()
	tier := testTier(1.0, 1, 1)
	tier.Armor[2] = model.ArmorCoefficient{ArmorMultiplier: 0.5, Pen: 0.25} // level 3 = helmet
	in := newInput(w, tier, onlyPart(model.PartHead), 1)

	out := Standard{}.ComputeHit(&fixedSource{vals: []float64{0.1}}, in, model.ArmorState{Armor: 80, Helmet: 35})

	// pure 72, pen 18, helmet damage 18 < 35
	assert.Equal(t, 18.0, out.Damage)
	assert.Equal(t, 17.0, out.Armor.Helmet)
	assert.Equal(t, 80.0, out.Armor.Armor)
}

func TestStandard_BrokenArmorNoNaN(t *testing.T) {
	w := testWeapon()
	w.Armor = 0
	in := newInput(w, testTier(1.0, 1, 0), onlyPart(model.PartStomach), 1)

	out := Standard{}.ComputeHit(&fixedSource{vals: []float64{0.5}}, in, model.ArmorState{})

	require.False(t, math.IsNaN(out.Damage))
	assert.InDelta(t, 36*0.9, out.Damage, 1e-12)
}

func TestFragmenting_AlwaysLimbs(t *testing.T) {
	w := testWeapon()
	w.Multipliers.Limbs = 0.4
	in := newInput(w, testTier(1.0, 0.2, 0), onlyPart(model.PartHead), 1.0)

	src := &countingSource{src: rng.NewDefault()}
	for _, armor := range []model.ArmorState{{Armor: 0, Helmet: 0}, {Armor: 80, Helmet: 35}, {Armor: 200, Helmet: 100}} {
		out := Fragmenting{}.ComputeHit(src, in, armor)
		assert.Equal(t, 14.4, out.Damage)
		assert.Equal(t, armor, out.Armor)
	}
	assert.Zero(t, src.draws, "fragmenting hits draw no hit part")
}

func TestFragmenting_UsesTierBase(t *testing.T) {
	w := testWeapon()
	in := newInput(w, testTier(1.4, 0.2, 0), onlyPart(model.PartChest), 0.8)

	out := Fragmenting{}.ComputeHit(nil, in, model.ArmorState{Armor: 50})

	assert.InDelta(t, 36*1.4*0.4*0.8, out.Damage, 1e-12)
}

func TestFixedDamage_BypassOnBrokenArmor(t *testing.T) {
	w := testWeapon()
	w.Multipliers.Chest = 1.0
	in := newInput(w, testTier(1.0, 1, 0.5), onlyPart(model.PartChest), 1.0)

	out := NewFixedDamage().ComputeHit(&fixedSource{vals: []float64{0.5}}, in, model.ArmorState{Armor: 0, Helmet: 20})

	require.False(t, math.IsNaN(out.Damage))
	assert.Equal(t, 74.0, out.Damage)
	assert.Equal(t, model.ArmorState{Armor: 0, Helmet: 20}, out.Armor)
}

func TestFixedDamage_IgnoresWeaponStats(t *testing.T) {
	w := testWeapon()
	w.Flesh = 999
	w.Armor = 999
	tier := testTier(3.0, 1, 0.5)
	in := newInput(w, tier, onlyPart(model.PartChest), 0.5)

	out := NewFixedDamage().ComputeHit(&fixedSource{vals: []float64{0.5}}, in, model.ArmorState{Armor: 80})

	// pure 74*1*0.5 = 37, pen 18.5, armor damage 11*1 = 11 < 80
	assert.Equal(t, 18.5, out.Damage)
	assert.Equal(t, 69.0, out.Armor.Armor)
}

func TestFixedDamage_HeadBreaksHelmet(t *testing.T) {
	w := testWeapon()
	tier := testTier(1.0, 1, 0)
	in := newInput(w, tier, onlyPart(model.PartHead), 1.0)

	out := NewFixedDamage().ComputeHit(&fixedSource{vals: []float64{0.1}}, in, model.ArmorState{Armor: 80, Helmet: 5.5})

	// pure 148, pen 0, armor damage 11, frac 0.5 => 74
	assert.InDelta(t, 74.0, out.Damage, 1e-9)
	assert.Equal(t, 0.0, out.Armor.Helmet)
	assert.Equal(t, 80.0, out.Armor.Armor)
}

func BenchmarkStandard_ComputeHit(b *testing.B) {
	w := testWeapon()
	in := newInput(w, testTier(1.0, 1, 0.5), model.HitProbability{Head: 0.18, Chest: 0.3, Stomach: 0.22, Limbs: 0.3}, 1)
	src := rng.NewDefault()
	armor := model.ArmorState{Armor: 80, Helmet: 35}
	s := Standard{}

	b.ReportAllocs()
	for range b.N {
		_ = s.ComputeHit(src, in, armor)
	}
}
