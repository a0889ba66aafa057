package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/udisondev/ttkbench/internal/model"
)

func TestDecay_Bands(t *testing.T) {
	w := testWeapon()

	tests := []struct {
		name     string
		distance float64
		want     float64
	}{
		{"zero", 0, 1.0},
		{"inside first band", 9.99, 1.0},
		{"first breakpoint belongs to second band", 10, 0.8},
		{"second breakpoint", 20, 0.6},
		{"third breakpoint", 30, 0.4},
		{"far, last breakpoint infinite", 10000, 0.4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decay(tt.distance, w))
		})
	}
}

func TestDecay_AllFiniteReachesLastBand(t *testing.T) {
	w := testWeapon()
	w.Ranges = [4]model.Range{20, 27, 40, 55}
	w.Decays = [5]float64{1.0, 0.75, 0.65, 0.55, 0.45}

	assert.Equal(t, 0.55, Decay(54.9, w))
	assert.Equal(t, 0.45, Decay(55, w))
	assert.Equal(t, 0.45, Decay(300, w))
}

func TestBaseDamage(t *testing.T) {
	w := testWeapon()
	tier := testTier(1.1, 1, 1)

	assert.InDelta(t, 36*1.1*2*0.8, BaseDamage(w, tier, model.PartHead, 0.8), 1e-12)
	assert.InDelta(t, 36*1.1*0.4, BaseDamage(w, tier, model.PartLimbs, 1), 1e-12)
}

func TestMitigateArmor(t *testing.T) {
	tests := []struct {
		name          string
		pure, pen     float64
		armorDamage   float64
		current       float64
		wantDamage    float64
		wantRemaining float64
	}{
		{
			name: "armor holds",
			pure: 36, pen: 18, armorDamage: 36, current: 80,
			wantDamage: 18, wantRemaining: 44,
		},
		{
			name: "armor breaks, interpolated",
			pure: 36, pen: 18, armorDamage: 36, current: 20,
			wantDamage: 26, wantRemaining: 0,
		},
		{
			name: "exact break counts as break",
			pure: 36, pen: 18, armorDamage: 36, current: 36,
			wantDamage: 18, wantRemaining: 0,
		},
		{
			name: "already broken",
			pure: 36, pen: 0, armorDamage: 36, current: 0,
			wantDamage: 36, wantRemaining: 0,
		},
		{
			name: "zero damage on zero armor",
			pure: 36, pen: 0, armorDamage: 0, current: 0,
			wantDamage: 36, wantRemaining: 0,
		},
		{
			name: "zero armor damage on intact armor",
			pure: 36, pen: 9, armorDamage: 0, current: 50,
			wantDamage: 9, wantRemaining: 50,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MitigateArmor(tt.pure, tt.pen, tt.armorDamage, tt.current)
			assert.InDelta(t, tt.wantDamage, got.Damage, 1e-9)
			assert.Equal(t, tt.wantRemaining, got.Remaining)
			assert.GreaterOrEqual(t, got.Remaining, 0.0)
		})
	}
}

func TestMitigateArmor_PenExactWhenHolding(t *testing.T) {
	got := MitigateArmor(41.3, 30.975, 12.5, 40)
	assert.Equal(t, 30.975, got.Damage)
	assert.Equal(t, 40-12.5, got.Remaining)
}
