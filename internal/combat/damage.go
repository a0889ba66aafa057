// Package combat implements the per-hit damage model: distance decay, base
// damage, armor mitigation, hit-location sampling and the ammo strategies.
package combat

import "github.com/udisondev/ttkbench/internal/model"

// Decay returns the damage multiplier for distance.
//
// Bands are half-open: [0,r0) [r0,r1) [r1,r2) [r2,r3) [r3,inf). A distance
// equal to a breakpoint belongs to the higher band.
func Decay(distance float64, w *model.ArmedWeapon) float64 {
	for i, r := range w.Ranges {
		if distance < float64(r) {
			return w.Decays[i]
		}
	}
	return w.Decays[len(w.Decays)-1]
}

// PureDamage is flesh damage before armor: flesh * ammoBase * partMult * decay.
func PureDamage(flesh, ammoBase, partMult, decay float64) float64 {
	return flesh * ammoBase * partMult * decay
}

// BaseDamage computes PureDamage for a hit on part.
func BaseDamage(w *model.ArmedWeapon, ammo *model.AmmoTier, part model.BodyPart, decay float64) float64 {
	return PureDamage(w.Flesh, ammo.Base, w.Multipliers.Of(part), decay)
}

// Mitigation is the result of a hit against an armor layer.
type Mitigation struct {
	Damage    float64
	Remaining float64
}

// MitigateArmor resolves one hit against an armor layer with currentArmor
// durability.
//
// If the hit breaks the layer (armorDamage >= currentArmor) the damage is
// interpolated: frac*pen + (1-frac)*pure with frac = currentArmor/armorDamage,
// and the layer drops to 0. Otherwise the pen damage applies and the layer
// loses armorDamage. A zero-damage hit on a broken layer yields pure damage.
func MitigateArmor(pureDamage, penDamage, armorDamage, currentArmor float64) Mitigation {
	if armorDamage == 0 && currentArmor == 0 {
		return Mitigation{Damage: pureDamage}
	}
	if armorDamage >= currentArmor {
		frac := currentArmor / armorDamage
		return Mitigation{Damage: frac*penDamage + (1-frac)*pureDamage}
	}
	return Mitigation{Damage: penDamage, Remaining: currentArmor - armorDamage}
}
