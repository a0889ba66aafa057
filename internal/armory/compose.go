// Package armory turns catalog entries plus attachment selections into armed
// weapons, and keeps the user's weapon clones.
package armory

import (
	"math"

	"github.com/udisondev/ttkbench/internal/catalog"
	"github.com/udisondev/ttkbench/internal/model"
)

// MaxPrecision bounds the velocity precision adjustment.
const MaxPrecision = 0.09

// Composer applies attachments using a catalog's muzzle lists.
type Composer struct {
	cat *catalog.Catalog
}

// NewComposer creates a Composer reading muzzles from cat.
func NewComposer(cat *catalog.Catalog) *Composer {
	return &Composer{cat: cat}
}

// Apply arms entry with sel. The entry is not modified.
func (c *Composer) Apply(entry model.WeaponEntry, sel model.Selection, flags model.Flags) model.ArmedWeapon {
	return Compose(entry, c.cat.MuzzlesFor(entry), sel, flags)
}

// Compose derives an armed weapon from entry, its muzzle list and sel.
//
// Combined range multiplier = barrel range factor (1 for flat-range barrels)
// + muzzle bonus. Ranges scale by it; a flat-range barrel then adds its bonus
// and the result is rounded. Velocity scales by the combined multiplier, then
// by (1+precision) when the velocity bonus is enabled, then takes the flat
// barrel bonus. Part multiplier bonuses are additive.
func Compose(entry model.WeaponEntry, muzzles []model.Muzzle, sel model.Selection, flags model.Flags) model.ArmedWeapon {
	entry = entry.Clone()
	barrel := barrelAt(entry.Barrels, sel.BarrelIndex)
	muzzle := muzzleAt(muzzles, sel.MuzzleIndex)

	armed := model.ArmedWeapon{
		Name:           entry.Name,
		Category:       entry.Category,
		Ranges:         entry.Ranges,
		Decays:         entry.Decays,
		Velocity:       entry.Velocity,
		Flesh:          entry.Flesh,
		Armor:          entry.Armor,
		ROF:            entry.ROF,
		TriggerDelayMs: entry.TriggerDelayMs,
		HitRate:        entry.HitRate,
		Multipliers:    entry.Multipliers,
		AllowedAmmo:    entry.AllowedAmmo,
		Burst:          entry.Burst,
	}

	rangeMult := 1.0
	var b model.Barrel
	if barrel != nil {
		b = *barrel
		rangeMult = b.RangeFactor()
		armed.Barrel = b.Name
	}
	if muzzle != nil {
		rangeMult += muzzle.RangeBonus
		armed.Muzzle = muzzle.Name
	}

	for i, r := range armed.Ranges {
		if r.IsInfinite() {
			continue
		}
		v := float64(r) * rangeMult
		if b.FlatRange() {
			v = math.Round(v + b.RangeAdd)
		}
		armed.Ranges[i] = model.Range(v)
	}

	velocity := entry.Velocity * rangeMult
	if flags.VelocityBonus {
		velocity *= 1 + ClampPrecision(sel.Precision)
	}
	if b.VelocityAdd != 0 {
		velocity = math.Round(velocity + b.VelocityAdd)
	}
	armed.Velocity = velocity

	if barrel != nil {
		armed.ROF = entry.ROF * b.ROFFactor()
		if armed.Burst != nil {
			armed.Burst.InternalROF *= b.ROFFactor()
		}
		armed.Flesh += b.DamageBonus
		armed.Armor += b.ArmorDamageBonus
		armed.TriggerDelayMs = max(0, entry.TriggerDelayMs+b.TriggerDelayDeltaMs)
		armed.Multipliers = armed.Multipliers.Add(b.PartBonus)
	}

	if sel.HitRate != nil {
		hr := *sel.HitRate
		armed.HitRate = &hr
	}
	return armed
}

// ClampPrecision limits p to [-MaxPrecision, MaxPrecision].
func ClampPrecision(p float64) float64 {
	return math.Max(-MaxPrecision, math.Min(MaxPrecision, p))
}

// NormalizeSelection maps negative indices to "none".
func NormalizeSelection(sel model.Selection) model.Selection {
	sel = sel.Clone()
	if sel.BarrelIndex < 0 {
		sel.BarrelIndex = 0
	}
	if sel.MuzzleIndex < 0 {
		sel.MuzzleIndex = 0
	}
	return sel
}

// barrelAt resolves a 1-based barrel index; 0 or out of range means none.
func barrelAt(barrels []model.Barrel, idx int) *model.Barrel {
	if idx <= 0 || idx > len(barrels) {
		return nil
	}
	return &barrels[idx-1]
}

// muzzleAt resolves a muzzle index; index 0 is the "none" slot.
func muzzleAt(muzzles []model.Muzzle, idx int) *model.Muzzle {
	if idx <= 0 || idx >= len(muzzles) {
		return nil
	}
	return &muzzles[idx]
}
