package model

import (
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// Category groups weapons for display.
type Category string

const (
	CategorySMG      Category = "smg"
	CategoryRifle    Category = "rifle"
	CategoryLMG      Category = "lmg"
	CategoryMarksman Category = "marksman"
	CategoryPistol   Category = "pistol"
)

// Range is a range breakpoint in meters. Infinite marks a band that never ends.
type Range float64

// Infinite is the "no further breakpoint" sentinel.
var Infinite = Range(math.Inf(1))

// IsInfinite reports whether r is the sentinel.
func (r Range) IsInfinite() bool {
	return math.IsInf(float64(r), 1)
}

// MarshalJSON encodes the sentinel as the string "inf".
func (r Range) MarshalJSON() ([]byte, error) {
	if r.IsInfinite() {
		return []byte(`"inf"`), nil
	}
	return json.Marshal(float64(r))
}

// UnmarshalJSON accepts a number, null or "inf"/"infinity".
func (r *Range) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*r = Infinite
		return nil
	}
	if unq, err := strconv.Unquote(s); err == nil {
		switch strings.ToLower(unq) {
		case "inf", "infinity", "∞":
			*r = Infinite
			return nil
		}
		s = unq
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*r = Range(v)
	return nil
}

// BurstFire describes a burst fire mode.
type BurstFire struct {
	Count       int     `json:"burstCount"`
	InternalROF float64 `json:"internalRof"`
	GapSeconds  float64 `json:"interBurstGapSeconds"`
}

// Barrel is a selectable barrel modifier.
//
// A barrel either scales the range breakpoints (RangeMultiplier) or adds a flat
// amount to them (RangeAdd != 0). Zero multipliers are read as 1.
type Barrel struct {
	Name                string          `json:"name"`
	RangeMultiplier     float64         `json:"rangeMultiplier,omitempty"`
	RangeAdd            float64         `json:"rangeAdd,omitempty"`
	ROFMultiplier       float64         `json:"rofMultiplier,omitempty"`
	DamageBonus         float64         `json:"damageBonus,omitempty"`
	ArmorDamageBonus    float64         `json:"armorDamageBonus,omitempty"`
	PartBonus           PartMultipliers `json:"partMultiplierBonus"`
	TriggerDelayDeltaMs float64         `json:"triggerDelayDelta,omitempty"`
	VelocityAdd         float64         `json:"velocityAdd,omitempty"`
}

// FlatRange reports whether the barrel supplies an additive range bonus.
func (b Barrel) FlatRange() bool {
	return b.RangeAdd != 0
}

// RangeFactor is the barrel's contribution to the combined range multiplier.
func (b Barrel) RangeFactor() float64 {
	if b.FlatRange() || b.RangeMultiplier == 0 {
		return 1.0
	}
	return b.RangeMultiplier
}

// ROFFactor returns the rof multiplier, 1 when unset.
func (b Barrel) ROFFactor() float64 {
	if b.ROFMultiplier == 0 {
		return 1.0
	}
	return b.ROFMultiplier
}

// Muzzle is a muzzle device adding to the combined range multiplier.
type Muzzle struct {
	Name       string  `json:"name"`
	RangeBonus float64 `json:"rangeBonus"`
}

// WeaponEntry is an immutable catalog record.
type WeaponEntry struct {
	Name           string          `json:"name"`
	Category       Category        `json:"category"`
	Ranges         [4]Range        `json:"ranges"`
	Decays         [5]float64      `json:"decays"`
	Velocity       float64         `json:"velocity"`
	Flesh          float64         `json:"flesh"`
	Armor          float64         `json:"armor"`
	ROF            float64         `json:"rof"`
	TriggerDelayMs float64         `json:"triggerDelay"`
	HitRate        *float64        `json:"hitRate,omitempty"`
	Multipliers    PartMultipliers `json:"mult"`
	AllowedAmmo    []AmmoTag       `json:"allowedAmmo"`
	Barrels        []Barrel        `json:"barrels"`
	Muzzles        []Muzzle        `json:"muzzles,omitempty"`
	Burst          *BurstFire      `json:"burst,omitempty"`
}

// Clone returns a deep copy so callers can never alias catalog slices.
func (w WeaponEntry) Clone() WeaponEntry {
	c := w
	c.AllowedAmmo = slices.Clone(w.AllowedAmmo)
	c.Barrels = slices.Clone(w.Barrels)
	c.Muzzles = slices.Clone(w.Muzzles)
	if w.HitRate != nil {
		hr := *w.HitRate
		c.HitRate = &hr
	}
	if w.Burst != nil {
		b := *w.Burst
		c.Burst = &b
	}
	return c
}

// AllowsAmmo reports whether tag is in the allowed list.
func (w WeaponEntry) AllowsAmmo(tag AmmoTag) bool {
	return slices.Contains(w.AllowedAmmo, tag)
}

// ArmedWeapon is a catalog entry with attachments applied. It is a value:
// composing never touches the entry it came from.
type ArmedWeapon struct {
	Name           string          `json:"name"`
	Category       Category        `json:"category"`
	Ranges         [4]Range        `json:"ranges"`
	Decays         [5]float64      `json:"decays"`
	Velocity       float64         `json:"velocity"`
	Flesh          float64         `json:"flesh"`
	Armor          float64         `json:"armor"`
	ROF            float64         `json:"rof"`
	TriggerDelayMs float64         `json:"triggerDelay"`
	HitRate        *float64        `json:"hitRate,omitempty"`
	Multipliers    PartMultipliers `json:"mult"`
	AllowedAmmo    []AmmoTag       `json:"allowedAmmo"`
	Burst          *BurstFire      `json:"burst,omitempty"`
	Barrel         string          `json:"barrel,omitempty"`
	Muzzle         string          `json:"muzzle,omitempty"`
}

// AllowsAmmo reports whether tag is in the allowed list.
func (a ArmedWeapon) AllowsAmmo(tag AmmoTag) bool {
	return slices.Contains(a.AllowedAmmo, tag)
}

// IsBurst reports whether the weapon fires in bursts.
func (a ArmedWeapon) IsBurst() bool {
	return a.Burst != nil && a.Burst.Count > 0
}

// EffectiveHitRate returns the weapon's own hit rate, falling back to global.
func (a ArmedWeapon) EffectiveHitRate(global float64) float64 {
	if a.HitRate != nil {
		return *a.HitRate
	}
	return global
}

// TriggerDelaySeconds converts the trigger delay to seconds.
func (a ArmedWeapon) TriggerDelaySeconds() float64 {
	return a.TriggerDelayMs / 1000
}
