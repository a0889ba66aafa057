package combat

import (
	"strings"

	"github.com/udisondev/ttkbench/internal/model"
)

// Fixed baselines of the fixed-damage ("Double") family.
const (
	FixedFleshDamage = 74.0
	FixedArmorDamage = 11.0
)

// Kind identifies an ammo strategy.
type Kind uint8

const (
	KindStandard Kind = iota
	KindFragmenting
	KindFixedDamage
)

func (k Kind) String() string {
	switch k {
	case KindFragmenting:
		return "fragmenting"
	case KindFixedDamage:
		return "fixed-damage"
	default:
		return "standard"
	}
}

// HitInput is everything a strategy reads that stays constant for a trial.
type HitInput struct {
	Weapon         *model.ArmedWeapon
	Request        *model.Request
	Ammo           *model.AmmoTier
	Decay          float64
	HitProbability model.HitProbability
}

// Outcome is the damage dealt by one hit and the armor state after it.
type Outcome struct {
	Damage float64
	Armor  model.ArmorState
}

// Strategy computes the damage of a single hit.
//
// armor is passed by value; implementations return the new state in the
// Outcome and never modify the caller's copy.
type Strategy interface {
	Kind() Kind
	ComputeHit(src Float64Source, in *HitInput, armor model.ArmorState) Outcome
}

// Standard samples a hit part. Limbs take pure damage, head hits are
// mitigated by the helmet, chest and stomach hits by the body armor.
type Standard struct{}

func (Standard) Kind() Kind { return KindStandard }

func (Standard) ComputeHit(src Float64Source, in *HitInput, armor model.ArmorState) Outcome {
	part := SampleHitPart(src, in.HitProbability)
	pure := BaseDamage(in.Weapon, in.Ammo, part, in.Decay)

	switch part {
	case model.PartLimbs:
		return Outcome{Damage: pure, Armor: armor}
	case model.PartHead:
		c := in.Ammo.ForLevel(in.Request.HelmetLevel)
		m := MitigateArmor(pure, pure*c.Pen, in.Weapon.Armor*c.ArmorMultiplier, armor.Helmet)
		armor.Helmet = m.Remaining
		return Outcome{Damage: m.Damage, Armor: armor}
	default:
		c := in.Ammo.ForLevel(in.Request.ArmorLevel)
		m := MitigateArmor(pure, pure*c.Pen, in.Weapon.Armor*c.ArmorMultiplier, armor.Armor)
		armor.Armor = m.Remaining
		return Outcome{Damage: m.Damage, Armor: armor}
	}
}

// Fragmenting treats every hit as a limb hit with the tier's own base
// coefficient. It draws nothing from src and never touches armor.
type Fragmenting struct{}

func (Fragmenting) Kind() Kind { return KindFragmenting }

func (Fragmenting) ComputeHit(_ Float64Source, in *HitInput, armor model.ArmorState) Outcome {
	return Outcome{Damage: BaseDamage(in.Weapon, in.Ammo, model.PartLimbs, in.Decay), Armor: armor}
}

// FixedDamage replaces the weapon's flesh and armor stats with fixed
// baselines. Part multipliers and decay still apply to flesh damage; the
// armor baseline is scaled by the tier's armor multiplier only. A broken
// layer passes pure damage straight through.
type FixedDamage struct {
	Flesh float64
	Armor float64
}

// NewFixedDamage returns the strategy with the standard 74/11 baselines.
func NewFixedDamage() FixedDamage {
	return FixedDamage{Flesh: FixedFleshDamage, Armor: FixedArmorDamage}
}

func (FixedDamage) Kind() Kind { return KindFixedDamage }

func (s FixedDamage) ComputeHit(src Float64Source, in *HitInput, armor model.ArmorState) Outcome {
	part := SampleHitPart(src, in.HitProbability)
	pure := s.Flesh * in.Weapon.Multipliers.Of(part) * in.Decay

	switch part {
	case model.PartLimbs:
		return Outcome{Damage: pure, Armor: armor}
	case model.PartHead:
		if armor.Helmet <= 0 {
			return Outcome{Damage: pure, Armor: armor}
		}
		c := in.Ammo.ForLevel(in.Request.HelmetLevel)
		m := MitigateArmor(pure, pure*c.Pen, s.Armor*c.ArmorMultiplier, armor.Helmet)
		armor.Helmet = m.Remaining
		return Outcome{Damage: m.Damage, Armor: armor}
	default:
		if armor.Armor <= 0 {
			return Outcome{Damage: pure, Armor: armor}
		}
		c := in.Ammo.ForLevel(in.Request.ArmorLevel)
		m := MitigateArmor(pure, pure*c.Pen, s.Armor*c.ArmorMultiplier, armor.Armor)
		armor.Armor = m.Remaining
		return Outcome{Damage: m.Damage, Armor: armor}
	}
}

// KindFor classifies an ammo tag: any tag containing "rip" (case-insensitive)
// is fragmenting, exactly "Double" is fixed-damage, everything else standard.
func KindFor(tag model.AmmoTag) Kind {
	if strings.Contains(strings.ToLower(string(tag)), "rip") {
		return KindFragmenting
	}
	if tag == "Double" {
		return KindFixedDamage
	}
	return KindStandard
}

// ForAmmo returns the strategy for tag.
func ForAmmo(tag model.AmmoTag) Strategy {
	switch KindFor(tag) {
	case KindFragmenting:
		return Fragmenting{}
	case KindFixedDamage:
		return NewFixedDamage()
	default:
		return Standard{}
	}
}
