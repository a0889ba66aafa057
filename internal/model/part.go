// Package model defines the catalog, request and result types shared by the engine.
package model

// BodyPart is a hit location.
type BodyPart uint8

const (
	PartHead BodyPart = iota
	PartChest
	PartStomach
	PartLimbs
)

// BodyParts lists hit locations in sampling order.
var BodyParts = [4]BodyPart{PartHead, PartChest, PartStomach, PartLimbs}

func (p BodyPart) String() string {
	switch p {
	case PartHead:
		return "head"
	case PartChest:
		return "chest"
	case PartStomach:
		return "stomach"
	case PartLimbs:
		return "limbs"
	default:
		return "unknown"
	}
}

// PartMultipliers holds one value per body part. It is used both for damage
// multipliers and for barrel bonuses.
type PartMultipliers struct {
	Head    float64 `json:"head" yaml:"head"`
	Chest   float64 `json:"chest" yaml:"chest"`
	Stomach float64 `json:"stomach" yaml:"stomach"`
	Limbs   float64 `json:"limbs" yaml:"limbs"`
}

// Of returns the value for part.
func (m PartMultipliers) Of(part BodyPart) float64 {
	switch part {
	case PartHead:
		return m.Head
	case PartChest:
		return m.Chest
	case PartStomach:
		return m.Stomach
	default:
		return m.Limbs
	}
}

// Add returns the component-wise sum.
func (m PartMultipliers) Add(o PartMultipliers) PartMultipliers {
	return PartMultipliers{
		Head:    m.Head + o.Head,
		Chest:   m.Chest + o.Chest,
		Stomach: m.Stomach + o.Stomach,
		Limbs:   m.Limbs + o.Limbs,
	}
}

// Sum returns Head+Chest+Stomach+Limbs.
func (m PartMultipliers) Sum() float64 {
	return m.Head + m.Chest + m.Stomach + m.Limbs
}

// HitProbability is the distribution of hit locations. Components sum to 1.
type HitProbability = PartMultipliers
