package model

// AmmoTag identifies an ammo tier: a numeric tier ("1".."5") or a named
// special type ("AP", "RIP", "Double", ...).
type AmmoTag string

// ArmorLevels is the number of armor/helmet levels in an ammo tier table.
const ArmorLevels = 6

// ArmorCoefficient controls how a tier interacts with one armor level.
type ArmorCoefficient struct {
	ArmorMultiplier float64 `json:"armorMult"`
	Pen             float64 `json:"pen"`
}

// AmmoTier is one row of the ammo-vs-armor table.
type AmmoTier struct {
	Tag   AmmoTag                       `json:"tag"`
	Base  float64                       `json:"base"`
	Armor [ArmorLevels]ArmorCoefficient `json:"armor"`
}

// ForLevel returns the coefficients for a 1-based armor level.
// Out-of-range levels are clamped to [1, 6].
func (t AmmoTier) ForLevel(level int) ArmorCoefficient {
	if level < 1 {
		level = 1
	}
	if level > ArmorLevels {
		level = ArmorLevels
	}
	return t.Armor[level-1]
}
