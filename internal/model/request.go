package model

// DefaultHealth is the target health when a request leaves it unset.
const DefaultHealth = 100.0

// Flags toggles optional parts of the time and velocity model.
type Flags struct {
	TriggerDelay  bool `json:"triggerDelayEnabled" yaml:"trigger_delay"`
	VelocityBonus bool `json:"velocityBonusEnabled" yaml:"velocity_bonus"`
}

// Request holds the validated parameters of one simulation batch.
type Request struct {
	Ammo           AmmoTag        `json:"ammoTier"`
	ArmorLevel     int            `json:"armorLevel"`
	ArmorValue     float64        `json:"armorValue"`
	HelmetLevel    int            `json:"helmetLevel"`
	HelmetValue    float64        `json:"helmetValue"`
	Distance       float64        `json:"distance"`
	HitProbability HitProbability `json:"hitProbability"`
	HitRate        float64        `json:"globalHitRate"`
	Health         float64        `json:"health,omitempty"`
	Flags
}

// TargetHealth returns Health, or DefaultHealth when unset.
func (r Request) TargetHealth() float64 {
	if r.Health > 0 {
		return r.Health
	}
	return DefaultHealth
}

// InitialArmor returns the armor state a trial starts from.
func (r Request) InitialArmor() ArmorState {
	return ArmorState{Armor: r.ArmorValue, Helmet: r.HelmetValue}
}

// Selection is the per-weapon attachment choice.
//
// BarrelIndex 0 means no barrel, n selects Barrels[n-1]. MuzzleIndex indexes
// the muzzle list directly and 0 is "none". Precision is the velocity
// precision adjustment in [-0.09, 0.09].
type Selection struct {
	BarrelIndex int      `json:"barrelIndex" yaml:"barrel"`
	MuzzleIndex int      `json:"muzzleIndex" yaml:"muzzle"`
	HitRate     *float64 `json:"hitRate,omitempty" yaml:"hit_rate,omitempty"`
	Ammo        AmmoTag  `json:"ammoTier,omitempty" yaml:"ammo,omitempty"`
	Precision   float64  `json:"precision,omitempty" yaml:"precision,omitempty"`
}

// Clone returns a copy that shares no pointers with s.
func (s Selection) Clone() Selection {
	c := s
	if s.HitRate != nil {
		hr := *s.HitRate
		c.HitRate = &hr
	}
	return c
}

// ArmorState is the target's remaining armor and helmet durability.
type ArmorState struct {
	Armor  float64 `json:"armor"`
	Helmet float64 `json:"helmet"`
}
