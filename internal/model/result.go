package model

// TrialResult is the outcome of one simulated engagement.
type TrialResult struct {
	TimeSeconds          float64
	Shots                int
	Hits                 int
	BurstIntervalSeconds float64
}

// Misses returns Shots - Hits.
func (r TrialResult) Misses() int {
	return r.Shots - r.Hits
}

// Breakdown splits an average time-to-kill into its components.
type Breakdown struct {
	NoMissFire   float64 `json:"noMissFireDelay"`
	Empty        float64 `json:"emptyDelay"`
	Flight       float64 `json:"flightDelay"`
	TriggerDelay float64 `json:"triggerDelay"`
	Burst        float64 `json:"burstDelay"`
}

// AggregateStat is the per-weapon average over a batch of trials.
type AggregateStat struct {
	WeaponName           string      `json:"weaponName"`
	Ammo                 AmmoTag     `json:"ammoTier"`
	Trials               int         `json:"trials"`
	AverageTimeToKill    float64     `json:"averageTimeToKill"`
	AverageTrialTime     float64     `json:"averageTrialTime"`
	AverageShots         float64     `json:"averageShots"`
	AverageMisses        float64     `json:"averageMisses"`
	AverageBurstInterval float64     `json:"averageBurstInterval"`
	Breakdown            Breakdown   `json:"breakdown"`
	Weapon               ArmedWeapon `json:"armedWeaponSnapshot"`
}

// AverageHits returns AverageShots - AverageMisses.
func (s AggregateStat) AverageHits() float64 {
	return s.AverageShots - s.AverageMisses
}
