// Package rng provides the deterministic pseudorandom stream used by the simulation.
package rng

// DefaultSeed is the seed a fresh Source starts from and ResetSeed returns to.
const DefaultSeed uint32 = 12345

// LCG parameters (Numerical Recipes): state = (a*state + c) mod 2^32.
const (
	multiplier uint64 = 1664525
	increment  uint64 = 1013904223
	modulus           = 1 << 32
)

// Source is a linear congruential generator producing floats in [0, 1).
//
// Same seed => identical output sequence. A Source is not safe for concurrent
// use; every batch owns its own instance.
type Source struct {
	seed  uint32
	state uint32
}

// New creates a Source seeded with seed.
func New(seed uint32) *Source {
	return &Source{seed: seed, state: seed}
}

// NewDefault creates a Source seeded with DefaultSeed.
func NewDefault() *Source {
	return New(DefaultSeed)
}

// SetSeed restarts the stream from seed.
func (s *Source) SetSeed(seed uint32) {
	s.seed = seed
	s.state = seed
}

// ResetSeed restarts the stream from DefaultSeed.
func (s *Source) ResetSeed() {
	s.SetSeed(DefaultSeed)
}

// Seed returns the seed the current stream started from.
func (s *Source) Seed() uint32 {
	return s.seed
}

// Float64 advances the generator and returns state / 2^32.
func (s *Source) Float64() float64 {
	s.state = uint32((multiplier*uint64(s.state) + increment) % modulus)
	return float64(s.state) / modulus
}

// Derive returns a new Source whose seed is mixed from the receiver's seed and n.
// Used to give parallel workers independent but reproducible streams.
func (s *Source) Derive(n int) *Source {
	x := uint64(s.seed) ^ (uint64(n+1) * 0x9E3779B9)
	x = (multiplier*x + increment) % modulus
	return New(uint32(x))
}
