// Package validate checks caller input before it reaches the engine.
// The engine itself trusts its input.
package validate

import (
	"errors"
	"fmt"
	"math"

	"github.com/udisondev/ttkbench/internal/armory"
	"github.com/udisondev/ttkbench/internal/model"
)

// ErrInvalidRequest is wrapped by every validation failure.
var ErrInvalidRequest = errors.New("invalid request")

// Specific reasons, wrapped together with ErrInvalidRequest.
var (
	ErrHitProbabilitySum   = errors.New("hit probabilities must sum to 1")
	ErrHitProbabilityRange = errors.New("hit probability must be within [0, 1]")
	ErrHitRateRange        = errors.New("hit rate must be within (0, 1]")
	ErrArmorRange          = errors.New("armor value must be within [0, 200]")
	ErrHelmetRange         = errors.New("helmet value must be within [0, 100]")
	ErrLevelRange          = errors.New("armor and helmet levels must be within 1..6")
	ErrDistance            = errors.New("distance must not be negative")
	ErrHealth              = errors.New("health must not be negative")
	ErrPrecisionRange      = errors.New("precision must be within [-0.09, 0.09]")
	ErrUnknownAmmo         = errors.New("unknown ammo tier")
)

// Limits.
const (
	MaxArmorValue         = 200.0
	MaxHelmetValue        = 100.0
	HitProbabilityEpsilon = 1e-6
)

// AmmoTable resolves ammo tags. *catalog.Catalog implements it.
type AmmoTable interface {
	Ammo(tag model.AmmoTag) (model.AmmoTier, bool)
}

func invalid(reason error, format string, args ...any) error {
	return fmt.Errorf("%w: %w: %s", ErrInvalidRequest, reason, fmt.Sprintf(format, args...))
}

// Request reports every problem with req, joined. nil means valid.
func Request(req model.Request, ammo AmmoTable) error {
	var errs []error

	if req.Distance < 0 || math.IsNaN(req.Distance) {
		errs = append(errs, invalid(ErrDistance, "distance %v", req.Distance))
	}
	if req.ArmorValue < 0 || req.ArmorValue > MaxArmorValue {
		errs = append(errs, invalid(ErrArmorRange, "armor %v", req.ArmorValue))
	}
	if req.HelmetValue < 0 || req.HelmetValue > MaxHelmetValue {
		errs = append(errs, invalid(ErrHelmetRange, "helmet %v", req.HelmetValue))
	}
	if err := checkLevel("armor", req.ArmorLevel); err != nil {
		errs = append(errs, err)
	}
	if err := checkLevel("helmet", req.HelmetLevel); err != nil {
		errs = append(errs, err)
	}
	if err := checkHitRate("global", req.HitRate); err != nil {
		errs = append(errs, err)
	}
	if req.Health < 0 {
		errs = append(errs, invalid(ErrHealth, "health %v", req.Health))
	}
	if _, ok := ammo.Ammo(req.Ammo); !ok {
		errs = append(errs, invalid(ErrUnknownAmmo, "ammo %q", req.Ammo))
	}
	errs = append(errs, HitProbability(req.HitProbability)...)

	return errors.Join(errs...)
}

// HitProbability checks each component is in [0, 1] and they sum to 1.
func HitProbability(p model.HitProbability) []error {
	var errs []error
	for _, part := range model.BodyParts {
		if v := p.Of(part); v < 0 || v > 1 || math.IsNaN(v) {
			errs = append(errs, invalid(ErrHitProbabilityRange, "%s %v", part, v))
		}
	}
	if sum := p.Sum(); math.Abs(sum-1) > HitProbabilityEpsilon {
		errs = append(errs, invalid(ErrHitProbabilitySum, "sum %v", sum))
	}
	return errs
}

// Selections checks per-weapon overrides. names[i] labels sels[i] in errors.
func Selections(sels []model.Selection, names []string, ammo AmmoTable) error {
	var errs []error
	for i, s := range sels {
		name := fmt.Sprintf("#%d", i)
		if i < len(names) {
			name = names[i]
		}
		if s.HitRate != nil {
			if err := checkHitRate(name, *s.HitRate); err != nil {
				errs = append(errs, err)
			}
		}
		if math.Abs(s.Precision) > armory.MaxPrecision {
			errs = append(errs, invalid(ErrPrecisionRange, "%s precision %v", name, s.Precision))
		}
		if s.Ammo != "" {
			if _, ok := ammo.Ammo(s.Ammo); !ok {
				errs = append(errs, invalid(ErrUnknownAmmo, "%s ammo %q", name, s.Ammo))
			}
		}
	}
	return errors.Join(errs...)
}

func checkLevel(what string, level int) error {
	if level < 1 || level > model.ArmorLevels {
		return invalid(ErrLevelRange, "%s level %d", what, level)
	}
	return nil
}

// checkHitRate rejects 0 as well: a weapon that never hits never finishes a trial.
func checkHitRate(what string, v float64) error {
	if v <= 0 || v > 1 || math.IsNaN(v) {
		return invalid(ErrHitRateRange, "%s hit rate %v", what, v)
	}
	return nil
}
