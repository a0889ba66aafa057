package armory

import (
	"fmt"

	"github.com/udisondev/ttkbench/internal/catalog"
	"github.com/udisondev/ttkbench/internal/model"
)

// Preset picks a barrel for every catalog weapon.
type Preset string

const (
	PresetNone    Preset = "none"
	PresetLongest Preset = "longest"
)

// ParsePreset validates a preset name; empty means PresetNone.
func ParsePreset(s string) (Preset, error) {
	switch Preset(s) {
	case "", PresetNone:
		return PresetNone, nil
	case PresetLongest:
		return PresetLongest, nil
	default:
		return "", fmt.Errorf("unknown barrel preset %q", s)
	}
}

// PresetSelections returns one selection per catalog weapon.
// PresetLongest chooses the barrel giving the largest first range
// breakpoint; ties keep the earlier barrel.
func PresetSelections(cat *catalog.Catalog, p Preset) []model.Selection {
	weapons := cat.Weapons()
	sels := make([]model.Selection, len(weapons))
	if p != PresetLongest {
		return sels
	}
	for i, w := range weapons {
		best, bestRange := 0, float64(w.Ranges[0])
		for b := range w.Barrels {
			armed := Compose(w, nil, model.Selection{BarrelIndex: b + 1}, model.Flags{})
			if r := float64(armed.Ranges[0]); r > bestRange {
				best, bestRange = b+1, r
			}
		}
		sels[i].BarrelIndex = best
	}
	return sels
}
