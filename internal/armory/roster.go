package armory

import (
	"fmt"
	"maps"
	"slices"

	"github.com/udisondev/ttkbench/internal/catalog"
	"github.com/udisondev/ttkbench/internal/model"
)

// Slot is one roster line: a catalog weapon or a clone with its selection.
type Slot struct {
	Name      string
	Entry     model.WeaponEntry
	Selection model.Selection
	Clone     bool
}

// Roster lists the catalog weapons (with selections[i], or no attachments
// when selections is short) followed by every clone.
func Roster(cat *catalog.Catalog, selections []model.Selection, clones *Registry) []Slot {
	entries := cat.Weapons()
	slots := make([]Slot, 0, len(entries)+MaxClones)
	for i, e := range entries {
		var sel model.Selection
		if i < len(selections) {
			sel = selections[i]
		}
		slots = append(slots, Slot{Name: e.Name, Entry: e, Selection: NormalizeSelection(sel)})
	}
	if clones == nil {
		return slots
	}
	for _, c := range clones.Clones() {
		slots = append(slots, Slot{Name: c.Name(), Entry: c.Base, Selection: c.Selection, Clone: true})
	}
	return slots
}

// Arm applies every slot's selection. The i-th armed weapon pairs with the
// i-th returned selection; clone slots carry their display name.
func (c *Composer) Arm(slots []Slot, flags model.Flags) ([]model.ArmedWeapon, []model.Selection) {
	armed := make([]model.ArmedWeapon, len(slots))
	sels := make([]model.Selection, len(slots))
	for i, s := range slots {
		armed[i] = c.Apply(s.Entry, s.Selection, flags)
		armed[i].Name = s.Name
		sels[i] = s.Selection.Clone()
	}
	return armed, sels
}

// WithNamed returns a copy of sels (one per catalog weapon) with the entries
// of byName replacing the selection of the weapon they name.
func WithNamed(cat *catalog.Catalog, sels []model.Selection, byName map[string]model.Selection) ([]model.Selection, error) {
	out := make([]model.Selection, cat.Len())
	for i := range out {
		if i < len(sels) {
			out[i] = sels[i].Clone()
		}
	}
	for _, name := range slices.Sorted(maps.Keys(byName)) {
		_, idx, ok := cat.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("selection for %q: %w", name, ErrUnknownWeapon)
		}
		out[idx] = NormalizeSelection(byName[name])
	}
	return out, nil
}

// AddNamed clones the catalog weapon called name.
func (r *Registry) AddNamed(cat *catalog.Catalog, name string, sel model.Selection) error {
	entry, idx, ok := cat.Lookup(name)
	if !ok {
		return fmt.Errorf("cloning %q: %w", name, ErrUnknownWeapon)
	}
	return r.TryAddClone(idx, entry, sel)
}
