package armory

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/udisondev/ttkbench/internal/model"
)

// MaxClones is the maximum number of clones across all weapons.
const MaxClones = 5

var (
	// ErrCloneLimit is returned when MaxClones clones already exist.
	ErrCloneLimit = errors.New("clone limit reached")
	// ErrCloneIndex is returned for an index outside the clone list.
	ErrCloneIndex = errors.New("clone index out of range")
	// ErrUnknownWeapon is returned for a weapon name missing from the catalog.
	ErrUnknownWeapon = errors.New("unknown weapon")
)

// Clone is a frozen copy of a catalog weapon with its own attachment
// selection. Everything is captured at creation time.
type Clone struct {
	Origin    int
	Base      model.WeaponEntry
	Selection model.Selection
}

// CloneView is a clone with its ordinal within its origin weapon.
type CloneView struct {
	Clone
	Number int
}

// Name returns the display name, e.g. "AKM [Clone 2]".
func (v CloneView) Name() string {
	return fmt.Sprintf("%s [Clone %d]", v.Base.Name, v.Number)
}

// Registry holds the clone set in creation order.
//
// Ordinals are not stored: Clones computes them per origin weapon from the
// current order, so removal order never leaves gaps.
//
// Thread-safe: guarded by an RWMutex.
type Registry struct {
	mu     sync.RWMutex
	clones []Clone
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// AddClone stores a clone of origin. Returns false when the registry is full.
func (r *Registry) AddClone(origin int, base model.WeaponEntry, sel model.Selection) bool {
	return r.TryAddClone(origin, base, sel) == nil
}

// TryAddClone is AddClone reporting ErrCloneLimit.
func (r *Registry) TryAddClone(origin int, base model.WeaponEntry, sel model.Selection) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.clones) >= MaxClones {
		return fmt.Errorf("adding clone of %q: %w", base.Name, ErrCloneLimit)
	}
	sel = NormalizeSelection(sel)
	sel.Precision = ClampPrecision(sel.Precision)
	r.clones = append(r.clones, Clone{
		Origin:    origin,
		Base:      base.Clone(),
		Selection: sel,
	})
	slog.Debug("clone added", "weapon", base.Name, "origin", origin, "total", len(r.clones))
	return nil
}

// RemoveClone deletes the clone at index i (creation order).
func (r *Registry) RemoveClone(i int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if i < 0 || i >= len(r.clones) {
		return fmt.Errorf("removing clone %d of %d: %w", i, len(r.clones), ErrCloneIndex)
	}
	name := r.clones[i].Base.Name
	r.clones = append(r.clones[:i], r.clones[i+1:]...)
	slog.Debug("clone removed", "weapon", name, "index", i, "total", len(r.clones))
	return nil
}

// Len returns the number of clones.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.clones)
}

// CanAdd reports whether another clone fits.
func (r *Registry) CanAdd() bool {
	return r.Len() < MaxClones
}

// Clones returns copies of all clones with ordinals numbered 1..n
// contiguously within each origin weapon.
func (r *Registry) Clones() []CloneView {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[int]int, len(r.clones))
	out := make([]CloneView, len(r.clones))
	for i, c := range r.clones {
		seen[c.Origin]++
		out[i] = CloneView{
			Clone: Clone{
				Origin:    c.Origin,
				Base:      c.Base.Clone(),
				Selection: c.Selection.Clone(),
			},
			Number: seen[c.Origin],
		}
	}
	return out
}
