// Package catalog holds the weapon, muzzle and ammo tables the engine reads from.
//
// A Catalog is immutable once built: every accessor hands out copies.
package catalog

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"github.com/goccy/go-json"

	"github.com/udisondev/ttkbench/internal/model"
)

// ErrInvalidCatalog is wrapped by every catalog consistency failure.
var ErrInvalidCatalog = errors.New("invalid catalog")

// Catalog is a validated set of weapons, muzzles and ammo tiers.
type Catalog struct {
	weapons   []model.WeaponEntry
	byName    map[string]int
	muzzles   []model.Muzzle
	ammo      map[model.AmmoTag]model.AmmoTier
	ammoOrder []model.AmmoTag
}

// document is the JSON file layout.
type document struct {
	Weapons []model.WeaponEntry `json:"weapons"`
	Muzzles []model.Muzzle      `json:"muzzles,omitempty"`
	Ammo    []model.AmmoTier    `json:"ammo,omitempty"`
}

// New validates the tables and builds a Catalog from copies of them.
func New(weapons []model.WeaponEntry, muzzles []model.Muzzle, ammo []model.AmmoTier) (*Catalog, error) {
	c := &Catalog{
		weapons: make([]model.WeaponEntry, 0, len(weapons)),
		byName:  make(map[string]int, len(weapons)),
		muzzles: slices.Clone(muzzles),
		ammo:    make(map[model.AmmoTag]model.AmmoTier, len(ammo)),
	}

	var errs []error
	for _, t := range ammo {
		if _, dup := c.ammo[t.Tag]; dup {
			errs = append(errs, fmt.Errorf("%w: duplicate ammo tier %q", ErrInvalidCatalog, t.Tag))
			continue
		}
		c.ammo[t.Tag] = t
		c.ammoOrder = append(c.ammoOrder, t.Tag)
	}

	for _, w := range weapons {
		if err := c.validateWeapon(w); err != nil {
			errs = append(errs, err)
			continue
		}
		if _, dup := c.byName[w.Name]; dup {
			errs = append(errs, fmt.Errorf("%w: duplicate weapon %q", ErrInvalidCatalog, w.Name))
			continue
		}
		c.byName[w.Name] = len(c.weapons)
		c.weapons = append(c.weapons, w.Clone())
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return c, nil
}

// Default builds the catalog from the built-in tables.
func Default() (*Catalog, error) {
	c, err := New(weaponDefs, muzzleDefs, ammoDefs)
	if err != nil {
		return nil, fmt.Errorf("building default catalog: %w", err)
	}
	slog.Info("loaded catalog", "source", "builtin", "weapons", len(c.weapons), "muzzles", len(c.muzzles), "ammo", len(c.ammo))
	return c, nil
}

// LoadFile reads a JSON catalog. Missing muzzle or ammo sections fall back to
// the built-in tables.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog %s: %w", path, err)
	}
	defer f.Close()

	var doc document
	if err := json.NewDecoder(f).Decode(&doc); err != nil {
		return nil, fmt.Errorf("parsing catalog %s: %w", path, err)
	}
	if len(doc.Muzzles) == 0 {
		doc.Muzzles = muzzleDefs
	}
	if len(doc.Ammo) == 0 {
		doc.Ammo = ammoDefs
	}

	c, err := New(doc.Weapons, doc.Muzzles, doc.Ammo)
	if err != nil {
		return nil, fmt.Errorf("loading catalog %s: %w", path, err)
	}
	slog.Info("loaded catalog", "source", path, "weapons", len(c.weapons), "muzzles", len(c.muzzles), "ammo", len(c.ammo))
	return c, nil
}

// Write encodes the catalog in the LoadFile format.
func (c *Catalog) Write(w io.Writer) error {
	ammo := make([]model.AmmoTier, 0, len(c.ammoOrder))
	for _, tag := range c.ammoOrder {
		ammo = append(ammo, c.ammo[tag])
	}
	b, err := json.MarshalIndent(document{Weapons: c.weapons, Muzzles: c.muzzles, Ammo: ammo}, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding catalog: %w", err)
	}
	if _, err := w.Write(append(b, '\n')); err != nil {
		return fmt.Errorf("writing catalog: %w", err)
	}
	return nil
}

// Len returns the number of weapons.
func (c *Catalog) Len() int { return len(c.weapons) }

// Weapons returns copies of all entries in catalog order.
func (c *Catalog) Weapons() []model.WeaponEntry {
	out := make([]model.WeaponEntry, len(c.weapons))
	for i, w := range c.weapons {
		out[i] = w.Clone()
	}
	return out
}

// Weapon returns a copy of the entry at index i.
func (c *Catalog) Weapon(i int) (model.WeaponEntry, bool) {
	if i < 0 || i >= len(c.weapons) {
		return model.WeaponEntry{}, false
	}
	return c.weapons[i].Clone(), true
}

// Lookup finds an entry by name and returns it with its index.
func (c *Catalog) Lookup(name string) (model.WeaponEntry, int, bool) {
	i, ok := c.byName[name]
	if !ok {
		return model.WeaponEntry{}, -1, false
	}
	return c.weapons[i].Clone(), i, true
}

// Ammo returns the tier for tag.
func (c *Catalog) Ammo(tag model.AmmoTag) (model.AmmoTier, bool) {
	t, ok := c.ammo[tag]
	return t, ok
}

// AmmoTags lists the known tags in table order.
func (c *Catalog) AmmoTags() []model.AmmoTag {
	return slices.Clone(c.ammoOrder)
}

// Muzzles returns the shared muzzle list.
func (c *Catalog) Muzzles() []model.Muzzle {
	return slices.Clone(c.muzzles)
}

// MuzzlesFor returns the weapon's own muzzle list, or the shared one.
func (c *Catalog) MuzzlesFor(w model.WeaponEntry) []model.Muzzle {
	if len(w.Muzzles) > 0 {
		return slices.Clone(w.Muzzles)
	}
	return c.Muzzles()
}

func (c *Catalog) validateWeapon(w model.WeaponEntry) error {
	fail := func(format string, args ...any) error {
		return fmt.Errorf("%w: weapon %q: %s", ErrInvalidCatalog, w.Name, fmt.Sprintf(format, args...))
	}

	if w.Name == "" {
		return fmt.Errorf("%w: weapon without name", ErrInvalidCatalog)
	}
	if err := checkRanges(w.Ranges); err != nil {
		return fail("%v", err)
	}
	if w.Velocity <= 0 {
		return fail("velocity must be positive, got %v", w.Velocity)
	}
	if w.ROF <= 0 {
		return fail("rof must be positive, got %v", w.ROF)
	}
	if w.Flesh <= 0 {
		return fail("flesh damage must be positive, got %v", w.Flesh)
	}
	for i, d := range w.Decays {
		if d <= 0 {
			return fail("decay %d must be positive, got %v", i, d)
		}
	}
	if w.HitRate != nil && (*w.HitRate <= 0 || *w.HitRate > 1) {
		return fail("hit rate must be in (0, 1], got %v", *w.HitRate)
	}
	if w.TriggerDelayMs < 0 {
		return fail("trigger delay must not be negative")
	}
	for _, tag := range w.AllowedAmmo {
		if _, ok := c.ammo[tag]; !ok {
			return fail("unknown ammo tier %q", tag)
		}
	}
	for _, b := range w.Barrels {
		if b.RangeMultiplier < 0 || b.ROFMultiplier < 0 {
			return fail("barrel %q has a negative multiplier", b.Name)
		}
	}
	if w.Burst != nil && (w.Burst.Count < 1 || w.Burst.InternalROF <= 0 || w.Burst.GapSeconds < 0) {
		return fail("invalid burst descriptor %+v", *w.Burst)
	}
	return nil
}

// checkRanges enforces strictly ascending finite breakpoints; once the
// infinite sentinel appears every later breakpoint must be infinite too.
func checkRanges(r [4]model.Range) error {
	for i := range r {
		if r[i] < 0 {
			return fmt.Errorf("range %d is negative", i)
		}
		if i == 0 {
			continue
		}
		if r[i-1].IsInfinite() {
			if !r[i].IsInfinite() {
				return fmt.Errorf("range %d follows the infinite sentinel", i)
			}
			continue
		}
		if r[i] <= r[i-1] {
			return fmt.Errorf("ranges not strictly ascending at %d", i)
		}
	}
	return nil
}
