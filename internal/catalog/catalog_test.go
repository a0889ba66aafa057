package catalog

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/ttkbench/internal/model"
)

func validEntry(name string) model.WeaponEntry {
	return model.WeaponEntry{
		Name:        name,
		Category:    model.CategoryRifle,
		Ranges:      [4]model.Range{40, 60, model.Infinite, model.Infinite},
		Decays:      [5]float64{1, 0.9, 0.8, 0.8, 0.8},
		Velocity:    700,
		Flesh:       40,
		Armor:       40,
		ROF:         600,
		Multipliers: model.PartMultipliers{Head: 2, Chest: 1, Stomach: 0.9, Limbs: 0.45},
		AllowedAmmo: []model.AmmoTag{"4"},
	}
}

func TestDefault(t *testing.T) {
	cat, err := Default()
	require.NoError(t, err)

	assert.GreaterOrEqual(t, cat.Len(), 40)
	assert.Len(t, cat.Muzzles(), len(muzzleDefs))
	assert.Equal(t, "None", cat.Muzzles()[0].Name)

	for _, tag := range []model.AmmoTag{"1", "2", "3", "4", "5", "M61", "AP", "RIP45", "RIP", "Double"} {
		_, ok := cat.Ammo(tag)
		assert.True(t, ok, "ammo %s", tag)
	}

	var burst int
	for _, w := range cat.Weapons() {
		if w.Burst != nil {
			burst++
		}
	}
	assert.Positive(t, burst, "roster should contain a burst weapon")
}

func TestCatalog_AccessorsReturnCopies(t *testing.T) {
	cat, err := Default()
	require.NoError(t, err)

	w, idx, ok := cat.Lookup("SR-3M")
	require.True(t, ok)
	w.AllowedAmmo[0] = "Double"
	w.Barrels[0].RangeMultiplier = 99

	again, ok := cat.Weapon(idx)
	require.True(t, ok)
	assert.Equal(t, model.AmmoTag("3"), again.AllowedAmmo[0])
	assert.Equal(t, 1.18, again.Barrels[0].RangeMultiplier)

	_, _, ok = cat.Lookup("nope")
	assert.False(t, ok)
	_, ok = cat.Weapon(-1)
	assert.False(t, ok)
}

func TestCatalog_MuzzlesFor(t *testing.T) {
	cat, err := Default()
	require.NoError(t, err)

	sr3m, _, _ := cat.Lookup("SR-3M")
	assert.Equal(t, cat.Muzzles(), cat.MuzzlesFor(sr3m))

	m16, _, ok := cat.Lookup("M16A4")
	require.True(t, ok)
	assert.Equal(t, m16.Muzzles, cat.MuzzlesFor(m16))
}

func TestNew_Invalid(t *testing.T) {
	tiers := []model.AmmoTier{{Tag: "4", Base: 1}}

	tests := []struct {
		name   string
		mutate func(*model.WeaponEntry)
	}{
		{"missing name", func(w *model.WeaponEntry) { w.Name = "" }},
		{"descending ranges", func(w *model.WeaponEntry) { w.Ranges = [4]model.Range{40, 30, 50, 60} }},
		{"equal ranges", func(w *model.WeaponEntry) { w.Ranges = [4]model.Range{40, 40, 50, 60} }},
		{"finite after sentinel", func(w *model.WeaponEntry) { w.Ranges = [4]model.Range{40, model.Infinite, 50, model.Infinite} }},
		{"negative range", func(w *model.WeaponEntry) { w.Ranges[0] = -1 }},
		{"zero velocity", func(w *model.WeaponEntry) { w.Velocity = 0 }},
		{"zero rof", func(w *model.WeaponEntry) { w.ROF = 0 }},
		{"zero flesh", func(w *model.WeaponEntry) { w.Flesh = 0 }},
		{"zero decay", func(w *model.WeaponEntry) { w.Decays[4] = 0 }},
		{"negative decay", func(w *model.WeaponEntry) { w.Decays[1] = -0.5 }},
		{"zero hit rate", func(w *model.WeaponEntry) { hr := 0.0; w.HitRate = &hr }},
		{"hit rate above one", func(w *model.WeaponEntry) { hr := 1.5; w.HitRate = &hr }},
		{"negative trigger delay", func(w *model.WeaponEntry) { w.TriggerDelayMs = -5 }},
		{"unknown ammo", func(w *model.WeaponEntry) { w.AllowedAmmo = []model.AmmoTag{"9"} }},
		{"negative barrel multiplier", func(w *model.WeaponEntry) { w.Barrels = []model.Barrel{{Name: "b", RangeMultiplier: -1}} }},
		{"bad burst", func(w *model.WeaponEntry) { w.Burst = &model.BurstFire{Count: 0, InternalROF: 800} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := validEntry("X")
			tt.mutate(&w)
			_, err := New([]model.WeaponEntry{w}, muzzleDefs, tiers)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidCatalog))
		})
	}
}

func TestNew_Duplicates(t *testing.T) {
	tiers := []model.AmmoTier{{Tag: "4"}, {Tag: "4"}}
	_, err := New([]model.WeaponEntry{validEntry("A"), validEntry("A")}, nil, tiers)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidCatalog))
	assert.Contains(t, err.Error(), `duplicate ammo tier "4"`)
	assert.Contains(t, err.Error(), `duplicate weapon "A"`)
}

func TestWriteLoadRoundTrip(t *testing.T) {
	cat, err := Default()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, cat.Write(&buf))
	assert.Contains(t, buf.String(), `"inf"`)

	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, cat.Weapons(), loaded.Weapons())
	assert.Equal(t, cat.Muzzles(), loaded.Muzzles())
	assert.Equal(t, cat.AmmoTags(), loaded.AmmoTags())
}

func TestLoadFile_DefaultsForMissingSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "small.json")
	doc := `{"weapons":[{"name":"Tiny","category":"pistol","ranges":[10,20,"inf","inf"],
		"decays":[1,0.8,0.6,0.6,0.6],"velocity":300,"flesh":30,"armor":20,"rof":400,
		"triggerDelay":0,"mult":{"head":2,"chest":1,"stomach":0.9,"limbs":0.4},
		"allowedAmmo":["RIP45"],"barrels":[]}]}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cat, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, 1, cat.Len())

	w, _ := cat.Weapon(0)
	assert.True(t, w.Ranges[2].IsInfinite())
	assert.True(t, w.Ranges[3].IsInfinite())
	_, ok := cat.Ammo("RIP45")
	assert.True(t, ok)
	assert.Len(t, cat.Muzzles(), len(muzzleDefs))
}

func TestLoadFile_RejectsZeroHitRate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "never-hits.json")
	doc := `{"weapons":[{"name":"Blank","category":"pistol","ranges":[10,20,"inf","inf"],
		"decays":[1,0.8,0.6,0.6,0.6],"velocity":300,"flesh":30,"armor":20,"rof":400,
		"triggerDelay":0,"hitRate":0,"mult":{"head":2,"chest":1,"stomach":0.9,"limbs":0.4},
		"allowedAmmo":["RIP45"],"barrels":[]}]}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidCatalog))
	assert.Contains(t, err.Error(), "hit rate")
}

func TestLoadFile_Errors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))

	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"weapons": [`), 0o644))
	_, err = LoadFile(path)
	assert.Error(t, err)
}
