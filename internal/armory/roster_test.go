package armory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/ttkbench/internal/catalog"
	"github.com/udisondev/ttkbench/internal/model"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	tiers := []model.AmmoTier{{Tag: "3", Base: 1}, {Tag: "4", Base: 1}, {Tag: "5", Base: 1}}
	cat, err := catalog.New([]model.WeaponEntry{scaledEntry(), flatEntry()}, testMuzzles, tiers)
	require.NoError(t, err)
	return cat
}

func TestRoster_CatalogThenClones(t *testing.T) {
	cat := testCatalog(t)
	reg := NewRegistry()
	e, idx, ok := cat.Lookup("M16A4")
	require.True(t, ok)
	require.True(t, reg.AddClone(idx, e, model.Selection{BarrelIndex: 1, MuzzleIndex: 1}))

	slots := Roster(cat, []model.Selection{{BarrelIndex: 1}}, reg)

	require.Len(t, slots, 3)
	assert.Equal(t, "SR-3M", slots[0].Name)
	assert.Equal(t, 1, slots[0].Selection.BarrelIndex)
	assert.Equal(t, "M16A4", slots[1].Name)
	assert.Equal(t, model.Selection{}, slots[1].Selection, "missing selection means no attachments")
	assert.Equal(t, "M16A4 [Clone 1]", slots[2].Name)
	assert.True(t, slots[2].Clone)
}

func TestComposer_Arm(t *testing.T) {
	cat := testCatalog(t)
	reg := NewRegistry()
	e, idx, _ := cat.Lookup("M16A4")
	require.True(t, reg.AddClone(idx, e, model.Selection{BarrelIndex: 1, MuzzleIndex: 1}))

	armed, sels := NewComposer(cat).Arm(Roster(cat, nil, reg), model.Flags{})

	require.Len(t, armed, 3)
	require.Len(t, sels, 3)
	assert.Equal(t, "M16A4 [Clone 1]", armed[2].Name)
	// clone uses the weapon's own muzzle list
	assert.Equal(t, "Compensator", armed[2].Muzzle)
	assert.Equal(t, model.Range(55), armed[2].Ranges[0])
	assert.Equal(t, model.Range(45), armed[1].Ranges[0])
}

func TestComposer_SharedMuzzles(t *testing.T) {
	cat := testCatalog(t)
	e, _, _ := cat.Lookup("SR-3M")

	armed := NewComposer(cat).Apply(e, model.Selection{MuzzleIndex: 2}, model.Flags{})

	assert.Equal(t, "Advanced", armed.Muzzle)
	assert.InDelta(t, 15*1.18, float64(armed.Ranges[0]), 1e-9)
}

func TestPresetSelections(t *testing.T) {
	cat := testCatalog(t)

	none := PresetSelections(cat, PresetNone)
	assert.Equal(t, []model.Selection{{}, {}}, none)

	longest := PresetSelections(cat, PresetLongest)
	require.Len(t, longest, 2)
	assert.Equal(t, 2, longest[0].BarrelIndex, "1.36 beats 1.18")
	assert.Equal(t, 1, longest[1].BarrelIndex, "+5 flat beats x1.0")
}

func TestParsePreset(t *testing.T) {
	p, err := ParsePreset("")
	require.NoError(t, err)
	assert.Equal(t, PresetNone, p)

	p, err = ParsePreset("longest")
	require.NoError(t, err)
	assert.Equal(t, PresetLongest, p)

	_, err = ParsePreset("shortest")
	assert.Error(t, err)
}

func TestWithNamed(t *testing.T) {
	cat := testCatalog(t)
	base := PresetSelections(cat, PresetLongest)

	sels, err := WithNamed(cat, base, map[string]model.Selection{"M16A4": {BarrelIndex: 2, MuzzleIndex: -1}})
	require.NoError(t, err)
	assert.Equal(t, 2, sels[0].BarrelIndex, "untouched weapons keep the preset")
	assert.Equal(t, model.Selection{BarrelIndex: 2}, sels[1])
	assert.Equal(t, 1, base[1].BarrelIndex, "input not modified")

	_, err = WithNamed(cat, base, map[string]model.Selection{"Nope": {}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownWeapon)
}

func TestRegistry_AddNamed(t *testing.T) {
	cat := testCatalog(t)
	reg := NewRegistry()

	require.NoError(t, reg.AddNamed(cat, "SR-3M", model.Selection{BarrelIndex: 1}))
	assert.ErrorIs(t, reg.AddNamed(cat, "Nope", model.Selection{}), ErrUnknownWeapon)

	views := reg.Clones()
	require.Len(t, views, 1)
	assert.Equal(t, 0, views[0].Origin)
	assert.Equal(t, "SR-3M [Clone 1]", views[0].Name())
}
