package catalog

import "github.com/udisondev/ttkbench/internal/model"

// weaponDefs is the default roster.
var weaponDefs = []model.WeaponEntry{
	{
		Name:           "SR-3M",
		Category:       model.CategorySMG,
		Ranges:         [4]model.Range{15, 31, model.Infinite, model.Infinite},
		Decays:         [5]float64{1, 0.75, 0.65, 0.65, 0.65},
		Velocity:       330,
		Flesh:          36,
		Armor:          48,
		ROF:            747,
		TriggerDelayMs: 0,
		Multipliers:    model.PartMultipliers{Head: 1.9, Chest: 1, Stomach: 0.9, Limbs: 0.4},
		AllowedAmmo:    []model.AmmoTag{"3", "4", "5"},
		Barrels: []model.Barrel{
			{Name: "Cast Steel Tactical Barrel", RangeMultiplier: 1.18},
		},
	},
	{
		Name:           "Warrior",
		Category:       model.CategorySMG,
		Ranges:         [4]model.Range{20, 27, 40, 55},
		Decays:         [5]float64{1, 0.7, 0.6, 0.5, 0.4},
		Velocity:       500,
		Flesh:          36,
		Armor:          35,
		ROF:            700,
		TriggerDelayMs: 0,
		Multipliers:    model.PartMultipliers{Head: 1.9, Chest: 1, Stomach: 0.9, Limbs: 0.4},
		AllowedAmmo:    []model.AmmoTag{"1", "2", "3", "4", "RIP"},
		Barrels: []model.Barrel{
			{Name: "Beaver Barrel", RangeMultiplier: 1.3},
		},
	},
	{
		Name:           "QCQ171 Boost",
		Category:       model.CategorySMG,
		Ranges:         [4]model.Range{20, 27, 40, 55},
		Decays:         [5]float64{1, 0.75, 0.65, 0.55, 0.45},
		Velocity:       450,
		Flesh:          36,
		Armor:          33,
		ROF:            848,
		TriggerDelayMs: 0,
		Multipliers:    model.PartMultipliers{Head: 1.9, Chest: 1, Stomach: 0.9, Limbs: 0.4},
		AllowedAmmo:    []model.AmmoTag{"1", "2", "3", "4", "RIP"},
		Barrels: []model.Barrel{
			{Name: "Infiltrator Integrated Suppressor", RangeMultiplier: 1.3},
			{Name: "Red Tassel Tactical Long Barrel", RangeMultiplier: 1.3},
		},
	},
	{
		Name:           "QCQ171",
		Category:       model.CategorySMG,
		Ranges:         [4]model.Range{20, 27, 40, 55},
		Decays:         [5]float64{1, 0.75, 0.65, 0.55, 0.45},
		Velocity:       450,
		Flesh:          36,
		Armor:          33,
		ROF:            763,
		TriggerDelayMs: 0,
		Multipliers:    model.PartMultipliers{Head: 1.9, Chest: 1, Stomach: 0.9, Limbs: 0.4},
		AllowedAmmo:    []model.AmmoTag{"1", "2", "3", "4", "5"},
		Barrels: []model.Barrel{
			{Name: "Infiltrator Integrated Suppressor", RangeMultiplier: 1.3},
			{Name: "Red Tassel Tactical Long Barrel", RangeMultiplier: 1.3},
		},
	},
	{
		Name:           "QCQ171 Steady",
		Category:       model.CategorySMG,
		Ranges:         [4]model.Range{27, 36.45, 54, 74.25},
		Decays:         [5]float64{1, 0.75, 0.65, 0.55, 0.45},
		Velocity:       450,
		Flesh:          36,
		Armor:          33,
		ROF:            694,
		TriggerDelayMs: 0,
		Multipliers:    model.PartMultipliers{Head: 2.1, Chest: 1, Stomach: 0.9, Limbs: 0.4},
		AllowedAmmo:    []model.AmmoTag{"1", "2", "3", "4", "5"},
		Barrels: []model.Barrel{
			{Name: "Infiltrator Integrated Suppressor", RangeMultiplier: 1.3},
			{Name: "Red Tassel Tactical Long Barrel", RangeMultiplier: 1.3},
		},
	},
	{
		Name:           "P90",
		Category:       model.CategorySMG,
		Ranges:         [4]model.Range{20, 27, 40, 55},
		Decays:         [5]float64{1, 0.75, 0.65, 0.55, 0.45},
		Velocity:       450,
		Flesh:          32,
		Armor:          35,
		ROF:            898,
		TriggerDelayMs: 0,
		Multipliers:    model.PartMultipliers{Head: 1.9, Chest: 1, Stomach: 0.9, Limbs: 0.4},
		AllowedAmmo:    []model.AmmoTag{"1", "2", "3", "4", "5", "RIP"},
		Barrels: []model.Barrel{
			{Name: "Heavy Assault Long Barrel", RangeMultiplier: 1.3},
		},
	},
	{
		Name:           "Bizon",
		Category:       model.CategorySMG,
		Ranges:         [4]model.Range{20, 27, 40, 55},
		Decays:         [5]float64{1, 0.75, 0.65, 0.55, 0.45},
		Velocity:       500,
		Flesh:          32,
		Armor:          35,
		ROF:            659,
		TriggerDelayMs: 0,
		Multipliers:    model.PartMultipliers{Head: 1.9, Chest: 1, Stomach: 0.9, Limbs: 0.4},
		AllowedAmmo:    []model.AmmoTag{"1", "2", "3", "4", "RIP"},
		Barrels: []model.Barrel{
			{Name: "Blade Extended Barrel", RangeMultiplier: 1.3},
		},
	},
	{
		Name:           "Vector",
		Category:       model.CategorySMG,
		Ranges:         [4]model.Range{20, 27, 40, 55},
		Decays:         [5]float64{1, 0.75, 0.65, 0.55, 0.45},
		Velocity:       500,
		Flesh:          32,
		Armor:          28,
		ROF:            1091,
		TriggerDelayMs: 0,
		Multipliers:    model.PartMultipliers{Head: 1.9, Chest: 1, Stomach: 0.9, Limbs: 0.4},
		AllowedAmmo:    []model.AmmoTag{"1", "2", "3", "4", "RIP45"},
		Barrels: []model.Barrel{
			{Name: "Rail Barrel Kit", RangeMultiplier: 1.06},
			{Name: "Longsword Extended Barrel Kit", RangeMultiplier: 1.3},
		},
	},
	{
		Name:           "MP7",
		Category:       model.CategorySMG,
		Ranges:         [4]model.Range{20, 27, 40, model.Infinite},
		Decays:         [5]float64{1, 0.75, 0.65, 0.55, 0.55},
		Velocity:       450,
		Flesh:          32,
		Armor:          28,
		ROF:            950,
		TriggerDelayMs: 0,
		Multipliers:    model.PartMultipliers{Head: 1.9, Chest: 1, Stomach: 0.9, Limbs: 0.4},
		AllowedAmmo:    []model.AmmoTag{"3", "4", "5"},
		Barrels: []model.Barrel{
			{Name: "Reinforced Barrel Kit", RangeMultiplier: 1.06},
			{Name: "Stinger Long Barrel Kit", RangeMultiplier: 1.3},
		},
	},
	{
		Name:           "MP5",
		Category:       model.CategorySMG,
		Ranges:         [4]model.Range{20, 27, 40, 55},
		Decays:         [5]float64{1, 0.75, 0.65, 0.55, 0.45},
		Velocity:       450,
		Flesh:          30,
		Armor:          32,
		ROF:            820,
		TriggerDelayMs: 0,
		Multipliers:    model.PartMultipliers{Head: 1.9, Chest: 1, Stomach: 0.9, Limbs: 0.4},
		AllowedAmmo:    []model.AmmoTag{"1", "2", "3", "4", "RIP"},
		Barrels: []model.Barrel{
			{Name: "Tactical Barrel Kit", RangeMultiplier: 1.06},
			{Name: "Performance Barrel Kit", RangeMultiplier: 1.06},
			{Name: "Scout Long Barrel Kit", RangeMultiplier: 1.18},
			{Name: "Special Ops Integrated Suppressor", RangeMultiplier: 1.3},
		},
	},
	{
		Name:           "UZI",
		Category:       model.CategorySMG,
		Ranges:         [4]model.Range{20, 27, 40, 55},
		Decays:         [5]float64{1, 0.75, 0.65, 0.55, 0.45},
		Velocity:       450,
		Flesh:          28,
		Armor:          35,
		ROF:            780,
		TriggerDelayMs: 67,
		Multipliers:    model.PartMultipliers{Head: 1.9, Chest: 1, Stomach: 0.9, Limbs: 0.4},
		AllowedAmmo:    []model.AmmoTag{"1", "2", "3", "4", "RIP"},
		Barrels: []model.Barrel{
			{Name: "Quartermaster Long Barrel", RangeMultiplier: 1.06},
			{Name: "Competition Long Barrel", RangeMultiplier: 1.18},
		},
	},
	{
		Name:           "SMG-45",
		Category:       model.CategorySMG,
		Ranges:         [4]model.Range{27, 54, 90, model.Infinite},
		Decays:         [5]float64{1, 0.75, 0.65, 0.55, 0.55},
		Velocity:       500,
		Flesh:          35,
		Armor:          40,
		ROF:            605,
		TriggerDelayMs: 0,
		Multipliers:    model.PartMultipliers{Head: 1.9, Chest: 1, Stomach: 0.9, Limbs: 0.4},
		AllowedAmmo:    []model.AmmoTag{"1", "2", "3", "4", "RIP45"},
		Barrels: []model.Barrel{
			{Name: "Utility Heavy Barrel", RangeMultiplier: 1.06},
			{Name: "Fission Long Barrel", RangeMultiplier: 1.18},
			{Name: "Crossbow Extended Barrel", RangeMultiplier: 1.3},
		},
	},
	{
		Name:           "K416",
		Category:       model.CategoryRifle,
		Ranges:         [4]model.Range{27, 53, model.Infinite, model.Infinite},
		Decays:         [5]float64{1, 0.85, 0.7, 0.7, 0.7},
		Velocity:       575,
		Flesh:          31,
		Armor:          35,
		ROF:            880,
		TriggerDelayMs: 0,
		Multipliers:    model.PartMultipliers{Head: 1.9, Chest: 1, Stomach: 0.9, Limbs: 0.4},
		AllowedAmmo:    []model.AmmoTag{"1", "2", "3", "4", "5"},
		Barrels: []model.Barrel{
			{Name: "Elite Heavy Barrel Kit", RangeMultiplier: 1.06},
			{Name: "A8 Barrel Kit", RangeMultiplier: 1.18},
			{Name: "A8 Long Barrel Kit", RangeMultiplier: 1.3},
		},
	},
	{
		Name:           "AS Val",
		Category:       model.CategoryRifle,
		Ranges:         [4]model.Range{27, 53, model.Infinite, model.Infinite},
		Decays:         [5]float64{1, 0.85, 0.7, 0.7, 0.7},
		Velocity:       330,
		Flesh:          29,
		Armor:          48,
		ROF:            972,
		TriggerDelayMs: 0,
		Multipliers:    model.PartMultipliers{Head: 1.9, Chest: 1, Stomach: 0.9, Limbs: 0.4},
		AllowedAmmo:    []model.AmmoTag{"1", "2", "3", "4", "5"},
		Barrels: []model.Barrel{
			{Name: "VSS Tsunami Long Barrel Kit", RangeMultiplier: 1.3},
		},
	},
	{
		Name:           "Tenglong Boost",
		Category:       model.CategoryRifle,
		Ranges:         [4]model.Range{35, 62, model.Infinite, model.Infinite},
		Decays:         [5]float64{1, 0.9, 0.7, 0.7, 0.7},
		Velocity:       575,
		Flesh:          35,
		Armor:          38,
		ROF:            759,
		TriggerDelayMs: 0,
		Multipliers:    model.PartMultipliers{Head: 2.1, Chest: 1, Stomach: 0.9, Limbs: 0.4},
		AllowedAmmo:    []model.AmmoTag{"2", "3", "4", "5"},
		Barrels: []model.Barrel{
			{Name: "Jiaolong Tactical Long Barrel", RangeMultiplier: 1.3},
		},
	},
	{
		Name:           "Tenglong",
		Category:       model.CategoryRifle,
		Ranges:         [4]model.Range{35, 62, model.Infinite, model.Infinite},
		Decays:         [5]float64{1, 0.9, 0.7, 0.7, 0.7},
		Velocity:       575,
		Flesh:          35,
		Armor:          38,
		ROF:            706,
		TriggerDelayMs: 0,
		Multipliers:    model.PartMultipliers{Head: 2.1, Chest: 1, Stomach: 0.9, Limbs: 0.4},
		AllowedAmmo:    []model.AmmoTag{"2", "3", "4", "5"},
		Barrels: []model.Barrel{
			{Name: "Jiaolong Tactical Long Barrel", RangeMultiplier: 1.3},
		},
	},
	{
		Name:           "Tenglong Steady",
		Category:       model.CategoryRifle,
		Ranges:         [4]model.Range{35, 62, model.Infinite, model.Infinite},
		Decays:         [5]float64{1, 0.9, 0.7, 0.7, 0.7},
		Velocity:       575,
		Flesh:          35,
		Armor:          38,
		ROF:            660,
		TriggerDelayMs: 0,
		Multipliers:    model.PartMultipliers{Head: 1.9, Chest: 1, Stomach: 0.9, Limbs: 0.4},
		AllowedAmmo:    []model.AmmoTag{"2", "3", "4", "5"},
		Barrels: []model.Barrel{
			{Name: "Jiaolong Tactical Long Barrel", RangeMultiplier: 1.3},
		},
	},
	{
		Name:           "K437",
		Category:       model.CategoryRifle,
		Ranges:         [4]model.Range{35, 60, model.Infinite, model.Infinite},
		Decays:         [5]float64{1, 0.9, 0.7, 0.7, 0.7},
		Velocity:       575,
		Flesh:          34,
		Armor:          35,
		ROF:            780,
		TriggerDelayMs: 0,
		Multipliers:    model.PartMultipliers{Head: 1.9, Chest: 1, Stomach: 0.9, Limbs: 0.4},
		AllowedAmmo:    []model.AmmoTag{"1", "2", "3", "4", "5"},
		Barrels: []model.Barrel{
			{Name: "Strike Integrated Suppressor", RangeMultiplier: 1.18},
			{Name: "Lancer Long Barrel Kit", RangeMultiplier: 1.3},
		},
	},
	{
		Name:           "SG552",
		Category:       model.CategoryRifle,
		Ranges:         [4]model.Range{35, 65, model.Infinite, model.Infinite},
		Decays:         [5]float64{1, 0.85, 0.75, 0.75, 0.75},
		Velocity:       575,
		Flesh:          24,
		Armor:          31,
		ROF:            906,
		TriggerDelayMs: 0,
		Multipliers:    model.PartMultipliers{Head: 1.9, Chest: 1, Stomach: 0.9, Limbs: 0.4},
		AllowedAmmo:    []model.AmmoTag{"1", "2", "3", "4", "5"},
		Barrels: []model.Barrel{
			{Name: "Knight Heavy Barrel", RangeMultiplier: 1.18},
		},
	},
	{
		Name:           "M250",
		Category:       model.CategoryLMG,
		Ranges:         [4]model.Range{40, 70, model.Infinite, model.Infinite},
		Decays:         [5]float64{1, 0.85, 0.7, 0.7, 0.7},
		Velocity:       630,
		Flesh:          55,
		Armor:          53,
		ROF:            550,
		TriggerDelayMs: 100,
		Multipliers:    model.PartMultipliers{Head: 1.6, Chest: 1, Stomach: 0.7, Limbs: 0.4},
		AllowedAmmo:    []model.AmmoTag{"1", "2", "3", "4", "5"},
		Barrels: []model.Barrel{
			{Name: "Titanium Long Barrel", RangeMultiplier: 1.3},
		},
	},
	{
		Name:           "PKM",
		Category:       model.CategoryLMG,
		Ranges:         [4]model.Range{40, 70, model.Infinite, model.Infinite},
		Decays:         [5]float64{1, 0.85, 0.7, 0.7, 0.7},
		Velocity:       630,
		Flesh:          45,
		Armor:          42,
		ROF:            669,
		TriggerDelayMs: 50,
		Multipliers:    model.PartMultipliers{Head: 1.9, Chest: 1, Stomach: 0.9, Limbs: 0.4},
		AllowedAmmo:    []model.AmmoTag{"1", "2", "3", "4", "5"},
		Barrels: []model.Barrel{
			{Name: "Horizon Heavy Barrel", RangeMultiplier: 1.3},
		},
	},
	{
		Name:           "AKM",
		Category:       model.CategoryRifle,
		Ranges:         [4]model.Range{40, 70, model.Infinite, model.Infinite},
		Decays:         [5]float64{1, 0.85, 0.7, 0.7, 0.7},
		Velocity:       525,
		Flesh:          40,
		Armor:          42,
		ROF:            600,
		TriggerDelayMs: 0,
		Multipliers:    model.PartMultipliers{Head: 1.9, Chest: 1, Stomach: 0.9, Limbs: 0.4},
		AllowedAmmo:    []model.AmmoTag{"1", "2", "3", "4", "5"},
		Barrels: []model.Barrel{
			{Name: "Performance Barrel Kit", RangeMultiplier: 1.06},
			{Name: "Transcend Long Barrel Kit", RangeMultiplier: 1.18},
			{Name: "Beaver Long Barrel Kit", RangeMultiplier: 1.3},
			{Name: "Utility Long Barrel Kit", RangeMultiplier: 1.3},
		},
	},
	{
		Name:           "SCAR-H",
		Category:       model.CategoryRifle,
		Ranges:         [4]model.Range{40, 70, model.Infinite, model.Infinite},
		Decays:         [5]float64{1, 0.85, 0.7, 0.7, 0.7},
		Velocity:       630,
		Flesh:          40,
		Armor:          40,
		ROF:            585,
		TriggerDelayMs: 0,
		Multipliers:    model.PartMultipliers{Head: 1.9, Chest: 1, Stomach: 0.9, Limbs: 0.4},
		AllowedAmmo:    []model.AmmoTag{"2", "3", "4", "5", "M61"},
		Barrels: []model.Barrel{
			{Name: "Utility Standard Barrel", RangeMultiplier: 1.06},
			{Name: "Beaver Long Barrel", RangeMultiplier: 1.3},
		},
	},
	{
		Name:           "M14",
		Category:       model.CategoryMarksman,
		Ranges:         [4]model.Range{40, 70, model.Infinite, model.Infinite},
		Decays:         [5]float64{1, 0.8, 0.7, 0.7, 0.7},
		Velocity:       575,
		Flesh:          39,
		Armor:          41,
		ROF:            727,
		TriggerDelayMs: 0,
		Multipliers:    model.PartMultipliers{Head: 1.9, Chest: 1, Stomach: 0.9, Limbs: 0.4},
		AllowedAmmo:    []model.AmmoTag{"2", "3", "4", "5", "M61"},
		Barrels: []model.Barrel{
			{Name: "Roamer Standard Barrel", RangeMultiplier: 1.18},
			{Name: "Insight Extended Barrel", RangeMultiplier: 1.3},
		},
	},
	{
		Name:           "PTR-32",
		Category:       model.CategoryRifle,
		Ranges:         [4]model.Range{40, 70, model.Infinite, model.Infinite},
		Decays:         [5]float64{1, 0.85, 0.7, 0.7, 0.7},
		Velocity:       630,
		Flesh:          34,
		Armor:          36,
		ROF:            632,
		TriggerDelayMs: 0,
		Multipliers:    model.PartMultipliers{Head: 1.9, Chest: 1, Stomach: 0.9, Limbs: 0.4},
		AllowedAmmo:    []model.AmmoTag{"1", "2", "3", "4", "5"},
		Barrels: []model.Barrel{
			{Name: "G3 Guardian Standard Barrel Kit", RangeMultiplier: 1.18},
			{Name: "G3 Platform Marksman Barrel Kit", RangeMultiplier: 1.36, ROFMultiplier: 0.87},
		},
	},
	{
		Name:           "AKS-74U",
		Category:       model.CategoryRifle,
		Ranges:         [4]model.Range{40, 70, model.Infinite, model.Infinite},
		Decays:         [5]float64{1, 0.8, 0.6, 0.6, 0.6},
		Velocity:       500,
		Flesh:          34,
		Armor:          36,
		ROF:            533,
		TriggerDelayMs: 0,
		Multipliers:    model.PartMultipliers{Head: 1.9, Chest: 1, Stomach: 0.9, Limbs: 0.4},
		AllowedAmmo:    []model.AmmoTag{"1", "2", "3", "4", "5"},
	},
	{
		Name:           "QJB201 Boost",
		Category:       model.CategoryLMG,
		Ranges:         [4]model.Range{40, 70, model.Infinite, model.Infinite},
		Decays:         [5]float64{1, 0.85, 0.7, 0.7, 0.7},
		Velocity:       575,
		Flesh:          32,
		Armor:          38,
		ROF:            873,
		TriggerDelayMs: 50,
		Multipliers:    model.PartMultipliers{Head: 2.1, Chest: 1, Stomach: 0.9, Limbs: 0.4},
		AllowedAmmo:    []model.AmmoTag{"1", "2", "3", "4", "5"},
		Barrels: []model.Barrel{
			{Name: "Sledgehammer Tactical Barrel", RangeMultiplier: 1.3},
		},
	},
	{
		Name:           "QJB201",
		Category:       model.CategoryLMG,
		Ranges:         [4]model.Range{40, 70, model.Infinite, model.Infinite},
		Decays:         [5]float64{1, 0.85, 0.7, 0.7, 0.7},
		Velocity:       575,
		Flesh:          32,
		Armor:          38,
		ROF:            785,
		TriggerDelayMs: 50,
		Multipliers:    model.PartMultipliers{Head: 2.1, Chest: 1, Stomach: 0.9, Limbs: 0.4},
		AllowedAmmo:    []model.AmmoTag{"1", "2", "3", "4", "5"},
		Barrels: []model.Barrel{
			{Name: "Sledgehammer Tactical Barrel", RangeMultiplier: 1.3},
		},
	},
	{
		Name:           "QJB201 Steady",
		Category:       model.CategoryLMG,
		Ranges:         [4]model.Range{54, 94.5, model.Infinite, model.Infinite},
		Decays:         [5]float64{1, 0.85, 0.7, 0.7, 0.7},
		Velocity:       575,
		Flesh:          32,
		Armor:          38,
		ROF:            714,
		TriggerDelayMs: 50,
		Multipliers:    model.PartMultipliers{Head: 2.1, Chest: 1, Stomach: 0.9, Limbs: 0.4},
		AllowedAmmo:    []model.AmmoTag{"1", "2", "3", "4", "5"},
		Barrels: []model.Barrel{
			{Name: "Sledgehammer Tactical Barrel", RangeMultiplier: 1.3},
		},
	},
	{
		Name:           "M249",
		Category:       model.CategoryLMG,
		Ranges:         [4]model.Range{40, 70, model.Infinite, model.Infinite},
		Decays:         [5]float64{1, 0.85, 0.7, 0.7, 0.7},
		Velocity:       575,
		Flesh:          30,
		Armor:          38,
		ROF:            858,
		TriggerDelayMs: 50,
		Multipliers:    model.PartMultipliers{Head: 1.9, Chest: 1, Stomach: 0.9, Limbs: 0.4},
		AllowedAmmo:    []model.AmmoTag{"1", "2", "3", "4", "5"},
		Barrels: []model.Barrel{
			{Name: "Rhino Long Barrel", RangeMultiplier: 1.3},
		},
	},
	{
		Name:           "AK-12",
		Category:       model.CategoryRifle,
		Ranges:         [4]model.Range{40, 70, model.Infinite, model.Infinite},
		Decays:         [5]float64{1, 0.9, 0.75, 0.75, 0.75},
		Velocity:       575,
		Flesh:          29,
		Armor:          41,
		ROF:            735,
		TriggerDelayMs: 0,
		Multipliers:    model.PartMultipliers{Head: 1.9, Chest: 1, Stomach: 0.9, Limbs: 0.4},
		AllowedAmmo:    []model.AmmoTag{"1", "2", "3", "4", "5"},
		Barrels: []model.Barrel{
			{Name: "Elite Bipod Long Barrel", RangeMultiplier: 1.3},
		},
	},
	{
		Name:           "M4A1",
		Category:       model.CategoryRifle,
		Ranges:         [4]model.Range{40, 70, model.Infinite, model.Infinite},
		Decays:         [5]float64{1, 0.85, 0.7, 0.7, 0.7},
		Velocity:       575,
		Flesh:          29,
		Armor:          32,
		ROF:            800,
		TriggerDelayMs: 0,
		Multipliers:    model.PartMultipliers{Head: 1.9, Chest: 1, Stomach: 0.9, Limbs: 0.4},
		AllowedAmmo:    []model.AmmoTag{"1", "2", "3", "4", "5"},
		Barrels: []model.Barrel{
			{Name: "AR Special Ops Suppressor Kit", RangeMultiplier: 1.18},
			{Name: "AR Trench Standard Barrel Kit", RangeMultiplier: 1.18},
			{Name: "AR Carbon Fiber Barrel Kit", RangeMultiplier: 1.18},
			{Name: "AR Trench Standard Barrel Kit II", RangeMultiplier: 1.3},
		},
	},
	{
		Name:           "CAR-15",
		Category:       model.CategoryRifle,
		Ranges:         [4]model.Range{40, 70, model.Infinite, model.Infinite},
		Decays:         [5]float64{1, 0.85, 0.7, 0.7, 0.7},
		Velocity:       575,
		Flesh:          27,
		Armor:          32,
		ROF:            632,
		TriggerDelayMs: 0,
		Multipliers:    model.PartMultipliers{Head: 1.9, Chest: 1, Stomach: 0.9, Limbs: 0.4},
		AllowedAmmo:    []model.AmmoTag{"1", "2", "3", "4", "5"},
		Barrels: []model.Barrel{
			{Name: "AR Special Ops Suppressor Kit", RangeMultiplier: 1.18},
			{Name: "AR Trench Standard Barrel Kit", RangeMultiplier: 1.18},
			{Name: "AR Carbon Fiber Barrel Kit", RangeMultiplier: 1.18},
			{Name: "AR Trench Standard Barrel Kit II", RangeMultiplier: 1.3},
		},
	},
	{
		Name:           "M7",
		Category:       model.CategoryRifle,
		Ranges:         [4]model.Range{50, 85, model.Infinite, model.Infinite},
		Decays:         [5]float64{1, 0.9, 0.8, 0.8, 0.8},
		Velocity:       630,
		Flesh:          38,
		Armor:          40,
		ROF:            649,
		TriggerDelayMs: 0,
		Multipliers:    model.PartMultipliers{Head: 1.9, Chest: 1, Stomach: 1, Limbs: 0.4},
		AllowedAmmo:    []model.AmmoTag{"4", "5", "AP"},
		Barrels: []model.Barrel{
			{Name: "Utility Long Barrel Kit", RangeMultiplier: 1.18},
			{Name: "Levee Wind Extended Barrel Kit", RangeMultiplier: 1.3, DamageBonus: 2, ArmorDamageBonus: 2},
			{Name: "Lizard Short Barrel", RangeMultiplier: 0.7},
		},
	},
	{
		Name:           "ASh-12",
		Category:       model.CategoryRifle,
		Ranges:         [4]model.Range{55, 90, model.Infinite, model.Infinite},
		Decays:         [5]float64{1, 0.9, 0.85, 0.85, 0.85},
		Velocity:       340,
		Flesh:          56,
		Armor:          55,
		ROF:            500,
		TriggerDelayMs: 0,
		Multipliers:    model.PartMultipliers{Head: 1.6, Chest: 1, Stomach: 0.9, Limbs: 0.45},
		AllowedAmmo:    []model.AmmoTag{"3", "4", "5", "Double"},
		Barrels: []model.Barrel{
			{Name: "Annihilator Precision Long Barrel", RangeMultiplier: 1.3},
		},
	},
	{
		Name:           "G3",
		Category:       model.CategoryRifle,
		Ranges:         [4]model.Range{55, 90, model.Infinite, model.Infinite},
		Decays:         [5]float64{1, 0.9, 0.8, 0.8, 0.8},
		Velocity:       630,
		Flesh:          39,
		Armor:          42,
		ROF:            533,
		TriggerDelayMs: 0,
		Multipliers:    model.PartMultipliers{Head: 1.9, Chest: 1, Stomach: 0.9, Limbs: 0.4},
		AllowedAmmo:    []model.AmmoTag{"1", "2", "3", "4", "5"},
		Barrels: []model.Barrel{
			{Name: "G3 Guardian Standard Barrel Kit", RangeMultiplier: 1.18},
			{Name: "G3 Reinforced Long Barrel Kit", RangeMultiplier: 1.3},
			{Name: "G3 Platform Marksman Barrel Kit", RangeMultiplier: 1.36, ROFMultiplier: 0.87},
		},
	},
	{
		Name:           "AUG",
		Category:       model.CategoryRifle,
		Ranges:         [4]model.Range{55, 90, model.Infinite, model.Infinite},
		Decays:         [5]float64{1, 0.9, 0.8, 0.8, 0.8},
		Velocity:       575,
		Flesh:          32,
		Armor:          35,
		ROF:            679,
		TriggerDelayMs: 0,
		Multipliers:    model.PartMultipliers{Head: 2, Chest: 1.1, Stomach: 0.9, Limbs: 0.4},
		AllowedAmmo:    []model.AmmoTag{"1", "2", "3", "4", "5"},
		Barrels: []model.Barrel{
			{Name: "Utility Integrated 3x Scope Barrel", RangeMultiplier: 1.06},
			{Name: "Dawn Zero Integrated Suppressor", RangeMultiplier: 1.18},
			{Name: "Elite Bipod Long Barrel", RangeMultiplier: 1.3},
		},
	},
	{
		Name:           "KC17",
		Category:       model.CategoryRifle,
		Ranges:         [4]model.Range{55, 90, model.Infinite, model.Infinite},
		Decays:         [5]float64{1, 0.85, 0.7, 0.7, 0.7},
		Velocity:       575,
		Flesh:          30,
		Armor:          48,
		ROF:            740,
		TriggerDelayMs: 0,
		Multipliers:    model.PartMultipliers{Head: 1.9, Chest: 1, Stomach: 0.9, Limbs: 0.4},
		AllowedAmmo:    []model.AmmoTag{"1", "2", "3", "4", "5"},
		Barrels: []model.Barrel{
			{Name: "Shadow Dancer Suppressor", RangeMultiplier: 1.18},
			{Name: "Longsword Barrel", RangeMultiplier: 1.3},
		},
	},
	{
		Name:           "QBZ95-1",
		Category:       model.CategoryRifle,
		Ranges:         [4]model.Range{55, 90, model.Infinite, model.Infinite},
		Decays:         [5]float64{1, 0.85, 0.7, 0.7, 0.7},
		Velocity:       575,
		Flesh:          28,
		Armor:          42,
		ROF:            679,
		TriggerDelayMs: 0,
		Multipliers:    model.PartMultipliers{Head: 2.3, Chest: 1, Stomach: 0.9, Limbs: 0.4},
		AllowedAmmo:    []model.AmmoTag{"2", "3", "4", "5"},
		Barrels: []model.Barrel{
			{Name: "Tactical Barrel", RangeMultiplier: 1.06},
			{Name: "Longbow Barrel Kit", RangeMultiplier: 1.3},
		},
	},
	{
		Name:           "G18",
		Category:       model.CategoryPistol,
		Ranges:         [4]model.Range{10, 20, 30, model.Infinite},
		Decays:         [5]float64{1, 0.85, 0.7, 0.6, 0.6},
		Velocity:       400,
		Flesh:          23,
		Armor:          16,
		ROF:            1172,
		TriggerDelayMs: 0,
		Multipliers:    model.PartMultipliers{Head: 1.9, Chest: 1, Stomach: 0.9, Limbs: 0.4},
		AllowedAmmo:    []model.AmmoTag{"1", "2", "3", "4", "RIP"},
		Barrels: []model.Barrel{
			{Name: "Impact Long Barrel", RangeMultiplier: 1.3},
		},
	},
	{
		Name:           "M16A4",
		Category:       model.CategoryRifle,
		Ranges:         [4]model.Range{45, 75, model.Infinite, model.Infinite},
		Decays:         [5]float64{1, 0.85, 0.7, 0.7, 0.7},
		Velocity:       600,
		Flesh:          33,
		Armor:          36,
		ROF:            620,
		TriggerDelayMs: 40,
		Multipliers:    model.PartMultipliers{Head: 1.9, Chest: 1, Stomach: 0.9, Limbs: 0.4},
		AllowedAmmo:    []model.AmmoTag{"2", "3", "4", "5"},
		Barrels: []model.Barrel{
			{Name: "Carbine Gas Block", RangeAdd: 5, VelocityAdd: 30, TriggerDelayDeltaMs: -20, PartBonus: model.PartMultipliers{Head: 0.1}},
			{Name: "Heavy Match Barrel", RangeMultiplier: 1.18, ROFMultiplier: 0.95, DamageBonus: 1, ArmorDamageBonus: 1},
		},
		Muzzles: []model.Muzzle{
			{Name: "None"},
			{Name: "Compensator", RangeBonus: 0.1},
		},
		Burst: &model.BurstFire{Count: 3, InternalROF: 900, GapSeconds: 0.2},
	},
}
