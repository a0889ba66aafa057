package catalog

import "github.com/udisondev/ttkbench/internal/model"

// ammoDefs is the ammo-vs-armor table; Armor[i] is armor level i+1.
var ammoDefs = []model.AmmoTier{
	{Tag: "1", Base: 1.1, Armor: [6]model.ArmorCoefficient{
		{0.6, 0.5}, {0.6, 0}, {0.4, 0}, {0.3, 0}, {0.2, 0}, {0.2, 0},
	}},
	{Tag: "2", Base: 1.1, Armor: [6]model.ArmorCoefficient{
		{0.7, 0.75}, {0.7, 0.5}, {0.7, 0}, {0.5, 0}, {0.4, 0}, {0.3, 0},
	}},
	{Tag: "3", Base: 1.0, Armor: [6]model.ArmorCoefficient{
		{0.9, 1}, {0.9, 0.75}, {0.9, 0.5}, {0.9, 0}, {0.5, 0}, {0.4, 0},
	}},
	{Tag: "4", Base: 1.0, Armor: [6]model.ArmorCoefficient{
		{1, 1}, {1, 1}, {1, 0.75}, {1, 0.5}, {1, 0}, {0.6, 0},
	}},
	{Tag: "5", Base: 1.0, Armor: [6]model.ArmorCoefficient{
		{1.1, 1}, {1.1, 1}, {1.1, 1}, {1.1, 0.75}, {1.1, 0.5}, {1.1, 0},
	}},
	{Tag: "M61", Base: 1.0, Armor: [6]model.ArmorCoefficient{
		{1.2, 1}, {1.2, 1}, {1.2, 1}, {1.2, 1}, {1.2, 0.75}, {1.2, 0.5},
	}},
	{Tag: "AP", Base: 1.0, Armor: [6]model.ArmorCoefficient{
		{1.1, 1}, {1.1, 1}, {1.1, 1}, {1.1, 1}, {1.1, 0.75}, {1.1, 0.5},
	}},
	{Tag: "RIP45", Base: 1.35, Armor: [6]model.ArmorCoefficient{
		{0.4, 0}, {0.3, 0}, {0.2, 0}, {0.2, 0}, {0.2, 0}, {0.2, 0},
	}},
	{Tag: "RIP", Base: 1.4, Armor: [6]model.ArmorCoefficient{
		{0.4, 0}, {0.3, 0}, {0.2, 0}, {0.2, 0}, {0.2, 0}, {0.2, 0},
	}},
	{Tag: "Double", Base: 1.0, Armor: [6]model.ArmorCoefficient{
		{1, 1}, {1, 1}, {1, 0.75}, {1, 0.5}, {1, 0.4}, {1, 0.3},
	}},
}

// muzzleDefs is the shared muzzle list for weapons without their own.
// Index 0 is "no muzzle".
var muzzleDefs = []model.Muzzle{
	{Name: "None", RangeBonus: 0},
	{Name: "Deadsilence", RangeBonus: 0.24},
	{Name: "Advanced/Whisper/Valor", RangeBonus: 0.18},
	{Name: "SMG Echo Suppressor", RangeBonus: 0.30},
}
