package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/ttkbench/internal/model"
	"github.com/udisondev/ttkbench/internal/rng"
	"github.com/udisondev/ttkbench/internal/sim"
)

// DefaultPath is read when neither -config nor TTKBENCH_CONFIG is given.
const DefaultPath = "config/ttkbench.yaml"

// EnvPath overrides the config path.
const EnvPath = "TTKBENCH_CONFIG"

// Config holds all ttkbench settings.
type Config struct {
	Log        Log        `yaml:"log"`
	Simulation Simulation `yaml:"simulation"`
	Request    Request    `yaml:"request"`
	Curve      Curve      `yaml:"curve"`
	Catalog    Catalog    `yaml:"catalog"`
}

// Log configures slog output. An empty File means stderr.
type Log struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// Simulation tunes the engine.
type Simulation struct {
	Trials           int           `yaml:"trials"`
	Seed             uint32        `yaml:"seed"`
	Workers          int           `yaml:"workers"`
	CancelCheckEvery int           `yaml:"cancel_check_every"`
	CacheTTL         time.Duration `yaml:"cache_ttl"` // 0 disables the memo
	CacheMaxKeys     int           `yaml:"cache_max_keys"`
}

// Request is the default simulation request.
type Request struct {
	Ammo           string               `yaml:"ammo"`
	ArmorLevel     int                  `yaml:"armor_level"`
	ArmorValue     float64              `yaml:"armor_value"`
	HelmetLevel    int                  `yaml:"helmet_level"`
	HelmetValue    float64              `yaml:"helmet_value"`
	Distance       float64              `yaml:"distance"`
	Health         float64              `yaml:"health"`
	HitProbability model.HitProbability `yaml:"hit_probability"`
	HitRate        float64              `yaml:"hit_rate"`
	Flags          model.Flags          `yaml:"flags"`

	// BarrelPreset is "none" or "longest".
	BarrelPreset string `yaml:"barrel_preset"`
	// Selections override the preset per weapon name.
	Selections map[string]model.Selection `yaml:"selections"`
	Clones     []Clone                    `yaml:"clones"`
}

// Clone describes a weapon clone created at startup.
type Clone struct {
	Weapon    string          `yaml:"weapon"`
	Selection model.Selection `yaml:",inline"`
}

// Curve configures distance curves.
type Curve struct {
	MaxDistance float64 `yaml:"max_distance"`
	Cutoff      float64 `yaml:"cutoff"`
	Step        float64 `yaml:"step"`
}

// Catalog optionally replaces the built-in catalog with a JSON file.
type Catalog struct {
	Path string `yaml:"path"`
}

// Default returns Config with the stock request and engine defaults.
func Default() Config {
	return Config{
		Log: Log{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
		Simulation: Simulation{
			Trials:           sim.DefaultTrials,
			Seed:             rng.DefaultSeed,
			Workers:          1,
			CancelCheckEvery: sim.DefaultCheckEvery,
			CacheTTL:         10 * time.Minute,
			CacheMaxKeys:     4096,
		},
		Request: Request{
			Ammo:           "4",
			ArmorLevel:     4,
			ArmorValue:     80,
			HelmetLevel:    4,
			HelmetValue:    35,
			Distance:       30,
			Health:         model.DefaultHealth,
			HitProbability: model.HitProbability{Head: 0.18, Chest: 0.30, Stomach: 0.22, Limbs: 0.30},
			HitRate:        0.85,
			Flags:          model.Flags{TriggerDelay: true, VelocityBonus: true},
			BarrelPreset:   "longest",
		},
		Curve: Curve{
			MaxDistance: sim.DefaultMaxDistance,
			Cutoff:      sim.DefaultCutoff,
			Step:        sim.DefaultStep,
		},
	}
}

// Path returns the config path: TTKBENCH_CONFIG if set, else fallback.
func Path(fallback string) string {
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	return fallback
}

// Load reads config from a YAML file. Keys absent from the file keep their
// defaults; a missing file yields Default().
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}

// Model converts r into an engine request.
func (r Request) Model() model.Request {
	return model.Request{
		Ammo:           model.AmmoTag(r.Ammo),
		ArmorLevel:     r.ArmorLevel,
		ArmorValue:     r.ArmorValue,
		HelmetLevel:    r.HelmetLevel,
		HelmetValue:    r.HelmetValue,
		Distance:       r.Distance,
		HitProbability: r.HitProbability,
		HitRate:        r.HitRate,
		Health:         r.Health,
		Flags:          r.Flags,
	}
}

// Options converts s into engine options. The memo is not attached.
func (s Simulation) Options() sim.Options {
	return sim.Options{
		Trials:     s.Trials,
		Seed:       s.Seed,
		Workers:    s.Workers,
		CheckEvery: s.CancelCheckEvery,
	}
}

// Memo builds the result memo, or nil when CacheTTL is 0.
func (s Simulation) Memo() *sim.Memo {
	if s.CacheTTL <= 0 {
		return nil
	}
	return sim.NewMemo(s.CacheMaxKeys, s.CacheTTL)
}

// Options converts c into curve options.
func (c Curve) Options() sim.CurveOptions {
	return sim.CurveOptions{MaxDistance: c.MaxDistance, Cutoff: c.Cutoff, Step: c.Step}
}
