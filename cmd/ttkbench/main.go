package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/udisondev/ttkbench/internal/armory"
	"github.com/udisondev/ttkbench/internal/catalog"
	"github.com/udisondev/ttkbench/internal/config"
	"github.com/udisondev/ttkbench/internal/model"
	"github.com/udisondev/ttkbench/internal/report"
	"github.com/udisondev/ttkbench/internal/sim"
	"github.com/udisondev/ttkbench/internal/validate"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

// flags holds the command line. Zero values mean "use the config".
type flags struct {
	config      string
	catalog     string
	format      string
	unit        string
	curve       bool
	breakdown   bool
	dumpCatalog bool
	previous    string
	trials      int
	seed        uint64
	workers     int
	ammo        string
	distance    float64
	set         map[string]bool
}

func parseFlags(args []string) (flags, error) {
	var f flags
	fs := flag.NewFlagSet("ttkbench", flag.ContinueOnError)
	fs.StringVar(&f.config, "config", "", "config file (default $"+config.EnvPath+" or "+config.DefaultPath+")")
	fs.StringVar(&f.catalog, "catalog", "", "JSON weapon catalog replacing the built-in one")
	fs.StringVar(&f.format, "format", "auto", "output format: auto, table or json")
	fs.StringVar(&f.unit, "unit", "ms", "time unit for tables: ms, s or min")
	fs.BoolVar(&f.curve, "curve", false, "compute distance curves instead of a single-distance ranking")
	fs.BoolVar(&f.breakdown, "breakdown", false, "show the time-to-kill breakdown columns")
	fs.BoolVar(&f.dumpCatalog, "dump-catalog", false, "write the catalog as JSON and exit")
	fs.StringVar(&f.previous, "previous", "", "JSON ranking of an earlier run to report rank changes against")
	fs.IntVar(&f.trials, "trials", 0, "trials per weapon")
	fs.Uint64Var(&f.seed, "seed", 0, "random seed (32-bit)")
	fs.IntVar(&f.workers, "workers", 0, "parallel workers")
	fs.StringVar(&f.ammo, "ammo", "", "global ammo tier")
	fs.Float64Var(&f.distance, "distance", 0, "target distance in meters")
	if err := fs.Parse(args); err != nil {
		return f, err
	}

	if f.seed > math.MaxUint32 {
		return f, fmt.Errorf("seed %d out of range: must fit in 32 bits", f.seed)
	}

	f.set = make(map[string]bool)
	fs.Visit(func(fl *flag.Flag) { f.set[fl.Name] = true })
	return f, nil
}

// apply overrides cfg with the flags given explicitly.
func (f flags) apply(cfg *config.Config) {
	if f.catalog != "" {
		cfg.Catalog.Path = f.catalog
	}
	if f.set["trials"] {
		cfg.Simulation.Trials = f.trials
	}
	if f.set["seed"] {
		cfg.Simulation.Seed = uint32(f.seed)
	}
	if f.set["workers"] {
		cfg.Simulation.Workers = f.workers
	}
	if f.set["ammo"] {
		cfg.Request.Ammo = f.ammo
	}
	if f.set["distance"] {
		cfg.Request.Distance = f.distance
	}
}

func run(ctx context.Context, args []string, stdout *os.File) error {
	f, err := parseFlags(args)
	if err != nil {
		return err
	}

	cfgPath := f.config
	if cfgPath == "" {
		cfgPath = config.Path(config.DefaultPath)
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	f.apply(&cfg)

	closeLog := setupLogging(cfg.Log)
	defer closeLog()
	slog.Info("ttkbench starting", "config", cfgPath, "log_level", cfg.Log.Level)

	cat, err := loadCatalog(cfg.Catalog.Path)
	if err != nil {
		return err
	}
	if f.dumpCatalog {
		return cat.Write(stdout)
	}

	unit, err := report.ParseTimeUnit(f.unit)
	if err != nil {
		return err
	}
	format, err := resolveFormat(f.format, stdout)
	if err != nil {
		return err
	}

	req := cfg.Request.Model()
	if err := validate.Request(req, cat); err != nil {
		return err
	}

	armed, sels, err := buildRoster(cat, cfg.Request)
	if err != nil {
		return err
	}
	names := make([]string, len(armed))
	for i := range armed {
		names[i] = armed[i].Name
	}
	if err := validate.Selections(sels, names, cat); err != nil {
		return err
	}

	opts := cfg.Simulation.Options()
	opts.Memo = cfg.Simulation.Memo()
	engine := sim.NewEngine(cat, opts)
	opts = engine.Options()

	if f.curve {
		set, err := engine.Curves(ctx, armed, sels, req, cfg.Curve.Options())
		if err != nil {
			return err
		}
		if format == "json" {
			return report.WriteJSON(stdout, report.CurveDocument{Request: req, Trials: opts.Trials, Seed: opts.Seed, CurveSet: set})
		}
		report.WriteCurveTable(stdout, set, nil, unit)
		fmt.Fprintln(stdout, report.Summary(len(set.Curves), opts.Trials, set.Excluded))
		return nil
	}

	ranking, err := engine.Rank(ctx, armed, sels, req)
	if err != nil {
		return err
	}
	changes, err := rankChanges(f.previous, ranking)
	if err != nil {
		return err
	}

	if format == "json" {
		return report.WriteJSON(stdout, report.RankingDocument{
			Request:     req,
			Trials:      opts.Trials,
			Seed:        opts.Seed,
			Stats:       ranking.Stats,
			Excluded:    ranking.Excluded,
			RankChanges: changes,
		})
	}
	report.WriteTable(stdout, ranking, report.TableOptions{Unit: unit, Changes: changes, Breakdown: f.breakdown})
	report.WriteSummary(stdout, ranking, opts.Trials)
	return nil
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}
	return catalog.LoadFile(path)
}

// buildRoster arms the catalog with the configured preset, per-weapon
// selections and clones.
func buildRoster(cat *catalog.Catalog, r config.Request) ([]model.ArmedWeapon, []model.Selection, error) {
	preset, err := armory.ParsePreset(r.BarrelPreset)
	if err != nil {
		return nil, nil, err
	}
	sels, err := armory.WithNamed(cat, armory.PresetSelections(cat, preset), r.Selections)
	if err != nil {
		return nil, nil, err
	}

	clones := armory.NewRegistry()
	for _, c := range r.Clones {
		if err := clones.AddNamed(cat, c.Weapon, c.Selection); err != nil {
			return nil, nil, err
		}
	}

	armed, armedSels := armory.NewComposer(cat).Arm(armory.Roster(cat, sels, clones), r.Flags)
	return armed, armedSels, nil
}

// rankChanges compares ranking with the one stored at path; nil without a path.
func rankChanges(path string, ranking sim.Ranking) ([]report.Change, error) {
	if path == "" {
		return nil, nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening previous ranking: %w", err)
	}
	defer fh.Close()

	prev, err := report.ReadRanking(fh)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	tracker := report.NewRankTracker()
	tracker.Update(prev.Stats)
	return tracker.Update(ranking.Stats), nil
}

// resolveFormat maps "auto" to table on a terminal and json otherwise.
func resolveFormat(format string, out *os.File) (string, error) {
	switch format {
	case "table", "json":
		return format, nil
	case "auto", "":
		if term.IsTerminal(int(out.Fd())) {
			return "table", nil
		}
		return "json", nil
	default:
		return "", fmt.Errorf("unknown format %q", format)
	}
}

// setupLogging installs the default slog logger and returns a closer for
// the log file, if any.
func setupLogging(cfg config.Log) func() {
	var w io.Writer = os.Stderr
	closer := func() {}
	if cfg.File != "" {
		lj := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   cfg.Compress,
		}
		w = lj
		closer = func() { _ = lj.Close() }
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Level),
	})))
	return closer
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
