// Command uavpath plans a drone route across a terrain map, prints it over
// the map and optionally exports the mission.
//
// Usage:
//
//	uavpath [-config file] [-map file | -builtin name | -random] [-start x,y] [-goal x,y]
//	        [-strategy astar|dijkstra|greedy|energy] [-weight w] [-compare]
//	        [-export csv,json,text,binary] [-out dir] [-perf-log file]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/uavpath/drone"
	"github.com/katalvlaran/uavpath/export"
	"github.com/katalvlaran/uavpath/internal/config"
	"github.com/katalvlaran/uavpath/internal/logger"
	"github.com/katalvlaran/uavpath/internal/mission"
	"github.com/katalvlaran/uavpath/mapio"
	"github.com/katalvlaran/uavpath/search"
	"github.com/katalvlaran/uavpath/terrain"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one invocation and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	flags := config.NewFlags("uavpath", stderr)
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg, err := config.Load(flags)
	if err != nil {
		fmt.Fprintf(stderr, "Config error: %v\n", err)
		return 1
	}

	var fileCfg logger.FileConfig
	if cfg.Logging.LogFile != "" {
		fileCfg = logger.DefaultFileConfig(cfg.Logging.LogFile)
	}
	log, err := logger.New(cfg.Logging.Level, fileCfg, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Logger error: %v\n", err)
		return 1
	}
	defer logger.Sync(log)

	if err = plan(cfg, log, stdout); err != nil {
		log.Error("mission failed", zap.Error(err))
		return 1
	}
	return 0
}

func plan(cfg *config.Config, log *zap.Logger, out io.Writer) error {
	g, name, err := loadGrid(cfg)
	if err != nil {
		return err
	}
	start, goal := endpoints(cfg, g)
	log.Info("map loaded",
		zap.String("map", name),
		zap.Int("width", g.Width()),
		zap.Int("height", g.Height()),
	)

	strategy, err := search.ParseStrategy(cfg.Mission.Strategy)
	if err != nil {
		return err
	}
	planner, err := mission.New(g, log,
		mission.WithSimplify(cfg.Mission.Simplify),
		mission.WithEnergyWeight(cfg.Mission.EnergyWeight),
	)
	if err != nil {
		return err
	}

	if cfg.Mission.Compare {
		results, err := planner.Compare(start, goal)
		if err != nil {
			return err
		}
		return printComparison(out, results)
	}

	res, err := planner.Plan(start, goal, strategy)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Map: %s (%dx%d)\n", name, g.Width(), g.Height())
	fmt.Fprintf(out, "Start: %v  Goal: %v  Strategy: %v\n\n", start, goal, strategy)
	fmt.Fprint(out, Render(g, res.Path, start, goal))
	fmt.Fprintln(out)
	printResult(out, res)

	d, err := drone.New(start, cfg.Drone.MaxEnergy)
	if err != nil {
		return err
	}
	if res.Reached {
		if err = planner.Fly(d, res); err != nil {
			fmt.Fprintf(out, "Warning: %v\n", err)
		}
		fmt.Fprintf(out, "Battery: %.1f/%.1f (%.1f%%)\n", d.Energy(), d.MaxEnergy(), d.Percentage())
	}

	report := export.NewReport(g, res.Mission())
	if err = exportReport(cfg.Export, report, log); err != nil {
		return err
	}
	if cfg.Export.PerfLog != "" {
		if err = export.AppendPerfLog(cfg.Export.PerfLog, report.PerfEntry(time.Now())); err != nil {
			return err
		}
		log.Debug("performance logged", zap.String("file", cfg.Export.PerfLog))
	}
	return nil
}

// loadGrid builds the grid from the first configured source: file, builtin, random.
func loadGrid(cfg *config.Config) (*terrain.Grid, string, error) {
	switch {
	case cfg.Map.File != "":
		g, err := mapio.Load(cfg.Map.File)
		return g, cfg.Map.File, err
	case cfg.Map.Builtin != "":
		g, ok := mapio.Builtin(cfg.Map.Builtin)
		if !ok {
			return nil, "", fmt.Errorf("unknown builtin map %q", cfg.Map.Builtin)
		}
		return g, cfg.Map.Builtin, nil
	}

	r := cfg.Map.Random
	g, err := terrain.NewGrid(r.Width, r.Height)
	if err != nil {
		return nil, "", err
	}
	if err = g.GenerateRandom(r.Obstacle, r.Hill, r.Wind, terrain.WithSeed(r.Seed)); err != nil {
		return nil, "", err
	}
	// Generated maps never block their own endpoints.
	s, d := endpoints(cfg, g)
	g.SetKind(s, terrain.Normal)
	g.SetKind(d, terrain.Normal)
	return g, fmt.Sprintf("random(seed=%d)", r.Seed), nil
}

// endpoints resolves start and goal: explicit config, then map markers, then
// the top-left and bottom-right corners.
func endpoints(cfg *config.Config, g *terrain.Grid) (terrain.Point, terrain.Point) {
	start := terrain.Pt(0, 0)
	goal := terrain.Pt(g.Width()-1, g.Height()-1)
	if s, d, ok := mapio.Markers(g); ok {
		start, goal = s, d
	}
	if cfg.Mission.Start != nil {
		start = cfg.Mission.Start.Point()
	}
	if cfg.Mission.Goal != nil {
		goal = cfg.Mission.Goal.Point()
	}
	return start, goal
}

func exportReport(ec config.ExportConfig, r *export.Report, log *zap.Logger) error {
	if len(ec.Formats) == 0 {
		return nil
	}
	if err := os.MkdirAll(ec.Dir, 0o755); err != nil {
		return err
	}
	for _, name := range ec.Formats {
		f, err := export.ParseFormat(name)
		if err != nil {
			return err
		}
		path := filepath.Join(ec.Dir, "mission_"+r.Algorithm+f.Ext())
		if err = writeFile(path, f, r); err != nil {
			return err
		}
		log.Info("exported", zap.Stringer("format", f), zap.String("file", path))
	}
	return nil
}

func writeFile(path string, f export.Format, r *export.Report) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = export.Write(file, f, r); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
