package config

import (
	"flag"
	"io"
	"strings"
)

// Flags holds command-line overrides. Only flags present on the command line
// are applied.
type Flags struct {
	fs  *flag.FlagSet
	set map[string]bool

	config    string
	mapFile   string
	builtin   string
	random    bool
	width     int
	height    int
	seed      int64
	start     string
	goal      string
	strategy  string
	weight    float64
	simplify  bool
	compare   bool
	energy    float64
	formats   string
	exportDir string
	perfLog   string
	debug     bool
	logFile   string
}

// NewFlags registers every flag on a fresh FlagSet named name.
// Usage and parse errors are written to output.
func NewFlags(name string, output io.Writer) *Flags {
	f := &Flags{fs: flag.NewFlagSet(name, flag.ContinueOnError)}
	fs := f.fs
	fs.SetOutput(output)

	fs.StringVar(&f.config, "config", "", "Path to config file")
	fs.StringVar(&f.mapFile, "map", "", "Path to a text map file")
	fs.StringVar(&f.builtin, "builtin", "", "Built-in map: sample or complex")
	fs.BoolVar(&f.random, "random", false, "Generate a random map instead of loading one")
	fs.IntVar(&f.width, "width", 0, "Random map width")
	fs.IntVar(&f.height, "height", 0, "Random map height")
	fs.Int64Var(&f.seed, "seed", 0, "Random map seed (0 = default)")
	fs.StringVar(&f.start, "start", "", "Start cell as x,y")
	fs.StringVar(&f.goal, "goal", "", "Goal cell as x,y")
	fs.StringVar(&f.strategy, "strategy", "", "Search strategy: astar, dijkstra, greedy, energy")
	fs.Float64Var(&f.weight, "weight", 0, "Energy weight for the energy strategy")
	fs.BoolVar(&f.simplify, "simplify", true, "Simplify the path by line of sight")
	fs.BoolVar(&f.compare, "compare", false, "Run every strategy and print a comparison")
	fs.Float64Var(&f.energy, "energy", 0, "Drone battery capacity")
	fs.StringVar(&f.formats, "export", "", "Comma-separated export formats: csv,json,text,binary")
	fs.StringVar(&f.exportDir, "out", "", "Export directory")
	fs.StringVar(&f.perfLog, "perf-log", "", "Append a performance line to this CSV file")
	fs.BoolVar(&f.debug, "debug", false, "Enable debug logging")
	fs.StringVar(&f.logFile, "log-file", "", "Also log to this rotating file")

	return f
}

// Parse parses args, which must not include the program name.
func (f *Flags) Parse(args []string) error {
	if err := f.fs.Parse(args); err != nil {
		return err
	}
	f.set = make(map[string]bool)
	f.fs.Visit(func(fl *flag.Flag) { f.set[fl.Name] = true })
	return nil
}

// ConfigPath returns the explicit config path if provided via -config.
func (f *Flags) ConfigPath() string {
	return f.config
}

// apply copies explicitly set flags onto cfg.
func (f *Flags) apply(cfg *Config) error {
	if f.set["map"] {
		cfg.Map.File = f.mapFile
	}
	if f.set["builtin"] {
		cfg.Map.File = ""
		cfg.Map.Builtin = f.builtin
	}
	if f.random {
		cfg.Map.File = ""
		cfg.Map.Builtin = ""
	}
	if f.set["width"] {
		cfg.Map.Random.Width = f.width
	}
	if f.set["height"] {
		cfg.Map.Random.Height = f.height
	}
	if f.set["seed"] {
		cfg.Map.Random.Seed = f.seed
	}
	if f.set["start"] {
		c, err := ParseCoord(f.start)
		if err != nil {
			return err
		}
		cfg.Mission.Start = &c
	}
	if f.set["goal"] {
		c, err := ParseCoord(f.goal)
		if err != nil {
			return err
		}
		cfg.Mission.Goal = &c
	}
	if f.set["strategy"] {
		cfg.Mission.Strategy = f.strategy
	}
	if f.set["weight"] {
		cfg.Mission.EnergyWeight = f.weight
	}
	if f.set["simplify"] {
		cfg.Mission.Simplify = f.simplify
	}
	if f.set["compare"] {
		cfg.Mission.Compare = f.compare
	}
	if f.set["energy"] {
		cfg.Drone.MaxEnergy = f.energy
	}
	if f.set["export"] {
		cfg.Export.Formats = splitList(f.formats)
	}
	if f.set["out"] {
		cfg.Export.Dir = f.exportDir
	}
	if f.set["perf-log"] {
		cfg.Export.PerfLog = f.perfLog
	}
	if f.debug {
		cfg.Logging.Level = "debug"
	}
	if f.set["log-file"] {
		cfg.Logging.LogFile = f.logFile
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
