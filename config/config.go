package config

import (
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hn2v/transition"
)

// Config is the run configuration for a walk-engine invocation.
type Config struct {
	GraphPath string `yaml:"graph_path"`
	Directed  bool   `yaml:"directed"`

	Mode  string  `yaml:"mode"`
	P     float64 `yaml:"p"`
	Q     float64 `yaml:"q"`
	Gamma float64 `yaml:"gamma"`

	Length   int   `yaml:"length"`
	NumWalks int   `yaml:"num_walks"`
	Window   int   `yaml:"window"`
	Seed     int64 `yaml:"seed"`
	Workers  int   `yaml:"workers"`

	CachePath string `yaml:"cache_path"`
}

// Default returns the baseline configuration every Load starts from before
// YAML and flag overrides are applied.
func Default() Config {
	return Config{
		Mode:     "homogeneous",
		P:        1,
		Q:        1,
		Length:   80,
		NumWalks: 10,
		Window:   5,
		Seed:     1,
		Workers:  0, // 0 means GOMAXPROCS, resolved by package walk
	}
}

// Load reads YAML configuration from path, applied over Default().
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// BindFlags registers command-line overrides for every field onto fs. Each
// flag's default is cfg's current value and pflag's Var-style binding writes
// straight into cfg's fields, so flags the caller does not pass leave cfg
// unchanged and no further copy is needed once fs.Parse returns.
func (cfg *Config) BindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&cfg.GraphPath, "graph", cfg.GraphPath, "path to the edge-list input")
	fs.BoolVar(&cfg.Directed, "directed", cfg.Directed, "treat the edge list as directed")
	fs.StringVar(&cfg.Mode, "mode", cfg.Mode, "homogeneous or heterogeneous")
	fs.Float64Var(&cfg.P, "p", cfg.P, "return-bias parameter")
	fs.Float64Var(&cfg.Q, "q", cfg.Q, "in-out-bias parameter")
	fs.Float64Var(&cfg.Gamma, "gamma", cfg.Gamma, "heterogeneous type-mixing parameter")
	fs.IntVar(&cfg.Length, "length", cfg.Length, "walk length")
	fs.IntVar(&cfg.NumWalks, "num-walks", cfg.NumWalks, "walks per start node (one per epoch)")
	fs.IntVar(&cfg.Window, "window", cfg.Window, "co-occurrence window radius")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "RNG seed")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "worker count (0 = GOMAXPROCS)")
	fs.StringVar(&cfg.CachePath, "cache", cfg.CachePath, "badger cache directory (empty disables caching)")
}

// Validate checks field-level invariants Load and BindFlags cannot enforce
// on their own (cross-field and domain checks).
func (cfg Config) Validate() error {
	if cfg.GraphPath == "" {
		return ErrMissingGraphPath
	}
	if _, err := cfg.ToMode(); err != nil {
		return err
	}
	return nil
}

// ToMode resolves the Mode string into a transition.Mode.
func (cfg Config) ToMode() (transition.Mode, error) {
	switch cfg.Mode {
	case "homogeneous":
		return transition.Homogeneous, nil
	case "heterogeneous":
		return transition.Heterogeneous, nil
	default:
		return 0, ErrInvalidMode
	}
}

// Params extracts the transition.Params this configuration describes.
func (cfg Config) Params() transition.Params {
	return transition.Params{P: cfg.P, Q: cfg.Q, Gamma: cfg.Gamma}
}
