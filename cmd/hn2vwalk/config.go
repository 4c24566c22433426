package main

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/katalvlaran/hn2v/config"
)

// resolveConfig layers configuration: hardcoded defaults, then an optional
// YAML file, then whichever flags the caller actually passed on the command
// line. Flags left untouched never shadow a value the YAML file set.
func resolveConfig(configPath string, fs *pflag.FlagSet, cfg config.Config) (config.Config, error) {
	if configPath == "" {
		return cfg, cfg.Validate()
	}

	fileCfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("hn2vwalk: load config: %w", err)
	}

	merged := fileCfg
	fs.Visit(func(f *pflag.Flag) {
		applyFlagOverride(&merged, cfg, f.Name)
	})

	if err := merged.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("hn2vwalk: invalid config: %w", err)
	}
	return merged, nil
}

// applyFlagOverride copies field name from the flag-parsed cfg onto merged,
// for every flag cfg.BindFlags registers. Used only for flags the user
// explicitly passed (see pflag.FlagSet.Visit), so a YAML-supplied value
// never loses to an untouched flag default.
func applyFlagOverride(merged *config.Config, cfg config.Config, name string) {
	switch name {
	case "graph":
		merged.GraphPath = cfg.GraphPath
	case "directed":
		merged.Directed = cfg.Directed
	case "mode":
		merged.Mode = cfg.Mode
	case "p":
		merged.P = cfg.P
	case "q":
		merged.Q = cfg.Q
	case "gamma":
		merged.Gamma = cfg.Gamma
	case "length":
		merged.Length = cfg.Length
	case "num-walks":
		merged.NumWalks = cfg.NumWalks
	case "window":
		merged.Window = cfg.Window
	case "seed":
		merged.Seed = cfg.Seed
	case "workers":
		merged.Workers = cfg.Workers
	case "cache":
		merged.CachePath = cfg.CachePath
	}
}
