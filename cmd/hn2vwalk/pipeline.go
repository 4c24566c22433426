package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/hn2v/cache"
	"github.com/katalvlaran/hn2v/config"
	"github.com/katalvlaran/hn2v/graph"
	"github.com/katalvlaran/hn2v/ingest/edgelist"
	"github.com/katalvlaran/hn2v/transition"
	"github.com/katalvlaran/hn2v/walk"
)

// pipeline is the assembled set of layers a run operates on: the graph, its
// transition tables (possibly served from cache), and a ready Driver.
type pipeline struct {
	graph *graph.Graph
	tbl   *transition.Tables
	drv   *walk.Driver
}

// buildPipeline reads cfg.GraphPath, builds the graph, and builds or loads
// transition tables, logging structured diagnostics at each stage rather
// than writing them into the returned value — package walk and package
// transition return Diagnostics to their direct caller instead of logging
// process-wide themselves.
func buildPipeline(ctx context.Context, cfg config.Config, logger *slog.Logger) (*pipeline, error) {
	edges, types, err := edgelist.ReadFile(cfg.GraphPath)
	if err != nil {
		return nil, fmt.Errorf("hn2vwalk: read graph: %w", err)
	}

	opts := []graph.Option{graph.WithTypeFunc(edgelist.TypeFunc(types))}
	if cfg.Directed {
		opts = append(opts, graph.WithDirected())
	}
	g, err := graph.Build(edges, opts...)
	if err != nil {
		return nil, fmt.Errorf("hn2vwalk: build graph: %w", err)
	}
	logger.Info("graph built", "nodes", g.N(), "hash", g.Hash())

	mode, err := cfg.ToMode()
	if err != nil {
		return nil, fmt.Errorf("hn2vwalk: resolve mode: %w", err)
	}
	params := cfg.Params()

	store := cache.OpenDisabled()
	if cfg.CachePath != "" {
		store, err = cache.Open(cfg.CachePath)
		if err != nil {
			return nil, fmt.Errorf("hn2vwalk: open cache: %w", err)
		}
	}
	defer store.Close()

	key := cache.Key(g.Hash(), mode, params)
	tbl, cacheErr := store.Get(key)
	if cacheErr == nil {
		logger.Info("transition tables loaded from cache", "key", string(key))
	} else {
		var diag transition.Diagnostics
		tbl, diag, err = transition.Build(ctx, g, mode, params)
		if err != nil {
			return nil, fmt.Errorf("hn2vwalk: build transition tables: %w", err)
		}
		logger.Info("transition tables built", "nodesBuilt", diag.NodesBuilt, "edgesBuilt", diag.EdgesBuilt, "trapsSkipped", diag.TrapsSkipped, "duration", diag.Duration)
		if putErr := store.Put(key, tbl); putErr != nil {
			logger.Warn("failed to cache transition tables", "error", putErr)
		}
	}

	drv, err := walk.NewDriver(g, tbl)
	if err != nil {
		return nil, fmt.Errorf("hn2vwalk: new driver: %w", err)
	}
	return &pipeline{graph: g, tbl: tbl, drv: drv}, nil
}
