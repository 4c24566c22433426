package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hn2v/config"
)

func newCoocCmd() *cobra.Command {
	cfg := config.Default()
	var configPath string

	cmd := &cobra.Command{
		Use:   "cooc",
		Short: "Build a graph and emit a co-occurrence table from its walks",
		RunE: func(cmd *cobra.Command, args []string) error {
			resolved, err := resolveConfig(configPath, cmd.Flags(), cfg)
			if err != nil {
				return err
			}

			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))
			ctx := cmd.Context()

			pl, err := buildPipeline(ctx, resolved, logger)
			if err != nil {
				return err
			}

			starts := make([]int32, pl.graph.N())
			for i := range starts {
				starts[i] = int32(i)
			}

			central, contextIDs, freq, err := pl.drv.Cooccurrence(ctx, starts, resolved.NumWalks, resolved.Length, resolved.Window, resolved.Seed, resolved.Workers)
			if err != nil {
				return fmt.Errorf("hn2vwalk: cooccurrence: %w", err)
			}

			out := cmd.OutOrStdout()
			for i := range central {
				fmt.Fprintf(out, "%d,%d,%d\n", central[i], contextIDs[i], freq[i])
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to a YAML configuration file")
	cfg.BindFlags(cmd.Flags())
	return cmd
}
