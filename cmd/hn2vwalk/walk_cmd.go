package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hn2v/config"
)

func newWalkCmd() *cobra.Command {
	cfg := config.Default()
	var configPath string

	cmd := &cobra.Command{
		Use:   "walk",
		Short: "Build a graph and emit biased random walks",
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

			result, err := pl.drv.Walks(ctx, starts, resolved.NumWalks, resolved.Length, resolved.Seed, resolved.Workers)
			if err != nil {
				return fmt.Errorf("hn2vwalk: walks: %w", err)
			}

			out := cmd.OutOrStdout()
			for _, row := range result.Rows {
				for i, n := range row {
					if i > 0 {
						fmt.Fprint(out, " ")
					}
					fmt.Fprintf(out, "%d", n)
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to a YAML configuration file")
	cfg.BindFlags(cmd.Flags())
	return cmd
}
