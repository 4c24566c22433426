// Package main is the entry point for the hn2vwalk CLI.
//
// Usage:
//
//	hn2vwalk walk    - build a graph and emit biased random walks
//	hn2vwalk cooc    - build a graph and emit a co-occurrence table
//	hn2vwalk version - show version information
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "hn2vwalk",
		Short: "Generate biased random-walk corpora from a graph",
	}

	root.AddCommand(newWalkCmd())
	root.AddCommand(newCoocCmd())
	root.AddCommand(newVersionCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "hn2vwalk dev")
		},
	}
}
