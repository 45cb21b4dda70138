package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agenthands/resumegraph/internal/app"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every node and edge in the graph",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withApp(cmd.Context(), func(a *app.App) error {
			if err := a.Engine.Clear(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "graph cleared")
			return nil
		})
	},
}

var indicesCmd = &cobra.Command{
	Use:   "indices",
	Short: "Create uniqueness constraints for candidate and attribute nodes",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withApp(cmd.Context(), func(a *app.App) error {
			return a.Engine.BuildIndices(cmd.Context())
		})
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print node and edge counts",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withApp(cmd.Context(), func(a *app.App) error {
			stats, err := a.Engine.Stats(cmd.Context())
			if err != nil {
				return err
			}
			return json.NewEncoder(cmd.OutOrStdout()).Encode(stats)
		})
	},
}

func init() {
	rootCmd.AddCommand(clearCmd, indicesCmd, statsCmd)
}
