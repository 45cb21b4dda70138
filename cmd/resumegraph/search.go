package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/agenthands/resumegraph/internal/app"
	"github.com/agenthands/resumegraph/internal/core"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "List candidates holding every given skill",
	RunE:  runSearch,
}

var (
	searchSkills      []string
	searchSummarize   bool
	searchWithContent bool
)

func init() {
	searchCmd.Flags().StringArrayVarP(&searchSkills, "skill", "s", nil, "Skill to require (repeatable)")
	searchCmd.Flags().BoolVar(&searchSummarize, "summarize", false, "Generate a summary for each match")
	searchCmd.Flags().BoolVar(&searchWithContent, "content", false, "Include resume text in the output")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, _ []string) error {
	return withApp(cmd.Context(), func(a *app.App) error {
		req := core.SearchRequest{Skills: searchSkills, IncludeContent: searchWithContent}
		if cmd.Flags().Changed("summarize") {
			req.Summarize = &searchSummarize
		}

		candidates, err := a.Engine.Search(cmd.Context(), req)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(candidates)
	})
}
