package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/agenthands/resumegraph/internal/app"
	"github.com/agenthands/resumegraph/internal/core/model"
	"github.com/agenthands/resumegraph/internal/document"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest <file>...",
	Short: "Ingest resume files (PDF, DOCX or text) in the order given",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runIngest,
}

func init() {
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	return withApp(cmd.Context(), func(a *app.App) error {
		results := make([]model.IngestResult, len(args))
		var (
			docs []document.Document
			slot []int
		)
		for i, path := range args {
			doc, err := readDocument(path)
			if err != nil {
				results[i] = model.IngestResult{
					Source: filepath.Base(path),
					Status: model.StatusUnreadable,
					Error:  err.Error(),
				}
				continue
			}
			docs = append(docs, doc)
			slot = append(slot, i)
		}

		for j, r := range a.Engine.IngestDocuments(cmd.Context(), docs) {
			results[slot[j]] = r
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			return err
		}

		for _, r := range results {
			switch r.Status {
			case model.StatusCancelled:
				return cmd.Context().Err()
			case model.StatusStoreFailed:
				return fmt.Errorf("%s: %s", r.Source, r.Error)
			}
		}
		return nil
	})
}

func readDocument(path string) (document.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return document.Document{}, err
	}
	return document.Extract(filepath.Base(path), data)
}
