// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AnjaneyaKaushik/docsmart-backend/internal/history"
	"github.com/AnjaneyaKaushik/docsmart-backend/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect past operations (list, export)",
	Long: `History manages the local record of past runs. Every operation appends
one row to a SQLite database; use subcommands to list recent runs or
export the full record.`,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent operations, newest first",
	RunE:  runHistoryList,
}

var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the full operation history to YAML or JSON",
	RunE:  runHistoryExport,
}

func init() {
	historyListCmd.Flags().String("op", "", "filter by operation name")
	historyListCmd.Flags().Int("limit", 0, "maximum results (0 = use default)")
	historyListCmd.Flags().Bool("json", false, "output results as JSON")

	historyExportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	historyExportCmd.Flags().String("out", "", "export file (default: alongside the history database)")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyExportCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	store, err := history.NewStore(historyConfig())
	if err != nil {
		return err
	}
	defer store.Close()

	op, _ := cmd.Flags().GetString("op")
	limit, _ := cmd.Flags().GetInt("limit")

	records, err := store.List(context.Background(), history.QueryOptions{Op: op, Limit: limit})
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatHistoryOutput(records, jsonOutput)
}

func formatHistoryOutput(records []types.Operation, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	if len(records) == 0 {
		fmt.Println("No operations recorded.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-5s  %-10s  %-8s  %-30s  %-30s  %-20s  %s\n",
		"ID", "Op", "Status", "Input", "Output", "Started", "Duration")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 120))

	for _, r := range records {
		input := r.Input
		if len(input) > 30 {
			input = "..." + input[len(input)-27:]
		}
		output := r.Output
		if len(output) > 30 {
			output = "..." + output[len(output)-27:]
		}
		fmt.Fprintf(os.Stdout, "%-5d  %-10s  %-8s  %-30s  %-30s  %-20s  %s\n",
			r.ID, r.Op, r.Status, input, output,
			r.StartedAt.Format("2006-01-02 15:04:05"), r.Duration)
	}

	fmt.Fprintf(os.Stdout, "\n%d operations\n", len(records))
	return nil
}

func runHistoryExport(cmd *cobra.Command, args []string) error {
	cfg := historyConfig()
	store, err := history.NewStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	format, _ := cmd.Flags().GetString("format")
	outPath, _ := cmd.Flags().GetString("out")

	switch format {
	case "yaml", "":
		if outPath == "" {
			outPath = filepath.Join(filepath.Dir(cfg.Path), "export.yaml")
		}
		if err := store.ExportYAML(context.Background(), outPath); err != nil {
			return err
		}
	case "json":
		if outPath == "" {
			outPath = filepath.Join(filepath.Dir(cfg.Path), "export.json")
		}
		if err := store.ExportJSON(context.Background(), outPath); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}

	fmt.Println("Exported to", outPath)
	return nil
}
