package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/AnjaneyaKaushik/docsmart-backend/internal/protect"
)

var repairCmd = &cobra.Command{
	Use:   "repair <input.pdf> <output.pdf>",
	Short: "Repair a structurally damaged PDF",
	Long: `Repair re-serializes the document, which resolves many structural
corruptions such as broken cross-reference tables or object offsets.`,
	Args: cobra.ExactArgs(2),
	RunE: runRepair,
}

func init() {
	rootCmd.AddCommand(repairCmd)
}

func runRepair(cmd *cobra.Command, args []string) error {
	return runRecorded(cmd, "repair", args[0], args[1], func() error {
		return protect.Repair(args[0], args[1], os.Stdout)
	})
}
