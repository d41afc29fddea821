package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/AnjaneyaKaushik/docsmart-backend/internal/extract"
)

var extractCmd = &cobra.Command{
	Use:   "extract <input.pdf> <output.txt>",
	Short: "Extract the text layer of a PDF to a UTF-8 text file",
	Long: `Extract reads the embedded text layer of every page and writes it as
UTF-8 with a newline separator between pages. Scanned (image-only) PDFs
have no text layer and yield empty output.`,
	Args: cobra.ExactArgs(2),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	return runRecorded(cmd, "extract", args[0], args[1], func() error {
		return extract.TextFromPDF(args[0], args[1], os.Stdout)
	})
}
