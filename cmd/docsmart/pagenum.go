package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/AnjaneyaKaushik/docsmart-backend/internal/stamp"
	"github.com/AnjaneyaKaushik/docsmart-backend/pkg/types"
)

var pagenumCmd = &cobra.Command{
	Use:   "pagenum <input.pdf> <output.pdf>",
	Short: "Stamp page numbers onto every page of a PDF",
	Long: `Pagenum overlays the 1-based page index onto each page at a corner
anchor. Font size, position, and margin are explicit settings; a custom
TrueType font file may be supplied and falls back to the built-in font
(with a warning) when missing.`,
	Args: cobra.ExactArgs(2),
	RunE: runPagenum,
}

func init() {
	pagenumCmd.Flags().Int("font-size", 14, "label size in points")
	pagenumCmd.Flags().String("position", "tr", "corner anchor: tl, tr, bl, or br")
	pagenumCmd.Flags().Int("margin", 30, "distance from the corner in points")
	pagenumCmd.Flags().String("font-file", "", "TrueType font file (built-in font when omitted)")

	rootCmd.AddCommand(pagenumCmd)
}

func runPagenum(cmd *cobra.Command, args []string) error {
	cfg := types.PageNumberConfig{
		FontSize: intSetting(cmd, "font-size", "page_number.font_size"),
		Position: stringSetting(cmd, "position", "page_number.position"),
		Margin:   intSetting(cmd, "margin", "page_number.margin"),
		FontFile: stringSetting(cmd, "font-file", "page_number.font_file"),
	}

	return runRecorded(cmd, "pagenum", args[0], args[1], func() error {
		return stamp.AddPageNumbers(args[0], args[1], cfg, os.Stdout)
	})
}
