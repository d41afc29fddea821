package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/AnjaneyaKaushik/docsmart-backend/internal/stamp"
	"github.com/AnjaneyaKaushik/docsmart-backend/pkg/types"
)

var watermarkCmd = &cobra.Command{
	Use:   "watermark <input.pdf> <output.pdf>",
	Short: "Stamp a diagonal text watermark onto every page of a PDF",
	Long: `Watermark overlays one semi-transparent diagonal text stamp onto each
page. The output keeps the input's page count. Text, size, opacity, and
rotation are explicit settings instead of per-variant hardcoded values.`,
	Args: cobra.ExactArgs(2),
	RunE: runWatermark,
}

func init() {
	watermarkCmd.Flags().String("text", stamp.DefaultWatermarkText, "watermark text")
	watermarkCmd.Flags().Int("font-size", 40, "watermark size in points")
	watermarkCmd.Flags().Float64("opacity", 0.2, "fill opacity between 0 and 1")
	watermarkCmd.Flags().Int("rotation", 45, "counterclockwise rotation in degrees")

	rootCmd.AddCommand(watermarkCmd)
}

func runWatermark(cmd *cobra.Command, args []string) error {
	cfg := types.WatermarkConfig{
		Text:     stringSetting(cmd, "text", "watermark.text"),
		FontSize: intSetting(cmd, "font-size", "watermark.font_size"),
		Opacity:  floatSetting(cmd, "opacity", "watermark.opacity"),
		Rotation: intSetting(cmd, "rotation", "watermark.rotation"),
	}

	return runRecorded(cmd, "watermark", args[0], args[1], func() error {
		return stamp.AddWatermark(args[0], args[1], cfg, os.Stdout)
	})
}
