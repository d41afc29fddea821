// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package stamp overlays content onto existing PDF pages: page-number
// labels and diagonal text watermarks. The overlay work is delegated to
// pdfcpu text watermarks, which render a small stamp per page without
// touching the original content streams.
package stamp

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/AnjaneyaKaushik/docsmart-backend/internal/fileutil"
	"github.com/AnjaneyaKaushik/docsmart-backend/pkg/types"
)

const (
	builtinFont = "Helvetica"

	defaultNumberFontSize = 14
	defaultNumberPosition = "tr"

	// DefaultWatermarkText is stamped when no text is configured.
	DefaultWatermarkText     = "Processed by DocSmart"
	defaultWatermarkFontSize = 40
	defaultWatermarkOpacity  = 0.2
)

// validPositions maps the supported corner anchors to pdfcpu position codes.
var validPositions = map[string]bool{
	"tl": true,
	"tr": true,
	"bl": true,
	"br": true,
}

// AddPageNumbers stamps the 1-based page index onto every page of the PDF
// at inPath and writes the result to outPath. The label is anchored at the
// configured corner, inset by the configured margin. The whole operation
// fails if any page cannot be stamped; no output file is left behind.
func AddPageNumbers(inPath, outPath string, cfg types.PageNumberConfig, w io.Writer) error {
	if err := fileutil.CheckInput(inPath); err != nil {
		return err
	}
	if err := fileutil.EnsureOutputDir(outPath); err != nil {
		return err
	}

	fontSize := cfg.FontSize
	if fontSize <= 0 {
		fontSize = defaultNumberFontSize
	}
	position := cfg.Position
	if position == "" {
		position = defaultNumberPosition
	}
	if !validPositions[position] {
		return fmt.Errorf("invalid position %q: use tl, tr, bl, or br", position)
	}
	// Zero is a legitimate margin (label flush with the corner); only
	// negative values are rejected. The 30pt default lives in the config
	// layer.
	margin := cfg.Margin
	if margin < 0 {
		return fmt.Errorf("margin must not be negative, got %d", margin)
	}

	font := resolveFont(cfg.FontFile, w)
	dx, dy := cornerOffset(position, margin)

	desc := fmt.Sprintf(
		"fontname:%s, points:%d, scalefactor:1 abs, position:%s, offset:%d %d, rotation:0, opacity:1, fillcolor:0 0 0",
		font, fontSize, position, dx, dy)

	// "%p" expands to the current page number per stamped page.
	if err := api.AddTextWatermarksFile(inPath, outPath, nil, true, "%p", desc, nil); err != nil {
		fileutil.RemoveIfExists(outPath)
		return fmt.Errorf("stamping page numbers: %w", err)
	}

	fmt.Fprintf(w, "Page numbers added successfully to: %s\n", outPath)
	return nil
}

// AddWatermark stamps one semi-transparent diagonal text overlay onto every
// page of the PDF at inPath and writes the result to outPath. The page
// count of the output matches the input.
func AddWatermark(inPath, outPath string, cfg types.WatermarkConfig, w io.Writer) error {
	if err := fileutil.CheckInput(inPath); err != nil {
		return err
	}
	if err := fileutil.EnsureOutputDir(outPath); err != nil {
		return err
	}

	text := cfg.Text
	if text == "" {
		text = DefaultWatermarkText
	}
	fontSize := cfg.FontSize
	if fontSize <= 0 {
		fontSize = defaultWatermarkFontSize
	}
	opacity := cfg.Opacity
	if opacity == 0 {
		opacity = defaultWatermarkOpacity
	}
	if opacity < 0 || opacity > 1 {
		return fmt.Errorf("opacity must be between 0 and 1, got %g", opacity)
	}
	// Zero rotation is a horizontal watermark, not an unset value; the 45°
	// default lives in the config layer.
	rotation := cfg.Rotation

	desc := fmt.Sprintf(
		"fontname:%s, points:%d, scalefactor:1 abs, position:c, rotation:%d, opacity:%.2f, fillcolor:0 0 0",
		builtinFont, fontSize, rotation, opacity)

	if err := api.AddTextWatermarksFile(inPath, outPath, nil, true, text, desc, nil); err != nil {
		fileutil.RemoveIfExists(outPath)
		return fmt.Errorf("stamping watermark: %w", err)
	}

	fmt.Fprintf(w, "Watermark added successfully to %s\n", outPath)
	return nil
}

// resolveFont returns the font name to stamp with. A configured TrueType
// file is installed into pdfcpu's user font directory; when the file is
// missing or installation fails the built-in font is used and the fallback
// is reported rather than applied silently.
func resolveFont(fontFile string, w io.Writer) string {
	if fontFile == "" {
		return builtinFont
	}
	if !fileutil.FileExists(fontFile) {
		fmt.Fprintf(w, "warning: font file %s not found, falling back to %s\n", fontFile, builtinFont)
		return builtinFont
	}
	if err := api.InstallFonts([]string{fontFile}); err != nil {
		fmt.Fprintf(w, "warning: could not install font %s (%v), falling back to %s\n", fontFile, err, builtinFont)
		return builtinFont
	}
	return strings.TrimSuffix(filepath.Base(fontFile), filepath.Ext(fontFile))
}

// cornerOffset translates a corner anchor and margin into a pdfcpu stamp
// offset that pulls the label inward from the page edge.
func cornerOffset(position string, margin int) (dx, dy int) {
	switch position {
	case "tl":
		return margin, -margin
	case "tr":
		return -margin, -margin
	case "bl":
		return margin, margin
	default: // br
		return -margin, margin
	}
}
