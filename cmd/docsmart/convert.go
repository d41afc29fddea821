// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/AnjaneyaKaushik/docsmart-backend/internal/convert"
	"github.com/AnjaneyaKaushik/docsmart-backend/internal/office"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert between office-document formats (DOCX and PDF)",
	Long: `Convert delegates format conversion to a headless office suite
(soffice, then libreoffice, auto-detected on PATH). The tool's output is
relocated to the requested path and verified before success is declared.`,
}

var docxToPDFCmd = &cobra.Command{
	Use:   "docx2pdf <input.docx> <output.pdf>",
	Short: "Convert a DOCX document to PDF",
	Args:  cobra.ExactArgs(2),
	RunE:  runDocxToPDF,
}

var pdfToDocxCmd = &cobra.Command{
	Use:   "pdf2docx <input.pdf> <output.docx>",
	Short: "Convert a PDF document to DOCX",
	Long: `Pdf2docx opens the PDF with the office suite's Writer import filter,
which reconstructs the layout as editable text, and saves it as DOCX.
A page selection (e.g. --pages 1-3) converts only those pages.`,
	Args: cobra.ExactArgs(2),
	RunE: runPDFToDocx,
}

func init() {
	convertCmd.PersistentFlags().String("office-binary", "", "office binary to use instead of auto-detection")
	pdfToDocxCmd.Flags().String("pages", "", "page selection, e.g. 1-3 or 2 (default: all pages)")

	convertCmd.AddCommand(docxToPDFCmd)
	convertCmd.AddCommand(pdfToDocxCmd)
	rootCmd.AddCommand(convertCmd)
}

func officeRuntime(cmd *cobra.Command) (office.Runtime, error) {
	forced := stringSetting(cmd, "office-binary", "office.binary")
	return office.DetectRuntime(forced)
}

func runDocxToPDF(cmd *cobra.Command, args []string) error {
	rt, err := officeRuntime(cmd)
	if err != nil {
		return err
	}

	return runRecorded(cmd, "docx2pdf", args[0], args[1], func() error {
		return convert.DocxToPDF(rt, args[0], args[1], os.Stdout)
	})
}

func runPDFToDocx(cmd *cobra.Command, args []string) error {
	rt, err := officeRuntime(cmd)
	if err != nil {
		return err
	}
	pages, _ := cmd.Flags().GetString("pages")

	return runRecorded(cmd, "pdf2docx", args[0], args[1], func() error {
		return convert.PDFToDocx(rt, args[0], args[1], pages, os.Stdout)
	})
}
