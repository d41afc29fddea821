// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert implements office-format conversion between DOCX and PDF.
// The actual document rendering is delegated to a headless office suite via
// an office.Runtime injected at call time; this package handles staging,
// output relocation, and page-range selection.
package convert

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/AnjaneyaKaushik/docsmart-backend/internal/fileutil"
	"github.com/AnjaneyaKaushik/docsmart-backend/internal/office"
)

const (
	targetPDF = "pdf"
	// targetDocx selects the OOXML writer filter explicitly; a bare "docx"
	// leaves the choice to the office suite's defaults.
	targetDocx = "docx:MS Word 2007 XML"
	// pdfImportFilter forces the office suite to open PDFs with the Writer
	// layout-reconstruction import instead of the Draw default.
	pdfImportFilter = "writer_pdf_import"
)

// DocxToPDF converts the DOCX at inPath to a PDF at outPath using the given
// office runtime. The tool writes its output into a staging directory named
// after the input basename; the result is relocated to outPath and its
// existence verified before success is declared.
func DocxToPDF(rt office.Runtime, inPath, outPath string, w io.Writer) error {
	fmt.Fprintf(w, "Converting %s to %s using %s...\n", inPath, outPath, rt.Name())
	return run(rt, inPath, outPath, targetPDF, "", ".pdf")
}

// PDFToDocx converts the PDF at inPath to a DOCX at outPath. pages is a
// page selection (e.g. "1-3"); when empty all pages are converted. A
// non-empty selection is honored by trimming the input to a temporary PDF
// before handing it to the office suite.
func PDFToDocx(rt office.Runtime, inPath, outPath, pages string, w io.Writer) error {
	fmt.Fprintf(w, "Converting %s to %s using %s...\n", inPath, outPath, rt.Name())

	src := inPath
	if pages != "" {
		if err := fileutil.CheckInput(inPath); err != nil {
			return err
		}
		trimmed, cleanup, err := trimPages(inPath, pages)
		if err != nil {
			return err
		}
		defer cleanup()
		src = trimmed
	}

	return run(rt, src, outPath, targetDocx, pdfImportFilter, ".docx")
}

// run stages a single headless conversion: validate input, create the
// output directory, convert into a temp directory beside the output,
// relocate the produced file, and verify it exists. Nothing is left at
// outPath on failure.
func run(rt office.Runtime, inPath, outPath, target, infilter, wantExt string) error {
	if err := fileutil.CheckInput(inPath); err != nil {
		return err
	}
	if err := fileutil.EnsureOutputDir(outPath); err != nil {
		return err
	}

	// Staging next to the output keeps the final rename on one filesystem.
	stageDir, err := os.MkdirTemp(filepath.Dir(outPath), ".docsmart-convert-*")
	if err != nil {
		return fmt.Errorf("creating staging directory: %w", err)
	}
	defer os.RemoveAll(stageDir)

	if err := rt.Convert(inPath, stageDir, target, infilter); err != nil {
		return err
	}

	base := strings.TrimSuffix(filepath.Base(inPath), filepath.Ext(inPath))
	produced := filepath.Join(stageDir, base+wantExt)
	if !fileutil.FileExists(produced) {
		return fmt.Errorf("%s did not produce the expected output file: %s", rt.Name(), produced)
	}

	if err := os.Rename(produced, outPath); err != nil {
		return fmt.Errorf("relocating converted file: %w", err)
	}
	return nil
}

// trimPages writes the selected pages of inPath to a temporary PDF and
// returns its path with a cleanup function.
func trimPages(inPath, pages string) (string, func(), error) {
	tmp, err := os.CreateTemp("", "docsmart-pages-*.pdf")
	if err != nil {
		return "", nil, fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()
	tmp.Close()
	cleanup := func() { _ = os.Remove(tmpPath) }

	if err := api.TrimFile(inPath, tmpPath, []string{pages}, nil); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("selecting pages %q: %w", pages, err)
	}

	// TrimFile reports no error for a selection that matches no pages; it
	// just writes nothing. An empty staging file must not reach the office
	// suite.
	if count, err := api.PageCountFile(tmpPath); err != nil || count == 0 {
		cleanup()
		return "", nil, fmt.Errorf("page selection %q is out of range for %s", pages, inPath)
	}
	return tmpPath, cleanup, nil
}
