// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract pulls the embedded text layer out of PDF documents.
// Only the text layer is read; scanned (image-only) PDFs have no layer to
// extract and yield empty output.
package extract

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/AnjaneyaKaushik/docsmart-backend/internal/fileutil"
)

// TextFromPDF extracts the text of every page of the PDF at inPath and
// writes it to outPath as UTF-8, one newline separator between pages. A
// partially written output file is removed on failure.
func TextFromPDF(inPath, outPath string, w io.Writer) error {
	if err := fileutil.CheckInput(inPath); err != nil {
		return err
	}
	if err := fileutil.EnsureOutputDir(outPath); err != nil {
		return err
	}

	fmt.Fprintf(w, "Extracting text from %s to %s...\n", inPath, outPath)

	text, err := Text(inPath)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outPath, []byte(text), 0o644); err != nil {
		fileutil.RemoveIfExists(outPath)
		return fmt.Errorf("writing text output: %w", err)
	}

	fmt.Fprintf(w, "Successfully extracted text from %s to %s\n", inPath, outPath)
	return nil
}

// Text returns the concatenated text layer of the PDF at path. Pages are
// separated by a newline; a page without extractable text contributes only
// its separator.
func Text(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening PDF %s: %w", path, err)
	}
	defer f.Close()

	fonts := make(map[string]*pdf.Font)
	var b strings.Builder

	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			b.WriteString("\n")
			continue
		}

		for _, name := range p.Fonts() {
			if _, ok := fonts[name]; !ok {
				font := p.Font(name)
				fonts[name] = &font
			}
		}

		text, err := p.GetPlainText(fonts)
		if err != nil {
			return "", fmt.Errorf("reading page %d of %s: %w", i, path, err)
		}
		b.WriteString(text)
		b.WriteString("\n")
	}

	return b.String(), nil
}
