// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnjaneyaKaushik/docsmart-backend/internal/pdftest"
)

func TestText_ReadsAllPages(t *testing.T) {
	in := pdftest.WritePDF(t, t.TempDir(), "in.pdf", 3)

	text, err := Text(in)
	require.NoError(t, err)

	assert.Contains(t, text, "Page 1")
	assert.Contains(t, text, "Page 2")
	assert.Contains(t, text, "Page 3")
	// One separator per page.
	assert.Equal(t, 3, strings.Count(text, "\n"))
}

func TestTextFromPDF_WritesOutput(t *testing.T) {
	dir := t.TempDir()
	in := pdftest.WritePDF(t, dir, "in.pdf", 2)
	out := filepath.Join(dir, "text", "out.txt")

	var status bytes.Buffer
	require.NoError(t, TextFromPDF(in, out, &status))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Page 1")
	assert.Contains(t, string(data), "Page 2")
	assert.Contains(t, status.String(), "Successfully extracted text")
}

func TestTextFromPDF_MissingInput(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.txt")

	var status bytes.Buffer
	err := TextFromPDF(filepath.Join(dir, "absent.pdf"), out, &status)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	assert.NoFileExists(t, out)
}

func TestTextFromPDF_CorruptInputLeavesNoOutput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "corrupt.pdf")
	require.NoError(t, os.WriteFile(in, []byte("not a pdf"), 0o644))
	out := filepath.Join(dir, "out.txt")

	var status bytes.Buffer
	err := TextFromPDF(in, out, &status)
	require.Error(t, err)
	assert.NoFileExists(t, out)
}
