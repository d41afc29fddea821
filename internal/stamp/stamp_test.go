// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package stamp

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnjaneyaKaushik/docsmart-backend/internal/pdftest"
	"github.com/AnjaneyaKaushik/docsmart-backend/pkg/types"
)

func TestAddPageNumbers_PreservesPageCount(t *testing.T) {
	dir := t.TempDir()
	in := pdftest.WritePDF(t, dir, "in.pdf", 3)
	out := filepath.Join(dir, "out", "numbered.pdf")

	var status bytes.Buffer
	err := AddPageNumbers(in, out, types.PageNumberConfig{}, &status)
	require.NoError(t, err)

	count, err := api.PageCountFile(out)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.Contains(t, status.String(), "Page numbers added successfully")
}

func TestAddPageNumbers_Positions(t *testing.T) {
	dir := t.TempDir()
	in := pdftest.WritePDF(t, dir, "in.pdf", 1)

	for _, pos := range []string{"tl", "tr", "bl", "br"} {
		t.Run(pos, func(t *testing.T) {
			out := filepath.Join(dir, pos+".pdf")
			var status bytes.Buffer
			err := AddPageNumbers(in, out, types.PageNumberConfig{Position: pos, Margin: 20}, &status)
			require.NoError(t, err)
			require.NoError(t, api.ValidateFile(out, nil))
		})
	}
}

func TestAddPageNumbers_ZeroMargin(t *testing.T) {
	dir := t.TempDir()
	in := pdftest.WritePDF(t, dir, "in.pdf", 1)
	out := filepath.Join(dir, "out.pdf")

	var status bytes.Buffer
	err := AddPageNumbers(in, out, types.PageNumberConfig{Position: "bl", Margin: 0}, &status)
	require.NoError(t, err)
	require.NoError(t, api.ValidateFile(out, nil))
}

func TestAddPageNumbers_InvalidPosition(t *testing.T) {
	dir := t.TempDir()
	in := pdftest.WritePDF(t, dir, "in.pdf", 1)
	out := filepath.Join(dir, "out.pdf")

	var status bytes.Buffer
	err := AddPageNumbers(in, out, types.PageNumberConfig{Position: "center"}, &status)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid position")
	assert.NoFileExists(t, out)
}

func TestAddPageNumbers_MissingInput(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.pdf")

	var status bytes.Buffer
	err := AddPageNumbers(filepath.Join(dir, "absent.pdf"), out, types.PageNumberConfig{}, &status)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	assert.NoFileExists(t, out)
}

func TestAddPageNumbers_MissingFontFileFallsBackLoudly(t *testing.T) {
	dir := t.TempDir()
	in := pdftest.WritePDF(t, dir, "in.pdf", 1)
	out := filepath.Join(dir, "out.pdf")

	var status bytes.Buffer
	err := AddPageNumbers(in, out, types.PageNumberConfig{
		FontFile: filepath.Join(dir, "Arial.ttf"),
	}, &status)
	require.NoError(t, err)

	assert.Contains(t, status.String(), "falling back to Helvetica")
	assert.FileExists(t, out)
}

func TestAddWatermark_PreservesPageCount(t *testing.T) {
	dir := t.TempDir()
	in := pdftest.WritePDF(t, dir, "in.pdf", 4)
	out := filepath.Join(dir, "marked.pdf")

	var status bytes.Buffer
	err := AddWatermark(in, out, types.WatermarkConfig{}, &status)
	require.NoError(t, err)

	count, err := api.PageCountFile(out)
	require.NoError(t, err)
	assert.Equal(t, 4, count)
	assert.Contains(t, status.String(), "Watermark added successfully")
}

func TestAddWatermark_CustomText(t *testing.T) {
	dir := t.TempDir()
	in := pdftest.WritePDF(t, dir, "in.pdf", 1)
	out := filepath.Join(dir, "marked.pdf")

	var status bytes.Buffer
	err := AddWatermark(in, out, types.WatermarkConfig{
		Text:     "CONFIDENTIAL",
		FontSize: 32,
		Opacity:  0.5,
		Rotation: 30,
	}, &status)
	require.NoError(t, err)
	require.NoError(t, api.ValidateFile(out, nil))
}

func TestAddWatermark_ZeroRotationIsHorizontal(t *testing.T) {
	dir := t.TempDir()
	in := pdftest.WritePDF(t, dir, "in.pdf", 1)
	out := filepath.Join(dir, "marked.pdf")

	var status bytes.Buffer
	err := AddWatermark(in, out, types.WatermarkConfig{Text: "DRAFT", Rotation: 0}, &status)
	require.NoError(t, err)
	require.NoError(t, api.ValidateFile(out, nil))
}

func TestAddWatermark_InvalidOpacity(t *testing.T) {
	dir := t.TempDir()
	in := pdftest.WritePDF(t, dir, "in.pdf", 1)

	for _, opacity := range []float64{-0.1, 1.5} {
		out := filepath.Join(dir, "marked.pdf")
		var status bytes.Buffer
		err := AddWatermark(in, out, types.WatermarkConfig{Opacity: opacity}, &status)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "opacity")
		assert.NoFileExists(t, out)
	}
}

func TestAddWatermark_CorruptInputLeavesNoOutput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "corrupt.pdf")
	require.NoError(t, os.WriteFile(in, []byte("not a pdf"), 0o644))
	out := filepath.Join(dir, "marked.pdf")

	var status bytes.Buffer
	err := AddWatermark(in, out, types.WatermarkConfig{}, &status)
	require.Error(t, err)
	assert.NoFileExists(t, out)
}
