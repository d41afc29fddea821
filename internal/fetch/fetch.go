// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fetch downloads remote documents into the local filesystem so
// they can be run through the other operations.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/AnjaneyaKaushik/docsmart-backend/internal/fileutil"
	"github.com/AnjaneyaKaushik/docsmart-backend/internal/httputil"
	"github.com/AnjaneyaKaushik/docsmart-backend/pkg/types"
)

// Document downloads url to destPath. The body is written to a temporary
// file in the destination directory and renamed into place on success, so
// a failed download never leaves a partial file at destPath. HTTP 429
// responses are retried with backoff.
func Document(ctx context.Context, client *http.Client, url, destPath string, cfg types.FetchConfig, w io.Writer) error {
	if err := fileutil.EnsureOutputDir(destPath); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if cfg.UserAgent != "" {
		req.Header.Set("User-Agent", cfg.UserAgent)
	}

	fmt.Fprintf(w, "downloading: %s\n", url)

	resp, err := httputil.DoWithRetry(ctx, client, req, 0)
	if err != nil {
		return fmt.Errorf("HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d from %s", resp.StatusCode, url)
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(destPath), ".fetch-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	_, copyErr := io.Copy(tmpFile, resp.Body)
	closeErr := tmpFile.Close()
	if copyErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing download: %w", copyErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}

	fmt.Fprintf(w, "saved: %s\n", destPath)
	return nil
}
