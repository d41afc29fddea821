// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/AnjaneyaKaushik/docsmart-backend/internal/fetch"
	"github.com/AnjaneyaKaushik/docsmart-backend/pkg/types"
)

const (
	defaultFetchTimeout = 60 * time.Second
	defaultUserAgent    = "docsmart/0.1"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch <url> <output>",
	Short: "Download a remote document to a local path",
	Long: `Fetch downloads a document over HTTP so it can be run through the
other operations. Rate-limited responses are retried with backoff; the
file appears at the output path only after a complete download.`,
	Args: cobra.ExactArgs(2),
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 60s)")

	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = defaultFetchTimeout
	}

	cfg := types.FetchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: defaultUserAgent,
		},
	}
	client := &http.Client{Timeout: cfg.Timeout}

	return runRecorded(cmd, "fetch", args[0], args[1], func() error {
		return fetch.Document(cmd.Context(), client, args[0], args[1], cfg, os.Stdout)
	})
}
