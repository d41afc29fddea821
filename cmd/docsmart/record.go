// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/AnjaneyaKaushik/docsmart-backend/internal/history"
	"github.com/AnjaneyaKaushik/docsmart-backend/pkg/types"
)

// runRecorded executes one operation and appends its outcome to the
// history store. The operation's own error is always returned; history
// failures only warn, they never fail a successful document operation.
func runRecorded(cmd *cobra.Command, op, input, output string, fn func() error) error {
	start := time.Now()
	opErr := fn()
	recordOperation(cmd, op, input, output, start, opErr)
	return opErr
}

func recordOperation(cmd *cobra.Command, op, input, output string, start time.Time, opErr error) {
	if skip, _ := cmd.Flags().GetBool("no-history"); skip {
		return
	}
	cfg := historyConfig()
	if cfg.Disabled {
		return
	}

	store, err := history.NewStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: history store unavailable: %v\n", err)
		return
	}
	defer store.Close()

	rec := types.Operation{
		Op:        op,
		Input:     input,
		Output:    output,
		Status:    types.StatusOK,
		StartedAt: start.UTC(),
		Duration:  time.Since(start),
	}
	if opErr != nil {
		rec.Status = types.StatusFailed
		rec.Error = opErr.Error()
	}

	if err := store.Append(context.Background(), rec); err != nil {
		fmt.Fprintf(os.Stderr, "warning: recording history: %v\n", err)
	}
}

func historyConfig() types.HistoryConfig {
	return types.HistoryConfig{
		Path:       viper.GetString("history.path"),
		Disabled:   viper.GetBool("history.disabled"),
		MaxResults: viper.GetInt("history.max_results"),
	}
}
