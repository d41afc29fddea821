// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// exportLimit bounds a full export; in practice the store stays far below it.
const exportLimit = 100000

// ExportYAML writes the full history (newest first) to path as YAML.
func (s *Store) ExportYAML(ctx context.Context, path string) error {
	records, err := s.List(ctx, QueryOptions{Limit: exportLimit})
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(records)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ExportJSON writes the full history (newest first) to path as indented JSON.
func (s *Store) ExportJSON(ctx context.Context, path string) error {
	records, err := s.List(ctx, QueryOptions{Limit: exportLimit})
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
