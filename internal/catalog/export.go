// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"
)

// ExportYAML writes the full catalog to catalogDir/export.yaml and returns
// the written path.
func (s *Store) ExportYAML(ctx context.Context) (string, error) {
	recs, err := s.All(ctx)
	if err != nil {
		return "", err
	}

	data, err := yaml.Marshal(recs)
	if err != nil {
		return "", fmt.Errorf("marshaling YAML: %w", err)
	}

	path := filepath.Join(s.catalogDir, "export.yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

// ExportJSON writes the full catalog to catalogDir/export.json and returns
// the written path.
func (s *Store) ExportJSON(ctx context.Context) (string, error) {
	recs, err := s.All(ctx)
	if err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(recs, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling JSON: %w", err)
	}

	path := filepath.Join(s.catalogDir, "export.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}
