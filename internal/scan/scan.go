// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scan discovers specification PDFs and derives their output names.
package scan

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pdiddy/spectext/pkg/types"
)

// PageRangeID returns the page-range identifier encoded in a split-PDF
// filename: the first "_"-delimited token of the stem. For
// "005_PDFsam_UCIe_Specification_1.0.pdf" it returns "005". A stem without
// an underscore is its own identifier.
func PageRangeID(path string) string {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	id, _, _ := strings.Cut(stem, "_")
	return id
}

// OutputName returns the text filename for a page-range identifier.
func OutputName(prefix, id string) string {
	return prefix + id + ".txt"
}

// Find returns the files in cfg.SpecDir matching cfg.Pattern, sorted by
// filename, with identifier and output name resolved. Empty pattern and
// prefix fall back to the UCIe defaults.
func Find(cfg types.ConvertConfig) ([]types.SpecFile, error) {
	pattern := cfg.Pattern
	if pattern == "" {
		pattern = types.DefaultPattern
	}
	prefix := cfg.OutputPrefix
	if prefix == "" {
		prefix = types.DefaultOutputPrefix
	}

	matches, err := filepath.Glob(filepath.Join(cfg.SpecDir, pattern))
	if err != nil {
		return nil, fmt.Errorf("matching %s in %s: %w", pattern, cfg.SpecDir, err)
	}
	sort.Strings(matches)

	files := make([]types.SpecFile, len(matches))
	for i, m := range matches {
		id := PageRangeID(m)
		files[i] = types.SpecFile{
			Path:       m,
			ID:         id,
			OutputName: OutputName(prefix, id),
		}
	}
	return files, nil
}
