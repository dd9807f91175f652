// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert turns specification PDFs into page-marked text files.
package convert

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pdiddy/spectext/internal/extract"
	"github.com/pdiddy/spectext/pkg/types"
)

// Result holds the outcome of converting a single PDF.
type Result struct {
	Status types.ConversionStatus
	Pages  int
	Bytes  int64
	Err    error
}

// pageMarker is the line inserted before each page's extracted text.
func pageMarker(n int) string {
	return fmt.Sprintf("\n--- Page %d ---\n", n)
}

// ConvertFile extracts the text of the PDF at srcPath and writes it to
// dstPath, overwriting any existing file. The output is, for each page
// 1..P in order, a marker line followed by that page's text; a document
// with zero pages produces an empty file.
//
// The write happens only after extraction has fully completed, and goes
// through a temp file renamed over dstPath, so a failed conversion never
// truncates or removes an existing destination.
func ConvertFile(opener extract.Opener, srcPath, dstPath string) Result {
	src, err := opener.Open(srcPath)
	if err != nil {
		return Result{Status: types.ConversionFailed, Err: err}
	}
	defer src.Close()

	pages, err := src.NumPages()
	if err != nil {
		return Result{
			Status: types.ConversionFailed,
			Err:    fmt.Errorf("reading page count of %s: %w", srcPath, err),
		}
	}

	var b strings.Builder
	for i := 1; i <= pages; i++ {
		text, err := src.PageText(i)
		if err != nil {
			return Result{
				Status: types.ConversionFailed,
				Pages:  pages,
				Err:    fmt.Errorf("page %d of %s: %w", i, srcPath, err),
			}
		}
		b.WriteString(pageMarker(i))
		b.WriteString(text)
	}

	out := b.String()
	if err := writeFileAtomic(dstPath, []byte(out)); err != nil {
		return Result{
			Status: types.ConversionFailed,
			Pages:  pages,
			Err:    fmt.Errorf("writing %s: %w", dstPath, err),
		}
	}

	return Result{Status: types.ConversionDone, Pages: pages, Bytes: int64(len(out))}
}

// writeFileAtomic writes data to a temp file in path's directory and
// renames it over path. A failure at any step leaves an existing file at
// path untouched; only the temp file is cleaned up.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}

// BatchResult holds the outcome of a batch conversion run.
type BatchResult struct {
	Converted int
	Skipped   int
	Failed    int

	// Records carries one ConversionRecord per processed file, in input
	// order, for the catalog.
	Records []types.ConversionRecord
}

// Total returns the total number of files processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Skipped + r.Failed
}

// HasFailures reports whether any file failed conversion.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// ConvertBatch converts each file in order, writing outputs under
// cfg.TextDir (created if absent). It prints one status line per file and
// a final summary naming the text directory to w. A failed file is
// reported and counted; the batch always runs to completion.
func ConvertBatch(opener extract.Opener, files []types.SpecFile, cfg types.ConvertConfig, w io.Writer) (BatchResult, error) {
	if err := os.MkdirAll(cfg.TextDir, 0o755); err != nil {
		return BatchResult{}, fmt.Errorf("creating text directory %s: %w", cfg.TextDir, err)
	}

	var result BatchResult
	for _, f := range files {
		dst := filepath.Join(cfg.TextDir, f.OutputName)
		rec := types.ConversionRecord{
			ID:         f.ID,
			SourcePath: f.Path,
		}

		if cfg.SkipExisting {
			if _, err := os.Stat(dst); err == nil {
				fmt.Fprintf(w, "skipped: %s (already exists)\n", f.Path)
				rec.Status = types.ConversionSkipped
				rec.OutputPath = dst
				rec.ConvertedAt = time.Now().UTC()
				result.Skipped++
				result.Records = append(result.Records, rec)
				continue
			}
		}

		res := ConvertFile(opener, f.Path, dst)
		rec.Pages = res.Pages
		rec.Status = res.Status
		rec.ConvertedAt = time.Now().UTC()

		switch res.Status {
		case types.ConversionDone:
			fmt.Fprintf(w, "converted: %s -> %s\n", f.Path, dst)
			rec.OutputPath = dst
			rec.Bytes = res.Bytes
			result.Converted++
		case types.ConversionFailed:
			fmt.Fprintf(w, "failed:  %s (%v)\n", f.Path, res.Err)
			rec.Error = res.Err.Error()
			result.Failed++
		}
		result.Records = append(result.Records, rec)
	}

	fmt.Fprintf(w, "\nBatch summary: %d converted, %d skipped, %d failed (total: %d)\n",
		result.Converted, result.Skipped, result.Failed, result.Total())
	fmt.Fprintf(w, "Text files saved in: %s\n", cfg.TextDir)
	return result, nil
}
