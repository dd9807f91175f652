// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pdiddy/spectext/internal/extract"
	"github.com/pdiddy/spectext/pkg/types"
)

// fakeSource implements extract.Source with canned page text. errAt, when
// non-zero, makes that page fail extraction; countErr makes the page count
// itself fail.
type fakeSource struct {
	pages    []string
	errAt    int
	countErr error
}

func (s *fakeSource) NumPages() (int, error) {
	if s.countErr != nil {
		return 0, s.countErr
	}
	return len(s.pages), nil
}

func (s *fakeSource) PageText(n int) (string, error) {
	if s.errAt != 0 && n == s.errAt {
		return "", errors.New("damaged content stream")
	}
	return s.pages[n-1], nil
}

func (s *fakeSource) Close() error { return nil }

// fakeOpener implements extract.Opener over a map of path to source.
type fakeOpener struct {
	sources map[string]*fakeSource
	errs    map[string]error
}

func (o *fakeOpener) Open(path string) (extract.Source, error) {
	if err, ok := o.errs[path]; ok {
		return nil, err
	}
	if s, ok := o.sources[path]; ok {
		return s, nil
	}
	return nil, errors.New("unexpected path: " + path)
}

func singleOpener(src string, s *fakeSource) *fakeOpener {
	return &fakeOpener{sources: map[string]*fakeSource{src: s}}
}

func TestConvertFile(t *testing.T) {
	tests := []struct {
		name        string
		source      *fakeSource
		openErr     error
		wantStatus  types.ConversionStatus
		wantContent string
		wantOutput  bool
	}{
		{
			name:        "two pages with markers in order",
			source:      &fakeSource{pages: []string{"first page text", "second page text"}},
			wantStatus:  types.ConversionDone,
			wantContent: "\n--- Page 1 ---\nfirst page text\n--- Page 2 ---\nsecond page text",
			wantOutput:  true,
		},
		{
			name:        "zero pages produces empty file",
			source:      &fakeSource{},
			wantStatus:  types.ConversionDone,
			wantContent: "",
			wantOutput:  true,
		},
		{
			name:        "page text with embedded newlines",
			source:      &fakeSource{pages: []string{"line a\nline b\n"}},
			wantStatus:  types.ConversionDone,
			wantContent: "\n--- Page 1 ---\nline a\nline b\n",
			wantOutput:  true,
		},
		{
			name:       "open failure leaves destination untouched",
			openErr:    errors.New("not a PDF"),
			wantStatus: types.ConversionFailed,
			wantOutput: false,
		},
		{
			name:       "page extraction failure leaves destination untouched",
			source:     &fakeSource{pages: []string{"ok", "bad", "unreached"}, errAt: 2},
			wantStatus: types.ConversionFailed,
			wantOutput: false,
		},
		{
			name:       "page count failure leaves destination untouched",
			source:     &fakeSource{countErr: errors.New("malformed page tree")},
			wantStatus: types.ConversionFailed,
			wantOutput: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			src := filepath.Join(tmpDir, "010_PDFsam_spec.pdf")
			dst := filepath.Join(tmpDir, "out.txt")

			opener := singleOpener(src, tt.source)
			if tt.openErr != nil {
				opener = &fakeOpener{errs: map[string]error{src: tt.openErr}}
			}

			res := ConvertFile(opener, src, dst)

			if res.Status != tt.wantStatus {
				t.Errorf("status = %q, want %q", res.Status, tt.wantStatus)
			}
			if res.Status == types.ConversionFailed && res.Err == nil {
				t.Error("failed result should carry an error")
			}

			data, err := os.ReadFile(dst)
			if tt.wantOutput {
				if err != nil {
					t.Fatalf("reading output: %v", err)
				}
				if string(data) != tt.wantContent {
					t.Errorf("output = %q, want %q", data, tt.wantContent)
				}
				if res.Bytes != int64(len(tt.wantContent)) {
					t.Errorf("bytes = %d, want %d", res.Bytes, len(tt.wantContent))
				}
			} else if err == nil {
				t.Errorf("destination should not exist, contains %q", data)
			}
		})
	}
}

func TestConvertFile_Overwrite(t *testing.T) {
	tmpDir := t.TempDir()
	src := filepath.Join(tmpDir, "in.pdf")
	dst := filepath.Join(tmpDir, "out.txt")
	if err := os.WriteFile(dst, []byte("stale content"), 0o644); err != nil {
		t.Fatal(err)
	}

	opener := singleOpener(src, &fakeSource{pages: []string{"fresh"}})
	res := ConvertFile(opener, src, dst)
	if res.Status != types.ConversionDone {
		t.Fatalf("expected ConversionDone, got %q (%v)", res.Status, res.Err)
	}

	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "\n--- Page 1 ---\nfresh" {
		t.Errorf("output = %q, stale content not overwritten", data)
	}
}

func TestConvertFile_WriteFailureKeepsDestination(t *testing.T) {
	tmpDir := t.TempDir()
	src := filepath.Join(tmpDir, "in.pdf")

	// A directory at the destination path makes the final rename fail.
	dst := filepath.Join(tmpDir, "out.txt")
	if err := os.Mkdir(dst, 0o755); err != nil {
		t.Fatal(err)
	}

	opener := singleOpener(src, &fakeSource{pages: []string{"content"}})
	res := ConvertFile(opener, src, dst)

	if res.Status != types.ConversionFailed {
		t.Fatalf("status = %q, want %q", res.Status, types.ConversionFailed)
	}
	if res.Err == nil {
		t.Fatal("failed result should carry an error")
	}

	info, err := os.Stat(dst)
	if err != nil {
		t.Fatalf("pre-existing destination was removed: %v", err)
	}
	if !info.IsDir() {
		t.Error("pre-existing destination was replaced")
	}

	// No temp files left behind.
	entries, err := os.ReadDir(tmpDir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.Contains(e.Name(), ".tmp") {
			t.Errorf("leftover temp file %s", e.Name())
		}
	}
}

func TestConvertFile_Deterministic(t *testing.T) {
	tmpDir := t.TempDir()
	src := filepath.Join(tmpDir, "in.pdf")
	dst := filepath.Join(tmpDir, "out.txt")

	opener := &fakeOpener{sources: map[string]*fakeSource{}}
	read := func() string {
		opener.sources[src] = &fakeSource{pages: []string{"alpha", "beta"}}
		if res := ConvertFile(opener, src, dst); res.Status != types.ConversionDone {
			t.Fatalf("conversion failed: %v", res.Err)
		}
		data, err := os.ReadFile(dst)
		if err != nil {
			t.Fatal(err)
		}
		return string(data)
	}

	first := read()
	second := read()
	if first != second {
		t.Errorf("repeated conversion differs: %q vs %q", first, second)
	}
}

func TestConvertBatch(t *testing.T) {
	tmpDir := t.TempDir()
	textDir := filepath.Join(tmpDir, "text")

	srcA := filepath.Join(tmpDir, "001_PDFsam_spec.pdf")
	srcB := filepath.Join(tmpDir, "010_PDFsam_spec.pdf")
	srcC := filepath.Join(tmpDir, "020_PDFsam_spec.pdf")

	opener := &fakeOpener{
		sources: map[string]*fakeSource{
			srcA: {pages: []string{"chapter one"}},
			srcC: {pages: []string{"chapter three"}},
		},
		errs: map[string]error{
			srcB: errors.New("corrupt xref table"),
		},
	}

	files := []types.SpecFile{
		{Path: srcA, ID: "001", OutputName: "ucie_spec_pages_001.txt"},
		{Path: srcB, ID: "010", OutputName: "ucie_spec_pages_010.txt"},
		{Path: srcC, ID: "020", OutputName: "ucie_spec_pages_020.txt"},
	}

	cfg := types.ConvertConfig{TextDir: textDir}
	var log bytes.Buffer
	result, err := ConvertBatch(opener, files, cfg, &log)
	if err != nil {
		t.Fatal(err)
	}

	if result.Converted != 2 {
		t.Errorf("converted = %d, want 2", result.Converted)
	}
	if result.Failed != 1 {
		t.Errorf("failed = %d, want 1", result.Failed)
	}
	if !result.HasFailures() {
		t.Error("HasFailures should be true")
	}
	if len(result.Records) != 3 {
		t.Fatalf("records = %d, want 3", len(result.Records))
	}
	if result.Records[1].Status != types.ConversionFailed || result.Records[1].Error == "" {
		t.Errorf("record for corrupt file = %+v, want failed with message", result.Records[1])
	}

	// Valid files converted, the corrupt one produced no output.
	if _, err := os.Stat(filepath.Join(textDir, "ucie_spec_pages_001.txt")); err != nil {
		t.Error("output for 001 missing")
	}
	if _, err := os.Stat(filepath.Join(textDir, "ucie_spec_pages_010.txt")); err == nil {
		t.Error("output for corrupt 010 should not exist")
	}

	output := log.String()
	if !strings.Contains(output, "Batch summary: 2 converted, 0 skipped, 1 failed (total: 3)") {
		t.Errorf("missing summary line in %q", output)
	}
	if !strings.Contains(output, "Text files saved in: "+textDir) {
		t.Errorf("missing text directory line in %q", output)
	}
}

func TestConvertBatch_SkipExisting(t *testing.T) {
	tmpDir := t.TempDir()
	textDir := filepath.Join(tmpDir, "text")
	if err := os.MkdirAll(textDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(textDir, "ucie_spec_pages_005.txt"), []byte("existing"), 0o644); err != nil {
		t.Fatal(err)
	}

	src := filepath.Join(tmpDir, "005_PDFsam_spec.pdf")
	opener := singleOpener(src, &fakeSource{pages: []string{"should not be read"}})

	files := []types.SpecFile{{Path: src, ID: "005", OutputName: "ucie_spec_pages_005.txt"}}
	cfg := types.ConvertConfig{TextDir: textDir, SkipExisting: true}

	var log bytes.Buffer
	result, err := ConvertBatch(opener, files, cfg, &log)
	if err != nil {
		t.Fatal(err)
	}

	if result.Skipped != 1 {
		t.Errorf("skipped = %d, want 1", result.Skipped)
	}
	data, err := os.ReadFile(filepath.Join(textDir, "ucie_spec_pages_005.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "existing" {
		t.Errorf("existing output was overwritten: %q", data)
	}
	if !strings.Contains(log.String(), "skipped:") {
		t.Errorf("missing skipped line in %q", log.String())
	}
}
