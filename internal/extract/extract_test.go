// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPDFOpener_MissingFile(t *testing.T) {
	_, err := PDFOpener{}.Open(filepath.Join(t.TempDir(), "missing.pdf"))
	if err == nil {
		t.Fatal("expected an error for a nonexistent file")
	}
}

func TestPDFOpener_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.pdf")
	if err := os.WriteFile(path, []byte("%PDF-1.4 this is not a real pdf body"), 0o644); err != nil {
		t.Fatal(err)
	}

	src, err := PDFOpener{}.Open(path)
	if err == nil {
		src.Close()
		t.Fatal("expected an error for a corrupt file")
	}
}

func TestPDFOpener_NotAPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.pdf")
	if err := os.WriteFile(path, []byte("just some text"), 0o644); err != nil {
		t.Fatal(err)
	}

	src, err := PDFOpener{}.Open(path)
	if err == nil {
		src.Close()
		t.Fatal("expected an error for a non-PDF file")
	}
}
