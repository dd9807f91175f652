// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract reads plain text out of PDF documents page by page.
package extract

import (
	"fmt"
	"os"

	"github.com/ledongthuc/pdf"
)

// Source is one open PDF document. Page numbers are 1-based.
type Source interface {
	// NumPages returns the page count of the document.
	NumPages() (int, error)

	// PageText returns the plain text of page n.
	PageText(n int) (string, error)

	// Close releases the underlying file handle.
	Close() error
}

// Opener opens a PDF file as a Source. The conversion stage depends on this
// interface; tests substitute fakes.
type Opener interface {
	Open(path string) (Source, error)
}

// PDFOpener opens PDFs with the ledongthuc/pdf library. The library panics
// on some malformed inputs, so Open and PageText recover and return the
// panic value as an error.
type PDFOpener struct{}

// Open loads the PDF at path.
func (PDFOpener) Open(path string) (src Source, err error) {
	defer func() {
		if r := recover(); r != nil {
			src = nil
			err = fmt.Errorf("opening PDF %s: %v", path, r)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening PDF %s: %w", path, err)
	}
	return &pdfSource{f: f, reader: r}, nil
}

type pdfSource struct {
	f      *os.File
	reader *pdf.Reader
}

// NumPages reads the page count. The library panics on a malformed page
// tree even when the trailer parsed cleanly, so it recovers like Open.
func (s *pdfSource) NumPages() (n int, err error) {
	defer func() {
		if r := recover(); r != nil {
			n = 0
			err = fmt.Errorf("reading page count: %v", r)
		}
	}()
	return s.reader.NumPage(), nil
}

// PageText extracts the text of page n. A null page object (the library's
// representation of a missing or empty page) yields an empty string.
func (s *pdfSource) PageText(n int) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("extracting page %d: %v", n, r)
		}
	}()

	page := s.reader.Page(n)
	if page.V.IsNull() {
		return "", nil
	}

	text, err = page.GetPlainText(nil)
	if err != nil {
		return "", fmt.Errorf("extracting page %d: %w", n, err)
	}
	return text, nil
}

func (s *pdfSource) Close() error {
	return s.f.Close()
}
