// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the configuration and record types shared by the
// spectext stages.
package types

import "time"

// ConversionStatus indicates the outcome of converting one PDF to text.
type ConversionStatus string

const (
	ConversionSkipped ConversionStatus = "skipped"
	ConversionDone    ConversionStatus = "converted"
	ConversionFailed  ConversionStatus = "failed"
)

// SpecFile identifies one discovered specification PDF and where its
// converted text belongs.
type SpecFile struct {
	// Path is the location of the source PDF.
	Path string `json:"path" yaml:"path"`

	// ID is the page-range identifier derived from the filename.
	ID string `json:"id" yaml:"id"`

	// OutputName is the filename (not path) of the converted text file.
	OutputName string `json:"output_name" yaml:"output_name"`
}

// ConversionRecord holds the catalogued outcome of one conversion.
type ConversionRecord struct {
	// ID is the page-range identifier, the first "_"-delimited token of
	// the source filename stem (e.g. "005").
	ID string `json:"id" yaml:"id"`

	// SourcePath is the path of the input PDF.
	SourcePath string `json:"source_path" yaml:"source_path"`

	// OutputPath is the path of the written text file. Empty when the
	// conversion failed before the write.
	OutputPath string `json:"output_path" yaml:"output_path"`

	// Pages is the page count of the source document.
	Pages int `json:"pages" yaml:"pages"`

	// Bytes is the size of the written text output.
	Bytes int64 `json:"bytes" yaml:"bytes"`

	// Status records how the conversion ended.
	Status ConversionStatus `json:"status" yaml:"status"`

	// Error carries the captured failure message when Status is failed.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`

	// ConvertedAt is when the conversion finished.
	ConvertedAt time.Time `json:"converted_at" yaml:"converted_at"`
}
