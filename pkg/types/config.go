// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ConvertConfig holds settings for the conversion stage.
type ConvertConfig struct {
	// SpecDir is the directory containing the split specification PDFs.
	SpecDir string `json:"spec_dir" yaml:"spec_dir"`

	// TextDir is the directory that receives the converted text files.
	// Created if absent.
	TextDir string `json:"text_dir" yaml:"text_dir"`

	// Pattern is the glob matched against filenames in SpecDir.
	Pattern string `json:"pattern" yaml:"pattern"`

	// OutputPrefix is prepended to the page-range identifier to form the
	// output filename (e.g. "ucie_spec_pages_" yields
	// "ucie_spec_pages_005.txt" for an input starting with "005_").
	OutputPrefix string `json:"output_prefix" yaml:"output_prefix"`

	// SkipExisting skips files whose output already exists instead of
	// overwriting it.
	SkipExisting bool `json:"skip_existing" yaml:"skip_existing"`
}

// DefaultPattern matches the chapter PDFs produced by splitting the UCIe
// specification with PDFsam.
const DefaultPattern = "*_PDFsam_UCIe_Specification_*.pdf"

// DefaultOutputPrefix is the output filename prefix for converted chapters.
const DefaultOutputPrefix = "ucie_spec_pages_"

// CatalogConfig holds settings for the conversion catalog.
type CatalogConfig struct {
	// CatalogDir is the directory holding the catalog database and exports.
	CatalogDir string `json:"catalog_dir" yaml:"catalog_dir"`
}
