// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pdiddy/spectext/internal/catalog"
	"github.com/pdiddy/spectext/internal/convert"
	"github.com/pdiddy/spectext/internal/extract"
	"github.com/pdiddy/spectext/internal/scan"
	"github.com/pdiddy/spectext/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert specification PDFs to page-marked text files",
	Long: `Convert scans the spec directory for PDFs matching the filename
pattern, extracts their text page by page, and writes one text file per
PDF into the text directory. Each page is preceded by a "--- Page N ---"
marker line.

Failures are reported per file and never abort the batch; the command
exits 0 even when files fail unless --strict is given. Outcomes are
recorded in the conversion catalog unless --no-catalog is given.`,
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().String("spec-dir", "", "directory containing the specification PDFs (default: spec)")
	convertCmd.Flags().String("text-dir", "", "output directory for text files (default: <spec-dir>/text)")
	convertCmd.Flags().String("pattern", "", "filename glob for input PDFs")
	convertCmd.Flags().String("output-prefix", "", "prefix for output text filenames")
	convertCmd.Flags().Bool("skip-existing", false, "skip files whose output already exists instead of overwriting")
	convertCmd.Flags().Bool("strict", false, "exit non-zero when any file fails conversion")
	convertCmd.Flags().Bool("no-catalog", false, "do not record outcomes in the conversion catalog")
	convertCmd.Flags().String("catalog-dir", "", "directory for the conversion catalog (default: catalog)")

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg := convertConfig(cmd)

	files, err := scan.Find(cfg)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Found %d PDF files to convert\n", len(files))

	result, err := convert.ConvertBatch(extract.PDFOpener{}, files, cfg, os.Stdout)
	if err != nil {
		return err
	}

	noCatalog, _ := cmd.Flags().GetBool("no-catalog")
	if !noCatalog {
		store, err := catalog.NewStore(catalogConfig(cmd))
		if err != nil {
			return err
		}
		defer store.Close()
		if err := store.RecordBatch(context.Background(), result.Records); err != nil {
			return err
		}
	}

	strict, _ := cmd.Flags().GetBool("strict")
	if strict && result.HasFailures() {
		return fmt.Errorf("%d file(s) failed conversion", result.Failed)
	}
	return nil
}

// convertConfig resolves the conversion settings from flags, config file,
// and defaults.
func convertConfig(cmd *cobra.Command) types.ConvertConfig {
	specDir := stringSetting(cmd, "spec-dir", "convert.spec_dir", "spec")
	textDir := stringSetting(cmd, "text-dir", "convert.text_dir", filepath.Join(specDir, "text"))
	skipExisting, _ := cmd.Flags().GetBool("skip-existing")

	return types.ConvertConfig{
		SpecDir:      specDir,
		TextDir:      textDir,
		Pattern:      stringSetting(cmd, "pattern", "convert.pattern", types.DefaultPattern),
		OutputPrefix: stringSetting(cmd, "output-prefix", "convert.output_prefix", types.DefaultOutputPrefix),
		SkipExisting: skipExisting,
	}
}

// catalogConfig resolves the catalog settings from flags, config file, and
// defaults.
func catalogConfig(cmd *cobra.Command) types.CatalogConfig {
	return types.CatalogConfig{
		CatalogDir: stringSetting(cmd, "catalog-dir", "catalog.dir", "catalog"),
	}
}
