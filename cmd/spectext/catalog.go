// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/spectext/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect or export the conversion catalog",
	Long: `Catalog manages the SQLite record of conversion outcomes written by
"spectext convert". Use subcommands to print a report or export the
records to YAML or JSON.`,
}

// --- report subcommand ---

var catalogReportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the recorded conversion outcomes",
	RunE:  runCatalogReport,
}

func runCatalogReport(cmd *cobra.Command, args []string) error {
	store, err := catalog.NewStore(catalogConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		recs, err := store.All(context.Background())
		if err != nil {
			return err
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(recs)
	}

	return store.Report(context.Background(), os.Stdout)
}

// --- export subcommand ---

var catalogExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the conversion catalog to YAML or JSON",
	RunE:  runCatalogExport,
}

func runCatalogExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	store, err := catalog.NewStore(catalogConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	var path string
	switch format {
	case "yaml", "":
		path, err = store.ExportYAML(context.Background())
	case "json":
		path, err = store.ExportJSON(context.Background())
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}
	if err != nil {
		return err
	}

	fmt.Println("Exported to", path)
	return nil
}

func init() {
	catalogReportCmd.Flags().Bool("json", false, "output records as JSON")
	catalogExportCmd.Flags().String("format", "yaml", "export format: yaml or json")

	for _, c := range []*cobra.Command{catalogReportCmd, catalogExportCmd} {
		c.Flags().String("catalog-dir", "", "directory for the conversion catalog (default: catalog)")
	}

	catalogCmd.AddCommand(catalogReportCmd)
	catalogCmd.AddCommand(catalogExportCmd)
	rootCmd.AddCommand(catalogCmd)
}
