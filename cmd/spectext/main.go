// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the spectext CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the spectext CLI.
var rootCmd = &cobra.Command{
	Use:   "spectext",
	Short: "Batch-convert specification PDFs to page-marked text",
	Long: `spectext converts the chapter PDFs of a split specification document
(e.g. the UCIe specification split with PDFsam) into plain-text files with
"--- Page N ---" markers, and keeps a catalog of conversion outcomes.

Use "spectext convert" to run a batch conversion and "spectext catalog"
to inspect or export the recorded outcomes.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./spectext.yaml or ~/.config/spectext/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("spectext")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "spectext"))
		}
	}

	viper.SetEnvPrefix("SPECTEXT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// stringSetting resolves a string setting: the flag when set, otherwise the
// viper key, otherwise the fallback.
func stringSetting(cmd *cobra.Command, flag, key, fallback string) string {
	if v, _ := cmd.Flags().GetString(flag); v != "" {
		return v
	}
	if v := viper.GetString(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
