// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the docsmart CLI.
//
// Each document operation is a subcommand: pagenum, watermark, convert,
// extract, protect, unlock, repair, and fetch. Every subcommand takes path
// arguments, performs one transformation through a library or external
// program, writes a new file, and exits 0 on success or 1 on any error
// with diagnostics on stderr.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/AnjaneyaKaushik/docsmart-backend/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds credentials loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// secretDefault returns fallback if non-empty, otherwise the secret value
// for key if one was loaded.
func secretDefault(key, fallback string) string {
	if fallback != "" {
		return fallback
	}
	if v, ok := loadedSecrets[key]; ok {
		return v
	}
	return ""
}

// rootCmd is the base command for the docsmart CLI.
var rootCmd = &cobra.Command{
	Use:   "docsmart",
	Short: "Document-processing toolbox for the DocSmart backend",
	Long: `docsmart performs single document transformations: stamping page numbers
or watermarks onto PDFs, converting between DOCX and PDF through a headless
office suite, extracting PDF text, password-protecting and unlocking PDFs,
and repairing damaged documents.

Each operation is one subcommand with the shape
"docsmart <op> <input> <output>". The heavy lifting (PDF parsing,
encryption, office-document rendering) is delegated to pdfcpu and
LibreOffice; this tool handles staging, verification, and cleanup.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./docsmart.yaml or ~/.config/docsmart/config.yaml)")
	rootCmd.PersistentFlags().Bool("no-history", false, "skip recording this run in the history store")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("docsmart")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "docsmart"))
		}
	}

	viper.SetEnvPrefix("DOCSMART")
	viper.AutomaticEnv()

	viper.SetDefault("page_number.font_size", 14)
	viper.SetDefault("page_number.position", "tr")
	viper.SetDefault("page_number.margin", 30)
	viper.SetDefault("watermark.text", "Processed by DocSmart")
	viper.SetDefault("watermark.font_size", 40)
	viper.SetDefault("watermark.opacity", 0.2)
	viper.SetDefault("watermark.rotation", 45)
	viper.SetDefault("history.path", filepath.Join(".docsmart", "history.db"))
	viper.SetDefault("history.max_results", 20)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// stringSetting resolves a setting with flag > config > default precedence.
func stringSetting(cmd *cobra.Command, flag, key string) string {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetString(flag)
		return v
	}
	return viper.GetString(key)
}

func intSetting(cmd *cobra.Command, flag, key string) int {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetInt(flag)
		return v
	}
	return viper.GetInt(key)
}

func floatSetting(cmd *cobra.Command, flag, key string) float64 {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetFloat64(flag)
		return v
	}
	return viper.GetFloat64(key)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
