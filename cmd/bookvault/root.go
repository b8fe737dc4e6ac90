package main

import (
	"github.com/spf13/cobra"

	"github.com/bookvault/bookvault/internal/api"
	"github.com/bookvault/bookvault/version"
)

var (
	cfgFile      string
	homeDir      string
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "bookvault",
	Short: "Personal book library with automatic PDF metadata extraction",
	Long: `Bookvault is a personal book library server. Uploaded PDFs are
cataloged automatically: embedded metadata is read from the file, titles
and authors are cleaned of download-site debris, and genre, category,
and a description are inferred from the text.

The catalog includes:
  - PDF uploads with automatic metadata extraction
  - Manually added books without files
  - Download tracking per book
  - A one-page PDF poster summarizing the whole library`,
	Version: version.GitRelease,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.bookvault/config.yaml)",
	)
	rootCmd.PersistentFlags().StringVar(
		&homeDir, "home", "", "bookvault home directory (default: ~/.bookvault)",
	)
	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "output", "o", "yaml", "output format: yaml or json",
	)

	// Set output format before any command runs
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		api.SetOutputFormat(outputFormat)
	}

	rootCmd.AddCommand(versionCmd)
}
