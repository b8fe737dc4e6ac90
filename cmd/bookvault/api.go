package main

import (
	"github.com/spf13/cobra"

	"github.com/bookvault/bookvault/internal/server/endpoints"
)

var serverURL string

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Commands that call the running server",
	Long: `API commands call the running Bookvault server via HTTP.

These commands require a running server (bookvault serve).
Use --server to specify a custom server URL.

Examples:
  bookvault api health                    # Check server health
  bookvault api pdf-books upload x.pdf    # Upload and catalog a PDF
  bookvault api books list                # List manually added books
  bookvault api poster -f out.pdf         # Render the library poster`,
}

var pdfBooksCmd = &cobra.Command{
	Use:   "pdf-books",
	Short: "Uploaded PDF book commands",
}

var booksCmd = &cobra.Command{
	Use:   "books",
	Short: "Manual catalog commands",
}

// getServerURL returns the server URL at runtime (after flag parsing).
func getServerURL() string {
	return serverURL
}

func init() {
	// Add --server flag to api command (persistent so all subcommands inherit it)
	apiCmd.PersistentFlags().StringVar(
		&serverURL, "server", "http://localhost:8080", "Server URL",
	)

	// System endpoints at top level of api
	apiCmd.AddCommand((&endpoints.HealthEndpoint{}).Command(getServerURL))
	apiCmd.AddCommand((&endpoints.StatusEndpoint{}).Command(getServerURL))

	// Extraction preview and poster at top level
	apiCmd.AddCommand((&endpoints.ExtractEndpoint{}).Command(getServerURL))
	apiCmd.AddCommand((&endpoints.LibraryPosterEndpoint{}).Command(getServerURL))

	// PDF books as subcommand group
	for _, ep := range endpoints.PDFBookCommands() {
		pdfBooksCmd.AddCommand(ep.Command(getServerURL))
	}

	// Manual catalog as subcommand group
	for _, ep := range endpoints.BookCommands() {
		booksCmd.AddCommand(ep.Command(getServerURL))
	}

	apiCmd.AddCommand(pdfBooksCmd)
	apiCmd.AddCommand(booksCmd)
	rootCmd.AddCommand(apiCmd)
}
