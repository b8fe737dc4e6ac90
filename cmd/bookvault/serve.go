package main

import (
	"github.com/spf13/cobra"

	"github.com/bookvault/bookvault/internal/config"
	"github.com/bookvault/bookvault/internal/home"
	"github.com/bookvault/bookvault/internal/server"
)

var (
	serveHost string
	servePort string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Bookvault server",
	Long: `Start the Bookvault HTTP server.

The server opens the catalog database under the home directory and
serves the library API. Configuration is hot-reloaded when the config
file changes.

Examples:
  bookvault serve                    # Start on default port 8080
  bookvault serve --port 3000        # Start on custom port
  bookvault serve --host 0.0.0.0     # Bind to all interfaces`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfgMgr, err := config.NewManager(cfgFile)
		if err != nil {
			return err
		}
		cfgMgr.WatchConfig()
		cfg := cfgMgr.Get()

		logger := cfg.NewLogger()

		h, err := home.New(homeDir)
		if err != nil {
			return err
		}

		// Flags win over config file values.
		host := serveHost
		if !cmd.Flags().Changed("host") && cfg.Server.Host != "" {
			host = cfg.Server.Host
		}
		port := servePort
		if !cmd.Flags().Changed("port") && cfg.Server.Port != "" {
			port = cfg.Server.Port
		}

		srv, err := server.New(server.Config{
			Host:          host,
			Port:          port,
			Home:          h,
			ConfigManager: cfgMgr,
			Logger:        logger,
		})
		if err != nil {
			return err
		}

		// Start server (blocks until shutdown)
		return srv.Start(ctx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "127.0.0.1", "Host to bind to")
	serveCmd.Flags().StringVar(&servePort, "port", "8080", "Port to listen on")

	rootCmd.AddCommand(serveCmd)
}
