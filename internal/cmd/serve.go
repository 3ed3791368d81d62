package cmd

import (
	"github.com/spf13/cobra"

	"github.com/five82/liftbook/internal/app"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the catalog and programs as HTML",
	Long: `Serve the program selection and tabbed program pages over HTTP.

The listen address comes from listen_addr in the config unless --addr is set.

Examples:
  liftbook serve
  liftbook serve --addr :9000`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

var serveAddr string

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	opts := baseOptions()
	opts.LogOutput = cmd.ErrOrStderr()
	return app.Serve(cmd.Context(), opts, serveAddr)
}
