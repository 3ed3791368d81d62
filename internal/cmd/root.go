// Package cmd implements the liftbook command line.
package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/five82/liftbook/internal/app"
)

var rootCmd = &cobra.Command{
	Use:   "liftbook",
	Short: "Browse workout programs in the terminal",
	Long: `Liftbook loads a catalog of workout programs and shows each one as
tabbed training days with warm-up options, exercises, and a cool-down.

Run without arguments to open the catalog. Use "liftbook view <id>" to open
one program directly, or "liftbook serve" for the browser view.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Run(cmd.Context(), baseOptions())
	},
}

var (
	configPath string
	prefsPath  string
)

// Execute runs the root command until ctx is cancelled.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default is $HOME/.config/liftbook/config.toml)")
	rootCmd.PersistentFlags().StringVar(&prefsPath, "prefs", "", "preferences file (default is $HOME/.config/liftbook/prefs.toml)")
}

func baseOptions() app.Options {
	return app.Options{
		ConfigPath: configPath,
		PrefsPath:  prefsPath,
	}
}
