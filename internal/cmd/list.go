package cmd

import (
	"github.com/spf13/cobra"

	"github.com/five82/liftbook/internal/app"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the programs that load",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := baseOptions()
		opts.LogOutput = cmd.ErrOrStderr()
		return app.List(cmd.Context(), opts, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
