package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/five82/liftbook/internal/app"
	"github.com/five82/liftbook/internal/program"
)

var viewCmd = &cobra.Command{
	Use:   "view <program-id>",
	Short: "Open one program directly",
	Long: `Open a single program without the catalog.

Examples:
  liftbook view arturos-workout`,
	Args: cobra.ExactArgs(1),
	RunE: runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, args []string) error {
	id := args[0]
	if !program.ValidID(id) {
		return fmt.Errorf("invalid program id %q", id)
	}
	opts := baseOptions()
	opts.Program = id
	return app.Run(cmd.Context(), opts)
}
