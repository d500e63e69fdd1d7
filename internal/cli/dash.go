package cli

import (
	"github.com/spf13/cobra"

	"govctl/internal/app"
)

func init() {
	rootCmd.AddCommand(dashCmd)
}

// Same as running govctl with no arguments; kept as a named command so
// it shows up in help and shell completion.
var dashCmd = &cobra.Command{
	Use:   "dash",
	Short: "Open the status dashboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Start()
	},
}
