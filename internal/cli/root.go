package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"govctl/internal/app"
)

var rootCmd = &cobra.Command{
	Use:   "govctl",
	Short: "govctl – Go toolchain environment controller",
	Long:  "govctl resolves the active Go toolchain from layered configuration, keeps its bin directory first on PATH, and reflects the version in a status indicator.",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default action: launch the status dashboard
		return app.Start()
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
