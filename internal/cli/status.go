package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"govctl/internal/config"
	"govctl/internal/envpath"
	"govctl/internal/statusbar"
)

func init() {
	rootCmd.AddCommand(statusCmd)
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Run one update cycle and print the indicator text",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		ind := statusbar.Default()
		defer statusbar.DisposeDefault()
		u := envpath.New(ind, nil)
		_, err = u.Apply(context.Background(), cfg)
		fmt.Println(ind.Text())
		return err
	},
}
