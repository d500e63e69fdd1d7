package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"govctl/internal/config"
	"govctl/internal/system"
)

func init() {
	rootCmd.AddCommand(useCmd)
	rootCmd.AddCommand(unsetCmd)
}

var useCmd = &cobra.Command{
	Use:   "use <root>",
	Short: "Persist an explicit toolchain root override",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := filepath.Abs(args[0])
		if err != nil {
			return err
		}
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		cfg.Root = root
		if err := config.Save(cfg); err != nil {
			return err
		}
		system.Logger.Info("root override saved", "root", root)
		return nil
	},
}

var unsetCmd = &cobra.Command{
	Use:   "unset",
	Short: "Clear the toolchain root override",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if cfg.Root == "" {
			system.Logger.Info("no root override set")
			return nil
		}
		cfg.Root = ""
		if err := config.Save(cfg); err != nil {
			return err
		}
		system.Logger.Info("root override cleared")
		return nil
	},
}
