package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"govctl/internal/config"
	"govctl/internal/envpath"
	"govctl/internal/statusbar"
)

func init() {
	rootCmd.AddCommand(envCmd)
	envCmd.Flags().Bool("json", false, "print as JSON")
}

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Print the resolved toolchain environment",
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		ind := statusbar.Default()
		defer statusbar.DisposeDefault()
		u := envpath.New(ind, nil)
		env, err := u.Apply(context.Background(), cfg)
		if err != nil {
			return err
		}
		if asJSON {
			b, err := json.MarshalIndent(map[string]string{
				"root":    env.Root,
				"bin_dir": env.BinDir,
				"go_bin":  env.GoBin,
				"version": env.Version.String(),
				"path0":   envpath.First(),
			}, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(b))
			return nil
		}
		fmt.Printf("root:    %s\n", env.Root)
		fmt.Printf("bin:     %s\n", env.BinDir)
		fmt.Printf("go:      %s\n", env.GoBin)
		fmt.Printf("version: %s\n", env.Version)
		fmt.Printf("PATH[0]: %s\n", envpath.First())
		return nil
	},
}
