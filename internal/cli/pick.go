package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"

	"govctl/internal/config"
	"govctl/internal/statusbar"
	"govctl/internal/system"
	"govctl/internal/toolchain"
)

func init() {
	rootCmd.AddCommand(pickCmd)
	pickCmd.Flags().StringP("filter", "f", "", "fuzzy-filter candidates before showing the form")
}

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Interactively select the active toolchain",
	RunE: func(cmd *cobra.Command, args []string) error {
		filter, _ := cmd.Flags().GetString("filter")
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		cands := toolchain.Candidates(cfg)
		if filter != "" {
			cands = fuzzyFilter(cands, filter)
		}
		if len(cands) == 0 {
			return fmt.Errorf("no toolchain candidates found")
		}

		theme := pickTheme()

		opts := make([]huh.Option[string], 0, len(cands))
		for _, c := range cands {
			opts = append(opts, huh.NewOption(fmt.Sprintf("%s — %s", c.Label, c.BinPath), c.BinPath))
		}

		var chosen string
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Go toolchain").
					Description("The selection is saved as the alternate tool for \"go\".").
					Options(opts...).
					Value(&chosen),
			),
		).WithTheme(theme).WithWidth(72)
		if err := form.Run(); err != nil {
			return err
		}

		var picked toolchain.Option
		for _, c := range cands {
			if c.BinPath == chosen {
				picked = c
				break
			}
		}
		statusbar.Default().Select(picked)
		if cfg.AlternateTools == nil {
			cfg.AlternateTools = map[string]string{}
		}
		cfg.AlternateTools[toolchain.GoTool] = picked.BinPath
		if err := config.Save(cfg); err != nil {
			return err
		}
		system.Logger.Info("toolchain selected", "label", picked.Label, "bin", picked.BinPath)
		return nil
	},
}

// pickGreen is the accent color for the selection form.
var pickGreen = lipgloss.Color("#4d9375")

func pickTheme() *huh.Theme {
	theme := huh.ThemeCharm()
	theme.Focused.Title = theme.Focused.Title.Foreground(pickGreen).Bold(true)
	theme.Focused.SelectedOption = lipgloss.NewStyle().Foreground(pickGreen)
	theme.Focused.Base = theme.Focused.Base.BorderForeground(pickGreen)
	return theme
}

// fuzzyFilter keeps candidates whose label or path fuzzy-matches q.
func fuzzyFilter(cands []toolchain.Option, q string) []toolchain.Option {
	hay := make([]string, len(cands))
	for i, c := range cands {
		hay[i] = c.Label + " " + c.BinPath
	}
	matches := fuzzy.Find(q, hay)
	out := make([]toolchain.Option, 0, len(matches))
	for _, m := range matches {
		out = append(out, cands[m.Index])
	}
	return out
}
