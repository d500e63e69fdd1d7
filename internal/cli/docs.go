package cli

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(docsCmd)
}

const usageDoc = `# govctl

govctl keeps one Go toolchain active for the current environment.

## How resolution works

1. ` + "`root`" + ` in config.yaml (or ` + "`GOVCTL_ROOT`" + `) — an explicit
   install root containing ` + "`bin/go`" + `.
2. ` + "`alternate_tools.go`" + ` — a specific executable, useful for
   renamed binaries like ` + "`go3`" + ` or gotip builds.
3. Default discovery — ` + "`go`" + ` on PATH, then well-known install
   locations such as ` + "`/usr/local/go`" + `.

After a successful cycle the resolved bin directory is the first PATH
entry, and the status indicator shows the probed version, e.g.
` + "`Go 1.22.3`" + `.

## Commands

| Command | Purpose |
|---|---|
| status  | one cycle, print indicator text |
| env     | print resolved root/bin/version |
| use     | persist an explicit root override |
| pick    | choose among discovered toolchains |
| watch   | follow config changes |
| serve   | local JSON status API |
`

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Show usage documentation",
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(80),
		)
		if err != nil {
			return err
		}
		out, err := r.Render(usageDoc)
		if err != nil {
			return err
		}
		fmt.Print(out)
		return nil
	},
}
