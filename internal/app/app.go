package app

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"govctl/internal/envpath"
	"govctl/internal/statusbar"
	"govctl/internal/ui"
)

// Start runs the status dashboard TUI and returns any error. The
// process-wide indicator is disposed on exit.
func Start() error {
	ind := statusbar.Default()
	defer statusbar.DisposeDefault()
	u := envpath.New(ind, nil)
	if _, err := tea.NewProgram(ui.InitialModel(u, ind), tea.WithAltScreen()).Run(); err != nil {
		return err
	}
	return nil
}

// Main is a helper to use as entry-point from cmd.
func Main() {
	if err := Start(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
