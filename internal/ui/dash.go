package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"govctl/internal/config"
	"govctl/internal/envpath"
	"govctl/internal/statusbar"
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4d9375")).Bold(true)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#bfbaaa")).Width(10)
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#cb7676"))
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#dedcd5")).Faint(true)
)

type cycleDoneMsg struct {
	env envpath.Environment
	err error
}

// Model is the status dashboard: it runs one updater cycle on start and
// re-runs on demand, showing the indicator while a probe is in flight.
type Model struct {
	updater   *envpath.Updater
	indicator *statusbar.Indicator

	sp        spinner.Model
	checking  bool
	env       envpath.Environment
	haveEnv   bool
	err       error
	updatedAt time.Time
	width     int
	quitting  bool
}

// InitialModel builds the dash around an existing updater and indicator.
func InitialModel(u *envpath.Updater, ind *statusbar.Indicator) Model {
	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	return Model{updater: u, indicator: ind, sp: sp, checking: true, width: 80}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.sp.Tick, m.runCycle())
}

func (m Model) runCycle() tea.Cmd {
	u := m.updater
	return func() tea.Msg {
		cfg, err := config.Load()
		if err != nil {
			return cycleDoneMsg{err: err}
		}
		env, err := u.Apply(context.Background(), cfg)
		return cycleDoneMsg{env: env, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit
		case "r":
			if !m.checking {
				m.checking = true
				m.err = nil
				return m, tea.Batch(m.sp.Tick, m.runCycle())
			}
		}
	case cycleDoneMsg:
		m.checking = false
		m.updatedAt = time.Now()
		if msg.err != nil {
			m.err = msg.err
		} else {
			m.err = nil
			m.env = msg.env
			m.haveEnv = true
		}
		return m, nil
	case spinner.TickMsg:
		if m.checking {
			var cmd tea.Cmd
			m.sp, cmd = m.sp.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	s := titleStyle.Render("govctl") + "  " + m.indicator.Render(m.width/2) + "\n\n"
	if m.checking {
		s += fmt.Sprintf("  %s probing toolchain...\n", m.sp.View())
	} else if m.err != nil {
		s += "  " + errStyle.Render(m.err.Error()) + "\n"
	}
	if m.haveEnv {
		s += "\n"
		s += "  " + labelStyle.Render("root") + m.env.Root + "\n"
		s += "  " + labelStyle.Render("bin") + m.env.BinDir + "\n"
		s += "  " + labelStyle.Render("version") + m.env.Version.String() + "\n"
		s += "  " + labelStyle.Render("PATH[0]") + envpath.First() + "\n"
	}
	if !m.updatedAt.IsZero() {
		s += "\n  " + hintStyle.Render("updated "+m.updatedAt.Format("15:04:05")) + "\n"
	}
	s += "\n  " + hintStyle.Render("r refresh · q quit") + "\n"
	return s
}
