package client

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-password-vault/models"
)

const countdownWidth = 30

type codeMsg models.OneTimeCode

type watchKeyMap struct {
	quit key.Binding
	copy key.Binding
}

var watchKeys = watchKeyMap{
	quit: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c")),
	copy: key.NewBinding(key.WithKeys("c")),
}

// watchModel is the full-screen countdown shown by "totp --watch" on a
// terminal. Codes arrive as codeMsg from a CodeTicker.
type watchModel struct {
	path      string
	code      models.OneTimeCode
	spinner   spinner.Model
	clipboard Clipboard
	status    string
}

func newWatchModel(path string, first models.OneTimeCode, cb Clipboard) watchModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return watchModel{path: path, code: first, spinner: s, clipboard: cb}
}

func (m watchModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, watchKeys.quit):
			return m, tea.Quit
		case key.Matches(msg, watchKeys.copy):
			if err := m.clipboard.WriteAll(m.code.Code); err != nil {
				m.status = fmt.Sprintf("Copy failed: %v", err)
			} else {
				m.status = "Copied"
			}
		}
		return m, nil

	case codeMsg:
		if msg.Code != m.code.Code {
			m.status = ""
		}
		m.code = models.OneTimeCode(msg)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m watchModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.path))
	b.WriteString("\n\n")
	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(titleStyle.Render(m.code.Code))
	b.WriteString("  ")
	b.WriteString(countdownBar(m.code))
	b.WriteString(fmt.Sprintf(" %2ds", m.code.Remaining))
	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(m.status)
	}
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("c: copy code  q: quit"))

	return boxStyle.Render(b.String())
}

func countdownBar(c models.OneTimeCode) string {
	if c.Period <= 0 {
		return ""
	}
	filled := countdownWidth * c.Remaining / c.Period
	filled = max(0, min(filled, countdownWidth))
	return strings.Repeat("█", filled) + helpStyle.Render(strings.Repeat("░", countdownWidth-filled))
}

// programWorker runs a bubbletea program as a [workers.Worker] and cancels
// the shared context once the user quits.
type programWorker struct {
	program *tea.Program
	done    context.CancelFunc
	err     error
}

func (w *programWorker) Run(context.Context) {
	defer w.done()
	if _, err := w.program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		w.err = err
	}
}
