package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// confirmModel is a single yes/no question. Anything but an explicit "yes"
// counts as "no"; ctrl+c aborts the whole program.
type confirmModel struct {
	prompt string
	styles styles

	answered  bool
	confirmed bool
	aborted   bool
}

func newConfirmModel(prompt string, st styles) confirmModel {
	return confirmModel{prompt: prompt, styles: st}
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.yes):
		m.answered = true
		m.confirmed = true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.quit):
		m.aborted = true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.no):
		m.answered = true
		return m, tea.Quit
	}

	return m, nil
}

func (m confirmModel) View() string {
	if m.answered || m.aborted {
		return ""
	}

	content := m.styles.title.Render(m.prompt) + "\n\n" + m.styles.help.Render(helpLine(keys.yes, keys.no))
	return m.styles.box.Render(content) + "\n"
}
