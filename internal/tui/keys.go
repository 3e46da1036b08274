package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	yes  key.Binding
	no   key.Binding
	quit key.Binding
}

var keys = keyMap{
	yes:  key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "yes")),
	no:   key.NewBinding(key.WithKeys("n", "N", "q", "esc", "enter"), key.WithHelp("n", "no")),
	quit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
}

func helpLine(bindings ...key.Binding) string {
	line := ""
	for i, b := range bindings {
		if i > 0 {
			line += "    "
		}
		line += b.Help().Key + " " + b.Help().Desc
	}
	return line
}
