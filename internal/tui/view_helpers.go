package tui

import (
	"fmt"
	"strings"
)

const uiDivider = "──────────────────────────────────────────────────────"

func (t *TUI) renderPage(title, data string) string {
	var b strings.Builder

	b.WriteString(t.styles.title.Render(title))
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(data) != "" {
		b.WriteString(strings.TrimRight(data, "\n"))
	} else {
		b.WriteString("-")
	}

	return t.styles.app.Render(b.String()) + "\n"
}

// field renders one "label: value" row with labels padded to width.
func (t *TUI) field(label string, width int, value string) string {
	return t.styles.label.Render(fmt.Sprintf("%-*s", width+1, label+":")) + " " + value + "\n"
}

func valueOrDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}
