package ui

import (
	"fmt"
	"strings"
)

// renderHelp draws the full-screen help overlay. Any key closes it.
func (m Model) renderHelp() string {
	var b strings.Builder
	b.WriteString(m.styles.Logo.Render("🐾 pawdeck"))
	b.WriteString(m.styles.MutedText.Render("  key bindings"))
	b.WriteString("\n\n")

	for _, group := range m.keys.FullHelp() {
		for _, binding := range group {
			help := binding.Help()
			b.WriteString(fmt.Sprintf("  %s %s\n",
				m.styles.AccentText.Render(fmt.Sprintf("%-12s", help.Key)),
				m.styles.Text.Render(help.Desc)))
		}
		b.WriteString("\n")
	}

	b.WriteString(m.styles.FaintText.Render("press any key to close"))
	return b.String()
}
