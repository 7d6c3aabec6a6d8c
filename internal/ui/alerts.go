package ui

import (
	"strings"

	"github.com/pawhaven/pawdeck/internal/notify"
)

// renderAlerts draws the transient banner stack under the header. Banners
// disappear on batch expiry or when dismissed with X.
func (m Model) renderAlerts() string {
	if len(m.feed) == 0 {
		return ""
	}
	var b strings.Builder
	for _, alert := range m.feed {
		line := alert.Slice.String() + ": " + alert.Message
		switch alert.Kind {
		case notify.KindError:
			b.WriteString(m.styles.ErrorBanner.Render("✗ " + line))
		default:
			b.WriteString(m.styles.SuccessBanner.Render("✓ " + line))
		}
		b.WriteString("\n")
	}
	return b.String()
}
