package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pawhaven/pawdeck/internal/api"
)

func (m Model) handleDashboardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Profile) {
		m.form = m.profileForm()
	}
	return m, nil
}

func (m Model) profileForm() *form {
	store := m.store
	ctx := m.ctx
	user := m.snap.Auth.User
	return newForm(
		"Edit profile  (leave a field blank to keep it)",
		func(values []string) tea.Cmd {
			input := api.ProfileInput{
				Name:     values[0],
				Email:    values[1],
				Password: values[2],
			}
			if input.Name == "" && input.Email == "" && input.Password == "" {
				return nil
			}
			return func() tea.Msg {
				_ = store.UpdateProfile(ctx, input)
				return opDoneMsg{}
			}
		},
		formField{label: "Name", initial: user.Name},
		formField{label: "Email", initial: user.Email},
		formField{label: "New password", secret: true},
	)
}

func (m Model) renderDashboard() string {
	var b strings.Builder

	user := m.snap.Auth.User
	b.WriteString(m.styles.AccentText.Render("Welcome back, " + user.Name))
	b.WriteString("\n\n")

	dashboard := m.snap.Dashboard
	if !dashboard.HasStats {
		if dashboard.Status.Loading {
			b.WriteString(m.styles.MutedText.Render("fetching your dashboard…"))
		} else {
			b.WriteString(m.styles.MutedText.Render("no dashboard data yet · press r to refresh"))
		}
		return b.String()
	}

	stats := dashboard.Stats
	rows := []struct {
		label string
		value string
	}{
		{"Orders", fmt.Sprintf("%d", stats.Orders)},
		{"Revenue", formatMoney(stats.Revenue)},
		{"Pets listed", fmt.Sprintf("%d", stats.Pets)},
		{"Products listed", fmt.Sprintf("%d", stats.Products)},
		{"Appointments", fmt.Sprintf("%d", stats.Appointments)},
	}
	if user.IsAdmin() {
		rows = append(rows, struct {
			label string
			value string
		}{"Users", fmt.Sprintf("%d", stats.Users)})
	}

	for _, row := range rows {
		b.WriteString(m.styles.MutedText.Render(fmt.Sprintf("  %-18s", row.label)))
		b.WriteString(m.styles.Text.Render(row.value))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.FaintText.Render("p pets · s shop · c cart · o orders · v appointments · m messages · P profile"))
	return b.String()
}
