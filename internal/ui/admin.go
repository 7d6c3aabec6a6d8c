package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleAdminKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	users := m.snap.Admin.Users

	switch {
	case key.Matches(msg, m.keys.ToggleState):
		if m.userCursor < len(users) {
			user := users[m.userCursor]
			next := ternary(user.Status == "suspended", "active", "suspended")
			id := user.ID
			return m, m.runOp(func(ctx context.Context) error {
				return m.store.UpdateUserStatus(ctx, id, next)
			})
		}
		return m, nil

	case key.Matches(msg, m.keys.Remove):
		if m.userCursor < len(users) {
			user := users[m.userCursor]
			if user.ID == m.snap.Auth.User.ID {
				return m, nil
			}
			id := user.ID
			return m, m.runOp(func(ctx context.Context) error {
				return m.store.DeleteUser(ctx, id)
			})
		}
		return m, nil
	}

	m.userCursor = m.moveIndex(m.userCursor, msg, len(users))
	return m, nil
}

func (m Model) renderAdmin() string {
	var b strings.Builder

	if m.snap.Admin.HasStats {
		stats := m.snap.Admin.Stats
		b.WriteString(m.styles.MutedText.Render(fmt.Sprintf(
			"%d users · %d orders · %s revenue · %d pets · %d products",
			stats.Users, stats.Orders, formatMoney(stats.Revenue), stats.Pets, stats.Products)))
		b.WriteString("\n\n")
	}

	users := m.snap.Admin.Users
	if len(users) == 0 {
		b.WriteString(m.styles.MutedText.Render("no accounts loaded · press r to refresh"))
		return b.String()
	}

	for i, user := range users {
		line := fmt.Sprintf(" %-20s %-28s %-12s ",
			truncate(user.Name, 20),
			truncate(user.Email, 28),
			user.Role)
		if i == m.userCursor {
			b.WriteString(m.styles.Selected.Render(line))
		} else {
			b.WriteString(m.styles.Text.Render(line))
		}
		status := user.Status
		if status == "" {
			status = "active"
		}
		b.WriteString(m.styles.StatusStyle(status).Render(status))
		b.WriteString("\n")
	}
	return b.String()
}
