package ui

import (
	"fmt"
	"strings"

	"github.com/pawhaven/pawdeck/internal/state"
)

// viewTitle returns the display name of a view.
func viewTitle(v View) string {
	switch v {
	case ViewLogin:
		return "Sign in"
	case ViewDashboard:
		return "Dashboard"
	case ViewPets:
		return "Pets"
	case ViewProducts:
		return "Shop"
	case ViewCart:
		return "Cart"
	case ViewOrders:
		return "Orders"
	case ViewAppointments:
		return "Appointments"
	case ViewMessages:
		return "Messages"
	case ViewAdmin:
		return "Admin"
	default:
		return ""
	}
}

// viewSlice maps a view to the slice whose status it displays.
func viewSlice(v View) state.Slice {
	switch v {
	case ViewLogin:
		return state.SliceAuth
	case ViewDashboard:
		return state.SliceDashboard
	case ViewPets:
		return state.SlicePets
	case ViewProducts:
		return state.SliceProducts
	case ViewCart:
		return state.SliceCart
	case ViewOrders:
		return state.SliceOrders
	case ViewAppointments:
		return state.SliceAppointments
	case ViewMessages:
		return state.SliceMessages
	case ViewAdmin:
		return state.SliceAdmin
	default:
		return state.SliceDashboard
	}
}

func (m Model) renderHeader() string {
	var parts []string
	parts = append(parts, m.styles.Logo.Render("🐾 pawdeck"))
	parts = append(parts, m.styles.AccentText.Render(viewTitle(m.currentView)))

	if m.snap.StatusOf(viewSlice(m.currentView)).Loading {
		parts = append(parts, m.styles.InfoText.Render("syncing…"))
	}

	if m.snap.Auth.LoggedIn {
		user := m.snap.Auth.User
		who := fmt.Sprintf("%s <%s> %s", user.Name, user.Email, user.Role)
		parts = append(parts, m.styles.MutedText.Render(who))
		if count := m.snap.Cart.ItemCount; count > 0 {
			parts = append(parts, m.styles.WarningText.Render(fmt.Sprintf("cart: %d", count)))
		}
		if unread := m.snap.Messages.Unread; unread > 0 {
			parts = append(parts, m.styles.InfoText.Render(fmt.Sprintf("unread: %d", unread)))
		}
	} else {
		parts = append(parts, m.styles.MutedText.Render("not signed in"))
	}

	return m.styles.Header.Render(strings.Join(parts, "  "))
}

func (m Model) renderCommandBar() string {
	var hints []string
	switch m.currentView {
	case ViewLogin:
		hints = []string{"enter submit", "ctrl+r sign in/up", "ctrl+c quit"}
	case ViewPets:
		hints = []string{"j/k move", "enter detail", "A adopt", "r refresh"}
	case ViewProducts:
		hints = []string{"j/k move", "enter detail", "b add to cart", "R review"}
	case ViewCart:
		hints = []string{"+/- quantity", "x remove", "C checkout", "D empty"}
	case ViewOrders:
		hints = []string{"j/k move", "enter detail", "x cancel"}
	case ViewAppointments:
		hints = []string{"n book", "x cancel", "a advance", "r refresh"}
	case ViewMessages:
		hints = []string{"j/k move", "enter read", "n compose"}
	case ViewAdmin:
		hints = []string{"j/k move", "t toggle status", "x delete"}
	default:
		hints = []string{"d/p/s/c/o/v/m views", "P profile", "r refresh"}
	}
	hints = append(hints, "h help", "e quit")
	bar := strings.Join(hints, " · ")
	if !m.lastUpdated.IsZero() {
		bar += "  ·  synced " + m.lastUpdated.Format("15:04:05")
	}
	return m.styles.Footer.Render(bar)
}
