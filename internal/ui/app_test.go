package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pawhaven/pawdeck/internal/state"
)

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestNew_StartsAtLoginWhenLoggedOut(t *testing.T) {
	m := New(Options{})
	if m.currentView != ViewLogin {
		t.Fatalf("currentView = %v, want ViewLogin", m.currentView)
	}
	if m.form == nil {
		t.Fatal("login form not armed")
	}
}

func TestMoveIndex_ClampsToList(t *testing.T) {
	m := Model{keys: DefaultKeyMap()}

	if got := m.moveIndex(0, keyRune('j'), 3); got != 1 {
		t.Fatalf("down from 0 = %d, want 1", got)
	}
	if got := m.moveIndex(2, keyRune('j'), 3); got != 2 {
		t.Fatalf("down at bottom = %d, want 2", got)
	}
	if got := m.moveIndex(0, tea.KeyMsg{Type: tea.KeyUp}, 3); got != 0 {
		t.Fatalf("up at top = %d, want 0", got)
	}
	if got := m.moveIndex(2, keyRune('g'), 3); got != 0 {
		t.Fatalf("top = %d, want 0", got)
	}
	if got := m.moveIndex(0, keyRune('G'), 3); got != 2 {
		t.Fatalf("bottom = %d, want 2", got)
	}
	if got := m.moveIndex(5, keyRune('j'), 3); got != 2 {
		t.Fatalf("stale cursor = %d, want clamped to 2", got)
	}
	if got := m.moveIndex(4, keyRune('j'), 0); got != 0 {
		t.Fatalf("empty list = %d, want 0", got)
	}
}

func TestNextOrderStatus(t *testing.T) {
	steps := map[string]string{
		"placed":    "confirmed",
		"confirmed": "shipped",
		"shipped":   "delivered",
		"delivered": "",
		"cancelled": "",
	}
	for current, want := range steps {
		if got := nextOrderStatus(current); got != want {
			t.Fatalf("nextOrderStatus(%s) = %q, want %q", current, got, want)
		}
	}
}

func TestNextAppointmentStatus(t *testing.T) {
	if got := nextAppointmentStatus("scheduled"); got != "confirmed" {
		t.Fatalf("scheduled -> %q, want confirmed", got)
	}
	if got := nextAppointmentStatus("confirmed"); got != "completed" {
		t.Fatalf("confirmed -> %q, want completed", got)
	}
	if got := nextAppointmentStatus("completed"); got != "" {
		t.Fatalf("completed -> %q, want terminal", got)
	}
}

func TestViewSliceCoversEveryView(t *testing.T) {
	views := []View{
		ViewLogin, ViewDashboard, ViewPets, ViewProducts, ViewCart,
		ViewOrders, ViewAppointments, ViewMessages, ViewAdmin,
	}
	seen := make(map[string]bool)
	for _, view := range views {
		if viewTitle(view) == "" {
			t.Fatalf("view %d has no title", view)
		}
		seen[viewSlice(view).String()] = true
	}
	for _, slice := range []state.Slice{state.SliceAuth, state.SliceCart, state.SliceOrders} {
		if !seen[slice.String()] {
			t.Fatalf("no view maps to slice %s", slice)
		}
	}
}
