package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Refresh    key.Binding
	Escape     key.Binding
	Logout     key.Binding
	Dismiss    key.Binding

	// View switching
	ViewDashboard    key.Binding
	ViewPets         key.Binding
	ViewShop         key.Binding
	ViewCart         key.Binding
	ViewOrders       key.Binding
	ViewAppointments key.Binding
	ViewMessages     key.Binding
	ViewAdmin        key.Binding

	// Navigation
	Up      key.Binding
	Down    key.Binding
	Top     key.Binding
	Bottom  key.Binding
	Open    key.Binding
	Confirm key.Binding

	// Actions
	Edit        key.Binding
	Profile     key.Binding
	Adopt       key.Binding
	AddToCart   key.Binding
	Review      key.Binding
	Increment   key.Binding
	Decrement   key.Binding
	Remove      key.Binding
	Checkout    key.Binding
	ClearCart   key.Binding
	Cancel      key.Binding
	New         key.Binding
	Advance     key.Binding
	ToggleState key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "e"),
			key.WithHelp("e", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Refresh view"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Back"),
		),
		Logout: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "Log out"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("X"),
			key.WithHelp("X", "Dismiss alert"),
		),

		ViewDashboard: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "Dashboard"),
		),
		ViewPets: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "Pets"),
		),
		ViewShop: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "Shop"),
		),
		ViewCart: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Cart"),
		),
		ViewOrders: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "Orders"),
		),
		ViewAppointments: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "Vet appointments"),
		),
		ViewMessages: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "Messages"),
		),
		ViewAdmin: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "Admin users"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "Go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Go to bottom"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Open"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Confirm"),
		),

		Edit: key.NewBinding(
			key.WithKeys("E"),
			key.WithHelp("E", "Edit listing"),
		),
		Profile: key.NewBinding(
			key.WithKeys("P"),
			key.WithHelp("P", "Edit profile"),
		),
		Adopt: key.NewBinding(
			key.WithKeys("A"),
			key.WithHelp("A", "Apply for adoption"),
		),
		AddToCart: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "Add to cart"),
		),
		Review: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "Write review"),
		),
		Increment: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "More"),
		),
		Decrement: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "Fewer"),
		),
		Remove: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "Remove/cancel"),
		),
		Checkout: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "Checkout"),
		),
		ClearCart: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "Empty cart"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "Cancel"),
		),
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "New"),
		),
		Advance: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "Advance status"),
		),
		ToggleState: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "Toggle active/suspended"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.ViewDashboard, k.ViewPets, k.ViewShop, k.ViewCart, k.ViewOrders},
		{k.ViewAppointments, k.ViewMessages, k.ViewAdmin},
		{k.Up, k.Down, k.Top, k.Bottom, k.Open},
		{k.Adopt, k.AddToCart, k.Review, k.Increment, k.Decrement},
		{k.Checkout, k.ClearCart, k.Remove, k.New, k.Edit, k.Advance},
		{k.Profile, k.ToggleState},
		{k.Refresh, k.Dismiss, k.CycleTheme, k.Logout, k.Help, k.Quit},
	}
}
