package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pawhaven/pawdeck/internal/api"
)

func (m Model) loginForm() *form {
	store := m.store
	ctx := m.ctx
	return newForm(
		"Sign in to PawHaven  (ctrl+r to create an account)",
		func(values []string) tea.Cmd {
			email, password := values[0], values[1]
			if email == "" || password == "" {
				return nil
			}
			return func() tea.Msg {
				_ = store.Login(ctx, email, password)
				return opDoneMsg{}
			}
		},
		formField{label: "Email", placeholder: "you@example.com"},
		formField{label: "Password", secret: true},
	)
}

func (m Model) registerForm() *form {
	store := m.store
	ctx := m.ctx
	return newForm(
		"Create a PawHaven account  (ctrl+r to sign in)",
		func(values []string) tea.Cmd {
			input := api.RegisterInput{
				Name:     values[0],
				Email:    values[1],
				Password: values[2],
				Role:     values[3],
			}
			if input.Name == "" || input.Email == "" || input.Password == "" {
				return nil
			}
			if input.Role == "" {
				input.Role = api.RoleCustomer
			}
			return func() tea.Msg {
				_ = store.Register(ctx, input)
				return opDoneMsg{}
			}
		},
		formField{label: "Name", placeholder: "Jordan Smith"},
		formField{label: "Email", placeholder: "you@example.com"},
		formField{label: "Password", secret: true},
		formField{label: "Role", placeholder: "customer, seller or veterinary"},
	)
}

func (m *Model) toggleLoginMode() {
	m.registerMode = !m.registerMode
	if m.registerMode {
		m.form = m.registerForm()
	} else {
		m.form = m.loginForm()
	}
}

func (m Model) renderLogin() string {
	// The login form is always active on this view; this is a fallback.
	return m.styles.MutedText.Render("press ctrl+r to switch between sign in and sign up")
}
