package ui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pawhaven/pawdeck/internal/api"
	"github.com/pawhaven/pawdeck/internal/config"
	"github.com/pawhaven/pawdeck/internal/notify"
	"github.com/pawhaven/pawdeck/internal/state"
)

// View represents the current active view.
type View int

const (
	ViewLogin View = iota
	ViewDashboard
	ViewPets
	ViewProducts
	ViewCart
	ViewOrders
	ViewAppointments
	ViewMessages
	ViewAdmin
)

// Options configures the UI.
type Options struct {
	Context    context.Context
	Store      *state.Store
	Alerts     *notify.Aggregator
	Config     *config.Config
	ConfigPath string
	ThemeName  string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx        context.Context
	store      *state.Store
	alerts     *notify.Aggregator
	config     *config.Config
	configPath string

	// UI state
	keys        keyMap
	theme       Theme
	styles      Styles
	currentView View
	width       int
	height      int
	ready       bool

	// Data state
	snap        state.Snapshot
	feed        []notify.Alert
	lastUpdated time.Time

	// Per-view selection
	petCursor     int
	productCursor int
	cartCursor    int
	orderCursor   int
	apptCursor    int
	msgCursor     int
	userCursor    int
	showDetail    bool

	// Modal state
	form         *form
	registerMode bool
	showHelp     bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Dracula"
	}
	theme := GetTheme(themeName)

	m := Model{
		ctx:         ctx,
		store:       opts.Store,
		alerts:      opts.Alerts,
		config:      opts.Config,
		configPath:  opts.ConfigPath,
		keys:        DefaultKeyMap(),
		theme:       theme,
		styles:      theme.Styles(),
		currentView: ViewDashboard,
	}
	if opts.Store != nil {
		m.snap = opts.Store.Snapshot()
	}
	if !m.snap.Auth.LoggedIn {
		m.currentView = ViewLogin
		m.form = m.loginForm()
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		textinput.Blink,
		tickCmd(),
	}
	if m.snap.Auth.LoggedIn {
		cmds = append(cmds, m.loadView(ViewDashboard))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case tickMsg:
		cmd := m.refresh()
		return m, tea.Batch(cmd, tickCmd())

	case opDoneMsg:
		return m, m.refresh()

	case expireMsg:
		if m.alerts != nil {
			m.alerts.Expire(msg.batchID)
		}
		return m, m.refresh()
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderAlerts())
	b.WriteString(m.renderContent())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	return b.String()
}

func (m Model) renderContent() string {
	if m.form != nil {
		return m.form.view(m.styles)
	}
	switch m.currentView {
	case ViewLogin:
		return m.renderLogin()
	case ViewDashboard:
		return m.renderDashboard()
	case ViewPets:
		return m.renderPets()
	case ViewProducts:
		return m.renderProducts()
	case ViewCart:
		return m.renderCart()
	case ViewOrders:
		return m.renderOrders()
	case ViewAppointments:
		return m.renderAppointments()
	case ViewMessages:
		return m.renderMessages()
	case ViewAdmin:
		return m.renderAdmin()
	default:
		return ""
	}
}

// refresh pulls a fresh snapshot and recomputes the alert feed. The returned
// command, when non-nil, arms the expiry timer for a changed batch.
func (m *Model) refresh() tea.Cmd {
	if m.store == nil {
		return nil
	}
	m.snap = m.store.Snapshot()
	m.lastUpdated = time.Now()

	var cmds []tea.Cmd

	if !m.snap.Auth.LoggedIn {
		if m.currentView != ViewLogin {
			m.currentView = ViewLogin
			m.showDetail = false
			m.form = m.loginForm()
		}
	} else if m.currentView == ViewLogin {
		// Login or register just succeeded.
		m.currentView = ViewDashboard
		m.form = nil
		cmds = append(cmds, m.loadView(ViewDashboard))
	}

	if m.alerts != nil {
		alerts, batchID, reschedule := m.alerts.Collect(m.snap)
		m.feed = alerts
		if reschedule {
			cmds = append(cmds, expireCmd(batchID))
		}
	}
	return tea.Batch(cmds...)
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.showHelp {
		// Any key closes help.
		m.showHelp = false
		return m, nil
	}

	if m.form != nil {
		return m.handleFormKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.styles = m.theme.Styles()
		if m.config != nil {
			m.config.Theme = m.theme.Name
			_ = config.Save(m.configPath, *m.config)
		}
		return m, nil

	case key.Matches(msg, m.keys.Dismiss):
		if m.alerts != nil && len(m.feed) > 0 {
			m.alerts.Dismiss(m.feed[0].ID)
		}
		return m, m.refresh()

	case key.Matches(msg, m.keys.Logout):
		if m.snap.Auth.LoggedIn {
			return m, m.runOp(func(context.Context) error {
				return m.store.Logout()
			})
		}
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		return m, m.loadView(m.currentView)

	case key.Matches(msg, m.keys.Escape):
		if m.showDetail {
			m.showDetail = false
			return m, nil
		}
		if m.currentView != ViewDashboard && m.currentView != ViewLogin {
			m.currentView = ViewDashboard
		}
		return m, nil
	}

	if m.currentView != ViewLogin {
		if view, ok := m.viewForKey(msg); ok {
			return m.switchView(view)
		}
	}

	switch m.currentView {
	case ViewDashboard:
		return m.handleDashboardKey(msg)
	case ViewPets:
		return m.handlePetsKey(msg)
	case ViewProducts:
		return m.handleProductsKey(msg)
	case ViewCart:
		return m.handleCartKey(msg)
	case ViewOrders:
		return m.handleOrdersKey(msg)
	case ViewAppointments:
		return m.handleAppointmentsKey(msg)
	case ViewMessages:
		return m.handleMessagesKey(msg)
	case ViewAdmin:
		return m.handleAdminKey(msg)
	}

	return m, nil
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" {
		if m.currentView == ViewLogin {
			return m, nil
		}
		m.form = nil
		return m, nil
	}
	if m.currentView == ViewLogin && msg.String() == "ctrl+r" {
		m.toggleLoginMode()
		return m, nil
	}
	return m, m.form.update(msg)
}

// viewForKey maps a view-switch key to its target, applying role gates.
func (m Model) viewForKey(msg tea.KeyMsg) (View, bool) {
	switch {
	case key.Matches(msg, m.keys.ViewDashboard):
		return ViewDashboard, true
	case key.Matches(msg, m.keys.ViewPets):
		return ViewPets, true
	case key.Matches(msg, m.keys.ViewShop):
		return ViewProducts, true
	case key.Matches(msg, m.keys.ViewCart):
		return ViewCart, true
	case key.Matches(msg, m.keys.ViewOrders):
		return ViewOrders, true
	case key.Matches(msg, m.keys.ViewAppointments):
		return ViewAppointments, true
	case key.Matches(msg, m.keys.ViewMessages):
		return ViewMessages, true
	case key.Matches(msg, m.keys.ViewAdmin):
		if m.snap.Auth.User.IsAdmin() {
			return ViewAdmin, true
		}
	}
	return 0, false
}

func (m Model) switchView(view View) (tea.Model, tea.Cmd) {
	m.currentView = view
	m.showDetail = false
	m.form = nil
	return m, m.loadView(view)
}

// loadView fetches the data backing a view.
func (m Model) loadView(view View) tea.Cmd {
	if m.store == nil || !m.snap.Auth.LoggedIn {
		return nil
	}
	switch view {
	case ViewDashboard:
		return tea.Batch(
			m.runOp(m.store.FetchDashboardStats),
			m.runOp(m.store.FetchProfile),
		)
	case ViewPets:
		return m.runOp(m.store.FetchPets)
	case ViewProducts:
		return m.runOp(m.store.FetchProducts)
	case ViewCart:
		return m.runOp(m.store.FetchCart)
	case ViewOrders:
		return m.runOp(m.store.FetchMyOrders)
	case ViewAppointments:
		if m.snap.Auth.User.Role == api.RoleVeterinary {
			return tea.Batch(
				m.runOp(m.store.FetchMyAppointments),
				m.runOp(m.store.FetchVetSchedule),
			)
		}
		return m.runOp(m.store.FetchMyAppointments)
	case ViewMessages:
		return m.runOp(m.store.FetchMessages)
	case ViewAdmin:
		return tea.Batch(
			m.runOp(m.store.FetchUsers),
			m.runOp(m.store.FetchAdminStats),
		)
	}
	return nil
}

// runOp executes a store operation off the UI goroutine. The outcome lands
// in the store; the feed surfaces failures, so the error is not re-raised.
func (m Model) runOp(fn func(context.Context) error) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		_ = fn(ctx)
		return opDoneMsg{}
	}
}

// moveIndex applies list navigation keys to a cursor, clamped to count.
func (m Model) moveIndex(idx int, msg tea.KeyMsg, count int) int {
	if count == 0 {
		return 0
	}
	switch {
	case key.Matches(msg, m.keys.Down):
		idx++
	case key.Matches(msg, m.keys.Up):
		idx--
	case key.Matches(msg, m.keys.Top):
		idx = 0
	case key.Matches(msg, m.keys.Bottom):
		idx = count - 1
	}
	if idx > count-1 {
		idx = count - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}

// Messages

type tickMsg time.Time

type opDoneMsg struct{}

type expireMsg struct{ batchID string }

// Commands

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func expireCmd(batchID string) tea.Cmd {
	return tea.Tick(notify.DisplayDuration, func(time.Time) tea.Msg {
		return expireMsg{batchID: batchID}
	})
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
