package login

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"dtimer/internal/ui/components"
	"dtimer/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

// Port is the minimal interface this screen needs from the account store.
type Port interface {
	Login(ctx context.Context, username, password string) (bool, error)
	CreateAccount(ctx context.Context, username, password string) (bool, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

// LoginResultMsg carries the outcome of a login attempt.
type LoginResultMsg struct {
	Username string
	OK       bool
	Err      error
}

// CreateResultMsg carries the outcome of an account creation attempt.
type CreateResultMsg struct {
	Username string
	Created  bool
	Err      error
}

// ─── focus ───────────────────────────────────────────────────────────────────

type focusID int

const (
	focusUsername focusID = iota
	focusPassword
	focusLogin
	focusCreate
	focusNight
	focusCount
)

const stampLayout = "2006-01-02 15:04:05"

// ─── key bindings ────────────────────────────────────────────────────────────

type keyMap struct {
	Next  key.Binding
	Prev  key.Binding
	Enter key.Binding
	Night key.Binding
	Quit  key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Next:  key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next")),
		Prev:  key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev")),
		Enter: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "press")),
		Night: key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "night mode")),
		Quit:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Enter, k.Night, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Next, k.Prev, k.Enter}, {k.Night, k.Quit}}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the login/create-account screen.
type Model struct {
	port     Port
	username textinput.Model
	password textinput.Model
	focus    focusID
	night    bool
	stamp    string
	keys     keyMap
	help     help.Model
}

// New builds the screen. now is rendered once and never refreshed.
func New(port Port, now time.Time, night bool) Model {
	user := textinput.New()
	user.Prompt = ""
	user.Width = 24
	user.CharLimit = 128
	user.Focus()

	pass := textinput.New()
	pass.Prompt = ""
	pass.Width = 24
	pass.CharLimit = 128
	pass.EchoMode = textinput.EchoPassword
	pass.EchoCharacter = '*'

	return Model{
		port:     port,
		username: user,
		password: pass,
		focus:    focusUsername,
		night:    night,
		stamp:    now.Format(stampLayout),
		keys:     defaultKeys(),
		help:     help.New(),
	}
}

func (m Model) Init() tea.Cmd { return textinput.Blink }

func (m Model) Username() string { return m.username.Value() }
func (m Model) Password() string { return m.password.Value() }
func (m Model) NightMode() bool  { return m.night }
func (m Model) Stamp() string    { return m.stamp }

func (m Model) Palette() theme.Palette { return theme.For(m.night) }

// ToggleNight flips the display palette. Nothing else changes.
func (m *Model) ToggleNight() { m.night = !m.night }

// SetCredentials replaces the input contents.
func (m *Model) SetCredentials(username, password string) {
	m.username.SetValue(username)
	m.password.SetValue(password)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Next):
			cmd := m.setFocus((m.focus + 1) % focusCount)
			return m, cmd
		case key.Matches(msg, m.keys.Prev):
			cmd := m.setFocus((m.focus + focusCount - 1) % focusCount)
			return m, cmd
		case key.Matches(msg, m.keys.Night):
			m.ToggleNight()
			return m, nil
		case key.Matches(msg, m.keys.Enter):
			return m.activate()
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case focusUsername:
		m.username, cmd = m.username.Update(msg)
	case focusPassword:
		m.password, cmd = m.password.Update(msg)
	}
	return m, cmd
}

func (m Model) activate() (Model, tea.Cmd) {
	switch m.focus {
	case focusCreate:
		return m, m.SubmitCreate()
	case focusNight:
		m.ToggleNight()
		return m, nil
	default:
		return m, m.SubmitLogin()
	}
}

func (m *Model) setFocus(f focusID) tea.Cmd {
	m.focus = f
	m.username.Blur()
	m.password.Blur()
	switch f {
	case focusUsername:
		return m.username.Focus()
	case focusPassword:
		return m.password.Focus()
	}
	return nil
}

// ─── commands ────────────────────────────────────────────────────────────────

// SubmitLogin checks the current inputs against the account store.
func (m Model) SubmitLogin() tea.Cmd {
	port := m.port
	username, password := m.username.Value(), m.password.Value()
	return func() tea.Msg {
		ok, err := port.Login(context.Background(), username, password)
		return LoginResultMsg{Username: username, OK: ok, Err: err}
	}
}

// SubmitCreate stores the current inputs as a new account.
func (m Model) SubmitCreate() tea.Cmd {
	port := m.port
	username, password := m.username.Value(), m.password.Value()
	return func() tea.Msg {
		created, err := port.CreateAccount(context.Background(), username, password)
		return CreateResultMsg{Username: username, Created: created, Err: err}
	}
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	pal := m.Palette()
	bg := lipgloss.WithWhitespaceBackground(pal.Background)

	nightBtn := components.Button("Night Mode On/Off", m.focus == focusNight)
	clock := pal.Label().Render(m.stamp)
	gap := theme.Width - 4 - lipgloss.Width(nightBtn) - lipgloss.Width(clock)
	if gap < 1 {
		gap = 1
	}
	top := lipgloss.JoinHorizontal(lipgloss.Top, nightBtn, pal.Frame().Width(gap).Render(""), clock)
	top = pal.Frame().Padding(1, 2).Width(theme.Width).Render(top)

	label := pal.Label().Width(11).Align(lipgloss.Right)
	userRow := lipgloss.JoinHorizontal(lipgloss.Top, label.Render("Username: "), theme.Input.Render(m.username.View()))
	passRow := lipgloss.JoinHorizontal(lipgloss.Top, label.Render("Password: "), theme.Input.Render(m.password.View()))
	form := lipgloss.JoinVertical(lipgloss.Center,
		userRow,
		passRow,
		"",
		components.Button("Login", m.focus == focusLogin),
		"",
		components.Button("Create Account", m.focus == focusCreate),
	)
	bodyH := theme.Height - lipgloss.Height(top) - 1
	if bodyH < lipgloss.Height(form) {
		bodyH = lipgloss.Height(form)
	}
	body := lipgloss.Place(theme.Width, bodyH, lipgloss.Center, lipgloss.Center, form, bg)

	helpLine := lipgloss.PlaceHorizontal(theme.Width, lipgloss.Left, m.help.View(m.keys), bg)
	return pal.Frame().Render(lipgloss.JoinVertical(lipgloss.Left, top, body, helpLine))
}
