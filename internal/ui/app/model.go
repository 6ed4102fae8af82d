package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"dtimer/internal/modules/account/dto"
	"dtimer/internal/platform/clock"
	"dtimer/internal/platform/logging"
	"dtimer/internal/ui/components"
	"dtimer/internal/ui/theme"
	loginview "dtimer/internal/ui/views/login"
	timerview "dtimer/internal/ui/views/timer"
)

// Title is the terminal window title.
const Title = "D-timer"

// ─── screen state ────────────────────────────────────────────────────────────

type ScreenKind int

const (
	LoginScreen ScreenKind = iota
	TimerScreen
)

func (k ScreenKind) String() string {
	if k == TimerScreen {
		return "timer"
	}
	return "login"
}

// screen is the tagged union of the two screens. Exactly one is live; the
// other does not exist.
type screen interface {
	kind() ScreenKind
}

type loginScreen struct{ view loginview.Model }

type timerScreen struct{ view timerview.Model }

func (loginScreen) kind() ScreenKind { return LoginScreen }
func (timerScreen) kind() ScreenKind { return TimerScreen }

// ─── options ─────────────────────────────────────────────────────────────────

type Options struct {
	Clock     clock.Clock
	Logger    logging.Logger
	Scheduler timerview.Scheduler
	NightMode bool
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns the screen state machine and
// the notification dialog; account checks are delegated to the port.
type Model struct {
	accounts loginview.Port
	log      logging.Logger
	schedule timerview.Scheduler

	screen screen
	dialog components.Dialog
	err    error
	width  int
	height int
}

func NewModel(accounts loginview.Port, opts Options) Model {
	clk := opts.Clock
	if clk == nil {
		clk = clock.SystemClock{}
	}
	log := opts.Logger
	if log == nil {
		log = logging.Discard()
	}
	return Model{
		accounts: accounts,
		log:      log.With("component", "ui"),
		schedule: opts.Scheduler,
		screen:   loginScreen{view: loginview.New(accounts, clk.Now(), opts.NightMode)},
		dialog:   components.NewDialog(),
		width:    theme.Width,
		height:   theme.Height,
	}
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.SetWindowTitle(Title)}
	if s, ok := m.screen.(loginScreen); ok {
		cmds = append(cmds, s.view.Init())
	}
	return tea.Batch(cmds...)
}

// Screen reports the live screen.
func (m Model) Screen() ScreenKind { return m.screen.kind() }

// Err is the storage failure that ended the program, if any.
func (m Model) Err() error { return m.err }

// NightMode reports the login screen palette; false once the login screen is gone.
func (m Model) NightMode() bool {
	if s, ok := m.screen.(loginScreen); ok {
		return s.view.NightMode()
	}
	return false
}

// Dialog exposes the notification currently shown.
func (m Model) Dialog() components.Dialog { return m.dialog }

// ─── update ──────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case loginview.LoginResultMsg:
		return m.handleLogin(msg)

	case loginview.CreateResultMsg:
		return m.handleCreate(msg)

	case components.DialogClosedMsg:
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.dialog.Visible() {
			var cmd tea.Cmd
			m.dialog, cmd = m.dialog.Update(msg)
			return m, cmd
		}
		if m.Screen() == TimerScreen && msg.String() == "q" {
			return m, tea.Quit
		}
	}

	return m.updateScreen(msg)
}

func (m Model) updateScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch s := m.screen.(type) {
	case loginScreen:
		if _, ok := msg.(timerview.TickMsg); ok {
			return m, nil
		}
		s.view, cmd = s.view.Update(msg)
		m.screen = s
	case timerScreen:
		s.view, cmd = s.view.Update(msg)
		m.screen = s
	}
	return m, cmd
}

// Account results are only acted on while the login screen is live. A reply
// to a repeated submit can arrive after the timer screen took over; it must
// not rebuild the stopwatch or raise a dialog there. Storage errors stay fatal.
func (m Model) handleLogin(msg loginview.LoginResultMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		return m.fail(msg.Err)
	}
	if m.Screen() != LoginScreen {
		m.log.Warn(context.Background(), "dropping late login result", "username", msg.Username)
		return m, nil
	}
	notice := dto.LoginNotice(msg.Username, msg.OK)
	if msg.OK {
		m.log.Info(context.Background(), "switching to timer screen", "username", msg.Username)
		m.screen = timerScreen{view: timerview.New(m.schedule)}
	}
	m.notify(notice)
	return m, nil
}

func (m Model) handleCreate(msg loginview.CreateResultMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		return m.fail(msg.Err)
	}
	if m.Screen() != LoginScreen {
		m.log.Warn(context.Background(), "dropping late create result", "username", msg.Username)
		return m, nil
	}
	m.notify(dto.CreateAccountNotice(msg.Created))
	return m, nil
}

func (m *Model) notify(n dto.Notice) {
	kind := components.DialogInfo
	if n.Kind == dto.NoticeError {
		kind = components.DialogError
	}
	m.dialog.Open(kind, n.Title, n.Message)
}

// fail records an unexpected storage error and stops the program.
func (m Model) fail(err error) (tea.Model, tea.Cmd) {
	m.log.Error(context.Background(), "storage failure", "err", err)
	m.err = err
	return m, tea.Quit
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	if m.err != nil {
		return ""
	}
	var frame string
	switch s := m.screen.(type) {
	case loginScreen:
		frame = s.view.View()
	case timerScreen:
		frame = s.view.View()
	}
	if m.dialog.Visible() {
		frame = lipgloss.Place(lipgloss.Width(frame), lipgloss.Height(frame),
			lipgloss.Center, lipgloss.Center, m.dialog.View(),
			lipgloss.WithWhitespaceBackground(m.background()))
	}
	return lipgloss.Place(max(m.width, theme.Width), max(m.height, theme.Height),
		lipgloss.Center, lipgloss.Center, frame)
}

func (m Model) background() lipgloss.Color {
	if s, ok := m.screen.(loginScreen); ok {
		return s.view.Palette().Background
	}
	return theme.Light.Background
}
