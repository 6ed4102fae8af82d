package timer

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"dtimer/internal/modules/stopwatch/domain"
	"dtimer/internal/ui/components"
	"dtimer/internal/ui/theme"
)

// Interval between ticks while running.
const Interval = time.Second

// ─── messages ────────────────────────────────────────────────────────────────

// TickMsg is one scheduled tick of the given chain.
type TickMsg struct {
	Chain domain.Chain
}

// Scheduler arms a single-shot timer that delivers fn's message after d.
// tea.Tick is the production scheduler.
type Scheduler func(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd

// ─── key bindings ────────────────────────────────────────────────────────────

type buttonID int

const (
	buttonStart buttonID = iota
	buttonPause
	buttonReset
	buttonCount
)

var buttonLabels = [buttonCount]string{"Start", "Pause", "Reset"}

type keyMap struct {
	Start key.Binding
	Pause key.Binding
	Reset key.Binding
	Next  key.Binding
	Press key.Binding
	Quit  key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Start: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "start")),
		Pause: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")),
		Reset: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Next:  key.NewBinding(key.WithKeys("tab", "right", "shift+tab", "left"), key.WithHelp("tab", "focus")),
		Press: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "press")),
		Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Pause, k.Reset, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Start, k.Pause, k.Reset}, {k.Next, k.Press, k.Quit}}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the timer screen. It exclusively owns its stopwatch; the state is
// dropped together with the screen.
type Model struct {
	watch    *domain.Stopwatch
	schedule Scheduler
	focus    buttonID
	keys     keyMap
	help     help.Model
}

func New(schedule Scheduler) Model {
	if schedule == nil {
		schedule = tea.Tick
	}
	return Model{
		watch:    domain.New(),
		schedule: schedule,
		focus:    buttonStart,
		keys:     defaultKeys(),
		help:     help.New(),
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Running() bool       { return m.watch.Running() }
func (m Model) Elapsed() uint64     { return m.watch.Elapsed() }
func (m Model) Display() string     { return m.watch.Display() }
func (m Model) State() domain.State { return m.watch.State() }

// Start begins counting. It is a no-op while already running.
func (m Model) Start() tea.Cmd {
	chain, armed := m.watch.Start()
	if !armed {
		return nil
	}
	return m.arm(chain)
}

// Pause stops counting; the next pending tick finds the stopwatch stopped
// and does not re-arm.
func (m Model) Pause() { m.watch.Pause() }

func (m Model) Reset() { m.watch.Reset() }

func (m Model) arm(chain domain.Chain) tea.Cmd {
	return m.schedule(Interval, func(time.Time) tea.Msg {
		return TickMsg{Chain: chain}
	})
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		if m.watch.Tick(msg.Chain) {
			return m, m.arm(msg.Chain)
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Start):
			return m, m.Start()
		case key.Matches(msg, m.keys.Pause):
			m.Pause()
		case key.Matches(msg, m.keys.Reset):
			m.Reset()
		case key.Matches(msg, m.keys.Next):
			if s := msg.String(); s == "shift+tab" || s == "left" {
				m.focus = (m.focus + buttonCount - 1) % buttonCount
			} else {
				m.focus = (m.focus + 1) % buttonCount
			}
		case key.Matches(msg, m.keys.Press):
			return m.press()
		}
	}
	return m, nil
}

func (m Model) press() (Model, tea.Cmd) {
	switch m.focus {
	case buttonStart:
		return m, m.Start()
	case buttonPause:
		m.Pause()
	case buttonReset:
		m.Reset()
	}
	return m, nil
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	pal := theme.Light
	bg := lipgloss.WithWhitespaceBackground(pal.Background)

	clock := pal.Label().Inherit(theme.Clock).
		Padding(1, 0).
		Render(m.watch.Display())

	buttons := make([]string, 0, 2*buttonCount)
	for i := buttonID(0); i < buttonCount; i++ {
		if i > 0 {
			buttons = append(buttons, pal.Frame().Width(2).Render(""))
		}
		buttons = append(buttons, components.Button(buttonLabels[i], m.focus == i))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, buttons...)

	content := lipgloss.JoinVertical(lipgloss.Center, clock, "", row)
	body := lipgloss.Place(theme.Width, theme.Height-1, lipgloss.Center, lipgloss.Center, content, bg)
	helpLine := lipgloss.PlaceHorizontal(theme.Width, lipgloss.Left, m.help.View(m.keys), bg)
	return pal.Frame().Render(lipgloss.JoinVertical(lipgloss.Left, body, helpLine))
}
