package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"dtimer/internal/ui/theme"
)

// DialogClosedMsg is emitted when the user dismisses the dialog.
type DialogClosedMsg struct{}

type DialogKind int

const (
	DialogInfo DialogKind = iota
	DialogError
)

var (
	dialogStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			Background(lipgloss.Color("#ffffff")).
			Foreground(lipgloss.Color("#000000")).
			Padding(1, 2)

	dialogHint = lipgloss.NewStyle().Foreground(lipgloss.Color("#555555"))
)

// Dialog is a modal notification. While visible it swallows all key input.
type Dialog struct {
	kind    DialogKind
	title   string
	message string
	visible bool
}

func NewDialog() Dialog { return Dialog{} }

func (d Dialog) Visible() bool   { return d.visible }
func (d Dialog) Title() string   { return d.title }
func (d Dialog) Message() string { return d.message }
func (d Dialog) Kind() DialogKind {
	return d.kind
}

func (d *Dialog) Open(kind DialogKind, title, message string) {
	d.kind = kind
	d.title = title
	d.message = message
	d.visible = true
}

func (d Dialog) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if !d.visible {
		return d, nil
	}
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter", "esc", " ":
			d.visible = false
			return d, func() tea.Msg { return DialogClosedMsg{} }
		}
	}
	return d, nil
}

func (d Dialog) View() string {
	if !d.visible {
		return ""
	}
	border := theme.Accent
	if d.kind == DialogError {
		border = theme.ErrorRed
	}
	title := lipgloss.NewStyle().Bold(true).Foreground(border).Render(d.title)
	body := lipgloss.JoinVertical(lipgloss.Center,
		title,
		"",
		d.message,
		"",
		theme.ButtonFocused.Render("OK"),
		dialogHint.Render("enter to close"),
	)
	return dialogStyle.BorderForeground(border).Render(body)
}
