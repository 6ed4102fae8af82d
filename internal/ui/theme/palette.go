package theme

import "github.com/charmbracelet/lipgloss"

// Frame size of the application, in cells.
const (
	Width  = 60
	Height = 20
)

// Palette is one of the two fixed color schemes.
type Palette struct {
	Name       string
	Background lipgloss.Color
	Foreground lipgloss.Color
}

var (
	Light = Palette{Name: "light", Background: lipgloss.Color("#c6d4c6"), Foreground: lipgloss.Color("#000000")}
	Dark  = Palette{Name: "dark", Background: lipgloss.Color("#2e2e2e"), Foreground: lipgloss.Color("#ffffff")}
)

func For(night bool) Palette {
	if night {
		return Dark
	}
	return Light
}

var (
	ButtonFace = lipgloss.Color("#e8e8e8")
	ButtonText = lipgloss.Color("#000000")
	Accent     = lipgloss.Color("#2f6f4f")
	ErrorRed   = lipgloss.Color("#b03a2e")
	InputFace  = lipgloss.Color("#ffffff")
)

// Frame paints an outer container in the palette.
func (p Palette) Frame() lipgloss.Style {
	return lipgloss.NewStyle().Background(p.Background).Foreground(p.Foreground)
}

// Label is text drawn on the palette background.
func (p Palette) Label() lipgloss.Style {
	return lipgloss.NewStyle().Background(p.Background).Foreground(p.Foreground)
}

var (
	Button = lipgloss.NewStyle().
		Background(ButtonFace).
		Foreground(ButtonText).
		Padding(0, 1)

	ButtonFocused = Button.
			Background(Accent).
			Foreground(lipgloss.Color("#ffffff")).
			Bold(true)

	Input = lipgloss.NewStyle().
		Background(InputFace).
		Foreground(lipgloss.Color("#000000"))

	Clock = lipgloss.NewStyle().Bold(true)
)
