package components

import "dtimer/internal/ui/theme"

// Button renders a push button label, highlighted when focused.
func Button(label string, focused bool) string {
	if focused {
		return theme.ButtonFocused.Render(label)
	}
	return theme.Button.Render(label)
}
