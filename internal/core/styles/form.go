package styles

import "github.com/charmbracelet/huh"

// FormTheme returns a huh theme built from the active palette.
func FormTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = t.Focused.Title.Foreground(ColorPrimary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(ColorMuted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(ColorError)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(ColorError)
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(ColorSecondary)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(ColorSecondary)

	t.Blurred = t.Focused
	t.Blurred.Title = t.Blurred.Title.Foreground(ColorMuted).Bold(false)

	return t
}
