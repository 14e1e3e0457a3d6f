// Package styles provides shared lipgloss styles for CLI and TUI components.
package styles

import "github.com/charmbracelet/lipgloss"

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Exported color aliases for convenience.
var (
	ColorPrimary    lipgloss.Color
	ColorSecondary  lipgloss.Color
	ColorForeground lipgloss.Color
	ColorMuted      lipgloss.Color
	ColorBackground lipgloss.Color
	ColorSurface    lipgloss.Color
	ColorSuccess    lipgloss.Color
	ColorWarning    lipgloss.Color
	ColorError      lipgloss.Color
)

// Style exports.
var (
	// CLI styles.
	TextPrimaryBoldStyle    lipgloss.Style
	TextForegroundBoldStyle lipgloss.Style
	TextMutedStyle          lipgloss.Style
	TextSuccessStyle        lipgloss.Style
	TextWarningStyle        lipgloss.Style
	TextErrorStyle          lipgloss.Style

	// Panel styles.
	TitleStyle     lipgloss.Style
	CardStyle      lipgloss.Style
	CardValueStyle lipgloss.Style
	CardLabelStyle lipgloss.Style
	SectionStyle   lipgloss.Style
	SelectedStyle  lipgloss.Style
	VisitedStyle   lipgloss.Style
	WishStyle      lipgloss.Style
	CityStyle      lipgloss.Style
	DateStyle      lipgloss.Style
	BarEmptyStyle  lipgloss.Style

	// Pane chrome.
	PaneStyle        lipgloss.Style
	PaneFocusedStyle lipgloss.Style
	HelpStyle        lipgloss.Style

	// Forms.
	FormTitleStyle        lipgloss.Style
	FormFieldStyle        lipgloss.Style
	FormFieldFocusedStyle lipgloss.Style
	FormErrorStyle        lipgloss.Style
	FormHelpStyle         lipgloss.Style
)

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	ColorPrimary = p.Primary
	ColorSecondary = p.Secondary
	ColorForeground = p.Foreground
	ColorMuted = p.Muted
	ColorBackground = p.Background
	ColorSurface = p.Surface
	ColorSuccess = p.Success
	ColorWarning = p.Warning
	ColorError = p.Error

	TextPrimaryBoldStyle = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	TextForegroundBoldStyle = lipgloss.NewStyle().Foreground(ColorForeground).Bold(true)
	TextMutedStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	TextSuccessStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	TextWarningStyle = lipgloss.NewStyle().Foreground(ColorWarning)
	TextErrorStyle = lipgloss.NewStyle().Foreground(ColorError)

	TitleStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true).
		MarginBottom(1)
	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorSurface).
		Padding(0, 1).
		Width(18)
	CardValueStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	CardLabelStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	SectionStyle = lipgloss.NewStyle().
		Foreground(ColorForeground).
		Bold(true).
		MarginTop(1)
	SelectedStyle = lipgloss.NewStyle().
		Foreground(ColorBackground).
		Background(ColorPrimary).
		Bold(true)
	VisitedStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	WishStyle = lipgloss.NewStyle().Foreground(ColorWarning)
	CityStyle = lipgloss.NewStyle().Foreground(ColorForeground)
	DateStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	BarEmptyStyle = lipgloss.NewStyle().Foreground(ColorSurface)

	PaneStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorSurface).
		Padding(0, 1)
	PaneFocusedStyle = PaneStyle.
		BorderForeground(ColorPrimary)
	HelpStyle = lipgloss.NewStyle().Foreground(ColorMuted)

	FormTitleStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	FormFieldStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(ColorMuted).
		PaddingLeft(1)
	FormFieldFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(ColorPrimary).
		PaddingLeft(1)
	FormErrorStyle = lipgloss.NewStyle().Foreground(ColorError)
	FormHelpStyle = lipgloss.NewStyle().Foreground(ColorMuted)
}

// SetDark switches between the built-in light and dark themes.
func SetDark(dark bool) {
	SetTheme(themes[ThemeFor(dark)])
}

// nolint:gochecknoinits // bootstrap default theme before any style is accessed.
func init() {
	SetTheme(themes[DefaultTheme])
}
