package styles

import (
	"sort"

	glamouransi "github.com/charmbracelet/glamour/ansi"
	glamourstyles "github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Palette defines a minimal semantic theme palette.
type Palette struct {
	Dark       bool
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Background lipgloss.Color
	Surface    lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
}

// Theme names. The persisted darkMode flag selects between them.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"

	DefaultTheme = ThemeLight
)

// themes holds the built-in named palettes.
var themes = map[string]Palette{
	ThemeDark: {
		Dark:       true,
		Primary:    lipgloss.Color("#7aa2f7"),
		Secondary:  lipgloss.Color("#7dcfff"),
		Foreground: lipgloss.Color("#c0caf5"),
		Muted:      lipgloss.Color("#565f89"),
		Background: lipgloss.Color("#1a1b26"),
		Surface:    lipgloss.Color("#3b4261"),
		Success:    lipgloss.Color("#9ece6a"),
		Warning:    lipgloss.Color("#e0af68"),
		Error:      lipgloss.Color("#f7768e"),
	},
	ThemeLight: {
		Primary:    lipgloss.Color("#2563eb"),
		Secondary:  lipgloss.Color("#0891b2"),
		Foreground: lipgloss.Color("#1f2937"),
		Muted:      lipgloss.Color("#6b7280"),
		Background: lipgloss.Color("#f9fafb"),
		Surface:    lipgloss.Color("#e5e7eb"),
		Success:    lipgloss.Color("#16a34a"),
		Warning:    lipgloss.Color("#d97706"),
		Error:      lipgloss.Color("#dc2626"),
	},
}

// ThemeNames returns sorted names of all built-in themes.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetPalette returns the palette for the given theme name.
func GetPalette(name string) (Palette, bool) {
	p, ok := themes[name]
	return p, ok
}

// ThemeFor maps the persisted dark-mode flag to a theme name.
func ThemeFor(dark bool) string {
	if dark {
		return ThemeDark
	}
	return ThemeLight
}

func colorHexPtr(c lipgloss.Color) *string {
	if c == "" {
		return nil
	}
	cc, err := colorful.Hex(string(c))
	if err != nil {
		return nil
	}
	hex := cc.Hex()
	return &hex
}

// Gradient returns n colors blended from one to another in Lab space.
func Gradient(from, to lipgloss.Color, n int) []lipgloss.Color {
	if n <= 0 {
		return nil
	}
	a, errA := colorful.Hex(string(from))
	b, errB := colorful.Hex(string(to))
	out := make([]lipgloss.Color, n)
	for i := range out {
		if errA != nil || errB != nil {
			out[i] = from
			continue
		}
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		out[i] = lipgloss.Color(a.BlendLab(b, t).Clamped().Hex())
	}
	return out
}

// GlamourStyle returns a Glamour style config derived from the active theme.
func GlamourStyle() glamouransi.StyleConfig {
	cfg := glamourstyles.LightStyleConfig
	if CurrentPalette.Dark {
		cfg = glamourstyles.DarkStyleConfig
	}

	fg := colorHexPtr(ColorForeground)
	primary := colorHexPtr(ColorPrimary)
	secondary := colorHexPtr(ColorSecondary)
	muted := colorHexPtr(ColorMuted)
	surface := colorHexPtr(ColorSurface)

	cfg.Document.Color = fg
	cfg.Paragraph.Color = fg

	cfg.Heading.Color = primary
	cfg.H1.Color = fg
	cfg.H1.BackgroundColor = surface
	cfg.H2.Color = primary
	cfg.H3.Color = primary

	cfg.BlockQuote.Color = muted
	cfg.HorizontalRule.Color = muted

	cfg.Code.Color = secondary
	cfg.Table.Color = fg

	return cfg
}
