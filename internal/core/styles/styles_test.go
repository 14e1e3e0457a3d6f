package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetDark(t *testing.T) {
	t.Cleanup(func() { SetDark(false) })

	SetDark(true)
	assert.True(t, CurrentPalette.Dark)
	assert.Equal(t, themes[ThemeDark].Primary, ColorPrimary)

	SetDark(false)
	assert.False(t, CurrentPalette.Dark)
	assert.Equal(t, themes[ThemeLight].Primary, ColorPrimary)
}

func TestThemeNames(t *testing.T) {
	assert.Equal(t, []string{"dark", "light"}, ThemeNames())
	_, ok := GetPalette("neon")
	assert.False(t, ok)
}

func TestGradient(t *testing.T) {
	got := Gradient(lipgloss.Color("#000000"), lipgloss.Color("#ffffff"), 3)
	require.Len(t, got, 3)
	assert.Equal(t, lipgloss.Color("#000000"), got[0])
	assert.Equal(t, lipgloss.Color("#ffffff"), got[2])

	assert.Nil(t, Gradient("#000000", "#ffffff", 0))
	assert.Equal(t, []lipgloss.Color{"oops", "oops"}, Gradient("oops", "#ffffff", 2))
}

func TestGlamourStyle_FollowsPalette(t *testing.T) {
	t.Cleanup(func() { SetDark(false) })

	SetDark(true)
	cfg := GlamourStyle()
	require.NotNil(t, cfg.H2.Color)
	assert.Equal(t, "#7aa2f7", *cfg.H2.Color)
}

func TestProgressBar(t *testing.T) {
	bar := ansi.Strip(ProgressBar(10, 50))
	assert.Equal(t, "█████░░░░░", bar)

	assert.Equal(t, "░░░░", ansi.Strip(ProgressBar(4, 0)))
	assert.Equal(t, "████", ansi.Strip(ProgressBar(4, 250)))
}
