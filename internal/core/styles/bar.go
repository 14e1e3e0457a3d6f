package styles

import "strings"

// ProgressBar renders a bar width cells wide, filled to pct percent and
// shaded from the primary to the secondary color.
func ProgressBar(width int, pct float64) string {
	width = max(0, width)
	filled := max(0, min(width, int(pct/100*float64(width))))

	var b strings.Builder
	for _, color := range Gradient(ColorPrimary, ColorSecondary, filled) {
		b.WriteString(TextMutedStyle.Foreground(color).Render("█"))
	}
	b.WriteString(BarEmptyStyle.Render(strings.Repeat("░", width-filled)))
	return b.String()
}
