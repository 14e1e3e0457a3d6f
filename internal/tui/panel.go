package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/colonyops/passport/internal/core/styles"
	"github.com/colonyops/passport/internal/core/travel"
)

type rowKind int

const (
	rowCountry rowKind = iota
	rowCity
	rowWish
)

// row is one selectable line of the visited and wishlist sections.
type row struct {
	kind    rowKind
	country string
	city    string
	date    string
	cities  int
	wish    string
}

type panelState struct {
	cursor int
	query  string
}

// moveCursor shifts the cursor by delta and clamps it to n rows.
func (p *panelState) moveCursor(delta, n int) {
	p.cursor = max(0, min(p.cursor+delta, n-1))
}

// rows flattens the filtered visited countries, their expanded cities, and
// the wishlist into selectable rows.
func (m Model) rows() []row {
	st := m.app.Travel.State()

	var out []row
	for _, c := range st.Filter(m.panel.query) {
		out = append(out, row{kind: rowCountry, country: c.Name, cities: len(c.Cities)})
		if !st.IsExpanded(c.Name) {
			continue
		}
		for _, city := range c.CitiesByDate() {
			out = append(out, row{kind: rowCity, country: c.Name, city: city.Name, date: city.VisitDate})
		}
	}
	for _, w := range st.Wishlist {
		out = append(out, row{kind: rowWish, wish: w})
	}
	return out
}

func (m Model) selectedRow(rows []row) (row, bool) {
	if m.panel.cursor < 0 || m.panel.cursor >= len(rows) {
		return row{}, false
	}
	return rows[m.panel.cursor], true
}

func (m Model) panelView(width, height int) string {
	width = max(20, width)

	var header []string
	header = append(header, styles.TitleStyle.Render(styles.IconGlobe+" Passport"))

	if m.form.active() {
		header = append(header, m.form.view(width), "")
	}

	stats := m.app.Travel.Stats()
	header = append(header,
		statCards(stats, width),
		worldLine(stats, width),
		insights(stats),
	)

	if m.searching {
		header = append(header, m.search.View())
	} else if m.panel.query != "" {
		header = append(header, styles.TextMutedStyle.Render("filter: "+m.panel.query+" (/ to edit)"))
	}

	head := strings.Join(header, "\n")
	avail := max(3, height-lipgloss.Height(head))

	lines, cursorLine := m.listLines(width)
	start := 0
	if cursorLine >= avail {
		start = cursorLine - avail + 1
	}
	end := min(len(lines), start+avail)

	return head + "\n" + strings.Join(lines[start:end], "\n")
}

// listLines renders the visited and wishlist sections and reports which
// line holds the cursor.
func (m Model) listLines(width int) ([]string, int) {
	rows := m.rows()
	st := m.app.Travel.State()

	var (
		lines      []string
		cursorLine int
		wishHeader bool
	)

	lines = append(lines, styles.SectionStyle.Render(fmt.Sprintf("Visited (%d)", len(st.Visited))))
	if len(st.Visited) == 0 {
		lines = append(lines, styles.TextMutedStyle.Render("  No countries yet. Press a to add one."))
	}

	for i, r := range rows {
		if r.kind == rowWish && !wishHeader {
			lines = append(lines, styles.SectionStyle.Render(fmt.Sprintf("%s Wishlist (%d)", styles.IconStar, len(st.Wishlist))))
			wishHeader = true
		}

		line := m.renderRow(r, st)
		if i == m.panel.cursor && m.focus == panePanel {
			line = styles.SelectedStyle.Render(ansi.Strip(line))
			cursorLine = len(lines)
		}
		lines = append(lines, ansi.Truncate(line, width, "…"))
	}

	if !wishHeader {
		lines = append(lines,
			styles.SectionStyle.Render(fmt.Sprintf("%s Wishlist (0)", styles.IconStar)),
			styles.TextMutedStyle.Render("  Nothing here. Press w to add a destination."),
		)
	}
	return lines, cursorLine
}

func (m Model) renderRow(r row, st travel.State) string {
	switch r.kind {
	case rowCountry:
		marker := styles.IconCollapsed
		if st.IsExpanded(r.country) {
			marker = styles.IconExpanded
		}
		cities := ""
		if r.cities > 0 {
			cities = styles.TextMutedStyle.Render(fmt.Sprintf("  %d %s", r.cities, plural(r.cities, "city", "cities")))
		}
		return fmt.Sprintf("%s %s %s%s", marker, m.app.Atlas.Flag(r.country), styles.VisitedStyle.Render(r.country), cities)
	case rowCity:
		return fmt.Sprintf("    %s %s  %s", styles.IconPin, styles.CityStyle.Render(r.city), styles.DateStyle.Render(r.date))
	default:
		return fmt.Sprintf("  %s %s", m.app.Atlas.Flag(r.wish), styles.WishStyle.Render(r.wish))
	}
}

func statCards(s travel.Stats, width int) string {
	card := func(value, label string) string {
		return styles.CardStyle.Render(styles.CardValueStyle.Render(value) + "\n" + styles.CardLabelStyle.Render(label))
	}

	cards := []string{
		card(strconv.Itoa(s.VisitedCount), "Countries"),
		card(s.WorldPercentage+"%", "of the world"),
		card(strconv.Itoa(s.ContinentsVisited), "Continents"),
		card(strconv.Itoa(s.TotalCities), "Cities"),
	}

	if lipgloss.Width(lipgloss.JoinHorizontal(lipgloss.Top, cards...)) <= width {
		return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, cards[0], cards[1]),
		lipgloss.JoinHorizontal(lipgloss.Top, cards[2], cards[3]),
	)
}

func worldLine(s travel.Stats, width int) string {
	pct, _ := strconv.ParseFloat(s.WorldPercentage, 64)
	label := fmt.Sprintf(" %s%% explored", s.WorldPercentage)
	return styles.ProgressBar(max(10, width-lipgloss.Width(label)), pct) + styles.TextMutedStyle.Render(label)
}

func insights(s travel.Stats) string {
	continent := "none yet"
	if c := s.MostVisitedContinent; c != nil {
		continent = fmt.Sprintf("%s (%d %s)", c.Name, c.Count, plural(c.Count, "country", "countries"))
	}
	explored := "none yet"
	if c := s.MostExploredCountry; c != nil {
		explored = fmt.Sprintf("%s (%d %s)", c.Name, c.CityCount, plural(c.CityCount, "city", "cities"))
	}

	lines := []string{
		fmt.Sprintf("%s Most visited continent: %s", styles.IconTrophy, continent),
		fmt.Sprintf("%s Countries this year: %d", styles.IconCalendar, s.CountriesThisYear),
		fmt.Sprintf("%s Most explored: %s", styles.IconCity, explored),
	}
	return styles.TextMutedStyle.Render(strings.Join(lines, "\n"))
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
