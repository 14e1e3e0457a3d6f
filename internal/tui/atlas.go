package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/colonyops/passport/internal/core/geo"
	"github.com/colonyops/passport/internal/core/styles"
	"github.com/colonyops/passport/internal/core/travel"
)

// atlasItem is a reference country in the atlas pane.
type atlasItem struct {
	country geo.Country
	flag    string
	visited bool
	wished  bool
}

func (i atlasItem) FilterValue() string { return i.country.Name }

// atlasDelegate renders one country per line, highlighting visited ones.
type atlasDelegate struct{}

func (atlasDelegate) Height() int                         { return 1 }
func (atlasDelegate) Spacing() int                        { return 0 }
func (atlasDelegate) Update(tea.Msg, *list.Model) tea.Cmd { return nil }

func (atlasDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(atlasItem)
	if !ok {
		return
	}

	mark := " "
	name := it.country.Name
	switch {
	case it.visited:
		mark = "✓"
		name = styles.VisitedStyle.Render(name)
	case it.wished:
		mark = styles.IconStar
		name = styles.WishStyle.Render(name)
	}

	line := fmt.Sprintf("%s %s %s %s", mark, it.flag, name, styles.TextMutedStyle.Render(it.country.Continent))
	if index == m.Index() {
		line = styles.SelectedStyle.Render(ansi.Strip(line))
	}
	_, _ = fmt.Fprint(w, ansi.Truncate(line, m.Width(), "…"))
}

func newAtlasList(atlas *geo.Atlas, st travel.State) list.Model {
	l := list.New(atlasItems(atlas, st), atlasDelegate{}, 0, 0)
	l.Title = "Atlas"
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowTitle(false)
	l.SetFilteringEnabled(true)
	l.DisableQuitKeybindings()
	return l
}

func atlasItems(atlas *geo.Atlas, st travel.State) []list.Item {
	countries := atlas.Countries()
	items := make([]list.Item, len(countries))
	for i, c := range countries {
		_, visited := st.FindVisited(atlas, c.Name)
		items[i] = atlasItem{
			country: c,
			flag:    geo.FlagForCode(c.Code),
			visited: visited,
			wished:  st.IsWishlisted(c.Name),
		}
	}
	return items
}
