package tui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hay-kot/criterio"
	"github.com/rs/zerolog"

	"github.com/colonyops/passport/internal/core/kv"
	"github.com/colonyops/passport/internal/core/logging"
	"github.com/colonyops/passport/internal/core/styles"
	"github.com/colonyops/passport/internal/core/travel"
	"github.com/colonyops/passport/internal/core/validate"
	"github.com/colonyops/passport/internal/passport"
)

type pane int

const (
	panePanel pane = iota
	paneAtlas
)

// Options configures the TUI behavior.
type Options struct {
	// CityConfirmDelay is how long a submitted city waits before it is added.
	CityConfirmDelay time.Duration
	// Watcher reloads the log when another process changes storage. Optional.
	Watcher kv.Watcher
	// Now overrides the clock. Optional.
	Now func() time.Time
}

// Model is the main Bubble Tea model for the TUI.
type Model struct {
	ctx  context.Context
	app  *passport.App
	opts Options
	log  zerolog.Logger
	keys keyMap
	help help.Model

	focus  pane
	width  int
	height int

	panel  panelState
	atlas  list.Model
	form   inputForm
	search textinput.Model

	searching bool
	pending   map[int]pendingCity
	nextID    int
	events    <-chan kv.Event

	status    string
	statusErr bool
	dark      bool
	quitting  bool
}

type pendingCity struct {
	country, city, date string
	handle              *passport.PendingCity
}

type (
	cityConfirmMsg struct {
		id      int
		changed bool
		err     error
	}
	storageEventMsg  struct{ key string }
	storageClosedMsg struct{}
)

// New creates the TUI model. The app's travel state must already be loaded.
func New(ctx context.Context, app *passport.App, opts Options) Model {
	if opts.Now == nil {
		opts.Now = time.Now
	}

	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "search visited"

	return Model{
		ctx:     ctx,
		app:     app,
		opts:    opts,
		log:     logging.Component("tui"),
		keys:    defaultKeyMap(),
		help:    help.New(),
		atlas:   newAtlasList(app.Atlas, app.Travel.State()),
		search:  search,
		pending: make(map[int]pendingCity),
		dark:    styles.CurrentPalette.Dark,
	}
}

func (m Model) Init() tea.Cmd {
	w := m.opts.Watcher
	if w == nil {
		return nil
	}

	ctx, log := m.ctx, m.log
	return func() tea.Msg {
		events, err := w.Watch(ctx, "*")
		if err != nil {
			log.Warn().Err(err).Msg("storage watch unavailable")
			return nil
		}
		return watchStartedMsg{events: events}
	}
}

type watchStartedMsg struct{ events <-chan kv.Event }

func waitForStorage(events <-chan kv.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return storageClosedMsg{}
		}
		return storageEventMsg{key: ev.Key}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case watchStartedMsg:
		m.events = msg.events
		return m, waitForStorage(m.events)

	case storageEventMsg:
		if err := m.app.Travel.Load(m.ctx); err != nil {
			m.setError(err)
		} else {
			m.log.Debug().Str("key", msg.key).Msg("reloaded after storage change")
		}
		if m.events == nil {
			return m, m.refresh()
		}
		return m, tea.Batch(m.refresh(), waitForStorage(m.events))

	case storageClosedMsg:
		m.events = nil
		return m, nil

	case cityConfirmMsg:
		return m, m.confirmCity(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.focus == paneAtlas {
		var cmd tea.Cmd
		m.atlas, cmd = m.atlas.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quit()
		return m, tea.Quit
	}

	if m.form.active() {
		return m.handleFormKey(msg)
	}
	if m.searching {
		return m.handleSearchKey(msg)
	}
	if m.focus == paneAtlas && m.atlas.SettingFilter() {
		var cmd tea.Cmd
		m.atlas, cmd = m.atlas.Update(msg)
		return m, cmd
	}

	m.status = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quit()
		return m, tea.Quit
	case key.Matches(msg, m.keys.SwitchPane):
		if m.focus == panePanel {
			m.focus = paneAtlas
		} else {
			m.focus = panePanel
		}
		return m, nil
	case key.Matches(msg, m.keys.AddCountry):
		m.form = newCountryForm()
		return m, textinput.Blink
	case key.Matches(msg, m.keys.AddWish):
		m.form = newWishForm()
		return m, textinput.Blink
	case key.Matches(msg, m.keys.Theme):
		return m, m.toggleTheme()
	}

	if m.focus == paneAtlas {
		return m.handleAtlasKey(msg)
	}
	return m.handlePanelKey(msg)
}

func (m Model) handlePanelKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := m.rows()

	switch {
	case key.Matches(msg, m.keys.Up):
		m.panel.moveCursor(-1, len(rows))
	case key.Matches(msg, m.keys.Down):
		m.panel.moveCursor(1, len(rows))
	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.search.SetValue(m.panel.query)
		return m, m.search.Focus()
	case key.Matches(msg, m.keys.Toggle):
		if r, ok := m.selectedRow(rows); ok && r.kind == rowCountry {
			m.app.Travel.ToggleCountryExpanded(r.country)
		}
	case key.Matches(msg, m.keys.AddCity):
		r, ok := m.selectedRow(rows)
		if !ok || r.kind == rowWish {
			m.setStatus("Select a visited country first")
			return m, nil
		}
		m.form = newCityForm(r.country, m.opts.Now().Format(time.DateOnly))
		return m, textinput.Blink
	case key.Matches(msg, m.keys.Remove):
		return m, m.removeSelected(rows)
	}
	return m, nil
}

func (m Model) handleAtlasKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Visit) {
		it, ok := m.atlas.SelectedItem().(atlasItem)
		if !ok {
			return m, nil
		}
		changed, err := m.app.Travel.AddVisitedCountry(m.ctx, it.country.Name, travel.OriginMapClick)
		if err != nil {
			m.setError(err)
			return m, nil
		}
		if changed {
			m.setStatus("Visited " + it.country.Name)
		}
		return m, m.refresh()
	}

	var cmd tea.Cmd
	m.atlas, cmd = m.atlas.Update(msg)
	return m, cmd
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		m.panel.query = ""
		m.panel.cursor = 0
		return m, nil
	case tea.KeyEnter:
		m.searching = false
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.panel.query = m.search.Value()
	m.panel.cursor = 0
	return m, cmd
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.form = inputForm{}
		return m, nil
	case tea.KeyTab, tea.KeyDown:
		m.form.nextField()
		return m, nil
	case tea.KeyShiftTab, tea.KeyUp:
		m.form.prevField()
		return m, nil
	case tea.KeyEnter:
		if m.form.nextField() {
			return m, nil
		}
		return m.submitForm()
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

func (m Model) submitForm() (tea.Model, tea.Cmd) {
	switch m.form.kind {
	case formCountry:
		raw := m.form.value(0)
		if _, err := m.app.Travel.AddVisitedCountry(m.ctx, raw, travel.OriginForm); err != nil {
			if travel.IsValidationError(err) {
				m.form.err = err.Error()
				return m, nil
			}
			m.setError(err)
			return m, nil
		}
		m.form = inputForm{}
		m.setStatus("Visited " + travel.CanonicalName(m.app.Atlas, raw))
		return m, m.refresh()

	case formWish:
		raw := m.form.value(0)
		changed, err := m.app.Travel.AddToWishlist(m.ctx, raw)
		if err != nil {
			m.setError(err)
			return m, nil
		}
		m.form = inputForm{}
		if changed {
			m.setStatus("Added " + travel.CanonicalName(m.app.Atlas, raw) + " to the wishlist")
		}
		return m, m.refresh()

	case formCity:
		city, date := m.form.value(0), m.form.value(1)
		if err := validate.CityFields(city, date, m.opts.Now()); err != nil {
			m.form.err = fieldMessage(err)
			return m, nil
		}

		id := m.nextID
		m.nextID++
		country := m.form.country
		result := make(chan cityConfirmMsg, 1)
		handle := m.app.Travel.ScheduleAddCity(m.ctx, m.opts.CityConfirmDelay, country, city, date,
			func(changed bool, err error) {
				result <- cityConfirmMsg{id: id, changed: changed, err: err}
			})
		m.pending[id] = pendingCity{country: country, city: city, date: date, handle: handle}
		m.form = inputForm{}
		m.setStatus("Adding " + city + "…")

		return m, waitForCity(m.ctx, result)
	}
	return m, nil
}

// waitForCity delivers the outcome of a scheduled city add.
func waitForCity(ctx context.Context, result <-chan cityConfirmMsg) tea.Cmd {
	return func() tea.Msg {
		select {
		case msg := <-result:
			return msg
		case <-ctx.Done():
			return nil
		}
	}
}

// confirmCity reports a city add that ran against the then-current state.
func (m *Model) confirmCity(msg cityConfirmMsg) tea.Cmd {
	p, ok := m.pending[msg.id]
	if !ok {
		return nil
	}
	delete(m.pending, msg.id)

	switch {
	case msg.err != nil:
		m.setError(msg.err)
	case msg.changed:
		m.setStatus("Added " + p.city + " to " + p.country)
	case !m.app.Travel.State().IsVisited(p.country):
		m.setStatus(p.country + " is no longer visited")
	default:
		m.setStatus(p.city + " is already listed under " + p.country)
	}
	return m.refresh()
}

// quit applies city adds still waiting on their delay.
func (m *Model) quit() {
	m.quitting = true
	for id, p := range m.pending {
		delete(m.pending, id)
		if !p.handle.Stop() {
			continue
		}
		if _, err := m.app.Travel.AddCity(m.ctx, p.country, p.city, p.date); err != nil {
			m.log.Error().Err(err).Str("city", p.city).Msg("flush pending city")
		}
	}
}

func (m *Model) removeSelected(rows []row) tea.Cmd {
	r, ok := m.selectedRow(rows)
	if !ok {
		return nil
	}

	var err error
	switch r.kind {
	case rowCountry:
		_, err = m.app.Travel.RemoveVisitedCountry(m.ctx, r.country)
		m.setStatus("Removed " + r.country)
	case rowCity:
		_, err = m.app.Travel.RemoveCity(m.ctx, r.country, r.city)
		m.setStatus("Removed " + r.city)
	case rowWish:
		_, err = m.app.Travel.RemoveFromWishlist(m.ctx, r.wish)
		m.setStatus("Removed " + r.wish + " from the wishlist")
	}
	if err != nil {
		m.setError(err)
	}

	m.panel.moveCursor(0, len(m.rows()))
	return m.refresh()
}

func (m *Model) toggleTheme() tea.Cmd {
	dark := !m.dark
	if err := m.app.Travel.SetDarkMode(m.ctx, dark); err != nil {
		m.setError(err)
		return nil
	}
	m.dark = dark
	styles.SetDark(dark)
	m.setStatus("Theme: " + styles.ThemeFor(dark))
	return nil
}

// refresh rebuilds views that cache travel state.
func (m *Model) refresh() tea.Cmd {
	return m.atlas.SetItems(atlasItems(m.app.Atlas, m.app.Travel.State()))
}

func (m *Model) resize() {
	_, atlasW := m.paneWidths()
	// Pane border and padding take two columns and rows on each side.
	m.atlas.SetSize(max(0, atlasW-4), max(0, m.bodyHeight()-2))
	m.help.Width = m.width
}

func (m Model) paneWidths() (int, int) {
	if m.width <= 0 {
		return 60, 40
	}
	panelW := m.width * 3 / 5
	return panelW, m.width - panelW
}

func (m Model) bodyHeight() int {
	if m.height <= 0 {
		return 30
	}
	return max(5, m.height-3)
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *Model) setError(err error) {
	m.log.Error().Err(err).Msg("operation failed")
	m.status = err.Error()
	m.statusErr = true
}

func fieldMessage(err error) string {
	var fe criterio.FieldErrors
	if errors.As(err, &fe) && len(fe) > 0 {
		return fe[0].Err.Error()
	}
	return err.Error()
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	panelW, atlasW := m.paneWidths()
	height := m.bodyHeight()

	panelStyle, atlasStyle := styles.PaneStyle, styles.PaneStyle
	if m.focus == panePanel {
		panelStyle = styles.PaneFocusedStyle
	} else {
		atlasStyle = styles.PaneFocusedStyle
	}

	panel := panelStyle.Width(max(0, panelW-2)).Height(max(0, height-2)).Render(m.panelView(panelW-4, height-2))
	atlas := atlasStyle.Width(max(0, atlasW-2)).Height(max(0, height-2)).Render(m.atlasView())

	body := lipgloss.JoinHorizontal(lipgloss.Top, panel, atlas)

	footer := m.help.View(m.keys)
	if m.status != "" {
		style := styles.TextSuccessStyle
		if m.statusErr {
			style = styles.TextErrorStyle
		}
		footer = style.Render(m.status) + "\n" + footer
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, footer)
}

func (m Model) atlasView() string {
	title := styles.TitleStyle.Render(styles.IconGlobe + " Atlas")
	if m.atlas.FilterState() != list.Unfiltered {
		title += " " + styles.TextMutedStyle.Render(m.atlas.FilterInput.View())
	}
	return title + "\n" + m.atlas.View()
}
