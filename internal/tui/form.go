package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/colonyops/passport/internal/core/styles"
)

type formKind int

const (
	formNone formKind = iota
	formCountry
	formWish
	formCity
)

// inputForm is the add-country, add-wish, and add-city form. Its error line
// clears on the next keystroke.
type inputForm struct {
	kind    formKind
	country string // target of a city form
	inputs  []textinput.Model
	focus   int
	err     string
}

func newInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "› "
	ti.CharLimit = 64
	ti.Width = 32
	return ti
}

func newCountryForm() inputForm {
	return newForm(formCountry, "", newInput("e.g. France"))
}

func newWishForm() inputForm {
	return newForm(formWish, "", newInput("e.g. New Zealand"))
}

func newCityForm(country, today string) inputForm {
	date := newInput("YYYY-MM-DD")
	date.CharLimit = 10
	date.SetValue(today)
	return newForm(formCity, country, newInput("e.g. Kyoto"), date)
}

func newForm(kind formKind, country string, inputs ...textinput.Model) inputForm {
	f := inputForm{kind: kind, country: country, inputs: inputs}
	f.inputs[0].Focus()
	return f
}

func (f inputForm) active() bool { return f.kind != formNone }

func (f inputForm) value(i int) string {
	if i >= len(f.inputs) {
		return ""
	}
	return strings.TrimSpace(f.inputs[i].Value())
}

func (f inputForm) title() string {
	switch f.kind {
	case formCountry:
		return "Add a visited country"
	case formWish:
		return "Add to wishlist"
	case formCity:
		return "Add a city in " + f.country
	default:
		return ""
	}
}

func (f inputForm) labels() []string {
	if f.kind == formCity {
		return []string{"City", "Visit date"}
	}
	return []string{"Country"}
}

// nextField moves focus and reports whether there was another field.
func (f *inputForm) nextField() bool {
	if f.focus >= len(f.inputs)-1 {
		return false
	}
	f.inputs[f.focus].Blur()
	f.focus++
	f.inputs[f.focus].Focus()
	return true
}

func (f *inputForm) prevField() {
	if f.focus == 0 {
		return
	}
	f.inputs[f.focus].Blur()
	f.focus--
	f.inputs[f.focus].Focus()
}

func (f inputForm) update(msg tea.Msg) (inputForm, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		f.err = ""
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

func (f inputForm) view(width int) string {
	var b strings.Builder
	b.WriteString(styles.FormTitleStyle.Render(f.title()))
	b.WriteString("\n")

	labels := f.labels()
	for i, in := range f.inputs {
		style := styles.FormFieldStyle
		if i == f.focus {
			style = styles.FormFieldFocusedStyle
		}
		field := styles.FormHelpStyle.Render(labels[i]) + "\n" + in.View()
		b.WriteString(style.Width(max(10, width-4)).Render(field))
		b.WriteString("\n")
	}

	if f.err != "" {
		b.WriteString(styles.FormErrorStyle.Render(f.err))
		b.WriteString("\n")
	}
	b.WriteString(styles.FormHelpStyle.Render("enter submit • tab next field • esc cancel"))
	return b.String()
}
