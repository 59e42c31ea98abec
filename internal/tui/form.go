package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// formField is one labelled input. name matches the field names carried by
// validation errors.
type formField struct {
	name  string
	label string
	input textinput.Model
}

func newInput(placeholder string, limit int, secret bool) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.Width = 40
	if secret {
		in.EchoMode = textinput.EchoPassword
		in.EchoCharacter = '*'
	}
	return in
}

// inputForm holds a set of fields with a single focused input.
type inputForm struct {
	fields []formField
	focus  int
	errs   formErrors
}

func newInputForm(fields ...formField) inputForm {
	f := inputForm{fields: fields}
	if len(f.fields) > 0 {
		f.fields[0].input.Focus()
	}
	return f
}

func (f *inputForm) focusNext() {
	f.fields[f.focus].input.Blur()
	f.focus = (f.focus + 1) % len(f.fields)
	f.fields[f.focus].input.Focus()
}

func (f *inputForm) focusPrev() {
	f.fields[f.focus].input.Blur()
	f.focus = (f.focus - 1 + len(f.fields)) % len(f.fields)
	f.fields[f.focus].input.Focus()
}

func (f *inputForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.fields[f.focus].input, cmd = f.fields[f.focus].input.Update(msg)
	return cmd
}

func (f *inputForm) value(name string) string {
	for _, field := range f.fields {
		if field.name == name {
			return field.input.Value()
		}
	}
	return ""
}

func (f *inputForm) setValue(name, v string) {
	for i := range f.fields {
		if f.fields[i].name == name {
			f.fields[i].input.SetValue(v)
		}
	}
}

func (f *inputForm) names() []string {
	out := make([]string, len(f.fields))
	for i, field := range f.fields {
		out[i] = field.name
	}
	return out
}

func (f *inputForm) setError(err error) {
	f.errs = newFormErrors(err, f.names()...)
}

// reset clears values and errors and focuses the first input.
func (f *inputForm) reset() {
	for i := range f.fields {
		f.fields[i].input.Reset()
		f.fields[i].input.Blur()
	}
	f.focus = 0
	f.errs = formErrors{}
	if len(f.fields) > 0 {
		f.fields[0].input.Focus()
	}
}

func (f *inputForm) view() string {
	labelWidth := 0
	for _, field := range f.fields {
		if w := lipgloss.Width(field.label); w > labelWidth {
			labelWidth = w
		}
	}

	var b strings.Builder
	for _, field := range f.fields {
		b.WriteString(fmt.Sprintf("%-*s │ [%s]", labelWidth, field.label, field.input.View()))
		b.WriteString(renderFieldError(f.errs.field(field.name)))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
