package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// formField describes one input line in a modal form.
type formField struct {
	label       string
	placeholder string
	initial     string
	secret      bool
}

// form is a focused stack of text inputs. Enter advances; enter on the last
// field submits, esc (handled by the caller) abandons it.
type form struct {
	title  string
	fields []formField
	inputs []textinput.Model
	focus  int
	submit func(values []string) tea.Cmd
}

func newForm(title string, submit func([]string) tea.Cmd, fields ...formField) *form {
	f := &form{title: title, fields: fields, submit: submit}
	f.inputs = make([]textinput.Model, len(fields))
	for i, field := range fields {
		in := textinput.New()
		in.Placeholder = field.placeholder
		in.CharLimit = 256
		in.SetValue(field.initial)
		if field.secret {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '•'
		}
		f.inputs[i] = in
	}
	if len(f.inputs) > 0 {
		f.inputs[0].Focus()
	}
	return f
}

func (f *form) values() []string {
	out := make([]string, len(f.inputs))
	for i := range f.inputs {
		out[i] = strings.TrimSpace(f.inputs[i].Value())
	}
	return out
}

// update routes a key to the focused input and handles focus movement.
// The returned command is non-nil when the form submitted.
func (f *form) update(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		if f.focus == len(f.inputs)-1 {
			return f.submit(f.values())
		}
		f.setFocus(f.focus + 1)
		return nil
	case "tab", "down":
		f.setFocus((f.focus + 1) % len(f.inputs))
		return nil
	case "shift+tab", "up":
		f.setFocus((f.focus - 1 + len(f.inputs)) % len(f.inputs))
		return nil
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *form) setFocus(idx int) {
	f.inputs[f.focus].Blur()
	f.focus = idx
	f.inputs[f.focus].Focus()
}

func (f *form) view(styles Styles) string {
	var b strings.Builder
	b.WriteString(styles.AccentText.Render(f.title))
	b.WriteString("\n\n")
	for i, field := range f.fields {
		label := field.label
		if i == f.focus {
			b.WriteString(styles.Text.Render("> " + label))
		} else {
			b.WriteString(styles.MutedText.Render("  " + label))
		}
		b.WriteString("\n  ")
		b.WriteString(f.inputs[i].View())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("enter next/submit · tab cycle · esc cancel"))
	return b.String()
}
