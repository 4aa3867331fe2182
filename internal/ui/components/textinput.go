package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/pcdiag/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with a prompt line.
type TextInput struct {
	Prompt    string
	Model     textinput.Model
	Submitted bool
	Cancelled bool
}

// NewTextInput creates a focused text input prefilled with initial.
func NewTextInput(prompt, initial string, maxWidth int) TextInput {
	ti := textinput.New()
	ti.SetValue(initial)
	ti.Focus()

	if maxWidth > 0 {
		ti.CharLimit = maxWidth
	}

	return TextInput{Prompt: prompt, Model: ti}
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Done reports whether the user submitted or dismissed the input.
func (t TextInput) Done() bool {
	return t.Submitted || t.Cancelled
}

// Update handles messages.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if t.Done() {
		return t, nil
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter":
			t.Submitted = true
			return t, nil
		case "esc", "ctrl+c":
			t.Cancelled = true
			return t, nil
		}
	}

	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the prompt and the input.
func (t TextInput) View() string {
	return theme.Prompt.Render(t.Prompt) + "\n" + t.Model.View() + "\n"
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}
