package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pcdiag/internal/ui/theme"
)

// Confirm is a Sí/No selector.
type Confirm struct {
	Prompt    string
	Yes       bool
	Submitted bool
	Cancelled bool
}

// NewConfirm creates a confirm component with "Sí" preselected.
func NewConfirm(prompt string) Confirm {
	return Confirm{Prompt: prompt, Yes: true}
}

// Done reports whether the user answered or dismissed the prompt.
func (c Confirm) Done() bool {
	return c.Submitted || c.Cancelled
}

// Update handles keyboard input.
func (c Confirm) Update(msg tea.Msg) (Confirm, tea.Cmd) {
	if c.Done() {
		return c, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "left", "right", "h", "l", "tab":
		c.Yes = !c.Yes
	case "s", "y":
		c.Yes = true
		c.Submitted = true
	case "n":
		c.Yes = false
		c.Submitted = true
	case "enter":
		c.Submitted = true
	case "esc", "ctrl+c":
		c.Cancelled = true
	}
	return c, nil
}

// View renders the prompt and both buttons.
func (c Confirm) View() string {
	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		NewButton("Sí", c.Yes).View(),
		" ",
		NewButton("No", !c.Yes).View(),
	)
	return theme.Prompt.Render(c.Prompt) + "\n\n" + buttons + "\n"
}
