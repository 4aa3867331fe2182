package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/pcdiag/internal/ui/theme"
)

// Choice is a vertical single-selection list.
type Choice struct {
	Prompt    string
	Options   []string
	Selected  int
	Submitted bool
	Cancelled bool
}

// NewChoice creates a choice list with the first option highlighted.
func NewChoice(prompt string, options []string) Choice {
	return Choice{Prompt: prompt, Options: options}
}

// Done reports whether the user picked an option or dismissed the list.
func (m Choice) Done() bool {
	return m.Submitted || m.Cancelled
}

// Update handles keyboard navigation and selection.
func (m Choice) Update(msg tea.Msg) (Choice, tea.Cmd) {
	if m.Done() {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case "enter":
		if len(m.Options) > 0 {
			m.Submitted = true
		}
	case "esc", "ctrl+c":
		m.Cancelled = true
	}
	return m, nil
}

// View renders the list.
func (m Choice) View() string {
	var b strings.Builder
	if m.Prompt != "" {
		b.WriteString(theme.Prompt.Render(m.Prompt))
		b.WriteString("\n\n")
	}

	for i, opt := range m.Options {
		if m.Submitted && i != m.Selected {
			continue
		}
		if i == m.Selected {
			b.WriteString(theme.Selected.Render(fmt.Sprintf("  ▸ %s", opt)))
		} else {
			b.WriteString(theme.Unselected.Render(fmt.Sprintf("    %s", opt)))
		}
		b.WriteString("\n")
	}

	return b.String()
}
