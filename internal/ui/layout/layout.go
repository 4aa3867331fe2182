package layout

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/pcdiag/internal/ui/theme"
)

// DefaultWidth is used when the terminal width is unknown.
const DefaultWidth = 80

// AppName is shown on the left of every header.
const AppName = "pcdiag"

// KeyHint represents a key binding hint shown under a prompt.
type KeyHint struct {
	Key         string
	Description string
}

// Hints for each prompt kind.
var (
	ConfirmHints = []KeyHint{
		{Key: "←→", Description: "Cambiar"},
		{Key: "S/N", Description: "Responder"},
		{Key: "Enter", Description: "Aceptar"},
		{Key: "Esc", Description: "Cancelar"},
	}
	ChoiceHints = []KeyHint{
		{Key: "↑↓", Description: "Navegar"},
		{Key: "Enter", Description: "Elegir"},
		{Key: "Esc", Description: "Cancelar"},
	}
	TextHints = []KeyHint{
		{Key: "Enter", Description: "Aceptar"},
		{Key: "Esc", Description: "Cancelar"},
	}
)

// RenderHints renders key hints on a single line.
func RenderHints(hints []KeyHint) string {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		part := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(h.Key) +
			" " +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(h.Description)
		parts = append(parts, part)
	}
	return "  " + strings.Join(parts, "   ")
}

// RenderHeader renders the header bar with the app name on the left and
// title centered.
func RenderHeader(title string, width int) string {
	if width <= 0 {
		width = DefaultWidth
	}

	left := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("  " + AppName)

	center := lipgloss.NewStyle().
		Foreground(theme.Text).
		Render(title)

	leftLen := lipgloss.Width(left)
	centerLen := lipgloss.Width(center)

	innerWidth := width - 4 // account for border padding
	if innerWidth < 0 {
		innerWidth = 0
	}

	leftGap := (innerWidth-centerLen)/2 - leftLen
	if leftGap < 1 {
		leftGap = 1
	}

	content := left + strings.Repeat(" ", leftGap) + center

	return lipgloss.NewStyle().
		Width(width).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(content)
}

// RenderSection renders a titled block of lines. An empty section shows
// placeholder instead.
func RenderSection(title string, lines []string, placeholder string) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render(title))
	b.WriteString("\n")
	if len(lines) == 0 {
		b.WriteString(theme.Hint.Render("  " + placeholder))
		b.WriteString("\n")
		return b.String()
	}
	for _, l := range lines {
		b.WriteString(theme.Body.Render("  " + l))
		b.WriteString("\n")
	}
	return b.String()
}

// RenderPage composes a header and sections separated by blank lines.
func RenderPage(header string, sections ...string) string {
	return header + "\n\n" + strings.Join(sections, "\n")
}
