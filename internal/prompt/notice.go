package prompt

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pcdiag/internal/ui/theme"
)

func renderNotice(card, titleStyle lipgloss.Style, title, message string) string {
	body := theme.Body.Render(message)
	if title != "" {
		body = titleStyle.Render(title) + "\n" + body
	}
	return card.Render(body)
}
