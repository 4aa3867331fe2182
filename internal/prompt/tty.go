package prompt

import (
	"context"
	"fmt"
	"io"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/pcdiag/internal/ui/components"
	"github.com/abhisek/pcdiag/internal/ui/layout"
	"github.com/abhisek/pcdiag/internal/ui/theme"
)

// TTY prompts through small inline Bubble Tea programs.
type TTY struct {
	out io.Writer
}

var _ Prompter = (*TTY)(nil)

// NewTTY creates a TTY prompter that prints notifications to out.
func NewTTY(out io.Writer) *TTY {
	return &TTY{out: out}
}

func (p *TTY) AskYesNo(ctx context.Context, prompt string) (bool, error) {
	final, err := p.run(ctx, confirmModel{c: components.NewConfirm(prompt)})
	if err != nil {
		return false, err
	}
	m := final.(confirmModel)
	if m.c.Cancelled {
		return false, ErrCancelled
	}
	return m.c.Yes, nil
}

func (p *TTY) AskText(ctx context.Context, prompt, initial string) (string, error) {
	final, err := p.run(ctx, textModel{t: components.NewTextInput(prompt, initial, 0)})
	if err != nil {
		return "", err
	}
	m := final.(textModel)
	if m.t.Cancelled {
		return "", ErrCancelled
	}
	return m.t.Value(), nil
}

func (p *TTY) PickOne(ctx context.Context, prompt string, options []string) (int, error) {
	if len(options) == 0 {
		return -1, ErrCancelled
	}
	final, err := p.run(ctx, choiceModel{c: components.NewChoice(prompt, options)})
	if err != nil {
		return -1, err
	}
	m := final.(choiceModel)
	if m.c.Cancelled {
		return -1, ErrCancelled
	}
	return m.c.Selected, nil
}

func (p *TTY) ShowInfo(_ context.Context, title, message string) {
	fmt.Fprintln(p.out, renderNotice(theme.InfoCard, theme.InfoTitle, title, message))
}

func (p *TTY) ShowWarning(_ context.Context, title, message string) {
	fmt.Fprintln(p.out, renderNotice(theme.WarningCard, theme.WarningTitle, title, message))
}

func (p *TTY) run(ctx context.Context, m tea.Model) (tea.Model, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return nil, fmt.Errorf("run prompt: %w", err)
	}
	return final, nil
}

// confirmModel, textModel and choiceModel adapt a component into a
// one-shot program that quits as soon as the component is done.

type confirmModel struct{ c components.Confirm }

func (m confirmModel) Init() tea.Cmd { return nil }

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.c, _ = m.c.Update(msg)
	if m.c.Done() {
		return m, tea.Quit
	}
	return m, nil
}

func (m confirmModel) View() tea.View {
	return tea.NewView(withHints(m.c.View(), m.c.Done(), layout.ConfirmHints))
}

type textModel struct{ t components.TextInput }

func (m textModel) Init() tea.Cmd { return m.t.Init() }

func (m textModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.t, cmd = m.t.Update(msg)
	if m.t.Done() {
		return m, tea.Quit
	}
	return m, cmd
}

func (m textModel) View() tea.View {
	return tea.NewView(withHints(m.t.View(), m.t.Done(), layout.TextHints))
}

type choiceModel struct{ c components.Choice }

func (m choiceModel) Init() tea.Cmd { return nil }

func (m choiceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.c, _ = m.c.Update(msg)
	if m.c.Done() {
		return m, tea.Quit
	}
	return m, nil
}

func (m choiceModel) View() tea.View {
	return tea.NewView(withHints(m.c.View(), m.c.Done(), layout.ChoiceHints))
}

// withHints appends key hints while the prompt is still waiting for input.
func withHints(view string, done bool, hints []layout.KeyHint) string {
	if done {
		return view
	}
	return view + layout.RenderHints(hints) + "\n"
}
