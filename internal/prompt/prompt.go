// Package prompt is the boundary between the diagnostic core and whatever
// asks the user things. Every call blocks until the user answers or
// dismisses the prompt.
package prompt

import (
	"context"
	"errors"
	"os"

	"github.com/mattn/go-isatty"
)

// ErrCancelled is returned when the user dismisses a prompt without
// answering. For PickOne it is also the "no selection" signal.
var ErrCancelled = errors.New("prompt cancelled")

// Prompter requests values from the user and shows notifications.
type Prompter interface {
	// AskYesNo asks a yes/no question.
	AskYesNo(ctx context.Context, prompt string) (bool, error)

	// AskText asks for free text, prefilled with initial.
	AskText(ctx context.Context, prompt, initial string) (string, error)

	// PickOne asks the user to pick one option and returns its index.
	PickOne(ctx context.Context, prompt string, options []string) (int, error)

	// ShowInfo and ShowWarning display a notification. Nothing is returned.
	ShowInfo(ctx context.Context, title, message string)
	ShowWarning(ctx context.Context, title, message string)
}

// New returns a TTY prompter when both stdin and stdout are terminals, and
// a line-oriented prompter otherwise (piped input, CI).
func New() Prompter {
	if isTerminal(os.Stdin) && isTerminal(os.Stdout) {
		return NewTTY(os.Stdout)
	}
	return NewLine(os.Stdin, os.Stdout)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
