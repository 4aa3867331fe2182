package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Line prompts over plain text streams: one question per line, one answer
// per line. End of input dismisses the pending prompt.
type Line struct {
	in  *bufio.Reader
	out io.Writer
}

var _ Prompter = (*Line)(nil)

// NewLine creates a line prompter reading from in and writing to out.
func NewLine(in io.Reader, out io.Writer) *Line {
	return &Line{in: bufio.NewReader(in), out: out}
}

func (p *Line) AskYesNo(ctx context.Context, prompt string) (bool, error) {
	for {
		fmt.Fprintf(p.out, "%s [s/n]: ", prompt)
		line, err := p.readLine(ctx)
		if err != nil {
			return false, err
		}
		if yes, ok := parseYesNo(line); ok {
			return yes, nil
		}
		fmt.Fprintln(p.out, "Responde 's' o 'n'.")
	}
}

func (p *Line) AskText(ctx context.Context, prompt, initial string) (string, error) {
	if initial != "" {
		fmt.Fprintf(p.out, "%s [%s]: ", prompt, initial)
	} else {
		fmt.Fprintf(p.out, "%s: ", prompt)
	}
	line, err := p.readLine(ctx)
	if err != nil {
		return "", err
	}
	if line == "" {
		return initial, nil
	}
	return line, nil
}

func (p *Line) PickOne(ctx context.Context, prompt string, options []string) (int, error) {
	if len(options) == 0 {
		return -1, ErrCancelled
	}
	if prompt != "" {
		fmt.Fprintln(p.out, prompt)
	}
	for i, opt := range options {
		fmt.Fprintf(p.out, "  %d. %s\n", i+1, opt)
	}
	for {
		fmt.Fprintf(p.out, "Opción (1-%d, vacío para cancelar): ", len(options))
		line, err := p.readLine(ctx)
		if err != nil {
			return -1, err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			return -1, ErrCancelled
		}
		n, err := strconv.Atoi(line)
		if err == nil && n >= 1 && n <= len(options) {
			return n - 1, nil
		}
		fmt.Fprintln(p.out, "Opción no válida.")
	}
}

func (p *Line) ShowInfo(_ context.Context, title, message string) {
	p.notify(title, message)
}

func (p *Line) ShowWarning(_ context.Context, title, message string) {
	p.notify("! "+title, message)
}

func (p *Line) notify(title, message string) {
	if title != "" {
		fmt.Fprintf(p.out, "%s: %s\n", title, message)
		return
	}
	fmt.Fprintln(p.out, message)
}

// readLine returns the next line without its terminator. EOF with no
// pending text is reported as ErrCancelled.
func (p *Line) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read input: %w", err)
	}
	if errors.Is(err, io.EOF) && line == "" {
		fmt.Fprintln(p.out)
		return "", ErrCancelled
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func parseYesNo(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "s", "si", "sí", "y", "yes":
		return true, true
	case "n", "no":
		return false, true
	}
	return false, false
}
