// Package app drives the interactive menus. Each state handler talks to the
// user through a prompt.Prompter and returns the state to move to.
package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/pcdiag/internal/editor"
	"github.com/abhisek/pcdiag/internal/prompt"
	"github.com/abhisek/pcdiag/internal/router"
	"github.com/abhisek/pcdiag/internal/session"
)

// State identifies a menu or view.
type State int

const (
	StateHome State = iota
	StateDiagnose
	StateManage
	StateListQuestions
	StateListSolutions

	// StateBack returns to the previous state; from the first state it quits.
	StateBack

	// StateQuit ends Run.
	StateQuit
)

var stateNames = map[State]string{
	StateHome:          "home",
	StateDiagnose:      "diagnose",
	StateManage:        "manage",
	StateListQuestions: "list_questions",
	StateListSolutions: "list_solutions",
	StateBack:          "back",
	StateQuit:          "quit",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Options configures an App.
type Options struct {
	CancelPolicy session.CancelPolicy
	Logger       *zap.Logger
}

// App owns the editor and the prompter for one interactive run.
type App struct {
	ed     *editor.Editor
	p      prompt.Prompter
	policy session.CancelPolicy
	log    *zap.Logger
}

// New creates an App.
func New(ed *editor.Editor, p prompt.Prompter, opts Options) *App {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &App{
		ed:     ed,
		p:      p,
		policy: opts.CancelPolicy,
		log:    log,
	}
}

// Run starts at state start and loops until the user quits or leaves the
// first state. Only prompter failures other than cancellation are returned.
func (a *App) Run(ctx context.Context, start State) error {
	nav := router.New(start)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		current := nav.Active()
		next, err := a.handle(ctx, current)
		if err != nil {
			return fmt.Errorf("%s: %w", current, err)
		}

		switch next {
		case StateQuit:
			a.log.Debug("quit", zap.Stringer("from", current))
			return nil
		case StateBack:
			if !nav.Pop() {
				a.log.Debug("left first state", zap.Stringer("state", current))
				return nil
			}
		case current:
		default:
			nav.Push(next)
		}
		a.log.Debug("state", zap.Stringer("from", current), zap.Stringer("to", nav.Active()))
	}
}

func (a *App) handle(ctx context.Context, s State) (State, error) {
	switch s {
	case StateHome:
		return a.home(ctx)
	case StateDiagnose:
		return a.diagnose(ctx)
	case StateManage:
		return a.manage(ctx)
	case StateListQuestions:
		return a.listQuestions(ctx)
	case StateListSolutions:
		return a.listSolutions(ctx)
	}
	return StateQuit, fmt.Errorf("no handler for state %s", s)
}
