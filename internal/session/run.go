package session

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/pcdiag/internal/inference"
	"github.com/abhisek/pcdiag/internal/kb"
	"github.com/abhisek/pcdiag/internal/prompt"
)

// ResultTitle is the notification title used for the diagnosis.
const ResultTitle = "Resultado"

// Options configures Run.
type Options struct {
	Policy CancelPolicy
	Logger *zap.Logger
}

// Outcome is what a completed diagnosis produced.
type Outcome struct {
	SessionID string
	Answers   kb.Answers
	Result    inference.Result
	Diagnosis string
}

// Run asks every question through p, infers the diagnosis and shows it with
// ShowInfo. A dismissed prompt under CancelAborts returns
// prompt.ErrCancelled and shows nothing.
func Run(ctx context.Context, p prompt.Prompter, questions []kb.Question, solutions []kb.Solution, opts Options) (*Outcome, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	s := New(questions, solutions, opts.Policy)
	log = log.With(zap.String("session_id", s.ID))
	log.Info("diagnosis started",
		zap.Int("questions", len(s.Questions)),
		zap.Int("solutions", len(s.Solutions)),
		zap.Stringer("cancel_policy", s.Policy))

	if err := s.Start(); err != nil {
		return nil, err
	}

	for s.Phase == PhaseAsking {
		q, i, _ := s.Current()
		yes, err := p.AskYesNo(ctx, q.Text)
		switch {
		case err == nil:
			log.Debug("answer recorded", zap.String("factor", q.Factor), zap.Bool("yes", yes))
			err = s.Answer(yes)
		case errors.Is(err, prompt.ErrCancelled):
			log.Debug("prompt dismissed", zap.String("factor", q.Factor))
			err = s.Dismiss()
		default:
			return nil, fmt.Errorf("ask question %d: %w", i+1, err)
		}
		if err != nil {
			return nil, err
		}
	}

	if s.Phase == PhaseCancelled {
		answered, total := s.Progress()
		log.Info("diagnosis cancelled", zap.Int("answered", answered), zap.Int("total", total))
		return nil, prompt.ErrCancelled
	}

	text, err := s.Diagnosis()
	if err != nil {
		return nil, err
	}
	log.Info("diagnosis resolved",
		zap.Bool("matched", s.Result.Found()),
		zap.Int("solution_index", s.Result.Index),
		zap.Int("dismissed", s.Dismissed))

	p.ShowInfo(ctx, ResultTitle, text)

	return &Outcome{
		SessionID: s.ID,
		Answers:   s.Answers,
		Result:    s.Result,
		Diagnosis: text,
	}, nil
}
