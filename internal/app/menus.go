package app

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/abhisek/pcdiag/internal/editor"
	"github.com/abhisek/pcdiag/internal/prompt"
	"github.com/abhisek/pcdiag/internal/session"
)

func cancelled(err error) bool {
	return errors.Is(err, prompt.ErrCancelled)
}

func (a *App) home(ctx context.Context) (State, error) {
	i, err := a.p.PickOne(ctx, HomePrompt, []string{OptionDiagnose, OptionManage, OptionQuit})
	if cancelled(err) {
		return StateQuit, nil
	}
	if err != nil {
		return StateQuit, err
	}

	switch i {
	case 0:
		return StateDiagnose, nil
	case 1:
		return StateManage, nil
	}
	return StateQuit, nil
}

func (a *App) diagnose(ctx context.Context) (State, error) {
	_, err := session.Run(ctx, a.p, a.ed.Questions(), a.ed.Solutions(), session.Options{
		Policy: a.policy,
		Logger: a.log,
	})
	if cancelled(err) {
		a.p.ShowInfo(ctx, InfoTitle, DiagnosisAborted)
		return StateBack, nil
	}
	if err != nil {
		return StateQuit, err
	}
	return StateBack, nil
}

func (a *App) manage(ctx context.Context) (State, error) {
	options := []string{
		OptionAddQuestion,
		OptionAddSolution,
		OptionEditQuestion,
		OptionEditSolution,
		OptionBack,
	}
	i, err := a.p.PickOne(ctx, ManagePrompt, options)
	if cancelled(err) {
		return StateBack, nil
	}
	if err != nil {
		return StateQuit, err
	}

	switch i {
	case 0:
		return StateManage, a.addQuestion(ctx)
	case 1:
		return StateManage, a.addSolution(ctx)
	case 2:
		return StateListQuestions, nil
	case 3:
		return StateListSolutions, nil
	}
	return StateBack, nil
}

// askText asks for a required value. ok is false when the user dismissed
// the prompt or left it empty; the latter is reported as a warning.
func (a *App) askText(ctx context.Context, label, initial string) (value string, ok bool, err error) {
	v, err := a.p.AskText(ctx, label, initial)
	if cancelled(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	if v == "" {
		a.p.ShowWarning(ctx, WarningTitle, warningFor(editor.ErrEmptyField))
		return "", false, nil
	}
	return v, true, nil
}

// report shows the outcome of an editor operation.
func (a *App) report(ctx context.Context, err error, success string) {
	if err != nil {
		a.log.Warn("edit rejected", zap.Error(err))
		a.p.ShowWarning(ctx, WarningTitle, warningFor(err))
		return
	}
	a.p.ShowInfo(ctx, SuccessTitle, success)
}
