package app

import (
	"context"
	"errors"

	"github.com/abhisek/pcdiag/internal/editor"
	"github.com/abhisek/pcdiag/internal/kb"
)

func (a *App) addQuestion(ctx context.Context) error {
	text, ok, err := a.askText(ctx, AskQuestionText, "")
	if !ok {
		return err
	}
	factor, ok, err := a.askText(ctx, AskQuestionFactor, "")
	if !ok {
		return err
	}
	a.report(ctx, a.ed.AddQuestion(ctx, text, factor), QuestionAdded)
	return nil
}

// addSolution asks for a description and then builds its rules. With no
// questions the rule builder warns and the solution is stored without
// rules.
func (a *App) addSolution(ctx context.Context) error {
	desc, ok, err := a.askText(ctx, AskSolutionText, "")
	if !ok {
		return err
	}
	rules, err := a.ed.BuildRules(ctx, a.p)
	if errors.Is(err, editor.ErrNoFactors) {
		rules = []kb.Rule{}
	} else if err != nil {
		return err
	}
	a.report(ctx, a.ed.AddSolution(ctx, desc, rules), SolutionAdded)
	return nil
}

func (a *App) editQuestion(ctx context.Context, index int) error {
	q := a.ed.Questions()[index]
	text, ok, err := a.askText(ctx, EditQuestionText, q.Text)
	if !ok {
		return err
	}
	factor, ok, err := a.askText(ctx, EditQuestionFact, q.Factor)
	if !ok {
		return err
	}
	a.report(ctx, a.ed.EditQuestion(ctx, index, text, factor), QuestionEdited)
	return nil
}

func (a *App) editSolution(ctx context.Context, index int) error {
	s := a.ed.Solutions()[index]
	desc, ok, err := a.askText(ctx, AskSolutionText, s.Description)
	if !ok {
		return err
	}
	expected, err := a.ed.RefreshRules(ctx, a.p, index)
	if cancelled(err) {
		return nil
	}
	if err != nil {
		return err
	}
	a.report(ctx, a.ed.EditSolution(ctx, index, desc, expected), SolutionEdited)
	return nil
}

func (a *App) deleteEntry(ctx context.Context, c kb.Collection, index int) error {
	yes, err := a.p.AskYesNo(ctx, ConfirmDelete)
	if cancelled(err) || (err == nil && !yes) {
		return nil
	}
	if err != nil {
		return err
	}
	a.report(ctx, a.ed.Delete(ctx, c, index), EntryDeleted)
	return nil
}
