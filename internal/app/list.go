package app

import (
	"context"
	"fmt"

	"github.com/abhisek/pcdiag/internal/kb"
)

// Labels numbers entries from 1 the way the list views show them.
func Labels(texts []string) []string {
	out := make([]string, len(texts))
	for i, t := range texts {
		out[i] = fmt.Sprintf("%d. %s", i+1, t)
	}
	return out
}

func (a *App) listQuestions(ctx context.Context) (State, error) {
	qs := a.ed.Questions()
	texts := make([]string, len(qs))
	for i, q := range qs {
		texts[i] = q.Text
	}
	return a.list(ctx, kb.CollectionQuestions, StateListQuestions, ListQuestionsPrompt, NoQuestions, texts)
}

func (a *App) listSolutions(ctx context.Context) (State, error) {
	sols := a.ed.Solutions()
	texts := make([]string, len(sols))
	for i, s := range sols {
		texts[i] = s.Description
	}
	return a.list(ctx, kb.CollectionSolutions, StateListSolutions, ListSolutionsPrompt, NoSolutions, texts)
}

// list lets the user pick an entry and then edit or delete it. After an
// action the same list is shown again with fresh contents.
func (a *App) list(ctx context.Context, c kb.Collection, self State, title, empty string, texts []string) (State, error) {
	if len(texts) == 0 {
		a.p.ShowInfo(ctx, InfoTitle, empty)
		return StateBack, nil
	}

	labels := Labels(texts)
	i, err := a.p.PickOne(ctx, title, append(labels, OptionBack))
	if cancelled(err) {
		return StateBack, nil
	}
	if err != nil {
		return StateQuit, err
	}
	if i == len(texts) {
		return StateBack, nil
	}

	action, err := a.p.PickOne(ctx, labels[i], []string{OptionEdit, OptionDelete, OptionBack})
	if cancelled(err) {
		return self, nil
	}
	if err != nil {
		return StateQuit, err
	}

	switch action {
	case 0:
		if c == kb.CollectionQuestions {
			err = a.editQuestion(ctx, i)
		} else {
			err = a.editSolution(ctx, i)
		}
	case 1:
		err = a.deleteEntry(ctx, c, i)
	}
	return self, err
}
