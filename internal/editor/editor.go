// Package editor adds, edits and deletes questions and solutions. Every
// successful change is written through to the repository before the
// in-memory copy is replaced.
package editor

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/pcdiag/internal/kb"
)

var (
	ErrEmptyField        = errors.New("required field is empty")
	ErrIndexOutOfRange   = errors.New("index out of range")
	ErrNoFactors         = errors.New("no factors available")
	ErrRuleCountMismatch = errors.New("rule count mismatch")
	ErrDuplicateFactor   = errors.New("factor already used by another question")
	ErrUnknownFactor     = errors.New("factor not asked by any question")
	ErrFactorInUse       = errors.New("factor still referenced by a solution")
)

// Repository loads and saves whole collections.
type Repository interface {
	LoadQuestions(ctx context.Context) ([]kb.Question, error)
	SaveQuestions(ctx context.Context, qs []kb.Question) error
	LoadSolutions(ctx context.Context) ([]kb.Solution, error)
	SaveSolutions(ctx context.Context, sols []kb.Solution) error
}

// FactorPolicy decides whether factor integrity is enforced.
type FactorPolicy int

const (
	// FactorsPermissive allows duplicate question factors and rules that
	// reference factors no question asks.
	FactorsPermissive FactorPolicy = iota

	// FactorsStrict rejects duplicate factors, rules on unknown factors and
	// question changes that would leave a rule dangling.
	FactorsStrict
)

func (f FactorPolicy) String() string {
	if f == FactorsStrict {
		return "strict"
	}
	return "permissive"
}

// ParseFactorPolicy accepts "permissive" (or empty) and "strict".
func ParseFactorPolicy(s string) (FactorPolicy, error) {
	switch s {
	case "", "permissive":
		return FactorsPermissive, nil
	case "strict":
		return FactorsStrict, nil
	}
	return FactorsPermissive, fmt.Errorf("unknown factor policy %q (want \"permissive\" or \"strict\")", s)
}

// Options configures an Editor.
type Options struct {
	Policy FactorPolicy
	Logger *zap.Logger
}

// Editor owns the in-memory copy of both collections.
type Editor struct {
	repo      Repository
	policy    FactorPolicy
	log       *zap.Logger
	questions []kb.Question
	solutions []kb.Solution
}

// Open loads both collections from repo.
func Open(ctx context.Context, repo Repository, opts Options) (*Editor, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	qs, err := repo.LoadQuestions(ctx)
	if err != nil {
		return nil, fmt.Errorf("load questions: %w", err)
	}
	sols, err := repo.LoadSolutions(ctx)
	if err != nil {
		return nil, fmt.Errorf("load solutions: %w", err)
	}

	return &Editor{
		repo:      repo,
		policy:    opts.Policy,
		log:       log,
		questions: qs,
		solutions: sols,
	}, nil
}

// Questions returns a copy of the current questions.
func (e *Editor) Questions() []kb.Question {
	return cloneQuestions(e.questions)
}

// Solutions returns a copy of the current solutions.
func (e *Editor) Solutions() []kb.Solution {
	return cloneSolutions(e.solutions)
}

// Factors returns the question factors in order.
func (e *Editor) Factors() []string {
	return kb.Factors(e.questions)
}

// Len returns the size of collection c.
func (e *Editor) Len(c kb.Collection) int {
	if c == kb.CollectionQuestions {
		return len(e.questions)
	}
	return len(e.solutions)
}

// Policy returns the factor policy in force.
func (e *Editor) Policy() FactorPolicy {
	return e.policy
}

// AddQuestion appends a question.
func (e *Editor) AddQuestion(ctx context.Context, text, factor string) error {
	q := kb.Question{Text: text, Factor: factor}
	if err := checkQuestion(q); err != nil {
		return err
	}
	if e.policy == FactorsStrict && kb.HasFactor(e.questions, factor) {
		return fmt.Errorf("%q: %w", factor, ErrDuplicateFactor)
	}

	next := append(cloneQuestions(e.questions), q)
	if err := e.commitQuestions(ctx, next); err != nil {
		return err
	}
	e.log.Info("question added", zap.String("factor", factor), zap.Int("count", len(e.questions)))
	return nil
}

// EditQuestion replaces the question at index.
func (e *Editor) EditQuestion(ctx context.Context, index int, text, factor string) error {
	if err := checkIndex(index, len(e.questions)); err != nil {
		return err
	}
	q := kb.Question{Text: text, Factor: factor}
	if err := checkQuestion(q); err != nil {
		return err
	}

	next := cloneQuestions(e.questions)
	next[index] = q
	if e.policy == FactorsStrict {
		for i, other := range e.questions {
			if i != index && other.Factor == factor {
				return fmt.Errorf("%q: %w", factor, ErrDuplicateFactor)
			}
		}
		if err := e.checkStillReferenced(next); err != nil {
			return err
		}
	}

	if err := e.commitQuestions(ctx, next); err != nil {
		return err
	}
	e.log.Info("question edited", zap.Int("index", index), zap.String("factor", factor))
	return nil
}

// AddSolution appends a solution with the given rules.
func (e *Editor) AddSolution(ctx context.Context, description string, rules []kb.Rule) error {
	s := kb.Solution{Description: description, Rules: cloneRules(rules)}
	if err := checkSolution(s); err != nil {
		return err
	}
	if e.policy == FactorsStrict {
		if err := e.checkRuleFactors(s.Rules); err != nil {
			return err
		}
	}

	next := append(cloneSolutions(e.solutions), s)
	if err := e.commitSolutions(ctx, next); err != nil {
		return err
	}
	e.log.Info("solution added", zap.Int("rules", len(s.Rules)), zap.Int("count", len(e.solutions)))
	return nil
}

// EditSolution replaces the solution at index. Rule factors are kept;
// expected supplies the new expected value of each rule, in order.
func (e *Editor) EditSolution(ctx context.Context, index int, description string, expected []bool) error {
	if err := checkIndex(index, len(e.solutions)); err != nil {
		return err
	}
	current := e.solutions[index]
	if len(expected) != len(current.Rules) {
		return fmt.Errorf("got %d values for %d rules: %w", len(expected), len(current.Rules), ErrRuleCountMismatch)
	}

	s := current.Clone()
	s.Description = description
	for i := range s.Rules {
		s.Rules[i].Expected = expected[i]
	}
	if err := checkSolution(s); err != nil {
		return err
	}

	next := cloneSolutions(e.solutions)
	next[index] = s
	if err := e.commitSolutions(ctx, next); err != nil {
		return err
	}
	e.log.Info("solution edited", zap.Int("index", index))
	return nil
}

// Delete removes the entry at index from collection c.
func (e *Editor) Delete(ctx context.Context, c kb.Collection, index int) error {
	switch c {
	case kb.CollectionQuestions:
		if err := checkIndex(index, len(e.questions)); err != nil {
			return err
		}
		next := make([]kb.Question, 0, len(e.questions)-1)
		next = append(next, e.questions[:index]...)
		next = append(next, e.questions[index+1:]...)
		if e.policy == FactorsStrict {
			if err := e.checkStillReferenced(next); err != nil {
				return err
			}
		}
		if err := e.commitQuestions(ctx, next); err != nil {
			return err
		}

	case kb.CollectionSolutions:
		if err := checkIndex(index, len(e.solutions)); err != nil {
			return err
		}
		next := make([]kb.Solution, 0, len(e.solutions)-1)
		next = append(next, cloneSolutions(e.solutions[:index])...)
		next = append(next, cloneSolutions(e.solutions[index+1:])...)
		if err := e.commitSolutions(ctx, next); err != nil {
			return err
		}

	default:
		return fmt.Errorf("delete: unknown collection %q", c)
	}

	e.log.Info("entry deleted", zap.String("collection", string(c)), zap.Int("index", index))
	return nil
}

// commitQuestions saves next, then reloads the collection so memory mirrors
// what was stored. On a failed save memory is left untouched.
func (e *Editor) commitQuestions(ctx context.Context, next []kb.Question) error {
	if err := e.repo.SaveQuestions(ctx, next); err != nil {
		return fmt.Errorf("save questions: %w", err)
	}
	e.questions = next

	loaded, err := e.repo.LoadQuestions(ctx)
	if err != nil {
		return fmt.Errorf("reload questions: %w", err)
	}
	e.questions = loaded
	return nil
}

func (e *Editor) commitSolutions(ctx context.Context, next []kb.Solution) error {
	if err := e.repo.SaveSolutions(ctx, next); err != nil {
		return fmt.Errorf("save solutions: %w", err)
	}
	e.solutions = next

	loaded, err := e.repo.LoadSolutions(ctx)
	if err != nil {
		return fmt.Errorf("reload solutions: %w", err)
	}
	e.solutions = loaded
	return nil
}

func (e *Editor) checkRuleFactors(rules []kb.Rule) error {
	for _, r := range rules {
		if !kb.HasFactor(e.questions, r.Factor) {
			return fmt.Errorf("%q: %w", r.Factor, ErrUnknownFactor)
		}
	}
	return nil
}

// checkStillReferenced rejects a question list that stops asking about a
// factor some solution depends on. Rules that were already dangling before
// the change do not count.
func (e *Editor) checkStillReferenced(next []kb.Question) error {
	before := make(map[string]bool)
	for _, f := range kb.DanglingFactors(e.questions, e.solutions) {
		before[f] = true
	}
	for _, f := range kb.DanglingFactors(next, e.solutions) {
		if !before[f] {
			return fmt.Errorf("%q: %w", f, ErrFactorInUse)
		}
	}
	return nil
}

func checkIndex(index, n int) error {
	if index < 0 || index >= n {
		return fmt.Errorf("%d not in [0, %d): %w", index, n, ErrIndexOutOfRange)
	}
	return nil
}

func checkQuestion(q kb.Question) error {
	return fieldError(kb.ValidateQuestion(q))
}

func checkSolution(s kb.Solution) error {
	return fieldError(kb.ValidateSolution(s))
}

// fieldError maps a validation failure onto ErrEmptyField.
func fieldError(err error) error {
	if err == nil {
		return nil
	}
	var verr *kb.ValidationError
	if errors.As(err, &verr) && errors.Is(err, kb.ErrRequired) {
		return fmt.Errorf("%s: %w", verr.Field, ErrEmptyField)
	}
	return err
}

func cloneQuestions(qs []kb.Question) []kb.Question {
	out := make([]kb.Question, len(qs))
	copy(out, qs)
	return out
}

func cloneSolutions(sols []kb.Solution) []kb.Solution {
	out := make([]kb.Solution, len(sols))
	for i, s := range sols {
		out[i] = s.Clone()
	}
	return out
}

func cloneRules(rules []kb.Rule) []kb.Rule {
	out := make([]kb.Rule, len(rules))
	copy(out, rules)
	return out
}
