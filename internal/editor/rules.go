package editor

import (
	"context"
	"errors"
	"fmt"

	"github.com/abhisek/pcdiag/internal/kb"
	"github.com/abhisek/pcdiag/internal/prompt"
)

// User-facing texts for rule building.
const (
	NoFactorsTitle   = "Error"
	NoFactorsMessage = "No hay factores disponibles. Agrega preguntas primero."
	PickFactorPrompt = "Selecciona un factor:"
	FinishOption     = "(terminar)"
)

// ExpectedPrompt is the question asked after a factor is picked.
func ExpectedPrompt(factor string) string {
	return fmt.Sprintf("¿La respuesta esperada para %s es 'Sí'?", factor)
}

// RefreshPrompt is the question asked for each rule when editing a solution.
func RefreshPrompt(factor string) string {
	return fmt.Sprintf("¿La respuesta esperada para %s sigue siendo 'Sí'?", factor)
}

// BuildRules collects rules interactively. Each round picks a factor from
// the current questions and asks for its expected answer. Picking
// FinishOption or dismissing either prompt ends the loop; a half-built rule
// is dropped. With no questions a warning is shown and ErrNoFactors is
// returned with no rules.
func (e *Editor) BuildRules(ctx context.Context, p prompt.Prompter) ([]kb.Rule, error) {
	factors := e.Factors()
	if len(factors) == 0 {
		p.ShowWarning(ctx, NoFactorsTitle, NoFactorsMessage)
		return nil, ErrNoFactors
	}

	options := append(append([]string(nil), factors...), FinishOption)
	rules := []kb.Rule{}
	for {
		i, err := p.PickOne(ctx, PickFactorPrompt, options)
		if errors.Is(err, prompt.ErrCancelled) || (err == nil && i == len(factors)) {
			return rules, nil
		}
		if err != nil {
			return nil, fmt.Errorf("pick factor: %w", err)
		}

		factor := factors[i]
		expected, err := p.AskYesNo(ctx, ExpectedPrompt(factor))
		if errors.Is(err, prompt.ErrCancelled) {
			return rules, nil
		}
		if err != nil {
			return nil, fmt.Errorf("ask expected value: %w", err)
		}
		rules = append(rules, kb.Rule{Factor: factor, Expected: expected})
	}
}

// RefreshRules asks again for the expected value of every rule of the
// solution at index and returns the answers in rule order. Dismissing any
// prompt returns prompt.ErrCancelled.
func (e *Editor) RefreshRules(ctx context.Context, p prompt.Prompter, index int) ([]bool, error) {
	if err := checkIndex(index, len(e.solutions)); err != nil {
		return nil, err
	}
	rules := e.solutions[index].Rules
	expected := make([]bool, 0, len(rules))
	for _, r := range rules {
		v, err := p.AskYesNo(ctx, RefreshPrompt(r.Factor))
		if err != nil {
			return nil, err
		}
		expected = append(expected, v)
	}
	return expected, nil
}
