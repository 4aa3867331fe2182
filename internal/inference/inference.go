// Package inference maps a set of yes/no answers to a stored solution.
//
// Matching is a single forward pass: solutions are evaluated in storage
// order and the first one whose rules all hold wins. There is no scoring,
// no partial matching and no rule chaining.
package inference

import "github.com/abhisek/pcdiag/internal/kb"

// NoSolutionMessage is returned by Infer when no solution matches.
// Not finding a diagnosis is a normal outcome, not an error.
const NoSolutionMessage = "No se pudo determinar una solución con las respuestas proporcionadas."

// Result is the outcome of matching an answer set against the solutions.
type Result struct {
	// Index is the position of the matching solution, or -1.
	Index int

	// Solution is the matching solution, nil when nothing matched.
	Solution *kb.Solution
}

// Found reports whether a solution matched.
func (r Result) Found() bool {
	return r.Solution != nil
}

// Text returns the matched description or NoSolutionMessage.
func (r Result) Text() string {
	if r.Solution == nil {
		return NoSolutionMessage
	}
	return r.Solution.Description
}

// Satisfies reports whether every rule of s holds for answers.
// Unanswered factors read as false.
func Satisfies(answers kb.Answers, s kb.Solution) bool {
	for _, r := range s.Rules {
		if answers.Get(r.Factor) != r.Expected {
			return false
		}
	}
	return true
}

// Match returns the first solution, in order, satisfied by answers.
func Match(answers kb.Answers, solutions []kb.Solution) Result {
	for i := range solutions {
		if Satisfies(answers, solutions[i]) {
			s := solutions[i].Clone()
			return Result{Index: i, Solution: &s}
		}
	}
	return Result{Index: -1}
}

// Infer returns the description of the first matching solution, or
// NoSolutionMessage when none matches.
func Infer(answers kb.Answers, solutions []kb.Solution) string {
	return Match(answers, solutions).Text()
}
