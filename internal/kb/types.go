// Package kb defines the knowledge base: yes/no questions that name boolean
// factors, and solutions whose rules state the expected value of each factor.
package kb

import "fmt"

// Question is a yes/no prompt shown to the user. Factor names the boolean
// condition the answer sets.
type Question struct {
	Text   string `json:"text" validate:"required"`
	Factor string `json:"factor" validate:"required"`
}

// Rule requires that the answer recorded for Factor equals Expected.
type Rule struct {
	Factor   string `json:"factor" validate:"required"`
	Expected bool   `json:"expected"`
}

// Solution is a diagnosis description plus the rules that must all hold for
// it to be reported. A solution with no rules matches any answer set.
type Solution struct {
	Description string `json:"description" validate:"required"`
	Rules       []Rule `json:"rules" validate:"dive"`
}

// Collection names one of the two persisted sequences.
type Collection string

const (
	CollectionQuestions Collection = "questions"
	CollectionSolutions Collection = "solutions"
)

// ParseCollection converts a user-supplied name into a Collection.
func ParseCollection(s string) (Collection, error) {
	switch Collection(s) {
	case CollectionQuestions, CollectionSolutions:
		return Collection(s), nil
	}
	return "", fmt.Errorf("unknown collection %q (want %q or %q)", s, CollectionQuestions, CollectionSolutions)
}

// Answers maps a factor to the user's yes/no answer.
type Answers map[string]bool

// NewAnswers returns an empty answer set.
func NewAnswers() Answers {
	return make(Answers)
}

// Get returns the recorded answer for factor. A factor that was never
// answered reads as false, exactly like an explicit "No".
func (a Answers) Get(factor string) bool {
	return a[factor]
}

// Has reports whether factor was answered at all.
func (a Answers) Has(factor string) bool {
	_, ok := a[factor]
	return ok
}

// Clone returns a copy of the solution with its own rule slice.
func (s Solution) Clone() Solution {
	rules := make([]Rule, len(s.Rules))
	copy(rules, s.Rules)
	return Solution{Description: s.Description, Rules: rules}
}
