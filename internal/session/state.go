// Package session runs one diagnosis: every question is asked once, in
// order, and the collected answers are matched against the solutions.
package session

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/abhisek/pcdiag/internal/inference"
	"github.com/abhisek/pcdiag/internal/kb"
)

// Phase represents the current phase of a diagnosis.
type Phase int

const (
	PhaseNotStarted Phase = iota // Created, no question asked yet
	PhaseAsking                  // Waiting for the answer to Questions[Index]
	PhaseResolved                // All questions answered, Result is set
	PhaseCancelled               // A prompt was dismissed under CancelAborts
)

func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not-started"
	case PhaseAsking:
		return "asking"
	case PhaseResolved:
		return "resolved"
	case PhaseCancelled:
		return "cancelled"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// CancelPolicy decides what a dismissed yes/no prompt means.
type CancelPolicy int

const (
	// CancelAborts ends the diagnosis without a result.
	CancelAborts CancelPolicy = iota

	// CancelAsNo records the dismissed question as answered "No".
	CancelAsNo
)

func (c CancelPolicy) String() string {
	if c == CancelAsNo {
		return "no"
	}
	return "abort"
}

// ParseCancelPolicy accepts "abort" (or empty) and "no".
func ParseCancelPolicy(s string) (CancelPolicy, error) {
	switch s {
	case "", "abort":
		return CancelAborts, nil
	case "no":
		return CancelAsNo, nil
	}
	return CancelAborts, fmt.Errorf("unknown cancel policy %q (want \"abort\" or \"no\")", s)
}

// ErrWrongPhase is returned when an operation does not apply to the
// session's current phase.
var ErrWrongPhase = errors.New("operation not valid in current phase")

// Session tracks the runtime state of one diagnosis.
type Session struct {
	// ID identifies the run in logs.
	ID string

	Questions []kb.Question
	Solutions []kb.Solution
	Policy    CancelPolicy

	// Answers is rebuilt from scratch by Start.
	Answers kb.Answers

	// Index is the position of the question being asked.
	Index int

	Phase Phase

	// Result is set once Phase is PhaseResolved.
	Result inference.Result

	// Dismissed counts prompts recorded as "No" under CancelAsNo.
	Dismissed int
}

// New creates a session over copies of questions and solutions.
func New(questions []kb.Question, solutions []kb.Solution, policy CancelPolicy) *Session {
	qs := make([]kb.Question, len(questions))
	copy(qs, questions)
	sols := make([]kb.Solution, len(solutions))
	for i, s := range solutions {
		sols[i] = s.Clone()
	}
	return &Session{
		ID:        uuid.New().String(),
		Questions: qs,
		Solutions: sols,
		Policy:    policy,
		Phase:     PhaseNotStarted,
	}
}

// Start moves to the first question. With no questions the session
// resolves immediately against an empty answer set.
func (s *Session) Start() error {
	if s.Phase != PhaseNotStarted {
		return fmt.Errorf("start: %w (%s)", ErrWrongPhase, s.Phase)
	}
	s.Answers = kb.NewAnswers()
	s.Index = 0
	s.Phase = PhaseAsking
	if len(s.Questions) == 0 {
		s.resolve()
	}
	return nil
}

// Current returns the question awaiting an answer and its position.
func (s *Session) Current() (kb.Question, int, bool) {
	if s.Phase != PhaseAsking {
		return kb.Question{}, -1, false
	}
	return s.Questions[s.Index], s.Index, true
}

// Answer records yes for the current question and advances. The answer to
// the last question resolves the session. A later question with the same
// factor overwrites an earlier answer.
func (s *Session) Answer(yes bool) error {
	if s.Phase != PhaseAsking {
		return fmt.Errorf("answer: %w (%s)", ErrWrongPhase, s.Phase)
	}
	s.Answers[s.Questions[s.Index].Factor] = yes
	s.Index++
	if s.Index == len(s.Questions) {
		s.resolve()
	}
	return nil
}

// Dismiss applies the cancel policy to the current question.
func (s *Session) Dismiss() error {
	if s.Phase != PhaseAsking {
		return fmt.Errorf("dismiss: %w (%s)", ErrWrongPhase, s.Phase)
	}
	if s.Policy == CancelAsNo {
		s.Dismissed++
		return s.Answer(false)
	}
	s.Phase = PhaseCancelled
	return nil
}

// Diagnosis returns the matched description or the no-solution message.
func (s *Session) Diagnosis() (string, error) {
	if s.Phase != PhaseResolved {
		return "", fmt.Errorf("diagnosis: %w (%s)", ErrWrongPhase, s.Phase)
	}
	return s.Result.Text(), nil
}

// Progress returns how many questions were answered out of the total.
func (s *Session) Progress() (answered, total int) {
	return s.Index, len(s.Questions)
}

func (s *Session) resolve() {
	s.Result = inference.Match(s.Answers, s.Solutions)
	s.Phase = PhaseResolved
}
