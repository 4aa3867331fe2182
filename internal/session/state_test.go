package session

import (
	"errors"
	"testing"

	"github.com/abhisek/pcdiag/internal/inference"
	"github.com/abhisek/pcdiag/internal/kb"
)

func testQuestions() []kb.Question {
	return []kb.Question{
		{Text: "¿La computadora no enciende?", Factor: "power"},
		{Text: "¿Se escuchan pitidos?", Factor: "beeps"},
		{Text: "¿La pantalla está negra?", Factor: "screen"},
	}
}

func testSolutions() []kb.Solution {
	return []kb.Solution{
		{Description: "Revisa el cable de poder", Rules: []kb.Rule{{Factor: "power", Expected: true}}},
		{Description: "Revisa la memoria RAM", Rules: []kb.Rule{{Factor: "beeps", Expected: true}}},
	}
}

func TestSession_WalksEveryQuestionInOrder(t *testing.T) {
	s := New(testQuestions(), testSolutions(), CancelAborts)
	if s.Phase != PhaseNotStarted {
		t.Fatalf("Phase = %s, want not-started", s.Phase)
	}
	if err := s.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}

	for want := 0; want < 3; want++ {
		q, i, ok := s.Current()
		if !ok || i != want {
			t.Fatalf("Current() = %d,%v want %d,true", i, ok, want)
		}
		if q.Factor != testQuestions()[want].Factor {
			t.Errorf("question %d factor = %q", i, q.Factor)
		}
		// Answering Yes to the first question does not end the run early.
		if err := s.Answer(want == 0); err != nil {
			t.Fatalf("answer %d: %v", want, err)
		}
	}

	if s.Phase != PhaseResolved {
		t.Fatalf("Phase = %s, want resolved", s.Phase)
	}
	if len(s.Answers) != 3 {
		t.Errorf("len(Answers) = %d, want 3", len(s.Answers))
	}
	got, err := s.Diagnosis()
	if err != nil {
		t.Fatalf("diagnosis: %v", err)
	}
	if got != "Revisa el cable de poder" {
		t.Errorf("Diagnosis() = %q", got)
	}
}

func TestSession_NoQuestionsResolvesImmediately(t *testing.T) {
	sols := []kb.Solution{{Description: "Reinicia", Rules: []kb.Rule{{Factor: "power", Expected: false}}}}
	s := New(nil, sols, CancelAborts)
	if err := s.Start(); err != nil {
		t.Fatal(err)
	}
	if s.Phase != PhaseResolved {
		t.Fatalf("Phase = %s, want resolved", s.Phase)
	}
	if got, _ := s.Diagnosis(); got != "Reinicia" {
		t.Errorf("Diagnosis() = %q, want match on missing factor", got)
	}
}

func TestSession_DismissAborts(t *testing.T) {
	s := New(testQuestions(), testSolutions(), CancelAborts)
	_ = s.Start()
	_ = s.Answer(false)
	if err := s.Dismiss(); err != nil {
		t.Fatal(err)
	}
	if s.Phase != PhaseCancelled {
		t.Fatalf("Phase = %s, want cancelled", s.Phase)
	}
	if _, err := s.Diagnosis(); !errors.Is(err, ErrWrongPhase) {
		t.Errorf("Diagnosis() err = %v, want ErrWrongPhase", err)
	}
	if answered, total := s.Progress(); answered != 1 || total != 3 {
		t.Errorf("Progress() = %d/%d, want 1/3", answered, total)
	}
}

func TestSession_DismissAsNo(t *testing.T) {
	s := New(testQuestions(), testSolutions(), CancelAsNo)
	_ = s.Start()
	_ = s.Dismiss()
	_ = s.Answer(true)
	_ = s.Dismiss()

	if s.Phase != PhaseResolved {
		t.Fatalf("Phase = %s, want resolved", s.Phase)
	}
	if s.Dismissed != 2 {
		t.Errorf("Dismissed = %d, want 2", s.Dismissed)
	}
	if !s.Answers.Has("power") || s.Answers.Get("power") {
		t.Error("dismissed question must be recorded as an explicit false")
	}
	if got, _ := s.Diagnosis(); got != "Revisa la memoria RAM" {
		t.Errorf("Diagnosis() = %q", got)
	}
}

func TestSession_WrongPhase(t *testing.T) {
	s := New(testQuestions(), testSolutions(), CancelAborts)
	if err := s.Answer(true); !errors.Is(err, ErrWrongPhase) {
		t.Errorf("Answer before Start: err = %v", err)
	}
	if err := s.Dismiss(); !errors.Is(err, ErrWrongPhase) {
		t.Errorf("Dismiss before Start: err = %v", err)
	}
	if _, _, ok := s.Current(); ok {
		t.Error("Current before Start must report false")
	}
	_ = s.Start()
	if err := s.Start(); !errors.Is(err, ErrWrongPhase) {
		t.Errorf("second Start: err = %v", err)
	}
}

func TestSession_DuplicateFactorLastAnswerWins(t *testing.T) {
	qs := []kb.Question{
		{Text: "a", Factor: "power"},
		{Text: "b", Factor: "power"},
	}
	s := New(qs, nil, CancelAborts)
	_ = s.Start()
	_ = s.Answer(true)
	_ = s.Answer(false)
	if s.Answers.Get("power") {
		t.Error("later answer must overwrite earlier one for a shared factor")
	}
	if got, _ := s.Diagnosis(); got != inference.NoSolutionMessage {
		t.Errorf("Diagnosis() = %q, want sentinel", got)
	}
}

func TestSession_CopiesInputs(t *testing.T) {
	qs := testQuestions()
	sols := testSolutions()
	s := New(qs, sols, CancelAborts)
	qs[0].Factor = "changed"
	sols[0].Rules[0].Factor = "changed"
	if s.Questions[0].Factor != "power" || s.Solutions[0].Rules[0].Factor != "power" {
		t.Error("session must not alias caller slices")
	}
}

func TestParseCancelPolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    CancelPolicy
		wantErr bool
	}{
		{"", CancelAborts, false},
		{"abort", CancelAborts, false},
		{"no", CancelAsNo, false},
		{"maybe", CancelAborts, true},
	}
	for _, tt := range tests {
		got, err := ParseCancelPolicy(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseCancelPolicy(%q) err = %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseCancelPolicy(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}
