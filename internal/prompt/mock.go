package prompt

import (
	"context"
	"fmt"
	"sync"
)

// Kind identifies a prompter call.
type Kind string

const (
	KindYesNo   Kind = "yes-no"
	KindText    Kind = "text"
	KindPick    Kind = "pick"
	KindInfo    Kind = "info"
	KindWarning Kind = "warning"
)

// Reply is a canned answer for the Mock prompter.
type Reply struct {
	Kind  Kind
	YesNo bool
	Text  string
	Pick  int
	Err   error
}

// Yes, No, Text, Pick and Cancel build replies for Mock scripts.
func Yes() Reply                   { return Reply{Kind: KindYesNo, YesNo: true} }
func No() Reply                    { return Reply{Kind: KindYesNo, YesNo: false} }
func Text(s string) Reply          { return Reply{Kind: KindText, Text: s} }
func Pick(i int) Reply             { return Reply{Kind: KindPick, Pick: i} }
func Cancel(k Kind) Reply          { return Reply{Kind: k, Err: ErrCancelled} }
func Fail(k Kind, err error) Reply { return Reply{Kind: k, Err: err} }

// Call records one prompter invocation.
type Call struct {
	Kind    Kind
	Prompt  string
	Initial string
	Options []string
	Title   string
}

// Mock is a deterministic Prompter for testing.
// It returns canned replies in FIFO order and records all calls. When the
// script runs out every prompt is dismissed.
type Mock struct {
	mu      sync.Mutex
	replies []Reply
	Calls   []Call
}

var _ Prompter = (*Mock)(nil)

// NewMock creates a Mock with the given script.
func NewMock(replies ...Reply) *Mock {
	return &Mock{replies: replies}
}

func (m *Mock) AskYesNo(_ context.Context, prompt string) (bool, error) {
	r, err := m.next(Call{Kind: KindYesNo, Prompt: prompt})
	if err != nil {
		return false, err
	}
	return r.YesNo, nil
}

func (m *Mock) AskText(_ context.Context, prompt, initial string) (string, error) {
	r, err := m.next(Call{Kind: KindText, Prompt: prompt, Initial: initial})
	if err != nil {
		return "", err
	}
	return r.Text, nil
}

func (m *Mock) PickOne(_ context.Context, prompt string, options []string) (int, error) {
	opts := append([]string(nil), options...)
	r, err := m.next(Call{Kind: KindPick, Prompt: prompt, Options: opts})
	if err != nil {
		return -1, err
	}
	if r.Pick < 0 || r.Pick >= len(options) {
		return -1, fmt.Errorf("mock: pick %d out of range for %d options", r.Pick, len(options))
	}
	return r.Pick, nil
}

func (m *Mock) ShowInfo(_ context.Context, title, message string) {
	m.record(Call{Kind: KindInfo, Title: title, Prompt: message})
}

func (m *Mock) ShowWarning(_ context.Context, title, message string) {
	m.record(Call{Kind: KindWarning, Title: title, Prompt: message})
}

// AddReply appends a reply to the script.
func (m *Mock) AddReply(r Reply) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.replies = append(m.replies, r)
}

// Remaining returns the number of unused replies.
func (m *Mock) Remaining() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.replies)
}

// CallsOf returns the recorded calls of kind k, in order.
func (m *Mock) CallsOf(k Kind) []Call {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []Call
	for _, c := range m.Calls {
		if c.Kind == k {
			out = append(out, c)
		}
	}
	return out
}

// Messages returns the message text of every notification of kind k.
func (m *Mock) Messages(k Kind) []string {
	var out []string
	for _, c := range m.CallsOf(k) {
		out = append(out, c.Prompt)
	}
	return out
}

func (m *Mock) record(c Call) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, c)
}

func (m *Mock) next(c Call) (Reply, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, c)
	if len(m.replies) == 0 {
		return Reply{}, ErrCancelled
	}

	r := m.replies[0]
	m.replies = m.replies[1:]

	if r.Kind != c.Kind {
		return Reply{}, fmt.Errorf("mock: got %s prompt %q, script expected %s", c.Kind, c.Prompt, r.Kind)
	}
	if r.Err != nil {
		return Reply{}, r.Err
	}
	return r, nil
}
