package router

import "testing"

func TestPush(t *testing.T) {
	r := New("home")
	r.Push("manage")

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active() != "manage" {
		t.Errorf("expected active 'manage', got %q", r.Active())
	}
}

func TestPop(t *testing.T) {
	r := New("home")
	r.Push("manage")

	if !r.Pop() {
		t.Fatal("expected Pop to report true")
	}
	if r.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.Depth())
	}
	if r.Active() != "home" {
		t.Errorf("expected active 'home', got %q", r.Active())
	}
}

func TestPopNoopAtBottom(t *testing.T) {
	r := New("home")

	if r.Pop() {
		t.Error("expected Pop at bottom to report false")
	}
	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after pop at bottom, got %d", r.Depth())
	}
	if r.Active() != "home" {
		t.Errorf("expected active 'home', got %q", r.Active())
	}
}

func TestMultiplePushPop(t *testing.T) {
	r := New(0)
	r.Push(1)
	r.Push(2)

	if r.Depth() != 3 {
		t.Errorf("expected depth 3, got %d", r.Depth())
	}

	r.Pop()
	if r.Active() != 1 {
		t.Errorf("expected active 1, got %d", r.Active())
	}

	r.Pop()
	if r.Active() != 0 {
		t.Errorf("expected active 0, got %d", r.Active())
	}
}

func TestHistoryIsACopy(t *testing.T) {
	r := New("home")
	r.Push("manage")

	h := r.History()
	h[0] = "changed"

	if got := r.History(); got[0] != "home" || got[1] != "manage" {
		t.Errorf("unexpected history %v", got)
	}
}
