// Package router keeps the navigation history of the menu states.
package router

// Router manages a stack of states. The bottom state is never popped.
type Router[S comparable] struct {
	stack []S
}

// New creates a Router with the given initial state.
func New[S comparable](initial S) *Router[S] {
	return &Router[S]{
		stack: []S{initial},
	}
}

// Push adds s on top of the stack.
func (r *Router[S]) Push(s S) {
	r.stack = append(r.stack, s)
}

// Pop removes the top state and reports whether it did. Popping the last
// state is a no-op that returns false.
func (r *Router[S]) Pop() bool {
	if len(r.stack) <= 1 {
		return false
	}
	r.stack = r.stack[:len(r.stack)-1]
	return true
}

// Active returns the top state.
func (r *Router[S]) Active() S {
	return r.stack[len(r.stack)-1]
}

// Depth returns the number of states on the stack.
func (r *Router[S]) Depth() int {
	return len(r.stack)
}

// History returns the stack from bottom to top.
func (r *Router[S]) History() []S {
	return append([]S(nil), r.stack...)
}
