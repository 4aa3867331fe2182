package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/abhisek/pcdiag/internal/kb"
)

// ErrNotFound is returned by Backend.Read when nothing was ever written
// under the requested name. It is the only read failure that Store maps to
// an empty collection.
var ErrNotFound = errors.New("no stored data")

// Backend stores whole documents by name.
type Backend interface {
	// Read returns the last document written under name, or ErrNotFound.
	Read(ctx context.Context, name string) ([]byte, error)

	// Write replaces the document stored under name. A failed Write must
	// leave the previous document readable.
	Write(ctx context.Context, name string, data []byte) error

	Close() error
}

// MalformedError reports stored data that could not be parsed or does not
// have the expected shape.
type MalformedError struct {
	Collection kb.Collection
	Err        error
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("malformed %s data: %v", e.Collection, e.Err)
}

func (e *MalformedError) Unwrap() error { return e.Err }
