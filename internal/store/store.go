// Package store persists the two ordered knowledge-base collections.
//
// Each collection is stored as a single indented JSON array. The Backend
// decides where the document lives (a file per collection, or a row in a
// SQLite table); the Store decodes, validates and encodes it.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/abhisek/pcdiag/internal/kb"
)

// Backend names accepted by Open.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// DefaultSQLiteFile is the database file name used inside the data directory.
const DefaultSQLiteFile = "pcdiag.db"

// Options configures Open.
type Options struct {
	// Backend selects BackendFile (default) or BackendSQLite.
	Backend string

	// DataDir holds the collection files or the SQLite database.
	DataDir string

	// SQLiteFile overrides the database file name (relative to DataDir
	// unless absolute).
	SQLiteFile string

	Logger *zap.Logger
}

// Store reads and writes questions and solutions through a Backend.
type Store struct {
	backend Backend
	log     *zap.Logger
}

// New wraps an already opened backend.
func New(b Backend, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{backend: b, log: log}
}

// Open creates the backend selected by opts and returns a Store over it.
func Open(opts Options) (*Store, error) {
	if opts.DataDir == "" {
		dir, err := DefaultDataDir()
		if err != nil {
			return nil, err
		}
		opts.DataDir = dir
	}

	var (
		b   Backend
		err error
	)
	switch opts.Backend {
	case "", BackendFile:
		b, err = NewFileBackend(opts.DataDir)
	case BackendSQLite:
		name := opts.SQLiteFile
		if name == "" {
			name = DefaultSQLiteFile
		}
		if !filepath.IsAbs(name) {
			name = filepath.Join(opts.DataDir, name)
		}
		if err := ensureDir(name); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
		b, err = OpenSQLite(name)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", opts.Backend)
	}
	if err != nil {
		return nil, err
	}
	return New(b, opts.Logger), nil
}

// Close releases the backend.
func (s *Store) Close() error {
	return s.backend.Close()
}

// LoadQuestions returns the stored questions in order. Missing data yields
// an empty slice.
func (s *Store) LoadQuestions(ctx context.Context) ([]kb.Question, error) {
	return load[kb.Question](ctx, s, kb.CollectionQuestions)
}

// SaveQuestions replaces every stored question with qs.
func (s *Store) SaveQuestions(ctx context.Context, qs []kb.Question) error {
	return save(ctx, s, kb.CollectionQuestions, qs)
}

// LoadSolutions returns the stored solutions in order. Missing data yields
// an empty slice.
func (s *Store) LoadSolutions(ctx context.Context) ([]kb.Solution, error) {
	sols, err := load[kb.Solution](ctx, s, kb.CollectionSolutions)
	if err != nil {
		return nil, err
	}
	for i := range sols {
		if sols[i].Rules == nil {
			sols[i].Rules = []kb.Rule{}
		}
	}
	return sols, nil
}

// SaveSolutions replaces every stored solution with sols.
func (s *Store) SaveSolutions(ctx context.Context, sols []kb.Solution) error {
	return save(ctx, s, kb.CollectionSolutions, sols)
}

func load[T any](ctx context.Context, s *Store, c kb.Collection) ([]T, error) {
	data, err := s.backend.Read(ctx, string(c))
	if errors.Is(err, ErrNotFound) {
		s.log.Info("no stored data, starting empty", zap.String("collection", string(c)))
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", c, err)
	}

	if err := validateDocument(c, data); err != nil {
		return nil, &MalformedError{Collection: c, Err: err}
	}

	var entries []T
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, &MalformedError{Collection: c, Err: err}
	}
	if entries == nil {
		entries = []T{}
	}

	s.log.Debug("loaded collection",
		zap.String("collection", string(c)),
		zap.Int("entries", len(entries)))
	return entries, nil
}

func save[T any](ctx context.Context, s *Store, c kb.Collection, entries []T) error {
	if entries == nil {
		entries = []T{}
	}
	data, err := json.MarshalIndent(entries, "", "    ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", c, err)
	}
	if err := validateDocument(c, data); err != nil {
		return fmt.Errorf("encode %s: %w", c, err)
	}
	if err := s.backend.Write(ctx, string(c), data); err != nil {
		return fmt.Errorf("write %s: %w", c, err)
	}

	s.log.Debug("saved collection",
		zap.String("collection", string(c)),
		zap.Int("entries", len(entries)))
	return nil
}

// DefaultDataDir resolves the data directory in priority order:
// 1. $XDG_DATA_HOME/pcdiag
// 2. ~/.local/share/pcdiag
// The directory is created if it doesn't exist.
func DefaultDataDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	dir := filepath.Join(dataHome, "pcdiag")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create data dir: %w", err)
	}
	return dir, nil
}

// ensureDir creates the parent directory of path if it doesn't exist.
func ensureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
