package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/pcdiag/internal/kb"
)

type backendFactory func(t *testing.T, dir string) Backend

func backends() map[string]backendFactory {
	return map[string]backendFactory{
		BackendFile: func(t *testing.T, dir string) Backend {
			b, err := NewFileBackend(dir)
			require.NoError(t, err)
			return b
		},
		BackendSQLite: func(t *testing.T, dir string) Backend {
			b, err := OpenSQLite(filepath.Join(dir, "test.db"))
			require.NoError(t, err)
			return b
		},
	}
}

func openTestStore(t *testing.T, factory backendFactory, dir string) *Store {
	t.Helper()
	s := New(factory(t, dir), nil)
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleQuestions() []kb.Question {
	return []kb.Question{
		{Text: "¿La computadora no enciende?", Factor: "power"},
		{Text: "¿La pantalla se queda en negro?", Factor: "screen"},
		{Text: "¿Se escuchan pitidos al arrancar?", Factor: "beeps"},
	}
}

func sampleSolutions() []kb.Solution {
	return []kb.Solution{
		{
			Description: "Revisa el cable de poder",
			Rules:       []kb.Rule{{Factor: "power", Expected: true}},
		},
		{
			Description: "Revisa la memoria RAM",
			Rules: []kb.Rule{
				{Factor: "power", Expected: false},
				{Factor: "beeps", Expected: true},
			},
		},
		{Description: "Sin reglas", Rules: []kb.Rule{}},
	}
}

func TestLoad_MissingIsEmpty(t *testing.T) {
	for name, factory := range backends() {
		t.Run(name, func(t *testing.T) {
			s := openTestStore(t, factory, t.TempDir())
			ctx := context.Background()

			qs, err := s.LoadQuestions(ctx)
			require.NoError(t, err)
			assert.NotNil(t, qs)
			assert.Empty(t, qs)

			sols, err := s.LoadSolutions(ctx)
			require.NoError(t, err)
			assert.NotNil(t, sols)
			assert.Empty(t, sols)
		})
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	for name, factory := range backends() {
		t.Run(name, func(t *testing.T) {
			s := openTestStore(t, factory, t.TempDir())
			ctx := context.Background()

			require.NoError(t, s.SaveQuestions(ctx, sampleQuestions()))
			require.NoError(t, s.SaveSolutions(ctx, sampleSolutions()))

			qs, err := s.LoadQuestions(ctx)
			require.NoError(t, err)
			assert.Equal(t, sampleQuestions(), qs)

			sols, err := s.LoadSolutions(ctx)
			require.NoError(t, err)
			assert.Equal(t, sampleSolutions(), sols)
		})
	}
}

func TestLoad_Idempotent(t *testing.T) {
	for name, factory := range backends() {
		t.Run(name, func(t *testing.T) {
			s := openTestStore(t, factory, t.TempDir())
			ctx := context.Background()
			require.NoError(t, s.SaveSolutions(ctx, sampleSolutions()))

			first, err := s.LoadSolutions(ctx)
			require.NoError(t, err)
			second, err := s.LoadSolutions(ctx)
			require.NoError(t, err)
			assert.Equal(t, first, second)
		})
	}
}

func TestSave_Overwrites(t *testing.T) {
	for name, factory := range backends() {
		t.Run(name, func(t *testing.T) {
			s := openTestStore(t, factory, t.TempDir())
			ctx := context.Background()

			require.NoError(t, s.SaveQuestions(ctx, sampleQuestions()))
			shorter := sampleQuestions()[:1]
			require.NoError(t, s.SaveQuestions(ctx, shorter))

			qs, err := s.LoadQuestions(ctx)
			require.NoError(t, err)
			assert.Equal(t, shorter, qs)

			require.NoError(t, s.SaveQuestions(ctx, nil))
			qs, err = s.LoadQuestions(ctx)
			require.NoError(t, err)
			assert.Empty(t, qs)
		})
	}
}

func TestSave_CollectionsIndependent(t *testing.T) {
	for name, factory := range backends() {
		t.Run(name, func(t *testing.T) {
			s := openTestStore(t, factory, t.TempDir())
			ctx := context.Background()

			require.NoError(t, s.SaveQuestions(ctx, sampleQuestions()))
			sols, err := s.LoadSolutions(ctx)
			require.NoError(t, err)
			assert.Empty(t, sols)
		})
	}
}

func TestLoad_PersistsAcrossReopen(t *testing.T) {
	for name, factory := range backends() {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			ctx := context.Background()

			s := New(factory(t, dir), nil)
			require.NoError(t, s.SaveQuestions(ctx, sampleQuestions()))
			require.NoError(t, s.Close())

			s2 := openTestStore(t, factory, dir)
			qs, err := s2.LoadQuestions(ctx)
			require.NoError(t, err)
			assert.Equal(t, sampleQuestions(), qs)
		})
	}
}

func TestLoad_Malformed(t *testing.T) {
	tests := []struct {
		name       string
		collection kb.Collection
		body       string
	}{
		{"not json", kb.CollectionQuestions, `{"text": `},
		{"empty document", kb.CollectionQuestions, ``},
		{"object instead of array", kb.CollectionQuestions, `{"text": "a", "factor": "b"}`},
		{"missing factor", kb.CollectionQuestions, `[{"text": "a"}]`},
		{"expected not boolean", kb.CollectionSolutions, `[{"description": "d", "rules": [{"factor": "f", "expected": "yes"}]}]`},
		{"missing rules", kb.CollectionSolutions, `[{"description": "d"}]`},
	}

	for backendName, factory := range backends() {
		for _, tt := range tests {
			t.Run(backendName+"/"+tt.name, func(t *testing.T) {
				b := factory(t, t.TempDir())
				ctx := context.Background()
				require.NoError(t, b.Write(ctx, string(tt.collection), []byte(tt.body)))

				s := New(b, nil)
				t.Cleanup(func() { s.Close() })

				var err error
				if tt.collection == kb.CollectionQuestions {
					_, err = s.LoadQuestions(ctx)
				} else {
					_, err = s.LoadSolutions(ctx)
				}
				var merr *MalformedError
				require.True(t, errors.As(err, &merr), "want MalformedError, got %v", err)
				assert.Equal(t, tt.collection, merr.Collection)
			})
		}
	}
}

func TestFileBackend_ReadErrorPropagates(t *testing.T) {
	dir := t.TempDir()
	b, err := NewFileBackend(dir)
	require.NoError(t, err)

	// A directory where the file should be is an I/O error, not "missing".
	require.NoError(t, os.Mkdir(b.Path("questions"), 0o755))

	s := New(b, nil)
	_, err = s.LoadQuestions(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
	var merr *MalformedError
	assert.False(t, errors.As(err, &merr))
}

func TestFileBackend_FileLayout(t *testing.T) {
	dir := t.TempDir()
	s := openTestStore(t, backends()[BackendFile], dir)
	require.NoError(t, s.SaveQuestions(context.Background(), sampleQuestions()[:1]))

	data, err := os.ReadFile(filepath.Join(dir, "questions_db.json"))
	require.NoError(t, err)
	want := "[\n    {\n        \"text\": \"¿La computadora no enciende?\",\n        \"factor\": \"power\"\n    }\n]"
	assert.Equal(t, want, string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestFileBackend_WriteReplacesInPlace(t *testing.T) {
	dir := t.TempDir()
	b, err := NewFileBackend(dir)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, b.Write(ctx, "questions", []byte(`[{"text":"a","factor":"b"}]`)))
	require.NoError(t, b.Write(ctx, "questions", []byte(`[]`)))

	data, err := b.Read(ctx, "questions")
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))

	info, err := os.Stat(b.Path("questions"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm()&0o600, "owner can read and write")
	assert.Zero(t, info.Mode().Perm()&0o022, "not writable by group or others")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestFileBackend_CreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	s := openTestStore(t, backends()[BackendFile], dir)
	require.NoError(t, s.SaveSolutions(context.Background(), sampleSolutions()))

	_, err := os.Stat(filepath.Join(dir, "solutions_db.json"))
	require.NoError(t, err)
}

func TestOpen_SelectsBackend(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(Options{Backend: BackendSQLite, DataDir: dir})
	require.NoError(t, err)
	require.NoError(t, s.SaveQuestions(context.Background(), sampleQuestions()))
	require.NoError(t, s.Close())
	_, err = os.Stat(filepath.Join(dir, DefaultSQLiteFile))
	require.NoError(t, err)

	s, err = Open(Options{DataDir: dir})
	require.NoError(t, err)
	defer s.Close()
	qs, err := s.LoadQuestions(context.Background())
	require.NoError(t, err)
	assert.Empty(t, qs, "file backend must not see sqlite data")

	_, err = Open(Options{Backend: "postgres", DataDir: dir})
	require.Error(t, err)
}

func TestSQLitePragmasApplied(t *testing.T) {
	b, err := OpenSQLite(filepath.Join(t.TempDir(), "pragma.db"))
	require.NoError(t, err)
	defer b.Close()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"synchronous", "1"}, // NORMAL = 1
	}
	for _, tt := range tests {
		var got string
		require.NoError(t, b.DB().QueryRow("PRAGMA "+tt.pragma).Scan(&got))
		assert.Equal(t, tt.want, got, "PRAGMA %s", tt.pragma)
	}
}

func TestDefaultDataDir_XDG(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_DATA_HOME", base)

	dir, err := DefaultDataDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "pcdiag"), dir)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
