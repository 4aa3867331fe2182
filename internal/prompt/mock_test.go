package prompt

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMock_ScriptInOrder(t *testing.T) {
	m := NewMock(Yes(), Text("power"), Pick(1), No())
	ctx := context.Background()

	yes, err := m.AskYesNo(ctx, "a")
	require.NoError(t, err)
	assert.True(t, yes)

	s, err := m.AskText(ctx, "b", "init")
	require.NoError(t, err)
	assert.Equal(t, "power", s)

	i, err := m.PickOne(ctx, "c", []string{"x", "y"})
	require.NoError(t, err)
	assert.Equal(t, 1, i)

	yes, err = m.AskYesNo(ctx, "d")
	require.NoError(t, err)
	assert.False(t, yes)

	assert.Equal(t, 0, m.Remaining())
	require.Len(t, m.Calls, 4)
	assert.Equal(t, "init", m.Calls[1].Initial)
	assert.Equal(t, []string{"x", "y"}, m.Calls[2].Options)
}

func TestMock_ExhaustedScriptCancels(t *testing.T) {
	m := NewMock()
	_, err := m.AskYesNo(context.Background(), "q")
	assert.ErrorIs(t, err, ErrCancelled)
}

func TestMock_KindMismatch(t *testing.T) {
	m := NewMock(Text("x"))
	_, err := m.AskYesNo(context.Background(), "q")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrCancelled))
}

func TestMock_PickOutOfRange(t *testing.T) {
	m := NewMock(Pick(3))
	_, err := m.PickOne(context.Background(), "q", []string{"a"})
	require.Error(t, err)
}

func TestMock_CancelAndNotifications(t *testing.T) {
	m := NewMock(Cancel(KindText))
	ctx := context.Background()

	_, err := m.AskText(ctx, "q", "")
	assert.ErrorIs(t, err, ErrCancelled)

	m.ShowInfo(ctx, "Éxito", "Pregunta agregada correctamente.")
	m.ShowWarning(ctx, "Error", "No hay factores disponibles.")
	assert.Equal(t, []string{"Pregunta agregada correctamente."}, m.Messages(KindInfo))
	assert.Equal(t, []string{"No hay factores disponibles."}, m.Messages(KindWarning))
	assert.Equal(t, "Éxito", m.CallsOf(KindInfo)[0].Title)
}
