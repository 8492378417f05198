package sqlitestore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemory(t *testing.T) {
	s, err := Open(":memory:")
	require.NoError(t, err)
	defer func() { _ = s.Close() }()
	ctx := t.Context()

	require.NoError(t, s.Set(ctx, "tasks", "[]"))
	require.NoError(t, s.Set(ctx, "tasks", `[{"id":2}]`))
	v, ok, err := s.Get(ctx, "tasks")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":2}]`, v)
}

func TestReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "dash.db")
	ctx := t.Context()

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "pomodoroSessions", "4"))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer func() { _ = s.Close() }()
	v, ok, err := s.Get(ctx, "pomodoroSessions")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "4", v)
}
