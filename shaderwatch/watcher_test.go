package shaderwatch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherReportsWatchedFiles(t *testing.T) {
	dir := t.TempDir()
	vert := filepath.Join(dir, "a.vert")
	other := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(vert, []byte("void main() {}"), 0o644))

	w, err := New([]string{vert})
	require.NoError(t, err)
	defer w.Close()

	assert.Empty(t, w.Changed())

	require.NoError(t, os.WriteFile(other, []byte("ignored"), 0o644))
	require.NoError(t, os.WriteFile(vert, []byte("void main() { }"), 0o644))

	abs, err := filepath.Abs(vert)
	require.NoError(t, err)

	var got []string
	require.Eventually(t, func() bool {
		got = append(got, w.Changed()...)
		return len(got) > 0
	}, 5*time.Second, 10*time.Millisecond)

	for _, name := range got {
		assert.Equal(t, abs, name)
	}
}

func TestWatcherChangedDrains(t *testing.T) {
	dir := t.TempDir()
	frag := filepath.Join(dir, "a.frag")
	require.NoError(t, os.WriteFile(frag, nil, 0o644))

	w, err := New([]string{frag})
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(frag, []byte("x"), 0o644))
	require.Eventually(t, func() bool { return len(w.Changed()) == 1 }, 5*time.Second, 10*time.Millisecond)

	// A single write may surface as several events; let them settle, drain,
	// and expect nothing further.
	time.Sleep(100 * time.Millisecond)
	w.Changed()
	assert.Empty(t, w.Changed())
}

func TestNewErrors(t *testing.T) {
	_, err := New(nil)
	assert.Error(t, err)

	_, err = New([]string{filepath.Join(t.TempDir(), "missing", "x.vert")})
	assert.Error(t, err)
}

func TestCloseStopsLoop(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.vert")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	w, err := New([]string{path})
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		assert.NoError(t, w.Close())
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Close did not return")
	}
}
