package snapshot

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homemanager/homemanager/internal/model"
	"github.com/homemanager/homemanager/internal/store"
)

type seqGen struct {
	n int
	t time.Time
}

func (g *seqGen) NewID() string { g.n++; return fmt.Sprintf("s-%d", g.n) }
func (g *seqGen) Now() time.Time {
	g.t = g.t.Add(time.Second)
	return g.t
}

func newStore() *store.Store {
	return store.New(&seqGen{t: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)})
}

func seedStore(st *store.Store) {
	st.Todos().Create(model.Todo{Title: "pack bags", Priority: model.PriorityHigh})
	st.Books().Create(model.Book{Title: "Dune", Author: "Herbert", Status: model.BookReading, TotalPages: 412})
	st.Expenses().Create(model.Expense{Amount: 4550, Category: "Food", Description: "groceries"})
	st.Ideas().Create(model.Idea{Title: "trip", Pinned: true})
}

func TestCaptureRestoreRoundTrip(t *testing.T) {
	src := newStore()
	seedStore(src)
	at := time.Date(2025, 3, 20, 18, 0, 0, 0, time.UTC)

	snap := Capture(src, at)
	assert.Equal(t, at, snap.ExportedAt)

	dst := newStore()
	Restore(dst, snap)
	assert.Equal(t, src.Todos().Snapshot(), dst.Todos().Snapshot())
	assert.Equal(t, src.Books().Snapshot(), dst.Books().Snapshot())
	assert.Equal(t, src.Expenses().Snapshot(), dst.Expenses().Snapshot())
	assert.Equal(t, src.Ideas().Snapshot(), dst.Ideas().Snapshot())
}

func TestWriteReadRoundTrip(t *testing.T) {
	src := newStore()
	seedStore(src)
	path := filepath.Join(t.TempDir(), "data.json")
	at := time.Date(2025, 3, 20, 18, 0, 0, 0, time.UTC)

	require.NoError(t, Write(path, Capture(src, at)))

	snap, err := Read(path)
	require.NoError(t, err)
	assert.True(t, snap.ExportedAt.Equal(at))
	require.Len(t, snap.Todos, 1)
	assert.Equal(t, "pack bags", snap.Todos[0].Title)
	require.Len(t, snap.Expenses, 1)
	assert.Equal(t, model.Cents(4550), snap.Expenses[0].Amount)
}

func TestWriteCreatesMissingDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deep", "data.json")
	require.NoError(t, Write(path, Snapshot{}))
	_, err := os.Stat(path)
	require.NoError(t, err)
}

func TestWriteReplacesExistingFileAtomically(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.json")
	require.NoError(t, Write(path, Snapshot{Todos: []model.Todo{{ID: "old"}}}))
	require.NoError(t, Write(path, Snapshot{Todos: []model.Todo{{ID: "new"}}}))

	snap, err := Read(path)
	require.NoError(t, err)
	require.Len(t, snap.Todos, 1)
	assert.Equal(t, "new", snap.Todos[0].ID)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestReadMissingFileIsNotFound(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "absent.json"))
	assert.True(t, errors.Is(err, model.ErrNotFound), "got %v", err)
}

func TestReadRejectsCorruptJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))
	_, err := Read(path)
	assert.Error(t, err)
	assert.False(t, errors.Is(err, model.ErrNotFound))
}
