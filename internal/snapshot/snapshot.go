// Package snapshot captures and restores the record collections as a single
// JSON document. It backs both the CLI's between-invocation persistence and
// the explicit data export.
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/homemanager/homemanager/internal/model"
	"github.com/homemanager/homemanager/internal/store"
)

// Snapshot is the serialized form of every collection at one point in time.
type Snapshot struct {
	ExportedAt time.Time        `json:"exportedAt"`
	Todos      []model.Todo     `json:"todos"`
	Activities []model.Activity `json:"activities"`
	Goals      []model.Goal     `json:"goals"`
	Books      []model.Book     `json:"books"`
	Expenses   []model.Expense  `json:"expenses"`
	Budgets    []model.Budget   `json:"budgets"`
	Ideas      []model.Idea     `json:"ideas"`
}

// Capture reads every collection's current snapshot.
func Capture(st *store.Store, at time.Time) Snapshot {
	return Snapshot{
		ExportedAt: at,
		Todos:      st.Todos().Snapshot(),
		Activities: st.Activities().Snapshot(),
		Goals:      st.Goals().Snapshot(),
		Books:      st.Books().Snapshot(),
		Expenses:   st.Expenses().Snapshot(),
		Budgets:    st.Budgets().Snapshot(),
		Ideas:      st.Ideas().Snapshot(),
	}
}

// Restore replaces every collection's contents with the snapshot's records,
// preserving their order.
func Restore(st *store.Store, snap Snapshot) {
	st.Todos().Replace(snap.Todos)
	st.Activities().Replace(snap.Activities)
	st.Goals().Replace(snap.Goals)
	st.Books().Replace(snap.Books)
	st.Expenses().Replace(snap.Expenses)
	st.Budgets().Replace(snap.Budgets)
	st.Ideas().Replace(snap.Ideas)
}

// Write stores the snapshot at path via a temp file and rename, so a crashed
// write never truncates the previous snapshot.
func Write(path string, snap Snapshot) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".snapshot-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// Read loads a snapshot from path. A missing file maps to model.ErrNotFound.
func Read(path string) (Snapshot, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Snapshot{}, fmt.Errorf("snapshot %s: %w", path, model.ErrNotFound)
	}
	if err != nil {
		return Snapshot{}, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("decode snapshot %s: %w", path, err)
	}
	return snap, nil
}
