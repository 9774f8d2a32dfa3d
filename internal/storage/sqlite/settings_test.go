package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homemanager/homemanager/internal/model"
)

func newTestStore(t *testing.T) *SettingsStore {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "settings.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	st, err := NewSettingsStore(db)
	require.NoError(t, err)
	return st
}

func TestLoadMissingNamespaceIsNotFound(t *testing.T) {
	st := newTestStore(t)
	_, err := st.Load(context.Background(), "nothing-here")
	assert.True(t, errors.Is(err, model.ErrNotFound), "got %v", err)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	at := time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)
	rec := model.UserSettings{
		DefaultLandingModule: "todos",
		EnabledWidgets:       []string{"todos", "books"},
		WidgetOrder:          []string{"books", "todos"},
		DefaultReminderTime:  "08:30",
		Timezone:             "Europe/Berlin",
		Currency:             "EUR",
		DateFormat:           "DD/MM/YYYY",
		WeekStartDay:         "sunday",
		LastExportDate:       &at,
	}

	require.NoError(t, st.Save(ctx, "ns", rec))
	got, err := st.Load(ctx, "ns")
	require.NoError(t, err)
	assert.Equal(t, "todos", got.DefaultLandingModule)
	assert.Equal(t, []string{"books", "todos"}, got.WidgetOrder)
	assert.Equal(t, "EUR", got.Currency)
	require.NotNil(t, got.LastExportDate)
	assert.True(t, got.LastExportDate.Equal(at))
}

func TestSaveUpsertsSameNamespace(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, st.Save(ctx, "ns", model.UserSettings{Currency: "USD"}))
	require.NoError(t, st.Save(ctx, "ns", model.UserSettings{Currency: "JPY"}))

	got, err := st.Load(ctx, "ns")
	require.NoError(t, err)
	assert.Equal(t, "JPY", got.Currency)
}

func TestNamespacesAreIsolated(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, st.Save(ctx, "a", model.UserSettings{Currency: "USD"}))
	require.NoError(t, st.Save(ctx, "b", model.UserSettings{Currency: "EUR"}))

	a, err := st.Load(ctx, "a")
	require.NoError(t, err)
	b, err := st.Load(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, "USD", a.Currency)
	assert.Equal(t, "EUR", b.Currency)
}

func TestReopenKeepsData(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.db")
	ctx := context.Background()

	db, err := Open(path)
	require.NoError(t, err)
	st, err := NewSettingsStore(db)
	require.NoError(t, err)
	require.NoError(t, st.Save(ctx, "ns", model.UserSettings{Currency: "CHF"}))
	require.NoError(t, db.Close())

	db, err = Open(path)
	require.NoError(t, err)
	defer db.Close()
	st, err = NewSettingsStore(db)
	require.NoError(t, err)

	got, err := st.Load(ctx, "ns")
	require.NoError(t, err)
	assert.Equal(t, "CHF", got.Currency)
}
