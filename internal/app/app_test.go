package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homemanager/homemanager/internal/services"
	"github.com/homemanager/homemanager/internal/settings"
)

func newTestApp(t *testing.T, dataDir string) *App {
	t.Helper()
	t.Setenv("HOMEMANAGER_DATA_DIR", dataDir)
	t.Setenv("HOMEMANAGER_LOGIN_DELAY", "0s")

	a, err := New(context.Background())
	require.NoError(t, err)
	t.Cleanup(a.Close)
	return a
}

func TestRecordsSurviveAcrossInstances(t *testing.T) {
	dir := t.TempDir()

	a := newTestApp(t, dir)
	rec, err := a.Todos.Create(services.CreateTodoRequest{Title: "water plants"})
	require.NoError(t, err)
	require.NoError(t, a.SaveSnapshot())
	a.Close()

	b := newTestApp(t, dir)
	got, err := b.Todos.Get(rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "water plants", got.Title)
}

func TestSettingsSurviveAcrossInstances(t *testing.T) {
	dir := t.TempDir()

	a := newTestApp(t, dir)
	tz := "Europe/Berlin"
	a.Settings.Update(context.Background(), settings.UpdateRequest{Timezone: &tz})
	a.Close()

	b := newTestApp(t, dir)
	assert.Equal(t, "Europe/Berlin", b.Settings.Current().Timezone)
}

func TestExportStampsSettingsOnlyOnSuccess(t *testing.T) {
	dir := t.TempDir()
	a := newTestApp(t, dir)
	ctx := context.Background()

	require.Nil(t, a.Settings.Current().LastExportDate)
	require.NoError(t, a.ExportTo(ctx, filepath.Join(dir, "export.json")))
	assert.NotNil(t, a.Settings.Current().LastExportDate)
}

func TestFreshDirectoryStartsEmpty(t *testing.T) {
	a := newTestApp(t, t.TempDir())
	assert.Empty(t, a.Todos.All())
	assert.Empty(t, a.Expenses.Expenses())
}
