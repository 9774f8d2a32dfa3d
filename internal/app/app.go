// Package app wires the dashboard core together: configuration, logging,
// the record store, the domain services, settings persistence and the
// recurrence schedule.
package app

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/homemanager/homemanager/internal/auth"
	"github.com/homemanager/homemanager/internal/config"
	"github.com/homemanager/homemanager/internal/ident"
	"github.com/homemanager/homemanager/internal/localstate"
	"github.com/homemanager/homemanager/internal/model"
	"github.com/homemanager/homemanager/internal/platform/logger"
	"github.com/homemanager/homemanager/internal/recurrence"
	"github.com/homemanager/homemanager/internal/services"
	"github.com/homemanager/homemanager/internal/settings"
	"github.com/homemanager/homemanager/internal/snapshot"
	sqlitestore "github.com/homemanager/homemanager/internal/storage/sqlite"
	"github.com/homemanager/homemanager/internal/store"
)

// App is the assembled application.
type App struct {
	Cfg *config.Config
	Log zerolog.Logger

	Store      *store.Store
	Todos      *services.TodoService
	Books      *services.BookService
	Sports     *services.SportsService
	Expenses   *services.ExpenseService
	Ideas      *services.IdeaService
	Settings   *settings.Service
	Auth       *auth.Service
	Recurrence *recurrence.Service

	db       *sqlx.DB
	cron     *cron.Cron
	snapPath string
}

// New builds the application: opens the settings database, loads the record
// snapshot if one exists, and constructs every service.
func New(ctx context.Context) (*App, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, err
	}

	log := logger.WithLevel("homemanager", cfg.LogLevel)

	dataDir, err := localstate.Resolve(cfg.DataDir)
	if err != nil {
		return nil, err
	}

	db, err := sqlitestore.Open(localstate.DBPath(dataDir))
	if err != nil {
		return nil, err
	}
	settingsStore, err := sqlitestore.NewSettingsStore(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	gen := ident.System{}
	st := store.New(gen)

	a := &App{
		Cfg:        cfg,
		Log:        log,
		Store:      st,
		Todos:      services.NewTodoService(st, log),
		Books:      services.NewBookService(st, gen, log),
		Sports:     services.NewSportsService(st, log),
		Expenses:   services.NewExpenseService(st, log),
		Ideas:      services.NewIdeaService(st, log),
		Settings:   settings.NewService(ctx, settingsStore, log),
		Auth:       auth.NewService(gen, cfg.LoginDelay, log),
		Recurrence: recurrence.NewService(st, log),
		db:         db,
		snapPath:   localstate.SnapshotPath(dataDir),
	}

	if err := a.loadSnapshot(); err != nil && !errors.Is(err, model.ErrNotFound) {
		log.Warn().Err(err).Msg("snapshot load failed; starting empty")
	}
	return a, nil
}

func (a *App) loadSnapshot() error {
	snap, err := snapshot.Read(a.snapPath)
	if err != nil {
		return err
	}
	snapshot.Restore(a.Store, snap)
	a.Log.Debug().
		Int("todos", len(snap.Todos)).
		Int("expenses", len(snap.Expenses)).
		Msg("snapshot restored")
	return nil
}

// SnapshotPath is where the record snapshot lives.
func (a *App) SnapshotPath() string { return a.snapPath }

// SaveSnapshot persists the current collections to the default snapshot path.
func (a *App) SaveSnapshot() error {
	return snapshot.Write(a.snapPath, snapshot.Capture(a.Store, ident.System{}.Now()))
}

// ExportTo writes the current collections to path and, on success, records
// the export timestamp in the settings.
func (a *App) ExportTo(ctx context.Context, path string) error {
	now := ident.System{}.Now()
	if err := snapshot.Write(path, snapshot.Capture(a.Store, now)); err != nil {
		return err
	}
	a.Settings.MarkExported(ctx, now)
	a.Log.Info().Str("path", path).Msg("data exported")
	return nil
}

// RunAgent starts the recurrence schedule and blocks until the context is
// cancelled by a signal. The snapshot is saved on every roll that created
// occurrences and once more at shutdown.
func (a *App) RunAgent(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	a.cron = cron.New()
	_, err := a.cron.AddFunc(a.Cfg.RecurrenceSpec, func() {
		if a.Recurrence.Roll(ident.System{}.Now()) > 0 {
			if err := a.SaveSnapshot(); err != nil {
				a.Log.Error().Err(err).Msg("snapshot save failed")
			}
		}
	})
	if err != nil {
		return err
	}
	a.cron.Start()
	a.Log.Info().Str("schedule", a.Cfg.RecurrenceSpec).Msg("agent started")

	<-ctx.Done()
	a.Log.Info().Msg("agent shutting down")
	<-a.cron.Stop().Done()
	return a.SaveSnapshot()
}

// Close releases the settings database.
func (a *App) Close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}
