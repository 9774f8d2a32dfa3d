// Package settings manages the singleton preference record. The in-memory
// copy is authoritative; every update is pushed to the storage collaborator
// best-effort, keyed by a fixed namespace.
package settings

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/homemanager/homemanager/internal/model"
)

// Namespace keys the settings record in the storage collaborator.
const Namespace = "homemanager-settings"

// Storage persists the settings record across sessions. Load returns
// model.ErrNotFound when nothing has been saved under the namespace yet.
type Storage interface {
	Load(ctx context.Context, namespace string) (model.UserSettings, error)
	Save(ctx context.Context, namespace string, s model.UserSettings) error
}

// Defaults returns the stock preference record.
func Defaults() model.UserSettings {
	return model.UserSettings{
		DefaultLandingModule: "dashboard",
		EnabledWidgets:       []string{"todos", "sports", "expenses", "books", "ideas"},
		WidgetOrder:          []string{"todos", "sports", "expenses", "books", "ideas"},

		GlobalRemindersEnabled: true,
		DefaultReminderTime:    "09:00",
		QuietHoursStart:        "22:00",
		QuietHoursEnd:          "08:00",
		EmailNotifications:     true,
		InAppNotifications:     true,

		Timezone:     "UTC",
		Currency:     "USD",
		DateFormat:   "MM/DD/YYYY",
		WeekStartDay: "monday",
	}
}

// Service holds the current settings and mirrors changes to storage.
type Service struct {
	storage Storage
	log     zerolog.Logger
	cur     model.UserSettings
}

// NewService loads the persisted record, falling back to defaults when none
// exists or the load fails.
func NewService(ctx context.Context, storage Storage, log zerolog.Logger) *Service {
	s := &Service{storage: storage, log: log, cur: Defaults()}
	if storage == nil {
		return s
	}
	loaded, err := storage.Load(ctx, Namespace)
	switch {
	case err == nil:
		s.cur = loaded
	case !errors.Is(err, model.ErrNotFound):
		log.Warn().Err(err).Msg("settings load failed; using defaults")
	}
	return s
}

// Current returns the active settings record.
func (s *Service) Current() model.UserSettings { return s.cur }

// UpdateRequest patches the settings record. Nil fields are left untouched.
type UpdateRequest struct {
	DefaultLandingModule *string
	EnabledWidgets       *[]string
	WidgetOrder          *[]string

	GlobalRemindersEnabled *bool
	DefaultReminderTime    *string
	QuietHoursStart        *string
	QuietHoursEnd          *string
	EmailNotifications     *bool
	InAppNotifications     *bool

	Timezone     *string
	Currency     *string
	DateFormat   *string
	WeekStartDay *string
}

// Update merges the supplied fields and persists the result. A failed save is
// logged and otherwise ignored; the merged record stays active in memory.
func (s *Service) Update(ctx context.Context, req UpdateRequest) model.UserSettings {
	next := s.cur
	if req.DefaultLandingModule != nil {
		next.DefaultLandingModule = *req.DefaultLandingModule
	}
	if req.EnabledWidgets != nil {
		next.EnabledWidgets = *req.EnabledWidgets
	}
	if req.WidgetOrder != nil {
		next.WidgetOrder = *req.WidgetOrder
	}
	if req.GlobalRemindersEnabled != nil {
		next.GlobalRemindersEnabled = *req.GlobalRemindersEnabled
	}
	if req.DefaultReminderTime != nil {
		next.DefaultReminderTime = *req.DefaultReminderTime
	}
	if req.QuietHoursStart != nil {
		next.QuietHoursStart = *req.QuietHoursStart
	}
	if req.QuietHoursEnd != nil {
		next.QuietHoursEnd = *req.QuietHoursEnd
	}
	if req.EmailNotifications != nil {
		next.EmailNotifications = *req.EmailNotifications
	}
	if req.InAppNotifications != nil {
		next.InAppNotifications = *req.InAppNotifications
	}
	if req.Timezone != nil {
		next.Timezone = *req.Timezone
	}
	if req.Currency != nil {
		next.Currency = *req.Currency
	}
	if req.DateFormat != nil {
		next.DateFormat = *req.DateFormat
	}
	if req.WeekStartDay != nil {
		next.WeekStartDay = *req.WeekStartDay
	}
	s.cur = next
	s.persist(ctx)
	return s.cur
}

// Reset restores the defaults, preserving nothing, and persists them.
func (s *Service) Reset(ctx context.Context) model.UserSettings {
	s.cur = Defaults()
	s.persist(ctx)
	return s.cur
}

// MarkExported records a confirmed data export. Callers must only invoke it
// after the export actually succeeded.
func (s *Service) MarkExported(ctx context.Context, at time.Time) {
	s.cur.LastExportDate = &at
	s.persist(ctx)
}

func (s *Service) persist(ctx context.Context) {
	if s.storage == nil {
		return
	}
	if err := s.storage.Save(ctx, Namespace, s.cur); err != nil {
		s.log.Warn().Err(err).Msg("settings save failed; in-memory state kept")
	}
}
