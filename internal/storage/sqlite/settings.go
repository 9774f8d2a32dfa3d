package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/homemanager/homemanager/internal/model"
)

// SettingsStore persists one settings record per namespace as a JSON payload.
type SettingsStore struct {
	db *sqlx.DB
}

// NewSettingsStore prepares the schema and returns the store.
func NewSettingsStore(db *sqlx.DB) (*SettingsStore, error) {
	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	return &SettingsStore{db: db}, nil
}

func ensureSchema(db *sqlx.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS Settings (
        Namespace TEXT PRIMARY KEY,
        Payload TEXT NOT NULL,
        UpdateTime TIMESTAMP NOT NULL
    );`)
	return err
}

// Load returns the record stored under namespace, or model.ErrNotFound.
func (s *SettingsStore) Load(ctx context.Context, namespace string) (model.UserSettings, error) {
	var payload string
	err := s.db.GetContext(ctx, &payload,
		`SELECT Payload FROM Settings WHERE Namespace = ?`, namespace)
	if errors.Is(err, sql.ErrNoRows) {
		return model.UserSettings{}, fmt.Errorf("settings %s: %w", namespace, model.ErrNotFound)
	}
	if err != nil {
		return model.UserSettings{}, err
	}
	var out model.UserSettings
	if err := json.Unmarshal([]byte(payload), &out); err != nil {
		return model.UserSettings{}, fmt.Errorf("decode settings payload: %w", err)
	}
	return out, nil
}

// Save upserts the record under namespace.
func (s *SettingsStore) Save(ctx context.Context, namespace string, rec model.UserSettings) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode settings payload: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO Settings (Namespace, Payload, UpdateTime) VALUES (?, ?, ?)
         ON CONFLICT(Namespace) DO UPDATE SET Payload = excluded.Payload, UpdateTime = excluded.UpdateTime`,
		namespace, string(payload), time.Now().UTC())
	return err
}
