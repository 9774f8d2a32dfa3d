package localstate

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	envHome      = "HOMEMANAGER_HOME" // override for tests
	dirName      = ".homemanager"     // default under $HOME
	dbFilename   = "settings.db"
	snapFilename = "data.json"
)

// Resolve returns the directory where local state lives and creates it with
// 0700 permissions. A non-empty custom dir wins, then $HOMEMANAGER_HOME, then
// ~/.homemanager.
func Resolve(custom string) (string, error) {
	dir := custom
	if dir == "" {
		dir = os.Getenv(envHome)
	}
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine user home: %w", err)
		}
		dir = filepath.Join(home, dirName)
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}
	return dir, nil
}

// DBPath returns the settings SQLite database file under dir.
func DBPath(dir string) string { return filepath.Join(dir, dbFilename) }

// SnapshotPath returns the record snapshot file under dir.
func SnapshotPath(dir string) string { return filepath.Join(dir, snapFilename) }
