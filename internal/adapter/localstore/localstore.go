// Package localstore persists client-side state between runs: the
// session token, the serialized current-user record and the dark-mode
// preference. It is a small SQLite key-value file; logout clears the
// session keys while the theme preference survives independently.
package localstore

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"rentdesk/internal/domain"
)

const (
	tokenKey    = "auth.token"
	userKey     = "auth.user"
	darkModeKey = "pref.dark_mode"
)

// Store is the persistent key-value file.
type Store struct {
	db *sql.DB
}

// Open creates or opens the state database at path, creating parent
// directories as needed. Safe to call repeatedly.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("create state dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open state db: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect state db: %w", err)
	}

	// Single writer keeps SQLITE_BUSY away; this is a tiny local file.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply %q: %w", pragma, err)
		}
	}

	if _, err := db.Exec("CREATE TABLE IF NOT EXISTS kv (key TEXT PRIMARY KEY, value TEXT NOT NULL);"); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?;", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (s *Store) set(key, value string) error {
	_, err := s.db.Exec("INSERT INTO kv(key, value) VALUES(?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value;", key, value)
	return err
}

func (s *Store) delete(keys ...string) error {
	for _, key := range keys {
		if _, err := s.db.Exec("DELETE FROM kv WHERE key = ?;", key); err != nil {
			return err
		}
	}
	return nil
}

// Token returns the persisted session token, empty when none is stored.
func (s *Store) Token() (string, error) {
	value, _, err := s.get(tokenKey)
	return value, err
}

// SaveSession persists the token and the serialized user record.
func (s *Store) SaveSession(token string, user *domain.User) error {
	if err := s.set(tokenKey, token); err != nil {
		return err
	}
	if user == nil {
		return s.delete(userKey)
	}
	buf, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.set(userKey, string(buf))
}

// SavedUser returns the persisted user record, nil when none is stored.
func (s *Store) SavedUser() (*domain.User, error) {
	value, ok, err := s.get(userKey)
	if err != nil || !ok {
		return nil, err
	}
	var u domain.User
	if err := json.Unmarshal([]byte(value), &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// ClearSession removes the session keys. The theme preference is not
// touched.
func (s *Store) ClearSession() error {
	return s.delete(tokenKey, userKey)
}

// DarkMode returns the persisted theme preference, false by default.
func (s *Store) DarkMode() (bool, error) {
	value, ok, err := s.get(darkModeKey)
	if err != nil || !ok {
		return false, err
	}
	return value == "1", nil
}

// SetDarkMode persists the theme preference.
func (s *Store) SetDarkMode(on bool) error {
	value := "0"
	if on {
		value = "1"
	}
	return s.set(darkModeKey, value)
}
