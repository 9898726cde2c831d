package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"
)

// Logical keys for the persisted entities. Each one is independently
// loadable; absence of any one must not break readers of the others.
const (
	KeyPlan     = "vocabu.plan.v1"
	KeyCards    = "vocabu_srs_store_v1"
	KeyProgress = "vocabu.progress.v1"
	KeyUIStep   = "ui.step"
)

// Config selects the database driver and location
type Config struct {
	Driver string // "sqlite3" or "postgres"
	DSN    string // file path for sqlite, connection string for postgres
}

// ConfigFromEnv builds a Config from environment variables. Defaults to a
// sqlite database under ./data.
func ConfigFromEnv() Config {
	driver := os.Getenv("DB_TYPE")
	switch driver {
	case "postgres":
		return Config{Driver: "postgres", DSN: os.Getenv("DATABASE_URL")}
	default:
		path := os.Getenv("DB_PATH")
		if path == "" {
			path = filepath.Join("data", "vocabu.db")
		}
		return Config{Driver: "sqlite3", DSN: path}
	}
}

// Store is a durable string-keyed, string-valued store backed by a
// relational database. It is passed explicitly to every component that
// persists state; there is no package-level connection.
type Store struct {
	db     *sqlx.DB
	driver string
}

// Open connects to the database and initializes the schema
func Open(cfg Config) (*Store, error) {
	if cfg.Driver == "sqlite3" {
		if err := os.MkdirAll(filepath.Dir(cfg.DSN), 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %v", err)
		}
	}

	db, err := sqlx.Connect(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %v", err)
	}

	if cfg.Driver == "sqlite3" {
		// SQLite doesn't support multiple writers
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	}

	s := &Store{db: db, driver: cfg.Driver}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Driver returns the active driver name.
func (s *Store) Driver() string {
	return s.driver
}

// initSchema creates necessary tables if they don't exist
func (s *Store) initSchema() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS kv_entries (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create kv_entries table: %v", err)
	}

	_, err = s.db.Exec(`
		CREATE TABLE IF NOT EXISTS review_events (
			id TEXT PRIMARY KEY,
			item_id TEXT NOT NULL,
			grade TEXT NOT NULL,
			reviewed_at TIMESTAMP NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create review_events table: %v", err)
	}

	return nil
}

// Get returns the value stored under key. A read failure degrades to
// "absent": the error is logged and ok is false, so callers fall back to
// their entity defaults.
func (s *Store) Get(key string) (value string, ok bool) {
	var v string
	err := s.db.Get(&v, "SELECT value FROM kv_entries WHERE key = $1", key)
	if err == sql.ErrNoRows {
		return "", false
	}
	if err != nil {
		logrus.WithError(err).WithField("key", key).Warn("store read failed, treating as absent")
		return "", false
	}
	return v, true
}

// Set writes the value under key. Writes are best-effort: failures are
// logged and swallowed, the in-memory state stays authoritative for the
// session.
func (s *Store) Set(key, value string) {
	// ON CONFLICT upsert is understood by both sqlite and postgres
	_, err := s.db.Exec(`
		INSERT INTO kv_entries (key, value, updated_at) VALUES ($1, $2, CURRENT_TIMESTAMP)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = CURRENT_TIMESTAMP
	`, key, value)
	if err != nil {
		logrus.WithError(err).WithField("key", key).Warn("store write failed")
	}
}

// Remove deletes the value stored under key, if any.
func (s *Store) Remove(key string) {
	if _, err := s.db.Exec("DELETE FROM kv_entries WHERE key = $1", key); err != nil {
		logrus.WithError(err).WithField("key", key).Warn("store delete failed")
	}
}

// GetJSON decodes the value under key into v. Corrupt payloads are treated
// exactly like absent ones: discard, log and report false so the caller
// reinitializes the entity's default.
func (s *Store) GetJSON(key string, v interface{}) bool {
	raw, ok := s.Get(key)
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		logrus.WithError(err).WithField("key", key).Warn("corrupt stored value, reinitializing")
		return false
	}
	return true
}

// SetJSON encodes v and writes it under key, best-effort.
func (s *Store) SetJSON(key string, v interface{}) {
	raw, err := json.Marshal(v)
	if err != nil {
		logrus.WithError(err).WithField("key", key).Warn("failed to encode value")
		return
	}
	s.Set(key, string(raw))
}

// Reset wipes every persisted entity, including the review history. Used
// by the nuclear "clear all state and restart" recovery path.
func (s *Store) Reset() error {
	if _, err := s.db.Exec("DELETE FROM kv_entries"); err != nil {
		return fmt.Errorf("failed to clear kv entries: %v", err)
	}
	if _, err := s.db.Exec("DELETE FROM review_events"); err != nil {
		return fmt.Errorf("failed to clear review events: %v", err)
	}
	return nil
}
