package kv

import (
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/yumoapp/aula/core/streak"
)

type sqliteStore struct {
	db *sqlx.DB
}

var _ streak.Store = (*sqliteStore)(nil)

// NewStore returns a streak.Store backed by the given SQLite database,
// creating its table when absent.
func NewStore(db *sqlx.DB) (streak.Store, error) {
	store := &sqliteStore{db: db}
	if err := store.initTable(); err != nil {
		return nil, errors.Wrap(err, "initializing settings table")
	}
	return store, nil
}

func (store *sqliteStore) initTable() error {
	query := `
		CREATE TABLE IF NOT EXISTS settings (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`
	_, err := store.db.Exec(query)
	return err
}

func (store *sqliteStore) Get(key string) (string, error) {
	var value string
	err := store.db.Get(&value, `SELECT value FROM settings WHERE key = ?`, key)
	if err == sql.ErrNoRows {
		return "", streak.ErrKeyNotFound
	}
	if err != nil {
		return "", errors.Wrapf(err, "getting %q", key)
	}
	return value, nil
}

func (store *sqliteStore) Set(key, value string) error {
	query := `
		INSERT INTO settings (key, value)
		VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`
	_, err := store.db.Exec(query, key, value)
	return errors.Wrapf(err, "setting %q", key)
}
