// Package kv provides the persistent key-value settings store: a single
// SQLite table of string keys and values surviving across runs on one device.
package kv

import (
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/yumoapp/aula/core"
)

// Open connects to the SQLite file configured in conf, creating it if needed.
func Open(conf *core.Config) (*sqlx.DB, error) {
	return sqlx.Connect("sqlite", conf.Database.Path)
}
