// Package store keeps historical ETF/futures price series in SQLite so the
// CLI and dashboard do not have to re-read flat files on every run. It
// stores raw market inputs only; computed DV01 and hedge values are never
// persisted.
package store

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

type Store struct {
	db *sql.DB
}

func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
