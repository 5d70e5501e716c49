package storage

import (
	"database/sql"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// Store owns the shared SQLite handle used by the credential and task stores.
type Store struct {
	DB *sql.DB
}

// Open connects to the SQLite database at path and creates the schema if
// it does not exist yet.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	s := &Store{DB: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) migrate() error {
	createUsersTableSQL := `
	CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL
	);`

	createTasksTableSQL := `
	CREATE TABLE IF NOT EXISTS tasks (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		description TEXT NOT NULL,
		deadline TEXT,
		priority TEXT,
		category TEXT,
		FOREIGN KEY (user_id) REFERENCES users (id)
	);`

	if _, err := s.DB.Exec(createUsersTableSQL); err != nil {
		return err
	}
	if _, err := s.DB.Exec(createTasksTableSQL); err != nil {
		return err
	}
	return nil
}

func (s *Store) Close() error {
	return s.DB.Close()
}
