package storage

import (
	"database/sql"
	"log"

	_ "modernc.org/sqlite"
)

// Store owns the process-wide database handle. It is constructed once in
// main and passed by reference to every consumer.
type Store struct {
	db *sql.DB
}

const createUsersTable = `
	CREATE TABLE IF NOT EXISTS users (
			"id" INTEGER PRIMARY KEY AUTOINCREMENT,
			"email" TEXT NOT NULL UNIQUE,
			"password_hash" TEXT NOT NULL,
			"fullname" TEXT NOT NULL,
			"age" INTEGER NOT NULL,
			"gender" TEXT NOT NULL,
			"allergies" TEXT NOT NULL DEFAULT '[]',
			"medications" TEXT NOT NULL DEFAULT '[]',
			"medical_history" TEXT NOT NULL DEFAULT '',
			"surgical_history" TEXT NOT NULL DEFAULT '[]',
			"family_history" TEXT NOT NULL DEFAULT '',
			"last_checkup" TEXT NOT NULL,
			"created_at" TEXT NOT NULL,
			"updated_at" TEXT NOT NULL
	);`

// NewStore opens the sqlite database at path and creates the schema.
func NewStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	if _, err := db.Exec(createUsersTable); err != nil {
		db.Close()
		return nil, err
	}
	log.Println("NewStore(): Init and create table successfully!")
	return &Store{db: db}, nil
}

// Close releases the database handle on shutdown.
func (s *Store) Close() error {
	return s.db.Close()
}
