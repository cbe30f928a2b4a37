package session

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// InitDB opens a SQLite database for the session ledger and ensures the
// history table exists. The dashboard keeps no state across restarts, so
// the production DSN is ":memory:"; a file path works too and is handy
// when poking at a session with the sqlite CLI.
func InitDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	// An in-memory database lives per-connection; a second connection
	// would see an empty ledger.
	db.SetMaxOpenConns(1)

	if err := createTables(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}

	return db, nil
}

func createTables(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS history_entries (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT UNIQUE NOT NULL,
			created_at DATETIME NOT NULL,
			amount REAL NOT NULL,
			merchant TEXT NOT NULL,
			risk_score INTEGER NOT NULL,
			decision TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_history_entries_created_at ON history_entries(created_at)`,
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("exec %q: %w", stmt[:40], err)
		}
	}

	return nil
}
