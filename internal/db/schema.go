package db

import (
	"database/sql"
	"fmt"
)

// schema is the full database schema: a single table of raw item records.
// Field types mirror the JSON source. The warehouse id is stored as an
// integer and the stock date keeps its "yyyy-MM-dd hh:mm:ss" text form.
const schema = `
CREATE TABLE IF NOT EXISTS items (
    id            INTEGER PRIMARY KEY,
    state         TEXT NOT NULL,
    category      TEXT NOT NULL,
    warehouse     INTEGER NOT NULL,
    date_of_stock TEXT NOT NULL
);
`

// EnsureSchema creates the items table if it doesn't already exist.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}
