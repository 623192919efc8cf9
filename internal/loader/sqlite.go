package loader

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/riteshp/warehouse/internal/db"
)

// LoadSQLite reads raw item records from the items table of the SQLite
// database at path. The connection only lives for the duration of the load;
// the snapshot never goes back to the database.
func LoadSQLite(ctx context.Context, path string) ([]Record, error) {
	database, err := db.Open(path)
	if err != nil {
		return nil, err
	}
	defer database.Close()

	return SQLiteRecords(ctx, database)
}

// SQLiteRecords reads raw item records from an open database.
func SQLiteRecords(ctx context.Context, database *sql.DB) ([]Record, error) {
	rows, err := database.QueryContext(ctx,
		`SELECT state, category, warehouse, date_of_stock FROM items ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("querying items: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.State, &rec.Category, &rec.Warehouse, &rec.DateOfStock); err != nil {
			return nil, fmt.Errorf("scanning item record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading item records: %w", err)
	}
	return records, nil
}
