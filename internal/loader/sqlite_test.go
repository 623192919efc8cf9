package loader

import (
	"context"
	"testing"

	"github.com/riteshp/warehouse/internal/db"
)

func TestSQLiteRecords(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	_, err := database.ExecContext(ctx,
		`INSERT INTO items (state, category, warehouse, date_of_stock) VALUES
		 ('Exceptional', 'Laptop', 1, '2020-03-04 21:59:26'),
		 ('Almost new', 'Headphones', 2, '2019-12-01 08:15:00')`,
	)
	if err != nil {
		t.Fatalf("seeding items: %v", err)
	}

	records, err := SQLiteRecords(ctx, database)
	if err != nil {
		t.Fatalf("SQLiteRecords: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	// Integer columns scan into the string-typed raw record.
	if records[0].Warehouse != "1" {
		t.Errorf("expected warehouse '1', got %q", records[0].Warehouse)
	}

	items, err := Items(records)
	if err != nil {
		t.Fatalf("Items: %v", err)
	}
	if items[1].Warehouse != 2 {
		t.Errorf("expected warehouse 2, got %d", items[1].Warehouse)
	}
}

func TestSQLiteRecordsEmpty(t *testing.T) {
	database := db.NewTestDB(t)

	records, err := SQLiteRecords(context.Background(), database)
	if err != nil {
		t.Fatalf("SQLiteRecords: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected no records, got %d", len(records))
	}
}
