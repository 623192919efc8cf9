package loader

import (
	"testing"
	"time"
)

func validRecord() Record {
	return Record{
		State:       "Exceptional",
		Category:    "Laptop",
		Warehouse:   "2",
		DateOfStock: "2020-03-04 21:59:26",
	}
}

func TestRecordItem(t *testing.T) {
	item, err := validRecord().Item()
	if err != nil {
		t.Fatalf("Item: %v", err)
	}
	if item.State != "Exceptional" {
		t.Errorf("expected state 'Exceptional', got %q", item.State)
	}
	if item.Warehouse != 2 {
		t.Errorf("expected warehouse 2, got %d", item.Warehouse)
	}
	want := time.Date(2020, 3, 4, 21, 59, 26, 0, time.UTC)
	if !item.DateOfStock.Equal(want) {
		t.Errorf("expected date %v, got %v", want, item.DateOfStock)
	}
}

func TestRecordItemInvalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Record)
	}{
		{"missing state", func(r *Record) { r.State = "" }},
		{"missing category", func(r *Record) { r.Category = "" }},
		{"missing warehouse", func(r *Record) { r.Warehouse = "" }},
		{"missing date", func(r *Record) { r.DateOfStock = "" }},
		{"non-integer warehouse", func(r *Record) { r.Warehouse = "two" }},
		{"bad date format", func(r *Record) { r.DateOfStock = "04.03.2020" }},
		{"date with wrong separator", func(r *Record) { r.DateOfStock = "2020-03-04T21:59:26" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := validRecord()
			tt.mutate(&rec)
			if _, err := rec.Item(); err == nil {
				t.Error("expected conversion to fail")
			}
		})
	}
}

func TestItemsFailsOnFirstBadRecord(t *testing.T) {
	bad := validRecord()
	bad.Warehouse = "x"

	items, err := Items([]Record{validRecord(), bad, validRecord()})
	if err == nil {
		t.Fatal("expected an error for the malformed record")
	}
	if items != nil {
		t.Errorf("expected no items on failure, got %d", len(items))
	}
}

func TestItemsSkipInvalid(t *testing.T) {
	bad := validRecord()
	bad.DateOfStock = "not a date"

	items, errs := ItemsSkipInvalid([]Record{validRecord(), bad, validRecord()})
	if len(items) != 2 {
		t.Errorf("expected 2 valid items, got %d", len(items))
	}
	if len(errs) != 1 {
		t.Fatalf("expected 1 skipped record, got %d", len(errs))
	}
}
