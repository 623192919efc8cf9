package loader

import (
	"fmt"
	"strconv"
	"time"

	"github.com/riteshp/warehouse/internal/model"
)

// DateLayout is the fixed timestamp format of raw item records.
const DateLayout = "2006-01-02 15:04:05"

// Record is a raw item record as produced by a data source, before
// validation. All fields are required; Warehouse must be convertible to an
// integer and DateOfStock must match DateLayout exactly.
type Record struct {
	State       string
	Category    string
	Warehouse   string
	DateOfStock string
}

// Item converts the record into a fully-valid model.Item. Conversion is
// atomic: either every field validates or an error is returned, so no
// partially-populated item can ever reach the canonical set.
func (r Record) Item() (model.Item, error) {
	if r.State == "" {
		return model.Item{}, fmt.Errorf("missing state")
	}
	if r.Category == "" {
		return model.Item{}, fmt.Errorf("missing category")
	}
	if r.Warehouse == "" {
		return model.Item{}, fmt.Errorf("missing warehouse")
	}
	if r.DateOfStock == "" {
		return model.Item{}, fmt.Errorf("missing date_of_stock")
	}

	warehouse, err := strconv.Atoi(r.Warehouse)
	if err != nil {
		return model.Item{}, fmt.Errorf("parsing warehouse %q: %w", r.Warehouse, err)
	}

	date, err := time.Parse(DateLayout, r.DateOfStock)
	if err != nil {
		return model.Item{}, fmt.Errorf("parsing date_of_stock %q: %w", r.DateOfStock, err)
	}

	return model.Item{
		State:       r.State,
		Category:    r.Category,
		Warehouse:   warehouse,
		DateOfStock: date,
	}, nil
}

// Items converts records into items, failing on the first invalid record.
func Items(records []Record) ([]model.Item, error) {
	items := make([]model.Item, 0, len(records))
	for i, rec := range records {
		item, err := rec.Item()
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		items = append(items, item)
	}
	return items, nil
}

// ItemsSkipInvalid converts records into items, skipping invalid records
// instead of failing. The returned errors identify the skipped records so
// the caller can log them.
func ItemsSkipInvalid(records []Record) ([]model.Item, []error) {
	var items []model.Item
	var errs []error
	for i, rec := range records {
		item, err := rec.Item()
		if err != nil {
			errs = append(errs, fmt.Errorf("record %d: %w", i, err))
			continue
		}
		items = append(items, item)
	}
	return items, errs
}
