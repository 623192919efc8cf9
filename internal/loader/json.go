package loader

import (
	"encoding/json"
	"fmt"
	"os"
)

// flexString decodes a JSON string or number into a string. Source files
// store the warehouse id either way.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}

// jsonRecord mirrors one object of the JSON source file.
type jsonRecord struct {
	State       string     `json:"state"`
	Category    string     `json:"category"`
	Warehouse   flexString `json:"warehouse"`
	DateOfStock string     `json:"date_of_stock"`
}

// LoadJSON reads raw item records from a JSON file holding an array of
// objects with state, category, warehouse and date_of_stock fields.
func LoadJSON(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var raw []jsonRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	records := make([]Record, len(raw))
	for i, r := range raw {
		records[i] = Record{
			State:       r.State,
			Category:    r.Category,
			Warehouse:   string(r.Warehouse),
			DateOfStock: r.DateOfStock,
		}
	}
	return records, nil
}
