package model

import (
	"strings"
	"time"
)

// Item represents a single stocked unit in a warehouse. Items are created
// once by the loader and never mutated afterward.
type Item struct {
	State       string    `json:"state"`
	Category    string    `json:"category"`
	Warehouse   int       `json:"warehouse"`
	DateOfStock time.Time `json:"date_of_stock"`
}

// DisplayName returns the human-facing name of the item: the state followed
// by the lowercased category, e.g. "Exceptional laptop".
func (i Item) DisplayName() string {
	return i.State + " " + strings.ToLower(i.Category)
}

// MatchesName reports whether name refers to this item. The whole phrase is
// compared against the display name case-insensitively.
func (i Item) MatchesName(name string) bool {
	return strings.EqualFold(i.DisplayName(), name)
}

// InCategory reports whether the item belongs to the given category.
// Category comparisons are always case-insensitive.
func (i Item) InCategory(category string) bool {
	return strings.EqualFold(i.Category, category)
}
