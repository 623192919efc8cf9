package store

import (
	"sort"

	"github.com/riteshp/warehouse/internal/model"
)

// Store holds the canonical item collection. It is loaded exactly once at
// startup and immutable afterward; every query returns a freshly-allocated
// slice, so callers never hold references into internal state.
type Store struct {
	items []model.Item
}

// New builds a store from the loader's output. The input slice is copied, so
// later mutation by the caller cannot reach the canonical set.
func New(items []model.Item) *Store {
	s := &Store{items: make([]model.Item, len(items))}
	copy(s.items, items)
	return s
}

// AllItems returns the full canonical collection.
func (s *Store) AllItems() []model.Item {
	items := make([]model.Item, len(s.items))
	copy(items, s.items)
	return items
}

// Warehouses returns the distinct warehouse ids across all items, ascending.
// Sorted order keeps iteration stable from one call to the next.
func (s *Store) Warehouses() []int {
	seen := make(map[int]bool)
	var warehouses []int
	for _, item := range s.items {
		if !seen[item.Warehouse] {
			seen[item.Warehouse] = true
			warehouses = append(warehouses, item.Warehouse)
		}
	}
	sort.Ints(warehouses)
	return warehouses
}

// Categories returns the distinct category strings across all items, case
// preserved as stored, sorted.
func (s *Store) Categories() []string {
	seen := make(map[string]bool)
	var categories []string
	for _, item := range s.items {
		if !seen[item.Category] {
			seen[item.Category] = true
			categories = append(categories, item.Category)
		}
	}
	sort.Strings(categories)
	return categories
}

// ItemsByWarehouse returns the items stocked in the given warehouse, in
// canonical order.
func (s *Store) ItemsByWarehouse(warehouse int) []model.Item {
	return FilterByWarehouse(s.items, warehouse)
}

// ItemsByCategory returns the items of the given category, compared
// case-insensitively, in canonical order.
func (s *Store) ItemsByCategory(category string) []model.Item {
	return FilterByCategory(s.items, category)
}

// FilterByWarehouse returns the items of source stocked in the given
// warehouse, preserving source order. It exists so callers can re-filter an
// already-filtered subset without rescanning the canonical set.
func FilterByWarehouse(source []model.Item, warehouse int) []model.Item {
	var items []model.Item
	for _, item := range source {
		if item.Warehouse == warehouse {
			items = append(items, item)
		}
	}
	return items
}

// FilterByCategory returns the items of source matching the given category
// case-insensitively, preserving source order.
func FilterByCategory(source []model.Item, category string) []model.Item {
	var items []model.Item
	for _, item := range source {
		if item.InCategory(category) {
			items = append(items, item)
		}
	}
	return items
}
