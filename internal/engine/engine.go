package engine

import (
	"strconv"
	"strings"
	"time"

	"github.com/riteshp/warehouse/internal/model"
	"github.com/riteshp/warehouse/internal/store"
)

// NoWarehouse is reported as the maximum-availability location when no items
// match a search. It is a sentinel, not a real warehouse id.
const NoWarehouse = -1

// Engine answers availability queries against the canonical item set.
type Engine struct {
	store *store.Store
}

// New returns an engine reading from the given store.
func New(s *store.Store) *Engine {
	return &Engine{store: s}
}

// Find returns every item whose display name equals name, compared
// case-insensitively as a whole phrase. The scan is linear: the canonical
// set is small and static, so no index is kept.
func (e *Engine) Find(name string) []model.Item {
	var items []model.Item
	for _, item := range e.store.AllItems() {
		if item.MatchesName(name) {
			items = append(items, item)
		}
	}
	return items
}

// StockedItem pairs an item with how long it has been in stock, in whole
// days (truncated, not rounded).
type StockedItem struct {
	Item        model.Item
	DaysInStock int
}

// Availability describes where and for how long a set of matching items has
// been stocked.
type Availability struct {
	Stock        []StockedItem
	Distribution map[int]int
	MaxWarehouse int
	MaxCount     int
}

// InStock reports whether any matching items exist.
func (a Availability) InStock() bool {
	return len(a.Stock) > 0
}

// Availability computes the per-item age, the per-warehouse distribution and
// the warehouse holding the most of the given items. Warehouses are visited
// in the store's ascending id order, so a tie keeps the smallest id. With no
// items the distribution is empty and MaxWarehouse is the NoWarehouse
// sentinel.
func (e *Engine) Availability(items []model.Item, now time.Time) Availability {
	avail := Availability{
		Distribution: make(map[int]int),
		MaxWarehouse: NoWarehouse,
	}

	for _, item := range items {
		age := int(now.Sub(item.DateOfStock) / (24 * time.Hour))
		avail.Stock = append(avail.Stock, StockedItem{Item: item, DaysInStock: age})
	}

	// Group over the already-matched subset, never the canonical set.
	for _, w := range e.store.Warehouses() {
		count := len(store.FilterByWarehouse(items, w))
		if count == 0 {
			continue
		}
		avail.Distribution[w] = count
		if count > avail.MaxCount {
			avail.MaxWarehouse = w
			avail.MaxCount = count
		}
	}

	return avail
}

// AmountStatus tags the outcome of one order-amount validation step.
type AmountStatus int

const (
	// AmountAccepted means Amount holds the final order amount.
	AmountAccepted AmountStatus = iota
	// AmountInvalid means the input was not a non-negative integer; the
	// caller should re-prompt.
	AmountInvalid
	// AmountNeedsConfirmation means the input exceeded the available amount;
	// the caller must ask whether to order the maximum instead.
	AmountNeedsConfirmation
)

// AmountResult is the tagged result of validating a raw order amount.
type AmountResult struct {
	Status AmountStatus
	Amount int
}

// ValidateOrderAmount parses raw as an order amount against the available
// stock. Unparseable or negative input is invalid, input above available
// needs the one confirmation step, and anything in [0, available] is
// accepted as-is.
func ValidateOrderAmount(raw string, available int) AmountResult {
	amount, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || amount < 0 {
		return AmountResult{Status: AmountInvalid}
	}
	if amount > available {
		return AmountResult{Status: AmountNeedsConfirmation, Amount: amount}
	}
	return AmountResult{Status: AmountAccepted, Amount: amount}
}

// ResolveMaxConfirmation finalizes an order amount after the caller asked
// whether to order the maximum available. Declining accepts an amount of
// zero, which ends the attempt without an order.
func ResolveMaxConfirmation(confirmed bool, available int) AmountResult {
	if confirmed {
		return AmountResult{Status: AmountAccepted, Amount: available}
	}
	return AmountResult{Status: AmountAccepted, Amount: 0}
}
