package engine

import (
	"time"

	"github.com/google/uuid"
)

// Order is the confirmation of a notional order. Nothing is decremented or
// persisted; the reference exists only for the confirmation message.
type Order struct {
	Ref      string
	Name     string
	Amount   int
	PlacedAt time.Time
}

// NewOrder builds an order confirmation with a fresh reference id.
func NewOrder(name string, amount int, now time.Time) Order {
	return Order{
		Ref:      uuid.NewString(),
		Name:     name,
		Amount:   amount,
		PlacedAt: now,
	}
}
