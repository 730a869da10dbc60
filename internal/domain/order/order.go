package order

import "time"

// Order is owned and persisted elsewhere; this core only checks that the
// referenced order exists before issuing a payment, so the entity carries
// just the fields the lookup returns.
type Order struct {
	ID        string
	Status    string
	CreatedAt time.Time
}
