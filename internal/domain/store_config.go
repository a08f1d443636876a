package domain

import "time"

// StoreConfig holds storefront-level switches read at checkout time.
type StoreConfig struct {
	ID              int
	OrderingEnabled bool
	HasStockControl bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
