package domain

import "time"

type Product struct {
	ID          int
	Name        string
	Description string
	Price       float64
	Stock       *int
	Category    string
	ImageURL    string
	IsActive    bool
	IsDeleted   bool
	Stockeable  bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProductFilter narrows a catalog listing. IncludeInactive is only honored
// for staff and admin callers.
type ProductFilter struct {
	Category        string
	Search          string
	IncludeInactive bool
}

// AvailableStock returns the quantity that can still be ordered. Products
// without stock tracking report zero; callers must check Stockeable first.
func (p Product) AvailableStock() int {
	if !p.Stockeable || p.Stock == nil {
		return 0
	}
	if *p.Stock < 0 {
		return 0
	}
	return *p.Stock
}

// Orderable reports whether the product can be placed in a cart at all.
func (p Product) Orderable() bool {
	return p.IsActive && !p.IsDeleted
}
