package domain

import "time"

// Cart is the single open cart of a customer. Line prices are read from the
// product catalog at display time; they are only frozen into PriceAtTime when
// the cart is checked out.
type Cart struct {
	ID        uint
	UserID    int
	Items     []CartItem
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CartItem struct {
	ID        uint
	CartID    uint
	ProductID int
	Quantity  int
}

func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Quantity returns the quantity of the given product in the cart, 0 if absent.
func (c Cart) Quantity(productID int) int {
	for _, item := range c.Items {
		if item.ProductID == productID {
			return item.Quantity
		}
	}
	return 0
}
