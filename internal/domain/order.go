package domain

import "time"

type Order struct {
	ID         uint
	UserID     int
	FirstName  string
	LastName   string
	Email      string
	Phone      *string
	Address    *string
	Status     string
	TotalPrice float64
	Items      []OrderItem
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type OrderItem struct {
	ID          uint
	OrderID     uint
	ProductID   int
	ProductName string
	Quantity    int
	PriceAtTime float64
}

const (
	OrderStatusPending   = "PENDING"
	OrderStatusConfirmed = "CONFIRMED"
	OrderStatusPreparing = "PREPARING"
	OrderStatusReady     = "READY"
	OrderStatusDelivered = "DELIVERED"
	OrderStatusCanceled  = "CANCELED"
)

// orderTransitions is the forward edge set of the order lifecycle. CANCELED
// is only reachable before the kitchen starts preparing.
var orderTransitions = map[string][]string{
	OrderStatusPending:   {OrderStatusConfirmed, OrderStatusCanceled},
	OrderStatusConfirmed: {OrderStatusPreparing, OrderStatusCanceled},
	OrderStatusPreparing: {OrderStatusReady},
	OrderStatusReady:     {OrderStatusDelivered},
}

// CanTransition reports whether an order may move from one status to another.
func CanTransition(from, to string) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Cancelable reports whether an order in the given status may still be
// canceled (and its stock restored).
func Cancelable(status string) bool {
	return CanTransition(status, OrderStatusCanceled)
}

func ValidOrderStatus(status string) bool {
	switch status {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing,
		OrderStatusReady, OrderStatusDelivered, OrderStatusCanceled:
		return true
	}
	return false
}

func (o Order) Subtotal() float64 {
	total := 0.0
	for _, item := range o.Items {
		total += item.PriceAtTime * float64(item.Quantity)
	}
	return total
}
