package dto

// CheckoutLine is one cart line entering checkout. Price is deliberately
// absent: checkout reads the current catalog price under lock and freezes it
// into the order as PriceAtTime.
type CheckoutLine struct {
	ProductID int
	Quantity  int
}

type CheckoutItem struct {
	ProductID   int     `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	PriceAtTime float64 `json:"priceAtTime"`
}

type CheckoutResult struct {
	OrderID    uint
	Status     string
	TotalPrice float64
	Items      []CheckoutItem
}

type FailureReason string

const (
	ReasonNotFound          FailureReason = "NOT_FOUND"
	ReasonProductInactive   FailureReason = "PRODUCT_INACTIVE"
	ReasonOutOfStock        FailureReason = "OUT_OF_STOCK"
	ReasonInsufficientStock FailureReason = "INSUFFICIENT_STOCK"
)
