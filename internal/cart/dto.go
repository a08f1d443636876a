package cart

type CartView struct {
	Items     []CartItemView `json:"items"`
	Total     float64        `json:"total"`
	ItemCount int            `json:"itemCount"`
}

type CartItemView struct {
	ProductID   int     `json:"productId"`
	ProductName string  `json:"productName"`
	ImageURL    string  `json:"imageUrl"`
	UnitPrice   float64 `json:"unitPrice"`
	Quantity    int     `json:"quantity"`
	Subtotal    float64 `json:"subtotal"`
	Unavailable bool    `json:"unavailable,omitempty"`
}

type AddItemRequest struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

type UpdateItemRequest struct {
	Quantity int `json:"quantity"`
}
