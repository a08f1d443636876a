package controller

import (
	"time"

	"github.com/ChoneChone22/bambite-storefront/internal/domain"
)

// OrderResponse is the one canonical order shape: items under "items" and
// the frozen unit price under "priceAtTime".
type OrderResponse struct {
	ID         uint           `json:"id"`
	Status     string         `json:"status"`
	TotalPrice float64        `json:"totalPrice"`
	FirstName  string         `json:"firstName"`
	LastName   string         `json:"lastName"`
	Email      string         `json:"email"`
	Phone      *string        `json:"phone"`
	Address    *string        `json:"address"`
	Items      []OrderItemDTO `json:"items"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
}

type OrderItemDTO struct {
	ProductID   int     `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	PriceAtTime float64 `json:"priceAtTime"`
}

type ListOrdersResponse struct {
	Orders   []OrderResponse `json:"orders"`
	Page     int             `json:"page"`
	PageSize int             `json:"pageSize"`
	Total    int             `json:"total"`
}

type CheckoutResponse struct {
	OrderID    uint           `json:"orderId"`
	Status     string         `json:"status"`
	TotalPrice float64        `json:"totalPrice"`
	Items      []OrderItemDTO `json:"items"`
	Timestamp  time.Time      `json:"timestamp"`
}

type AdvanceStatusRequest struct {
	Status string `json:"status"`
}

func toOrderResponse(o domain.Order) OrderResponse {
	items := make([]OrderItemDTO, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, OrderItemDTO{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			PriceAtTime: item.PriceAtTime,
		})
	}

	return OrderResponse{
		ID:         o.ID,
		Status:     o.Status,
		TotalPrice: o.TotalPrice,
		FirstName:  o.FirstName,
		LastName:   o.LastName,
		Email:      o.Email,
		Phone:      o.Phone,
		Address:    o.Address,
		Items:      items,
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
}
