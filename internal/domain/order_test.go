package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrder_StatusConstants(t *testing.T) {
	assert.Equal(t, "PENDING", OrderStatusPending)
	assert.Equal(t, "CONFIRMED", OrderStatusConfirmed)
	assert.Equal(t, "PREPARING", OrderStatusPreparing)
	assert.Equal(t, "READY", OrderStatusReady)
	assert.Equal(t, "DELIVERED", OrderStatusDelivered)
	assert.Equal(t, "CANCELED", OrderStatusCanceled)
}

func TestCanTransition_ForwardFlow(t *testing.T) {
	assert.True(t, CanTransition(OrderStatusPending, OrderStatusConfirmed))
	assert.True(t, CanTransition(OrderStatusConfirmed, OrderStatusPreparing))
	assert.True(t, CanTransition(OrderStatusPreparing, OrderStatusReady))
	assert.True(t, CanTransition(OrderStatusReady, OrderStatusDelivered))
}

func TestCanTransition_NoSkipping(t *testing.T) {
	assert.False(t, CanTransition(OrderStatusPending, OrderStatusPreparing))
	assert.False(t, CanTransition(OrderStatusPending, OrderStatusDelivered))
	assert.False(t, CanTransition(OrderStatusConfirmed, OrderStatusReady))
}

func TestCanTransition_NoGoingBack(t *testing.T) {
	assert.False(t, CanTransition(OrderStatusConfirmed, OrderStatusPending))
	assert.False(t, CanTransition(OrderStatusReady, OrderStatusPreparing))
	assert.False(t, CanTransition(OrderStatusDelivered, OrderStatusReady))
}

func TestCanTransition_TerminalStates(t *testing.T) {
	assert.False(t, CanTransition(OrderStatusDelivered, OrderStatusConfirmed))
	assert.False(t, CanTransition(OrderStatusCanceled, OrderStatusPending))
	assert.False(t, CanTransition(OrderStatusCanceled, OrderStatusConfirmed))
}

func TestCancelable(t *testing.T) {
	assert.True(t, Cancelable(OrderStatusPending))
	assert.True(t, Cancelable(OrderStatusConfirmed))
	assert.False(t, Cancelable(OrderStatusPreparing))
	assert.False(t, Cancelable(OrderStatusReady))
	assert.False(t, Cancelable(OrderStatusDelivered))
	assert.False(t, Cancelable(OrderStatusCanceled))
}

func TestValidOrderStatus(t *testing.T) {
	assert.True(t, ValidOrderStatus(OrderStatusPending))
	assert.True(t, ValidOrderStatus(OrderStatusCanceled))
	assert.False(t, ValidOrderStatus("SHIPPED"))
	assert.False(t, ValidOrderStatus(""))
	assert.False(t, ValidOrderStatus("pending"))
}

func TestOrder_Subtotal(t *testing.T) {
	order := Order{
		Items: []OrderItem{
			{ProductID: 1, ProductName: "Mohinga", Quantity: 2, PriceAtTime: 4.50},
			{ProductID: 2, ProductName: "Tea Leaf Salad", Quantity: 1, PriceAtTime: 6.25},
		},
	}

	assert.InDelta(t, 15.25, order.Subtotal(), 0.001)
}

func TestOrder_Subtotal_Empty(t *testing.T) {
	assert.Equal(t, 0.0, Order{}.Subtotal())
}
