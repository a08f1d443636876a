package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(i int) *int {
	return &i
}

func TestProduct_AvailableStock(t *testing.T) {
	p := Product{Stockeable: true, Stock: intPtr(12)}
	assert.Equal(t, 12, p.AvailableStock())
}

func TestProduct_AvailableStock_NotStockeable(t *testing.T) {
	p := Product{Stockeable: false, Stock: intPtr(12)}
	assert.Equal(t, 0, p.AvailableStock())
}

func TestProduct_AvailableStock_NilStock(t *testing.T) {
	p := Product{Stockeable: true, Stock: nil}
	assert.Equal(t, 0, p.AvailableStock())
}

func TestProduct_AvailableStock_NegativeStock(t *testing.T) {
	p := Product{Stockeable: true, Stock: intPtr(-3)}
	assert.Equal(t, 0, p.AvailableStock())
}

func TestProduct_Orderable(t *testing.T) {
	assert.True(t, Product{IsActive: true, IsDeleted: false}.Orderable())
	assert.False(t, Product{IsActive: false, IsDeleted: false}.Orderable())
	assert.False(t, Product{IsActive: true, IsDeleted: true}.Orderable())
}
