package cart

import (
	"context"

	"github.com/ChoneChone22/bambite-storefront/internal/domain"
)

type Service interface {
	GetCart(ctx context.Context, userID int) (*CartView, error)
	AddItem(ctx context.Context, userID, productID, quantity int) (*CartView, error)
	UpdateItem(ctx context.Context, userID, productID, quantity int) (*CartView, error)
	RemoveItem(ctx context.Context, userID, productID int) (*CartView, error)
	Clear(ctx context.Context, userID int) error
}

type Repository interface {
	FindOrCreateByUser(ctx context.Context, userID int) (*domain.Cart, error)
	UpsertItem(ctx context.Context, cartID uint, productID, quantity int) error
	RemoveItem(ctx context.Context, cartID uint, productID int) error
	Clear(ctx context.Context, cartID uint) error
}

// ProductFinder is the slice of the catalog the cart needs: current price,
// availability and the active flag.
type ProductFinder interface {
	FindByID(ctx context.Context, id int) (*domain.Product, error)
}
