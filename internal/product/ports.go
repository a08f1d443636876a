package product

import (
	"context"

	"github.com/ChoneChone22/bambite-storefront/internal/commons"
	"github.com/ChoneChone22/bambite-storefront/internal/domain"
)

type Service interface {
	ListProducts(ctx context.Context, filter domain.ProductFilter, page commons.Pagination) ([]domain.Product, commons.Pagination, error)
	GetProduct(ctx context.Context, id int) (*domain.Product, error)
	CreateProduct(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id int, input UpdateProductInput) (*domain.Product, error)
	SetActive(ctx context.Context, id int, active bool) error
	DeleteProduct(ctx context.Context, id int) error
}

type Repository interface {
	List(ctx context.Context, filter domain.ProductFilter, limit, offset int) ([]domain.Product, int, error)
	FindByID(ctx context.Context, id int) (*domain.Product, error)
	Insert(ctx context.Context, p domain.Product) (int, error)
	Update(ctx context.Context, p domain.Product) error
	SetActive(ctx context.Context, id int, active bool) error
	SoftDelete(ctx context.Context, id int) error
}
