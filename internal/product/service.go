package product

import (
	"context"

	"github.com/ChoneChone22/bambite-storefront/internal/commons"
	"github.com/ChoneChone22/bambite-storefront/internal/domain"
	apperrors "github.com/ChoneChone22/bambite-storefront/internal/errors"
)

type productService struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &productService{repo: repo}
}

func (s *productService) ListProducts(ctx context.Context, filter domain.ProductFilter, page commons.Pagination) ([]domain.Product, commons.Pagination, error) {
	products, total, err := s.repo.List(ctx, filter, page.Limit(), page.Offset())
	if err != nil {
		return nil, page, err
	}

	page = page.WithTotal(total)

	// The requested page may have been clamped back onto the last page; in
	// that case the first query's offset pointed past the end.
	if len(products) == 0 && total > 0 {
		products, _, err = s.repo.List(ctx, filter, page.Limit(), page.Offset())
		if err != nil {
			return nil, page, err
		}
	}

	return products, page, nil
}

func (s *productService) GetProduct(ctx context.Context, id int) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *productService) CreateProduct(ctx context.Context, input CreateProductInput) (*domain.Product, error) {
	p := domain.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
		Category:    input.Category,
		ImageURL:    input.ImageURL,
		IsActive:    true,
		Stockeable:  input.Stockeable,
	}

	id, err := s.repo.Insert(ctx, p)
	if err != nil {
		return nil, err
	}
	p.ID = id
	return &p, nil
}

func (s *productService) UpdateProduct(ctx context.Context, id int, input UpdateProductInput) (*domain.Product, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.IsDeleted {
		return nil, apperrors.NewNotFoundError("product not found")
	}

	if input.Name != nil {
		p.Name = *input.Name
	}
	if input.Description != nil {
		p.Description = *input.Description
	}
	if input.Price != nil {
		p.Price = *input.Price
	}
	if input.Stock != nil {
		p.Stock = input.Stock
	}
	if input.Category != nil {
		p.Category = *input.Category
	}
	if input.ImageURL != nil {
		p.ImageURL = *input.ImageURL
	}
	if input.Stockeable != nil {
		p.Stockeable = *input.Stockeable
	}

	if err := s.repo.Update(ctx, *p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *productService) SetActive(ctx context.Context, id int, active bool) error {
	return s.repo.SetActive(ctx, id, active)
}

func (s *productService) DeleteProduct(ctx context.Context, id int) error {
	return s.repo.SoftDelete(ctx, id)
}
