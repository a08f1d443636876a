package product

import (
	"context"
	"testing"

	"github.com/ChoneChone22/bambite-storefront/internal/commons"
	"github.com/ChoneChone22/bambite-storefront/internal/domain"
	apperrors "github.com/ChoneChone22/bambite-storefront/internal/errors"
)

func strPtr(s string) *string {
	return &s
}

func floatPtr(f float64) *float64 {
	return &f
}

// Mock implementation

type mockRepository struct {
	ListFunc       func(ctx context.Context, filter domain.ProductFilter, limit, offset int) ([]domain.Product, int, error)
	FindByIDFunc   func(ctx context.Context, id int) (*domain.Product, error)
	InsertFunc     func(ctx context.Context, p domain.Product) (int, error)
	UpdateFunc     func(ctx context.Context, p domain.Product) error
	SetActiveFunc  func(ctx context.Context, id int, active bool) error
	SoftDeleteFunc func(ctx context.Context, id int) error
}

func (m *mockRepository) List(ctx context.Context, filter domain.ProductFilter, limit, offset int) ([]domain.Product, int, error) {
	return m.ListFunc(ctx, filter, limit, offset)
}

func (m *mockRepository) FindByID(ctx context.Context, id int) (*domain.Product, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *mockRepository) Insert(ctx context.Context, p domain.Product) (int, error) {
	return m.InsertFunc(ctx, p)
}

func (m *mockRepository) Update(ctx context.Context, p domain.Product) error {
	return m.UpdateFunc(ctx, p)
}

func (m *mockRepository) SetActive(ctx context.Context, id int, active bool) error {
	return m.SetActiveFunc(ctx, id, active)
}

func (m *mockRepository) SoftDelete(ctx context.Context, id int) error {
	return m.SoftDeleteFunc(ctx, id)
}

// Tests

func TestListProducts(t *testing.T) {
	ctx := context.Background()

	repo := &mockRepository{
		ListFunc: func(ctx context.Context, filter domain.ProductFilter, limit, offset int) ([]domain.Product, int, error) {
			if limit != 10 || offset != 0 {
				t.Errorf("expected limit 10 offset 0, got %d %d", limit, offset)
			}
			return []domain.Product{{ID: 1, Name: "Mohinga"}}, 1, nil
		},
	}

	svc := NewService(repo)

	products, page, err := svc.ListProducts(ctx, domain.ProductFilter{}, commons.NewPagination(1, 10))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("expected 1 product, got %d", len(products))
	}
	if page.Total != 1 {
		t.Errorf("expected total 1, got %d", page.Total)
	}
}

func TestListProducts_RefetchesWhenPastEnd(t *testing.T) {
	ctx := context.Background()

	calls := 0
	repo := &mockRepository{
		ListFunc: func(ctx context.Context, filter domain.ProductFilter, limit, offset int) ([]domain.Product, int, error) {
			calls++
			if offset >= 25 {
				return nil, 25, nil
			}
			return []domain.Product{{ID: 21}, {ID: 22}, {ID: 23}, {ID: 24}, {ID: 25}}, 25, nil
		},
	}

	svc := NewService(repo)

	products, page, err := svc.ListProducts(ctx, domain.ProductFilter{}, commons.NewPagination(9, 10))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if calls != 2 {
		t.Errorf("expected a refetch on the clamped page, got %d calls", calls)
	}
	if page.Page != 3 {
		t.Errorf("expected page snapped to 3, got %d", page.Page)
	}
	if len(products) != 5 {
		t.Errorf("expected 5 products on the last page, got %d", len(products))
	}
}

func TestCreateProduct(t *testing.T) {
	ctx := context.Background()

	var inserted domain.Product
	repo := &mockRepository{
		InsertFunc: func(ctx context.Context, p domain.Product) (int, error) {
			inserted = p
			return 11, nil
		},
	}

	svc := NewService(repo)

	p, err := svc.CreateProduct(ctx, CreateProductInput{
		Name:       "Shan Noodles",
		Price:      5.75,
		Category:   "noodles",
		Stockeable: true,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if p.ID != 11 {
		t.Errorf("expected id 11, got %d", p.ID)
	}
	if !inserted.IsActive {
		t.Errorf("new products start active")
	}
}

func TestUpdateProduct_PartialFields(t *testing.T) {
	ctx := context.Background()

	var updated domain.Product
	repo := &mockRepository{
		FindByIDFunc: func(ctx context.Context, id int) (*domain.Product, error) {
			return &domain.Product{ID: id, Name: "Mohinga", Price: 4.50, Category: "soup", IsActive: true}, nil
		},
		UpdateFunc: func(ctx context.Context, p domain.Product) error {
			updated = p
			return nil
		},
	}

	svc := NewService(repo)

	p, err := svc.UpdateProduct(ctx, 3, UpdateProductInput{Price: floatPtr(5.00)})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if p.Price != 5.00 {
		t.Errorf("expected price updated to 5.00, got %v", p.Price)
	}
	if updated.Name != "Mohinga" {
		t.Errorf("unset fields must be kept, name became %q", updated.Name)
	}
	if updated.Category != "soup" {
		t.Errorf("unset fields must be kept, category became %q", updated.Category)
	}
}

func TestUpdateProduct_Deleted(t *testing.T) {
	ctx := context.Background()

	repo := &mockRepository{
		FindByIDFunc: func(ctx context.Context, id int) (*domain.Product, error) {
			return &domain.Product{ID: id, IsDeleted: true}, nil
		},
	}

	svc := NewService(repo)

	_, err := svc.UpdateProduct(ctx, 3, UpdateProductInput{Name: strPtr("Ghost")})
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if _, ok := apperrors.IsNotFoundError(err); !ok {
		t.Errorf("expected NotFoundError, got %T", err)
	}
}

func TestDeleteProduct(t *testing.T) {
	ctx := context.Background()

	deleted := 0
	repo := &mockRepository{
		SoftDeleteFunc: func(ctx context.Context, id int) error {
			deleted = id
			return nil
		},
	}

	svc := NewService(repo)

	if err := svc.DeleteProduct(ctx, 3); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if deleted != 3 {
		t.Errorf("expected soft delete of product 3, got %d", deleted)
	}
}
