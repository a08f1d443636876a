package product

import "github.com/ChoneChone22/bambite-storefront/internal/domain"

type ProductDTO struct {
	ID             int     `json:"id"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	Price          float64 `json:"price"`
	Stock          *int    `json:"stock"`
	AvailableStock int     `json:"availableStock"`
	Category       string  `json:"category"`
	ImageURL       string  `json:"imageUrl"`
	IsActive       bool    `json:"isActive"`
	Stockeable     bool    `json:"stockeable"`
}

type ListProductsResponse struct {
	Products []ProductDTO `json:"products"`
	Page     int          `json:"page"`
	PageSize int          `json:"pageSize"`
	Total    int          `json:"total"`
}

type CreateProductInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       *int    `json:"stock"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"imageUrl"`
	Stockeable  bool    `json:"stockeable"`
}

type UpdateProductInput struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Stock       *int     `json:"stock"`
	Category    *string  `json:"category"`
	ImageURL    *string  `json:"imageUrl"`
	Stockeable  *bool    `json:"stockeable"`
}

func toProductDTO(p domain.Product) ProductDTO {
	return ProductDTO{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		Price:          p.Price,
		Stock:          p.Stock,
		AvailableStock: p.AvailableStock(),
		Category:       p.Category,
		ImageURL:       p.ImageURL,
		IsActive:       p.IsActive,
		Stockeable:     p.Stockeable,
	}
}
