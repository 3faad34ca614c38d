package dto

import "github.com/mkazlauskas/shoplt/internal/domain/model"

// CategoryResponse describes a catalog category.
type CategoryResponse struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// ProductResponse describes a catalog entry. Price is a fixed-point decimal
// rendered as a string to keep two fractional digits intact.
type ProductResponse struct {
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	Price       string `json:"price"`
}

// CategoryProductsResponse combines a category with its products.
type CategoryProductsResponse struct {
	Category CategoryResponse  `json:"category"`
	Products []ProductResponse `json:"products"`
}

// NewCategoryResponse maps a domain category.
func NewCategoryResponse(c model.Category) CategoryResponse {
	return CategoryResponse{Name: c.Name, Slug: c.Slug}
}

// NewProductResponse maps a domain product.
func NewProductResponse(p model.Product) ProductResponse {
	return ProductResponse{
		Title:       p.Title,
		Slug:        p.Slug,
		Description: p.Description,
		Price:       p.Price.StringFixed(2),
	}
}

// NewProductListResponse maps a slice of domain products.
func NewProductListResponse(products []model.Product) []ProductResponse {
	result := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		result = append(result, NewProductResponse(p))
	}
	return result
}
