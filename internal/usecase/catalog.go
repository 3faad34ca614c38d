package usecase

import (
	"context"

	"github.com/mkazlauskas/shoplt/internal/domain/model"
	"github.com/mkazlauskas/shoplt/internal/domain/repository"
)

// CatalogUseCase serves read-only product and category lookups.
type CatalogUseCase struct {
	categories repository.CategoryRepository
	products   repository.ProductRepository
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(categories repository.CategoryRepository, products repository.ProductRepository) *CatalogUseCase {
	return &CatalogUseCase{categories: categories, products: products}
}

// Categories lists all categories.
func (u *CatalogUseCase) Categories(ctx context.Context) ([]model.Category, error) {
	return u.categories.List(ctx)
}

// Products lists the whole catalog.
func (u *CatalogUseCase) Products(ctx context.Context) ([]model.Product, error) {
	return u.products.List(ctx)
}

// ProductBySlug fetches a single product.
func (u *CatalogUseCase) ProductBySlug(ctx context.Context, slug string) (*model.Product, error) {
	return u.products.GetBySlug(ctx, slug)
}

// CategoryWithProducts fetches a category and its products.
func (u *CatalogUseCase) CategoryWithProducts(ctx context.Context, slug string) (*model.Category, []model.Product, error) {
	category, err := u.categories.GetBySlug(ctx, slug)
	if err != nil {
		return nil, nil, err
	}
	products, err := u.products.ListByCategory(ctx, category.ID)
	if err != nil {
		return nil, nil, err
	}
	return category, products, nil
}
