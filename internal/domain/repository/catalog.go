package repository

import (
	"context"

	"github.com/mkazlauskas/shoplt/internal/domain/model"
)

// CategoryRepository describes persistence operations for categories.
type CategoryRepository interface {
	List(ctx context.Context) ([]model.Category, error)
	GetBySlug(ctx context.Context, slug string) (*model.Category, error)
}

// ProductRepository describes persistence operations for products.
type ProductRepository interface {
	List(ctx context.Context) ([]model.Product, error)
	ListByCategory(ctx context.Context, categoryID int64) ([]model.Product, error)
	GetBySlug(ctx context.Context, slug string) (*model.Product, error)
}
