package catalog

import (
	"context"
	"errors"
)

// Sentinel errors for lookups against the catalog.
var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
)

// Repository defines read access to the product catalog.
type Repository interface {
	// ListProducts returns the catalog filtered and ordered per opts.
	ListProducts(ctx context.Context, opts Options) ([]Product, error)

	// GetProductBySlug returns one product or ErrProductNotFound.
	GetProductBySlug(ctx context.Context, slug string) (*Product, error)

	// ListCategories returns all categories, or only top-level ones
	// (nil parent) when topOnly is set.
	ListCategories(ctx context.Context, topOnly bool) ([]Category, error)

	// GetCategoryBySlug returns one category or ErrCategoryNotFound.
	GetCategoryBySlug(ctx context.Context, slug string) (*Category, error)

	// ListReviews returns the reviews for a product, newest first.
	// Unknown products yield ErrProductNotFound.
	ListReviews(ctx context.Context, productID string) ([]Review, error)
}
