package catalog

import (
	"math"
	"time"
)

// Product is a storefront catalog entry. Price is in USD.
type Product struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Slug          string    `json:"slug"`
	Description   string    `json:"description,omitempty"`
	Price         float64   `json:"price"`
	OriginalPrice *float64  `json:"original_price,omitempty"`
	CategoryID    string    `json:"category_id"`
	Images        []string  `json:"images,omitempty"`
	Rating        *float64  `json:"rating,omitempty"`
	IsNew         bool      `json:"is_new"`
	IsFeatured    bool      `json:"is_featured"`
	Tags          []string  `json:"tags,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// IsSale reports whether the product is discounted. It is derived from
// the two prices rather than stored, so it can never go stale.
func (p Product) IsSale() bool {
	return p.OriginalPrice != nil && *p.OriginalPrice > p.Price
}

// DiscountPercent returns the rounded percentage off the original price,
// or 0 for products that are not on sale.
func (p Product) DiscountPercent() int {
	if !p.IsSale() {
		return 0
	}
	orig := *p.OriginalPrice
	return int(math.Round((orig - p.Price) / orig * 100))
}

// Category is a catalog grouping. A nil ParentID marks a top-level
// category.
type Category struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	ParentID    *string `json:"parent_id,omitempty"`
	Description string  `json:"description,omitempty"`
	Image       string  `json:"image,omitempty"`
}

// Review is a customer review attached to a product.
type Review struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	Author    string    `json:"author"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
