package catalog

import (
	"sort"
	"strings"
)

// SortKey selects the ordering applied by Filter.
type SortKey string

const (
	SortFeatured  SortKey = "featured"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortNewest    SortKey = "newest"
	SortRating    SortKey = "rating"
)

// Options holds the listing-page filter state. All set constraints apply
// together (AND). Category is a single identity: the storefront's filter
// panel allows multi-select but only the first selection is honored, a
// known limitation carried over deliberately.
type Options struct {
	Category string
	Search   string
	Sort     SortKey
	Featured bool
}

// Filter returns the products matching opts, ordered per opts.Sort. It
// is a pure function: the input slice is never mutated and the result is
// always a subset of it. An empty result is a valid outcome, not an
// error.
func Filter(products []Product, opts Options) []Product {
	out := make([]Product, 0, len(products))
	search := strings.ToLower(strings.TrimSpace(opts.Search))

	for _, p := range products {
		if opts.Category != "" && p.CategoryID != opts.Category {
			continue
		}
		if opts.Featured && !p.IsFeatured {
			continue
		}
		if search != "" && !matchesSearch(p, search) {
			continue
		}
		out = append(out, p)
	}

	sortProducts(out, opts.Sort)
	return out
}

// matchesSearch reports whether the lowercased term occurs in the name,
// the description, or any tag.
func matchesSearch(p Product, term string) bool {
	if strings.Contains(strings.ToLower(p.Name), term) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Description), term) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

// sortProducts orders in place. Sorts are stable so equal keys keep
// their prior relative order; SortFeatured and unknown keys preserve
// insertion order.
func sortProducts(products []Product, key SortKey) {
	switch key {
	case SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case SortNewest:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].CreatedAt.After(products[j].CreatedAt)
		})
	case SortRating:
		sort.SliceStable(products, func(i, j int) bool {
			return ratingOf(products[i]) > ratingOf(products[j])
		})
	}
}

// ratingOf treats unrated products as lowest so they sort last.
func ratingOf(p Product) float64 {
	if p.Rating == nil {
		return -1
	}
	return *p.Rating
}
