package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProducts() []Product {
	return []Product{
		{ID: "p1", Name: "Alpha Tee", Description: "A soft shirt", Price: 20, CategoryID: "c1", Tags: []string{"cotton"}, IsFeatured: true, Rating: f64(4.0), CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "p2", Name: "Beta Mug", Description: "Ceramic mug", Price: 10, CategoryID: "c2", Tags: []string{"kitchen"}, Rating: f64(4.5), CreatedAt: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "p3", Name: "Gamma Poster", Description: "Wall art", Price: 20, CategoryID: "c1", Tags: []string{"art", "cotton-blend"}, IsFeatured: true, CreatedAt: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "p4", Name: "Delta Hoodie", Description: "Warm hoodie", Price: 50, CategoryID: "c3", Rating: f64(3.5), CreatedAt: time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)},
	}
}

func ids(products []Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestFilter_NoOptionsPreservesInsertionOrder(t *testing.T) {
	got := Filter(testProducts(), Options{})
	assert.Equal(t, []string{"p1", "p2", "p3", "p4"}, ids(got))
}

func TestFilter_ResultIsAlwaysSubsetOfInput(t *testing.T) {
	in := testProducts()
	known := map[string]bool{}
	for _, p := range in {
		known[p.ID] = true
	}
	opts := []Options{
		{},
		{Category: "c1"},
		{Search: "mug"},
		{Featured: true},
		{Category: "c1", Search: "art", Featured: true, Sort: SortPriceLow},
		{Category: "nope"},
	}
	for _, o := range opts {
		for _, p := range Filter(in, o) {
			assert.True(t, known[p.ID], "filter fabricated product %s", p.ID)
		}
	}
}

func TestFilter_ConstraintsAreConjunctive(t *testing.T) {
	// Category AND search AND featured must all hold.
	got := Filter(testProducts(), Options{Category: "c1", Search: "cotton", Featured: true})
	assert.Equal(t, []string{"p1", "p3"}, ids(got))

	got = Filter(testProducts(), Options{Category: "c2", Featured: true})
	assert.Empty(t, got)
}

func TestFilter_SearchIsCaseInsensitiveAcrossFields(t *testing.T) {
	in := testProducts()

	// Name match.
	assert.Equal(t, []string{"p2"}, ids(Filter(in, Options{Search: "BETA"})))
	// Description match.
	assert.Equal(t, []string{"p4"}, ids(Filter(in, Options{Search: "warm"})))
	// Tag match (substring).
	assert.Equal(t, []string{"p1", "p3"}, ids(Filter(in, Options{Search: "cotton"})))
}

func TestFilter_SearchWithNoMatchReturnsEmptyNotError(t *testing.T) {
	got := Filter(testProducts(), Options{Search: "zzz-no-such-term"})
	assert.Empty(t, got)
}

func TestFilter_UnknownCategoryReturnsEmpty(t *testing.T) {
	got := Filter(testProducts(), Options{Category: "missing"})
	assert.Empty(t, got)
}

func TestFilter_PriceSortsAreMonotoneAndStable(t *testing.T) {
	low := Filter(testProducts(), Options{Sort: SortPriceLow})
	for i := 1; i < len(low); i++ {
		assert.LessOrEqual(t, low[i-1].Price, low[i].Price)
	}
	// p1 and p3 share a price; stability keeps p1 first.
	assert.Equal(t, []string{"p2", "p1", "p3", "p4"}, ids(low))

	high := Filter(testProducts(), Options{Sort: SortPriceHigh})
	for i := 1; i < len(high); i++ {
		assert.GreaterOrEqual(t, high[i-1].Price, high[i].Price)
	}
	assert.Equal(t, []string{"p4", "p1", "p3", "p2"}, ids(high))
}

func TestFilter_NewestSortsByCreationDescending(t *testing.T) {
	got := Filter(testProducts(), Options{Sort: SortNewest})
	assert.Equal(t, []string{"p2", "p3", "p1", "p4"}, ids(got))
}

func TestFilter_RatingSortPutsUnratedLast(t *testing.T) {
	got := Filter(testProducts(), Options{Sort: SortRating})
	assert.Equal(t, []string{"p2", "p1", "p4", "p3"}, ids(got))
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	in := testProducts()
	before := ids(in)
	_ = Filter(in, Options{Sort: SortPriceHigh})
	require.Equal(t, before, ids(in))
}

func TestProduct_DiscountIsDerived(t *testing.T) {
	p := Product{Price: 19.99, OriginalPrice: f64(24.99)}
	assert.True(t, p.IsSale())
	assert.Equal(t, 20, p.DiscountPercent())

	full := Product{Price: 30}
	assert.False(t, full.IsSale())
	assert.Equal(t, 0, full.DiscountPercent())

	// An original price at or below the current price is not a sale.
	odd := Product{Price: 30, OriginalPrice: f64(30)}
	assert.False(t, odd.IsSale())
}
