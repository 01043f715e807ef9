package catalog

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"time"
)

// Latency configures the simulated backend delay applied to every
// repository call. Zero values disable the delay (used by tests).
type Latency struct {
	Base   time.Duration
	Jitter time.Duration
}

// MemoryRepository serves the catalog from seeded in-memory fixtures,
// standing in for a commerce backend. Calls sleep for a configurable
// base plus random jitter, honoring context cancellation, so callers
// exercise the same timing they would against a remote service.
type MemoryRepository struct {
	products   []Product
	categories []Category
	reviews    map[string][]Review
	latency    Latency

	mu  sync.Mutex
	rnd *rand.Rand
}

// NewMemoryRepository builds a repository over the given fixtures.
func NewMemoryRepository(products []Product, categories []Category, reviews []Review, latency Latency) *MemoryRepository {
	byProduct := make(map[string][]Review)
	for _, rv := range reviews {
		byProduct[rv.ProductID] = append(byProduct[rv.ProductID], rv)
	}
	for _, list := range byProduct {
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].CreatedAt.After(list[j].CreatedAt)
		})
	}
	return &MemoryRepository{
		products:   products,
		categories: categories,
		reviews:    byProduct,
		latency:    latency,
		rnd:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// delay simulates backend latency, returning early if ctx is cancelled.
func (r *MemoryRepository) delay(ctx context.Context) error {
	d := r.latency.Base
	if r.latency.Jitter > 0 {
		r.mu.Lock()
		d += time.Duration(r.rnd.Int63n(int64(r.latency.Jitter)))
		r.mu.Unlock()
	}
	if d <= 0 {
		return nil
	}
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *MemoryRepository) ListProducts(ctx context.Context, opts Options) ([]Product, error) {
	if err := r.delay(ctx); err != nil {
		return nil, err
	}
	return Filter(r.products, opts), nil
}

func (r *MemoryRepository) GetProductBySlug(ctx context.Context, slug string) (*Product, error) {
	if err := r.delay(ctx); err != nil {
		return nil, err
	}
	for i := range r.products {
		if r.products[i].Slug == slug {
			p := r.products[i]
			return &p, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrProductNotFound, slug)
}

func (r *MemoryRepository) ListCategories(ctx context.Context, topOnly bool) ([]Category, error) {
	if err := r.delay(ctx); err != nil {
		return nil, err
	}
	if !topOnly {
		out := make([]Category, len(r.categories))
		copy(out, r.categories)
		return out, nil
	}
	var out []Category
	for _, c := range r.categories {
		if c.ParentID == nil {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *MemoryRepository) GetCategoryBySlug(ctx context.Context, slug string) (*Category, error) {
	if err := r.delay(ctx); err != nil {
		return nil, err
	}
	for i := range r.categories {
		if r.categories[i].Slug == slug {
			c := r.categories[i]
			return &c, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrCategoryNotFound, slug)
}

func (r *MemoryRepository) ListReviews(ctx context.Context, productID string) ([]Review, error) {
	if err := r.delay(ctx); err != nil {
		return nil, err
	}
	found := false
	for i := range r.products {
		if r.products[i].ID == productID {
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("%w: %q", ErrProductNotFound, productID)
	}
	out := make([]Review, len(r.reviews[productID]))
	copy(out, r.reviews[productID])
	return out, nil
}

// RootOf walks the parent chain of the category with the given ID and
// returns its top-level ancestor. The walk carries a visited set so a
// cyclic parent reference in bad data terminates at the last unvisited
// ancestor instead of looping.
func RootOf(categories []Category, id string) (*Category, bool) {
	byID := make(map[string]Category, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}
	cur, ok := byID[id]
	if !ok {
		return nil, false
	}
	visited := map[string]bool{cur.ID: true}
	for cur.ParentID != nil {
		parent, ok := byID[*cur.ParentID]
		if !ok || visited[parent.ID] {
			break
		}
		visited[parent.ID] = true
		cur = parent
	}
	return &cur, true
}
