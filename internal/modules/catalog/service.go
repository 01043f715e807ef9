package catalog

import (
	"context"
	"errors"

	"github.com/amardimiaty/storefront-backend/internal/platform/session"
)

// ErrSuperseded marks a query result that arrived after a newer query
// was already issued. Callers drop such results so the latest query
// always wins.
var ErrSuperseded = errors.New("query superseded by a newer one")

// CategoryDetail is a category along with its resolved top-level
// ancestor, used for breadcrumbs.
type CategoryDetail struct {
	Category Category  `json:"category"`
	Root     *Category `json:"root,omitempty"`
}

// Service defines catalog browsing logic.
type Service interface {
	ListProducts(ctx context.Context, opts Options) ([]Product, error)
	GetProduct(ctx context.Context, slug string) (*Product, error)
	ListCategories(ctx context.Context, topOnly bool) ([]Category, error)
	GetCategory(ctx context.Context, slug string) (*CategoryDetail, error)
	ListReviews(ctx context.Context, productID string) ([]Review, error)
}

type service struct {
	repo Repository
	seqs *session.Registry[*Sequencer]
}

// NewService creates a catalog service over the given repository.
// seqs holds one search Sequencer per session, so overlapping searches
// only supersede each other within the same session.
func NewService(repo Repository, seqs *session.Registry[*Sequencer]) Service {
	return &service{repo: repo, seqs: seqs}
}

// ListProducts runs the catalog query. Searches are sequenced per
// session: if the same session issued a newer search while this one was
// in flight, the stale result is discarded and ErrSuperseded is
// returned. Other sessions' searches never interfere.
func (s *service) ListProducts(ctx context.Context, opts Options) ([]Product, error) {
	if opts.Search == "" {
		return s.repo.ListProducts(ctx, opts)
	}
	seq := s.seqs.Get(session.IDFromContext(ctx))
	token := seq.Next()
	products, err := s.repo.ListProducts(ctx, opts)
	if err != nil {
		return nil, err
	}
	if !seq.Accept(token) {
		return nil, ErrSuperseded
	}
	return products, nil
}

func (s *service) GetProduct(ctx context.Context, slug string) (*Product, error) {
	return s.repo.GetProductBySlug(ctx, slug)
}

func (s *service) ListCategories(ctx context.Context, topOnly bool) ([]Category, error) {
	return s.repo.ListCategories(ctx, topOnly)
}

func (s *service) GetCategory(ctx context.Context, slug string) (*CategoryDetail, error) {
	c, err := s.repo.GetCategoryBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	detail := &CategoryDetail{Category: *c}
	if c.ParentID != nil {
		all, err := s.repo.ListCategories(ctx, false)
		if err != nil {
			return nil, err
		}
		if root, ok := RootOf(all, c.ID); ok && root.ID != c.ID {
			detail.Root = root
		}
	}
	return detail, nil
}

func (s *service) ListReviews(ctx context.Context, productID string) ([]Review, error) {
	return s.repo.ListReviews(ctx, productID)
}
