package catalog

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amardimiaty/storefront-backend/internal/platform/session"
)

func newTestCatalogService(repo Repository) Service {
	seqs := session.NewRegistry(time.Hour, func(string) *Sequencer {
		return &Sequencer{}
	})
	return NewService(repo, seqs)
}

func TestSequencer_LastWriteWins(t *testing.T) {
	var seq Sequencer

	first := seq.Next()
	second := seq.Next()

	// The older query completes after the newer one was issued.
	assert.False(t, seq.Accept(first))
	assert.True(t, seq.Accept(second))
}

// blockingRepo parks the query for one specific search term until
// released, so tests can overlap two in-flight queries deterministically.
type blockingRepo struct {
	*MemoryRepository
	blockTerm string
	parked    chan struct{}
	release   chan struct{}
	once      sync.Once
}

func (r *blockingRepo) ListProducts(ctx context.Context, opts Options) ([]Product, error) {
	if opts.Search == r.blockTerm {
		r.once.Do(func() { close(r.parked) })
		<-r.release
	}
	return r.MemoryRepository.ListProducts(ctx, opts)
}

func TestService_StaleSearchResultIsDropped(t *testing.T) {
	repo := &blockingRepo{
		MemoryRepository: newTestRepo(),
		blockTerm:        "tee",
		parked:           make(chan struct{}),
		release:          make(chan struct{}),
	}
	svc := newTestCatalogService(repo)
	ctx := session.WithID(context.Background(), "shopper-a")

	staleErr := make(chan error, 1)
	go func() {
		_, err := svc.ListProducts(ctx, Options{Search: "tee"})
		staleErr <- err
	}()
	<-repo.parked

	// The same session issues a newer search while the first is parked,
	// then the first is released.
	products, err := svc.ListProducts(ctx, Options{Search: "mug"})
	require.NoError(t, err)
	assert.NotEmpty(t, products)

	close(repo.release)
	assert.ErrorIs(t, <-staleErr, ErrSuperseded)
}

func TestService_SearchesInOtherSessionsDoNotSupersede(t *testing.T) {
	repo := &blockingRepo{
		MemoryRepository: newTestRepo(),
		blockTerm:        "tee",
		parked:           make(chan struct{}),
		release:          make(chan struct{}),
	}
	svc := newTestCatalogService(repo)

	// Shopper A's search parks mid-flight.
	resultA := make(chan error, 1)
	go func() {
		_, err := svc.ListProducts(session.WithID(context.Background(), "shopper-a"), Options{Search: "tee"})
		resultA <- err
	}()
	<-repo.parked

	// Shopper B searches for something unrelated while A is in flight.
	products, err := svc.ListProducts(session.WithID(context.Background(), "shopper-b"), Options{Search: "mug"})
	require.NoError(t, err)
	assert.NotEmpty(t, products)

	// A's search is still the latest within its own session.
	close(repo.release)
	require.NoError(t, <-resultA, "another session's search must not supersede this one")
}

func TestService_NonSearchQueriesAreNotSequenced(t *testing.T) {
	svc := newTestCatalogService(newTestRepo())

	// Plain listing never reports supersession regardless of ordering.
	for i := 0; i < 3; i++ {
		products, err := svc.ListProducts(context.Background(), Options{Featured: true})
		require.NoError(t, err)
		for _, p := range products {
			assert.True(t, p.IsFeatured)
		}
	}
}

func TestService_GetCategoryResolvesRoot(t *testing.T) {
	svc := newTestCatalogService(newTestRepo())

	detail, err := svc.GetCategory(context.Background(), "t-shirts")
	require.NoError(t, err)
	assert.Equal(t, "cat-tshirts", detail.Category.ID)
	require.NotNil(t, detail.Root)
	assert.Equal(t, "cat-apparel", detail.Root.ID)

	detail, err = svc.GetCategory(context.Background(), "mugs")
	require.NoError(t, err)
	assert.Nil(t, detail.Root)
}
