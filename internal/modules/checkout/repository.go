package checkout

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// ErrNotFound is returned when a checkout ID is unknown.
var ErrNotFound = errors.New("checkout not found")

// Repository defines checkout persistence.
type Repository interface {
	Create(ctx context.Context, c *Checkout) error
	GetByID(ctx context.Context, id string) (*Checkout, error)
	Update(ctx context.Context, c *Checkout) error
}

// MemoryRepository holds checkouts in memory for the simulated backend.
type MemoryRepository struct {
	mu        sync.RWMutex
	checkouts map[string]*Checkout
}

// NewMemoryRepository returns an empty repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{checkouts: make(map[string]*Checkout)}
}

func (r *MemoryRepository) Create(_ context.Context, c *Checkout) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *c
	r.checkouts[c.ID.String()] = &cp
	return nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id string) (*Checkout, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.checkouts[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	cp := *c
	return &cp, nil
}

func (r *MemoryRepository) Update(_ context.Context, c *Checkout) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.checkouts[c.ID.String()]; !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, c.ID)
	}
	cp := *c
	cp.UpdatedAt = time.Now().UTC()
	r.checkouts[c.ID.String()] = &cp
	return nil
}
