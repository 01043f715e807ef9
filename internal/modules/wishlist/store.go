package wishlist

import (
	"context"
	"fmt"
	"sync"

	"github.com/amardimiaty/storefront-backend/internal/platform/kv"
	"github.com/amardimiaty/storefront-backend/internal/platform/pubsub"
)

// ChangeEvent is published on the wishlist bus after every mutation.
type ChangeEvent struct {
	SessionID string
	Count     int
}

// Store binds a session's Set to the persistence adapter and the
// wishlist-changed bus, with the same discipline as the cart: hydrate
// once on first touch, never write during hydration, write the full
// state after every mutation.
type Store struct {
	mu        sync.Mutex
	set       *Set
	persist   kv.Store
	bus       *pubsub.Bus[ChangeEvent]
	sessionID string
	hydrated  bool
}

// NewStore creates an unhydrated store for one session.
func NewStore(persist kv.Store, bus *pubsub.Bus[ChangeEvent], sessionID string) *Store {
	return &Store{
		set:       NewSet(),
		persist:   persist,
		bus:       bus,
		sessionID: sessionID,
	}
}

func (s *Store) key() string {
	return fmt.Sprintf("wishlist:%s", s.sessionID)
}

func (s *Store) hydrate(ctx context.Context) error {
	if s.hydrated {
		return nil
	}
	var items []Item
	ok, err := kv.LoadJSON(ctx, s.persist, s.key(), &items)
	if err != nil {
		return err
	}
	if ok {
		s.set.restore(items)
	}
	s.hydrated = true
	return nil
}

func (s *Store) save(ctx context.Context) error {
	if err := kv.SaveJSON(ctx, s.persist, s.key(), s.set.Items()); err != nil {
		return err
	}
	s.bus.Publish(ChangeEvent{SessionID: s.sessionID, Count: s.set.Count()})
	return nil
}

// Items returns the saved items, hydrating on first use.
func (s *Store) Items(ctx context.Context) ([]Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.hydrate(ctx); err != nil {
		return nil, err
	}
	return s.set.Items(), nil
}

// Has reports membership.
func (s *Store) Has(ctx context.Context, productID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.hydrate(ctx); err != nil {
		return false, err
	}
	return s.set.Has(productID), nil
}

// Add saves an item. Adding an already-saved identity is a no-op and
// skips the persistence write.
func (s *Store) Add(ctx context.Context, item Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.hydrate(ctx); err != nil {
		return err
	}
	if item.ProductID == "" {
		return fmt.Errorf("product_id is required")
	}
	if !s.set.Add(item) {
		return nil
	}
	return s.save(ctx)
}

// Remove drops an identity. Removing an absent one is a no-op and skips
// the persistence write.
func (s *Store) Remove(ctx context.Context, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.hydrate(ctx); err != nil {
		return err
	}
	if !s.set.Remove(productID) {
		return nil
	}
	return s.save(ctx)
}

// Clear empties the wishlist and persists.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.hydrate(ctx); err != nil {
		return err
	}
	s.set.Clear()
	return s.save(ctx)
}
