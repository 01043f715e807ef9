package cart

import (
	"context"
	"fmt"
	"sync"

	"github.com/amardimiaty/storefront-backend/internal/platform/kv"
	"github.com/amardimiaty/storefront-backend/internal/platform/pubsub"
)

// ChangeEvent is published on the cart bus after every mutation.
type ChangeEvent struct {
	SessionID  string
	TotalItems int
	Subtotal   float64
}

// Store binds a session's Ledger to the persistence adapter and the
// cart-changed bus. Every mutation is followed by a full-state write
// under the session's key; hydration happens once, before the first
// write, so an empty read can never overwrite saved state.
type Store struct {
	mu        sync.Mutex
	ledger    *Ledger
	persist   kv.Store
	bus       *pubsub.Bus[ChangeEvent]
	sessionID string
	hydrated  bool
}

// NewStore creates an unhydrated store for one session.
func NewStore(persist kv.Store, bus *pubsub.Bus[ChangeEvent], sessionID string) *Store {
	return &Store{
		ledger:    NewLedger(),
		persist:   persist,
		bus:       bus,
		sessionID: sessionID,
	}
}

func (s *Store) key() string {
	return fmt.Sprintf("cart:%s", s.sessionID)
}

// hydrate loads saved state on first touch. Corrupt or missing payloads
// leave the ledger empty. The load itself never triggers a save.
func (s *Store) hydrate(ctx context.Context) error {
	if s.hydrated {
		return nil
	}
	var items []LineItem
	ok, err := kv.LoadJSON(ctx, s.persist, s.key(), &items)
	if err != nil {
		return err
	}
	if ok {
		s.ledger.restore(items)
	}
	s.hydrated = true
	return nil
}

// save writes the full ledger state and broadcasts the change.
func (s *Store) save(ctx context.Context) error {
	if err := kv.SaveJSON(ctx, s.persist, s.key(), s.ledger.Items()); err != nil {
		return err
	}
	s.bus.Publish(ChangeEvent{
		SessionID:  s.sessionID,
		TotalItems: s.ledger.TotalItems(),
		Subtotal:   s.ledger.Subtotal(),
	})
	return nil
}

// Summary returns the current cart view, hydrating on first use.
func (s *Store) Summary(ctx context.Context) (Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.hydrate(ctx); err != nil {
		return Summary{}, err
	}
	return s.ledger.Summary(), nil
}

// Add merges an item and persists.
func (s *Store) Add(ctx context.Context, item LineItem) (Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.hydrate(ctx); err != nil {
		return Summary{}, err
	}
	if err := s.ledger.Add(item); err != nil {
		return Summary{}, err
	}
	if err := s.save(ctx); err != nil {
		return Summary{}, err
	}
	return s.ledger.Summary(), nil
}

// SetQuantity updates a row's quantity (clamped to a floor of 1) and
// persists. An unknown row yields an error rather than silent creation.
func (s *Store) SetQuantity(ctx context.Context, productID string, variantID *string, qty int) (Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.hydrate(ctx); err != nil {
		return Summary{}, err
	}
	if !s.ledger.SetQuantity(productID, variantID, qty) {
		return Summary{}, fmt.Errorf("no cart line for product %q", productID)
	}
	if err := s.save(ctx); err != nil {
		return Summary{}, err
	}
	return s.ledger.Summary(), nil
}

// Remove deletes a row if present and persists. Removing an absent row
// still persists the (unchanged) state but is not an error.
func (s *Store) Remove(ctx context.Context, productID string, variantID *string) (Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.hydrate(ctx); err != nil {
		return Summary{}, err
	}
	s.ledger.Remove(productID, variantID)
	if err := s.save(ctx); err != nil {
		return Summary{}, err
	}
	return s.ledger.Summary(), nil
}

// Clear empties the cart and persists.
func (s *Store) Clear(ctx context.Context) (Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.hydrate(ctx); err != nil {
		return Summary{}, err
	}
	s.ledger.Clear()
	if err := s.save(ctx); err != nil {
		return Summary{}, err
	}
	return s.ledger.Summary(), nil
}
