package wishlist

// Item is a product saved to the wishlist, with enough display data
// snapshotted to render a card without re-querying the catalog.
type Item struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image,omitempty"`
	Category  string  `json:"category,omitempty"`
}

// Set holds one session's wishlist with set semantics: membership is
// keyed by product identity, re-adding is a no-op, and removal of an
// absent identity changes nothing. Items keep insertion order for
// display. Not goroutine-safe; the owning Store serializes access.
type Set struct {
	order []string
	items map[string]Item
}

// NewSet returns an empty wishlist.
func NewSet() *Set {
	return &Set{items: make(map[string]Item)}
}

// Add inserts item unless its identity is already present. Reports
// whether the set changed.
func (s *Set) Add(item Item) bool {
	if item.ProductID == "" {
		return false
	}
	if _, ok := s.items[item.ProductID]; ok {
		return false
	}
	s.items[item.ProductID] = item
	s.order = append(s.order, item.ProductID)
	return true
}

// Remove deletes by identity. Absent identities are a no-op.
func (s *Set) Remove(productID string) bool {
	if _, ok := s.items[productID]; !ok {
		return false
	}
	delete(s.items, productID)
	for i, id := range s.order {
		if id == productID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// Has reports membership in O(1).
func (s *Set) Has(productID string) bool {
	_, ok := s.items[productID]
	return ok
}

// Clear empties the set.
func (s *Set) Clear() {
	s.order = nil
	s.items = make(map[string]Item)
}

// Count is the number of saved items.
func (s *Set) Count() int { return len(s.items) }

// Items returns the saved items in insertion order.
func (s *Set) Items() []Item {
	out := make([]Item, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.items[id])
	}
	return out
}

// restore replaces the contents from serialized items, deduplicating
// through Add so damaged input cannot violate set semantics.
func (s *Set) restore(items []Item) {
	s.Clear()
	for _, item := range items {
		s.Add(item)
	}
}
