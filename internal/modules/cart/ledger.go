package cart

import "fmt"

// Ledger holds the cart rows for one session. Rows are indexed by
// (product, variant) identity for O(1) lookup and kept in insertion
// order for display and serialization. Aggregates are recomputed on
// every read, never cached.
//
// Ledger itself is not goroutine-safe; the owning Store serializes
// access.
type Ledger struct {
	order []lineKey
	lines map[lineKey]*LineItem
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{lines: make(map[lineKey]*LineItem)}
}

// Add merges item into the ledger. If a row with the same (product,
// variant) identity exists, its quantity grows by item.Quantity;
// otherwise the item is appended as a new row. Non-positive quantities
// are rejected.
func (l *Ledger) Add(item LineItem) error {
	if item.ProductID == "" {
		return fmt.Errorf("product_id is required")
	}
	if item.Quantity <= 0 {
		return fmt.Errorf("quantity must be positive, got %d", item.Quantity)
	}
	key := keyOf(item.ProductID, item.VariantID)
	if existing, ok := l.lines[key]; ok {
		existing.Quantity += item.Quantity
		return nil
	}
	row := item
	l.lines[key] = &row
	l.order = append(l.order, key)
	return nil
}

// SetQuantity replaces the quantity of an existing row outright. Values
// below 1 are clamped to 1 inside the store rather than trusted to
// callers, so direct API misuse cannot zero a row; removal is explicit
// via Remove. Setting quantity on an absent row is a no-op and reports
// false.
func (l *Ledger) SetQuantity(productID string, variantID *string, qty int) bool {
	row, ok := l.lines[keyOf(productID, variantID)]
	if !ok {
		return false
	}
	if qty < 1 {
		qty = 1
	}
	row.Quantity = qty
	return true
}

// Remove deletes the row with the exact (product, variant) identity.
// Removing an absent row is a no-op, not an error.
func (l *Ledger) Remove(productID string, variantID *string) {
	key := keyOf(productID, variantID)
	if _, ok := l.lines[key]; !ok {
		return
	}
	delete(l.lines, key)
	for i, k := range l.order {
		if k == key {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
}

// Clear empties the ledger.
func (l *Ledger) Clear() {
	l.order = nil
	l.lines = make(map[lineKey]*LineItem)
}

// Items returns the rows in insertion order.
func (l *Ledger) Items() []LineItem {
	out := make([]LineItem, 0, len(l.order))
	for _, key := range l.order {
		out = append(out, *l.lines[key])
	}
	return out
}

// TotalItems is the summed quantity across all rows.
func (l *Ledger) TotalItems() int {
	total := 0
	for _, row := range l.lines {
		total += row.Quantity
	}
	return total
}

// Subtotal is the summed extended price across all rows.
func (l *Ledger) Subtotal() float64 {
	var total float64
	for _, row := range l.lines {
		total += row.LineTotal()
	}
	return total
}

// Len is the number of distinct rows.
func (l *Ledger) Len() int { return len(l.lines) }

// Summary builds the client-facing view with derived aggregates.
func (l *Ledger) Summary() Summary {
	return Summary{
		Items:      l.Items(),
		TotalItems: l.TotalItems(),
		Subtotal:   l.Subtotal(),
	}
}

// restore replaces the ledger contents from serialized rows, merging
// through Add so duplicate keys in damaged input still aggregate and
// invalid rows are skipped rather than trusted.
func (l *Ledger) restore(items []LineItem) {
	l.Clear()
	for _, item := range items {
		_ = l.Add(item)
	}
}
