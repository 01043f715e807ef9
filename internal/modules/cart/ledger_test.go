package cart

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(v string) *string { return &v }

func TestLedger_AddAggregatesByCompositeKey(t *testing.T) {
	l := NewLedger()

	require.NoError(t, l.Add(LineItem{ProductID: "p1", VariantID: strPtr("red"), Quantity: 2, UnitPrice: 10}))
	require.NoError(t, l.Add(LineItem{ProductID: "p1", VariantID: strPtr("red"), Quantity: 3, UnitPrice: 10}))

	require.Equal(t, 1, l.Len(), "same key must merge into one row")
	items := l.Items()
	assert.Equal(t, 5, items[0].Quantity)
}

func TestLedger_NilVariantIsDistinctFromEmptyString(t *testing.T) {
	l := NewLedger()

	require.NoError(t, l.Add(LineItem{ProductID: "p1", Quantity: 1, UnitPrice: 10}))
	require.NoError(t, l.Add(LineItem{ProductID: "p1", VariantID: strPtr(""), Quantity: 1, UnitPrice: 10}))

	assert.Equal(t, 2, l.Len(), "nil variant and empty-string variant are different identities")

	// And nil matches nil on a second add.
	require.NoError(t, l.Add(LineItem{ProductID: "p1", Quantity: 4, UnitPrice: 10}))
	assert.Equal(t, 2, l.Len())
	assert.Equal(t, 5, l.Items()[0].Quantity)
}

func TestLedger_AddRejectsNonPositiveQuantity(t *testing.T) {
	l := NewLedger()

	assert.Error(t, l.Add(LineItem{ProductID: "p1", Quantity: 0}))
	assert.Error(t, l.Add(LineItem{ProductID: "p1", Quantity: -2}))
	assert.Error(t, l.Add(LineItem{Quantity: 1}))
	assert.Equal(t, 0, l.Len())
}

func TestLedger_SetQuantityReplacesAndClampsToOne(t *testing.T) {
	l := NewLedger()
	require.NoError(t, l.Add(LineItem{ProductID: "p1", Quantity: 4, UnitPrice: 10}))

	// Replacement, not addition.
	require.True(t, l.SetQuantity("p1", nil, 2))
	assert.Equal(t, 2, l.Items()[0].Quantity)

	// Floor of 1 is enforced by the store, not the caller.
	require.True(t, l.SetQuantity("p1", nil, 0))
	assert.Equal(t, 1, l.Items()[0].Quantity)
	require.True(t, l.SetQuantity("p1", nil, -5))
	assert.Equal(t, 1, l.Items()[0].Quantity)

	// Unknown row reports false.
	assert.False(t, l.SetQuantity("ghost", nil, 3))
}

func TestLedger_RemoveMissingKeyIsNoOp(t *testing.T) {
	l := NewLedger()
	require.NoError(t, l.Add(LineItem{ProductID: "p1", Quantity: 1, UnitPrice: 10}))

	l.Remove("ghost", nil)
	l.Remove("p1", strPtr("red")) // wrong variant, exact match required
	assert.Equal(t, 1, l.Len())

	l.Remove("p1", nil)
	assert.Equal(t, 0, l.Len())
}

func TestLedger_SubtotalAndTotalItems(t *testing.T) {
	l := NewLedger()
	require.NoError(t, l.Add(LineItem{ProductID: "p1", Quantity: 2, UnitPrice: 10}))
	require.NoError(t, l.Add(LineItem{ProductID: "p2", Quantity: 1, UnitPrice: 5}))

	assert.Equal(t, 25.0, l.Subtotal())
	assert.Equal(t, 3, l.TotalItems())

	// Recomputed after mutation, never cached stale.
	require.True(t, l.SetQuantity("p1", nil, 1))
	assert.Equal(t, 15.0, l.Subtotal())
	assert.Equal(t, 2, l.TotalItems())
}

func TestLedger_ItemsPreserveInsertionOrder(t *testing.T) {
	l := NewLedger()
	require.NoError(t, l.Add(LineItem{ProductID: "p1", Quantity: 1, UnitPrice: 1}))
	require.NoError(t, l.Add(LineItem{ProductID: "p2", Quantity: 1, UnitPrice: 1}))
	require.NoError(t, l.Add(LineItem{ProductID: "p3", Quantity: 1, UnitPrice: 1}))
	l.Remove("p2", nil)
	require.NoError(t, l.Add(LineItem{ProductID: "p4", Quantity: 1, UnitPrice: 1}))

	var got []string
	for _, item := range l.Items() {
		got = append(got, item.ProductID)
	}
	assert.Equal(t, []string{"p1", "p3", "p4"}, got)
}

func TestLedger_SerializedRoundTripPreservesStateAndSubtotal(t *testing.T) {
	l := NewLedger()
	require.NoError(t, l.Add(LineItem{ProductID: "p1", VariantID: strPtr("xl"), Quantity: 2, UnitPrice: 19.99, Name: "Tee"}))
	require.NoError(t, l.Add(LineItem{ProductID: "p2", Quantity: 1, UnitPrice: 54, Name: "Hoodie"}))

	data, err := json.Marshal(l.Items())
	require.NoError(t, err)

	var items []LineItem
	require.NoError(t, json.Unmarshal(data, &items))

	fresh := NewLedger()
	fresh.restore(items)

	assert.Equal(t, l.Items(), fresh.Items())
	assert.Equal(t, l.Subtotal(), fresh.Subtotal())
	assert.Equal(t, l.TotalItems(), fresh.TotalItems())
}

func TestLedger_ClearEmptiesEverything(t *testing.T) {
	l := NewLedger()
	require.NoError(t, l.Add(LineItem{ProductID: "p1", Quantity: 2, UnitPrice: 10}))

	l.Clear()
	assert.Equal(t, 0, l.Len())
	assert.Equal(t, 0.0, l.Subtotal())
	assert.Empty(t, l.Items())
}
