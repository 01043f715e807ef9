package cart

// LineItem is one cart row: a product+variant combination, the quantity
// held, and the unit price snapshotted when the item was first added.
// The price is deliberately not re-read from the catalog afterwards.
type LineItem struct {
	ProductID string  `json:"product_id"`
	VariantID *string `json:"variant_id,omitempty"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Name      string  `json:"name"`
	Image     string  `json:"image,omitempty"`
}

// LineTotal is the extended price of the row.
func (li LineItem) LineTotal() float64 {
	return li.UnitPrice * float64(li.Quantity)
}

// lineKey identifies a row by (product, variant). A nil variant is a
// distinct identity from an empty-string variant: hasVariant keeps the
// two from colliding.
type lineKey struct {
	productID  string
	variantID  string
	hasVariant bool
}

func keyOf(productID string, variantID *string) lineKey {
	k := lineKey{productID: productID}
	if variantID != nil {
		k.variantID = *variantID
		k.hasVariant = true
	}
	return k
}

// Summary is the cart state returned to clients, with the derived
// aggregates computed at read time.
type Summary struct {
	Items      []LineItem `json:"items"`
	TotalItems int        `json:"total_items"`
	Subtotal   float64    `json:"subtotal"`
}
