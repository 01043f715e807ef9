package checkout

import (
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle state of a checkout.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusCompleted Status = "COMPLETED"
)

// Checkout captures the cart at the moment the shopper heads to
// payment. Item prices are snapshots; completing the checkout never
// re-reads the catalog.
type Checkout struct {
	ID           uuid.UUID `json:"id"`
	Number       string    `json:"number"`
	Status       Status    `json:"status"`
	Items        []Item    `json:"items"`
	Subtotal     float64   `json:"subtotal"`
	Currency     string    `json:"currency"`
	Confirmation string    `json:"confirmation,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Item is a single checkout line.
type Item struct {
	ProductID string  `json:"product_id"`
	VariantID *string `json:"variant_id,omitempty"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	LineTotal float64 `json:"line_total"`
}

// CreateRequest is the payload for starting a checkout.
type CreateRequest struct {
	Items []RequestItem `json:"items"`
}

// RequestItem describes one cart line being checked out.
type RequestItem struct {
	ProductID string  `json:"product_id"`
	VariantID *string `json:"variant_id,omitempty"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// PaymentRequest is the payload for completing a checkout. The card
// fields are validated for shape only; no charge ever happens.
type PaymentRequest struct {
	Method     string `json:"method" validate:"required,oneof=card paypal"`
	Email      string `json:"email" validate:"required,email"`
	CardNumber string `json:"card_number,omitempty" validate:"required_if=Method card,omitempty,numeric,min=12,max=19"`
	NameOnCard string `json:"name_on_card,omitempty" validate:"required_if=Method card"`
}
