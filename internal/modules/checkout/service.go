package checkout

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Service defines the simulated checkout flow.
type Service interface {
	// Create snapshots the cart lines into a pending checkout.
	Create(ctx context.Context, req CreateRequest) (*Checkout, error)

	// Get retrieves a checkout by UUID.
	Get(ctx context.Context, id string) (*Checkout, error)

	// Complete validates the payment payload, runs it through the
	// gateway and marks the checkout completed.
	Complete(ctx context.Context, id string, payment PaymentRequest) (*Checkout, error)
}

type service struct {
	repo     Repository
	gateway  Gateway
	validate *validator.Validate
}

// NewService creates a checkout service.
func NewService(repo Repository, gateway Gateway) Service {
	return &service{
		repo:     repo,
		gateway:  gateway,
		validate: validator.New(),
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Checkout, error) {
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("checkout must contain at least one item")
	}

	var items []Item
	var subtotal float64
	for _, ri := range req.Items {
		if ri.ProductID == "" {
			return nil, fmt.Errorf("product_id is required")
		}
		if ri.Quantity <= 0 {
			return nil, fmt.Errorf("quantity must be > 0 for product %s", ri.ProductID)
		}
		if ri.UnitPrice < 0 {
			return nil, fmt.Errorf("unit_price must be >= 0 for product %s", ri.ProductID)
		}
		lineTotal := ri.UnitPrice * float64(ri.Quantity)
		subtotal += lineTotal
		items = append(items, Item{
			ProductID: ri.ProductID,
			VariantID: ri.VariantID,
			Name:      ri.Name,
			Quantity:  ri.Quantity,
			UnitPrice: ri.UnitPrice,
			LineTotal: round2(lineTotal),
		})
	}

	now := time.Now().UTC()
	c := &Checkout{
		ID:        uuid.New(),
		Number:    generateCheckoutNumber(),
		Status:    StatusPending,
		Items:     items,
		Subtotal:  round2(subtotal),
		Currency:  "USD",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to persist checkout: %w", err)
	}
	return c, nil
}

func (s *service) Get(ctx context.Context, id string) (*Checkout, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Complete(ctx context.Context, id string, payment PaymentRequest) (*Checkout, error) {
	if err := s.validate.Struct(payment); err != nil {
		return nil, fmt.Errorf("invalid payment details: %w", err)
	}

	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.Status == StatusCompleted {
		return nil, fmt.Errorf("checkout %s is already completed", c.Number)
	}

	ref, err := s.gateway.Authorize(ctx, c.Subtotal, payment)
	if err != nil {
		return nil, fmt.Errorf("payment failed: %w", err)
	}

	c.Status = StatusCompleted
	c.Confirmation = ref
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// generateCheckoutNumber creates a human-readable number: CHK-YYYYMMDD-XXXX.
func generateCheckoutNumber() string {
	date := time.Now().UTC().Format("20060102")
	suffix := strings.ToUpper(uuid.New().String()[:4])
	return fmt.Sprintf("CHK-%s-%s", date, suffix)
}

func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}
