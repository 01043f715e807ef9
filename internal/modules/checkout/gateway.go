package checkout

import (
	"context"
	"fmt"
	"math/rand"
	"time"
)

// Gateway is the seam where a real payment provider would plug in.
type Gateway interface {
	// Authorize charges the payment method and returns a provider
	// confirmation reference.
	Authorize(ctx context.Context, amount float64, req PaymentRequest) (string, error)
}

// stubGateway approves every payment after a simulated provider
// round-trip. No charge happens anywhere.
type stubGateway struct {
	delay time.Duration
}

// NewStubGateway returns the always-approving demo gateway.
func NewStubGateway(delay time.Duration) Gateway {
	return &stubGateway{delay: delay}
}

func (g *stubGateway) Authorize(ctx context.Context, amount float64, _ PaymentRequest) (string, error) {
	if amount <= 0 {
		return "", fmt.Errorf("amount must be greater than 0")
	}
	if g.delay > 0 {
		select {
		case <-time.After(g.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return fmt.Sprintf("PAY-%s-%04d", time.Now().UTC().Format("20060102150405"), rand.Intn(10000)), nil
}
