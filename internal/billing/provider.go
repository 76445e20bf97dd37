package billing

import (
	"context"

	"github.com/vitacoach/server/internal/storage"
)

// Result is the outcome of a billing operation. RedirectURL, when set,
// is where the client must send the user to complete payment.
type Result struct {
	Success     bool   `json:"success"`
	RedirectURL string `json:"redirect_url,omitempty"`
}

// Provider abstracts the payment backend behind upgrade and cancel.
type Provider interface {
	StartUpgrade(ctx context.Context, plan storage.Plan) (Result, error)
	CancelSubscription(ctx context.Context) (Result, error)
}
