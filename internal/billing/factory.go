package billing

import (
	"fmt"
	"strings"

	appcfg "github.com/vitacoach/server/internal/config"
)

// NewProvider selects the payment backend by mode mock|stripe.
func NewProvider(mode string, stripeCfg appcfg.StripeConfig) (Provider, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", appcfg.BillingModeMock:
		return NewMockProvider(), nil
	case appcfg.BillingModeStripe:
		return NewStripeProvider(stripeCfg)
	default:
		return nil, fmt.Errorf("unsupported billing mode: %s", mode)
	}
}
