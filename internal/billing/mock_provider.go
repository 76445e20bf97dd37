package billing

import (
	"context"

	"github.com/vitacoach/server/internal/storage"
)

// MockProvider simulates a payment backend that always succeeds.
type MockProvider struct{}

func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

func (p *MockProvider) StartUpgrade(ctx context.Context, plan storage.Plan) (Result, error) {
	_ = ctx
	_ = plan

	return Result{
		Success:     true,
		RedirectURL: "/dashboard?upgraded=true",
	}, nil
}

func (p *MockProvider) CancelSubscription(ctx context.Context) (Result, error) {
	_ = ctx

	return Result{Success: true}, nil
}
