package subscriptions

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/vitacoach/server/internal/billing"
	"github.com/vitacoach/server/internal/simulate"
	"github.com/vitacoach/server/internal/storage"
)

var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrNotFound       = errors.New("feature not found")
	ErrPaymentFailed  = errors.New("payment provider failed")
)

// Service owns plan upgrades and premium feature gating. The stored
// subscription tier never changes here: a plan switch only lands after
// the payment redirect completes, which is outside this mock.
type Service struct {
	features storage.FeaturesStorage
	users    storage.UserStorage
	payments billing.Provider
	delay    simulate.Delayer
}

func NewService(features storage.FeaturesStorage, users storage.UserStorage, payments billing.Provider, delay simulate.Delayer) *Service {
	return &Service{
		features: features,
		users:    users,
		payments: payments,
		delay:    delay,
	}
}

// UpgradeSubscription starts a paid upgrade to premium or pro.
func (s *Service) UpgradeSubscription(ctx context.Context, plan storage.Plan) (billing.Result, error) {
	if err := s.delay.Wait(ctx, simulate.LatencyUpgradePlan); err != nil {
		return billing.Result{}, err
	}

	if plan != storage.PlanPremium && plan != storage.PlanPro {
		return billing.Result{}, fmt.Errorf("%w: upgrade target must be premium or pro", ErrInvalidRequest)
	}

	res, err := s.payments.StartUpgrade(ctx, plan)
	if err != nil {
		return billing.Result{}, fmt.Errorf("%w: %v", ErrPaymentFailed, err)
	}

	return res, nil
}

// CancelSubscription asks the payment backend to stop the renewal.
func (s *Service) CancelSubscription(ctx context.Context) (billing.Result, error) {
	if err := s.delay.Wait(ctx, simulate.LatencyCancelPlan); err != nil {
		return billing.Result{}, err
	}

	res, err := s.payments.CancelSubscription(ctx)
	if err != nil {
		return billing.Result{}, fmt.Errorf("%w: %v", ErrPaymentFailed, err)
	}

	return res, nil
}

// ListFeatures returns the premium feature catalog.
func (s *Service) ListFeatures(ctx context.Context) ([]storage.PremiumFeature, error) {
	if err := s.delay.Wait(ctx, simulate.LatencyListFeatures); err != nil {
		return nil, err
	}

	return s.features.ListPremiumFeatures(ctx)
}

// CheckFeatureAccess applies the free < premium < pro ordering to the
// current user's plan.
func (s *Service) CheckFeatureAccess(ctx context.Context, featureID uuid.UUID) (bool, error) {
	if err := s.delay.Wait(ctx, simulate.LatencyListFeatures); err != nil {
		return false, err
	}

	features, err := s.features.ListPremiumFeatures(ctx)
	if err != nil {
		return false, err
	}

	var feature *storage.PremiumFeature
	for i := range features {
		if features[i].ID == featureID {
			feature = &features[i]
			break
		}
	}
	if feature == nil {
		return false, fmt.Errorf("%w: %s", ErrNotFound, featureID)
	}

	user, err := s.users.GetUser(ctx)
	if err != nil {
		return false, err
	}

	return user.Subscription.Allows(feature.RequiredPlan), nil
}
