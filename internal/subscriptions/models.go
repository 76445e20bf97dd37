package subscriptions

import (
	"github.com/vitacoach/server/internal/storage"
)

type UpgradeRequest struct {
	Plan storage.Plan `json:"plan"`
}

type FeaturesResponse struct {
	Features []storage.PremiumFeature `json:"features"`
}

// AccessResponse reports whether the current plan unlocks a feature.
type AccessResponse struct {
	FeatureID string `json:"feature_id"`
	HasAccess bool   `json:"has_access"`
}

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
