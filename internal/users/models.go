package users

import "github.com/vitacoach/server/internal/storage"

// UpdateUserRequest carries a partial profile update. Nil fields are left
// untouched.
type UpdateUserRequest struct {
	Name          *string                `json:"name,omitempty"`
	Email         *string                `json:"email,omitempty"`
	Age           *int                   `json:"age,omitempty"`
	HeightCm      *float64               `json:"height_cm,omitempty"`
	WeightKg      *float64               `json:"weight_kg,omitempty"`
	ActivityLevel *storage.ActivityLevel `json:"activity_level,omitempty"`
	Goals         []storage.HealthGoal   `json:"goals,omitempty"`
}

type UploadAvatarResponse struct {
	AvatarURL string `json:"avatar_url"`
}

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
