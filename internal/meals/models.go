package meals

import "github.com/vitacoach/server/internal/storage"

// AddMealRequest is the payload for logging a meal. Aggregates are
// derived from Foods server-side, any client-sent totals are ignored.
type AddMealRequest struct {
	Name     string             `json:"name"`
	Type     storage.MealType   `json:"type"`
	Foods    []storage.FoodItem `json:"foods"`
	ImageURL string             `json:"image_url,omitempty"`
	Notes    string             `json:"notes,omitempty"`
}

type MealsResponse struct {
	Meals []storage.Meal `json:"meals"`
}

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
