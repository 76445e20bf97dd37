package workouts

import "github.com/vitacoach/server/internal/storage"

// AddWorkoutRequest is the payload for logging a workout session.
type AddWorkoutRequest struct {
	Name           string              `json:"name"`
	Type           storage.WorkoutType `json:"type"`
	Exercises      []storage.Exercise  `json:"exercises"`
	DurationMin    int                 `json:"duration_min"`
	CaloriesBurned int                 `json:"calories_burned"`
	Difficulty     storage.Difficulty  `json:"difficulty"`
	Notes          string              `json:"notes,omitempty"`
}

// GeneratePlanRequest asks for a tailored plan. DaysPerWeek must be
// within 1..7 and at least one goal is required.
type GeneratePlanRequest struct {
	Goals       []string           `json:"goals"`
	Difficulty  storage.Difficulty `json:"difficulty"`
	DaysPerWeek int                `json:"days_per_week"`
}

type WorkoutsResponse struct {
	Workouts []storage.Workout `json:"workouts"`
}

type WorkoutPlansResponse struct {
	Plans []storage.WorkoutPlan `json:"plans"`
}

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
