package storage

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Plan is a subscription tier. Tiers are strictly ordered for feature
// gating: free < premium < pro.
type Plan string

const (
	PlanFree    Plan = "free"
	PlanPremium Plan = "premium"
	PlanPro     Plan = "pro"
)

// Rank returns the position of the plan in the tier order. Unknown plans
// rank below free so a corrupted value never unlocks anything.
func (p Plan) Rank() int {
	switch p {
	case PlanFree:
		return 1
	case PlanPremium:
		return 2
	case PlanPro:
		return 3
	default:
		return 0
	}
}

// Allows reports whether a user on plan p may access a feature that
// requires the given plan.
func (p Plan) Allows(required Plan) bool {
	return p.Rank() >= required.Rank()
}

// Valid reports whether p is one of the known tiers.
func (p Plan) Valid() bool {
	return p.Rank() > 0
}

// ActivityLevel is the user's self-reported activity tier.
type ActivityLevel string

const (
	ActivitySedentary        ActivityLevel = "sedentary"
	ActivityLightlyActive    ActivityLevel = "lightly_active"
	ActivityModeratelyActive ActivityLevel = "moderately_active"
	ActivityVeryActive       ActivityLevel = "very_active"
	ActivityExtremelyActive  ActivityLevel = "extremely_active"
)

// Valid reports whether a is one of the known activity levels.
func (a ActivityLevel) Valid() bool {
	switch a {
	case ActivitySedentary, ActivityLightlyActive, ActivityModeratelyActive,
		ActivityVeryActive, ActivityExtremelyActive:
		return true
	}
	return false
}

// GoalType classifies a health goal.
type GoalType string

const (
	GoalWeightLoss    GoalType = "weight_loss"
	GoalWeightGain    GoalType = "weight_gain"
	GoalMuscleGain    GoalType = "muscle_gain"
	GoalEndurance     GoalType = "endurance"
	GoalGeneralHealth GoalType = "general_health"
)

// GoalStatus is the lifecycle state of a goal. Completed is terminal.
type GoalStatus string

const (
	GoalActive    GoalStatus = "active"
	GoalPaused    GoalStatus = "paused"
	GoalCompleted GoalStatus = "completed"
)

// Priority is a three-level urgency marker shared by goals and
// recommendations.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// HealthGoal is a typed target the user works toward.
type HealthGoal struct {
	ID       uuid.UUID  `json:"id"`
	Type     GoalType   `json:"type"`
	Target   float64    `json:"target"`
	Current  float64    `json:"current"`
	Unit     string     `json:"unit"`
	Deadline time.Time  `json:"deadline"`
	Priority Priority   `json:"priority"`
	Status   GoalStatus `json:"status"`
}

// User is the account record: identity, physiology and subscription tier.
type User struct {
	ID            uuid.UUID     `json:"id"`
	Name          string        `json:"name"`
	Email         string        `json:"email"`
	Age           int           `json:"age"`
	HeightCm      float64       `json:"height_cm"`
	WeightKg      float64       `json:"weight_kg"`
	ActivityLevel ActivityLevel `json:"activity_level"`
	Goals         []HealthGoal  `json:"goals"`
	Subscription  Plan          `json:"subscription"`
	JoinDate      time.Time     `json:"join_date"`
	AvatarURL     string        `json:"avatar_url,omitempty"`
}

// MacroNutrients holds macro amounts in grams (sodium in mg).
type MacroNutrients struct {
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
	FiberG   float64 `json:"fiber_g,omitempty"`
	SugarG   float64 `json:"sugar_g,omitempty"`
	SodiumMg float64 `json:"sodium_mg,omitempty"`
}

// Add returns the component-wise sum of two macro sets.
func (m MacroNutrients) Add(o MacroNutrients) MacroNutrients {
	return MacroNutrients{
		ProteinG: m.ProteinG + o.ProteinG,
		CarbsG:   m.CarbsG + o.CarbsG,
		FatG:     m.FatG + o.FatG,
		FiberG:   m.FiberG + o.FiberG,
		SugarG:   m.SugarG + o.SugarG,
		SodiumMg: m.SodiumMg + o.SodiumMg,
	}
}

// MealType is the slot a meal belongs to.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// Valid reports whether t is one of the known meal slots.
func (t MealType) Valid() bool {
	switch t {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	}
	return false
}

// FoodItem is a single food inside a meal. Verified is true for
// catalog-sourced entries and false for AI-inferred ones awaiting
// confirmation.
type FoodItem struct {
	ID       uuid.UUID      `json:"id"`
	Name     string         `json:"name"`
	Quantity float64        `json:"quantity"`
	Unit     string         `json:"unit"`
	Calories float64        `json:"calories"`
	Macros   MacroNutrients `json:"macros"`
	Verified bool           `json:"verified"`
}

// Meal is an immutable logged meal. TotalCalories and Macros are derived
// from Foods at insert time.
type Meal struct {
	ID            uuid.UUID      `json:"id"`
	UserID        uuid.UUID      `json:"user_id"`
	Name          string         `json:"name"`
	Type          MealType       `json:"type"`
	Foods         []FoodItem     `json:"foods"`
	TotalCalories float64        `json:"total_calories"`
	Macros        MacroNutrients `json:"macros"`
	Timestamp     time.Time      `json:"timestamp"`
	ImageURL      string         `json:"image_url,omitempty"`
	Notes         string         `json:"notes,omitempty"`
}

// WorkoutType classifies a workout session.
type WorkoutType string

const (
	WorkoutStrength    WorkoutType = "strength"
	WorkoutCardio      WorkoutType = "cardio"
	WorkoutFlexibility WorkoutType = "flexibility"
	WorkoutSports      WorkoutType = "sports"
	WorkoutOther       WorkoutType = "other"
)

// Valid reports whether t is one of the known workout types.
func (t WorkoutType) Valid() bool {
	switch t {
	case WorkoutStrength, WorkoutCardio, WorkoutFlexibility, WorkoutSports, WorkoutOther:
		return true
	}
	return false
}

// Difficulty is the experience level of a workout or plan.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Valid reports whether d is one of the known difficulty levels.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

// ExerciseSet is one set within an exercise.
type ExerciseSet struct {
	Reps        int     `json:"reps"`
	WeightKg    float64 `json:"weight_kg,omitempty"`
	DurationSec int     `json:"duration_sec,omitempty"`
	RestTimeSec int     `json:"rest_time_sec,omitempty"`
}

// Exercise is a named movement with its sets or duration.
type Exercise struct {
	ID           uuid.UUID     `json:"id"`
	Name         string        `json:"name"`
	Category     string        `json:"category"` // chest, back, shoulders, arms, legs, core, cardio
	Sets         []ExerciseSet `json:"sets,omitempty"`
	DurationMin  int           `json:"duration_min,omitempty"` // cardio exercises
	Instructions []string      `json:"instructions,omitempty"`
}

// Workout is a logged training session.
type Workout struct {
	ID             uuid.UUID   `json:"id"`
	UserID         uuid.UUID   `json:"user_id"`
	Name           string      `json:"name"`
	Type           WorkoutType `json:"type"`
	Exercises      []Exercise  `json:"exercises"`
	DurationMin    int         `json:"duration_min"`
	CaloriesBurned int         `json:"calories_burned"`
	Difficulty     Difficulty  `json:"difficulty"`
	Timestamp      time.Time   `json:"timestamp"`
	Notes          string      `json:"notes,omitempty"`
}

// WorkoutPlan is a multi-week program, seeded from templates or generated
// on request.
type WorkoutPlan struct {
	ID              uuid.UUID  `json:"id"`
	Name            string     `json:"name"`
	Description     string     `json:"description"`
	DurationWeeks   int        `json:"duration_weeks"`
	WorkoutsPerWeek int        `json:"workouts_per_week"`
	Difficulty      Difficulty `json:"difficulty"`
	Goals           []string   `json:"goals"`
	Workouts        []Workout  `json:"workouts"`
	IsPremium       bool       `json:"is_premium"`
}

// HeartRateZone is time spent in one heart-rate band.
type HeartRateZone struct {
	Name          string `json:"name"`
	MinBPM        int    `json:"min_bpm"`
	MaxBPM        int    `json:"max_bpm"`
	TimeInZoneMin int    `json:"time_in_zone_min"`
}

// HeartRateData is a daily heart-rate summary.
type HeartRateData struct {
	Resting int             `json:"resting"`
	Average int             `json:"average"`
	Max     int             `json:"max"`
	Zones   []HeartRateZone `json:"zones,omitempty"`
}

// SleepData is a nightly sleep summary. Quality is 1..5.
type SleepData struct {
	Bedtime      time.Time `json:"bedtime"`
	WakeTime     time.Time `json:"wake_time"`
	TotalHours   float64   `json:"total_hours"`
	DeepHours    float64   `json:"deep_hours"`
	LightHours   float64   `json:"light_hours"`
	REMHours     float64   `json:"rem_hours"`
	Quality      int       `json:"quality"`
	Disturbances int       `json:"disturbances"`
}

// HealthMetrics is the per-day snapshot. One record per user per day,
// append-only.
type HealthMetrics struct {
	ID            uuid.UUID      `json:"id"`
	UserID        uuid.UUID      `json:"user_id"`
	Date          time.Time      `json:"date"`
	WeightKg      float64        `json:"weight_kg,omitempty"`
	Steps         int            `json:"steps,omitempty"`
	HeartRate     *HeartRateData `json:"heart_rate,omitempty"`
	Sleep         *SleepData     `json:"sleep,omitempty"`
	WaterIntakeMl int            `json:"water_intake_ml,omitempty"`
	Mood          int            `json:"mood,omitempty"` // 1..5
}

// RecommendationType classifies a coach recommendation.
type RecommendationType string

const (
	RecommendationNutrition RecommendationType = "nutrition"
	RecommendationExercise  RecommendationType = "exercise"
	RecommendationLifestyle RecommendationType = "lifestyle"
	RecommendationSleep     RecommendationType = "sleep"
	RecommendationHydration RecommendationType = "hydration"
)

// AIRecommendation is a coach suggestion shown on the dashboard. IsRead is
// the only mutable field.
type AIRecommendation struct {
	ID         uuid.UUID          `json:"id"`
	Type       RecommendationType `json:"type"`
	Title      string             `json:"title"`
	Message    string             `json:"message"`
	Priority   Priority           `json:"priority"`
	Actionable bool               `json:"actionable"`
	Timestamp  time.Time          `json:"timestamp"`
	IsRead     bool               `json:"is_read"`
}

// MotivationalMessage is one entry of the motivational rotation.
type MotivationalMessage struct {
	ID             uuid.UUID `json:"id"`
	Message        string    `json:"message"`
	Category       string    `json:"category"` // motivation, tip, achievement, reminder
	Timestamp      time.Time `json:"timestamp"`
	IsPersonalized bool      `json:"is_personalized"`
}

// WearableDevice is a paired tracker or watch.
type WearableDevice struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Type             string    `json:"type"`  // smartwatch, fitness_tracker, smart_scale, heart_monitor
	Brand            string    `json:"brand"` // apple, fitbit, garmin, samsung, other
	IsConnected      bool      `json:"is_connected"`
	LastSync         time.Time `json:"last_sync"`
	SupportedMetrics []string  `json:"supported_metrics"`
}

// PremiumFeature describes a gated capability and the plan it requires.
type PremiumFeature struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Category     string    `json:"category"` // analytics, coaching, integration, customization
	RequiredPlan Plan      `json:"required_plan"`
	IsEnabled    bool      `json:"is_enabled"`
}

// AnalyzedFood is one food detected by photo analysis, with a per-item
// confidence in [0,1].
type AnalyzedFood struct {
	Name       string  `json:"name"`
	Quantity   float64 `json:"quantity"`
	Unit       string  `json:"unit"`
	Calories   float64 `json:"calories"`
	Confidence float64 `json:"confidence"`
}

// MealAnalysis is the result of a meal photo inference pass. Confidence is
// the overall score in [0,1].
type MealAnalysis struct {
	Foods         []AnalyzedFood `json:"foods"`
	TotalCalories float64        `json:"total_calories"`
	Confidence    float64        `json:"confidence"`
}

// UserStorage serves the single account record.
type UserStorage interface {
	// GetUser returns the current user.
	GetUser(ctx context.Context) (User, error)
}

// MealsStorage manages logged meals.
type MealsStorage interface {
	// ListMeals returns meals, newest first. date filters to one calendar
	// day (YYYY-MM-DD); empty means all.
	ListMeals(ctx context.Context, date string) ([]Meal, error)

	// InsertMeal stores a meal and returns the stored copy.
	InsertMeal(ctx context.Context, meal Meal) (Meal, error)

	// DeleteMeal removes a meal. Returns ErrNotFound when the id is absent.
	DeleteMeal(ctx context.Context, id uuid.UUID) error

	// CannedMealAnalysis returns the fixture photo-analysis result.
	CannedMealAnalysis(ctx context.Context) (MealAnalysis, error)
}

// WorkoutsStorage manages logged workouts and plan templates.
type WorkoutsStorage interface {
	// ListWorkouts returns workouts, newest first.
	ListWorkouts(ctx context.Context) ([]Workout, error)

	// InsertWorkout stores a workout and returns the stored copy.
	InsertWorkout(ctx context.Context, workout Workout) (Workout, error)

	// ListWorkoutPlans returns the seeded plan templates.
	ListWorkoutPlans(ctx context.Context) ([]WorkoutPlan, error)
}

// MetricsStorage manages per-day health snapshots and paired devices.
type MetricsStorage interface {
	// ListMetrics returns up to days records, most recent first. Never
	// fabricates days that were not recorded.
	ListMetrics(ctx context.Context, days int) ([]HealthMetrics, error)

	// InsertMetric stores a snapshot and returns the stored copy.
	InsertMetric(ctx context.Context, metric HealthMetrics) (HealthMetrics, error)

	// ListDevices returns paired wearable devices.
	ListDevices(ctx context.Context) ([]WearableDevice, error)

	// GetDevice returns one device. Returns ErrNotFound when absent.
	GetDevice(ctx context.Context, id uuid.UUID) (WearableDevice, error)
}

// CoachStorage manages recommendations and the motivational rotation.
type CoachStorage interface {
	// ListRecommendations returns all recommendations, newest first.
	ListRecommendations(ctx context.Context) ([]AIRecommendation, error)

	// MarkRecommendationRead sets is_read. Idempotent; returns ErrNotFound
	// when the id is absent.
	MarkRecommendationRead(ctx context.Context, id uuid.UUID) error

	// ListMotivationalMessages returns the motivational rotation.
	ListMotivationalMessages(ctx context.Context) ([]MotivationalMessage, error)

	// ListTips returns the canned personalized-tip candidates.
	ListTips(ctx context.Context) ([]string, error)
}

// FeaturesStorage serves the premium feature catalog.
type FeaturesStorage interface {
	// ListPremiumFeatures returns the feature catalog.
	ListPremiumFeatures(ctx context.Context) ([]PremiumFeature, error)
}
