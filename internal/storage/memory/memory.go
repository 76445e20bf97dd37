package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/vitacoach/server/internal/storage"
)

// Store is the in-memory backend. All collections are guarded by a single
// RWMutex and cloned on the way out so callers never alias internal state.
type Store struct {
	mu sync.RWMutex

	user            storage.User
	meals           []storage.Meal
	workouts        []storage.Workout
	metrics         []storage.HealthMetrics
	recommendations []storage.AIRecommendation
	messages        []storage.MotivationalMessage
	workoutPlans    []storage.WorkoutPlan
	devices         []storage.WearableDevice
	features        []storage.PremiumFeature
	tips            []string
	mealAnalysis    storage.MealAnalysis
}

// New creates a store seeded with the default fixture dataset.
func New() *Store {
	return NewWithFixtures(DefaultFixtures())
}

// NewWithFixtures creates a store seeded from the given fixtures. The
// fixture slices are copied so the caller's Fixtures value stays pristine.
func NewWithFixtures(fx Fixtures) *Store {
	return &Store{
		user:            fx.User,
		meals:           cloneSlice(fx.Meals),
		workouts:        cloneSlice(fx.Workouts),
		metrics:         cloneSlice(fx.Metrics),
		recommendations: cloneSlice(fx.Recommendations),
		messages:        cloneSlice(fx.Messages),
		workoutPlans:    cloneSlice(fx.WorkoutPlans),
		devices:         cloneSlice(fx.Devices),
		features:        cloneSlice(fx.Features),
		tips:            cloneSlice(fx.Tips),
		mealAnalysis:    fx.MealAnalysis,
	}
}

func cloneSlice[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}

// GetUser returns the seeded account record.
func (s *Store) GetUser(ctx context.Context) (storage.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.user, nil
}

// ListMeals returns meals, newest first, optionally filtered to one
// calendar day (YYYY-MM-DD in UTC).
func (s *Store) ListMeals(ctx context.Context, date string) ([]storage.Meal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]storage.Meal, 0, len(s.meals))
	for _, m := range s.meals {
		if date != "" && m.Timestamp.UTC().Format("2006-01-02") != date {
			continue
		}
		result = append(result, m)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Timestamp.After(result[j].Timestamp)
	})

	return result, nil
}

// InsertMeal stores a meal.
func (s *Store) InsertMeal(ctx context.Context, meal storage.Meal) (storage.Meal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.meals = append(s.meals, meal)

	return meal, nil
}

// DeleteMeal removes a meal by id.
func (s *Store) DeleteMeal(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, m := range s.meals {
		if m.ID == id {
			s.meals = append(s.meals[:i], s.meals[i+1:]...)
			return nil
		}
	}

	return storage.ErrNotFound
}

// CannedMealAnalysis returns the fixture photo-analysis result.
func (s *Store) CannedMealAnalysis(ctx context.Context) (storage.MealAnalysis, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.mealAnalysis, nil
}

// ListWorkouts returns workouts, newest first.
func (s *Store) ListWorkouts(ctx context.Context) ([]storage.Workout, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := cloneSlice(s.workouts)
	sort.Slice(result, func(i, j int) bool {
		return result[i].Timestamp.After(result[j].Timestamp)
	})

	return result, nil
}

// InsertWorkout stores a workout.
func (s *Store) InsertWorkout(ctx context.Context, workout storage.Workout) (storage.Workout, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.workouts = append(s.workouts, workout)

	return workout, nil
}

// ListWorkoutPlans returns the seeded plan templates.
func (s *Store) ListWorkoutPlans(ctx context.Context) ([]storage.WorkoutPlan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneSlice(s.workoutPlans), nil
}

// ListMetrics returns up to days snapshots, most recent first. When fewer
// days were recorded it returns what exists, no padding.
func (s *Store) ListMetrics(ctx context.Context, days int) ([]storage.HealthMetrics, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := cloneSlice(s.metrics)
	sort.Slice(result, func(i, j int) bool {
		return result[i].Date.After(result[j].Date)
	})

	if days > 0 && len(result) > days {
		result = result[:days]
	}

	return result, nil
}

// InsertMetric stores a snapshot.
func (s *Store) InsertMetric(ctx context.Context, metric storage.HealthMetrics) (storage.HealthMetrics, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.metrics = append(s.metrics, metric)

	return metric, nil
}

// ListDevices returns paired wearable devices.
func (s *Store) ListDevices(ctx context.Context) ([]storage.WearableDevice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneSlice(s.devices), nil
}

// GetDevice returns one device by id.
func (s *Store) GetDevice(ctx context.Context, id uuid.UUID) (storage.WearableDevice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, d := range s.devices {
		if d.ID == id {
			return d, nil
		}
	}

	return storage.WearableDevice{}, storage.ErrNotFound
}

// ListRecommendations returns all recommendations, newest first.
func (s *Store) ListRecommendations(ctx context.Context) ([]storage.AIRecommendation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := cloneSlice(s.recommendations)
	sort.Slice(result, func(i, j int) bool {
		return result[i].Timestamp.After(result[j].Timestamp)
	})

	return result, nil
}

// MarkRecommendationRead sets is_read on one recommendation. Marking an
// already-read recommendation is a no-op, not an error.
func (s *Store) MarkRecommendationRead(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.recommendations {
		if s.recommendations[i].ID == id {
			s.recommendations[i].IsRead = true
			return nil
		}
	}

	return storage.ErrNotFound
}

// ListMotivationalMessages returns the motivational rotation.
func (s *Store) ListMotivationalMessages(ctx context.Context) ([]storage.MotivationalMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneSlice(s.messages), nil
}

// ListTips returns the canned personalized-tip candidates.
func (s *Store) ListTips(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneSlice(s.tips), nil
}

// ListPremiumFeatures returns the feature catalog.
func (s *Store) ListPremiumFeatures(ctx context.Context) ([]storage.PremiumFeature, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneSlice(s.features), nil
}
