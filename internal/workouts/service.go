package workouts

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vitacoach/server/internal/simulate"
	"github.com/vitacoach/server/internal/storage"
)

var ErrInvalidRequest = errors.New("invalid request")

const defaultWorkoutsLimit = 10

// Service owns workout logging and plan generation.
type Service struct {
	storage storage.WorkoutsStorage
	users   storage.UserStorage
	delay   simulate.Delayer
	now     func() time.Time
}

func NewService(st storage.WorkoutsStorage, users storage.UserStorage, delay simulate.Delayer) *Service {
	return &Service{
		storage: st,
		users:   users,
		delay:   delay,
		now:     time.Now,
	}
}

// GetWorkouts returns the most recent workouts, capped at limit
// (default 10 when limit is not positive).
func (s *Service) GetWorkouts(ctx context.Context, limit int) ([]storage.Workout, error) {
	if err := s.delay.Wait(ctx, simulate.LatencyGetWorkouts); err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = defaultWorkoutsLimit
	}

	workouts, err := s.storage.ListWorkouts(ctx)
	if err != nil {
		return nil, err
	}

	if len(workouts) > limit {
		workouts = workouts[:limit]
	}

	return workouts, nil
}

// AddWorkout validates and persists a workout session.
func (s *Service) AddWorkout(ctx context.Context, req AddWorkoutRequest) (storage.Workout, error) {
	if err := s.delay.Wait(ctx, simulate.LatencyAddWorkout); err != nil {
		return storage.Workout{}, err
	}

	if strings.TrimSpace(req.Name) == "" {
		return storage.Workout{}, fmt.Errorf("%w: name cannot be empty", ErrInvalidRequest)
	}
	if !req.Type.Valid() {
		return storage.Workout{}, fmt.Errorf("%w: unknown workout type %q", ErrInvalidRequest, req.Type)
	}
	if !req.Difficulty.Valid() {
		return storage.Workout{}, fmt.Errorf("%w: unknown difficulty %q", ErrInvalidRequest, req.Difficulty)
	}
	if req.DurationMin <= 0 {
		return storage.Workout{}, fmt.Errorf("%w: duration must be positive", ErrInvalidRequest)
	}
	if req.CaloriesBurned < 0 {
		return storage.Workout{}, fmt.Errorf("%w: calories burned cannot be negative", ErrInvalidRequest)
	}

	exercises := make([]storage.Exercise, 0, len(req.Exercises))
	for _, ex := range req.Exercises {
		if strings.TrimSpace(ex.Name) == "" {
			return storage.Workout{}, fmt.Errorf("%w: exercise name cannot be empty", ErrInvalidRequest)
		}
		if ex.ID == uuid.Nil {
			ex.ID = uuid.New()
		}
		exercises = append(exercises, ex)
	}

	user, err := s.users.GetUser(ctx)
	if err != nil {
		return storage.Workout{}, err
	}

	workout := storage.Workout{
		ID:             uuid.New(),
		UserID:         user.ID,
		Name:           strings.TrimSpace(req.Name),
		Type:           req.Type,
		Exercises:      exercises,
		DurationMin:    req.DurationMin,
		CaloriesBurned: req.CaloriesBurned,
		Difficulty:     req.Difficulty,
		Timestamp:      s.now().UTC(),
		Notes:          req.Notes,
	}

	return s.storage.InsertWorkout(ctx, workout)
}

// GetWorkoutPlans returns the seeded plan templates.
func (s *Service) GetWorkoutPlans(ctx context.Context) ([]storage.WorkoutPlan, error) {
	if err := s.delay.Wait(ctx, simulate.LatencyGetPlans); err != nil {
		return nil, err
	}

	return s.storage.ListWorkoutPlans(ctx)
}

// GenerateWorkoutPlan builds a custom 8-week plan for the requested
// goals. The plan is returned to the caller, not added to the catalog.
func (s *Service) GenerateWorkoutPlan(ctx context.Context, req GeneratePlanRequest) (storage.WorkoutPlan, error) {
	if err := s.delay.Wait(ctx, simulate.LatencyGeneratePlan); err != nil {
		return storage.WorkoutPlan{}, err
	}

	if !req.Difficulty.Valid() {
		return storage.WorkoutPlan{}, fmt.Errorf("%w: unknown difficulty %q", ErrInvalidRequest, req.Difficulty)
	}
	if req.DaysPerWeek < 1 || req.DaysPerWeek > 7 {
		return storage.WorkoutPlan{}, fmt.Errorf("%w: days per week must be within 1..7", ErrInvalidRequest)
	}

	goals := make([]string, 0, len(req.Goals))
	for _, g := range req.Goals {
		if g = strings.TrimSpace(g); g != "" {
			goals = append(goals, g)
		}
	}
	if len(goals) == 0 {
		return storage.WorkoutPlan{}, fmt.Errorf("%w: at least one goal is required", ErrInvalidRequest)
	}

	// The plan embeds the logged workouts as its session templates.
	workouts, err := s.storage.ListWorkouts(ctx)
	if err != nil {
		return storage.WorkoutPlan{}, err
	}

	difficulty := string(req.Difficulty)
	plan := storage.WorkoutPlan{
		ID:              uuid.New(),
		Name:            fmt.Sprintf("Custom %s Plan", strings.ToUpper(difficulty[:1])+difficulty[1:]),
		Description:     fmt.Sprintf("AI-generated %s workout plan focusing on %s", difficulty, strings.Join(goals, ", ")),
		DurationWeeks:   8,
		WorkoutsPerWeek: req.DaysPerWeek,
		Difficulty:      req.Difficulty,
		Goals:           goals,
		Workouts:        workouts,
		IsPremium:       false,
	}

	return plan, nil
}
