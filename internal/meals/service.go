package meals

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vitacoach/server/internal/simulate"
	"github.com/vitacoach/server/internal/storage"
)

var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrNotFound       = errors.New("meal not found")
)

// Service owns meal logging and the photo-analysis mock.
type Service struct {
	storage storage.MealsStorage
	users   storage.UserStorage
	delay   simulate.Delayer
	now     func() time.Time
}

func NewService(st storage.MealsStorage, users storage.UserStorage, delay simulate.Delayer) *Service {
	return &Service{
		storage: st,
		users:   users,
		delay:   delay,
		now:     time.Now,
	}
}

// GetMeals returns logged meals, newest first. A non-empty date
// (YYYY-MM-DD) restricts the result to that calendar day.
func (s *Service) GetMeals(ctx context.Context, date string) ([]storage.Meal, error) {
	if err := s.delay.Wait(ctx, simulate.LatencyGetMeals); err != nil {
		return nil, err
	}

	date = strings.TrimSpace(date)
	if date != "" {
		if _, err := time.Parse("2006-01-02", date); err != nil {
			return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidRequest)
		}
	}

	return s.storage.ListMeals(ctx, date)
}

// AddMeal validates and persists a meal. TotalCalories and Macros are
// derived from the food items, never taken from the client.
func (s *Service) AddMeal(ctx context.Context, req AddMealRequest) (storage.Meal, error) {
	if err := s.delay.Wait(ctx, simulate.LatencyAddMeal); err != nil {
		return storage.Meal{}, err
	}

	if strings.TrimSpace(req.Name) == "" {
		return storage.Meal{}, fmt.Errorf("%w: name cannot be empty", ErrInvalidRequest)
	}
	if !req.Type.Valid() {
		return storage.Meal{}, fmt.Errorf("%w: unknown meal type %q", ErrInvalidRequest, req.Type)
	}
	if len(req.Foods) == 0 {
		return storage.Meal{}, fmt.Errorf("%w: at least one food item is required", ErrInvalidRequest)
	}

	var total float64
	var macros storage.MacroNutrients
	foods := make([]storage.FoodItem, 0, len(req.Foods))
	for _, f := range req.Foods {
		if strings.TrimSpace(f.Name) == "" {
			return storage.Meal{}, fmt.Errorf("%w: food name cannot be empty", ErrInvalidRequest)
		}
		if f.Calories < 0 || f.Quantity < 0 {
			return storage.Meal{}, fmt.Errorf("%w: negative food values", ErrInvalidRequest)
		}
		if f.ID == uuid.Nil {
			f.ID = uuid.New()
		}
		total += f.Calories
		macros = macros.Add(f.Macros)
		foods = append(foods, f)
	}

	user, err := s.users.GetUser(ctx)
	if err != nil {
		return storage.Meal{}, err
	}

	meal := storage.Meal{
		ID:            uuid.New(),
		UserID:        user.ID,
		Name:          strings.TrimSpace(req.Name),
		Type:          req.Type,
		Foods:         foods,
		TotalCalories: total,
		Macros:        macros,
		Timestamp:     s.now().UTC(),
		ImageURL:      req.ImageURL,
		Notes:         req.Notes,
	}

	return s.storage.InsertMeal(ctx, meal)
}

// AnalyzeMealPhoto validates the image payload and returns the canned
// recognition result.
func (s *Service) AnalyzeMealPhoto(ctx context.Context, data []byte) (storage.MealAnalysis, error) {
	if err := s.delay.Wait(ctx, simulate.LatencyAnalyzePhoto); err != nil {
		return storage.MealAnalysis{}, err
	}

	if len(data) == 0 {
		return storage.MealAnalysis{}, fmt.Errorf("%w: empty photo", ErrInvalidRequest)
	}
	if !strings.HasPrefix(http.DetectContentType(data), "image/") {
		return storage.MealAnalysis{}, fmt.Errorf("%w: payload is not an image", ErrInvalidRequest)
	}

	return s.storage.CannedMealAnalysis(ctx)
}

// DeleteMeal removes a logged meal by id.
func (s *Service) DeleteMeal(ctx context.Context, id uuid.UUID) error {
	if err := s.delay.Wait(ctx, simulate.LatencyDeleteMeal); err != nil {
		return err
	}

	if err := s.storage.DeleteMeal(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return err
	}

	return nil
}
