package meals

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/vitacoach/server/internal/simulate"
	"github.com/vitacoach/server/internal/storage"
	"github.com/vitacoach/server/internal/storage/memory"
)

func newTestService() (*Service, *simulate.Manual) {
	store := memory.New()
	delay := &simulate.Manual{}
	svc := NewService(store, store, delay)
	svc.now = func() time.Time {
		return time.Date(2024, 3, 16, 12, 0, 0, 0, time.UTC)
	}
	return svc, delay
}

func TestGetMealsReturnsSeededMealsNewestFirst(t *testing.T) {
	svc, delay := newTestService()

	meals, err := svc.GetMeals(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(meals) != 2 {
		t.Fatalf("expected 2 meals, got %d", len(meals))
	}
	if meals[0].Name != "Grilled Salmon Salad" || meals[1].Name != "Greek Yogurt Bowl" {
		t.Fatalf("unexpected order: %s, %s", meals[0].Name, meals[1].Name)
	}
	if delay.LastWait() != simulate.LatencyGetMeals {
		t.Fatalf("unexpected wait: %v", delay.LastWait())
	}
}

func TestGetMealsHonorsDateFilter(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	meals, err := svc.GetMeals(ctx, "2024-03-15")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(meals) != 2 {
		t.Fatalf("expected 2 meals on the seeded day, got %d", len(meals))
	}

	meals, err = svc.GetMeals(ctx, "2024-03-14")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(meals) != 0 {
		t.Fatalf("expected no meals on an empty day, got %d", len(meals))
	}
}

func TestGetMealsRejectsMalformedDate(t *testing.T) {
	svc, _ := newTestService()

	if _, err := svc.GetMeals(context.Background(), "15/03/2024"); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
}

func TestAddMealDerivesAggregatesFromFoods(t *testing.T) {
	svc, delay := newTestService()

	req := AddMealRequest{
		Name: "Protein Shake",
		Type: storage.MealSnack,
		Foods: []storage.FoodItem{
			{
				Name:     "Whey Protein",
				Quantity: 30, Unit: "g",
				Calories: 120,
				Macros:   storage.MacroNutrients{ProteinG: 24, CarbsG: 3, FatG: 1.5},
			},
			{
				Name:     "Banana",
				Quantity: 1, Unit: "piece",
				Calories: 105,
				Macros:   storage.MacroNutrients{ProteinG: 1.3, CarbsG: 27, FatG: 0.4},
			},
		},
	}

	meal, err := svc.AddMeal(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if meal.ID == uuid.Nil {
		t.Fatal("expected a generated meal id")
	}
	if meal.TotalCalories != 225 {
		t.Fatalf("unexpected total calories: %v", meal.TotalCalories)
	}
	if meal.Macros.ProteinG != 25.3 || meal.Macros.CarbsG != 30 {
		t.Fatalf("unexpected macros: %+v", meal.Macros)
	}
	for _, f := range meal.Foods {
		if f.ID == uuid.Nil {
			t.Fatalf("food %q has no generated id", f.Name)
		}
	}
	if !meal.Timestamp.Equal(time.Date(2024, 3, 16, 12, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected timestamp: %v", meal.Timestamp)
	}
	if delay.LastWait() != simulate.LatencyAddMeal {
		t.Fatalf("unexpected wait: %v", delay.LastWait())
	}

	meals, err := svc.GetMeals(context.Background(), "2024-03-16")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(meals) != 1 || meals[0].ID != meal.ID {
		t.Fatalf("added meal not persisted: %+v", meals)
	}
}

func TestAddMealGeneratesUniqueIDs(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	req := AddMealRequest{
		Name:  "Oatmeal",
		Type:  storage.MealBreakfast,
		Foods: []storage.FoodItem{{Name: "Oats", Quantity: 50, Unit: "g", Calories: 190}},
	}

	seen := make(map[uuid.UUID]bool)
	for i := 0; i < 5; i++ {
		meal, err := svc.AddMeal(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if seen[meal.ID] {
			t.Fatalf("duplicate meal id: %s", meal.ID)
		}
		seen[meal.ID] = true
	}
}

func TestAddMealTimestampsNeverDecrease(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	// Clock advances one second per add.
	current := time.Date(2024, 3, 16, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time {
		current = current.Add(time.Second)
		return current
	}

	req := AddMealRequest{
		Name:  "Oatmeal",
		Type:  storage.MealBreakfast,
		Foods: []storage.FoodItem{{Name: "Oats", Quantity: 50, Unit: "g", Calories: 190}},
	}

	var prev time.Time
	for i := 0; i < 5; i++ {
		meal, err := svc.AddMeal(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if meal.Timestamp.Before(prev) {
			t.Fatalf("timestamp went backwards: %v after %v", meal.Timestamp, prev)
		}
		prev = meal.Timestamp
	}
}

func TestAddMealValidation(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	cases := []struct {
		name string
		req  AddMealRequest
	}{
		{"empty name", AddMealRequest{Type: storage.MealLunch, Foods: []storage.FoodItem{{Name: "Rice", Calories: 100}}}},
		{"unknown type", AddMealRequest{Name: "Lunch", Type: "brunch", Foods: []storage.FoodItem{{Name: "Rice", Calories: 100}}}},
		{"no foods", AddMealRequest{Name: "Lunch", Type: storage.MealLunch}},
		{"empty food name", AddMealRequest{Name: "Lunch", Type: storage.MealLunch, Foods: []storage.FoodItem{{Calories: 100}}}},
		{"negative calories", AddMealRequest{Name: "Lunch", Type: storage.MealLunch, Foods: []storage.FoodItem{{Name: "Rice", Calories: -5}}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.AddMeal(ctx, tc.req); !errors.Is(err, ErrInvalidRequest) {
				t.Fatalf("expected ErrInvalidRequest, got %v", err)
			}
		})
	}
}

func TestAnalyzeMealPhotoReturnsCannedResult(t *testing.T) {
	svc, delay := newTestService()

	png := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}
	analysis, err := svc.AnalyzeMealPhoto(context.Background(), png)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(analysis.Foods) != 3 {
		t.Fatalf("expected 3 recognized foods, got %d", len(analysis.Foods))
	}
	if analysis.TotalCalories != 370 {
		t.Fatalf("unexpected total calories: %v", analysis.TotalCalories)
	}
	if analysis.Confidence < 0 || analysis.Confidence > 1 {
		t.Fatalf("confidence out of range: %v", analysis.Confidence)
	}
	for _, f := range analysis.Foods {
		if f.Confidence < 0 || f.Confidence > 1 {
			t.Fatalf("food %q confidence out of range: %v", f.Name, f.Confidence)
		}
	}
	if delay.LastWait() != simulate.LatencyAnalyzePhoto {
		t.Fatalf("unexpected wait: %v", delay.LastWait())
	}
}

func TestAnalyzeMealPhotoRejectsNonImage(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.AnalyzeMealPhoto(ctx, nil); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest for empty payload, got %v", err)
	}
	if _, err := svc.AnalyzeMealPhoto(ctx, []byte("not an image at all, sorry")); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest for text payload, got %v", err)
	}
}

func TestDeleteMeal(t *testing.T) {
	svc, delay := newTestService()
	ctx := context.Background()

	if err := svc.DeleteMeal(ctx, memory.FixtureMealBreakfastID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if delay.LastWait() != simulate.LatencyDeleteMeal {
		t.Fatalf("unexpected wait: %v", delay.LastWait())
	}

	meals, err := svc.GetMeals(ctx, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(meals) != 1 {
		t.Fatalf("expected 1 remaining meal, got %d", len(meals))
	}

	if err := svc.DeleteMeal(ctx, memory.FixtureMealBreakfastID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
	if err := svc.DeleteMeal(ctx, uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown id, got %v", err)
	}
}
