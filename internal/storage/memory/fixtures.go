package memory

import (
	"time"

	"github.com/google/uuid"
	"github.com/vitacoach/server/internal/storage"
)

// Fixtures is the seed dataset the store starts from. It is built
// explicitly and passed to NewWithFixtures so tests can substitute
// alternate datasets without interference.
type Fixtures struct {
	User            storage.User
	Meals           []storage.Meal
	Workouts        []storage.Workout
	Metrics         []storage.HealthMetrics
	Recommendations []storage.AIRecommendation
	Messages        []storage.MotivationalMessage
	WorkoutPlans    []storage.WorkoutPlan
	Devices         []storage.WearableDevice
	Features        []storage.PremiumFeature
	Tips            []string
	MealAnalysis    storage.MealAnalysis
}

// Stable fixture ids so tests can address seed records directly.
var (
	FixtureUserID = uuid.MustParse("8f14b7a2-3c51-4e8a-9d2f-6b0c8a41e7d3")

	FixtureMealBreakfastID = uuid.MustParse("1a9e6c04-57d2-4b8f-a3e1-92c4d07f5b68")
	FixtureMealLunchID     = uuid.MustParse("2b8d5f13-68e3-4c90-b4f2-a3d5e18c6c79")

	FixtureWorkoutID = uuid.MustParse("3c7c4e22-79f4-4da1-c5a3-b4e6f29d7d8a")

	FixtureMetricID = uuid.MustParse("4d6b3d31-8aa5-4eb2-d6b4-c5f7a38e8e9b")

	FixtureRecProteinID = uuid.MustParse("5e5a2c40-9bb6-4fc3-e7c5-d6a8b47f9fac")
	FixtureRecCardioID  = uuid.MustParse("6f491b5f-acc7-40d4-f8d6-e7b9c580aabd")
	FixtureRecSleepID   = uuid.MustParse("70380a6e-bdd8-41e5-a9e7-f8cad691bbce")

	FixtureDeviceWatchID   = uuid.MustParse("8127f97d-cee9-42f6-bafa-a9dbe7a2ccdf")
	FixtureDeviceTrackerID = uuid.MustParse("9216e88c-dffa-4307-cb0b-baecf8b3dde0")

	FixtureFeatureAnalyticsID = uuid.MustParse("2b7707f3-0883-4c90-f49a-4d75813c6679")
	FixtureFeatureCoachingID  = uuid.MustParse("3c6616e2-1994-4da1-a5ab-5e86924d778a")
)

// DefaultFixtures returns the canonical demo dataset: one user, a day of
// meals and metrics, a workout, the recommendation inbox, plan templates,
// paired devices and the premium feature catalog.
func DefaultFixtures() Fixtures {
	day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	return Fixtures{
		User: storage.User{
			ID:            FixtureUserID,
			Name:          "Sarah Johnson",
			Email:         "sarah.johnson@example.com",
			Age:           28,
			HeightCm:      165,
			WeightKg:      68,
			ActivityLevel: storage.ActivityModeratelyActive,
			Goals: []storage.HealthGoal{
				{
					ID:       uuid.MustParse("a3058b7b-e00b-4418-dc18-cbfd09c4eef1"),
					Type:     storage.GoalWeightLoss,
					Target:   63,
					Current:  68,
					Unit:     "kg",
					Deadline: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
					Priority: storage.PriorityHigh,
					Status:   storage.GoalActive,
				},
				{
					ID:       uuid.MustParse("b4f47c8a-f11c-4529-ed29-dc0e1ad5ff02"),
					Type:     storage.GoalMuscleGain,
					Target:   25,
					Current:  22,
					Unit:     "% body fat",
					Deadline: time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC),
					Priority: storage.PriorityMedium,
					Status:   storage.GoalActive,
				},
			},
			Subscription: storage.PlanPremium,
			JoinDate:     time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			AvatarURL:    "https://cdn.vitacoach.app/avatars/sarah-johnson.jpg",
		},

		Meals: []storage.Meal{
			{
				ID:     FixtureMealBreakfastID,
				UserID: FixtureUserID,
				Name:   "Greek Yogurt Bowl",
				Type:   storage.MealBreakfast,
				Foods: []storage.FoodItem{
					{
						ID:       uuid.New(),
						Name:     "Greek Yogurt",
						Quantity: 150, Unit: "g",
						Calories: 130,
						Macros:   storage.MacroNutrients{ProteinG: 15, CarbsG: 6, FatG: 4},
						Verified: true,
					},
					{
						ID:       uuid.New(),
						Name:     "Blueberries",
						Quantity: 80, Unit: "g",
						Calories: 45,
						Macros:   storage.MacroNutrients{ProteinG: 0.5, CarbsG: 11, FatG: 0.2},
						Verified: true,
					},
					{
						ID:       uuid.New(),
						Name:     "Granola",
						Quantity: 30, Unit: "g",
						Calories: 140,
						Macros:   storage.MacroNutrients{ProteinG: 4, CarbsG: 18, FatG: 6},
						Verified: true,
					},
				},
				TotalCalories: 315,
				Macros:        storage.MacroNutrients{ProteinG: 19.5, CarbsG: 35, FatG: 10.2},
				Timestamp:     day.Add(8*time.Hour + 30*time.Minute),
			},
			{
				ID:     FixtureMealLunchID,
				UserID: FixtureUserID,
				Name:   "Grilled Salmon Salad",
				Type:   storage.MealLunch,
				Foods: []storage.FoodItem{
					{
						ID:       uuid.New(),
						Name:     "Grilled Salmon",
						Quantity: 120, Unit: "g",
						Calories: 250,
						Macros:   storage.MacroNutrients{ProteinG: 25, CarbsG: 0, FatG: 15},
						Verified: true,
					},
					{
						ID:       uuid.New(),
						Name:     "Mixed Greens",
						Quantity: 100, Unit: "g",
						Calories: 20,
						Macros:   storage.MacroNutrients{ProteinG: 2, CarbsG: 4, FatG: 0.2},
						Verified: true,
					},
				},
				TotalCalories: 270,
				Macros:        storage.MacroNutrients{ProteinG: 27, CarbsG: 4, FatG: 15.2},
				Timestamp:     day.Add(13 * time.Hour),
			},
		},

		Workouts: []storage.Workout{
			{
				ID:     FixtureWorkoutID,
				UserID: FixtureUserID,
				Name:   "Upper Body Strength",
				Type:   storage.WorkoutStrength,
				Exercises: []storage.Exercise{
					{
						ID:       uuid.New(),
						Name:     "Push-ups",
						Category: "chest",
						Sets: []storage.ExerciseSet{
							{Reps: 12, RestTimeSec: 60},
							{Reps: 10, RestTimeSec: 60},
							{Reps: 8, RestTimeSec: 60},
						},
						Instructions: []string{
							"Start in plank position",
							"Lower chest to ground",
							"Push back up to starting position",
						},
					},
					{
						ID:       uuid.New(),
						Name:     "Dumbbell Rows",
						Category: "back",
						Sets: []storage.ExerciseSet{
							{Reps: 12, WeightKg: 15, RestTimeSec: 90},
							{Reps: 10, WeightKg: 15, RestTimeSec: 90},
							{Reps: 8, WeightKg: 17.5, RestTimeSec: 90},
						},
						Instructions: []string{
							"Bend forward at hips",
							"Pull dumbbells to chest",
							"Lower with control",
						},
					},
				},
				DurationMin:    45,
				CaloriesBurned: 280,
				Difficulty:     storage.DifficultyIntermediate,
				Timestamp:      day.Add(18 * time.Hour),
			},
		},

		Metrics: []storage.HealthMetrics{
			{
				ID:       FixtureMetricID,
				UserID:   FixtureUserID,
				Date:     day,
				WeightKg: 68,
				Steps:    8500,
				HeartRate: &storage.HeartRateData{
					Resting: 65,
					Average: 78,
					Max:     145,
					Zones: []storage.HeartRateZone{
						{Name: "Rest", MinBPM: 0, MaxBPM: 70, TimeInZoneMin: 720},
						{Name: "Fat Burn", MinBPM: 70, MaxBPM: 100, TimeInZoneMin: 180},
						{Name: "Cardio", MinBPM: 100, MaxBPM: 140, TimeInZoneMin: 45},
						{Name: "Peak", MinBPM: 140, MaxBPM: 180, TimeInZoneMin: 15},
					},
				},
				Sleep: &storage.SleepData{
					Bedtime:      day.Add(-1 * time.Hour), // 23:00 previous night
					WakeTime:     day.Add(7 * time.Hour),
					TotalHours:   8,
					DeepHours:    2.5,
					LightHours:   4.5,
					REMHours:     1,
					Quality:      4,
					Disturbances: 2,
				},
				WaterIntakeMl: 2100,
				Mood:          4,
			},
		},

		Recommendations: []storage.AIRecommendation{
			{
				ID:         FixtureRecProteinID,
				Type:       storage.RecommendationNutrition,
				Title:      "Increase Protein Intake",
				Message:    "Based on your workout intensity, consider adding 10g more protein to reach your muscle building goals.",
				Priority:   storage.PriorityMedium,
				Actionable: true,
				Timestamp:  day.Add(9 * time.Hour),
				IsRead:     false,
			},
			{
				ID:         FixtureRecCardioID,
				Type:       storage.RecommendationExercise,
				Title:      "Add Cardio Session",
				Message:    "Your heart rate data suggests adding a 20-minute cardio session twice a week for optimal cardiovascular health.",
				Priority:   storage.PriorityHigh,
				Actionable: true,
				Timestamp:  day.Add(10*time.Hour + 30*time.Minute),
				IsRead:     false,
			},
			{
				ID:         FixtureRecSleepID,
				Type:       storage.RecommendationSleep,
				Title:      "Improve Sleep Quality",
				Message:    "Try reducing screen time 1 hour before bed to improve your deep sleep duration.",
				Priority:   storage.PriorityMedium,
				Actionable: true,
				Timestamp:  day.Add(7*time.Hour + 30*time.Minute),
				IsRead:     true,
			},
		},

		Messages: []storage.MotivationalMessage{
			{
				ID:             uuid.MustParse("c5e36d99-a22d-463a-fe3a-ed1f2be60013"),
				Message:        "You're 60% closer to your weight goal! Keep up the amazing work, Sarah!",
				Category:       "motivation",
				Timestamp:      day.Add(8 * time.Hour),
				IsPersonalized: true,
			},
			{
				ID:             uuid.MustParse("d6d25ea8-b33e-474b-af4b-fe203cf71124"),
				Message:        "Remember: Progress, not perfection. Every healthy choice counts!",
				Category:       "tip",
				Timestamp:      day.Add(14 * time.Hour),
				IsPersonalized: false,
			},
			{
				ID:             uuid.MustParse("e7c14fb7-c44f-485c-b05c-0f314d082235"),
				Message:        "Congratulations! You completed 3 workouts this week!",
				Category:       "achievement",
				Timestamp:      day.Add(19 * time.Hour),
				IsPersonalized: true,
			},
		},

		WorkoutPlans: []storage.WorkoutPlan{
			{
				ID:              uuid.MustParse("f8b03ac6-d550-496d-c16d-1a425e193346"),
				Name:            "Weight Loss Accelerator",
				Description:     "High-intensity workouts designed to maximize calorie burn and boost metabolism.",
				DurationWeeks:   8,
				WorkoutsPerWeek: 4,
				Difficulty:      storage.DifficultyIntermediate,
				Goals:           []string{"weight_loss", "endurance"},
				Workouts:        []storage.Workout{},
				IsPremium:       false,
			},
			{
				ID:              uuid.MustParse("09a929d5-e661-4a7e-d27e-2b536f2a4457"),
				Name:            "Muscle Building Master",
				Description:     "Progressive strength training program for lean muscle development.",
				DurationWeeks:   12,
				WorkoutsPerWeek: 5,
				Difficulty:      storage.DifficultyAdvanced,
				Goals:           []string{"muscle_gain", "strength"},
				Workouts:        []storage.Workout{},
				IsPremium:       true,
			},
			{
				ID:              uuid.MustParse("1a8818e4-f772-4b8f-e38f-3c64702b5568"),
				Name:            "Beginner Friendly Start",
				Description:     "Perfect introduction to fitness with low-impact, effective exercises.",
				DurationWeeks:   6,
				WorkoutsPerWeek: 3,
				Difficulty:      storage.DifficultyBeginner,
				Goals:           []string{"general_health", "endurance"},
				Workouts:        []storage.Workout{},
				IsPremium:       false,
			},
		},

		Devices: []storage.WearableDevice{
			{
				ID:               FixtureDeviceWatchID,
				Name:             "Apple Watch Series 9",
				Type:             "smartwatch",
				Brand:            "apple",
				IsConnected:      true,
				LastSync:         day.Add(6 * time.Hour),
				SupportedMetrics: []string{"heartRate", "steps", "sleep", "calories", "workouts"},
			},
			{
				ID:               FixtureDeviceTrackerID,
				Name:             "Fitbit Charge 5",
				Type:             "fitness_tracker",
				Brand:            "fitbit",
				IsConnected:      false,
				LastSync:         time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC),
				SupportedMetrics: []string{"heartRate", "steps", "sleep", "calories"},
			},
		},

		Features: []storage.PremiumFeature{
			{
				ID:           FixtureFeatureAnalyticsID,
				Name:         "Advanced Analytics",
				Description:  "Detailed health reports with trend analysis and predictive insights",
				Category:     "analytics",
				RequiredPlan: storage.PlanPremium,
				IsEnabled:    true,
			},
			{
				ID:           FixtureFeatureCoachingID,
				Name:         "Personal Coaching",
				Description:  "One-on-one sessions with certified fitness and nutrition professionals",
				Category:     "coaching",
				RequiredPlan: storage.PlanPro,
				IsEnabled:    false,
			},
			{
				ID:           uuid.MustParse("4d5525d1-2aa5-4eb2-b6bc-6f97a35e889b"),
				Name:         "Medical Integrations",
				Description:  "Connect with healthcare providers and sync medical records",
				Category:     "integration",
				RequiredPlan: storage.PlanPro,
				IsEnabled:    false,
			},
			{
				ID:           uuid.MustParse("5e4434c0-3bb6-4fc3-c7cd-7aa8b46f99ac"),
				Name:         "Custom Meal Plans",
				Description:  "AI-generated meal plans tailored to your dietary restrictions and goals",
				Category:     "customization",
				RequiredPlan: storage.PlanPremium,
				IsEnabled:    true,
			},
		},

		Tips: []string{
			"Based on your recent workouts, try adding 5 minutes of stretching after each session.",
			"Your sleep quality has improved 15% this week! Keep up your bedtime routine.",
			"Consider having a protein-rich snack within 30 minutes after your strength training.",
			"Your step count is trending upward! Aim for 10,000 steps tomorrow.",
			"Try meal prepping on Sundays to maintain your healthy eating streak.",
		},

		MealAnalysis: storage.MealAnalysis{
			Foods: []storage.AnalyzedFood{
				{Name: "Grilled Chicken Breast", Quantity: 150, Unit: "g", Calories: 231, Confidence: 0.92},
				{Name: "Brown Rice", Quantity: 100, Unit: "g", Calories: 111, Confidence: 0.88},
				{Name: "Broccoli", Quantity: 80, Unit: "g", Calories: 28, Confidence: 0.95},
			},
			TotalCalories: 370,
			Confidence:    0.91,
		},
	}
}
