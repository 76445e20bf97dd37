package reports

import (
	"context"
	"errors"
	"fmt"

	"github.com/vitacoach/server/internal/simulate"
	"github.com/vitacoach/server/internal/storage"
)

var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrPlanRequired   = errors.New("plan upgrade required")
)

const defaultReportDays = 30

// Report is a rendered document ready to be sent to the client.
type Report struct {
	ContentType string
	Filename    string
	Data        []byte
}

type Service struct {
	users     storage.UserStorage
	metrics   storage.MetricsStorage
	meals     storage.MealsStorage
	workouts  storage.WorkoutsStorage
	generator *Generator
	delay     simulate.Delayer
}

func NewService(users storage.UserStorage, metrics storage.MetricsStorage, meals storage.MealsStorage, workouts storage.WorkoutsStorage, delay simulate.Delayer) *Service {
	return &Service{
		users:     users,
		metrics:   metrics,
		meals:     meals,
		workouts:  workouts,
		generator: NewGenerator(),
		delay:     delay,
	}
}

// GenerateProgressReport renders a progress document for the current
// user. Requires a premium subscription.
func (s *Service) GenerateProgressReport(ctx context.Context, req CreateReportRequest) (Report, error) {
	if err := s.delay.Wait(ctx, simulate.LatencyReport); err != nil {
		return Report{}, err
	}

	if req.Format != FormatPDF && req.Format != FormatCSV {
		return Report{}, fmt.Errorf("%w: format must be pdf or csv", ErrInvalidRequest)
	}
	days := req.Days
	if days == 0 {
		days = defaultReportDays
	}
	if days < 1 || days > 365 {
		return Report{}, fmt.Errorf("%w: days must be between 1 and 365", ErrInvalidRequest)
	}

	user, err := s.users.GetUser(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("failed to get user: %w", err)
	}
	if !user.Subscription.Allows(storage.PlanPremium) {
		return Report{}, fmt.Errorf("%w: progress reports require a premium subscription", ErrPlanRequired)
	}

	metrics, err := s.metrics.ListMetrics(ctx, days)
	if err != nil {
		return Report{}, fmt.Errorf("failed to list metrics: %w", err)
	}
	meals, err := s.meals.ListMeals(ctx, "")
	if err != nil {
		return Report{}, fmt.Errorf("failed to list meals: %w", err)
	}
	workouts, err := s.workouts.ListWorkouts(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("failed to list workouts: %w", err)
	}

	switch req.Format {
	case FormatCSV:
		data, err := s.generator.CSV(metrics, meals, workouts)
		if err != nil {
			return Report{}, fmt.Errorf("failed to render CSV: %w", err)
		}
		return Report{
			ContentType: "text/csv",
			Filename:    "progress-report.csv",
			Data:        data,
		}, nil
	default:
		data, err := s.generator.PDF(metrics, meals, workouts, days)
		if err != nil {
			return Report{}, fmt.Errorf("failed to render PDF: %w", err)
		}
		return Report{
			ContentType: "application/pdf",
			Filename:    "progress-report.pdf",
			Data:        data,
		}, nil
	}
}
