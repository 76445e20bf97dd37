package coach

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/vitacoach/server/internal/simulate"
	"github.com/vitacoach/server/internal/storage"
)

var ErrNotFound = errors.New("recommendation not found")

// Service owns coaching recommendations and the motivational rotation.
// Random selection goes through pick so tests can pin it.
type Service struct {
	storage storage.CoachStorage
	delay   simulate.Delayer
	pick    func(n int) int
}

func NewService(st storage.CoachStorage, delay simulate.Delayer) *Service {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &Service{
		storage: st,
		delay:   delay,
		pick:    rng.Intn,
	}
}

// GetRecommendations returns all coaching recommendations, newest first.
func (s *Service) GetRecommendations(ctx context.Context) ([]storage.AIRecommendation, error) {
	if err := s.delay.Wait(ctx, simulate.LatencyGetRecs); err != nil {
		return nil, err
	}

	return s.storage.ListRecommendations(ctx)
}

// MarkRecommendationAsRead marks one recommendation read. Repeating the
// call is a no-op; unknown ids fail with ErrNotFound.
func (s *Service) MarkRecommendationAsRead(ctx context.Context, id uuid.UUID) error {
	if err := s.delay.Wait(ctx, simulate.LatencyMarkRead); err != nil {
		return err
	}

	if err := s.storage.MarkRecommendationRead(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return err
	}

	return nil
}

// GetMotivationalMessage returns one message from the seeded rotation,
// selected uniformly at random.
func (s *Service) GetMotivationalMessage(ctx context.Context) (storage.MotivationalMessage, error) {
	if err := s.delay.Wait(ctx, simulate.LatencyMotivational); err != nil {
		return storage.MotivationalMessage{}, err
	}

	messages, err := s.storage.ListMotivationalMessages(ctx)
	if err != nil {
		return storage.MotivationalMessage{}, err
	}
	if len(messages) == 0 {
		return storage.MotivationalMessage{}, errors.New("no motivational messages seeded")
	}

	return messages[s.pick(len(messages))], nil
}

// GeneratePersonalizedTip returns one of the canned tips, selected
// uniformly at random.
func (s *Service) GeneratePersonalizedTip(ctx context.Context) (string, error) {
	if err := s.delay.Wait(ctx, simulate.LatencyPersonalTip); err != nil {
		return "", err
	}

	tips, err := s.storage.ListTips(ctx)
	if err != nil {
		return "", err
	}
	if len(tips) == 0 {
		return "", errors.New("no tips seeded")
	}

	return tips[s.pick(len(tips))], nil
}
