package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vitacoach/server/internal/ai"
	"github.com/vitacoach/server/internal/simulate"
)

var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrAIFailed       = errors.New("ai provider failed")
)

// Service answers coaching questions through the configured AI provider.
type Service struct {
	provider ai.Provider
	delay    simulate.Delayer
	now      func() time.Time
}

func NewService(provider ai.Provider, delay simulate.Delayer) *Service {
	return &Service{
		provider: provider,
		delay:    delay,
		now:      time.Now,
	}
}

// SendMessage produces the assistant reply for one user message.
func (s *Service) SendMessage(ctx context.Context, content string) (ChatMessageDTO, error) {
	if err := s.delay.Wait(ctx, simulate.LatencyChatMessage); err != nil {
		return ChatMessageDTO{}, err
	}

	if strings.TrimSpace(content) == "" {
		return ChatMessageDTO{}, fmt.Errorf("%w: message cannot be empty", ErrInvalidRequest)
	}

	reply, err := s.provider.Reply(ctx, content)
	if err != nil {
		return ChatMessageDTO{}, fmt.Errorf("%w: %v", ErrAIFailed, err)
	}

	return ChatMessageDTO{
		ID:        uuid.New(),
		Role:      "assistant",
		Content:   reply,
		Timestamp: s.now().UTC(),
	}, nil
}
