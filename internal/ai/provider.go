package ai

import "context"

// Provider produces an assistant reply for a single coaching question.
type Provider interface {
	Reply(ctx context.Context, message string) (string, error)
}
