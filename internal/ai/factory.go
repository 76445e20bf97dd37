package ai

import "strings"

const ModeMock = "mock"

// NewProvider selects a provider implementation by mode. Unknown or
// empty modes fall back to the mock.
func NewProvider(mode string) Provider {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case ModeMock:
		return NewMockProvider()
	default:
		return NewMockProvider()
	}
}
