package judge

import (
	"context"
	"sync"

	"github.com/toolgauge/toolgauge/internal/domain/judging"
)

// MockProvider is a test double returning a canned response.
type MockProvider struct {
	Response string
	Err      error

	mu sync.Mutex
	// Prompts records every prompt passed to Generate. Judges call
	// Generate concurrently, so access goes through mu.
	Prompts []string
}

func (m *MockProvider) Name() string { return "mock" }

func (m *MockProvider) Generate(_ context.Context, prompt string, _ judging.Settings) (string, error) {
	m.mu.Lock()
	m.Prompts = append(m.Prompts, prompt)
	m.mu.Unlock()
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}
