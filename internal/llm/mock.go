package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// MockResponse is one canned result for the MockProvider.
type MockResponse struct {
	Content json.RawMessage
	Err     error
}

// MockProvider serves canned responses in FIFO order and records every
// request. Deterministic, for tests and the "mock" provider setting.
type MockProvider struct {
	mu        sync.Mutex
	responses []MockResponse

	Calls []Request
}

// NewMockProvider creates a MockProvider preloaded with responses.
func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{responses: responses}
}

// Generate pops the next canned response, or fails with
// ErrProviderUnavailable when the queue is empty.
func (m *MockProvider) Generate(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	if len(m.responses) == 0 {
		return nil, &ErrProviderUnavailable{}
	}
	next := m.responses[0]
	m.responses = m.responses[1:]

	if next.Err != nil {
		return nil, next.Err
	}
	return &Response{Content: next.Content, Model: "mock"}, nil
}

func (m *MockProvider) ModelID() string { return "mock" }

// CallCount returns the number of Generate calls made so far.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
