package testutil

import (
	"context"
	"net/url"
	"sync"

	"forexquote/internal/forex"
)

// BackendCall records the arguments of one MockBackend.Call
type BackendCall struct {
	Endpoint string
	Body     url.Values
	Session  *forex.Session
}

// MockBackend is a call-counting implementation of forex.Backend for testing.
// It is safe for concurrent use.
type MockBackend struct {
	CallFunc func(ctx context.Context, endpoint string, body url.Values, session *forex.Session) (*forex.Response, error)

	mu    sync.Mutex
	calls []BackendCall
}

// Call implements the forex.Backend interface
func (m *MockBackend) Call(ctx context.Context, endpoint string, body url.Values, session *forex.Session) (*forex.Response, error) {
	m.mu.Lock()
	m.calls = append(m.calls, BackendCall{Endpoint: endpoint, Body: body, Session: session})
	m.mu.Unlock()

	if m.CallFunc != nil {
		return m.CallFunc(ctx, endpoint, body, session)
	}
	return &forex.Response{}, nil
}

// Calls returns a copy of every call received so far
func (m *MockBackend) Calls() []BackendCall {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]BackendCall, len(m.calls))
	copy(out, m.calls)
	return out
}

// CallCount returns the number of calls received so far
func (m *MockBackend) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// NewMockBackend creates a mock backend that always returns resp and err
func NewMockBackend(resp *forex.Response, err error) *MockBackend {
	return &MockBackend{
		CallFunc: func(ctx context.Context, endpoint string, body url.Values, session *forex.Session) (*forex.Response, error) {
			return resp, err
		},
	}
}

// Pair creates a forex pair with only the symbol set
func Pair(symbol string) forex.ForexPair {
	return forex.ForexPair{Symbol: symbol, QuoteType: "CURRENCY"}
}
