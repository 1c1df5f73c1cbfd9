// Package testfixtures provides mock implementations and test utilities for TUI testing.
//
// MockSubmitter records submitted applications in place of a broker. It is
// thread-safe because submissions run as tea.Cmds off the update loop.
//
// Example usage:
//
//	func TestMyComponent(t *testing.T) {
//	    sub := testfixtures.NewMockSubmitter()
//	    // hand sub to the wizard...
//	    require.Len(t, sub.Submitted(), 1)
//	}
package testfixtures

import (
	"context"
	"sync"

	"github.com/chamberhq/join/internal/registration"
)

// MockSubmitter is a mock implementation of submit.Submitter.
type MockSubmitter struct {
	mu sync.RWMutex

	// Error to return from Submit
	SubmitError error

	submitted []registration.Application
	calls     int
}

// NewMockSubmitter creates a MockSubmitter that accepts everything.
func NewMockSubmitter() *MockSubmitter {
	return &MockSubmitter{submitted: []registration.Application{}}
}

// Submit records app and returns the configured error.
func (m *MockSubmitter) Submit(ctx context.Context, app registration.Application) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls++
	if m.SubmitError != nil {
		return m.SubmitError
	}
	m.submitted = append(m.submitted, app)
	return nil
}

// Submitted returns a copy of the accepted applications.
func (m *MockSubmitter) Submitted() []registration.Application {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]registration.Application, len(m.submitted))
	copy(out, m.submitted)
	return out
}

// Calls returns how many times Submit ran, failed calls included.
func (m *MockSubmitter) Calls() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.calls
}

// Reset clears recorded state.
func (m *MockSubmitter) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.submitted = []registration.Application{}
	m.calls = 0
	m.SubmitError = nil
}
