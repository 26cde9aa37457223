package orchestrator

import (
	"context"
	"sync"

	"github.com/autumn-birds/micabox/internal/errors"
)

// MockOrchestrator is an in-memory Orchestrator for testing the delegation
// boundary without a real virtualization tool.
type MockOrchestrator struct {
	mu sync.RWMutex

	// Machines tracks the state of mock machines by name
	Machines map[string]State

	// Errors allows injecting errors for specific operations
	Errors map[string]error

	// CallLog records all method calls for verification
	CallLog []MockCall
}

// MockCall represents a recorded method call
type MockCall struct {
	Method  string
	Machine string
	Command string
}

var _ Orchestrator = (*MockOrchestrator)(nil)

// NewMockOrchestrator creates a new mock orchestrator
func NewMockOrchestrator() *MockOrchestrator {
	return &MockOrchestrator{
		Machines: make(map[string]State),
		Errors:   make(map[string]error),
	}
}

// SetError sets an error to be returned for a specific operation
func (m *MockOrchestrator) SetError(operation string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Errors[operation] = err
}

// SetState sets the state of a mock machine
func (m *MockOrchestrator) SetState(name string, state State) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Machines[name] = state
}

// CallsFor returns all recorded calls for a method
func (m *MockOrchestrator) CallsFor(method string) []MockCall {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var calls []MockCall
	for _, c := range m.CallLog {
		if c.Method == method {
			calls = append(calls, c)
		}
	}
	return calls
}

// Reset clears all state
func (m *MockOrchestrator) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Machines = make(map[string]State)
	m.Errors = make(map[string]error)
	m.CallLog = nil
}

func (m *MockOrchestrator) record(method, machine, command string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CallLog = append(m.CallLog, MockCall{Method: method, Machine: machine, Command: command})
	return m.Errors[method]
}

// Name returns the orchestrator identifier
func (m *MockOrchestrator) Name() string {
	return "mock"
}

// Up boots a mock machine
func (m *MockOrchestrator) Up(ctx context.Context, machine Machine) error {
	if err := m.record("Up", machine.Name, ""); err != nil {
		return err
	}
	m.SetState(machine.Name, StateRunning)
	return nil
}

// Halt stops a mock machine
func (m *MockOrchestrator) Halt(ctx context.Context, machine Machine) error {
	if err := m.record("Halt", machine.Name, ""); err != nil {
		return err
	}
	m.SetState(machine.Name, StatePoweroff)
	return nil
}

// Destroy removes a mock machine
func (m *MockOrchestrator) Destroy(ctx context.Context, machine Machine) error {
	if err := m.record("Destroy", machine.Name, ""); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.Machines, machine.Name)
	return nil
}

// Provision re-runs provisioning on a mock machine
func (m *MockOrchestrator) Provision(ctx context.Context, machine Machine) error {
	if err := m.record("Provision", machine.Name, ""); err != nil {
		return err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if _, ok := m.Machines[machine.Name]; !ok {
		return errors.DelegationFailure("provision", 1, "machine not created", nil)
	}
	return nil
}

// Status reports a mock machine's state
func (m *MockOrchestrator) Status(ctx context.Context, machine Machine) (*MachineInfo, error) {
	if err := m.record("Status", machine.Name, ""); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	state, ok := m.Machines[machine.Name]
	if !ok {
		state = StateNotCreated
	}
	return &MachineInfo{Name: machine.Name, Provider: "mock", State: state}, nil
}

// SSH records a session or command on a mock machine
func (m *MockOrchestrator) SSH(ctx context.Context, machine Machine, command string) error {
	return m.record("SSH", machine.Name, command)
}
