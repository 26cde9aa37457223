// Package orchestrator defines the delegation boundary to the external
// virtualization tool. micabox only loads and validates descriptors; image
// acquisition, boot, port binding, and provisioning all happen on the other
// side of this interface.
package orchestrator

import (
	"context"

	"github.com/autumn-birds/micabox/internal/config"
)

// State represents the lifecycle state of a machine as reported by the
// orchestrator.
type State string

const (
	StateNotCreated State = "not_created"
	StateRunning    State = "running"
	StatePoweroff   State = "poweroff"
	StateSaved      State = "saved"
	StateAborted    State = "aborted"
	StateUnknown    State = "unknown"
)

// ParseState maps an orchestrator-reported state string onto a State.
func ParseState(s string) State {
	switch State(s) {
	case StateNotCreated, StateRunning, StatePoweroff, StateSaved, StateAborted:
		return State(s)
	default:
		return StateUnknown
	}
}

// MachineInfo holds status information about a machine.
type MachineInfo struct {
	Name     string
	Provider string
	State    State
}

// Machine pairs a machine name with its validated descriptor. The
// descriptor is handed off as loaded: forwarding rules and provisioning
// steps keep their order.
type Machine struct {
	Name   string
	Config *config.ProvisioningConfig
}

// Orchestrator is the interface to the external virtualization tool.
// Implementations block until the underlying operation completes and
// surface the tool's exit status and stderr unmodified; no retries or
// rollback happen on this side of the boundary.
type Orchestrator interface {
	// Name returns the orchestrator identifier (e.g. "vagrant")
	Name() string

	// Up creates and boots a machine, running its provisioning steps on
	// first creation
	Up(ctx context.Context, m Machine) error

	// Halt gracefully stops a running machine
	Halt(ctx context.Context, m Machine) error

	// Destroy stops and removes a machine and its resources
	Destroy(ctx context.Context, m Machine) error

	// Provision re-runs the provisioning steps on a created machine
	Provision(ctx context.Context, m Machine) error

	// Status reports the machine's current state
	Status(ctx context.Context, m Machine) (*MachineInfo, error)

	// SSH opens an interactive session, or runs command when non-empty
	SSH(ctx context.Context, m Machine, command string) error
}
