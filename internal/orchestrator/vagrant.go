package orchestrator

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/autumn-birds/micabox/internal/errors"
	"github.com/autumn-birds/micabox/internal/logging"
	"github.com/autumn-birds/micabox/internal/system"
)

// VagrantfileName is the descriptor handoff file vagrant reads.
const VagrantfileName = "Vagrantfile"

// Vagrant drives machines through the vagrant CLI. Each machine gets its
// own working directory under StateRoot holding the generated Vagrantfile
// and whatever state vagrant keeps for itself.
type Vagrant struct {
	// Binary is the resolved path of the vagrant executable
	Binary string

	// StateRoot is the directory holding per-machine working directories
	StateRoot string

	// Exec runs vagrant; FS stages the generated Vagrantfile
	Exec system.CommandExecutor
	FS   system.FileSystem

	// Stdout and Stderr receive the orchestrator's output unmodified
	Stdout io.Writer
	Stderr io.Writer
}

var _ Orchestrator = (*Vagrant)(nil)

// NewVagrant creates a Vagrant orchestrator rooted at stateRoot. It fails
// when no vagrant binary is in PATH.
func NewVagrant(stateRoot string) (*Vagrant, error) {
	exe := system.DefaultExecutor()
	binary, err := exe.LookPath("vagrant")
	if err != nil {
		return nil, errors.OrchestratorAbsent(err)
	}

	return &Vagrant{
		Binary:    binary,
		StateRoot: stateRoot,
		Exec:      exe,
		FS:        system.DefaultFS(),
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
	}, nil
}

// Name returns the orchestrator identifier
func (v *Vagrant) Name() string {
	return "vagrant"
}

// machineDir returns the working directory for a machine
func (v *Vagrant) machineDir(m Machine) string {
	return filepath.Join(v.StateRoot, m.Name)
}

// prepare stages the machine's working directory: the descriptor is
// rendered into a Vagrantfile so the handoff to vagrant is exactly what
// was loaded and validated.
func (v *Vagrant) prepare(m Machine) (string, error) {
	dir := v.machineDir(m)
	if err := v.FS.MkdirAll(dir, 0755); err != nil {
		return "", errors.Wrap(errors.ExitGeneralError, fmt.Sprintf("failed to create machine directory %s", dir), err)
	}

	rendered, err := RenderVagrantfile(m)
	if err != nil {
		return "", errors.Wrap(errors.ExitGeneralError, fmt.Sprintf("failed to render %s for %s", VagrantfileName, m.Name), err)
	}

	path := filepath.Join(dir, VagrantfileName)
	if err := v.FS.WriteFile(path, []byte(rendered), 0644); err != nil {
		return "", errors.Wrap(errors.ExitGeneralError, fmt.Sprintf("failed to write %s", path), err)
	}

	logging.Debug("staged machine directory", "machine", m.Name, "dir", dir)
	return dir, nil
}

// exitCode extracts a child process exit code from an error chain.
func exitCode(err error) int {
	var coder interface{ ExitCode() int }
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	return 0
}

// run executes a vagrant subcommand in the machine's directory, streaming
// output through. A non-zero exit becomes a DelegationFailure carrying the
// child's exit code and captured stderr verbatim.
func (v *Vagrant) run(ctx context.Context, dir, op string, args ...string) error {
	logging.Debug("delegating to vagrant", "op", op, "dir", dir)

	var stderrBuf bytes.Buffer
	stderr := io.MultiWriter(v.Stderr, &stderrBuf)

	argv := append([]string{op}, args...)
	if err := v.Exec.ExecuteStreaming(ctx, dir, v.Stdout, stderr, v.Binary, argv...); err != nil {
		return errors.DelegationFailure(op, exitCode(err), strings.TrimSpace(stderrBuf.String()), err)
	}

	return nil
}

// Up creates and boots the machine. Provisioning steps run on first
// creation only; vagrant itself enforces that.
func (v *Vagrant) Up(ctx context.Context, m Machine) error {
	dir, err := v.prepare(m)
	if err != nil {
		return err
	}
	return v.run(ctx, dir, "up")
}

// Halt gracefully stops the machine
func (v *Vagrant) Halt(ctx context.Context, m Machine) error {
	return v.run(ctx, v.machineDir(m), "halt")
}

// Destroy stops and removes the machine
func (v *Vagrant) Destroy(ctx context.Context, m Machine) error {
	return v.run(ctx, v.machineDir(m), "destroy", "--force")
}

// Provision re-runs the provisioning steps. The Vagrantfile is re-staged
// first so descriptor edits take effect.
func (v *Vagrant) Provision(ctx context.Context, m Machine) error {
	dir, err := v.prepare(m)
	if err != nil {
		return err
	}
	return v.run(ctx, dir, "provision")
}

// Status reports the machine's state, parsed from vagrant's
// machine-readable output. A machine whose working directory was never
// staged is not_created without consulting vagrant.
func (v *Vagrant) Status(ctx context.Context, m Machine) (*MachineInfo, error) {
	dir := v.machineDir(m)
	if !v.FS.Exists(filepath.Join(dir, VagrantfileName)) {
		return &MachineInfo{Name: m.Name, State: StateNotCreated}, nil
	}

	out, err := v.Exec.Execute(ctx, dir, v.Binary, "status", "--machine-readable")
	if err != nil {
		return nil, errors.DelegationFailure("status", exitCode(err), strings.TrimSpace(string(out)), err)
	}

	info := &MachineInfo{Name: m.Name, State: StateUnknown}
	for _, line := range strings.Split(string(out), "\n") {
		// timestamp,target,type,data...
		fields := strings.SplitN(strings.TrimSpace(line), ",", 4)
		if len(fields) < 4 {
			continue
		}
		switch fields[2] {
		case "state":
			info.State = ParseState(fields[3])
		case "provider-name":
			info.Provider = fields[3]
		}
	}

	return info, nil
}

// SSH opens an interactive session on the machine, or runs command when
// non-empty.
func (v *Vagrant) SSH(ctx context.Context, m Machine, command string) error {
	dir := v.machineDir(m)

	args := []string{"ssh"}
	if command != "" {
		args = append(args, "-c", command)
	}

	if err := v.Exec.ExecuteInteractive(ctx, dir, v.Binary, args...); err != nil {
		return errors.DelegationFailure("ssh", exitCode(err), "", err)
	}
	return nil
}
