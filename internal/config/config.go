package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	securejoin "github.com/cyphar/filepath-securejoin"

	"github.com/autumn-birds/micabox/internal/errors"
	"github.com/autumn-birds/micabox/internal/logging"
	"github.com/autumn-birds/micabox/internal/port"
)

// machineNameRegex validates machine names.
// Names must start with a lowercase letter or digit, followed by lowercase
// letters, digits, dots, underscores, or hyphens. Maximum length is 63
// characters.
var machineNameRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9._-]{0,62}$`)

const (
	// MachinesDirName is the per-project directory holding machine descriptors.
	MachinesDirName = "machines"

	// StateDirName is the per-project directory the orchestrator works in.
	StateDirName = ".micabox"

	// DescriptorExt is the machine descriptor file extension.
	DescriptorExt = ".toml"

	// DefaultMachine is the machine used when no name is given.
	DefaultMachine = "default"
)

// ValidateMachineName checks if a machine name is valid.
func ValidateMachineName(name string) error {
	if name == "" {
		return fmt.Errorf("machine name cannot be empty")
	}

	if !machineNameRegex.MatchString(name) {
		return fmt.Errorf("invalid machine name %q: must start with a lowercase letter or digit, contain only lowercase letters, digits, dots, underscores, or hyphens, and be at most 63 characters", name)
	}

	return nil
}

// PortForward is a single guest-to-host forwarding rule. Rules are applied
// in descriptor order. An empty HostIP binds all host interfaces.
type PortForward struct {
	Guest  int    `toml:"guest"`
	Host   int    `toml:"host"`
	HostIP string `toml:"host_ip,omitempty"`
}

// ProvisionStep is one shell script run inside the guest, once, at first
// creation. The body is an opaque text blob executed verbatim by the
// orchestrator's shell.
type ProvisionStep struct {
	Name   string `toml:"name,omitempty"`
	Inline string `toml:"inline"`
}

// ProvisioningConfig is the declarative machine descriptor. It is
// immutable after Load; nothing in this repository mutates it at runtime.
type ProvisioningConfig struct {
	Box            string          `toml:"box"`
	BoxCheckUpdate bool            `toml:"box_check_update"`
	Forwards       []PortForward   `toml:"forwarded_port,omitempty"`
	Provision      []ProvisionStep `toml:"provision,omitempty"`
}

// Validate checks that the ProvisioningConfig is valid.
func (c *ProvisioningConfig) Validate() error {
	if c.Box == "" {
		return errors.MalformedConfig("box is required", nil)
	}

	for i, f := range c.Forwards {
		if err := port.CheckNumber(f.Guest); err != nil {
			return errors.InvalidPortSpec(fmt.Sprintf("forwarded_port %d: guest", i+1), err)
		}
		if err := port.CheckNumber(f.Host); err != nil {
			return errors.InvalidPortSpec(fmt.Sprintf("forwarded_port %d: host", i+1), err)
		}
		if err := port.CheckBindAddr(f.HostIP); err != nil {
			return errors.InvalidPortSpec(fmt.Sprintf("forwarded_port %d", i+1), err)
		}
	}

	for i, s := range c.Provision {
		if strings.TrimSpace(s.Inline) == "" {
			return errors.MalformedConfig(fmt.Sprintf("provision step %d has an empty script body", i+1), nil)
		}
	}

	return nil
}

// Lint returns warning-level findings that do not prevent loading. An empty
// provisioning list and duplicate host bindings both load fine; the latter
// fails later at the orchestration layer when the second bind is attempted.
func (c *ProvisioningConfig) Lint() []string {
	var warnings []string

	if len(c.Provision) == 0 {
		warnings = append(warnings, "no provisioning steps defined; the machine will boot unprovisioned")
	}

	bindings := make([]port.Binding, len(c.Forwards))
	for i, f := range c.Forwards {
		bindings[i] = port.Binding{Host: f.Host, HostIP: f.HostIP}
	}
	warnings = append(warnings, port.Collisions(bindings)...)

	return warnings
}

// Load reads and validates a machine descriptor. It is a pure
// read-and-parse: no process or network calls happen here.
func Load(path string) (*ProvisioningConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.FileNotFound(path)
		}
		return nil, errors.MalformedConfig(fmt.Sprintf("failed to read descriptor %s", path), err)
	}

	var cfg ProvisioningConfig
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, errors.MalformedConfig(fmt.Sprintf("failed to parse descriptor %s", path), err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		logging.Warn("descriptor has unknown keys", "path", path, "keys", strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if len(cfg.Provision) == 0 {
		logging.Warn("descriptor has no provisioning steps", "path", path)
	}

	logging.Debug("loaded descriptor", "path", path, "box", cfg.Box,
		"forwards", len(cfg.Forwards), "provision_steps", len(cfg.Provision))

	return &cfg, nil
}

// Save writes a descriptor back to disk. Load after Save yields an
// identical configuration, field order and list order included.
func Save(path string, cfg *ProvisioningConfig) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return errors.MalformedConfig(fmt.Sprintf("failed to serialize descriptor %s", path), err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return errors.Wrap(errors.ExitGeneralError, fmt.Sprintf("failed to write descriptor %s", path), err)
	}

	return nil
}

// DescriptorPath resolves a machine name to its descriptor path under
// machinesDir. The name is validated and the join cannot escape the
// machines directory.
func DescriptorPath(machinesDir, name string) (string, error) {
	if err := ValidateMachineName(name); err != nil {
		return "", errors.ValidationError(err.Error())
	}

	path, err := securejoin.SecureJoin(machinesDir, name+DescriptorExt)
	if err != nil {
		return "", errors.ValidationError(fmt.Sprintf("invalid machine name %q: %v", name, err))
	}

	return path, nil
}

// LoadMachine loads the descriptor for a named machine.
func LoadMachine(machinesDir, name string) (*ProvisioningConfig, error) {
	path, err := DescriptorPath(machinesDir, name)
	if err != nil {
		return nil, err
	}
	return Load(path)
}

// ListMachines returns the names of all machine descriptors in machinesDir,
// in directory order.
func ListMachines(machinesDir string) ([]string, error) {
	entries, err := os.ReadDir(machinesDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(errors.ExitGeneralError, "failed to read machines directory", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != DescriptorExt {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), DescriptorExt)
		if ValidateMachineName(name) != nil {
			continue
		}
		names = append(names, name)
	}

	return names, nil
}
