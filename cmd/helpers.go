package cmd

import (
	"github.com/autumn-birds/micabox/internal/app"
	"github.com/autumn-birds/micabox/internal/config"
	"github.com/autumn-birds/micabox/internal/errors"
	"github.com/autumn-birds/micabox/internal/orchestrator"
)

// machineName returns the machine argument, or the default machine when
// no argument was given.
func machineName(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return config.DefaultMachine
}

// getOrchestrator returns the application orchestrator, or an error when
// none is installed.
func getOrchestrator() (orchestrator.Orchestrator, error) {
	o := app.Default.Orchestrator
	if o == nil {
		return nil, errors.OrchestratorAbsent(nil)
	}
	return o, nil
}

// loadMachine loads a machine descriptor through the application context.
func loadMachine(name string) (orchestrator.Machine, error) {
	return app.Default.LoadMachine(name)
}

// listMachines lists all machine descriptor names in the project.
func listMachines() ([]string, error) {
	return config.ListMachines(app.Default.MachinesDir)
}

// reportLint surfaces warning-level descriptor findings to the user.
func reportLint(m orchestrator.Machine) {
	for _, w := range m.Config.Lint() {
		logWarning("%s: %s", m.Name, w)
	}
}
