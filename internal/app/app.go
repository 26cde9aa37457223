// Package app provides the application context for micabox.
// It allows dependency injection for testing.
package app

import (
	"path/filepath"

	"github.com/autumn-birds/micabox/internal/config"
	"github.com/autumn-birds/micabox/internal/logging"
	"github.com/autumn-birds/micabox/internal/orchestrator"
)

// App holds the application dependencies
type App struct {
	// ProjectDir is the project root holding machines/ and .micabox/
	ProjectDir string

	// MachinesDir is the directory holding machine descriptors
	MachinesDir string

	// Orchestrator is the external virtualization tool, nil when absent
	Orchestrator orchestrator.Orchestrator
}

// Option is a function that configures the App
type Option func(*App)

// WithProjectDir sets the project directory
func WithProjectDir(dir string) Option {
	return func(a *App) {
		a.ProjectDir = dir
	}
}

// WithOrchestrator sets a custom orchestrator
func WithOrchestrator(o orchestrator.Orchestrator) Option {
	return func(a *App) {
		a.Orchestrator = o
	}
}

// New creates a new App with the given options. If no orchestrator is
// provided via WithOrchestrator, vagrant is looked up in PATH.
func New(opts ...Option) *App {
	app := &App{ProjectDir: "."}

	for _, opt := range opts {
		opt(app)
	}

	app.MachinesDir = filepath.Join(app.ProjectDir, config.MachinesDirName)

	if app.Orchestrator == nil {
		stateRoot := filepath.Join(app.ProjectDir, config.StateDirName)
		o, err := orchestrator.NewVagrant(stateRoot)
		if err != nil {
			logging.Debug("no orchestrator available", "error", err)
		} else {
			app.Orchestrator = o
		}
	}

	return app
}

// LoadMachine loads a named machine descriptor from the machines directory.
func (a *App) LoadMachine(name string) (orchestrator.Machine, error) {
	cfg, err := config.LoadMachine(a.MachinesDir, name)
	if err != nil {
		return orchestrator.Machine{}, err
	}
	return orchestrator.Machine{Name: name, Config: cfg}, nil
}

// Default is the default application instance
var Default = New()

// SetDefault sets the default application instance (used for testing and
// by root command flags)
func SetDefault(app *App) {
	Default = app
}

// ResetDefault resets to the default application instance
func ResetDefault() {
	Default = New()
}
