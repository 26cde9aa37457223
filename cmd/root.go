package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/autumn-birds/micabox/internal/app"
	"github.com/autumn-birds/micabox/internal/logging"
)

var (
	verbose    bool
	jsonOutput bool
	projectDir string
)

var rootCmd = &cobra.Command{
	Use:   "micabox",
	Short: "Declarative VM provisioning for the mica development environment",
	Long: `micabox loads a declarative machine descriptor (box image, update-check
flag, ordered port forwards, one-time provisioning scripts), validates it,
and hands it to an external virtualization orchestrator.

Descriptors live under machines/ in the project directory, one TOML file
per machine. All VM state is owned by the orchestrator; micabox keeps
nothing beyond the generated handoff files under .micabox/.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(verbose, jsonOutput, os.Stderr)
		app.SetDefault(app.New(app.WithProjectDir(projectDir)))
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output logs in JSON format")
	rootCmd.PersistentFlags().StringVarP(&projectDir, "dir", "C", ".", "Project directory holding machines/")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// Helper aliases for user-facing output (delegates to logging package)
var (
	logInfo    = logging.UserInfo
	logSuccess = logging.UserSuccess
	logWarning = logging.UserWarning
	logError   = logging.UserError
)
