package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/autumn-birds/micabox/internal/logging"
)

var upCmd = &cobra.Command{
	Use:   "up [machine]",
	Short: "Create, boot, and provision a machine",
	Long: `up loads the machine descriptor, validates it, and delegates to the
orchestrator: image acquisition, boot, port binding, and first-creation
provisioning all happen there. The orchestrator's output and exit status
pass through unmodified.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runUp,
}

func init() {
	rootCmd.AddCommand(upCmd)
}

func runUp(cmd *cobra.Command, args []string) error {
	name := machineName(args)
	ctx := context.Background()

	m, err := loadMachine(name)
	if err != nil {
		return err
	}

	reportLint(m)

	orch, err := getOrchestrator()
	if err != nil {
		return err
	}

	logging.Debug("bringing up machine", "machine", name, "box", m.Config.Box)
	logInfo("Bringing up machine %s (%s)...", name, m.Config.Box)

	if err := orch.Up(ctx, m); err != nil {
		return err
	}

	logSuccess("Machine %s is up", name)
	return nil
}
