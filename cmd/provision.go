package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var provisionCmd = &cobra.Command{
	Use:   "provision [machine]",
	Short: "Re-run provisioning steps on a created machine",
	Long: `provision re-stages the descriptor handoff and asks the orchestrator to
run the provisioning scripts again. Steps run in descriptor order; a
failing step is reported as the orchestrator reports it, with no rollback
on this side.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runProvision,
}

func init() {
	rootCmd.AddCommand(provisionCmd)
}

func runProvision(cmd *cobra.Command, args []string) error {
	name := machineName(args)

	m, err := loadMachine(name)
	if err != nil {
		return err
	}

	reportLint(m)

	orch, err := getOrchestrator()
	if err != nil {
		return err
	}

	logInfo("Provisioning machine %s (%d steps)...", name, len(m.Config.Provision))

	if err := orch.Provision(context.Background(), m); err != nil {
		return err
	}

	logSuccess("Machine %s provisioned", name)
	return nil
}
