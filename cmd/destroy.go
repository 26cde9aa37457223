package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var destroyCmd = &cobra.Command{
	Use:   "destroy [machine]",
	Short: "Stop and remove a machine and its resources",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDestroy,
}

func init() {
	rootCmd.AddCommand(destroyCmd)
}

func runDestroy(cmd *cobra.Command, args []string) error {
	name := machineName(args)

	m, err := loadMachine(name)
	if err != nil {
		return err
	}

	orch, err := getOrchestrator()
	if err != nil {
		return err
	}

	logInfo("Destroying machine %s...", name)

	if err := orch.Destroy(context.Background(), m); err != nil {
		return err
	}

	logSuccess("Machine %s destroyed", name)
	return nil
}
