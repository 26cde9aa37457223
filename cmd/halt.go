package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var haltCmd = &cobra.Command{
	Use:   "halt [machine]",
	Short: "Gracefully stop a machine",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runHalt,
}

func init() {
	rootCmd.AddCommand(haltCmd)
}

func runHalt(cmd *cobra.Command, args []string) error {
	name := machineName(args)

	m, err := loadMachine(name)
	if err != nil {
		return err
	}

	orch, err := getOrchestrator()
	if err != nil {
		return err
	}

	logInfo("Halting machine %s...", name)

	if err := orch.Halt(context.Background(), m); err != nil {
		return err
	}

	logSuccess("Machine %s halted", name)
	return nil
}
