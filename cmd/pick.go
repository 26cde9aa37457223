package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/autumn-birds/micabox/internal/orchestrator"
	"github.com/autumn-birds/micabox/internal/tui"
)

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Interactively select a machine and act on it",
	RunE:  runPick,
}

func init() {
	rootCmd.AddCommand(pickCmd)
}

// machineEntries gathers picker entries for every descriptor in the project.
func machineEntries(ctx context.Context, orch orchestrator.Orchestrator) ([]tui.MachineEntry, error) {
	names, err := listMachines()
	if err != nil {
		return nil, err
	}

	var entries []tui.MachineEntry
	for _, name := range names {
		m, err := loadMachine(name)
		if err != nil {
			logWarning("skipping %s: %v", name, err)
			continue
		}

		state := orchestrator.StateUnknown
		if info, err := orch.Status(ctx, m); err == nil {
			state = info.State
		}

		entries = append(entries, tui.MachineEntry{
			Name:     name,
			Box:      m.Config.Box,
			Forwards: len(m.Config.Forwards),
			State:    state,
		})
	}

	return entries, nil
}

func runPick(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	orch, err := getOrchestrator()
	if err != nil {
		return err
	}

	entries, err := machineEntries(ctx, orch)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		logInfo("No machine descriptors found. Add one under machines/<name>.toml")
		return nil
	}

	result, err := tui.RunPicker(entries)
	if err != nil {
		return err
	}

	switch result.Action {
	case tui.ActionUp:
		return runUp(cmd, []string{result.Machine})
	case tui.ActionSSH:
		return runSSH(cmd, []string{result.Machine})
	case tui.ActionHalt:
		return runHalt(cmd, []string{result.Machine})
	default:
		return nil
	}
}
