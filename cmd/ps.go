package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/autumn-birds/micabox/internal/orchestrator"
)

var psCmd = &cobra.Command{
	Use:   "ps",
	Short: "List all machine descriptors and their states",
	RunE:  runPs,
}

func init() {
	rootCmd.AddCommand(psCmd)
}

func runPs(cmd *cobra.Command, args []string) error {
	names, err := listMachines()
	if err != nil {
		return err
	}

	if len(names) == 0 {
		logInfo("No machine descriptors found. Add one under machines/<name>.toml")
		return nil
	}

	orch, err := getOrchestrator()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tBOX\tFORWARDS\tSTATE\tPROVIDER")
	fmt.Fprintln(w, "----\t---\t--------\t-----\t--------")

	for _, name := range names {
		m, err := loadMachine(name)
		if err != nil {
			logWarning("skipping %s: %v", name, err)
			continue
		}

		info, err := orch.Status(context.Background(), m)
		if err != nil {
			info = &orchestrator.MachineInfo{Name: name, State: orchestrator.StateUnknown}
		}

		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n",
			name, m.Config.Box, len(m.Config.Forwards), info.State, info.Provider)
	}

	return w.Flush()
}
