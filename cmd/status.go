package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status [machine]",
	Short: "Show a machine's descriptor and current state",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	name := machineName(args)

	m, err := loadMachine(name)
	if err != nil {
		return err
	}

	orch, err := getOrchestrator()
	if err != nil {
		return err
	}

	info, err := orch.Status(context.Background(), m)
	if err != nil {
		return err
	}

	fmt.Printf("Machine: %s\n", m.Name)
	fmt.Printf("Box: %s\n", m.Config.Box)
	fmt.Printf("Check for box updates: %t\n", m.Config.BoxCheckUpdate)

	if len(m.Config.Forwards) > 0 {
		fmt.Println("Port forwards:")
		for _, f := range m.Config.Forwards {
			hostIP := f.HostIP
			if hostIP == "" {
				hostIP = "*"
			}
			fmt.Printf("  %s:%d -> guest %d\n", hostIP, f.Host, f.Guest)
		}
	}

	fmt.Printf("Provision steps: %d\n", len(m.Config.Provision))
	fmt.Println()

	if info.Provider != "" {
		fmt.Printf("State: %s (%s)\n", info.State, info.Provider)
	} else {
		fmt.Printf("State: %s\n", info.State)
	}

	return nil
}
