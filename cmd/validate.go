package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [machine]",
	Short: "Load and validate a machine descriptor without touching the orchestrator",
	Long: `validate loads the descriptor and reports problems using the same
checks up performs: the box image must be set, port numbers must be in
range, and bind addresses must be IP literals. Warning-level findings
(an empty provisioning list, duplicate host bindings) are printed but do
not fail validation. Nothing is executed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	name := machineName(args)

	m, err := loadMachine(name)
	if err != nil {
		logError("Descriptor for %s is invalid: %v", name, err)
		return err
	}

	reportLint(m)

	fmt.Printf("Machine: %s\n", m.Name)
	fmt.Printf("Box: %s\n", m.Config.Box)
	fmt.Printf("Check for box updates: %t\n", m.Config.BoxCheckUpdate)

	for _, f := range m.Config.Forwards {
		hostIP := f.HostIP
		if hostIP == "" {
			hostIP = "*"
		}
		fmt.Printf("Forward: %s:%d -> guest %d\n", hostIP, f.Host, f.Guest)
	}

	for i, s := range m.Config.Provision {
		label := s.Name
		if label == "" {
			label = fmt.Sprintf("step %d", i+1)
		}
		fmt.Printf("Provision: %s (%d bytes)\n", label, len(s.Inline))
	}

	logSuccess("Descriptor for %s is valid", name)
	return nil
}
