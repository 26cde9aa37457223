package cmd

import (
	"context"

	shellquote "github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"

	"github.com/autumn-birds/micabox/internal/config"
)

var sshCmd = &cobra.Command{
	Use:   "ssh [machine] [-- command...]",
	Short: "Open a shell on a machine, or run a one-shot command",
	RunE:  runSSH,
}

func init() {
	rootCmd.AddCommand(sshCmd)
}

// splitSSHArgs separates the machine name from the remote command. dash is
// the position of "--" as reported by cobra, or -1 when absent.
func splitSSHArgs(args []string, dash int) (name string, remote []string) {
	pre := args
	if dash >= 0 {
		pre = args[:dash]
		remote = args[dash:]
	}

	name = config.DefaultMachine
	if len(pre) > 0 {
		name = pre[0]
	}
	return name, remote
}

func runSSH(cmd *cobra.Command, args []string) error {
	name, remote := splitSSHArgs(args, cmd.ArgsLenAtDash())

	m, err := loadMachine(name)
	if err != nil {
		return err
	}

	orch, err := getOrchestrator()
	if err != nil {
		return err
	}

	// Quote the remote command so it survives the orchestrator's shell.
	command := ""
	if len(remote) > 0 {
		command = shellquote.Join(remote...)
	}

	return orch.SSH(context.Background(), m, command)
}
