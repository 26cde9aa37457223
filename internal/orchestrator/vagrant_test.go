package orchestrator

import (
	"bytes"
	"context"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/autumn-birds/micabox/internal/config"
	"github.com/autumn-birds/micabox/internal/errors"
	"github.com/autumn-birds/micabox/internal/system"
)

func testVagrant() (*Vagrant, *system.MockExecutor, *system.MockFileSystem) {
	exec := system.NewMockExecutor()
	fs := system.NewMockFileSystem()
	v := &Vagrant{
		Binary:    "/usr/bin/vagrant",
		StateRoot: "/state",
		Exec:      exec,
		FS:        fs,
		Stdout:    &bytes.Buffer{},
		Stderr:    &bytes.Buffer{},
	}
	return v, exec, fs
}

func testMachine() Machine {
	return Machine{
		Name: "default",
		Config: &config.ProvisioningConfig{
			Box: "debian/contrib-testing64",
			Forwards: []config.PortForward{
				{Guest: 7072, Host: 7072, HostIP: "127.0.0.1"},
			},
			Provision: []config.ProvisionStep{
				{Inline: "apt-get update && apt-get install -y git python3 tmux"},
			},
		},
	}
}

func TestVagrantUpStagesAndDelegates(t *testing.T) {
	v, exec, fs := testVagrant()
	m := testMachine()

	if err := v.Up(context.Background(), m); err != nil {
		t.Fatalf("Up failed: %v", err)
	}

	// The descriptor must be handed off as a Vagrantfile before delegation.
	staged, err := fs.ReadFile(filepath.Join("/state/default", VagrantfileName))
	if err != nil {
		t.Fatalf("Vagrantfile was not staged: %v", err)
	}
	if !strings.Contains(string(staged), `config.vm.box = "debian/contrib-testing64"`) {
		t.Errorf("staged Vagrantfile does not carry the descriptor:\n%s", staged)
	}

	cmds := exec.CommandsFor("up")
	if len(cmds) != 1 {
		t.Fatalf("recorded %d up invocations, want 1", len(cmds))
	}
	if cmds[0].Dir != "/state/default" {
		t.Errorf("up ran in %q, want /state/default", cmds[0].Dir)
	}
	if cmds[0].Name != "/usr/bin/vagrant" {
		t.Errorf("up invoked %q", cmds[0].Name)
	}
	if !reflect.DeepEqual(cmds[0].Args, []string{"up"}) {
		t.Errorf("up args = %v", cmds[0].Args)
	}
}

func TestVagrantUpDelegationFailure(t *testing.T) {
	v, exec, _ := testVagrant()
	exec.SetResult("up", system.MockResult{
		Stderr: "Vagrant cannot forward the specified ports on this VM\n",
		Err:    &system.ExitError{Code: 1},
	})

	err := v.Up(context.Background(), testMachine())
	if err == nil {
		t.Fatal("Up should fail when vagrant exits non-zero")
	}

	// The orchestrator's exit code and stderr surface verbatim.
	if code := errors.GetExitCode(err); code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.Contains(err.Error(), "cannot forward the specified ports") {
		t.Errorf("error %q should carry vagrant's stderr", err.Error())
	}
}

func TestVagrantStderrPassesThrough(t *testing.T) {
	v, exec, _ := testVagrant()
	var userStderr bytes.Buffer
	v.Stderr = &userStderr
	exec.SetResult("up", system.MockResult{
		Stderr: "boot warning\n",
		Err:    &system.ExitError{Code: 2},
	})

	_ = v.Up(context.Background(), testMachine())

	if userStderr.String() != "boot warning\n" {
		t.Errorf("stderr should stream through unmodified, got %q", userStderr.String())
	}
}

func TestVagrantHaltDestroyProvision(t *testing.T) {
	v, exec, _ := testVagrant()
	m := testMachine()
	ctx := context.Background()

	if err := v.Halt(ctx, m); err != nil {
		t.Fatalf("Halt failed: %v", err)
	}
	if err := v.Destroy(ctx, m); err != nil {
		t.Fatalf("Destroy failed: %v", err)
	}
	if err := v.Provision(ctx, m); err != nil {
		t.Fatalf("Provision failed: %v", err)
	}

	if cmds := exec.CommandsFor("halt"); len(cmds) != 1 || !reflect.DeepEqual(cmds[0].Args, []string{"halt"}) {
		t.Errorf("halt invocations = %v", cmds)
	}
	if cmds := exec.CommandsFor("destroy"); len(cmds) != 1 || !reflect.DeepEqual(cmds[0].Args, []string{"destroy", "--force"}) {
		t.Errorf("destroy invocations = %v", cmds)
	}
	if cmds := exec.CommandsFor("provision"); len(cmds) != 1 {
		t.Errorf("provision invocations = %v", cmds)
	}
}

func TestVagrantStatus(t *testing.T) {
	v, exec, fs := testVagrant()
	m := testMachine()

	// Stage the machine dir so Status consults vagrant.
	if _, err := v.prepare(m); err != nil {
		t.Fatal(err)
	}
	if !fs.Exists(filepath.Join("/state/default", VagrantfileName)) {
		t.Fatal("prepare did not stage the Vagrantfile")
	}

	exec.SetResult("status", system.MockResult{
		Output: []byte(strings.Join([]string{
			"1700000000,default,metadata,provider,virtualbox",
			"1700000000,default,provider-name,virtualbox",
			"1700000000,default,state,running",
			"1700000000,default,state-human-short,running",
			"",
		}, "\n")),
	})

	info, err := v.Status(context.Background(), m)
	if err != nil {
		t.Fatalf("Status failed: %v", err)
	}
	if info.State != StateRunning {
		t.Errorf("State = %q, want running", info.State)
	}
	if info.Provider != "virtualbox" {
		t.Errorf("Provider = %q, want virtualbox", info.Provider)
	}
}

func TestVagrantStatusNotStaged(t *testing.T) {
	v, exec, _ := testVagrant()

	info, err := v.Status(context.Background(), testMachine())
	if err != nil {
		t.Fatalf("Status failed: %v", err)
	}
	if info.State != StateNotCreated {
		t.Errorf("State = %q, want not_created", info.State)
	}
	if len(exec.Commands) != 0 {
		t.Error("vagrant should not be consulted for an unstaged machine")
	}
}

func TestVagrantSSH(t *testing.T) {
	v, exec, _ := testVagrant()
	m := testMachine()
	ctx := context.Background()

	if err := v.SSH(ctx, m, ""); err != nil {
		t.Fatalf("SSH failed: %v", err)
	}
	if err := v.SSH(ctx, m, "tmux attach"); err != nil {
		t.Fatalf("SSH with command failed: %v", err)
	}

	cmds := exec.CommandsFor("ssh")
	if len(cmds) != 2 {
		t.Fatalf("recorded %d ssh invocations, want 2", len(cmds))
	}
	if !reflect.DeepEqual(cmds[0].Args, []string{"ssh"}) {
		t.Errorf("interactive ssh args = %v", cmds[0].Args)
	}
	if !reflect.DeepEqual(cmds[1].Args, []string{"ssh", "-c", "tmux attach"}) {
		t.Errorf("one-shot ssh args = %v", cmds[1].Args)
	}
}
