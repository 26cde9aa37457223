package system

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"testing"
)

func TestMockExecutorRecordsAndReplays(t *testing.T) {
	m := NewMockExecutor()
	m.SetResult("status", MockResult{Output: []byte("running")})

	out, err := m.Execute(context.Background(), "/work", "vagrant", "status", "--machine-readable")
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if string(out) != "running" {
		t.Errorf("output = %q, want %q", out, "running")
	}

	cmds := m.CommandsFor("status")
	if len(cmds) != 1 {
		t.Fatalf("recorded %d status commands, want 1", len(cmds))
	}
	if cmds[0].Dir != "/work" {
		t.Errorf("Dir = %q, want /work", cmds[0].Dir)
	}
	if cmds[0].Name != "vagrant" {
		t.Errorf("Name = %q, want vagrant", cmds[0].Name)
	}
}

func TestMockExecutorStreaming(t *testing.T) {
	m := NewMockExecutor()
	m.SetResult("up", MockResult{
		Stdout: "Bringing machine up...\n",
		Stderr: "some warning\n",
		Err:    &ExitError{Code: 1},
	})

	var stdout, stderr bytes.Buffer
	err := m.ExecuteStreaming(context.Background(), "", &stdout, &stderr, "vagrant", "up")

	var exitErr *ExitError
	if !errors.As(err, &exitErr) || exitErr.ExitCode() != 1 {
		t.Fatalf("err = %v, want ExitError with code 1", err)
	}
	if stdout.String() != "Bringing machine up...\n" {
		t.Errorf("stdout = %q", stdout.String())
	}
	if stderr.String() != "some warning\n" {
		t.Errorf("stderr = %q", stderr.String())
	}
}

func TestMockExecutorMissingBinary(t *testing.T) {
	m := NewMockExecutor()
	m.MissingBinaries["vagrant"] = true

	if _, err := m.LookPath("vagrant"); err == nil {
		t.Error("LookPath should fail for a missing binary")
	}
	if path, err := m.LookPath("ssh"); err != nil || path == "" {
		t.Errorf("LookPath(ssh) = %q, %v", path, err)
	}
}

func TestMockFileSystemRoundTrip(t *testing.T) {
	m := NewMockFileSystem()

	if err := m.MkdirAll("/state/default", 0755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	if err := m.WriteFile("/state/default/Vagrantfile", []byte("Vagrant.configure"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	data, err := m.ReadFile("/state/default/Vagrantfile")
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != "Vagrant.configure" {
		t.Errorf("ReadFile = %q", data)
	}

	if !m.Exists("/state/default") {
		t.Error("directory should exist after MkdirAll")
	}
	if _, err := m.ReadFile("/state/missing"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("missing file error = %v, want fs.ErrNotExist", err)
	}
}

func TestMockFileSystemReadDir(t *testing.T) {
	m := NewMockFileSystem()
	if err := m.MkdirAll("/machines", 0755); err != nil {
		t.Fatal(err)
	}
	_ = m.WriteFile("/machines/default.toml", []byte("box = \"x\""), 0644)
	_ = m.WriteFile("/machines/full.toml", []byte("box = \"y\""), 0644)

	entries, err := m.ReadDir("/machines")
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("ReadDir returned %d entries, want 2", len(entries))
	}
	if entries[0].Name() != "default.toml" || entries[1].Name() != "full.toml" {
		t.Errorf("entries = %s, %s", entries[0].Name(), entries[1].Name())
	}
}
