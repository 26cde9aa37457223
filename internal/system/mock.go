package system

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// ExitError is a fake process exit error for tests. It satisfies the same
// ExitCode() contract as exec.ExitError.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

func (e *ExitError) ExitCode() int {
	return e.Code
}

// ExecutedCommand records a single command invocation.
type ExecutedCommand struct {
	Dir  string
	Name string
	Args []string
}

// MockResult is a canned result for a mocked command.
type MockResult struct {
	Output []byte // combined output for Execute
	Stdout string // streamed stdout for ExecuteStreaming
	Stderr string // streamed stderr for ExecuteStreaming
	Err    error
}

// MockExecutor is a CommandExecutor that records invocations and replays
// canned results. Results are keyed by the command's first argument (the
// orchestrator subcommand), falling back to the binary name.
type MockExecutor struct {
	mu sync.Mutex

	// Commands records every invocation in order.
	Commands []ExecutedCommand

	// Results maps a key to its canned result.
	Results map[string]MockResult

	// MissingBinaries makes LookPath fail for the named binaries.
	MissingBinaries map[string]bool
}

// NewMockExecutor creates an empty MockExecutor.
func NewMockExecutor() *MockExecutor {
	return &MockExecutor{
		Results:         make(map[string]MockResult),
		MissingBinaries: make(map[string]bool),
	}
}

// SetResult sets the canned result for a command key.
func (m *MockExecutor) SetResult(key string, result MockResult) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Results[key] = result
}

// CommandsFor returns all recorded invocations whose first argument matches key.
func (m *MockExecutor) CommandsFor(key string) []ExecutedCommand {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []ExecutedCommand
	for _, c := range m.Commands {
		if len(c.Args) > 0 && c.Args[0] == key {
			out = append(out, c)
		}
	}
	return out
}

func (m *MockExecutor) record(dir, name string, args []string) MockResult {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Commands = append(m.Commands, ExecutedCommand{Dir: dir, Name: name, Args: args})

	key := name
	if len(args) > 0 {
		key = args[0]
	}
	return m.Results[key]
}

func (m *MockExecutor) LookPath(name string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.MissingBinaries[name] {
		return "", fmt.Errorf("exec: %q: executable file not found in $PATH", name)
	}
	return "/usr/bin/" + name, nil
}

func (m *MockExecutor) Execute(ctx context.Context, dir string, name string, args ...string) ([]byte, error) {
	r := m.record(dir, name, args)
	return r.Output, r.Err
}

func (m *MockExecutor) ExecuteStreaming(ctx context.Context, dir string, stdout, stderr io.Writer, name string, args ...string) error {
	r := m.record(dir, name, args)
	if r.Stdout != "" {
		fmt.Fprint(stdout, r.Stdout)
	}
	if r.Stderr != "" {
		fmt.Fprint(stderr, r.Stderr)
	}
	return r.Err
}

func (m *MockExecutor) ExecuteInteractive(ctx context.Context, dir string, name string, args ...string) error {
	r := m.record(dir, name, args)
	return r.Err
}

// MockFileSystem is an in-memory FileSystem for tests.
type MockFileSystem struct {
	mu    sync.Mutex
	files map[string][]byte
	dirs  map[string]bool
}

// NewMockFileSystem creates an empty MockFileSystem.
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		files: make(map[string][]byte),
		dirs:  make(map[string]bool),
	}
}

func (m *MockFileSystem) ReadFile(path string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.files[path]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	return data, nil
}

func (m *MockFileSystem) WriteFile(path string, data []byte, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[path] = data
	return nil
}

func (m *MockFileSystem) MkdirAll(path string, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for p := path; p != "/" && p != "." && p != ""; p = filepath.Dir(p) {
		m.dirs[p] = true
	}
	return nil
}

func (m *MockFileSystem) Remove(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.files[path]; !ok && !m.dirs[path] {
		return &fs.PathError{Op: "remove", Path: path, Err: fs.ErrNotExist}
	}
	delete(m.files, path)
	delete(m.dirs, path)
	return nil
}

func (m *MockFileSystem) Stat(path string) (fs.FileInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if data, ok := m.files[path]; ok {
		return &mockFileInfo{name: filepath.Base(path), size: int64(len(data))}, nil
	}
	if m.dirs[path] {
		return &mockFileInfo{name: filepath.Base(path), dir: true}, nil
	}
	return nil, &fs.PathError{Op: "stat", Path: path, Err: fs.ErrNotExist}
}

func (m *MockFileSystem) Exists(path string) bool {
	_, err := m.Stat(path)
	return err == nil
}

func (m *MockFileSystem) ReadDir(path string) ([]fs.DirEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	seen := make(map[string]bool)
	var entries []fs.DirEntry

	add := func(child string, dir bool) {
		rel := strings.TrimPrefix(child, path+string(filepath.Separator))
		if rel == child || rel == "" {
			return
		}
		name := strings.SplitN(rel, string(filepath.Separator), 2)[0]
		if name != rel {
			dir = true
		}
		if !seen[name] {
			seen[name] = true
			entries = append(entries, &mockDirEntry{name: name, dir: dir})
		}
	}

	for f := range m.files {
		add(f, false)
	}
	for d := range m.dirs {
		add(d, true)
	}

	if len(entries) == 0 && !m.dirs[path] {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
	return entries, nil
}

type mockFileInfo struct {
	name string
	size int64
	dir  bool
}

func (i *mockFileInfo) Name() string       { return i.name }
func (i *mockFileInfo) Size() int64        { return i.size }
func (i *mockFileInfo) Mode() fs.FileMode  { return 0644 }
func (i *mockFileInfo) ModTime() time.Time { return time.Time{} }
func (i *mockFileInfo) IsDir() bool        { return i.dir }
func (i *mockFileInfo) Sys() any           { return nil }

type mockDirEntry struct {
	name string
	dir  bool
}

func (e *mockDirEntry) Name() string               { return e.name }
func (e *mockDirEntry) IsDir() bool                { return e.dir }
func (e *mockDirEntry) Type() fs.FileMode          { return 0 }
func (e *mockDirEntry) Info() (fs.FileInfo, error) { return &mockFileInfo{name: e.name, dir: e.dir}, nil }
