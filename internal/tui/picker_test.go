package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/autumn-birds/micabox/internal/orchestrator"
)

func testEntries() []MachineEntry {
	return []MachineEntry{
		{Name: "default", Box: "debian/contrib-testing64", Forwards: 2, State: orchestrator.StateRunning},
		{Name: "full", Box: "debian/contrib-testing64", Forwards: 2, State: orchestrator.StateNotCreated},
	}
}

func TestMachineItemMethods(t *testing.T) {
	item := machineItem{entry: testEntries()[0]}

	t.Run("Title", func(t *testing.T) {
		if got := item.Title(); got != "default" {
			t.Errorf("Title() = %q, want %q", got, "default")
		}
	})

	t.Run("FilterValue", func(t *testing.T) {
		if got := item.FilterValue(); got != "default" {
			t.Errorf("FilterValue() = %q, want %q", got, "default")
		}
	})

	t.Run("Description", func(t *testing.T) {
		desc := item.Description()
		if !strings.Contains(desc, "✓") {
			t.Error("Description should contain running status icon")
		}
		if !strings.Contains(desc, "debian/contrib-testing64") {
			t.Error("Description should contain box image")
		}
		if !strings.Contains(desc, "2 forwards") {
			t.Error("Description should contain forward count")
		}
	})

	t.Run("Description not created", func(t *testing.T) {
		item := machineItem{entry: testEntries()[1]}
		if !strings.Contains(item.Description(), "○") {
			t.Error("Description should contain not-created status icon")
		}
	})
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestPickerKeyActions(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.Msg
		want Action
	}{
		{"enter is ssh", tea.KeyMsg{Type: tea.KeyEnter}, ActionSSH},
		{"u is up", keyMsg("u"), ActionUp},
		{"h is halt", keyMsg("h"), ActionHalt},
		{"q quits", keyMsg("q"), ActionQuit},
		{"esc quits", tea.KeyMsg{Type: tea.KeyEsc}, ActionQuit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewPicker(testEntries())
			updated, cmd := m.Update(tt.msg)
			result := updated.(Model).Result()

			if result.Action != tt.want {
				t.Errorf("Action = %d, want %d", result.Action, tt.want)
			}
			if cmd == nil {
				t.Error("expected tea.Quit command")
			}
			if tt.want != ActionQuit && result.Machine != "default" {
				t.Errorf("Machine = %q, want the selected machine", result.Machine)
			}
		})
	}
}

func TestPickerViewShowsHelp(t *testing.T) {
	m := NewPicker(testEntries())
	view := m.View()
	for _, want := range []string{"[enter] SSH", "[u] Up", "[h] Halt", "[q] Quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestRunPickerEmpty(t *testing.T) {
	result, err := RunPicker(nil)
	if err != nil {
		t.Fatalf("RunPicker failed: %v", err)
	}
	if result.Action != ActionNone {
		t.Errorf("Action = %d, want ActionNone", result.Action)
	}
}
