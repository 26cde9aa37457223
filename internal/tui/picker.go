// Package tui provides terminal user interface components for micabox
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/autumn-birds/micabox/internal/orchestrator"
)

// Action represents the action to take after picker selection
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionSSH
	ActionHalt
	ActionQuit
)

// MachineEntry is one selectable machine with its current state.
type MachineEntry struct {
	Name     string
	Box      string
	Forwards int
	State    orchestrator.State
}

// PickerResult holds the result of the picker
type PickerResult struct {
	Action  Action
	Machine string
}

// machineItem implements list.Item for machine display
type machineItem struct {
	entry MachineEntry
}

func (i machineItem) Title() string {
	return i.entry.Name
}

func (i machineItem) Description() string {
	stateIcon := "●"
	switch i.entry.State {
	case orchestrator.StateRunning:
		stateIcon = "✓"
	case orchestrator.StateNotCreated:
		stateIcon = "○"
	case orchestrator.StateAborted:
		stateIcon = "⚠"
	}

	return fmt.Sprintf("%s %s | %s | %d forwards",
		stateIcon,
		i.entry.State,
		i.entry.Box,
		i.entry.Forwards,
	)
}

func (i machineItem) FilterValue() string {
	return i.entry.Name
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginBottom(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)
)

// Model is the bubbletea model for the machine picker
type Model struct {
	list     list.Model
	result   PickerResult
	quitting bool
	width    int
	height   int
}

// NewPicker creates a new machine picker
func NewPicker(entries []MachineEntry) Model {
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = machineItem{entry: e}
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = selectedStyle
	delegate.Styles.SelectedDesc = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	l := list.New(items, delegate, 80, 20)
	l.Title = "micabox - Select Machine"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle

	return Model{list: l}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height-4)
		return m, nil

	case tea.KeyMsg:
		// Don't handle keys if filtering
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "enter":
			if item, ok := m.list.SelectedItem().(machineItem); ok {
				m.result = PickerResult{
					Action:  ActionSSH,
					Machine: item.entry.Name,
				}
				m.quitting = true
				return m, tea.Quit
			}

		case "u":
			if item, ok := m.list.SelectedItem().(machineItem); ok {
				m.result = PickerResult{
					Action:  ActionUp,
					Machine: item.entry.Name,
				}
				m.quitting = true
				return m, tea.Quit
			}

		case "h":
			if item, ok := m.list.SelectedItem().(machineItem); ok {
				m.result = PickerResult{
					Action:  ActionHalt,
					Machine: item.entry.Name,
				}
				m.quitting = true
				return m, tea.Quit
			}

		case "q", "esc":
			m.result = PickerResult{Action: ActionQuit}
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	help := helpStyle.Render("[enter] SSH  [u] Up  [h] Halt  [/] Filter  [q] Quit")

	return m.list.View() + "\n" + help
}

// Result returns the picker result
func (m Model) Result() PickerResult {
	return m.result
}

// RunPicker runs the interactive machine picker
func RunPicker(entries []MachineEntry) (PickerResult, error) {
	if len(entries) == 0 {
		return PickerResult{Action: ActionNone}, nil
	}

	m := NewPicker(entries)
	p := tea.NewProgram(m, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return PickerResult{}, err
	}

	return finalModel.(Model).Result(), nil
}
