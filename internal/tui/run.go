package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wpscout/wpscout/internal/types"
)

// Run starts the interactive browser over the scan results.
func Run(installs []types.Install) error {
	m := NewModel(installs)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}
