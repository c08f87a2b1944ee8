package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/thkos/tms/internal/services/reporting"
	"github.com/thkos/tms/internal/services/station"
)

// Run starts the interactive dashboard and blocks until it exits
func Run(store station.Service, reports reporting.Service, pin string) error {
	model := NewDashboardModel(store, reports, pin)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
