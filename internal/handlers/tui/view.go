package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorAccentMain))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorHelpText))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorError))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorRunning))

	captionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSecondaryText))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorBorder)).
			Padding(1, 2)
)

// View renders the current mode
func (m DashboardModel) View() string {
	switch m.mode {
	case modeLocked:
		return m.viewLocked()
	case modeAdd:
		return m.viewAdd()
	case modeEditPrice:
		return m.viewEditPrice()
	case modeConfirmDelete:
		return m.viewConfirmDelete()
	case modeReports:
		return m.viewReports()
	default:
		return m.viewDashboard()
	}
}

func (m DashboardModel) viewLocked() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("TMS — Station Dashboard"))
	b.WriteString("\n\n")
	b.WriteString("Enter PIN: " + m.pinInput.View())
	if m.pinError {
		b.WriteString("\n" + errorStyle.Render("wrong PIN"))
	}
	b.WriteString("\n\n" + helpStyle.Render("enter confirm · esc quit"))
	return boxStyle.Render(b.String())
}

func (m DashboardModel) viewDashboard() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("TMS — Station Dashboard"))
	b.WriteString("\n\n")
	b.WriteString(m.table.View())
	b.WriteString("\n")

	if m.status != "" {
		if m.statErr {
			b.WriteString(errorStyle.Render(m.status))
		} else {
			b.WriteString(statusStyle.Render(m.status))
		}
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("s start · f finish · r reset · a add · e edit price · d delete · tab reports · q quit"))
	return b.String()
}

func (m DashboardModel) viewAdd() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Add game station"))
	b.WriteString("\n\n")
	for i := range m.addInputs {
		b.WriteString(m.addInputs[i].View())
		b.WriteString("\n")
	}
	if m.addError != "" {
		b.WriteString("\n" + errorStyle.Render(m.addError))
	}
	b.WriteString("\n" + helpStyle.Render("tab next field · enter save · esc cancel"))
	return boxStyle.Render(b.String())
}

func (m DashboardModel) viewEditPrice() string {
	target := m.editTarget
	if target == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Edit hourly price"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%s / %s (currently %.2f)\n\n", target.CategoryName, target.InstanceName, target.PricePerHour))
	b.WriteString(m.editInput.View())
	if m.editError != "" {
		b.WriteString("\n" + errorStyle.Render(m.editError))
	}
	b.WriteString("\n\n" + helpStyle.Render("enter save · esc cancel"))
	return boxStyle.Render(b.String())
}

func (m DashboardModel) viewConfirmDelete() string {
	target := m.deleteTarget
	if target == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Delete station"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Delete %s / %s and all of its history?", target.CategoryName, target.InstanceName))
	b.WriteString("\n\n" + helpStyle.Render("y confirm · any other key cancel"))
	return boxStyle.Render(b.String())
}

func (m DashboardModel) viewReports() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Reports — %s", m.reportPeriod)))
	b.WriteString("\n\n")

	switch {
	case m.reportErr != nil:
		b.WriteString(errorStyle.Render(m.reportErr.Error()))
	case m.report == nil:
		b.WriteString(captionStyle.Render("loading..."))
	default:
		summary := m.report.Summary
		b.WriteString(fmt.Sprintf("Sessions: %d    Earnings: %.2f    Played: %s\n\n",
			summary.Sessions, summary.TotalEarnings, formatElapsed(summary.TotalSeconds)))

		for _, category := range summary.Categories {
			b.WriteString(fmt.Sprintf("  %-16s %3d sessions  %8.2f\n",
				category.CategoryName, category.Sessions, category.Earnings))
		}

		if summary.Sessions > 0 {
			b.WriteString("\n" + captionStyle.Render("traffic by hour") + "\n")
			for hour, count := range summary.TrafficByHour {
				if count == 0 {
					continue
				}
				b.WriteString(fmt.Sprintf("  %02d:00  %s\n", hour, strings.Repeat("█", count)))
			}
		}
	}

	b.WriteString("\n" + helpStyle.Render("d daily · w weekly · m monthly · y yearly · esc back"))
	return b.String()
}
