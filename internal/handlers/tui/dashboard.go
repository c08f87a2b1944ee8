package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/thkos/tms/internal/models"
	"github.com/thkos/tms/internal/services/reporting"
	"github.com/thkos/tms/internal/services/station"
)

type mode int

const (
	modeLocked mode = iota
	modeDashboard
	modeAdd
	modeEditPrice
	modeConfirmDelete
	modeReports
)

// refreshMsg re-renders the station table from the store snapshot
type refreshMsg time.Time

// opDoneMsg reports the outcome of a store operation
type opDoneMsg struct {
	status string
	err    error
}

// reportMsg carries a fetched report into the reports view
type reportMsg struct {
	period reporting.Period
	output *reporting.FetchOutput
	err    error
}

// DashboardModel is the root TUI model for the station dashboard
type DashboardModel struct {
	store   station.Service
	reports reporting.Service
	pin     string

	mode    mode
	width   int
	height  int
	status  string
	statErr bool

	// Station table and the snapshot its rows were built from
	table   table.Model
	visible []*models.GameInstance

	// PIN gate
	pinInput textinput.Model
	pinError bool

	// Add-game form
	addInputs []textinput.Model
	addFocus  int
	addError  string

	// Edit-price form
	editInput  textinput.Model
	editTarget *models.GameInstance
	editError  string

	// Pending delete target
	deleteTarget *models.GameInstance

	// Reports view
	reportPeriod reporting.Period
	report       *reporting.FetchOutput
	reportErr    error
}

// NewDashboardModel creates the dashboard model
func NewDashboardModel(store station.Service, reports reporting.Service, pin string) DashboardModel {
	columns := []table.Column{
		{Title: "Category", Width: 14},
		{Title: "Instance", Width: 14},
		{Title: "Rate/h", Width: 8},
		{Title: "Status", Width: 10},
		{Title: "Elapsed", Width: 10},
		{Title: "Cost", Width: 8},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		BorderBottom(true).
		Bold(true).
		Foreground(lipgloss.Color(ColorAccentMain))
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Background(lipgloss.Color(ColorBorder)).
		Bold(false)
	t.SetStyles(styles)

	pinInput := textinput.New()
	pinInput.Placeholder = "PIN"
	pinInput.EchoMode = textinput.EchoPassword
	pinInput.CharLimit = 4
	pinInput.Width = 8
	pinInput.Focus()

	editInput := textinput.New()
	editInput.Placeholder = "New price per hour"
	editInput.Width = 12

	labels := []string{"Category (e.g. Billiards)", "Instance (e.g. Table 1)", "Price per hour"}
	addInputs := make([]textinput.Model, len(labels))
	for i, label := range labels {
		input := textinput.New()
		input.Placeholder = label
		input.Width = 28
		addInputs[i] = input
	}

	return DashboardModel{
		store:        store,
		reports:      reports,
		pin:          pin,
		mode:         modeLocked,
		table:        t,
		pinInput:     pinInput,
		addInputs:    addInputs,
		editInput:    editInput,
		reportPeriod: reporting.PeriodDaily,
	}
}

// Init schedules the first table refresh
func (m DashboardModel) Init() tea.Cmd {
	return tea.Batch(refreshTick(), textinput.Blink)
}

func refreshTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return refreshMsg(t)
	})
}

// Update handles messages
func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case refreshMsg:
		m.refreshRows()
		return m, refreshTick()

	case opDoneMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
			m.statErr = true
		} else {
			m.status = msg.status
			m.statErr = false
		}
		m.refreshRows()
		return m, nil

	case reportMsg:
		m.reportPeriod = msg.period
		m.report = msg.output
		m.reportErr = msg.err
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeLocked:
			return m.updateLocked(msg)
		case modeAdd:
			return m.updateAdd(msg)
		case modeEditPrice:
			return m.updateEditPrice(msg)
		case modeConfirmDelete:
			return m.updateConfirmDelete(msg)
		case modeReports:
			return m.updateReports(msg)
		default:
			return m.updateDashboard(msg)
		}
	}

	return m, nil
}

func (m DashboardModel) updateLocked(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "enter":
		if m.pinInput.Value() == m.pin {
			m.mode = modeDashboard
			m.pinError = false
			m.refreshRows()
			return m, nil
		}
		m.pinError = true
		m.pinInput.SetValue("")
		return m, nil
	}

	var cmd tea.Cmd
	m.pinInput, cmd = m.pinInput.Update(msg)
	return m, cmd
}

func (m DashboardModel) updateDashboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "s":
		if instance := m.selected(); instance != nil {
			return m, m.startCmd(instance.ID)
		}
		return m, nil

	case "r":
		if instance := m.selected(); instance != nil {
			return m, m.resetCmd(instance.ID)
		}
		return m, nil

	case "f":
		if instance := m.selected(); instance != nil {
			return m, m.finishCmd(instance.ID)
		}
		return m, nil

	case "a":
		m.mode = modeAdd
		m.addFocus = 0
		m.addError = ""
		for i := range m.addInputs {
			m.addInputs[i].SetValue("")
			m.addInputs[i].Blur()
		}
		m.addInputs[0].Focus()
		return m, textinput.Blink

	case "e":
		if instance := m.selected(); instance != nil {
			m.editTarget = instance
			m.editError = ""
			m.editInput.SetValue(strconv.FormatFloat(instance.PricePerHour, 'f', -1, 64))
			m.editInput.Focus()
			m.mode = modeEditPrice
			return m, textinput.Blink
		}
		return m, nil

	case "d":
		if instance := m.selected(); instance != nil {
			m.deleteTarget = instance
			m.mode = modeConfirmDelete
		}
		return m, nil

	case "tab":
		m.mode = modeReports
		return m, m.reportCmd(m.reportPeriod)
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m DashboardModel) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.mode = modeDashboard
		return m, nil

	case "tab", "shift+tab", "up", "down":
		if msg.String() == "shift+tab" || msg.String() == "up" {
			m.addFocus--
		} else {
			m.addFocus++
		}
		if m.addFocus < 0 {
			m.addFocus = len(m.addInputs) - 1
		}
		if m.addFocus >= len(m.addInputs) {
			m.addFocus = 0
		}
		cmds := make([]tea.Cmd, 0, len(m.addInputs))
		for i := range m.addInputs {
			if i == m.addFocus {
				cmds = append(cmds, m.addInputs[i].Focus())
			} else {
				m.addInputs[i].Blur()
			}
		}
		return m, tea.Batch(cmds...)

	case "enter":
		category := strings.TrimSpace(m.addInputs[0].Value())
		instance := strings.TrimSpace(m.addInputs[1].Value())
		priceRaw := strings.TrimSpace(m.addInputs[2].Value())

		price, err := strconv.ParseFloat(priceRaw, 64)
		if category == "" || instance == "" || err != nil || price <= 0 {
			m.addError = "category, instance and a positive hourly price are required"
			return m, nil
		}

		m.mode = modeDashboard
		return m, m.addCmd(category, instance, price)
	}

	var cmd tea.Cmd
	m.addInputs[m.addFocus], cmd = m.addInputs[m.addFocus].Update(msg)
	return m, cmd
}

func (m DashboardModel) updateEditPrice(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.editTarget = nil
		m.mode = modeDashboard
		return m, nil

	case "enter":
		target := m.editTarget
		price, err := strconv.ParseFloat(strings.TrimSpace(m.editInput.Value()), 64)
		if err != nil || price <= 0 || target == nil {
			m.editError = "a positive hourly price is required"
			return m, nil
		}

		m.editTarget = nil
		m.mode = modeDashboard
		return m, m.updateCmd(target.ID, price)
	}

	var cmd tea.Cmd
	m.editInput, cmd = m.editInput.Update(msg)
	return m, cmd
}

func (m DashboardModel) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		target := m.deleteTarget
		m.deleteTarget = nil
		m.mode = modeDashboard
		if target == nil {
			return m, nil
		}
		return m, m.deleteCmd(target.CategoryName, target.InstanceName)
	default:
		m.deleteTarget = nil
		m.mode = modeDashboard
		return m, nil
	}
}

func (m DashboardModel) updateReports(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "esc", "tab":
		m.mode = modeDashboard
		return m, nil
	case "1", "d":
		return m, m.reportCmd(reporting.PeriodDaily)
	case "2", "w":
		return m, m.reportCmd(reporting.PeriodWeekly)
	case "3", "m":
		return m, m.reportCmd(reporting.PeriodMonthly)
	case "4", "y":
		return m, m.reportCmd(reporting.PeriodYearly)
	}
	return m, nil
}

// selected returns the instance behind the highlighted table row
func (m *DashboardModel) selected() *models.GameInstance {
	cursor := m.table.Cursor()
	if cursor < 0 || cursor >= len(m.visible) {
		return nil
	}
	return m.visible[cursor]
}

// refreshRows rebuilds the table rows from a fresh store snapshot
func (m *DashboardModel) refreshRows() {
	output, err := m.store.Instances(context.Background(), &station.InstancesInput{})
	if err != nil {
		m.status = err.Error()
		m.statErr = true
		return
	}
	m.visible = output.Records

	rows := make([]table.Row, 0, len(output.Records))
	for _, record := range output.Records {
		rows = append(rows, table.Row{
			record.CategoryName,
			record.InstanceName,
			fmt.Sprintf("%.2f", record.PricePerHour),
			string(record.Status()),
			formatElapsed(record.ElapsedTime),
			fmt.Sprintf("%.2f", record.TotalCost),
		})
	}
	m.table.SetRows(rows)
}

func (m DashboardModel) startCmd(id int64) tea.Cmd {
	return func() tea.Msg {
		_, err := m.store.Start(context.Background(), &station.StartInput{ID: id})
		return opDoneMsg{status: "timer started", err: err}
	}
}

func (m DashboardModel) resetCmd(id int64) tea.Cmd {
	return func() tea.Msg {
		_, err := m.store.Reset(context.Background(), &station.ResetInput{ID: id})
		return opDoneMsg{status: "timer reset", err: err}
	}
}

func (m DashboardModel) finishCmd(id int64) tea.Cmd {
	return func() tea.Msg {
		output, err := m.store.Finish(context.Background(), &station.FinishInput{ID: id})
		if err != nil {
			return opDoneMsg{err: err}
		}
		return opDoneMsg{status: fmt.Sprintf("session billed: %.2f", output.FinalCost)}
	}
}

func (m DashboardModel) addCmd(category, instance string, price float64) tea.Cmd {
	return func() tea.Msg {
		_, err := m.store.AddGame(context.Background(), &station.AddGameInput{
			CategoryName: category,
			InstanceName: instance,
			PricePerHour: price,
		})
		return opDoneMsg{status: fmt.Sprintf("added %s / %s", category, instance), err: err}
	}
}

func (m DashboardModel) updateCmd(id int64, price float64) tea.Cmd {
	return func() tea.Msg {
		_, err := m.store.UpdateGame(context.Background(), &station.UpdateGameInput{
			ID:           id,
			PricePerHour: price,
		})
		return opDoneMsg{status: fmt.Sprintf("price updated to %.2f", price), err: err}
	}
}

func (m DashboardModel) deleteCmd(category, instance string) tea.Cmd {
	return func() tea.Msg {
		_, err := m.store.DeleteGame(context.Background(), &station.DeleteGameInput{
			CategoryName: category,
			InstanceName: instance,
		})
		return opDoneMsg{status: fmt.Sprintf("deleted %s / %s", category, instance), err: err}
	}
}

func (m DashboardModel) reportCmd(period reporting.Period) tea.Cmd {
	return func() tea.Msg {
		output, err := m.reports.Fetch(context.Background(), &reporting.FetchInput{Period: period})
		return reportMsg{period: period, output: output, err: err}
	}
}

// formatElapsed renders seconds as h:mm:ss
func formatElapsed(seconds int64) string {
	h := seconds / 3600
	mSec := (seconds % 3600) / 60
	s := seconds % 60
	return fmt.Sprintf("%d:%02d:%02d", h, mSec, s)
}
