package tui

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/chiro-hub/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
)

// statusTTL is how long a status line stays visible.
const statusTTL = 2 * time.Second

type leadLoader func() ([]models.Lead, error)

// leadBrowserModel lists local leads in a table. c copies the selected
// lead as JSON, r reloads, v toggles the build info window.
type leadBrowserModel struct {
	load      leadLoader
	copyText  func(string) error
	buildInfo models.AppBuildInfo

	table   table.Model
	leads   []models.Lead
	loading bool
	status  string
	errMsg  string

	showBuildInfo bool
}

func newLeadBrowserModel(load leadLoader, buildInfo models.AppBuildInfo) leadBrowserModel {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Name", Width: 24},
		{Title: "Chiropractor", Width: 18},
		{Title: "Created", Width: 25},
		{Title: "Fields", Width: 6},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
	)
	t.SetStyles(table.DefaultStyles())

	return leadBrowserModel{
		load:      load,
		copyText:  clipboard.WriteAll,
		buildInfo: buildInfo,
		table:     t,
		loading:   true,
	}
}

func (m leadBrowserModel) Init() tea.Cmd {
	return m.cmdLoad()
}

func (m leadBrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case leadsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.leads = msg.leads
		m.table.SetRows(leadRows(msg.leads))
		if m.table.Cursor() >= len(msg.leads) {
			m.table.SetCursor(max(len(msg.leads)-1, 0))
		}
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.status = "Lead copied to clipboard"
		return m, clearStatusAfter(statusTTL)

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.quit):
			return m, tea.Quit
		case m.showBuildInfo:
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.buildInfo) {
				m.showBuildInfo = false
			}
			return m, nil
		case key.Matches(msg, keys.buildInfo):
			m.showBuildInfo = true
			return m, nil
		case key.Matches(msg, keys.reload):
			m.loading = true
			return m, m.cmdLoad()
		case key.Matches(msg, keys.copy):
			lead, ok := m.selected()
			if !ok {
				return m, nil
			}
			return m, m.cmdCopy(lead)
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m leadBrowserModel) View() string {
	if m.showBuildInfo {
		return renderBuildInfoWindow(m.buildInfo)
	}

	var body string
	switch {
	case m.loading:
		body = "Loading..."
	case len(m.leads) == 0:
		body = "No leads saved on this device"
	default:
		body = m.table.View()
	}

	if m.status != "" {
		body += "\n\n" + statusStyle.Render(m.status)
	}
	if m.errMsg != "" {
		body += "\n\n" + errorStyle.Render("Error: "+m.errMsg)
	}

	title := fmt.Sprintf("LOCAL LEADS (%d)", len(m.leads))
	return renderPage(title, body, "↑/↓ move  c copy JSON  r reload  v about  q quit")
}

func (m leadBrowserModel) selected() (models.Lead, bool) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.leads) {
		return models.Lead{}, false
	}
	return m.leads[idx], true
}

func (m leadBrowserModel) cmdLoad() tea.Cmd {
	load := m.load
	return func() tea.Msg {
		leads, err := load()
		return leadsLoadedMsg{leads: leads, err: err}
	}
}

func (m leadBrowserModel) cmdCopy(lead models.Lead) tea.Cmd {
	copyText := m.copyText
	return func() tea.Msg {
		data, err := json.MarshalIndent(lead, "", "  ")
		if err != nil {
			return copiedMsg{err: fmt.Errorf("encode lead: %w", err)}
		}
		if err = copyText(string(data)); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func leadRows(leads []models.Lead) []table.Row {
	rows := make([]table.Row, 0, len(leads))
	for i, lead := range leads {
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			fitText(valueOrDash(lead.Name), 24),
			fitText(valueOrDash(lead.Chiropractor), 18),
			valueOrDash(lead.CreatedAt),
			strconv.Itoa(len(lead.Extra)),
		})
	}
	return rows
}
