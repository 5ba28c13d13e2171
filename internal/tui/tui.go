package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func NewApp() *Model {
	columns := []table.Column{
		{Title: "Status", Width: 8},
		{Title: "ID", Width: 10},
		{Title: "Name", Width: 60},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(20),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Bold(true).
		Foreground(colorWhite).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(colorGray).
		BorderBottom(true)
	styles.Selected = styles.Selected.
		Foreground(colorWhite).
		Background(colorDarkGray).
		Bold(true)
	t.SetStyles(styles)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(colorYellow)

	return &Model{
		client:  NewClient(),
		table:   t,
		spinner: s,
		loaded:  make(map[string]bool),
		loading: make(map[string]bool),
		failed:  make(map[string]bool),
	}
}

func (m *Model) Init() tea.Cmd {
	m.fetching = true
	return tea.Batch(m.spinner.Tick, fetchContests(m.client))
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "r":
			if !m.fetching {
				m.fetching = true
				m.err = nil
				return m, tea.Batch(m.spinner.Tick, fetchContests(m.client))
			}
			return m, nil

		case "enter":
			return m.selectContest()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if msg.Height > 10 {
			m.table.SetHeight(msg.Height - 8)
		}

	case contestListMsg:
		m.fetching = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.contests = msg.contests
		for _, id := range msg.loaded {
			m.loaded[id] = true
		}
		m.refreshRows()
		return m, nil

	case loadResultMsg:
		delete(m.loading, msg.contestID)
		if msg.err != nil {
			m.failed[msg.contestID] = true
		} else {
			m.loaded[msg.contestID] = true
			delete(m.failed, msg.contestID)
		}
		m.refreshRows()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.fetching || len(m.loading) > 0 {
			return m, cmd
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m *Model) View() string {
	view := titleStyle.Render("Codeforces Contest Loader") + "\n"

	if m.err != nil {
		view += errorStyle.Render(fmt.Sprintf("Error: %v", m.err)) + "\n"
		view += helpStyle.Render("r: retry • q: quit") + "\n"
		return view
	}

	if m.fetching {
		view += statusStyle.Render(m.spinner.View()+" Fetching contests...") + "\n"
		return view
	}

	view += tableBorderStyle.Render(m.table.View()) + "\n"
	view += statusStyle.Render(m.statusLine()) + "\n"
	view += helpStyle.Render("enter: load contest • r: refresh • q: quit") + "\n"

	return view
}

func (m *Model) selectContest() (tea.Model, tea.Cmd) {
	row := m.table.SelectedRow()
	if row == nil {
		return m, nil
	}

	contestID := row[1]
	if m.loaded[contestID] || m.loading[contestID] {
		return m, nil
	}

	m.loading[contestID] = true
	delete(m.failed, contestID)
	m.refreshRows()

	return m, tea.Batch(m.spinner.Tick, loadContest(m.client, contestID))
}

func (m *Model) refreshRows() {
	rows := make([]table.Row, 0, len(m.contests))
	for _, contest := range m.contests {
		rows = append(rows, table.Row{m.statusGlyph(contest.ID), contest.ID, contest.Name})
	}
	m.table.SetRows(rows)
}

func (m *Model) statusGlyph(contestID string) string {
	switch {
	case m.loaded[contestID]:
		return loadedGlyph
	case m.loading[contestID]:
		return loadingGlyph
	case m.failed[contestID]:
		return failedGlyph
	default:
		return ""
	}
}

func (m *Model) statusLine() string {
	line := fmt.Sprintf("%d contests, %d loaded", len(m.contests), len(m.loaded))
	if n := len(m.loading); n > 0 {
		line += fmt.Sprintf(" • %s loading %d", m.spinner.View(), n)
	}
	return line
}
