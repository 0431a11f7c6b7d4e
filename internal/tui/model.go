package tui

import (
	"bytes"
	"fmt"
	"os"
	"strconv"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wpscout/wpscout/internal/types"
)

var (
	tableBorderStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.Color("240"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true).
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("7"))
)

// Model is the interactive results browser: a table of installs with a
// detail pane showing the highlighted marker file.
type Model struct {
	table      table.Model
	viewport   viewport.Model
	installs   []types.Install
	showDetail bool
	ready      bool
	quitting   bool
	width      int
	height     int
}

// NewModel builds the browser over a fixed result set.
func NewModel(installs []types.Install) Model {
	cols := []table.Column{
		{Title: "VERSION", Width: 12},
		{Title: "DEPTH", Width: 5},
		{Title: "PATH", Width: 60},
	}
	rows := make([]table.Row, 0, len(installs))
	for _, in := range installs {
		v := in.Version
		if v == "" {
			v = "unknown"
		}
		rows = append(rows, table.Row{v, strconv.Itoa(in.Depth), in.VersionPath})
	}
	t := table.New(table.WithColumns(cols), table.WithRows(rows), table.WithFocused(true))
	return Model{table: t, installs: installs}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.table.SetHeight(msg.Height - 6)
		m.viewport = viewport.New(msg.Width-4, msg.Height-6)
		m.ready = true
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			if m.showDetail {
				m.showDetail = false
				return m, nil
			}
			m.quitting = true
			return m, tea.Quit
		case "enter":
			if len(m.installs) > 0 && !m.showDetail {
				m.showDetail = true
				m.viewport.SetContent(m.detailContent())
				return m, nil
			}
		}
	}
	var cmd tea.Cmd
	if m.showDetail {
		m.viewport, cmd = m.viewport.Update(msg)
	} else {
		m.table, cmd = m.table.Update(msg)
	}
	return m, cmd
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	title := titleStyle.Render(fmt.Sprintf("wpscout — %d install(s)", len(m.installs)))
	if m.showDetail {
		return title + "\n" + tableBorderStyle.Render(m.viewport.View()) + "\n" +
			statusStyle.Render(" esc: back  q: quit ")
	}
	return title + "\n" + tableBorderStyle.Render(m.table.View()) + "\n" +
		statusStyle.Render(" enter: view marker  q: quit ")
}

// detailContent reads the selected marker file and highlights it as PHP.
// Falls back to the raw text when highlighting fails.
func (m Model) detailContent() string {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.installs) {
		return ""
	}
	in := m.installs[idx]
	b, err := os.ReadFile(in.VersionPath)
	if err != nil {
		return fmt.Sprintf("cannot read %s: %v", in.VersionPath, err)
	}
	var out bytes.Buffer
	if err := quick.Highlight(&out, string(b), "php", "terminal256", "monokai"); err != nil {
		return string(b)
	}
	return out.String()
}
