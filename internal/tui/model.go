// Package tui provides the Bubble Tea workout summary viewer.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/fittrack/internal/model"
	"github.com/verte-zerg/fittrack/internal/report"
)

type styles struct {
	title       lipgloss.Style
	card        lipgloss.Style
	cardTitle   lipgloss.Style
	cardValue   lipgloss.Style
	message     lipgloss.Style
	footer      lipgloss.Style
	tableHeader lipgloss.Style
}

func newStyles(useColor bool) styles {
	card := lipgloss.NewStyle().
		Padding(0, 1).
		Border(lipgloss.RoundedBorder(), true)
	if !useColor {
		return styles{
			title:       lipgloss.NewStyle().Bold(true).Padding(0, 1),
			card:        card,
			cardTitle:   lipgloss.NewStyle(),
			cardValue:   lipgloss.NewStyle().Bold(true),
			message:     lipgloss.NewStyle(),
			footer:      lipgloss.NewStyle(),
			tableHeader: lipgloss.NewStyle().Bold(true),
		}
	}
	return styles{
		title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1),
		card:        card.BorderForeground(lipgloss.Color("#4A4A4A")),
		cardTitle:   lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C")),
		cardValue:   lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true),
		message:     lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")),
		footer:      lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E")),
		tableHeader: lipgloss.NewStyle().Foreground(lipgloss.Color("#C0C0C0")).Bold(true),
	}
}

// Model implements the Bubble Tea workout summary UI.
type Model struct {
	results []model.Result
	table   table.Model
	styles  styles

	width  int
	height int

	showMessage bool
}

// NewModel constructs a summary viewer model for precomputed results.
func NewModel(results []model.Result, useColor bool) *Model {
	st := newStyles(useColor)
	return &Model{
		results: results,
		table:   buildResultTable(results, st),
		styles:  st,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetWidth(msg.Width)
		return m, nil
	case tea.KeyMsg:
		switch {
		case msg.Type == tea.KeyCtrlC, msg.String() == "q", msg.Type == tea.KeyEsc:
			return m, tea.Quit
		case msg.Type == tea.KeyTab:
			m.showMessage = !m.showMessage
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	sections := []string{
		m.styles.title.Render("Workout Summaries"),
		m.table.View(),
		m.renderDetail(),
		renderFooter(m.showMessage, m.styles),
	}
	return strings.Join(sections, "\n")
}

func (m *Model) renderDetail() string {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.results) {
		return ""
	}
	res := m.results[idx]
	if m.showMessage {
		return m.styles.message.Render(report.Message(res))
	}
	return renderCards(res, m.styles)
}

func renderCards(res model.Result, st styles) string {
	cards := []string{
		metricCard(st, "Duration", fmt.Sprintf("%.2f h", res.DurationH)),
		metricCard(st, "Distance", fmt.Sprintf("%.2f km", res.DistanceKM)),
		metricCard(st, "Mean speed", fmt.Sprintf("%.2f km/h", res.SpeedKMH)),
		metricCard(st, "Calories", fmt.Sprintf("%.2f kcal", res.Calories)),
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func metricCard(st styles, label, value string) string {
	content := fmt.Sprintf("%s\n%s", st.cardTitle.Render(label), st.cardValue.Render(value))
	return st.card.Render(content)
}

func renderFooter(showMessage bool, st styles) string {
	hint := "tab message view"
	if showMessage {
		hint = "tab card view"
	}
	return st.footer.Render(fmt.Sprintf("up/down select • %s • q quit", hint))
}

func buildResultTable(results []model.Result, st styles) table.Model {
	columns := []table.Column{
		{Title: "Type", Width: 10},
		{Title: "Duration (h)", Width: 12},
		{Title: "Distance (km)", Width: 13},
		{Title: "Speed (km/h)", Width: 12},
		{Title: "Calories", Width: 9},
	}
	rows := make([]table.Row, 0, len(results))
	for _, res := range results {
		rows = append(rows, table.Row{
			res.Type.String(),
			fmt.Sprintf("%.2f", res.DurationH),
			fmt.Sprintf("%.2f", res.DistanceKM),
			fmt.Sprintf("%.2f", res.SpeedKMH),
			fmt.Sprintf("%.2f", res.Calories),
		})
	}
	height := len(rows)
	if height < 1 {
		height = 1
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)
	tableStyles := table.DefaultStyles()
	tableStyles.Header = st.tableHeader.
		Border(lipgloss.NormalBorder(), false, false, true, false)
	tableStyles.Selected = tableStyles.Cell.Bold(true)
	t.SetStyles(tableStyles)
	return t
}
