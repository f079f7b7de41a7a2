package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/simonbystrom/teampulse/internal/config"
	"github.com/simonbystrom/teampulse/internal/team"
)

// leadModel is the team lead's overview and member table.
type leadModel struct {
	store     *team.Store
	filter    team.Filter
	cursor    int
	search    textinput.Model
	searching bool
	gauge     progress.Model
	styles    Styles
	layout    config.Layout
	width     int
}

func newLead(s Styles, layout config.Layout, store *team.Store) leadModel {
	si := textinput.New()
	si.Placeholder = "Search people, email or tasks"
	si.Prompt = "Search: "
	si.CharLimit = 64

	m := leadModel{
		store:  store,
		search: si,
		layout: layout,
	}
	m.setStyles(s)
	return m
}

func (m *leadModel) setStyles(s Styles) {
	m.styles = s
	m.search.PromptStyle = s.WizardActive
	m.gauge = progress.New(
		progress.WithSolidFill(s.ProgressColor),
		progress.WithWidth(24),
		progress.WithoutPercentage(),
	)
	m.gauge.EmptyColor = s.MutedColor
}

func (m leadModel) visible() []team.Member {
	return m.filter.Apply(m.store.All())
}

func (m leadModel) selected() (team.Member, bool) {
	members := m.visible()
	if m.cursor < 0 || m.cursor >= len(members) {
		return team.Member{}, false
	}
	return members[m.cursor], true
}

func (m *leadModel) clampCursor() {
	n := len(m.visible())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m leadModel) filterLabel() string {
	if m.filter.Status == "" {
		return "all"
	}
	return strings.ToLower(string(m.filter.Status))
}

func (m leadModel) Update(msg tea.KeyMsg) (leadModel, tea.Cmd) {
	if m.searching {
		switch msg.String() {
		case "enter":
			m.searching = false
			m.search.Blur()
			return m, nil
		case "esc":
			m.searching = false
			m.search.Blur()
			m.search.SetValue("")
			m.filter.Query = ""
			m.clampCursor()
			return m, nil
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		m.filter.Query = m.search.Value()
		m.clampCursor()
		return m, cmd
	}

	switch msg.String() {
	case "j", "down":
		if m.cursor < len(m.visible())-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "f":
		m.filter.Status = team.NextStatusFilter(m.filter.Status)
		m.clampCursor()
	case "s":
		if m.filter.Sort == team.SortByName {
			m.filter.Sort = team.SortByTasks
		} else {
			m.filter.Sort = team.SortByName
		}
	case "/":
		m.searching = true
		m.search.Focus()
		return m, textinput.Blink
	case "esc":
		m.filter = team.Filter{Sort: m.filter.Sort}
		m.search.SetValue("")
		m.clampCursor()
	}
	return m, nil
}

func (m leadModel) ViewContent() string {
	all := m.store.All()
	sum := team.Summarize(all)

	var b strings.Builder
	b.WriteString(m.viewOverview(sum))
	b.WriteString("\n\n")
	b.WriteString(m.viewStatusCards(sum.Counts))
	b.WriteString("\n\n")
	b.WriteString(m.viewTable())
	return b.String()
}

func (m leadModel) viewOverview(sum team.Summary) string {
	maxWidth := max(m.width-8, 60)
	leftWidth := maxWidth * m.layout.OverviewWidth / 100
	rightWidth := maxWidth - leftWidth - 2

	var left strings.Builder
	left.WriteString(m.styles.Header.Render("  Engagement trend"))
	left.WriteString("\n")
	left.WriteString(m.viewTrend(sum, max(leftWidth-14, 8)))
	left.WriteString("\n")
	left.WriteString(fmt.Sprintf("  %s %s   %s %s",
		m.styles.Working.Render(fmt.Sprintf("%d", sum.Counts.Working)),
		m.styles.Muted.Render("working now"),
		m.styles.Offline.Render(fmt.Sprintf("%d", sum.Away)),
		m.styles.Muted.Render("away or offline"),
	))

	var right strings.Builder
	right.WriteString(m.styles.Header.Render("Employee availability"))
	right.WriteString("\n")
	for _, c := range sum.Availability() {
		right.WriteString(fmt.Sprintf("%-12s %s %s\n",
			c.Label,
			m.styles.Text.Bold(true).Render(fmt.Sprintf("%3d", c.Value)),
			m.styles.Muted.Render(c.Sublabel),
		))
	}
	right.WriteString("\n")
	right.WriteString(m.styles.Header.Render("Total employees"))
	right.WriteString(fmt.Sprintf(" %d\n", sum.Total))
	right.WriteString(m.gauge.ViewAs(float64(sum.ActivePercent()) / 100))
	right.WriteString(fmt.Sprintf(" %d%% active", sum.ActivePercent()))

	return lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(leftWidth).Render(left.String()),
		"  ",
		lipgloss.NewStyle().Width(rightWidth).Render(right.String()),
	)
}

// viewTrend draws the monthly series as horizontal bars scaled to the
// team size.
func (m leadModel) viewTrend(sum team.Summary, barWidth int) string {
	scale := max(sum.Total, 1)
	trend := sum.Trend()
	lines := make([]string, 0, len(trend))
	for _, p := range trend {
		n := p.Value * barWidth / scale
		bar := m.styles.Chart.Render(strings.Repeat("█", n)) +
			m.styles.Muted.Render(strings.Repeat("░", barWidth-n))
		lines = append(lines, fmt.Sprintf("  %s %s %d", p.Label, bar, p.Value))
	}
	return strings.Join(lines, "\n")
}

func (m leadModel) viewStatusCards(c team.StatusCounts) string {
	cards := make([]string, 0, len(team.Statuses()))
	for _, st := range team.Statuses() {
		body := m.styles.Status(st).Render(string(st)) + "\n" +
			m.styles.Text.Bold(true).Render(fmt.Sprintf("%d", c.Get(st))) + " " +
			m.styles.Muted.Render("members")
		card := m.styles.Card
		if m.filter.Status == st {
			card = card.BorderForeground(m.styles.WizardActive.GetForeground())
		}
		cards = append(cards, card.Width(16).Render(body))
	}
	return "  " + lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func (m leadModel) viewTable() string {
	var b strings.Builder
	members := m.visible()

	b.WriteString(m.styles.Header.Render(fmt.Sprintf("  Team members (%d)", len(members))))
	b.WriteString("\n")
	if len(members) == 0 {
		b.WriteString(m.styles.WizardDim.Render("  No members match the current filter."))
		b.WriteString("\n")
		return b.String()
	}

	header := fmt.Sprintf("  %-4s %-22s %-30s %-10s %-6s", "", "Name", "Email", "Status", "Tasks")
	b.WriteString(m.styles.Header.Render(header))
	b.WriteString("\n")

	for i, mem := range members {
		styled := m.styles.Status(mem.Status).Render(string(mem.Status))
		// Pad to 10 visual characters; %-10s counts ANSI bytes.
		if w := lipgloss.Width(styled); w < 10 {
			styled += strings.Repeat(" ", 10-w)
		}
		row := fmt.Sprintf("  %-4s %-22s %-30s %s %-6d",
			mem.Initials(),
			truncate(mem.Name, 22),
			truncate(mem.Email, 30),
			styled,
			mem.ActiveTasks(),
		)
		if i == m.cursor {
			row = m.styles.Selected.Render(row)
		}
		b.WriteString(row)
		b.WriteString("\n")
	}
	return b.String()
}

func truncate(s string, max int) string {
	r := []rune(s)
	if lipgloss.Width(s) <= max || len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
