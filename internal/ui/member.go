package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/simonbystrom/teampulse/internal/team"
)

// memberModel is the self-service view for the current member.
type memberModel struct {
	store        *team.Store
	statusCursor int
	taskCursor   int
	bar          progress.Model
	styles       Styles
	width        int
}

func newMember(s Styles, store *team.Store) memberModel {
	m := memberModel{store: store}
	m.setStyles(s)
	return m
}

func (m *memberModel) setStyles(s Styles) {
	m.styles = s
	m.bar = progress.New(
		progress.WithSolidFill(s.ProgressColor),
		progress.WithWidth(30),
	)
	m.bar.EmptyColor = s.MutedColor
}

// focus points the status selector at cur's status and the task cursor at
// the first task.
func (m *memberModel) focus(cur team.Member, ok bool) {
	m.taskCursor = 0
	m.statusCursor = 0
	if !ok {
		return
	}
	for i, st := range team.Statuses() {
		if st == cur.Status {
			m.statusCursor = i
		}
	}
}

// Update handles keys for cur, the member acting as the current user.
func (m memberModel) Update(msg tea.KeyMsg, cur team.Member, ok bool) (memberModel, tea.Cmd) {
	if !ok {
		return m, nil
	}
	statuses := team.Statuses()

	switch key := msg.String(); key {
	case "1", "2", "3", "4":
		idx := int(key[0] - '1')
		m.statusCursor = idx
		return m, m.setStatus(cur, statuses[idx])
	case "left", "h":
		if m.statusCursor > 0 {
			m.statusCursor--
		}
	case "right", "l":
		if m.statusCursor < len(statuses)-1 {
			m.statusCursor++
		}
	case "enter":
		return m, m.setStatus(cur, statuses[m.statusCursor])
	case "j", "down":
		if m.taskCursor < len(cur.Tasks)-1 {
			m.taskCursor++
		}
	case "k", "up":
		if m.taskCursor > 0 {
			m.taskCursor--
		}
	case "+", "=":
		m.adjust(cur, team.ProgressStep)
	case "-", "_":
		m.adjust(cur, -team.ProgressStep)
	}
	return m, nil
}

func (m memberModel) setStatus(cur team.Member, st team.Status) tea.Cmd {
	if !m.store.UpdateStatus(cur.ID, st) {
		return nil
	}
	return notify(fmt.Sprintf("Status updated to %s", st), noteSuccess)
}

// adjust applies delta to the task under the cursor. Completed tasks and
// steps past either bound are ignored.
func (m memberModel) adjust(cur team.Member, delta int) {
	if m.taskCursor >= len(cur.Tasks) {
		return
	}
	t := cur.Tasks[m.taskCursor]
	if !canAdjust(t, delta) {
		return
	}
	m.store.AdjustProgress(cur.ID, t.ID, delta)
}

func canAdjust(t team.Task, delta int) bool {
	if t.Completed {
		return false
	}
	if delta > 0 {
		return t.Progress < 100
	}
	return t.Progress > 0
}

func (m memberModel) ViewContent(cur team.Member, ok bool) string {
	if !ok {
		return m.styles.WizardDim.Render("  No team member selected. Press u to pick one.") + "\n"
	}

	var b strings.Builder

	// Task load cards
	load := team.TaskLoad(cur)
	cards := []string{
		m.loadCard("Active tasks", load.Active),
		m.loadCard("Completed", load.Completed),
		m.loadCard("Total", load.Total),
	}
	b.WriteString("  " + lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	b.WriteString("\n\n")

	// Status selector
	b.WriteString(m.styles.Header.Render("  Your status"))
	b.WriteString("\n  ")
	for i, st := range team.Statuses() {
		label := fmt.Sprintf("%d %s", i+1, st)
		switch {
		case st == cur.Status:
			label = m.styles.Status(st).Reverse(true).Render(" " + label + " ")
		case i == m.statusCursor:
			label = m.styles.WizardActive.Underline(true).Render(" " + label + " ")
		default:
			label = m.styles.Muted.Render(" " + label + " ")
		}
		b.WriteString(label + " ")
	}
	b.WriteString("\n\n")

	// Tasks
	b.WriteString(m.styles.Header.Render("  My tasks"))
	b.WriteString("\n")
	if len(cur.Tasks) == 0 {
		b.WriteString(m.styles.WizardDim.Render("  No tasks assigned yet"))
		b.WriteString("\n")
		return b.String()
	}
	for i, t := range cur.Tasks {
		cursor := "  "
		if i == m.taskCursor {
			cursor = m.styles.WizardActive.Render("> ")
		}
		title := t.Title
		if i == m.taskCursor {
			title = m.styles.WizardActive.Render(title)
		}
		b.WriteString(fmt.Sprintf("  %s%s  %s", cursor, title, m.styles.Muted.Render("due "+dueLabel(t))))
		b.WriteString("\n")

		b.WriteString("      ")
		b.WriteString(m.bar.ViewAs(float64(t.Progress) / 100))
		b.WriteString("  ")
		b.WriteString(m.viewAdjustButtons(t))
		b.WriteString("\n")
	}
	return b.String()
}

// dueLabel formats the due date as "Jan 02, 2006", or the raw value when
// it does not parse.
func dueLabel(t team.Task) string {
	d := t.Due()
	if d.IsZero() {
		return t.DueDate
	}
	return d.Format("Jan 02, 2006")
}

func (m memberModel) loadCard(label string, n int) string {
	body := m.styles.Muted.Render(label) + "\n" + m.styles.Text.Bold(true).Render(fmt.Sprintf("%d", n))
	return m.styles.Card.Width(16).Render(body)
}

func (m memberModel) viewAdjustButtons(t team.Task) string {
	if t.Completed {
		return m.styles.Completed.Render("✓ Completed")
	}
	minus := m.styles.Text.Render("[-]")
	if !canAdjust(t, -team.ProgressStep) {
		minus = m.styles.Muted.Render("[-]")
	}
	plus := m.styles.Text.Render("[+]")
	if !canAdjust(t, team.ProgressStep) {
		plus = m.styles.Muted.Render("[+]")
	}
	return minus + " " + plus
}
