package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/simonbystrom/teampulse/internal/team"
)

type assignStep int

const (
	stepPickMember assignStep = iota
	stepTitle
	stepDueDate
	stepConfirm
)

const errMissingFields = "Please fill in all fields"

// memberItem implements list.DefaultItem for the assignee picker.
type memberItem struct {
	id     string
	name   string
	status team.Status
	active int
}

func (i memberItem) Title() string { return i.name }
func (i memberItem) Description() string {
	return fmt.Sprintf("%s · %d active", i.status, i.active)
}
func (i memberItem) FilterValue() string { return i.name }

type assignModel struct {
	step   assignStep
	err    string
	width  int
	styles Styles
	now    func() time.Time

	memberList list.Model
	titleInput textinput.Model
	dueInput   textinput.Model

	memberID   string
	memberName string
}

type assignDoneMsg struct {
	memberName string
	task       team.Task
}
type assignCancelMsg struct{}

func newAssign(s Styles, members []team.Member, preselect string, width int, now func() time.Time) assignModel {
	ti := textinput.New()
	ti.Placeholder = "task title"
	ti.CharLimit = 120

	di := textinput.New()
	di.Placeholder = "YYYY-MM-DD"
	di.CharLimit = len(team.DateLayout)

	delegate := list.NewDefaultDelegate()
	delegate.SetHeight(2)
	delegate.SetSpacing(0)
	delegate.Styles.SelectedTitle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(s.WizardActive.GetForeground()).
		Foreground(s.WizardActive.GetForeground()).
		Padding(0, 0, 0, 1)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedTitle.
		Foreground(s.WizardDim.GetForeground())
	delegate.Styles.NormalTitle = lipgloss.NewStyle().Padding(0, 0, 0, 2)
	delegate.Styles.NormalDesc = lipgloss.NewStyle().
		Foreground(s.WizardDim.GetForeground()).
		Padding(0, 0, 0, 2)
	delegate.Styles.DimmedTitle = lipgloss.NewStyle().
		Foreground(s.WizardDim.GetForeground()).
		Padding(0, 0, 0, 2)

	items := make([]list.Item, 0, len(members))
	selected := 0
	for i, m := range members {
		items = append(items, memberItem{id: m.ID, name: m.Name, status: m.Status, active: m.ActiveTasks()})
		if m.ID == preselect {
			selected = i
		}
	}

	listWidth := max(width*45/100-8, 20)
	ml := list.New(items, delegate, listWidth, 14)
	ml.SetShowTitle(false)
	ml.SetShowStatusBar(false)
	ml.SetShowHelp(false)
	ml.SetFilteringEnabled(true)
	ml.DisableQuitKeybindings()
	ml.KeyMap.ShowFullHelp.SetEnabled(false)
	ml.KeyMap.CloseFullHelp.SetEnabled(false)
	ml.FilterInput.Prompt = "Filter: "
	ml.FilterInput.PromptStyle = s.WizardActive
	ml.Select(selected)

	return assignModel{
		step:       stepPickMember,
		width:      width,
		styles:     s,
		now:        now,
		memberList: ml,
		titleInput: ti,
		dueInput:   di,
	}
}

func (m assignModel) Init() tea.Cmd {
	return nil
}

// Update advances the wizard. store receives the task on confirmation.
func (m assignModel) Update(msg tea.Msg, store *team.Store) (assignModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	m.err = ""

	if keyMsg.String() == "esc" {
		if m.step == stepPickMember && (m.memberList.SettingFilter() || m.memberList.IsFiltered()) {
			return m.updatePickMember(keyMsg)
		}
		if m.step == stepPickMember {
			return m, func() tea.Msg { return assignCancelMsg{} }
		}
		m.step--
		m.focusStep()
		return m, nil
	}

	switch m.step {
	case stepPickMember:
		return m.updatePickMember(keyMsg)
	case stepTitle:
		return m.updateTitle(keyMsg)
	case stepDueDate:
		return m.updateDueDate(keyMsg)
	case stepConfirm:
		return m.updateConfirm(keyMsg, store)
	}
	return m, nil
}

func (m *assignModel) focusStep() {
	m.titleInput.Blur()
	m.dueInput.Blur()
	switch m.step {
	case stepTitle:
		m.titleInput.Focus()
	case stepDueDate:
		m.dueInput.Focus()
	}
}

func (m assignModel) updatePickMember(msg tea.KeyMsg) (assignModel, tea.Cmd) {
	wasFiltering := m.memberList.SettingFilter()

	var cmd tea.Cmd
	m.memberList, cmd = m.memberList.Update(msg)

	if msg.String() == "enter" && !wasFiltering && !m.memberList.SettingFilter() {
		item, ok := m.memberList.SelectedItem().(memberItem)
		if !ok {
			m.err = errMissingFields
			return m, cmd
		}
		m.memberID = item.id
		m.memberName = item.name
		m.step = stepTitle
		m.focusStep()
		return m, textinput.Blink
	}
	return m, cmd
}

func (m assignModel) updateTitle(msg tea.KeyMsg) (assignModel, tea.Cmd) {
	if msg.String() == "enter" {
		if strings.TrimSpace(m.titleInput.Value()) == "" {
			m.err = errMissingFields
			return m, nil
		}
		m.step = stepDueDate
		m.focusStep()
		return m, textinput.Blink
	}
	var cmd tea.Cmd
	m.titleInput, cmd = m.titleInput.Update(msg)
	return m, cmd
}

func (m assignModel) updateDueDate(msg tea.KeyMsg) (assignModel, tea.Cmd) {
	switch msg.String() {
	case "enter":
		due := strings.TrimSpace(m.dueInput.Value())
		if due == "" {
			m.err = errMissingFields
			return m, nil
		}
		if _, err := time.Parse(team.DateLayout, due); err != nil {
			m.err = fmt.Sprintf("due date %q must be a date like %s", due, m.now().Format(team.DateLayout))
			return m, nil
		}
		m.step = stepConfirm
		m.focusStep()
		return m, nil
	case "tab":
		// Suggest a week from today.
		if m.dueInput.Value() == "" {
			m.dueInput.SetValue(m.now().AddDate(0, 0, 7).Format(team.DateLayout))
			m.dueInput.CursorEnd()
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.dueInput, cmd = m.dueInput.Update(msg)
	return m, cmd
}

func (m assignModel) updateConfirm(msg tea.KeyMsg, store *team.Store) (assignModel, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		title := strings.TrimSpace(m.titleInput.Value())
		due := strings.TrimSpace(m.dueInput.Value())
		if m.memberID == "" || title == "" || due == "" {
			m.err = errMissingFields
			return m, nil
		}
		task, ok := store.AssignTask(m.memberID, team.NewTask{Title: title, DueDate: due})
		if !ok {
			m.err = fmt.Sprintf("%s is no longer on the team", m.memberName)
			return m, nil
		}
		name := m.memberName
		return m, func() tea.Msg { return assignDoneMsg{memberName: name, task: task} }
	case "n":
		m.step = stepTitle
		m.focusStep()
		return m, textinput.Blink
	}
	return m, nil
}

func (m assignModel) ViewContent() string {
	var b strings.Builder

	b.WriteString(m.styles.WizardTitle.Render("Assign Task"))
	b.WriteString("\n\n")

	if m.memberName != "" && m.step > stepPickMember {
		b.WriteString(m.styles.WizardDim.Render("Assignee: " + m.memberName))
		b.WriteString("\n")
	}

	switch m.step {
	case stepPickMember:
		b.WriteString(m.styles.WizardActive.Render("Who should own this task?"))
		b.WriteString("\n\n")
		b.WriteString(m.memberList.View())
		b.WriteString("\n")
		b.WriteString(m.styles.Help.Render("  /: filter │ enter: select │ esc: cancel"))

	case stepTitle:
		b.WriteString(m.styles.WizardActive.Render("Task title"))
		b.WriteString("\n\n")
		b.WriteString("  " + m.titleInput.View())
		b.WriteString("\n\n")
		b.WriteString(m.styles.Help.Render("  enter: continue │ esc: back"))

	case stepDueDate:
		b.WriteString(m.styles.WizardDim.Render("Title: " + m.titleInput.Value()))
		b.WriteString("\n")
		b.WriteString(m.styles.WizardActive.Render("Due date"))
		b.WriteString("\n\n")
		b.WriteString("  " + m.dueInput.View())
		b.WriteString("\n\n")
		b.WriteString(m.styles.Help.Render("  enter: continue │ tab: in one week │ esc: back"))

	case stepConfirm:
		b.WriteString(m.styles.WizardActive.Render("Confirm"))
		b.WriteString("\n\n")
		b.WriteString(fmt.Sprintf("  Assignee:  %s\n", m.memberName))
		b.WriteString(fmt.Sprintf("  Title:     %s\n", m.titleInput.Value()))
		b.WriteString(fmt.Sprintf("  Due:       %s\n", m.dueInput.Value()))
		b.WriteString("\n")
		b.WriteString(m.styles.Help.Render("  y/enter: assign │ n: edit │ esc: back"))
	}

	if m.err != "" {
		b.WriteString("\n\n")
		b.WriteString(m.styles.Error.Render("  " + m.err))
	}

	return b.String()
}
