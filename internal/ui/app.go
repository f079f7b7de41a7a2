package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/simonbystrom/teampulse/internal/config"
	"github.com/simonbystrom/teampulse/internal/roster"
	"github.com/simonbystrom/teampulse/internal/session"
	"github.com/simonbystrom/teampulse/internal/team"
)

type view int

const (
	viewDashboard view = iota
	viewAssign
)

type AppModel struct {
	ctx     context.Context
	cfg     config.Config
	store   *team.Store
	loader  *roster.Loader
	session session.Session
	load    roster.State
	light   bool
	styles  Styles

	activeView view
	lead       leadModel
	member     memberModel
	assign     assignModel
	spinner    spinner.Model

	notifications []notification
	now           func() time.Time

	width  int
	height int
}

// NewApp builds the root model. A nil loader starts with whatever the store
// already holds.
func NewApp(ctx context.Context, cfg config.Config, store *team.Store, loader *roster.Loader, sess session.Session) AppModel {
	s := NewStyles(cfg.Colors)
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = s.WizardActive

	m := AppModel{
		ctx:        ctx,
		cfg:        cfg,
		store:      store,
		loader:     loader,
		session:    sess,
		styles:     s,
		activeView: viewDashboard,
		lead:       newLead(s, cfg.Layout, store),
		member:     newMember(s, store),
		spinner:    sp,
		now:        time.Now,
	}
	if loader != nil {
		m.load.Begin()
	}
	m.session.Reconcile(store.All())
	m.member.focus(m.currentMember())
	return m
}

func (m AppModel) Init() tea.Cmd {
	if m.loader == nil {
		return nil
	}
	return tea.Batch(m.spinner.Tick, m.loader.Cmd(m.ctx))
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.lead.width = msg.Width
		m.member.width = msg.Width
		m.assign.width = msg.Width
		return m, nil

	case roster.LoadedMsg:
		m.load.Finish(msg.Err)
		if msg.Err != nil {
			return m, nil
		}
		m.store.Replace(msg.Members)
		m.session.Reconcile(m.store.All())
		m.lead.clampCursor()
		m.member.focus(m.currentMember())
		return m, nil

	case spinner.TickMsg:
		if !m.load.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case notifyMsg:
		m.notifications = pushNotification(m.notifications, notification{
			text: msg.text,
			time: m.now(),
			kind: msg.kind,
		})
		return m, nil

	case assignDoneMsg:
		m.activeView = viewDashboard
		m.notifications = pushNotification(m.notifications, notification{
			text: fmt.Sprintf("Task assigned to %s", msg.memberName),
			time: m.now(),
			kind: noteSuccess,
		})
		return m, nil

	case assignCancelMsg:
		m.activeView = viewDashboard
		return m, nil
	}

	switch m.activeView {
	case viewAssign:
		return m.updateAssign(msg)
	default:
		return m.updateDashboard(msg)
	}
}

func (m AppModel) updateDashboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	// While the search box has focus every key is text.
	if m.session.IsLead() && m.lead.searching {
		var cmd tea.Cmd
		m.lead, cmd = m.lead.Update(keyMsg)
		return m, cmd
	}

	switch keyMsg.String() {
	case "q":
		return m, tea.Quit
	case "r":
		m.session.SwitchRole()
		m.session.Reconcile(m.store.All())
		m.member.focus(m.currentMember())
		return m, nil
	case "t":
		m.light = !m.light
		m.applyTheme()
		return m, nil
	}

	if m.load.Syncing(m.store.Len()) {
		return m, nil
	}

	if m.session.IsLead() {
		if keyMsg.String() == "a" {
			members := m.store.All()
			if len(members) == 0 {
				return m, nil
			}
			preselect := ""
			if sel, ok := m.lead.selected(); ok {
				preselect = sel.ID
			}
			m.assign = newAssign(m.styles, members, preselect, m.width, m.now)
			m.activeView = viewAssign
			return m, m.assign.Init()
		}
		var cmd tea.Cmd
		m.lead, cmd = m.lead.Update(keyMsg)
		return m, cmd
	}

	if keyMsg.String() == "u" {
		m.session.NextUser(m.store.All())
		m.member.focus(m.currentMember())
		return m, nil
	}
	cur, ok := m.currentMember()
	var cmd tea.Cmd
	m.member, cmd = m.member.Update(keyMsg, cur, ok)
	return m, cmd
}

func (m AppModel) updateAssign(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.assign, cmd = m.assign.Update(msg, m.store)
	return m, cmd
}

func (m *AppModel) applyTheme() {
	palette := m.cfg.Colors
	if m.light {
		palette = m.cfg.Light
	}
	m.styles = NewStyles(palette)
	m.lead.setStyles(m.styles)
	m.member.setStyles(m.styles)
	m.assign.styles = m.styles
	m.spinner.Style = m.styles.WizardActive
}

func (m AppModel) currentMember() (team.Member, bool) {
	return m.session.Current(m.store.All())
}

func (m AppModel) ViewContent() string {
	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n\n")

	switch {
	case m.load.Syncing(m.store.Len()):
		b.WriteString("  " + m.spinner.View() + " ")
		b.WriteString(m.styles.WizardDim.Render("Syncing your team from RandomUser..."))
		b.WriteString("\n")
	case m.load.Err != "":
		b.WriteString(m.styles.Error.Render("  Error: " + m.load.Err))
		b.WriteString("\n")
	case m.store.Len() == 0:
		b.WriteString(m.styles.WizardDim.Render("  No team members loaded."))
		b.WriteString("\n")
	case m.session.IsLead():
		b.WriteString(m.lead.ViewContent())
	default:
		cur, ok := m.currentMember()
		b.WriteString(m.member.ViewContent(cur, ok))
	}

	// Notifications (newest first)
	if len(m.notifications) > 0 {
		b.WriteString("\n")
		b.WriteString(m.styles.Header.Render("  ── Notifications ──"))
		b.WriteString("\n")
		for i := len(m.notifications) - 1; i >= 0; i-- {
			n := m.notifications[i]
			line := fmt.Sprintf("  %s %s", n.time.Format("15:04"), n.text)
			b.WriteString(m.styles.note(n.kind).Render(line))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render(m.helpLine()))
	return b.String()
}

func (m AppModel) viewHeader() string {
	var b strings.Builder
	b.WriteString(m.styles.Logo.Render(renderLogo(m.contentWidth())))
	b.WriteString("\n\n")

	title := "Team Dashboard"
	if !m.session.IsLead() {
		title = "My Workspace"
	}
	b.WriteString(m.styles.Title.Render(title))

	user := m.session.CurrentUser
	if user == "" {
		user = "-"
	}
	who := fmt.Sprintf("  %s %s · %s",
		m.styles.Selected.Render(" "+team.Initials(user)+" "),
		user,
		m.session.Role.Label(),
	)
	b.WriteString(m.styles.Muted.Render(who))

	if m.session.IsLead() && (m.lead.searching || m.lead.filter.Query != "") {
		b.WriteString("\n  ")
		b.WriteString(m.lead.search.View())
	}
	return b.String()
}

func (m AppModel) helpLine() string {
	theme := "light"
	if m.light {
		theme = "dark"
	}
	if m.session.IsLead() {
		return fmt.Sprintf("  j/k: move │ /: search │ f: filter (%s) │ s: sort (%s) │ a: assign task │ r: member view │ t: %s │ q: quit",
			m.lead.filterLabel(), m.lead.filter.Sort, theme)
	}
	return fmt.Sprintf("  1-4: status │ ←/→ enter: pick status │ j/k: task │ +/-: progress │ u: switch user │ r: lead view │ t: %s │ q: quit", theme)
}

func (m AppModel) contentWidth() int {
	maxWidth := m.width - 4
	if maxWidth < 40 {
		maxWidth = 80
	}
	return maxWidth
}

func (m AppModel) View() string {
	if m.activeView == viewAssign {
		return m.viewSideBySide(m.assign.ViewContent())
	}
	return m.styles.Border.Width(m.contentWidth()).Render(m.ViewContent())
}

func (m AppModel) viewSideBySide(rightPanel string) string {
	maxWidth := m.contentWidth()

	// 55% for dashboard, 45% for right panel, minus 1 for separator
	dashWidth := maxWidth * 55 / 100
	panelWidth := maxWidth - dashWidth - 1

	dashContent := lipgloss.NewStyle().Width(dashWidth).Render(m.ViewContent())
	panelContent := lipgloss.NewStyle().Width(panelWidth).Render(rightPanel)

	sepHeight := max(lipgloss.Height(dashContent), lipgloss.Height(panelContent))
	sepLines := make([]string, sepHeight)
	for i := range sepLines {
		sepLines[i] = "│"
	}
	sep := m.styles.Separator.Render(strings.Join(sepLines, "\n"))

	joined := lipgloss.JoinHorizontal(lipgloss.Top, dashContent, sep, panelContent)
	return m.styles.Border.Width(maxWidth).Render(joined)
}
