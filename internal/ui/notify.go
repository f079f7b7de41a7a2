package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const maxNotifications = 10

type noteKind int

const (
	noteInfo noteKind = iota
	noteSuccess
	noteError
)

type notification struct {
	text string
	time time.Time
	kind noteKind
}

// notifyMsg asks the app to push a toast.
type notifyMsg struct {
	text string
	kind noteKind
}

func notify(text string, kind noteKind) tea.Cmd {
	return func() tea.Msg { return notifyMsg{text: text, kind: kind} }
}

// pushNotification appends n and keeps only the newest maxNotifications.
func pushNotification(list []notification, n notification) []notification {
	list = append(list, n)
	if len(list) > maxNotifications {
		list = list[len(list)-maxNotifications:]
	}
	return list
}

func (s Styles) note(k noteKind) lipgloss.Style {
	switch k {
	case noteSuccess:
		return s.Completed
	case noteError:
		return s.Error
	default:
		return s.Notification
	}
}
