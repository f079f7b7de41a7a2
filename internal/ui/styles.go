package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/simonbystrom/teampulse/internal/config"
	"github.com/simonbystrom/teampulse/internal/team"
)

// Styles holds every lipgloss style used by the UI, built from a palette.
type Styles struct {
	Title        lipgloss.Style
	Header       lipgloss.Style
	Selected     lipgloss.Style
	Text         lipgloss.Style
	Muted        lipgloss.Style
	Working      lipgloss.Style
	Break        lipgloss.Style
	Meeting      lipgloss.Style
	Offline      lipgloss.Style
	Completed    lipgloss.Style
	Chart        lipgloss.Style
	Card         lipgloss.Style
	Notification lipgloss.Style
	Help         lipgloss.Style
	Border       lipgloss.Style
	Separator    lipgloss.Style
	WizardTitle  lipgloss.Style
	WizardActive lipgloss.Style
	WizardDim    lipgloss.Style
	Error        lipgloss.Style
	Logo         lipgloss.Style

	// Raw colors for components that take a color rather than a style.
	ProgressColor string
	MutedColor    string
}

// NewStyles creates a Styles from the given color palette.
func NewStyles(c config.Colors) Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(c.Title)).
			Padding(0, 1),
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(c.Header)),
		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(c.SelectedBG)).
			Foreground(lipgloss.Color(c.SelectedFG)),
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Text)),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Muted)),
		Working: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Working)).
			Bold(true),
		Break: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Break)).
			Bold(true),
		Meeting: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Meeting)).
			Bold(true),
		Offline: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Offline)),
		Completed: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Completed)).
			Bold(true),
		Chart: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Chart)),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(c.Border)).
			Padding(0, 1),
		Notification: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Notification)).
			Italic(true),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Help)),
		Border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(c.Border)).
			Padding(1, 2),
		Separator: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Separator)),
		WizardTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(c.WizardTitle)).
			MarginBottom(1),
		WizardActive: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.WizardActive)),
		WizardDim: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.WizardDim)),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Error)).
			Bold(true),
		Logo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Logo)),

		ProgressColor: c.Progress,
		MutedColor:    c.Muted,
	}
}

// Status returns the badge style for a member status.
func (s Styles) Status(st team.Status) lipgloss.Style {
	switch st {
	case team.StatusWorking:
		return s.Working
	case team.StatusBreak:
		return s.Break
	case team.StatusMeeting:
		return s.Meeting
	default:
		return s.Offline
	}
}
