package team

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Status is a member's current availability.
type Status string

const (
	StatusWorking Status = "Working"
	StatusBreak   Status = "Break"
	StatusMeeting Status = "Meeting"
	StatusOffline Status = "Offline"
)

// ErrUnknownStatus is returned by ParseStatus for values outside the enumeration.
var ErrUnknownStatus = errors.New("unknown status")

// Statuses returns every status in display order.
func Statuses() []Status {
	return []Status{StatusWorking, StatusBreak, StatusMeeting, StatusOffline}
}

// Valid reports whether s is one of the four known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusWorking, StatusBreak, StatusMeeting, StatusOffline:
		return true
	}
	return false
}

// ParseStatus accepts a status name in any letter case.
func ParseStatus(v string) (Status, error) {
	for _, s := range Statuses() {
		if strings.EqualFold(string(s), strings.TrimSpace(v)) {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStatus, v)
}

// DateLayout is the wire and input format for due dates.
const DateLayout = "2006-01-02"

// Task is a unit of work owned by a single member.
type Task struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	DueDate    string `json:"dueDate"`
	Progress   int    `json:"progress"`
	Completed  bool   `json:"completed"`
	AssignedTo string `json:"assignedTo"`
}

// Due parses DueDate. The zero time is returned for malformed values.
func (t Task) Due() time.Time {
	d, err := time.Parse(DateLayout, t.DueDate)
	if err != nil {
		return time.Time{}
	}
	return d
}

// NewTask holds the caller-supplied fields of a task being assigned.
type NewTask struct {
	Title   string
	DueDate string
}

// Member is a tracked team participant.
type Member struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar"`
	Status Status `json:"status"`
	Tasks  []Task `json:"tasks"`
}

// ActiveTasks counts tasks that are not yet completed.
func (m Member) ActiveTasks() int {
	n := 0
	for _, t := range m.Tasks {
		if !t.Completed {
			n++
		}
	}
	return n
}

// CompletedTasks counts tasks at 100% progress.
func (m Member) CompletedTasks() int {
	return len(m.Tasks) - m.ActiveTasks()
}

// Initials returns up to two upper-cased leading letters of the name.
func (m Member) Initials() string {
	return Initials(m.Name)
}

// Initials returns up to two upper-cased leading letters of name's words.
func Initials(name string) string {
	var out []rune
	for _, w := range strings.Fields(name) {
		out = append(out, []rune(w)[0])
		if len(out) == 2 {
			break
		}
	}
	return strings.ToUpper(string(out))
}

func (m Member) clone() Member {
	c := m
	c.Tasks = append([]Task(nil), m.Tasks...)
	return c
}

func clampProgress(p int) int {
	return max(0, min(100, p))
}
