// Package session tracks who is looking at the dashboard: the active role
// and the member acting as "you" in member mode.
package session

import (
	"fmt"
	"strings"

	"github.com/simonbystrom/teampulse/internal/team"
)

type Role string

const (
	RoleLead   Role = "lead"
	RoleMember Role = "member"
)

func ParseRole(v string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(v))) {
	case RoleLead:
		return RoleLead, nil
	case RoleMember:
		return RoleMember, nil
	}
	return "", fmt.Errorf("unknown role %q (want lead or member)", v)
}

// Label is the human title shown next to the current user.
func (r Role) Label() string {
	if r == RoleMember {
		return "Team Member"
	}
	return "Team Lead"
}

// Session is the active role and member selection.
type Session struct {
	Role        Role
	CurrentUser string
}

func New(role Role, user string) Session {
	if role != RoleMember {
		role = RoleLead
	}
	return Session{Role: role, CurrentUser: user}
}

func (s Session) IsLead() bool { return s.Role != RoleMember }

// SwitchRole flips between lead and member.
func (s *Session) SwitchRole() {
	if s.IsLead() {
		s.Role = RoleMember
	} else {
		s.Role = RoleLead
	}
}

func (s *Session) SetUser(name string) {
	s.CurrentUser = name
}

// Reconcile selects the first member when the current user is not on the
// roster. It reports whether the selection changed.
func (s *Session) Reconcile(members []team.Member) bool {
	if len(members) == 0 {
		return false
	}
	for _, m := range members {
		if m.Name == s.CurrentUser {
			return false
		}
	}
	s.CurrentUser = members[0].Name
	return true
}

// Current returns the member acting as the current user.
func (s Session) Current(members []team.Member) (team.Member, bool) {
	for _, m := range members {
		if m.Name == s.CurrentUser {
			return m, true
		}
	}
	return team.Member{}, false
}

// NextUser moves the selection to the member after the current one,
// wrapping at the end of the roster.
func (s *Session) NextUser(members []team.Member) {
	if len(members) == 0 {
		return
	}
	for i, m := range members {
		if m.Name == s.CurrentUser {
			s.CurrentUser = members[(i+1)%len(members)].Name
			return
		}
	}
	s.CurrentUser = members[0].Name
}
