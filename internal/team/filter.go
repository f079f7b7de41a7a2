package team

import (
	"sort"
	"strings"
)

type SortMode int

const (
	SortByName SortMode = iota
	SortByTasks
)

func (s SortMode) String() string {
	if s == SortByTasks {
		return "tasks"
	}
	return "name"
}

// Filter narrows and orders the lead view's member list.
type Filter struct {
	// Status limits the list to one status; the zero value keeps everyone.
	Status Status
	// Query matches name, email or any task title, ignoring case.
	Query string
	Sort  SortMode
}

// Apply returns a new filtered and sorted slice. members is not modified.
func (f Filter) Apply(members []Member) []Member {
	query := strings.ToLower(strings.TrimSpace(f.Query))
	out := make([]Member, 0, len(members))
	for _, m := range members {
		if f.Status != "" && m.Status != f.Status {
			continue
		}
		if query != "" && !matches(m, query) {
			continue
		}
		out = append(out, m)
	}

	switch f.Sort {
	case SortByTasks:
		sort.SliceStable(out, func(i, j int) bool {
			ai, aj := out[i].ActiveTasks(), out[j].ActiveTasks()
			if ai != aj {
				return ai > aj
			}
			return lessName(out[i], out[j])
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return lessName(out[i], out[j])
		})
	}
	return out
}

func lessName(a, b Member) bool {
	return strings.ToLower(a.Name) < strings.ToLower(b.Name)
}

func matches(m Member, query string) bool {
	if strings.Contains(strings.ToLower(m.Name), query) || strings.Contains(strings.ToLower(m.Email), query) {
		return true
	}
	for _, t := range m.Tasks {
		if strings.Contains(strings.ToLower(t.Title), query) {
			return true
		}
	}
	return false
}

// NextStatusFilter cycles All -> Working -> Break -> Meeting -> Offline -> All.
func NextStatusFilter(cur Status) Status {
	all := Statuses()
	if cur == "" {
		return all[0]
	}
	for i, s := range all {
		if s == cur && i+1 < len(all) {
			return all[i+1]
		}
	}
	return ""
}
