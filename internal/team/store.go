package team

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// ProgressStep is the fixed increment used when adjusting task progress.
const ProgressStep = 10

// Store holds the roster in insertion order. Reads return copies so callers
// never observe a half-applied update.
type Store struct {
	mu      sync.RWMutex
	members []Member
	index   map[string]int

	newID func() string
}

func NewStore(members ...Member) *Store {
	s := &Store{newID: uuid.NewString}
	s.Replace(members)
	return s
}

// Replace swaps the whole roster, as done once the startup load completes.
func (s *Store) Replace(members []Member) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.members = make([]Member, 0, len(members))
	s.index = make(map[string]int, len(members))
	for _, m := range members {
		if _, dup := s.index[m.ID]; dup {
			slog.Debug("duplicate member id skipped", "id", m.ID, "name", m.Name)
			continue
		}
		s.index[m.ID] = len(s.members)
		s.members = append(s.members, m.clone())
	}
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.members)
}

func (s *Store) All() []Member {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]Member, len(s.members))
	for i, m := range s.members {
		result[i] = m.clone()
	}
	return result
}

func (s *Store) Get(id string) (Member, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.index[id]
	if !ok {
		return Member{}, false
	}
	return s.members[i].clone(), true
}

// FindByName returns the first member whose name matches exactly.
func (s *Store) FindByName(name string) (Member, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.members {
		if m.Name == name {
			return m.clone(), true
		}
	}
	return Member{}, false
}

// UpdateStatus sets a member's status. It returns false for an unknown
// member or a status outside the enumeration.
func (s *Store) UpdateStatus(id string, status Status) bool {
	if !status.Valid() {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.index[id]
	if !ok {
		return false
	}
	s.members[i].Status = status
	slog.Debug("member status updated", "id", id, "status", status)
	return true
}

// AssignTask appends a new task with progress 0 to the member's list.
func (s *Store) AssignTask(memberID string, nt NewTask) (Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.index[memberID]
	if !ok {
		return Task{}, false
	}
	t := Task{
		ID:         "t-" + s.newID(),
		Title:      nt.Title,
		DueDate:    nt.DueDate,
		AssignedTo: memberID,
	}
	s.members[i].Tasks = append(s.members[i].Tasks, t)
	slog.Debug("task assigned", "member", memberID, "task", t.ID, "title", t.Title)
	return t, true
}

// AdjustProgress moves a task's progress by delta, clamped to [0,100].
func (s *Store) AdjustProgress(memberID, taskID string, delta int) (Task, bool) {
	return s.mutateTask(memberID, taskID, func(t *Task) {
		t.Progress = clampProgress(t.Progress + delta)
	})
}

// SetProgress sets a task's progress to an absolute value, clamped to [0,100].
func (s *Store) SetProgress(memberID, taskID string, progress int) (Task, bool) {
	return s.mutateTask(memberID, taskID, func(t *Task) {
		t.Progress = clampProgress(progress)
	})
}

func (s *Store) mutateTask(memberID, taskID string, fn func(*Task)) (Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.index[memberID]
	if !ok {
		return Task{}, false
	}
	tasks := s.members[i].Tasks
	for j := range tasks {
		if tasks[j].ID != taskID {
			continue
		}
		fn(&tasks[j])
		tasks[j].Completed = tasks[j].Progress == 100
		slog.Debug("task progress updated", "member", memberID, "task", taskID, "progress", tasks[j].Progress)
		return tasks[j], true
	}
	return Task{}, false
}
