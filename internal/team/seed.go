package team

import (
	"fmt"
	"time"
)

// TaskTemplates are the titles cycled through when generating starter tasks.
var TaskTemplates = []string{
	"Prepare sprint report",
	"Update project documentation",
	"Review pull requests",
	"Client presentation prep",
	"Fix priority bugs",
	"Plan team sync",
}

// TasksPerMember is how many starter tasks a generated member receives.
const TasksPerMember = 2

// GenerateTasks builds the starter tasks for a member. offset selects the
// first template; progress supplies each task's starting progress.
func GenerateTasks(memberID string, offset int, now time.Time, progress func() int) []Task {
	tasks := make([]Task, TasksPerMember)
	for k := range tasks {
		p := clampProgress(progress())
		tasks[k] = Task{
			ID:         fmt.Sprintf("%s-task-%d", memberID, k),
			Title:      TaskTemplates[(offset+k)%len(TaskTemplates)],
			DueDate:    now.AddDate(0, 0, (k+1)*2).Format(DateLayout),
			Progress:   p,
			Completed:  p >= 100,
			AssignedTo: memberID,
		}
	}
	return tasks
}

var seedRoster = []struct {
	id, name, email string
	status          Status
	progress        [TasksPerMember]int
}{
	{"m1", "Ava Thompson", "ava.thompson@example.com", StatusWorking, [TasksPerMember]int{40, 100}},
	{"m2", "Liam Carter", "liam.carter@example.com", StatusMeeting, [TasksPerMember]int{10, 60}},
	{"m3", "Sofia Nguyen", "sofia.nguyen@example.com", StatusBreak, [TasksPerMember]int{0, 80}},
	{"m4", "Noah Patel", "noah.patel@example.com", StatusWorking, [TasksPerMember]int{90, 30}},
	{"m5", "Mia Rossi", "mia.rossi@example.com", StatusOffline, [TasksPerMember]int{20, 50}},
}

// Seed returns the static five-member roster used when no remote source is
// configured. Due dates are relative to now.
func Seed(now time.Time) []Member {
	members := make([]Member, len(seedRoster))
	for i, r := range seedRoster {
		next := 0
		members[i] = Member{
			ID:     r.id,
			Name:   r.name,
			Email:  r.email,
			Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=" + r.id,
			Status: r.status,
			Tasks: GenerateTasks(r.id, i, now, func() int {
				p := r.progress[next]
				next++
				return p
			}),
		}
	}
	return members
}
