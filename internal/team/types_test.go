package team

import (
	"errors"
	"testing"
	"time"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    Status
		wantErr bool
	}{
		{"Working", StatusWorking, false},
		{"break", StatusBreak, false},
		{" MEETING ", StatusMeeting, false},
		{"offline", StatusOffline, false},
		{"lunch", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseStatus(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownStatus) {
				t.Errorf("ParseStatus(%q) err = %v, want ErrUnknownStatus", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseStatus(%q) = %q, %v, want %q", tt.in, got, err, tt.want)
		}
	}
}

func TestStatus_Valid(t *testing.T) {
	for _, s := range Statuses() {
		if !s.Valid() {
			t.Errorf("%q should be valid", s)
		}
	}
	if Status("working").Valid() {
		t.Error("lower-case name is not a canonical status")
	}
}

func TestInitials(t *testing.T) {
	tests := map[string]string{
		"Ada Lovelace":          "AL",
		"grace brewster hopper": "GB",
		"Cher":                  "C",
		"":                      "",
		"  émile   zola ":       "ÉZ",
	}
	for in, want := range tests {
		if got := Initials(in); got != want {
			t.Errorf("Initials(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestTask_Due(t *testing.T) {
	task := Task{DueDate: "2026-10-21"}
	want := time.Date(2026, 10, 21, 0, 0, 0, 0, time.UTC)
	if !task.Due().Equal(want) {
		t.Errorf("Due() = %v, want %v", task.Due(), want)
	}
	if !(Task{DueDate: "soon"}).Due().IsZero() {
		t.Error("malformed date should give zero time")
	}
}

func TestGenerateTasks(t *testing.T) {
	now := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	values := []int{30, 100}
	i := 0
	tasks := GenerateTasks("u1", 5, now, func() int { v := values[i]; i++; return v })

	if len(tasks) != TasksPerMember {
		t.Fatalf("got %d tasks, want %d", len(tasks), TasksPerMember)
	}
	if tasks[0].ID != "u1-task-0" || tasks[1].ID != "u1-task-1" {
		t.Errorf("ids = %q, %q", tasks[0].ID, tasks[1].ID)
	}
	// Template index wraps: 5 then (5+1)%6 = 0.
	if tasks[0].Title != "Plan team sync" || tasks[1].Title != "Prepare sprint report" {
		t.Errorf("titles = %q, %q", tasks[0].Title, tasks[1].Title)
	}
	if tasks[0].DueDate != "2026-10-21" || tasks[1].DueDate != "2026-10-23" {
		t.Errorf("due dates = %q, %q", tasks[0].DueDate, tasks[1].DueDate)
	}
	if tasks[0].Completed || !tasks[1].Completed {
		t.Errorf("completion = %v, %v", tasks[0].Completed, tasks[1].Completed)
	}
}
