package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/simonbystrom/teampulse/internal/config"
	"github.com/simonbystrom/teampulse/internal/team"
)

func newTestAssign(t *testing.T, preselect string) (assignModel, *team.Store) {
	t.Helper()
	store := team.NewStore(team.Seed(testNow)...)
	m := newAssign(NewStyles(config.Default().Colors), store.All(), preselect, 160, func() time.Time { return testNow })
	return m, store
}

func typeText(m assignModel, store *team.Store, s string) assignModel {
	for _, r := range s {
		m, _ = m.Update(keyRunes(string(r)), store)
	}
	return m
}

func enter(m assignModel, store *team.Store) (assignModel, tea.Cmd) {
	return m.Update(tea.KeyMsg{Type: tea.KeyEnter}, store)
}

func TestAssign_InitialStep(t *testing.T) {
	m, _ := newTestAssign(t, "")

	if m.step != stepPickMember {
		t.Errorf("initial step = %d, want %d (stepPickMember)", m.step, stepPickMember)
	}
	if !strings.Contains(m.ViewContent(), "Assign Task") {
		t.Error("should show title")
	}
}

func TestAssign_Preselect(t *testing.T) {
	m, _ := newTestAssign(t, "m3")

	item, ok := m.memberList.SelectedItem().(memberItem)
	if !ok || item.id != "m3" {
		t.Errorf("selected = %+v, want m3", item)
	}
}

func TestAssign_EscCancels(t *testing.T) {
	m, store := newTestAssign(t, "")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc}, store)
	if cmd == nil {
		t.Fatal("expected command from Esc")
	}
	if _, ok := cmd().(assignCancelMsg); !ok {
		t.Errorf("expected assignCancelMsg, got %T", cmd())
	}
}

func TestAssign_FullFlow(t *testing.T) {
	m, store := newTestAssign(t, "m2")

	m, _ = enter(m, store)
	if m.step != stepTitle || m.memberName != "Liam Carter" {
		t.Fatalf("step = %d member = %q", m.step, m.memberName)
	}

	m = typeText(m, store, "Write release notes")
	m, _ = enter(m, store)
	if m.step != stepDueDate {
		t.Fatalf("step = %d, want stepDueDate", m.step)
	}

	m = typeText(m, store, "2025-03-10")
	m, _ = enter(m, store)
	if m.step != stepConfirm {
		t.Fatalf("step = %d, want stepConfirm (err %q)", m.step, m.err)
	}
	if !strings.Contains(m.ViewContent(), "Write release notes") {
		t.Error("confirm should show the title")
	}

	before := len(mustGet(t, store, "m2").Tasks)
	_, cmd := m.Update(keyRunes("y"), store)
	if cmd == nil {
		t.Fatal("confirm should finish the wizard")
	}
	done, ok := cmd().(assignDoneMsg)
	if !ok {
		t.Fatalf("expected assignDoneMsg, got %T", cmd())
	}
	if done.memberName != "Liam Carter" {
		t.Errorf("memberName = %q", done.memberName)
	}

	liam := mustGet(t, store, "m2")
	if len(liam.Tasks) != before+1 {
		t.Fatalf("tasks = %d, want %d", len(liam.Tasks), before+1)
	}
	added := liam.Tasks[len(liam.Tasks)-1]
	if added.Title != "Write release notes" || added.DueDate != "2025-03-10" || added.Progress != 0 || added.Completed {
		t.Errorf("added task = %+v", added)
	}
	if added.ID != done.task.ID {
		t.Error("message should carry the created task")
	}
}

func TestAssign_RequiresAllFields(t *testing.T) {
	m, store := newTestAssign(t, "")

	m, _ = enter(m, store)
	m, _ = enter(m, store)
	if m.step != stepTitle || m.err != errMissingFields {
		t.Errorf("empty title: step = %d err = %q", m.step, m.err)
	}
	if !strings.Contains(m.ViewContent(), "Please fill in all fields") {
		t.Error("error should be shown")
	}

	m = typeText(m, store, "Plan offsite")
	m, _ = enter(m, store)
	m, _ = enter(m, store)
	if m.step != stepDueDate || m.err != errMissingFields {
		t.Errorf("empty due date: step = %d err = %q", m.step, m.err)
	}
}

func TestAssign_RejectsBadDate(t *testing.T) {
	m, store := newTestAssign(t, "")
	m.step = stepDueDate
	m.focusStep()

	m = typeText(m, store, "10/03/2025")
	m, _ = enter(m, store)
	if m.step != stepDueDate {
		t.Error("malformed date should not advance")
	}
	if !strings.Contains(m.err, "2025-03-01") {
		t.Errorf("err = %q, should show an example date", m.err)
	}
}

func TestAssign_TabSuggestsDate(t *testing.T) {
	m, store := newTestAssign(t, "")
	m.step = stepDueDate
	m.focusStep()

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab}, store)
	if got := m.dueInput.Value(); got != "2025-03-08" {
		t.Errorf("suggested = %q, want a week out", got)
	}
}

func TestAssign_EscGoesBack(t *testing.T) {
	m, store := newTestAssign(t, "")
	m, _ = enter(m, store)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc}, store)
	if m.step != stepPickMember {
		t.Errorf("step = %d, want %d (stepPickMember)", m.step, stepPickMember)
	}
}

func TestAssign_UnknownMember(t *testing.T) {
	ghost := []team.Member{{ID: "ghost", Name: "Former Colleague"}}
	m := newAssign(NewStyles(config.Default().Colors), ghost, "", 160, func() time.Time { return testNow })
	store := team.NewStore(team.Seed(testNow)...)

	m, _ = enter(m, store)
	m = typeText(m, store, "Handover")
	m, _ = enter(m, store)
	m = typeText(m, store, "2025-03-05")
	m, _ = enter(m, store)
	m, cmd := enter(m, store)

	if cmd != nil {
		t.Error("assigning to a departed member should not finish")
	}
	if !strings.Contains(m.err, "no longer on the team") {
		t.Errorf("err = %q", m.err)
	}
}
