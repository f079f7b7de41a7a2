package roster

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/simonbystrom/teampulse/internal/config"
	"github.com/simonbystrom/teampulse/internal/team"
)

type stubFetcher struct {
	members []team.Member
	err     error
	calls   int
}

func (s *stubFetcher) FetchMembers(context.Context) ([]team.Member, error) {
	s.calls++
	return s.members, s.err
}

var fixedNow = func() time.Time { return time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC) }

func TestLoad_Seed(t *testing.T) {
	f := &stubFetcher{}
	l := New(config.SourceSeed, WithFetcher(f), WithClock(fixedNow))

	members, err := l.Load(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(members) != 5 {
		t.Errorf("got %d seed members, want 5", len(members))
	}
	if f.calls != 0 {
		t.Error("seed source must not hit the network")
	}
}

func TestLoad_RandomUser(t *testing.T) {
	f := &stubFetcher{members: []team.Member{{ID: "u1", Name: "Jane Roe", Status: team.StatusWorking}}}
	for _, source := range []string{config.SourceRandomUser, ""} {
		members, err := New(source, WithFetcher(f)).Load(context.Background())
		if err != nil {
			t.Fatalf("source %q: %v", source, err)
		}
		if len(members) != 1 || members[0].Name != "Jane Roe" {
			t.Errorf("source %q: members = %+v", source, members)
		}
	}
	if f.calls != 2 {
		t.Errorf("fetcher calls = %d, want 2", f.calls)
	}
}

func TestLoad_FetchFailureLeavesRosterEmpty(t *testing.T) {
	f := &stubFetcher{
		members: []team.Member{{ID: "partial"}},
		err:     errors.New("failed to fetch team members: 503 Service Unavailable"),
	}
	members, err := New(config.SourceRandomUser, WithFetcher(f)).Load(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if members != nil {
		t.Errorf("members = %v, want nil on failure", members)
	}
}

func TestLoad_Dir(t *testing.T) {
	dir := t.TempDir()
	data, _ := json.Marshal(team.Member{ID: "d1", Name: "Dana", Status: team.StatusMeeting})
	if err := os.WriteFile(filepath.Join(dir, "d1.json"), data, 0o644); err != nil {
		t.Fatal(err)
	}

	members, err := New(config.SourceDir, WithDir(dir)).Load(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(members) != 1 || members[0].ID != "d1" {
		t.Errorf("members = %+v", members)
	}
}

func TestLoad_UnknownSource(t *testing.T) {
	if _, err := New("ldap", WithFetcher(&stubFetcher{})).Load(context.Background()); err == nil {
		t.Fatal("expected error for unknown source")
	}
}

func TestCmd_DeliversLoadedMsg(t *testing.T) {
	f := &stubFetcher{err: errors.New("boom")}
	msg := New(config.SourceRandomUser, WithFetcher(f)).Cmd(context.Background())()

	loaded, ok := msg.(LoadedMsg)
	if !ok {
		t.Fatalf("got %T, want LoadedMsg", msg)
	}
	if loaded.Err == nil || loaded.Source != config.SourceRandomUser {
		t.Errorf("msg = %+v", loaded)
	}
}

func TestFromConfig_UsesEndpoint(t *testing.T) {
	var gotNat string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotNat = r.URL.Query().Get("nat")
		w.Write([]byte(`{"results":[{"login":{"uuid":"x1"},"name":{"first":"Ola","last":"Nordmann"},"email":"ola@example.com","picture":{"large":"https://example.com/x1.jpg"}}]}`))
	}))
	defer srv.Close()

	cfg := config.Default().Roster
	cfg.Endpoint = srv.URL
	cfg.Nationalities = []string{"no"}

	members, err := FromConfig(cfg).Load(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if gotNat != "no" {
		t.Errorf("nat = %q", gotNat)
	}
	if len(members) != 1 || members[0].Name != "Ola Nordmann" {
		t.Errorf("members = %+v", members)
	}
}

func TestState(t *testing.T) {
	var s State
	s.Begin()
	if !s.Syncing(0) {
		t.Error("empty roster while loading should show the placeholder")
	}
	if s.Syncing(3) {
		t.Error("placeholder only replaces an empty roster")
	}

	s.Finish(errors.New("failed to fetch team members: 500 Internal Server Error"))
	if s.Loading || s.Err == "" {
		t.Errorf("state after failure = %+v", s)
	}

	s.Begin()
	if s.Err != "" {
		t.Error("Begin should clear the previous error")
	}
	s.Finish(nil)
	if s.Loading || s.Err != "" {
		t.Errorf("state after success = %+v", s)
	}
}
