// Package roster decides where the startup member list comes from and
// delivers it to the UI as a Bubble Tea message.
package roster

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/simonbystrom/teampulse/internal/config"
	"github.com/simonbystrom/teampulse/internal/randomuser"
	"github.com/simonbystrom/teampulse/internal/team"
)

// LoadedMsg carries the result of the one-time startup load.
type LoadedMsg struct {
	Source  string
	Members []team.Member
	Err     error
}

// Fetcher is the remote roster boundary.
type Fetcher interface {
	FetchMembers(ctx context.Context) ([]team.Member, error)
}

type Loader struct {
	source  string
	fetcher Fetcher
	dir     string
	now     func() time.Time
}

// Option configures a Loader.
type Option func(*Loader)

// WithFetcher overrides the remote fetcher used by the randomuser source.
func WithFetcher(f Fetcher) Option {
	return func(l *Loader) { l.fetcher = f }
}

// WithDir sets the directory read by the dir source.
func WithDir(dir string) Option {
	return func(l *Loader) { l.dir = dir }
}

// WithClock overrides the clock used for seed due dates.
func WithClock(now func() time.Time) Option {
	return func(l *Loader) { l.now = now }
}

func New(source string, opts ...Option) *Loader {
	l := &Loader{
		source: source,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.fetcher == nil {
		l.fetcher = randomuser.New()
	}
	return l
}

// FromConfig builds a Loader for the configured source.
func FromConfig(cfg config.Roster) *Loader {
	client := randomuser.New(
		randomuser.WithEndpoint(cfg.Endpoint),
		randomuser.WithResults(cfg.Results),
		randomuser.WithNationalities(cfg.Nationalities),
		randomuser.WithHTTPClient(&http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second}),
	)
	return New(cfg.Source, WithFetcher(client), WithDir(cfg.Dir))
}

// Load produces the initial roster. A failed load returns no members.
func (l *Loader) Load(ctx context.Context) ([]team.Member, error) {
	var (
		members []team.Member
		err     error
	)
	switch l.source {
	case config.SourceSeed:
		members = team.Seed(l.now())
	case config.SourceDir:
		members, err = team.ReadDir(l.dir)
	case config.SourceRandomUser, "":
		members, err = l.fetcher.FetchMembers(ctx)
	default:
		err = fmt.Errorf("unknown roster source %q", l.source)
	}
	if err != nil {
		slog.Warn("roster load failed", "source", l.source, "error", err)
		return nil, err
	}
	slog.Info("roster loaded", "source", l.source, "members", len(members))
	return members, nil
}

// Cmd runs Load off the UI goroutine and reports back with a LoadedMsg.
func (l *Loader) Cmd(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		members, err := l.Load(ctx)
		return LoadedMsg{Source: l.source, Members: members, Err: err}
	}
}

// State is the loading flag and error message shown while the roster syncs.
type State struct {
	Loading bool
	Err     string
}

// Begin marks a load in flight and clears any previous error.
func (s *State) Begin() {
	s.Loading = true
	s.Err = ""
}

// Finish clears the loading flag and records err, if any.
func (s *State) Finish(err error) {
	s.Loading = false
	if err != nil {
		s.Err = err.Error()
	}
}

// Syncing reports whether the placeholder should replace the dashboard.
func (s State) Syncing(members int) bool {
	return s.Loading && members == 0
}
