// Package randomuser populates a roster from the public randomuser.me API.
package randomuser

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/simonbystrom/teampulse/internal/team"
)

const (
	DefaultEndpoint = "https://randomuser.me/api/"
	DefaultResults  = 8
	DefaultTimeout  = 10 * time.Second
)

// DefaultNationalities keeps generated names readable for an English UI.
var DefaultNationalities = []string{"us", "gb", "ca"}

// statusPool assigns statuses round-robin so a fresh roster shows every state.
var statusPool = []team.Status{team.StatusWorking, team.StatusMeeting, team.StatusBreak, team.StatusOffline}

// StatusError is returned when the API answers with a non-2xx status.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("failed to fetch team members: %d %s", e.Code, http.StatusText(e.Code))
}

// Client fetches randomised user records and maps them to members.
type Client struct {
	endpoint      string
	results       int
	nationalities []string
	http          *http.Client
	now           func() time.Time
	progress      func() int
}

// Option configures a Client.
type Option func(*Client)

func WithEndpoint(u string) Option {
	return func(c *Client) { c.endpoint = u }
}

func WithResults(n int) Option {
	return func(c *Client) { c.results = n }
}

func WithNationalities(nat []string) Option {
	return func(c *Client) { c.nationalities = nat }
}

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithClock overrides the time used for task due dates.
func WithClock(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

// WithProgress overrides the starting progress generator for starter tasks.
func WithProgress(fn func() int) Option {
	return func(c *Client) { c.progress = fn }
}

func New(opts ...Option) *Client {
	c := &Client{
		endpoint:      DefaultEndpoint,
		results:       DefaultResults,
		nationalities: DefaultNationalities,
		http:          &http.Client{Timeout: DefaultTimeout},
		now:           time.Now,
		progress:      func() int { return rand.Intn(100) },
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// response mirrors the subset of the API payload we consume.
type response struct {
	Results []struct {
		Login struct {
			UUID string `json:"uuid"`
		} `json:"login"`
		Name struct {
			First string `json:"first"`
			Last  string `json:"last"`
		} `json:"name"`
		Email   string `json:"email"`
		Picture struct {
			Large string `json:"large"`
		} `json:"picture"`
	} `json:"results"`
}

func (c *Client) requestURL() (string, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return "", fmt.Errorf("parse endpoint: %w", err)
	}
	q := u.Query()
	q.Set("results", strconv.Itoa(c.results))
	if len(c.nationalities) > 0 {
		q.Set("nat", strings.Join(c.nationalities, ","))
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// FetchMembers performs one GET and returns the generated roster.
func (c *Client) FetchMembers(ctx context.Context) ([]team.Member, error) {
	reqURL, err := c.requestURL()
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch team members: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode}
	}

	var raw response
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode team members: %w", err)
	}

	now := c.now()
	members := make([]team.Member, 0, len(raw.Results))
	for i, u := range raw.Results {
		id := u.Login.UUID
		members = append(members, team.Member{
			ID:     id,
			Name:   strings.TrimSpace(u.Name.First + " " + u.Name.Last),
			Email:  u.Email,
			Avatar: u.Picture.Large,
			Status: statusPool[i%len(statusPool)],
			Tasks:  team.GenerateTasks(id, i, now, c.progress),
		})
	}
	return members, nil
}
