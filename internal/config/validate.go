package config

import (
	"fmt"
	"net/url"
	"strings"
)

// ValidationError represents a single invalid setting.
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors collects every problem found by Validate.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 1 {
		return e[0].Error()
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d validation errors:", len(e))
	for _, err := range e {
		sb.WriteString("\n  - ")
		sb.WriteString(err.Error())
	}
	return sb.String()
}

// Validate checks the settings the program cannot run without.
func (c Config) Validate() error {
	var errs ValidationErrors
	add := func(field string, value any, msg string) {
		errs = append(errs, ValidationError{Field: field, Value: value, Message: msg})
	}

	switch c.Roster.Source {
	case SourceRandomUser:
		if u, err := url.Parse(c.Roster.Endpoint); err != nil || u.Scheme == "" || u.Host == "" {
			add("roster.endpoint", c.Roster.Endpoint, "must be an absolute URL")
		}
		if c.Roster.Results < 1 || c.Roster.Results > 5000 {
			add("roster.results", c.Roster.Results, "must be between 1 and 5000")
		}
		if c.Roster.TimeoutSeconds < 1 {
			add("roster.timeout_seconds", c.Roster.TimeoutSeconds, "must be positive")
		}
	case SourceSeed:
	case SourceDir:
		if c.Roster.Dir == "" {
			add("roster.dir", c.Roster.Dir, "is required when source is dir")
		}
	default:
		add("roster.source", c.Roster.Source, "must be one of randomuser, seed, dir")
	}

	switch strings.ToLower(c.Session.Role) {
	case "lead", "member":
	default:
		add("session.role", c.Session.Role, "must be lead or member")
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		add("log.level", c.Log.Level, "must be one of debug, info, warn, error")
	}

	if c.Layout.OverviewWidth < 20 || c.Layout.OverviewWidth > 90 {
		add("layout.overview_width", c.Layout.OverviewWidth, "must be between 20 and 90")
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
