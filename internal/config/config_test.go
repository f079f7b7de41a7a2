package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadFrom_Missing(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.conf"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.Roster.Source != SourceRandomUser {
		t.Errorf("source = %q, want default", cfg.Roster.Source)
	}
}

func TestLoadFrom_PartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "teampulse.conf")
	content := `
[colors]
working = "#00ff00"

[roster]
source = "seed"
nationalities = ["fr"]

[session]
role = "member"
user = "Ava Thompson"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Colors.Working != "#00ff00" {
		t.Errorf("working color = %q", cfg.Colors.Working)
	}
	if cfg.Colors.Break != Default().Colors.Break {
		t.Error("unset color should keep its default")
	}
	if cfg.Roster.Source != SourceSeed {
		t.Errorf("source = %q", cfg.Roster.Source)
	}
	if len(cfg.Roster.Nationalities) != 1 || cfg.Roster.Nationalities[0] != "fr" {
		t.Errorf("nationalities = %v", cfg.Roster.Nationalities)
	}
	if cfg.Roster.Results != 8 {
		t.Errorf("results = %d, want default 8", cfg.Roster.Results)
	}
	if cfg.Session.Role != "member" || cfg.Session.User != "Ava Thompson" {
		t.Errorf("session = %+v", cfg.Session)
	}
}

func TestLoadFrom_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.conf")
	if err := os.WriteFile(path, []byte("[roster\nsource="), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFrom(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "teampulse.conf")
	if err := WriteDefault(path); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "[roster]") {
		t.Error("default file should document [roster]")
	}

	// The commented file parses back to the defaults.
	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("default file should parse: %v", err)
	}
	if cfg.Roster.Endpoint != Default().Roster.Endpoint {
		t.Errorf("endpoint = %q", cfg.Roster.Endpoint)
	}

	// Existing files are left alone.
	if err := os.WriteFile(path, []byte("# mine"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := WriteDefault(path); err != nil {
		t.Fatal(err)
	}
	data, _ = os.ReadFile(path)
	if string(data) != "# mine" {
		t.Error("WriteDefault overwrote an existing file")
	}
}

func TestPath_RespectsXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	if got := Path(); got != "/tmp/xdg/teampulse/teampulse.conf" {
		t.Errorf("Path() = %q", got)
	}
	t.Setenv("XDG_STATE_HOME", "/tmp/state")
	if got := DefaultLogPath(); got != "/tmp/state/teampulse/teampulse.log" {
		t.Errorf("DefaultLogPath() = %q", got)
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"TEAMPULSE_ROSTER_SOURCE":        "dir",
		"TEAMPULSE_ROSTER_DIR":           "/data/team",
		"TEAMPULSE_ROSTER_RESULTS":       " 12 ",
		"TEAMPULSE_ROSTER_NATIONALITIES": "de, fr,,es",
		"TEAMPULSE_ROLE":                 "member",
		"TEAMPULSE_LOG_LEVEL":            "debug",
	}
	lookup := func(k string) (string, bool) { v, ok := env[k]; return v, ok }

	cfg := Default()
	if err := applyEnv(&cfg, lookup); err != nil {
		t.Fatal(err)
	}
	if cfg.Roster.Source != SourceDir || cfg.Roster.Dir != "/data/team" {
		t.Errorf("roster = %+v", cfg.Roster)
	}
	if cfg.Roster.Results != 12 {
		t.Errorf("results = %d", cfg.Roster.Results)
	}
	if strings.Join(cfg.Roster.Nationalities, ",") != "de,fr,es" {
		t.Errorf("nationalities = %v", cfg.Roster.Nationalities)
	}
	if cfg.Session.Role != "member" || cfg.Log.Level != "debug" {
		t.Errorf("session/log = %+v %+v", cfg.Session, cfg.Log)
	}
	if cfg.Roster.Endpoint != Default().Roster.Endpoint {
		t.Error("unset variables should not change the config")
	}
}

func TestApplyEnv_BadNumber(t *testing.T) {
	cfg := Default()
	err := applyEnv(&cfg, func(k string) (string, bool) {
		if k == "TEAMPULSE_ROSTER_RESULTS" {
			return "many", true
		}
		return "", false
	})
	if err == nil || !strings.Contains(err.Error(), "TEAMPULSE_ROSTER_RESULTS") {
		t.Fatalf("expected error naming the variable, got %v", err)
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("TEAMPULSE_TEST_DOTENV=from-file\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("TEAMPULSE_TEST_DOTENV", "")
	os.Unsetenv("TEAMPULSE_TEST_DOTENV")

	if err := LoadDotEnv(path, filepath.Join(dir, "missing.env")); err != nil {
		t.Fatal(err)
	}
	if got := os.Getenv("TEAMPULSE_TEST_DOTENV"); got != "from-file" {
		t.Errorf("TEAMPULSE_TEST_DOTENV = %q", got)
	}
}

func TestValidate(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("defaults should be valid: %v", err)
	}

	cfg := Default()
	cfg.Roster.Results = 0
	cfg.Roster.Endpoint = "not a url"
	cfg.Session.Role = "boss"
	err := cfg.Validate()

	var verrs ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected ValidationErrors, got %T", err)
	}
	if len(verrs) != 3 {
		t.Errorf("got %d errors, want 3: %v", len(verrs), err)
	}
	if !strings.Contains(err.Error(), "3 validation errors") {
		t.Errorf("message = %q", err.Error())
	}
}

func TestValidate_SourceSpecific(t *testing.T) {
	cfg := Default()
	cfg.Roster.Source = SourceDir
	if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "roster.dir") {
		t.Errorf("dir source without dir: %v", err)
	}

	cfg.Roster.Source = SourceSeed
	cfg.Roster.Results = -1 // ignored for seed
	if err := cfg.Validate(); err != nil {
		t.Errorf("seed source: %v", err)
	}

	cfg.Roster.Source = "ldap"
	if err := cfg.Validate(); err == nil {
		t.Error("unknown source should fail")
	}
}
