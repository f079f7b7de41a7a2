package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// EnvPrefix namespaces every environment override.
const EnvPrefix = "TEAMPULSE_"

// LoadDotEnv loads KEY=VALUE pairs from the given files (default ".env")
// into the process environment. Variables that are already set win.
// Missing files are ignored.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// ApplyEnv overrides cfg with TEAMPULSE_* variables from the environment.
func ApplyEnv(cfg *Config) error {
	return applyEnv(cfg, os.LookupEnv)
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(EnvPrefix + key); ok {
			*dst = v
		}
	}
	num := func(key string, dst *int) error {
		v, ok := lookup(EnvPrefix + key)
		if !ok {
			return nil
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s%s: %w", EnvPrefix, key, err)
		}
		*dst = n
		return nil
	}

	str("ROSTER_SOURCE", &cfg.Roster.Source)
	str("ROSTER_ENDPOINT", &cfg.Roster.Endpoint)
	str("ROSTER_DIR", &cfg.Roster.Dir)
	if v, ok := lookup(EnvPrefix + "ROSTER_NATIONALITIES"); ok {
		cfg.Roster.Nationalities = splitList(v)
	}
	if err := num("ROSTER_RESULTS", &cfg.Roster.Results); err != nil {
		return err
	}
	if err := num("ROSTER_TIMEOUT_SECONDS", &cfg.Roster.TimeoutSeconds); err != nil {
		return err
	}
	str("ROLE", &cfg.Session.Role)
	str("USER", &cfg.Session.User)
	str("LOG_LEVEL", &cfg.Log.Level)
	str("LOG_FILE", &cfg.Log.File)
	return nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
