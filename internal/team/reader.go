package team

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
)

// ReadDir loads a roster from a directory holding one member per .json
// file, in filename order. Unreadable or malformed files are skipped. A
// missing directory yields an empty roster, not an error.
func ReadDir(dir string) ([]Member, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var members []Member
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			slog.Debug("member file read error", "file", entry.Name(), "error", err)
			continue
		}

		var m Member
		if err := json.Unmarshal(data, &m); err != nil {
			slog.Debug("member file parse error", "file", entry.Name(), "error", err)
			continue
		}
		if m.ID == "" {
			slog.Debug("member file missing id", "file", entry.Name())
			continue
		}
		members = append(members, normalize(m))
	}

	return members, nil
}

// normalize restores the member invariants for data that came from outside.
func normalize(m Member) Member {
	if !m.Status.Valid() {
		if s, err := ParseStatus(string(m.Status)); err == nil {
			m.Status = s
		} else {
			m.Status = StatusOffline
		}
	}
	for i := range m.Tasks {
		t := &m.Tasks[i]
		t.Progress = clampProgress(t.Progress)
		t.Completed = t.Progress == 100
		if t.AssignedTo == "" {
			t.AssignedTo = m.ID
		}
	}
	return m
}
