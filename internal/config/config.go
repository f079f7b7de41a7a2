package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Colors holds color values for every UI style.
// Values can be xterm-256 codes (0-255) or hex colors (#rrggbb).
type Colors struct {
	Title        string `toml:"title"`
	Header       string `toml:"header"`
	SelectedBG   string `toml:"selected_bg"`
	SelectedFG   string `toml:"selected_fg"`
	Text         string `toml:"text"`
	Muted        string `toml:"muted"`
	Working      string `toml:"working"`
	Break        string `toml:"break"`
	Meeting      string `toml:"meeting"`
	Offline      string `toml:"offline"`
	Completed    string `toml:"completed"`
	Progress     string `toml:"progress"`
	Chart        string `toml:"chart"`
	Notification string `toml:"notification"`
	Help         string `toml:"help"`
	Border       string `toml:"border"`
	Separator    string `toml:"separator"`
	WizardTitle  string `toml:"wizard_title"`
	WizardActive string `toml:"wizard_active"`
	WizardDim    string `toml:"wizard_dim"`
	Error        string `toml:"error"`
	Logo         string `toml:"logo"`
}

// Layout holds pane sizing percentages.
type Layout struct {
	OverviewWidth int `toml:"overview_width"`
}

// Roster selects where the member list comes from at startup.
type Roster struct {
	Source         string   `toml:"source"` // "randomuser", "seed" or "dir"
	Endpoint       string   `toml:"endpoint"`
	Results        int      `toml:"results"`
	Nationalities  []string `toml:"nationalities"`
	TimeoutSeconds int      `toml:"timeout_seconds"`
	Dir            string   `toml:"dir"`
}

// Session holds the initial role and member selection.
type Session struct {
	Role string `toml:"role"`
	User string `toml:"user"`
}

// Log configures the debug log file.
type Log struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// Config is the top-level configuration.
type Config struct {
	Colors  Colors  `toml:"colors"`
	Light   Colors  `toml:"light"`
	Layout  Layout  `toml:"layout"`
	Roster  Roster  `toml:"roster"`
	Session Session `toml:"session"`
	Log     Log     `toml:"log"`
}

// Default returns a Config populated with the built-in defaults.
func Default() Config {
	return Config{
		Colors: Colors{
			Title:        "#cba6f7", // Mauve
			Header:       "#89b4fa", // Blue
			SelectedBG:   "#313244", // Surface 0
			SelectedFG:   "#cdd6f4", // Text
			Text:         "#cdd6f4", // Text
			Muted:        "#7f849c", // Overlay 1
			Working:      "#a6e3a1", // Green
			Break:        "#f9e2af", // Yellow
			Meeting:      "#89b4fa", // Blue
			Offline:      "#7f849c", // Overlay 1
			Completed:    "#94e2d5", // Teal
			Progress:     "#b4befe", // Lavender
			Chart:        "#f5c2e7", // Pink
			Notification: "#a6adc8", // Subtext 0
			Help:         "#7f849c", // Overlay 1
			Border:       "#585b70", // Surface 2
			Separator:    "#585b70", // Surface 2
			WizardTitle:  "#cba6f7", // Mauve
			WizardActive: "#cba6f7", // Mauve
			WizardDim:    "#7f849c", // Overlay 1
			Error:        "#f38ba8", // Red
			Logo:         "#cba6f7", // Mauve
		},
		Light: Colors{
			Title:        "#8839ef", // Mauve
			Header:       "#1e66f5", // Blue
			SelectedBG:   "#ccd0da", // Surface 0
			SelectedFG:   "#4c4f69", // Text
			Text:         "#4c4f69", // Text
			Muted:        "#8c8fa1", // Overlay 1
			Working:      "#40a02b", // Green
			Break:        "#df8e1d", // Yellow
			Meeting:      "#1e66f5", // Blue
			Offline:      "#8c8fa1", // Overlay 1
			Completed:    "#179299", // Teal
			Progress:     "#7287fd", // Lavender
			Chart:        "#ea76cb", // Pink
			Notification: "#6c6f85", // Subtext 0
			Help:         "#8c8fa1", // Overlay 1
			Border:       "#acb0be", // Surface 2
			Separator:    "#acb0be", // Surface 2
			WizardTitle:  "#8839ef", // Mauve
			WizardActive: "#8839ef", // Mauve
			WizardDim:    "#8c8fa1", // Overlay 1
			Error:        "#d20f39", // Red
			Logo:         "#8839ef", // Mauve
		},
		Layout: Layout{
			OverviewWidth: 60,
		},
		Roster: Roster{
			Source:         SourceRandomUser,
			Endpoint:       "https://randomuser.me/api/",
			Results:        8,
			Nationalities:  []string{"us", "gb", "ca"},
			TimeoutSeconds: 10,
		},
		Session: Session{
			Role: "lead",
		},
		Log: Log{
			Level: "info",
		},
	}
}

// Roster sources.
const (
	SourceRandomUser = "randomuser"
	SourceSeed       = "seed"
	SourceDir        = "dir"
)

func configDir() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "teampulse")
}

// Path returns the config file path, respecting XDG_CONFIG_HOME.
func Path() string {
	return filepath.Join(configDir(), "teampulse.conf")
}

// DefaultLogPath returns the log file path, respecting XDG_STATE_HOME.
func DefaultLogPath() string {
	dir := os.Getenv("XDG_STATE_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(dir, "teampulse", "teampulse.log")
}

// Load reads the config file at Path.
func Load() (Config, error) {
	return LoadFrom(Path())
}

// LoadFrom reads the config file at path and returns a Config. Omitted
// fields keep their default values. If the file does not exist, defaults
// are returned with no error.
func LoadFrom(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

const defaultFileContent = `# teampulse configuration
# Uncomment and modify values to customize. All values are optional.
# Colors can be hex (#rrggbb) or xterm-256 codes (0-255).
# [colors] is the dark palette, [light] the light one (toggle with t).
# Defaults use the Catppuccin Mocha and Latte palettes.

[colors]
# title         = "#cba6f7"  # Mauve
# header        = "#89b4fa"  # Blue
# selected_bg   = "#313244"  # Surface 0
# selected_fg   = "#cdd6f4"  # Text
# text          = "#cdd6f4"  # Text
# muted         = "#7f849c"  # Overlay 1
# working       = "#a6e3a1"  # Green
# break         = "#f9e2af"  # Yellow
# meeting       = "#89b4fa"  # Blue
# offline       = "#7f849c"  # Overlay 1
# completed     = "#94e2d5"  # Teal
# progress      = "#b4befe"  # Lavender
# chart         = "#f5c2e7"  # Pink
# notification  = "#a6adc8"  # Subtext 0
# help          = "#7f849c"  # Overlay 1
# border        = "#585b70"  # Surface 2
# separator     = "#585b70"  # Surface 2
# wizard_title  = "#cba6f7"  # Mauve
# wizard_active = "#cba6f7"  # Mauve
# wizard_dim    = "#7f849c"  # Overlay 1
# error         = "#f38ba8"  # Red
# logo          = "#cba6f7"  # Mauve

[light]
# title         = "#8839ef"  # Mauve
# working       = "#40a02b"  # Green
# break         = "#df8e1d"  # Yellow
# meeting       = "#1e66f5"  # Blue
# offline       = "#8c8fa1"  # Overlay 1

[layout]
# overview_width = 60   # percentage of terminal width for the lead overview column

[roster]
# source          = "randomuser"   # randomuser, seed or dir
# endpoint        = "https://randomuser.me/api/"
# results         = 8
# nationalities   = ["us", "gb", "ca"]
# timeout_seconds = 10
# dir             = ""             # one member per .json file when source = "dir"

[session]
# role = "lead"   # lead or member
# user = ""       # member name to act as; defaults to the first member

[log]
# level = "info"  # debug, info, warn, error
# file  = ""      # defaults to $XDG_STATE_HOME/teampulse/teampulse.log
`

// WriteDefault writes the default config file with all values commented out.
// It no-ops if the file already exists. Parent directories are created as needed.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil // file already exists
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	return os.WriteFile(path, []byte(defaultFileContent), 0o644)
}
