package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the complete claudepane configuration
type Config struct {
	Claude  ClaudeConfig  `mapstructure:"claude"`
	Naming  NamingConfig  `mapstructure:"naming"`
	Tmux    TmuxConfig    `mapstructure:"tmux"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ClaudeConfig controls how the external claude CLI is invoked
type ClaudeConfig struct {
	// Command is the executable used for interactive sessions (default: "claude")
	Command string `mapstructure:"command"`
	// OneshotFlags are extra flags for non-interactive one-shot runs
	// (default: ["-p"]). The prompt is appended after these flags.
	OneshotFlags []string `mapstructure:"oneshot_flags"`
}

// NamingConfig controls how session and prompt-buffer names are derived
type NamingConfig struct {
	// Prefix is prepended to derived session names (default: "claude-")
	Prefix string `mapstructure:"prefix"`
	// BufferPrefix is prepended to prompt buffer names (default: "claude-prompt-")
	BufferPrefix string `mapstructure:"buffer_prefix"`
	// UseRootBasename derives the session suffix from the workspace root's
	// own basename instead of its parent directory's basename.
	// The parent-dir derivation is the historical behavior and remains the
	// default for compatibility with existing sessions.
	UseRootBasename bool `mapstructure:"use_root_basename"`
}

// TmuxConfig controls tmux session creation
type TmuxConfig struct {
	// Width is the width of new detached sessions
	Width int `mapstructure:"width"`
	// Height is the height of new detached sessions
	Height int `mapstructure:"height"`
	// HistoryLimit is the number of lines of scrollback to keep (default: 50000)
	HistoryLimit int `mapstructure:"history_limit"`
}

// LoggingConfig controls debug logging behavior
type LoggingConfig struct {
	// Enabled controls whether debug logs are written (default: true)
	Enabled bool `mapstructure:"enabled"`
	// Level is the minimum log level: debug, info, warn, error
	Level string `mapstructure:"level"`
	// MaxSizeMB is the maximum log file size before rotation
	MaxSizeMB int `mapstructure:"max_size_mb"`
	// MaxBackups is the number of rotated log files to keep
	MaxBackups int `mapstructure:"max_backups"`
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		Claude: ClaudeConfig{
			Command:      "claude",
			OneshotFlags: []string{"-p"},
		},
		Naming: NamingConfig{
			Prefix:          "claude-",
			BufferPrefix:    "claude-prompt-",
			UseRootBasename: false, // Parent-dir derivation kept for compatibility
		},
		Tmux: TmuxConfig{
			Width:        200,
			Height:       50,
			HistoryLimit: 50000,
		},
		Logging: LoggingConfig{
			Enabled:    true,
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	// Claude defaults
	viper.SetDefault("claude.command", defaults.Claude.Command)
	viper.SetDefault("claude.oneshot_flags", defaults.Claude.OneshotFlags)

	// Naming defaults
	viper.SetDefault("naming.prefix", defaults.Naming.Prefix)
	viper.SetDefault("naming.buffer_prefix", defaults.Naming.BufferPrefix)
	viper.SetDefault("naming.use_root_basename", defaults.Naming.UseRootBasename)

	// Tmux defaults
	viper.SetDefault("tmux.width", defaults.Tmux.Width)
	viper.SetDefault("tmux.height", defaults.Tmux.Height)
	viper.SetDefault("tmux.history_limit", defaults.Tmux.HistoryLimit)

	// Logging defaults
	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	// Check XDG_CONFIG_HOME first
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "claudepane")
	}
	// Fall back to ~/.config/claudepane
	home, err := os.UserHomeDir()
	if err != nil {
		return ".claudepane"
	}
	return filepath.Join(home, ".config", "claudepane")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// LogDir returns the directory debug logs are written to.
// Returns empty string (stderr logging) when logging is disabled.
func (c *Config) LogDir() string {
	if !c.Logging.Enabled {
		return ""
	}
	return filepath.Join(ConfigDir(), "logs")
}

// SessionPrefix returns the configured session name prefix, falling back to
// the default when the configured value is empty.
func (c *Config) SessionPrefix() string {
	if strings.TrimSpace(c.Naming.Prefix) == "" {
		return Default().Naming.Prefix
	}
	return c.Naming.Prefix
}

// BufferPrefix returns the configured prompt-buffer name prefix, falling
// back to the default when the configured value is empty.
func (c *Config) BufferPrefix() string {
	if strings.TrimSpace(c.Naming.BufferPrefix) == "" {
		return Default().Naming.BufferPrefix
	}
	return c.Naming.BufferPrefix
}
