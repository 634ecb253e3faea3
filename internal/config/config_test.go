package config

import (
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Claude.Command != "claude" {
		t.Errorf("Claude.Command = %q, want %q", cfg.Claude.Command, "claude")
	}
	if len(cfg.Claude.OneshotFlags) != 1 || cfg.Claude.OneshotFlags[0] != "-p" {
		t.Errorf("Claude.OneshotFlags = %v, want [-p]", cfg.Claude.OneshotFlags)
	}
	if cfg.Naming.Prefix != "claude-" {
		t.Errorf("Naming.Prefix = %q, want %q", cfg.Naming.Prefix, "claude-")
	}
	if cfg.Naming.BufferPrefix != "claude-prompt-" {
		t.Errorf("Naming.BufferPrefix = %q, want %q", cfg.Naming.BufferPrefix, "claude-prompt-")
	}
	if cfg.Naming.UseRootBasename {
		t.Error("Naming.UseRootBasename should default to false for compatibility")
	}
	if cfg.Tmux.HistoryLimit != 50000 {
		t.Errorf("Tmux.HistoryLimit = %d, want 50000", cfg.Tmux.HistoryLimit)
	}
}

func TestDefaultIsValid(t *testing.T) {
	if errs := Default().Validate(); len(errs) != 0 {
		t.Errorf("Default() should validate cleanly, got: %v", ValidationErrors(errs))
	}
}

func TestLoadValid(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	SetDefaults()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Claude.Command != "claude" {
		t.Errorf("Claude.Command = %q, want %q", cfg.Claude.Command, "claude")
	}
}

func TestLoadInvalidValueSurfacesError(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	SetDefaults()
	viper.Set("tmux.width", -1)

	// A bad value must fail loudly, not silently fall back to defaults:
	// the user's other settings would be dropped along with the typo.
	_, err := Load()
	if err == nil {
		t.Fatal("Load() should fail on an invalid value")
	}
	if !strings.Contains(err.Error(), "tmux.width") {
		t.Errorf("error should name the offending field, got: %v", err)
	}
}

func TestValidateEmptyCommand(t *testing.T) {
	cfg := Default()
	cfg.Claude.Command = "  "

	errs := cfg.Validate()
	if len(errs) != 1 {
		t.Fatalf("expected 1 validation error, got %d: %v", len(errs), ValidationErrors(errs))
	}
	if errs[0].Field != "claude.command" {
		t.Errorf("Field = %q, want %q", errs[0].Field, "claude.command")
	}
}

func TestValidateBadPrefix(t *testing.T) {
	tests := []struct {
		prefix string
		valid  bool
	}{
		{"claude-", true},
		{"my_sessions-", true},
		{"", true}, // empty falls back to the default
		{"1claude-", false},
		{"cl:aude-", false},
		{"cl.aude-", false},
	}

	for _, tt := range tests {
		cfg := Default()
		cfg.Naming.Prefix = tt.prefix
		errs := cfg.Validate()
		if tt.valid && len(errs) != 0 {
			t.Errorf("prefix %q: expected valid, got %v", tt.prefix, ValidationErrors(errs))
		}
		if !tt.valid && len(errs) == 0 {
			t.Errorf("prefix %q: expected validation error", tt.prefix)
		}
	}
}

func TestValidateNegativeGeometry(t *testing.T) {
	cfg := Default()
	cfg.Tmux.Width = -1
	cfg.Tmux.Height = -1

	errs := cfg.Validate()
	if len(errs) != 2 {
		t.Fatalf("expected 2 validation errors, got %d: %v", len(errs), ValidationErrors(errs))
	}
}

func TestValidateLogLevel(t *testing.T) {
	cfg := Default()
	cfg.Logging.Level = "verbose"

	errs := cfg.Validate()
	if len(errs) != 1 {
		t.Fatalf("expected 1 validation error, got %d", len(errs))
	}
	if !strings.Contains(errs[0].Message, "must be one of") {
		t.Errorf("unexpected message: %q", errs[0].Message)
	}
}

func TestValidationErrorsFormatting(t *testing.T) {
	errs := ValidationErrors{
		{Field: "tmux.width", Value: -1, Message: "must not be negative"},
		{Field: "logging.level", Value: "bogus", Message: "must be one of: debug, info, warn, error"},
	}

	msg := errs.Error()
	if !strings.HasPrefix(msg, "2 validation errors:") {
		t.Errorf("Error() = %q, want prefix %q", msg, "2 validation errors:")
	}
	if !strings.Contains(msg, "tmux.width") || !strings.Contains(msg, "logging.level") {
		t.Errorf("Error() missing field names: %q", msg)
	}
}

func TestSessionPrefixFallback(t *testing.T) {
	cfg := Default()
	cfg.Naming.Prefix = ""
	if got := cfg.SessionPrefix(); got != "claude-" {
		t.Errorf("SessionPrefix() = %q, want %q", got, "claude-")
	}

	cfg.Naming.Prefix = "work-"
	if got := cfg.SessionPrefix(); got != "work-" {
		t.Errorf("SessionPrefix() = %q, want %q", got, "work-")
	}
}

func TestBufferPrefixFallback(t *testing.T) {
	cfg := Default()
	cfg.Naming.BufferPrefix = " "
	if got := cfg.BufferPrefix(); got != "claude-prompt-" {
		t.Errorf("BufferPrefix() = %q, want %q", got, "claude-prompt-")
	}
}

func TestLogDir(t *testing.T) {
	cfg := Default()
	if cfg.LogDir() == "" {
		t.Error("LogDir() should be non-empty when logging is enabled")
	}

	cfg.Logging.Enabled = false
	if cfg.LogDir() != "" {
		t.Error("LogDir() should be empty when logging is disabled")
	}
}
