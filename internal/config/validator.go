package config

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "tmux.width")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// sessionPrefixRegex validates session name prefix characters.
// tmux session names cannot contain ':' or '.', so prefixes are restricted
// to alphanumerics, hyphen and underscore.
var sessionPrefixRegex = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_-]*$`)

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	// Claude command
	if strings.TrimSpace(c.Claude.Command) == "" {
		errors = append(errors, ValidationError{
			Field:   "claude.command",
			Value:   c.Claude.Command,
			Message: "must not be empty",
		})
	}

	// Naming prefixes
	for _, check := range []struct {
		field string
		value string
	}{
		{"naming.prefix", c.Naming.Prefix},
		{"naming.buffer_prefix", c.Naming.BufferPrefix},
	} {
		if check.value == "" {
			continue // empty falls back to the default
		}
		trimmed := strings.TrimSuffix(check.value, "-")
		if !sessionPrefixRegex.MatchString(trimmed) {
			errors = append(errors, ValidationError{
				Field:   check.field,
				Value:   check.value,
				Message: "must start with a letter and contain only alphanumerics, hyphen, underscore",
			})
		}
	}

	// Tmux geometry
	if c.Tmux.Width < 0 {
		errors = append(errors, ValidationError{
			Field:   "tmux.width",
			Value:   c.Tmux.Width,
			Message: "must not be negative",
		})
	}
	if c.Tmux.Height < 0 {
		errors = append(errors, ValidationError{
			Field:   "tmux.height",
			Value:   c.Tmux.Height,
			Message: "must not be negative",
		})
	}
	if c.Tmux.HistoryLimit < 0 {
		errors = append(errors, ValidationError{
			Field:   "tmux.history_limit",
			Value:   c.Tmux.HistoryLimit,
			Message: "must not be negative",
		})
	}

	// Logging
	if c.Logging.Level != "" && !slices.Contains(ValidLogLevels(), strings.ToLower(c.Logging.Level)) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}
	if c.Logging.MaxSizeMB < 0 {
		errors = append(errors, ValidationError{
			Field:   "logging.max_size_mb",
			Value:   c.Logging.MaxSizeMB,
			Message: "must not be negative",
		})
	}
	if c.Logging.MaxBackups < 0 {
		errors = append(errors, ValidationError{
			Field:   "logging.max_backups",
			Value:   c.Logging.MaxBackups,
			Message: "must not be negative",
		})
	}

	return errors
}
