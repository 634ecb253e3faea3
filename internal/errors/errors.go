// Package errors provides centralized error definitions and error handling
// utilities for the claudepane codebase. It defines domain-specific errors,
// semantic error types, error constructors with context wrapping, and error
// classification helpers.
//
// # Error Types
//
// The package provides two categories of errors:
//
// Domain-specific errors represent errors from specific subsystems:
//   - RegistryError: errors related to session name resolution
//   - SessionError: errors related to driving tmux sessions
//   - GitError: errors related to git operations (root resolution)
//
// Semantic errors represent common error conditions:
//   - ValidationError: invalid input or state
//   - TimeoutError: operation timed out
//
// # Usage
//
// Creating errors:
//
//	// Domain-specific error
//	err := errors.NewRegistryError("cannot resolve session name", errors.ErrNoProjectRoot)
//
//	// With context wrapping
//	err := errors.NewSessionError("send failed", baseErr).WithSessionName("claude-myproj")
//
// Checking errors:
//
//	// Check for specific sentinel errors
//	if errors.Is(err, errors.ErrNoProjectRoot) { ... }
//
//	// Use classification helpers
//	if errors.IsUserFacing(err) { ... }
package errors

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Re-export standard library functions for convenience.
// This allows callers to import only this package for all error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// Severity represents the severity level of an error.
type Severity int

const (
	// SeverityDebug is for errors that are useful for debugging but not critical.
	SeverityDebug Severity = iota
	// SeverityInfo is for informational errors that don't indicate a problem.
	SeverityInfo
	// SeverityWarning is for errors that might indicate a problem but aren't critical.
	SeverityWarning
	// SeverityError is for errors that indicate a real problem.
	SeverityError
	// SeverityCritical is for errors that require immediate attention.
	SeverityCritical
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "debug"
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// -----------------------------------------------------------------------------
// Sentinel Errors
// -----------------------------------------------------------------------------

// Registry-related sentinel errors
var (
	// ErrNoProjectRoot indicates that the current path is not inside a
	// recognized project, so no session name can be derived.
	ErrNoProjectRoot = New("not inside a project: no workspace root found")
	// ErrEmptySelection indicates that a region-based send was invoked
	// with no active selection.
	ErrEmptySelection = New("no selection to send")
)

// Session-related sentinel errors
var (
	// ErrNoSessionFound indicates that no session exists and none can be derived.
	ErrNoSessionFound = New("no session found")
	// ErrSessionNotFound indicates that a named tmux session does not exist.
	ErrSessionNotFound = New("session not found")
	// ErrSessionStartFailed indicates that a tmux session failed to start.
	ErrSessionStartFailed = New("session failed to start")
)

// Git-related sentinel errors
var (
	// ErrNotGitRepository indicates that the directory is not a git repository.
	ErrNotGitRepository = New("not a git repository")
)

// General sentinel errors
var (
	// ErrTimeout indicates that an operation timed out.
	ErrTimeout = New("operation timed out")
	// ErrCanceled indicates that an operation was canceled.
	ErrCanceled = New("operation canceled")
	// ErrInvalidInput indicates that input validation failed.
	ErrInvalidInput = New("invalid input")
)

// -----------------------------------------------------------------------------
// Base Error Interface
// -----------------------------------------------------------------------------

// PaneError is the base interface for all claudepane errors.
// It extends the standard error interface with additional methods for
// error handling and classification.
type PaneError interface {
	error

	// Unwrap returns the underlying error, if any.
	Unwrap() error

	// Is reports whether this error matches the target error.
	// This is used by errors.Is() for error comparison.
	Is(target error) bool

	// Severity returns the severity level of this error.
	Severity() Severity

	// IsRetryable returns true if the error is transient and the operation
	// may succeed on retry.
	IsRetryable() bool

	// IsUserFacing returns true if the error message is safe to display
	// to end users.
	IsUserFacing() bool
}

// -----------------------------------------------------------------------------
// Base Error Implementation
// -----------------------------------------------------------------------------

// baseError provides common functionality for all error types.
type baseError struct {
	message    string
	cause      error
	severity   Severity
	retryable  bool
	userFacing bool
}

// Error returns the error message.
func (e *baseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Unwrap returns the underlying error.
func (e *baseError) Unwrap() error {
	return e.cause
}

// Is checks if this error matches the target.
func (e *baseError) Is(target error) bool {
	if e.cause != nil {
		return errors.Is(e.cause, target)
	}
	return false
}

// Severity returns the error severity.
func (e *baseError) Severity() Severity {
	return e.severity
}

// IsRetryable returns whether the error is retryable.
func (e *baseError) IsRetryable() bool {
	return e.retryable
}

// IsUserFacing returns whether the error is safe to show users.
func (e *baseError) IsUserFacing() bool {
	return e.userFacing
}

// -----------------------------------------------------------------------------
// Domain-Specific Errors
// -----------------------------------------------------------------------------

// RegistryError represents errors related to session name resolution.
//
// Example:
//
//	err := errors.NewRegistryError("cannot resolve session name", errors.ErrNoProjectRoot)
//	err = err.WithPath("/tmp/scratch/notes.txt")
type RegistryError struct {
	baseError
	Path string
}

// NewRegistryError creates a new RegistryError.
func NewRegistryError(message string, cause error) *RegistryError {
	return &RegistryError{
		baseError: baseError{
			message:    message,
			cause:      cause,
			severity:   SeverityError,
			retryable:  false,
			userFacing: true,
		},
	}
}

// WithPath adds the offending path to the error context.
func (e *RegistryError) WithPath(path string) *RegistryError {
	e.Path = path
	return e
}

// WithSeverity sets the error severity.
func (e *RegistryError) WithSeverity(s Severity) *RegistryError {
	e.severity = s
	return e
}

// Error returns the formatted error message.
func (e *RegistryError) Error() string {
	prefix := "registry error"
	if e.Path != "" {
		prefix = fmt.Sprintf("registry error [path=%s]", e.Path)
	}

	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *RegistryError) Is(target error) bool {
	if _, ok := target.(*RegistryError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// SessionError represents errors related to driving tmux sessions.
//
// Example:
//
//	err := errors.NewSessionError("send failed", errors.ErrSessionNotFound)
//	err = err.WithSessionName("claude-myproj")
type SessionError struct {
	baseError
	SessionName string
	Output      string // Captured tmux command output
}

// NewSessionError creates a new SessionError.
func NewSessionError(message string, cause error) *SessionError {
	return &SessionError{
		baseError: baseError{
			message:    message,
			cause:      cause,
			severity:   SeverityError,
			retryable:  false,
			userFacing: true,
		},
	}
}

// WithSessionName adds a session name to the error context.
func (e *SessionError) WithSessionName(name string) *SessionError {
	e.SessionName = name
	return e
}

// WithOutput adds captured tmux command output to the error context.
func (e *SessionError) WithOutput(output string) *SessionError {
	e.Output = output
	return e
}

// WithSeverity sets the error severity.
func (e *SessionError) WithSeverity(s Severity) *SessionError {
	e.severity = s
	return e
}

// WithRetryable sets whether the error is retryable.
func (e *SessionError) WithRetryable(r bool) *SessionError {
	e.retryable = r
	return e
}

// Error returns the formatted error message.
func (e *SessionError) Error() string {
	prefix := "session error"
	if e.SessionName != "" {
		prefix = fmt.Sprintf("session error [session=%s]", e.SessionName)
	}

	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *SessionError) Is(target error) bool {
	if _, ok := target.(*SessionError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// GitError represents errors related to git operations.
//
// Example:
//
//	err := errors.NewGitError("root resolution failed", errors.ErrNotGitRepository)
//	err = err.WithRepository("/home/user/proj").WithGitOutput(out)
type GitError struct {
	baseError
	Repository string
	GitOutput  string // Captured git command output
}

// NewGitError creates a new GitError.
func NewGitError(message string, cause error) *GitError {
	return &GitError{
		baseError: baseError{
			message:    message,
			cause:      cause,
			severity:   SeverityError,
			retryable:  false,
			userFacing: true,
		},
	}
}

// WithRepository adds a repository path to the error context.
func (e *GitError) WithRepository(path string) *GitError {
	e.Repository = path
	return e
}

// WithGitOutput adds git command output to the error context.
func (e *GitError) WithGitOutput(output string) *GitError {
	e.GitOutput = output
	return e
}

// Error returns the formatted error message.
func (e *GitError) Error() string {
	var parts []string
	if e.Repository != "" {
		parts = append(parts, fmt.Sprintf("repo=%s", e.Repository))
	}

	prefix := "git error"
	if len(parts) > 0 {
		prefix = fmt.Sprintf("git error [%s]", strings.Join(parts, ", "))
	}

	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *GitError) Is(target error) bool {
	if _, ok := target.(*GitError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// -----------------------------------------------------------------------------
// Semantic Errors
// -----------------------------------------------------------------------------

// ValidationError indicates invalid input or state.
type ValidationError struct {
	baseError
	Field string
	Value any
}

// NewValidationError creates a new ValidationError.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		baseError: baseError{
			message:    message,
			cause:      ErrInvalidInput,
			severity:   SeverityWarning,
			retryable:  false,
			userFacing: true,
		},
	}
}

// WithField adds the field name to the error context.
func (e *ValidationError) WithField(field string) *ValidationError {
	e.Field = field
	return e
}

// WithValue adds the offending value to the error context.
func (e *ValidationError) WithValue(value any) *ValidationError {
	e.Value = value
	return e
}

// Error returns the formatted error message.
func (e *ValidationError) Error() string {
	var parts []string
	if e.Field != "" {
		parts = append(parts, fmt.Sprintf("field=%s", e.Field))
	}
	if e.Value != nil {
		parts = append(parts, fmt.Sprintf("value=%v", e.Value))
	}

	prefix := "validation error"
	if len(parts) > 0 {
		prefix = fmt.Sprintf("validation error [%s]", strings.Join(parts, ", "))
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *ValidationError) Is(target error) bool {
	if _, ok := target.(*ValidationError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// TimeoutError indicates that an operation timed out.
type TimeoutError struct {
	baseError
	Operation string
	Duration  time.Duration
}

// NewTimeoutError creates a new TimeoutError.
func NewTimeoutError(operation string, duration time.Duration) *TimeoutError {
	return &TimeoutError{
		baseError: baseError{
			message:    fmt.Sprintf("operation %q timed out after %v", operation, duration),
			cause:      ErrTimeout,
			severity:   SeverityError,
			retryable:  true,
			userFacing: true,
		},
		Operation: operation,
		Duration:  duration,
	}
}

// Is checks if this error matches the target.
func (e *TimeoutError) Is(target error) bool {
	if _, ok := target.(*TimeoutError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// -----------------------------------------------------------------------------
// Classification Helpers
// -----------------------------------------------------------------------------

// IsRetryable reports whether the error is transient and the operation may
// succeed on retry. Unknown error types are considered non-retryable.
func IsRetryable(err error) bool {
	var pe PaneError
	if errors.As(err, &pe) {
		return pe.IsRetryable()
	}
	return false
}

// IsUserFacing reports whether the error message is safe to display to end
// users. Unknown error types are considered internal.
func IsUserFacing(err error) bool {
	var pe PaneError
	if errors.As(err, &pe) {
		return pe.IsUserFacing()
	}
	// Sentinel errors are written as user-facing messages.
	switch {
	case errors.Is(err, ErrNoProjectRoot),
		errors.Is(err, ErrNoSessionFound),
		errors.Is(err, ErrEmptySelection),
		errors.Is(err, ErrSessionNotFound):
		return true
	}
	return false
}

// GetSeverity returns the severity of the error.
// Unknown error types default to SeverityError.
func GetSeverity(err error) Severity {
	var pe PaneError
	if errors.As(err, &pe) {
		return pe.Severity()
	}
	return SeverityError
}

// -----------------------------------------------------------------------------
// Wrapping Helpers
// -----------------------------------------------------------------------------

// Wrap wraps an error with a message. Returns nil if err is nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with a formatted message. Returns nil if err is nil.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}
