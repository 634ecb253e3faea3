// Package registry maps editor contexts to named claude sessions.
//
// Every editor buffer resolves to exactly one session name at any time:
// either a manual override bound to that buffer, or a deterministic
// derivation from the workspace root. Derivation is pure, so multiple
// buffers in the same project converge on one session without coordination.
package registry

import (
	"context"

	"github.com/claudepane/claudepane/internal/errors"
	"github.com/claudepane/claudepane/internal/workspace"
)

// Context is the per-buffer state threaded through all registry calls.
// It replaces ambient editor state with an explicit record: the current
// file path and the manual session binding, if any.
type Context struct {
	// Path is the buffer's file path (or the working directory for
	// pathless buffers).
	Path string

	// OverrideName is an explicit session name manually assigned to this
	// buffer. Once set it takes precedence over any derived name for the
	// lifetime of the buffer.
	OverrideName string
}

// LinkedBuffer names a new prompt buffer together with the session it is
// bound to.
type LinkedBuffer struct {
	// BufferName is the synthesized name for the new prompt buffer.
	BufferName string
	// SessionName is the session the buffer is pre-bound to. Callers
	// should create the buffer with OverrideName set to this value.
	SessionName string
}

// RootLocator resolves the workspace root for a path.
type RootLocator interface {
	LocateRoot(ctx context.Context, path string) (string, error)
}

// Config controls session and buffer name derivation.
type Config struct {
	// Prefix is prepended to derived session names.
	Prefix string
	// BufferPrefix is prepended to synthesized prompt buffer names.
	BufferPrefix string
	// UseRootBasename derives names from the workspace root's own basename.
	// When false (the default), names derive from the root's parent
	// directory basename, reproducing the historical behavior.
	UseRootBasename bool
}

// DefaultConfig returns the naming configuration matching historical behavior.
func DefaultConfig() Config {
	return Config{
		Prefix:       "claude-",
		BufferPrefix: "claude-prompt-",
	}
}

// Registry resolves session names for editor contexts.
type Registry struct {
	locator RootLocator
	cfg     Config
}

// New creates a Registry using the given root locator and naming config.
func New(locator RootLocator, cfg Config) *Registry {
	return &Registry{locator: locator, cfg: cfg}
}

// ResolveSessionName returns the session name for the given editor context.
//
// If an override is bound to the buffer it is returned verbatim, without
// touching the filesystem. Otherwise the name derives from the workspace
// root: Prefix + suffix, where suffix is the parent directory's basename
// (or the root's own basename when UseRootBasename is set).
//
// Returns errors.ErrNoProjectRoot (wrapped) when no override is set and the
// path is not inside a recognized project; no fallback naming scheme exists.
func (r *Registry) ResolveSessionName(ctx context.Context, ec *Context) (string, error) {
	if ec.OverrideName != "" {
		return ec.OverrideName, nil
	}

	root, err := r.locator.LocateRoot(ctx, ec.Path)
	if err != nil {
		return "", errors.NewRegistryError("cannot resolve session name", err).WithPath(ec.Path)
	}

	return r.cfg.Prefix + r.suffix(root), nil
}

// SetOverride binds a session name to the buffer unconditionally,
// overwriting any prior override. The name is not validated against
// existing sessions; sessions are created on demand.
func (r *Registry) SetOverride(ec *Context, name string) {
	ec.OverrideName = name
}

// ClearOverride removes any manual binding, returning the buffer to
// derived naming.
func (r *Registry) ClearOverride(ec *Context) {
	ec.OverrideName = ""
}

// NewLinkedBuffer synthesizes a prompt buffer name for the context and
// resolves the session it should be bound to. The session name is resolved
// from the context as-is, before any binding from this call is applied.
//
// The caller creates the (empty) buffer and binds it by setting
// OverrideName to the returned SessionName.
func (r *Registry) NewLinkedBuffer(ctx context.Context, ec *Context) (LinkedBuffer, error) {
	sessionName, err := r.ResolveSessionName(ctx, ec)
	if err != nil {
		return LinkedBuffer{}, err
	}

	root, err := r.locator.LocateRoot(ctx, ec.Path)
	if err != nil {
		return LinkedBuffer{}, errors.NewRegistryError("cannot name prompt buffer", err).WithPath(ec.Path)
	}

	// Buffer names always use the root's own basename; only session
	// derivation carries the historical parent-dir quirk.
	return LinkedBuffer{
		BufferName:  r.cfg.BufferPrefix + workspace.ProjectBasename(root),
		SessionName: sessionName,
	}, nil
}

// suffix derives the name suffix for a workspace root.
func (r *Registry) suffix(root string) string {
	if r.cfg.UseRootBasename {
		return workspace.ProjectBasename(root)
	}
	return workspace.ParentBasename(root)
}
